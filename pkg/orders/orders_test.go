package orders

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	mterrors "metatrader-client/pkg/errors"
	"metatrader-client/pkg/models"
)

func TestNewOrderMinimal(t *testing.T) {
	o, err := NewOrderFor("DE40").OrderType(models.OrderBuy).Lots(0.1).Build()
	require.NoError(t, err)

	raw, err := json.Marshal(o)
	require.NoError(t, err)
	assert.JSONEq(t, `{"symbol":"DE40","order_type":0,"lots":0.1}`, string(raw))
}

func TestNewOrderAllFields(t *testing.T) {
	o, err := NewOrderForSymbol(models.Symbol{Name: "DE40"}).
		OrderType(models.OrderBuyLimit).
		Lots(0.5).
		Price(19000).
		Slippage(3).
		SL(18900).
		TP(19200).
		SLPoints(100).
		TPPoints(200).
		Comment("test order").
		MagicNumber(456).
		Build()
	require.NoError(t, err)

	raw, err := json.Marshal(o)
	require.NoError(t, err)
	assert.JSONEq(t, `{"symbol":"DE40","order_type":2,"lots":0.5,"price":19000,"slippage":3,
		"sl":18900,"tp":19200,"sl_points":100,"tp_points":200,"comment":"test order","magic_number":456}`, string(raw))
}

func TestNewOrderMissingFields(t *testing.T) {
	_, err := NewOrderFor("").OrderType(models.OrderBuy).Lots(1).Build()
	assert.ErrorIs(t, err, mterrors.ErrInvalidOrder)

	_, err = NewOrderFor("EURUSD").Lots(1).Build()
	assert.ErrorIs(t, err, mterrors.ErrInvalidOrder)

	_, err = NewOrderFor("EURUSD").OrderType(models.OrderSell).Build()
	var ve *mterrors.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "lots", ve.Field)

	_, err = NewOrderFor("EURUSD").OrderType(models.OrderType(9)).Lots(1).Build()
	assert.ErrorIs(t, err, mterrors.ErrInvalidOrder)
}

func TestBuiltOrderDoesNotAliasBuilder(t *testing.T) {
	b := NewOrderFor("EURUSD").OrderType(models.OrderBuy).Lots(1).SL(1.05)
	first, err := b.Build()
	require.NoError(t, err)

	b.SL(1.10)
	assert.Equal(t, 1.05, *first.SL)
}

func TestModifyOrderOf(t *testing.T) {
	original := models.MT4Order{Ticket: 999, Symbol: "DE40", OrderType: models.OrderBuy, Lots: 0.1, OpenPrice: 19000}
	m := ModifyOrderOf(original).SL(18900).TP(19200).Build()

	raw, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ticket":999,"sl":18900,"tp":19200}`, string(raw))
}

func TestModifyExplicitZeroIsSent(t *testing.T) {
	m := ModifyTicket(int64(12345678901234)).SL(0).Build()

	raw, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ticket":12345678901234,"sl":0}`, string(raw))
}

func TestCloseAndDeletePayloads(t *testing.T) {
	raw, err := json.Marshal(CloseOrder[int32]{Ticket: 42})
	require.NoError(t, err)
	assert.JSONEq(t, `{"ticket":42}`, string(raw))

	raw, err = json.Marshal(DeleteOrder[int64]{Ticket: 42, CloseIfOpened: DefaultCloseIfOpened})
	require.NoError(t, err)
	assert.JSONEq(t, `{"ticket":42,"close_if_opened":true}`, string(raw))
}
