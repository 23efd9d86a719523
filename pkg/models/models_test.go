package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderDecode(t *testing.T) {
	raw := `{
		"ticket": 123456,
		"magic_number": 456,
		"symbol": "DE40",
		"order_type": 2,
		"lots": 0.5,
		"open_price": 19000.0,
		"close_price": 0,
		"open_time": "2023.11.15 10:00:00",
		"close_time": null,
		"expiration": "2023.11.16 10:00:00",
		"sl": 18900,
		"tp": 19200,
		"profit": 0,
		"commission": -1.5,
		"swap": 0,
		"comment": "test order",
		"state": "placed"
	}`

	var o MT4Order
	require.NoError(t, json.Unmarshal([]byte(raw), &o))

	assert.Equal(t, int32(123456), o.Ticket)
	assert.Equal(t, OrderBuyLimit, o.OrderType)
	assert.True(t, o.IsPending())
	assert.True(t, o.IsBuy())
	assert.Empty(t, o.CloseTime)

	opened, ok := o.OpenedAt()
	require.True(t, ok)
	assert.Equal(t, time.Date(2023, 11, 15, 10, 0, 0, 0, time.UTC), opened)

	_, ok = o.ClosedAt()
	assert.False(t, ok)

	_, ok = o.ExpiresAt()
	assert.True(t, ok)
}

func TestOrderString(t *testing.T) {
	o := MT4Order{Ticket: 123, MagicNumber: 456, Symbol: "DE40", OrderType: OrderBuy, Lots: 0.5}
	s := o.String()
	assert.Contains(t, s, "ticket=123")
	assert.Contains(t, s, "magicNumber=456")
	assert.Contains(t, s, "symbol='DE40'")
	assert.Contains(t, s, "orderType=MARKET-BUY")
}

func TestOrderTypeNames(t *testing.T) {
	for _, ot := range OrderTypes() {
		parsed, ok := ParseOrderType(ot.String())
		require.True(t, ok)
		assert.Equal(t, ot, parsed)
	}
	_, ok := OrderTypeFromID(99)
	assert.False(t, ok)
	_, ok = OrderTypeFromID(-1)
	assert.False(t, ok)
	assert.False(t, OrderSell.IsPending())
	assert.False(t, OrderSellStop.IsBuy())
}

func TestSymbolDecode(t *testing.T) {
	raw := `{
		"name": "EURUSD",
		"point": 0.00001,
		"digits": 5,
		"volume_min": 0.01,
		"volume_step": 0.01,
		"volume_max": 100.0,
		"trade_contract_size": 100000.0,
		"trade_tick_value": 1.0,
		"trade_tick_size": 0.00001,
		"trade_stops_level": 0,
		"trade_freeze_level": 0,
		"trade_mode": 4,
		"trade_exemode": 1,
		"swap_mode": 1,
		"tick": {"time": 1700000000, "bid": 1.09876, "ask": 1.09886, "last": 0, "volume": 0},
		"description": "ignored"
	}`

	var s Symbol
	require.NoError(t, json.Unmarshal([]byte(raw), &s))

	assert.Equal(t, "EURUSD", s.Name)
	assert.Equal(t, 5, s.Digits)
	assert.InDelta(t, 100000.0, s.TradeContractSize, 0.1)
	assert.Equal(t, SymbolTradeModeFull, s.TradeMode)
	assert.Equal(t, SymbolTradeExecutionInstant, s.TradeExecMode)
	assert.Equal(t, SymbolSwapModePoints, s.SwapMode)
	assert.InDelta(t, 1.09876, s.Bid(), 1e-9)
	assert.InDelta(t, 1.09886, s.Ask(), 1e-9)
	assert.Equal(t, 10, s.SpreadPoints())
	assert.Equal(t, 1.12346, s.Normalize(1.123456))
}

func TestAccountDecode(t *testing.T) {
	raw := `{"login": 12345, "trade_mode": 0, "name": "Test Account", "server": "Demo-Server",
		"currency": "USD", "company": "Test Broker", "leverage": 100, "trade_allowed": true,
		"trade_expert": 1, "margin_so_mode": 0, "balance": 10000}`

	var a Account
	require.NoError(t, json.Unmarshal([]byte(raw), &a))

	assert.Equal(t, int64(12345), a.Login)
	assert.Equal(t, AccountTradeModeDemo, a.TradeMode)
	assert.Equal(t, "ACCOUNT_TRADE_MODE_DEMO", a.TradeMode.String())
	assert.Equal(t, AccountStopoutModePercent, a.MarginSOMode)
	assert.True(t, a.TradeAllowed)
	assert.True(t, a.ExpertTradingAllowed())
	assert.Equal(t, int64(100), a.Leverage)
}

func TestTolerantEnums(t *testing.T) {
	var a Account
	require.NoError(t, json.Unmarshal([]byte(`{"trade_mode": 7}`), &a))
	assert.Equal(t, "Unknown(7)", a.TradeMode.String())
	assert.Equal(t, "SYMBOL_CALC_MODE_CFDINDEX", SymbolCalcModeCFDIndex.String())
	assert.Equal(t, "SUNDAY", Sunday.String())
}

func TestOHLCVDecode(t *testing.T) {
	raw := `[{"time":1700000000,"open":19000,"high":19100,"low":18900,"close":19050,"tick_volume":1000,"spread":2,"real_volume":0}]`

	var bars []OHLCV
	require.NoError(t, json.Unmarshal([]byte(raw), &bars))
	require.Len(t, bars, 1)
	assert.Equal(t, OHLCV{Time: 1700000000, Open: 19000, High: 19100, Low: 18900, Close: 19050, TickVolume: 1000}, bars[0])
	assert.Equal(t, int64(1700000000), bars[0].Timestamp().Unix())
}

func TestSymbolTickEquality(t *testing.T) {
	a := SymbolTick{Time: 1700000000, Bid: 1.1, Ask: 1.2, Volume: 100}
	b := SymbolTick{Time: 1700000000, Bid: 1.1, Ask: 1.2, Volume: 100}
	c := SymbolTick{Time: 1700000001, Bid: 1.1, Ask: 1.2, Volume: 100}
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestTerminalTime(t *testing.T) {
	ts, ok := ParseTerminalTime("2023.11.15 10:00")
	require.True(t, ok)
	assert.Equal(t, "2023.11.15 10:00:00", FormatTerminalTime(ts))

	_, ok = ParseTerminalTime("  ")
	assert.False(t, ok)
	_, ok = ParseTerminalTime("15/11/2023")
	assert.False(t, ok)
}
