package models

import (
	"encoding/json"
	"strconv"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Property: order type ids 0-5 decode to their member; any other integer
// fails instead of defaulting to a guessed type.
func TestProperty_OrderTypeDecodeIsStrict(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 300
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	properties.Property("known ids decode, unknown ids fail", prop.ForAll(
		func(id int) bool {
			var ot OrderType
			err := json.Unmarshal([]byte(strconv.Itoa(id)), &ot)
			if id >= 0 && id <= 5 {
				return err == nil && ot.ID() == id
			}
			return err != nil
		},
		gen.OneGenOf(gen.IntRange(-10, 20), gen.Int()),
	))

	properties.Property("an order with an unknown type does not decode", prop.ForAll(
		func(ticket int32, id int) bool {
			raw := `{"ticket":` + strconv.Itoa(int(ticket)) + `,"order_type":` + strconv.Itoa(id) + `,"symbol":"EURUSD"}`
			var o MT4Order
			err := json.Unmarshal([]byte(raw), &o)
			if id >= 0 && id <= 5 {
				return err == nil && o.Ticket == ticket && o.OrderType == OrderType(id)
			}
			return err != nil
		},
		gen.Int32(),
		gen.IntRange(-3, 9),
	))

	properties.TestingRun(t)
}

// Property: the wide dialect keeps every 64-bit ticket; the narrow dialect
// rejects values outside int32 range rather than truncating them.
func TestProperty_TicketWidth(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	properties.Property("tickets decode without truncation", prop.ForAll(
		func(ticket int64) bool {
			raw := []byte(`{"ticket":` + strconv.FormatInt(ticket, 10) + `,"order_type":0}`)

			var wide MT5Order
			if err := json.Unmarshal(raw, &wide); err != nil || wide.Ticket != ticket {
				return false
			}

			var narrow MT4Order
			err := json.Unmarshal(raw, &narrow)
			fits := ticket >= -1<<31 && ticket <= 1<<31-1
			if fits {
				return err == nil && int64(narrow.Ticket) == ticket
			}
			return err != nil
		},
		gen.OneGenOf(gen.Int64(), gen.Int64Range(-1<<31, 1<<31-1)),
	))

	properties.TestingRun(t)
}
