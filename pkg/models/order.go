package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// OrderType is the closed set of order kinds the terminal reports.
type OrderType int

const (
	OrderBuy OrderType = iota
	OrderSell
	OrderBuyLimit
	OrderBuyStop
	OrderSellLimit
	OrderSellStop
)

var orderTypeNames = map[OrderType]string{
	OrderBuy:       "MARKET-BUY",
	OrderSell:      "MARKET-SELL",
	OrderBuyLimit:  "BUY-LIMIT",
	OrderBuyStop:   "BUY-STOP",
	OrderSellLimit: "SELL-LIMIT",
	OrderSellStop:  "SELL-STOP",
}

// OrderTypeFromID returns the order type with the given wire id. Unknown ids
// are rejected rather than mapped to a guess.
func OrderTypeFromID(id int) (OrderType, bool) {
	t := OrderType(id)
	if _, ok := orderTypeNames[t]; !ok {
		return 0, false
	}
	return t, true
}

// ParseOrderType accepts the names returned by String, e.g. BUY-LIMIT.
func ParseOrderType(name string) (OrderType, bool) {
	for t, n := range orderTypeNames {
		if n == name {
			return t, true
		}
	}
	return 0, false
}

// OrderTypes returns all order types in id order.
func OrderTypes() []OrderType {
	return []OrderType{OrderBuy, OrderSell, OrderBuyLimit, OrderBuyStop, OrderSellLimit, OrderSellStop}
}

// ID returns the wire id.
func (t OrderType) ID() int { return int(t) }

func (t OrderType) String() string {
	if n, ok := orderTypeNames[t]; ok {
		return n
	}
	return fmt.Sprintf("OrderType(%d)", int(t))
}

// IsPending reports whether t is a limit or stop order.
func (t OrderType) IsPending() bool {
	return t >= OrderBuyLimit && t <= OrderSellStop
}

// IsBuy reports whether t opens or targets a long position.
func (t OrderType) IsBuy() bool {
	return t == OrderBuy || t == OrderBuyLimit || t == OrderBuyStop
}

// UnmarshalJSON fails for ids outside the closed set.
func (t *OrderType) UnmarshalJSON(data []byte) error {
	var id int
	if err := json.Unmarshal(data, &id); err != nil {
		return fmt.Errorf("order_type: %w", err)
	}
	v, ok := OrderTypeFromID(id)
	if !ok {
		return fmt.Errorf("order_type: unknown id %d", id)
	}
	*t = v
	return nil
}

// Order is an open position, pending order or historical order.
type Order[T Ticket] struct {
	Ticket      T         `json:"ticket"`
	MagicNumber int       `json:"magic_number"`
	Symbol      string    `json:"symbol"`
	OrderType   OrderType `json:"order_type"`
	Lots        float64   `json:"lots"`
	OpenPrice   float64   `json:"open_price"`
	ClosePrice  float64   `json:"close_price"`
	OpenTime    string    `json:"open_time"`
	CloseTime   string    `json:"close_time"`
	Expiration  string    `json:"expiration"`
	SL          float64   `json:"sl"`
	TP          float64   `json:"tp"`
	Profit      float64   `json:"profit"`
	Commission  float64   `json:"commission"`
	Swap        float64   `json:"swap"`
	Comment     string    `json:"comment"`
}

// MT4Order and MT5Order are the dialect specific order records.
type (
	MT4Order = Order[MT4Ticket]
	MT5Order = Order[MT5Ticket]
)

// IsPending reports whether the order has not been filled yet.
func (o Order[T]) IsPending() bool { return o.OrderType.IsPending() }

// IsBuy reports whether the order is on the long side.
func (o Order[T]) IsBuy() bool { return o.OrderType.IsBuy() }

// OpenedAt parses OpenTime in the terminal's layout.
func (o Order[T]) OpenedAt() (time.Time, bool) { return ParseTerminalTime(o.OpenTime) }

// ClosedAt parses CloseTime; it reports false for open orders.
func (o Order[T]) ClosedAt() (time.Time, bool) { return ParseTerminalTime(o.CloseTime) }

// ExpiresAt parses Expiration; it reports false when no expiration is set.
func (o Order[T]) ExpiresAt() (time.Time, bool) { return ParseTerminalTime(o.Expiration) }

func (o Order[T]) String() string {
	return fmt.Sprintf("Order{ticket=%d, magicNumber=%d, symbol='%s', orderType=%s, lots=%g, openPrice=%g, closePrice=%g, openTime='%s', closeTime='%s', expiration='%s', sl=%g, tp=%g, profit=%g, commission=%g, swap=%g, comment='%s'}",
		o.Ticket, o.MagicNumber, o.Symbol, o.OrderType, o.Lots, o.OpenPrice, o.ClosePrice,
		o.OpenTime, o.CloseTime, o.Expiration, o.SL, o.TP, o.Profit, o.Commission, o.Swap, o.Comment)
}
