// Package orders builds the request payloads for trade operations.
//
// Builders are staged: a constructor binds the target (a symbol or a
// ticket) and chained setters add optional fields. Unset fields are left
// out of the wire payload, so an absent sl means "leave unchanged" while
// SL(0) is sent as an explicit zero. Absolute and points-relative stops may
// both be set; the terminal decides which takes precedence.
package orders

import (
	"fmt"

	mterrors "metatrader-client/pkg/errors"
	"metatrader-client/pkg/models"
)

// NewOrder is the payload of an order send request.
type NewOrder struct {
	Symbol      string            `json:"symbol"`
	OrderType   *models.OrderType `json:"order_type,omitempty"`
	Lots        *float64          `json:"lots,omitempty"`
	Price       *float64          `json:"price,omitempty"`
	Slippage    *int              `json:"slippage,omitempty"`
	SL          *float64          `json:"sl,omitempty"`
	TP          *float64          `json:"tp,omitempty"`
	SLPoints    *int              `json:"sl_points,omitempty"`
	TPPoints    *int              `json:"tp_points,omitempty"`
	Comment     *string           `json:"comment,omitempty"`
	MagicNumber *int              `json:"magic_number,omitempty"`
}

// NewOrderBuilder accumulates the optional fields of a NewOrder.
type NewOrderBuilder struct {
	order NewOrder
}

// NewOrderFor starts a new order on the named symbol.
func NewOrderFor(symbol string) *NewOrderBuilder {
	return &NewOrderBuilder{order: NewOrder{Symbol: symbol}}
}

// NewOrderForSymbol starts a new order on sym.
func NewOrderForSymbol(sym models.Symbol) *NewOrderBuilder {
	return NewOrderFor(sym.Name)
}

// OrderType sets the order kind.
func (b *NewOrderBuilder) OrderType(t models.OrderType) *NewOrderBuilder {
	b.order.OrderType = &t
	return b
}

// Lots sets the volume.
func (b *NewOrderBuilder) Lots(lots float64) *NewOrderBuilder {
	b.order.Lots = &lots
	return b
}

// Price sets the open price. Market orders may omit it.
func (b *NewOrderBuilder) Price(price float64) *NewOrderBuilder {
	b.order.Price = &price
	return b
}

// Slippage sets the maximum price deviation in points.
func (b *NewOrderBuilder) Slippage(points int) *NewOrderBuilder {
	b.order.Slippage = &points
	return b
}

// SL sets an absolute stop-loss price.
func (b *NewOrderBuilder) SL(price float64) *NewOrderBuilder {
	b.order.SL = &price
	return b
}

// TP sets an absolute take-profit price.
func (b *NewOrderBuilder) TP(price float64) *NewOrderBuilder {
	b.order.TP = &price
	return b
}

// SLPoints sets the stop-loss as a distance from the open price.
func (b *NewOrderBuilder) SLPoints(points int) *NewOrderBuilder {
	b.order.SLPoints = &points
	return b
}

// TPPoints sets the take-profit as a distance from the open price.
func (b *NewOrderBuilder) TPPoints(points int) *NewOrderBuilder {
	b.order.TPPoints = &points
	return b
}

// Comment sets the order comment.
func (b *NewOrderBuilder) Comment(comment string) *NewOrderBuilder {
	b.order.Comment = &comment
	return b
}

// MagicNumber tags the order with a strategy id.
func (b *NewOrderBuilder) MagicNumber(magic int) *NewOrderBuilder {
	b.order.MagicNumber = &magic
	return b
}

// Build returns the payload. The symbol, order type and lots are required;
// everything else is passed through for the terminal to judge.
func (b *NewOrderBuilder) Build() (NewOrder, error) {
	o := b.order
	switch {
	case o.Symbol == "":
		return NewOrder{}, invalid("symbol", o.Symbol, "required")
	case o.OrderType == nil:
		return NewOrder{}, invalid("order_type", nil, "required")
	case o.Lots == nil:
		return NewOrder{}, invalid("lots", nil, "required")
	}
	if _, ok := models.OrderTypeFromID(o.OrderType.ID()); !ok {
		return NewOrder{}, invalid("order_type", o.OrderType.ID(), "unknown order type")
	}
	return o.clone(), nil
}

func (o NewOrder) clone() NewOrder {
	c := o
	c.OrderType = ptr(o.OrderType)
	c.Lots = ptr(o.Lots)
	c.Price = ptr(o.Price)
	c.Slippage = ptr(o.Slippage)
	c.SL = ptr(o.SL)
	c.TP = ptr(o.TP)
	c.SLPoints = ptr(o.SLPoints)
	c.TPPoints = ptr(o.TPPoints)
	c.Comment = ptr(o.Comment)
	c.MagicNumber = ptr(o.MagicNumber)
	return c
}

// ModifyOrder is the payload of an order modify request.
type ModifyOrder[T models.Ticket] struct {
	Ticket   T        `json:"ticket"`
	Price    *float64 `json:"price,omitempty"`
	SL       *float64 `json:"sl,omitempty"`
	TP       *float64 `json:"tp,omitempty"`
	SLPoints *int     `json:"sl_points,omitempty"`
	TPPoints *int     `json:"tp_points,omitempty"`
}

// ModifyOrderBuilder accumulates the optional fields of a ModifyOrder.
type ModifyOrderBuilder[T models.Ticket] struct {
	order ModifyOrder[T]
}

// ModifyTicket starts a modification of the order with the given ticket.
func ModifyTicket[T models.Ticket](ticket T) *ModifyOrderBuilder[T] {
	return &ModifyOrderBuilder[T]{order: ModifyOrder[T]{Ticket: ticket}}
}

// ModifyOrderOf starts a modification of o.
func ModifyOrderOf[T models.Ticket](o models.Order[T]) *ModifyOrderBuilder[T] {
	return ModifyTicket(o.Ticket)
}

// Price moves the open price of a pending order.
func (b *ModifyOrderBuilder[T]) Price(price float64) *ModifyOrderBuilder[T] {
	b.order.Price = &price
	return b
}

// SL sets an absolute stop-loss price. SL(0) removes the stop.
func (b *ModifyOrderBuilder[T]) SL(price float64) *ModifyOrderBuilder[T] {
	b.order.SL = &price
	return b
}

// TP sets an absolute take-profit price. TP(0) removes the target.
func (b *ModifyOrderBuilder[T]) TP(price float64) *ModifyOrderBuilder[T] {
	b.order.TP = &price
	return b
}

// SLPoints sets the stop-loss as a distance from the open price.
func (b *ModifyOrderBuilder[T]) SLPoints(points int) *ModifyOrderBuilder[T] {
	b.order.SLPoints = &points
	return b
}

// TPPoints sets the take-profit as a distance from the open price.
func (b *ModifyOrderBuilder[T]) TPPoints(points int) *ModifyOrderBuilder[T] {
	b.order.TPPoints = &points
	return b
}

// Build returns the payload.
func (b *ModifyOrderBuilder[T]) Build() ModifyOrder[T] {
	o := b.order
	o.Price = ptr(o.Price)
	o.SL = ptr(o.SL)
	o.TP = ptr(o.TP)
	o.SLPoints = ptr(o.SLPoints)
	o.TPPoints = ptr(o.TPPoints)
	return o
}

// CloseOrder is the payload of an order close request.
type CloseOrder[T models.Ticket] struct {
	Ticket T `json:"ticket"`
}

// DeleteOrder is the payload of a pending order delete request. When the
// ticket has already been filled, CloseIfOpened makes the terminal close
// the position at market instead of failing.
type DeleteOrder[T models.Ticket] struct {
	Ticket        T    `json:"ticket"`
	CloseIfOpened bool `json:"close_if_opened"`
}

// DefaultCloseIfOpened is the close_if_opened value used when a delete
// request does not specify one.
const DefaultCloseIfOpened = true

func invalid(field string, value interface{}, msg string) error {
	return fmt.Errorf("%w: %w", mterrors.ErrInvalidOrder, mterrors.NewValidationError(field, value, msg))
}

// ptr copies the pointee so built payloads do not alias the builder.
func ptr[V any](p *V) *V {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
