package client

import (
	"context"
	"time"

	mterrors "metatrader-client/pkg/errors"
	"metatrader-client/pkg/indicator"
	"metatrader-client/pkg/models"
	"metatrader-client/pkg/orders"
	"metatrader-client/pkg/protocol"
	"metatrader-client/pkg/timeframe"
)

// Account returns a snapshot of the trading account.
func (c *Client[T]) Account(ctx context.Context) (models.Account, error) {
	return fetch[models.Account](ctx, c, protocol.ActionGetAccountInfo, nil)
}

// SymbolNames lists the symbols known to the terminal.
func (c *Client[T]) SymbolNames(ctx context.Context) ([]string, error) {
	return fetch[[]string](ctx, c, protocol.ActionGetSymbols, nil)
}

// Symbols returns the named symbols keyed by name. With no names it
// returns an empty map without contacting the terminal.
func (c *Client[T]) Symbols(ctx context.Context, names ...string) (map[string]models.Symbol, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return map[string]models.Symbol{}, nil
	}
	return fetch[map[string]models.Symbol](ctx, c, protocol.ActionGetSymbolInfo, protocol.Params{"names": names})
}

// Symbol returns one symbol, or nil when the terminal does not report it.
func (c *Client[T]) Symbol(ctx context.Context, name string) (*models.Symbol, error) {
	m, err := c.Symbols(ctx, name)
	if err != nil {
		return nil, err
	}
	s, ok := m[name]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

// SignalNames lists the trading signals available to the terminal.
func (c *Client[T]) SignalNames(ctx context.Context) ([]string, error) {
	return fetch[[]string](ctx, c, protocol.ActionGetSignals, nil)
}

// Signals returns the named signals keyed by name. With no names it returns
// an empty map without contacting the terminal.
func (c *Client[T]) Signals(ctx context.Context, names ...string) (map[string]models.Signal, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return map[string]models.Signal{}, nil
	}
	return fetch[map[string]models.Signal](ctx, c, protocol.ActionGetSignalInfo, protocol.Params{"names": names})
}

// Signal returns one signal, or nil when the terminal does not report it.
func (c *Client[T]) Signal(ctx context.Context, name string) (*models.Signal, error) {
	m, err := c.Signals(ctx, name)
	if err != nil {
		return nil, err
	}
	s, ok := m[name]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

// OHLCV returns up to limit of the most recent bars. timeout tells the
// terminal how long it may wait for history to load.
func (c *Client[T]) OHLCV(ctx context.Context, symbol string, tf timeframe.Timeframe, limit int, timeout time.Duration) ([]models.OHLCV, error) {
	return c.OHLCVOffset(ctx, symbol, tf, limit, timeout, 0)
}

// OHLCVOffset is OHLCV starting offset bars back from the most recent bar.
func (c *Client[T]) OHLCVOffset(ctx context.Context, symbol string, tf timeframe.Timeframe, limit int, timeout time.Duration, offset int) ([]models.OHLCV, error) {
	if tf == nil {
		return nil, mterrors.ErrInvalidTimeframe
	}
	return fetch[[]models.OHLCV](ctx, c, protocol.ActionGetOHLCV, protocol.Params{
		"symbol":    symbol,
		"timeframe": tf.Minutes(),
		"limit":     limit,
		"timeout":   timeout.Milliseconds(),
		"offset":    offset,
	})
}

// RunIndicator evaluates ind with the default chart load timeout.
func (c *Client[T]) RunIndicator(ctx context.Context, ind indicator.Indicator) (float64, error) {
	return c.RunIndicatorTimeout(ctx, ind, c.indicatorTimeout)
}

// RunIndicatorTimeout evaluates ind, letting the terminal wait up to
// timeout for chart data.
func (c *Client[T]) RunIndicatorTimeout(ctx context.Context, ind indicator.Indicator, timeout time.Duration) (float64, error) {
	return fetch[float64](ctx, c, protocol.ActionRunIndicator, protocol.Params{
		"indicator": ind.Name(),
		"argv":      ind.Args(),
		"timeout":   timeout.Milliseconds(),
	})
}

// Orders lists open positions and pending orders.
func (c *Client[T]) Orders(ctx context.Context) ([]models.Order[T], error) {
	return fetch[[]models.Order[T]](ctx, c, protocol.ActionGetOrders, nil)
}

// HistoricalOrders lists closed and deleted orders.
func (c *Client[T]) HistoricalOrders(ctx context.Context) ([]models.Order[T], error) {
	return fetch[[]models.Order[T]](ctx, c, protocol.ActionGetHistoricalOrders, nil)
}

// Order looks up an order by ticket.
func (c *Client[T]) Order(ctx context.Context, ticket T) (models.Order[T], error) {
	return fetch[models.Order[T]](ctx, c, protocol.ActionGetOrder, protocol.Params{"ticket": ticket})
}

// SendOrder places an order and returns it as the terminal recorded it.
func (c *Client[T]) SendOrder(ctx context.Context, o orders.NewOrder) (models.Order[T], error) {
	return fetch[models.Order[T]](ctx, c, protocol.ActionDoOrderSend, o)
}

// ModifyOrder changes an order and returns its new state.
func (c *Client[T]) ModifyOrder(ctx context.Context, m orders.ModifyOrder[T]) (models.Order[T], error) {
	return fetch[models.Order[T]](ctx, c, protocol.ActionDoOrderModify, m)
}

// CloseOrder closes an open position at market.
func (c *Client[T]) CloseOrder(ctx context.Context, ticket T) error {
	return c.exec(ctx, protocol.ActionDoOrderClose, orders.CloseOrder[T]{Ticket: ticket})
}

// CloseOrderOf closes o.
func (c *Client[T]) CloseOrderOf(ctx context.Context, o models.Order[T]) error {
	return c.CloseOrder(ctx, o.Ticket)
}

// DeleteOrder deletes a pending order. A ticket that has already been
// filled is closed at market.
func (c *Client[T]) DeleteOrder(ctx context.Context, ticket T) error {
	return c.DeleteOrderWithClose(ctx, ticket, orders.DefaultCloseIfOpened)
}

// DeleteOrderOf deletes o, closing it at market if it has been filled.
func (c *Client[T]) DeleteOrderOf(ctx context.Context, o models.Order[T]) error {
	return c.DeleteOrder(ctx, o.Ticket)
}

// DeleteOrderWithClose deletes a pending order. If the ticket has been
// filled, closeIfOpened decides between closing it and failing.
func (c *Client[T]) DeleteOrderWithClose(ctx context.Context, ticket T, closeIfOpened bool) error {
	return c.exec(ctx, protocol.ActionDoOrderDelete, orders.DeleteOrder[T]{Ticket: ticket, CloseIfOpened: closeIfOpened})
}

// DeleteOrderOfWithClose is DeleteOrderWithClose for o.
func (c *Client[T]) DeleteOrderOfWithClose(ctx context.Context, o models.Order[T], closeIfOpened bool) error {
	return c.DeleteOrderWithClose(ctx, o.Ticket, closeIfOpened)
}
