package cli

import (
	"context"
	"fmt"
	"time"

	"metatrader-client/pkg/client"
	mterrors "metatrader-client/pkg/errors"
	"metatrader-client/pkg/indicator"
	"metatrader-client/pkg/models"
	"metatrader-client/pkg/orders"
	"metatrader-client/pkg/timeframe"
)

// Bridge is the dialect independent view of a terminal used by the
// commands. Tickets are always 64-bit here; the MT4 adapter rejects
// tickets that do not fit its 32-bit wire type.
type Bridge interface {
	Dialect() string
	Account(ctx context.Context) (models.Account, error)
	SymbolNames(ctx context.Context) ([]string, error)
	Symbols(ctx context.Context, names ...string) (map[string]models.Symbol, error)
	SignalNames(ctx context.Context) ([]string, error)
	Signals(ctx context.Context, names ...string) (map[string]models.Signal, error)
	OHLCV(ctx context.Context, symbol string, tf timeframe.Timeframe, limit int, timeout time.Duration, offset int) ([]models.OHLCV, error)
	RunIndicator(ctx context.Context, ind indicator.Indicator, timeout time.Duration) (float64, error)
	Orders(ctx context.Context) ([]models.MT5Order, error)
	HistoricalOrders(ctx context.Context) ([]models.MT5Order, error)
	Order(ctx context.Context, ticket int64) (models.MT5Order, error)
	SendOrder(ctx context.Context, o orders.NewOrder) (models.MT5Order, error)
	ModifyOrder(ctx context.Context, m orders.ModifyOrder[int64]) (models.MT5Order, error)
	CloseOrder(ctx context.Context, ticket int64) error
	DeleteOrder(ctx context.Context, ticket int64, closeIfOpened bool) error
	Close() error
}

type dialect[T models.Ticket] struct {
	name string
	c    *client.Client[T]
}

// NewMT4Bridge adapts a 32-bit ticket client.
func NewMT4Bridge(c *client.MT4Client) Bridge {
	return &dialect[models.MT4Ticket]{name: "mt4", c: c}
}

// NewMT5Bridge adapts a 64-bit ticket client.
func NewMT5Bridge(c *client.MT5Client) Bridge {
	return &dialect[models.MT5Ticket]{name: "mt5", c: c}
}

// narrow converts ticket to the dialect's ticket type without truncation.
func narrow[T models.Ticket](ticket int64) (T, error) {
	t := T(ticket)
	if int64(t) != ticket {
		return 0, fmt.Errorf("%w: %d does not fit a 32-bit ticket", mterrors.ErrTicketRange, ticket)
	}
	return t, nil
}

func widen[T models.Ticket](o models.Order[T]) models.MT5Order {
	return models.MT5Order{
		Ticket:      int64(o.Ticket),
		MagicNumber: o.MagicNumber,
		Symbol:      o.Symbol,
		OrderType:   o.OrderType,
		Lots:        o.Lots,
		OpenPrice:   o.OpenPrice,
		ClosePrice:  o.ClosePrice,
		OpenTime:    o.OpenTime,
		CloseTime:   o.CloseTime,
		Expiration:  o.Expiration,
		SL:          o.SL,
		TP:          o.TP,
		Profit:      o.Profit,
		Commission:  o.Commission,
		Swap:        o.Swap,
		Comment:     o.Comment,
	}
}

func widenAll[T models.Ticket](list []models.Order[T]) []models.MT5Order {
	out := make([]models.MT5Order, len(list))
	for i, o := range list {
		out[i] = widen(o)
	}
	return out
}

func (d *dialect[T]) Dialect() string { return d.name }

func (d *dialect[T]) Account(ctx context.Context) (models.Account, error) {
	return d.c.Account(ctx)
}

func (d *dialect[T]) SymbolNames(ctx context.Context) ([]string, error) {
	return d.c.SymbolNames(ctx)
}

func (d *dialect[T]) Symbols(ctx context.Context, names ...string) (map[string]models.Symbol, error) {
	return d.c.Symbols(ctx, names...)
}

func (d *dialect[T]) SignalNames(ctx context.Context) ([]string, error) {
	return d.c.SignalNames(ctx)
}

func (d *dialect[T]) Signals(ctx context.Context, names ...string) (map[string]models.Signal, error) {
	return d.c.Signals(ctx, names...)
}

func (d *dialect[T]) OHLCV(ctx context.Context, symbol string, tf timeframe.Timeframe, limit int, timeout time.Duration, offset int) ([]models.OHLCV, error) {
	return d.c.OHLCVOffset(ctx, symbol, tf, limit, timeout, offset)
}

func (d *dialect[T]) RunIndicator(ctx context.Context, ind indicator.Indicator, timeout time.Duration) (float64, error) {
	if timeout <= 0 {
		return d.c.RunIndicator(ctx, ind)
	}
	return d.c.RunIndicatorTimeout(ctx, ind, timeout)
}

func (d *dialect[T]) Orders(ctx context.Context) ([]models.MT5Order, error) {
	list, err := d.c.Orders(ctx)
	if err != nil {
		return nil, err
	}
	return widenAll(list), nil
}

func (d *dialect[T]) HistoricalOrders(ctx context.Context) ([]models.MT5Order, error) {
	list, err := d.c.HistoricalOrders(ctx)
	if err != nil {
		return nil, err
	}
	return widenAll(list), nil
}

func (d *dialect[T]) Order(ctx context.Context, ticket int64) (models.MT5Order, error) {
	t, err := narrow[T](ticket)
	if err != nil {
		return models.MT5Order{}, err
	}
	o, err := d.c.Order(ctx, t)
	if err != nil {
		return models.MT5Order{}, err
	}
	return widen(o), nil
}

func (d *dialect[T]) SendOrder(ctx context.Context, no orders.NewOrder) (models.MT5Order, error) {
	o, err := d.c.SendOrder(ctx, no)
	if err != nil {
		return models.MT5Order{}, err
	}
	return widen(o), nil
}

func (d *dialect[T]) ModifyOrder(ctx context.Context, m orders.ModifyOrder[int64]) (models.MT5Order, error) {
	t, err := narrow[T](m.Ticket)
	if err != nil {
		return models.MT5Order{}, err
	}
	o, err := d.c.ModifyOrder(ctx, orders.ModifyOrder[T]{
		Ticket:   t,
		Price:    m.Price,
		SL:       m.SL,
		TP:       m.TP,
		SLPoints: m.SLPoints,
		TPPoints: m.TPPoints,
	})
	if err != nil {
		return models.MT5Order{}, err
	}
	return widen(o), nil
}

func (d *dialect[T]) CloseOrder(ctx context.Context, ticket int64) error {
	t, err := narrow[T](ticket)
	if err != nil {
		return err
	}
	return d.c.CloseOrder(ctx, t)
}

func (d *dialect[T]) DeleteOrder(ctx context.Context, ticket int64, closeIfOpened bool) error {
	t, err := narrow[T](ticket)
	if err != nil {
		return err
	}
	return d.c.DeleteOrderWithClose(ctx, t, closeIfOpened)
}

func (d *dialect[T]) Close() error {
	return d.c.Close()
}
