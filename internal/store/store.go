// Package store provides the local bar cache and order journal.
package store

import (
	"context"
	"time"

	"metatrader-client/pkg/models"
)

// DataStore defines the interface for data persistence.
type DataStore interface {
	// Bars
	SaveBars(ctx context.Context, symbol string, timeframe int, bars []models.OHLCV) error
	GetBars(ctx context.Context, symbol string, timeframe int, filter BarFilter) ([]models.OHLCV, error)
	GetBarsFreshness(ctx context.Context, symbol string, timeframe int) (time.Time, error)
	ListSeries(ctx context.Context) ([]Series, error)

	// Order journal
	LogOrderEvent(ctx context.Context, event *OrderEvent) error
	GetOrderEvents(ctx context.Context, filter EventFilter) ([]OrderEvent, error)

	// Lifecycle
	Close() error
}

// BarFilter selects cached bars. From and To are inclusive unix seconds;
// zero leaves that side open. Limit keeps the most recent bars.
type BarFilter struct {
	From  int64
	To    int64
	Limit int
}

// Series is one cached symbol and timeframe pair.
type Series struct {
	Symbol    string
	Timeframe int
	Bars      int
	First     int64
	Last      int64
}

// OrderEvent is one journaled order action and its outcome.
type OrderEvent struct {
	ID        int64
	Timestamp time.Time
	Action    string
	Ticket    int64
	Symbol    string
	Dialect   string
	Request   string
	Success   bool
	Error     string
}

// EventFilter represents filters for querying the order journal.
type EventFilter struct {
	Action    string
	Symbol    string
	Ticket    int64
	StartDate time.Time
	EndDate   time.Time
	Limit     int
}
