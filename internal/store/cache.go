package store

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	mterrors "metatrader-client/pkg/errors"
	"metatrader-client/pkg/models"
)

// FetchFunc loads limit bars from the terminal, starting offset bars back
// from the most recent one.
type FetchFunc func(ctx context.Context, symbol string, timeframe, limit, offset int) ([]models.OHLCV, error)

// BarCache fetches bars from the terminal, writes them through to the
// store and serves the cache when the terminal cannot be reached.
type BarCache struct {
	store  DataStore
	logger zerolog.Logger
}

// NewBarCache creates a new bar cache over store.
func NewBarCache(store DataStore, logger zerolog.Logger) *BarCache {
	return &BarCache{
		store:  store,
		logger: logger,
	}
}

// GetBarsWithCache returns fresh bars when fetch succeeds. Only an unreachable
// terminal falls back to the newest cached bars, and only when offset is
// zero; the second result reports that the cache was used. Server and
// decode errors are returned as-is.
func (c *BarCache) GetBarsWithCache(ctx context.Context, symbol string, timeframe, limit, offset int, fetch FetchFunc) ([]models.OHLCV, bool, error) {
	bars, err := fetch(ctx, symbol, timeframe, limit, offset)
	if err == nil {
		if err := c.store.SaveBars(ctx, symbol, timeframe, bars); err != nil {
			c.logger.Warn().Err(err).Str("symbol", symbol).Msg("failed to cache bars")
		}
		return bars, false, nil
	}
	if offset > 0 || !unreachable(err) {
		return nil, false, err
	}

	cached, cacheErr := c.store.GetBars(ctx, symbol, timeframe, BarFilter{Limit: limit})
	if cacheErr != nil || len(cached) == 0 {
		return nil, false, fmt.Errorf("failed to fetch bars and no cache available: %w", err)
	}

	c.logger.Warn().
		Err(err).
		Str("symbol", symbol).
		Int("timeframe", timeframe).
		Int("bars", len(cached)).
		Msg("serving cached bars")
	return cached, true, nil
}

// unreachable reports whether err means the terminal never answered.
func unreachable(err error) bool {
	return mterrors.Is(err, mterrors.ErrNoResponse) ||
		mterrors.Is(err, mterrors.ErrTransport) ||
		mterrors.Is(err, mterrors.ErrSessionBroken)
}

// FormatFreshness describes how old the newest bar is relative to now.
func FormatFreshness(last, now time.Time) string {
	if last.IsZero() {
		return "never fetched"
	}

	age := now.Sub(last)
	switch {
	case age < time.Minute:
		return "just now"
	case age < time.Hour:
		return fmt.Sprintf("%d minutes ago", int(age.Minutes()))
	case age < 24*time.Hour:
		return fmt.Sprintf("%d hours ago", int(age.Hours()))
	default:
		return fmt.Sprintf("%d days ago", int(age.Hours()/24))
	}
}
