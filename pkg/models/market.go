package models

import "time"

// SymbolTick is a point-in-time price sample. Time is unix seconds.
type SymbolTick struct {
	Time   int64   `json:"time"`
	Bid    float64 `json:"bid"`
	Ask    float64 `json:"ask"`
	Last   float64 `json:"last"`
	Volume int64   `json:"volume"`
}

// Timestamp returns Time as a UTC time.
func (t SymbolTick) Timestamp() time.Time { return time.Unix(t.Time, 0).UTC() }

// OHLCV is one price bar. Time is the bar open in unix seconds.
type OHLCV struct {
	Time       int64   `json:"time"`
	Open       float64 `json:"open"`
	High       float64 `json:"high"`
	Low        float64 `json:"low"`
	Close      float64 `json:"close"`
	TickVolume int64   `json:"tick_volume"`
}

// Timestamp returns Time as a UTC time.
func (b OHLCV) Timestamp() time.Time { return time.Unix(b.Time, 0).UTC() }
