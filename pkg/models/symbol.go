package models

import "math"

// Symbol holds the trading properties of an instrument and its last tick.
type Symbol struct {
	Name              string               `json:"name"`
	Point             float64              `json:"point"`
	Digits            int                  `json:"digits"`
	VolumeMin         float64              `json:"volume_min"`
	VolumeStep        float64              `json:"volume_step"`
	VolumeMax         float64              `json:"volume_max"`
	TradeContractSize float64              `json:"trade_contract_size"`
	TradeTickValue    float64              `json:"trade_tick_value"`
	TradeTickSize     float64              `json:"trade_tick_size"`
	TradeStopsLevel   int                  `json:"trade_stops_level"`
	TradeFreezeLevel  int                  `json:"trade_freeze_level"`
	Select            bool                 `json:"select"`
	Visible           bool                 `json:"visible"`
	Spread            int                  `json:"spread"`
	SpreadFloat       bool                 `json:"spread_float"`
	TradeMode         SymbolTradeMode      `json:"trade_mode"`
	TradeExecMode     SymbolTradeExecution `json:"trade_exemode"`
	TradeCalcMode     SymbolCalcMode       `json:"trade_calc_mode"`
	SwapMode          SymbolSwapMode       `json:"swap_mode"`
	SwapLong          float64              `json:"swap_long"`
	SwapShort         float64              `json:"swap_short"`
	MarginInitial     float64              `json:"margin_initial"`
	MarginMaintenance float64              `json:"margin_maintenance"`
	Tick              SymbolTick           `json:"tick"`
}

// Bid returns the last bid price.
func (s Symbol) Bid() float64 { return s.Tick.Bid }

// Ask returns the last ask price.
func (s Symbol) Ask() float64 { return s.Tick.Ask }

// SpreadPoints returns ask minus bid in points, using the last tick.
func (s Symbol) SpreadPoints() int {
	if s.Point == 0 {
		return 0
	}
	return int(math.Round((s.Tick.Ask - s.Tick.Bid) / s.Point))
}

// Normalize rounds price to the symbol's digits.
func (s Symbol) Normalize(price float64) float64 {
	p := math.Pow10(s.Digits)
	return math.Round(price*p) / p
}
