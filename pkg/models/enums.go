package models

import "fmt"

// The mode enumerations below are informational and tolerate values a newer
// terminal may add: unknown ids decode fine and print as Unknown(n).

// AccountTradeMode is the kind of trading account.
type AccountTradeMode int

const (
	AccountTradeModeDemo AccountTradeMode = iota
	AccountTradeModeContest
	AccountTradeModeReal
)

func (m AccountTradeMode) String() string {
	return enumName(int(m), "ACCOUNT_TRADE_MODE_DEMO", "ACCOUNT_TRADE_MODE_CONTEST", "ACCOUNT_TRADE_MODE_REAL")
}

// AccountStopoutMode says how margin_so_call and margin_so_so are expressed.
type AccountStopoutMode int

const (
	AccountStopoutModePercent AccountStopoutMode = iota
	AccountStopoutModeMoney
)

func (m AccountStopoutMode) String() string {
	return enumName(int(m), "ACCOUNT_STOPOUT_MODE_PERCENT", "ACCOUNT_STOPOUT_MODE_MONEY")
}

// SymbolTradeMode restricts which trades are allowed on a symbol.
type SymbolTradeMode int

const (
	SymbolTradeModeDisabled SymbolTradeMode = iota
	SymbolTradeModeLongOnly
	SymbolTradeModeShortOnly
	SymbolTradeModeCloseOnly
	SymbolTradeModeFull
)

func (m SymbolTradeMode) String() string {
	return enumName(int(m), "SYMBOL_TRADE_MODE_DISABLED", "SYMBOL_TRADE_MODE_LONGONLY",
		"SYMBOL_TRADE_MODE_SHORTONLY", "SYMBOL_TRADE_MODE_CLOSEONLY", "SYMBOL_TRADE_MODE_FULL")
}

// SymbolTradeExecution is the deal execution mode of a symbol.
type SymbolTradeExecution int

const (
	SymbolTradeExecutionRequest SymbolTradeExecution = iota
	SymbolTradeExecutionInstant
	SymbolTradeExecutionMarket
	SymbolTradeExecutionExchange
)

func (m SymbolTradeExecution) String() string {
	return enumName(int(m), "SYMBOL_TRADE_EXECUTION_REQUEST", "SYMBOL_TRADE_EXECUTION_INSTANT",
		"SYMBOL_TRADE_EXECUTION_MARKET", "SYMBOL_TRADE_EXECUTION_EXCHANGE")
}

// SymbolSwapMode is how swap_long and swap_short are calculated.
type SymbolSwapMode int

const (
	SymbolSwapModeDisabled SymbolSwapMode = iota
	SymbolSwapModePoints
	SymbolSwapModeCurrencySymbol
	SymbolSwapModeCurrencyMargin
	SymbolSwapModeCurrencyDeposit
	SymbolSwapModeInterestCurrent
	SymbolSwapModeInterestOpen
	SymbolSwapModeReopenCurrent
	SymbolSwapModeReopenBid
)

func (m SymbolSwapMode) String() string {
	return enumName(int(m), "SYMBOL_SWAP_MODE_DISABLED", "SYMBOL_SWAP_MODE_POINTS",
		"SYMBOL_SWAP_MODE_CURRENCY_SYMBOL", "SYMBOL_SWAP_MODE_CURRENCY_MARGIN",
		"SYMBOL_SWAP_MODE_CURRENCY_DEPOSIT", "SYMBOL_SWAP_MODE_INTEREST_CURRENT",
		"SYMBOL_SWAP_MODE_INTEREST_OPEN", "SYMBOL_SWAP_MODE_REOPEN_CURRENT",
		"SYMBOL_SWAP_MODE_REOPEN_BID")
}

// SymbolCalcMode is the margin calculation mode of a symbol.
type SymbolCalcMode int

const (
	SymbolCalcModeForex SymbolCalcMode = iota
	SymbolCalcModeCFD
	SymbolCalcModeFutures
	SymbolCalcModeCFDIndex
)

func (m SymbolCalcMode) String() string {
	return enumName(int(m), "SYMBOL_CALC_MODE_FOREX", "SYMBOL_CALC_MODE_CFD",
		"SYMBOL_CALC_MODE_FUTURES", "SYMBOL_CALC_MODE_CFDINDEX")
}

// DayOfWeek follows the terminal's numbering, Sunday first.
type DayOfWeek int

const (
	Sunday DayOfWeek = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

func (d DayOfWeek) String() string {
	return enumName(int(d), "SUNDAY", "MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY")
}

func enumName(id int, names ...string) string {
	if id >= 0 && id < len(names) {
		return names[id]
	}
	return fmt.Sprintf("Unknown(%d)", id)
}
