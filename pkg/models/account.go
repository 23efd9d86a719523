package models

// Account is a snapshot of the trading account.
type Account struct {
	Login        int64              `json:"login"`
	TradeMode    AccountTradeMode   `json:"trade_mode"`
	Name         string             `json:"name"`
	Server       string             `json:"server"`
	Currency     string             `json:"currency"`
	Company      string             `json:"company"`
	Leverage     int64              `json:"leverage"`
	LimitOrders  int                `json:"limit_orders"`
	MarginSOMode AccountStopoutMode `json:"margin_so_mode"`
	TradeAllowed bool               `json:"trade_allowed"`
	TradeExpert  int                `json:"trade_expert"`
	Balance      float64            `json:"balance"`
	Credit       float64            `json:"credit"`
	Profit       float64            `json:"profit"`
	Equity       float64            `json:"equity"`
	Margin       float64            `json:"margin"`
	MarginFree   float64            `json:"margin_free"`
	MarginLevel  float64            `json:"margin_level"`
	MarginSOCall float64            `json:"margin_so_call"`
	MarginSOSO   float64            `json:"margin_so_so"`
}

// ExpertTradingAllowed reports whether expert advisors may trade this account.
func (a Account) ExpertTradingAllowed() bool { return a.TradeExpert != 0 }
