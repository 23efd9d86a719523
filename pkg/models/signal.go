package models

// Signal describes a public trading signal.
type Signal struct {
	AuthorLogin   string  `json:"author_login"`
	Broker        string  `json:"broker"`
	BrokerServer  string  `json:"broker_server"`
	Name          string  `json:"name"`
	Currency      string  `json:"currency"`
	DatePublished int64   `json:"date_published"`
	DateStarted   int64   `json:"date_started"`
	ID            int64   `json:"id"`
	Leverage      int64   `json:"leverage"`
	Pips          int64   `json:"pips"`
	Rating        int64   `json:"rating"`
	Subscribers   int64   `json:"subscribers"`
	Trades        int64   `json:"trades"`
	TradeMode     int64   `json:"trade_mode"`
	Balance       float64 `json:"balance"`
	Equity        float64 `json:"equity"`
	Gain          float64 `json:"gain"`
	MaxDrawdown   float64 `json:"max_drawdown"`
	Price         float64 `json:"price"`
	ROI           float64 `json:"roi"`
}
