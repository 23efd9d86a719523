// Package models contains the value types exchanged with the terminal.
package models

// Ticket is the identifier width of a protocol dialect. MT4 terminals use
// 32-bit tickets and MT5 terminals use 64-bit tickets. Decoding a ticket
// that does not fit the dialect's width fails; values are never truncated.
type Ticket interface {
	~int32 | ~int64
}

// Dialect ticket widths.
type (
	MT4Ticket = int32
	MT5Ticket = int64
)
