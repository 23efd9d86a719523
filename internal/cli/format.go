package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"metatrader-client/pkg/models"
)

// FormatPrice formats a price with the symbol's number of digits. A negative
// digits value picks a precision from the price magnitude.
func FormatPrice(price float64, digits int) string {
	if digits < 0 {
		switch {
		case math.Abs(price) >= 100:
			digits = 2
		case math.Abs(price) >= 10:
			digits = 3
		default:
			digits = 5
		}
	}
	return strconv.FormatFloat(price, 'f', digits, 64)
}

// FormatMoney formats an amount with thousands separators and currency.
func FormatMoney(amount float64, currency string) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	str := fmt.Sprintf("%.2f", amount)
	parts := strings.Split(str, ".")
	result := groupThousands(parts[0]) + "." + parts[1]
	if negative {
		result = "-" + result
	}
	if currency != "" {
		result += " " + currency
	}
	return result
}

// groupThousands inserts a comma every three digits from the right.
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	head := n % 3
	var b strings.Builder
	if head > 0 {
		b.WriteString(s[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// FormatPnL formats P&L with sign.
func FormatPnL(pnl float64, currency string) string {
	formatted := FormatMoney(pnl, currency)
	if pnl > 0 {
		return "+" + formatted
	}
	return formatted
}

// FormatLots formats a lot size without trailing zeros.
func FormatLots(lots float64) string {
	return strconv.FormatFloat(lots, 'f', -1, 64)
}

// FormatVolume formats volume in compact form.
func FormatVolume(volume int64) string {
	switch {
	case volume >= 1000000000:
		return fmt.Sprintf("%.2fB", float64(volume)/1000000000)
	case volume >= 1000000:
		return fmt.Sprintf("%.2fM", float64(volume)/1000000)
	case volume >= 1000:
		return fmt.Sprintf("%.2fK", float64(volume)/1000)
	}
	return strconv.FormatInt(volume, 10)
}

// FormatUnix formats unix seconds as a UTC terminal timestamp.
func FormatUnix(sec int64) string {
	return models.FormatTerminalTime(time.Unix(sec, 0).UTC())
}

// FormatDuration formats a duration in human-readable form.
func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	} else if d < time.Hour {
		return fmt.Sprintf("%dm %ds", int(d.Minutes()), int(d.Seconds())%60)
	} else if d < 24*time.Hour {
		return fmt.Sprintf("%dh %dm", int(d.Hours()), int(d.Minutes())%60)
	}
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	return fmt.Sprintf("%dd %dh", days, hours)
}

// FormatOHLC formats OHLC data.
func FormatOHLC(bar models.OHLCV, digits int) string {
	return fmt.Sprintf("O: %s  H: %s  L: %s  C: %s",
		FormatPrice(bar.Open, digits), FormatPrice(bar.High, digits),
		FormatPrice(bar.Low, digits), FormatPrice(bar.Close, digits))
}

// FormatBidAsk formats bid/ask with the spread in points.
func FormatBidAsk(s models.Symbol) string {
	return fmt.Sprintf("Bid: %s  Ask: %s  Spread: %d pts",
		FormatPrice(s.Bid(), s.Digits), FormatPrice(s.Ask(), s.Digits), s.SpreadPoints())
}

// TruncateString truncates a string to maxLen with ellipsis.
func TruncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}

// FormatOptional renders v, or a dash for the zero value.
func FormatOptional(v float64, digits int) string {
	if v == 0 {
		return "-"
	}
	return FormatPrice(v, digits)
}
