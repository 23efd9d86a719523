package indicator

import (
	"fmt"
	"strconv"
	"strings"
)

// enum is the shared representation of the closed vocabularies below. The
// zero value is unset and refuses to encode, so a discriminator can only
// come from the exported members.
type enum struct {
	id    int
	name  string
	short string
}

// ID returns the wire id.
func (e enum) ID() int { return e.id }

func (e enum) String() string {
	if e.name == "" {
		return "UNSET"
	}
	return e.name
}

// Valid reports whether e is one of the exported members.
func (e enum) Valid() bool { return e.name != "" }

// MarshalJSON encodes the wire id.
func (e enum) MarshalJSON() ([]byte, error) {
	if e.name == "" {
		return nil, fmt.Errorf("indicator: unset enumeration value")
	}
	return []byte(strconv.Itoa(e.id)), nil
}

func (e enum) matches(s string) bool {
	return strings.EqualFold(s, e.name) || strings.EqualFold(s, e.short)
}

// AppliedPrice selects the price series an indicator is computed on.
type AppliedPrice struct{ enum }

var (
	PriceClose    = AppliedPrice{enum{0, "PRICE_CLOSE", "close"}}
	PriceOpen     = AppliedPrice{enum{1, "PRICE_OPEN", "open"}}
	PriceHigh     = AppliedPrice{enum{2, "PRICE_HIGH", "high"}}
	PriceLow      = AppliedPrice{enum{3, "PRICE_LOW", "low"}}
	PriceMedian   = AppliedPrice{enum{4, "PRICE_MEDIAN", "median"}}
	PriceTypical  = AppliedPrice{enum{5, "PRICE_TYPICAL", "typical"}}
	PriceWeighted = AppliedPrice{enum{6, "PRICE_WEIGHTED", "weighted"}}
)

// AppliedPrices lists every AppliedPrice.
func AppliedPrices() []AppliedPrice {
	return []AppliedPrice{PriceClose, PriceOpen, PriceHigh, PriceLow, PriceMedian, PriceTypical, PriceWeighted}
}

// SmoothingMethod selects the moving average algorithm.
type SmoothingMethod struct{ enum }

var (
	MethodSMA  = SmoothingMethod{enum{0, "MODE_SMA", "sma"}}
	MethodEMA  = SmoothingMethod{enum{1, "MODE_EMA", "ema"}}
	MethodSMMA = SmoothingMethod{enum{2, "MODE_SMMA", "smma"}}
	MethodLWMA = SmoothingMethod{enum{3, "MODE_LWMA", "lwma"}}
)

// SmoothingMethods lists every SmoothingMethod.
func SmoothingMethods() []SmoothingMethod {
	return []SmoothingMethod{MethodSMA, MethodEMA, MethodSMMA, MethodLWMA}
}

// PriceField selects the prices Stochastic works on.
type PriceField struct{ enum }

var (
	PriceFieldLowHigh    = PriceField{enum{0, "STO_LOWHIGH", "lowhigh"}}
	PriceFieldCloseClose = PriceField{enum{1, "STO_CLOSECLOSE", "closeclose"}}
)

// PriceFields lists every PriceField.
func PriceFields() []PriceField {
	return []PriceField{PriceFieldLowHigh, PriceFieldCloseClose}
}

// ADXLine selects an ADX output line.
type ADXLine struct{ enum }

var (
	ADXMain    = ADXLine{enum{0, "MODE_MAIN", "main"}}
	ADXPlusDI  = ADXLine{enum{1, "MODE_PLUSDI", "plusdi"}}
	ADXMinusDI = ADXLine{enum{2, "MODE_MINUSDI", "minusdi"}}
)

// ADXLines lists every ADXLine.
func ADXLines() []ADXLine { return []ADXLine{ADXMain, ADXPlusDI, ADXMinusDI} }

// AlligatorLine selects an Alligator output line.
type AlligatorLine struct{ enum }

var (
	AlligatorJaw   = AlligatorLine{enum{1, "MODE_GATORJAW", "jaw"}}
	AlligatorTeeth = AlligatorLine{enum{2, "MODE_GATORTEETH", "teeth"}}
	AlligatorLips  = AlligatorLine{enum{3, "MODE_GATORLIPS", "lips"}}
)

// AlligatorLines lists every AlligatorLine.
func AlligatorLines() []AlligatorLine {
	return []AlligatorLine{AlligatorJaw, AlligatorTeeth, AlligatorLips}
}

// BandsLine selects a Bollinger Bands output line.
type BandsLine struct{ enum }

var (
	BandsMain  = BandsLine{enum{0, "MODE_MAIN", "main"}}
	BandsUpper = BandsLine{enum{1, "MODE_UPPER", "upper"}}
	BandsLower = BandsLine{enum{2, "MODE_LOWER", "lower"}}
)

// BandsLines lists every BandsLine.
func BandsLines() []BandsLine { return []BandsLine{BandsMain, BandsUpper, BandsLower} }

// IchimokuLine selects an Ichimoku Kinko Hyo output line.
type IchimokuLine struct{ enum }

var (
	IchimokuTenkanSen   = IchimokuLine{enum{1, "MODE_TENKANSEN", "tenkansen"}}
	IchimokuKijunSen    = IchimokuLine{enum{2, "MODE_KIJUNSEN", "kijunsen"}}
	IchimokuSenkouSpanA = IchimokuLine{enum{3, "MODE_SENKOUSPANA", "senkouspana"}}
	IchimokuSenkouSpanB = IchimokuLine{enum{4, "MODE_SENKOUSPANB", "senkouspanb"}}
	IchimokuChikouSpan  = IchimokuLine{enum{5, "MODE_CHIKOUSPAN", "chikouspan"}}
)

// IchimokuLines lists every IchimokuLine.
func IchimokuLines() []IchimokuLine {
	return []IchimokuLine{IchimokuTenkanSen, IchimokuKijunSen, IchimokuSenkouSpanA, IchimokuSenkouSpanB, IchimokuChikouSpan}
}

// MACDLine selects the main or signal line of MACD, RVI and Stochastic.
type MACDLine struct{ enum }

var (
	MACDMain   = MACDLine{enum{0, "MODE_MAIN", "main"}}
	MACDSignal = MACDLine{enum{1, "MODE_SIGNAL", "signal"}}
)

// MACDLines lists every MACDLine.
func MACDLines() []MACDLine { return []MACDLine{MACDMain, MACDSignal} }

// UpperLowerLine selects the upper or lower line of Envelopes, Fractals and Gator.
type UpperLowerLine struct{ enum }

var (
	LineUpper = UpperLowerLine{enum{1, "MODE_UPPER", "upper"}}
	LineLower = UpperLowerLine{enum{2, "MODE_LOWER", "lower"}}
)

// UpperLowerLines lists every UpperLowerLine.
func UpperLowerLines() []UpperLowerLine { return []UpperLowerLine{LineUpper, LineLower} }

type member interface {
	matches(string) bool
}

// lookup finds the member named s, by wire name or short name.
func lookup[E member](s string, members []E) (E, bool) {
	for _, m := range members {
		if m.matches(s) {
			return m, true
		}
	}
	var zero E
	return zero, false
}
