package indicator

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	mterrors "metatrader-client/pkg/errors"
	"metatrader-client/pkg/timeframe"
)

// Kind is the type of one positional parameter.
type Kind int

const (
	KindSymbol Kind = iota
	KindTimeframe
	KindInt
	KindFloat
	KindAppliedPrice
	KindSmoothingMethod
	KindPriceField
	KindADXLine
	KindAlligatorLine
	KindBandsLine
	KindIchimokuLine
	KindMACDLine
	KindUpperLowerLine
)

var kindNames = [...]string{
	"symbol", "timeframe", "int", "float", "applied_price", "ma_method", "price_field",
	"adx_line", "alligator_line", "bands_line", "ichimoku_line", "macd_line", "upper_lower_line",
}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Choices lists accepted short names for enumeration kinds.
func (k Kind) Choices() []string {
	switch k {
	case KindAppliedPrice:
		return shorts(AppliedPrices())
	case KindSmoothingMethod:
		return shorts(SmoothingMethods())
	case KindPriceField:
		return shorts(PriceFields())
	case KindADXLine:
		return shorts(ADXLines())
	case KindAlligatorLine:
		return shorts(AlligatorLines())
	case KindBandsLine:
		return shorts(BandsLines())
	case KindIchimokuLine:
		return shorts(IchimokuLines())
	case KindMACDLine:
		return shorts(MACDLines())
	case KindUpperLowerLine:
		return shorts(UpperLowerLines())
	}
	return nil
}

func shorts[E interface{ shortName() string }](members []E) []string {
	out := make([]string, len(members))
	for i, m := range members {
		out[i] = m.shortName()
	}
	return out
}

func (e enum) shortName() string { return e.short }

// Param describes one positional parameter.
type Param struct {
	Name string
	Kind Kind
}

// Entry is a registered indicator factory.
type Entry struct {
	Name        string
	Description string
	Params      []Param
	build       func(a *argv) Indicator
}

// Usage renders the call signature, e.g. "iATR <symbol> <timeframe> <period> <shift>".
func (e Entry) Usage() string {
	var b strings.Builder
	b.WriteString(e.Name)
	for _, p := range e.Params {
		b.WriteString(" <")
		b.WriteString(p.Name)
		b.WriteString(">")
	}
	return b.String()
}

// Parse converts textual arguments to the entry's parameter kinds and calls
// the factory.
func (e Entry) Parse(values []string) (Indicator, error) {
	if len(values) != len(e.Params) {
		return Indicator{}, mterrors.NewValidationError("argv", len(values),
			fmt.Sprintf("%s takes %d arguments", e.Name, len(e.Params)))
	}
	parsed := make([]interface{}, len(values))
	for i, p := range e.Params {
		v, err := parseValue(p.Kind, strings.TrimSpace(values[i]))
		if err != nil {
			return Indicator{}, mterrors.NewValidationError(p.Name, values[i], err.Error())
		}
		parsed[i] = v
	}
	return e.build(&argv{vals: parsed}), nil
}

var registry = map[string]Entry{}

func register(name, description string, params []Param, build func(a *argv) Indicator) {
	registry[name] = Entry{Name: name, Description: description, Params: params, build: build}
}

// Lookup returns the entry for a terminal function name such as iMA.
func Lookup(name string) (Entry, bool) {
	e, ok := registry[name]
	return e, ok
}

// Names returns all registered names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Parse builds the named indicator from textual arguments.
func Parse(name string, values []string) (Indicator, error) {
	e, ok := Lookup(name)
	if !ok {
		return Indicator{}, fmt.Errorf("%w: %s", mterrors.ErrUnknownIndicator, name)
	}
	return e.Parse(values)
}

func parseValue(k Kind, s string) (interface{}, error) {
	var (
		v  interface{}
		ok bool
	)
	switch k {
	case KindSymbol:
		if s == "" {
			return nil, fmt.Errorf("empty symbol")
		}
		return s, nil
	case KindTimeframe:
		tf, ok := timeframe.Parse(s)
		if !ok {
			return nil, mterrors.ErrInvalidTimeframe
		}
		return tf, nil
	case KindInt:
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("not an integer")
		}
		return n, nil
	case KindFloat:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("not a number")
		}
		return f, nil
	case KindAppliedPrice:
		v, ok = lookup(s, AppliedPrices())
	case KindSmoothingMethod:
		v, ok = lookup(s, SmoothingMethods())
	case KindPriceField:
		v, ok = lookup(s, PriceFields())
	case KindADXLine:
		v, ok = lookup(s, ADXLines())
	case KindAlligatorLine:
		v, ok = lookup(s, AlligatorLines())
	case KindBandsLine:
		v, ok = lookup(s, BandsLines())
	case KindIchimokuLine:
		v, ok = lookup(s, IchimokuLines())
	case KindMACDLine:
		v, ok = lookup(s, MACDLines())
	case KindUpperLowerLine:
		v, ok = lookup(s, UpperLowerLines())
	default:
		return nil, fmt.Errorf("unsupported kind %s", k)
	}
	if !ok {
		return nil, fmt.Errorf("expected one of %s", strings.Join(k.Choices(), ", "))
	}
	return v, nil
}

// argv hands parsed values to a factory in order.
type argv struct {
	vals []interface{}
	i    int
}

func (a *argv) next() interface{} {
	v := a.vals[a.i]
	a.i++
	return v
}

func (a *argv) str() string                  { return a.next().(string) }
func (a *argv) tf() timeframe.Timeframe      { return a.next().(timeframe.Timeframe) }
func (a *argv) integer() int                 { return a.next().(int) }
func (a *argv) float() float64               { return a.next().(float64) }
func (a *argv) applied() AppliedPrice        { return a.next().(AppliedPrice) }
func (a *argv) method() SmoothingMethod      { return a.next().(SmoothingMethod) }
func (a *argv) priceField() PriceField       { return a.next().(PriceField) }
func (a *argv) adxLine() ADXLine             { return a.next().(ADXLine) }
func (a *argv) alligatorLine() AlligatorLine { return a.next().(AlligatorLine) }
func (a *argv) bandsLine() BandsLine         { return a.next().(BandsLine) }
func (a *argv) ichimokuLine() IchimokuLine   { return a.next().(IchimokuLine) }
func (a *argv) macdLine() MACDLine           { return a.next().(MACDLine) }
func (a *argv) upperLower() UpperLowerLine   { return a.next().(UpperLowerLine) }

func p(name string, k Kind) Param { return Param{Name: name, Kind: k} }

var (
	pSymbol    = p("symbol", KindSymbol)
	pTimeframe = p("timeframe", KindTimeframe)
	pShift     = p("shift", KindInt)
	pPeriod    = p("period", KindInt)
	pApplied   = p("applied_price", KindAppliedPrice)
	pMethod    = p("ma_method", KindSmoothingMethod)
)

func params(ps ...Param) []Param {
	return append([]Param{pSymbol, pTimeframe}, ps...)
}

var alligatorParams = params(
	p("jaw_period", KindInt), p("jaw_shift", KindInt),
	p("teeth_period", KindInt), p("teeth_shift", KindInt),
	p("lips_period", KindInt), p("lips_shift", KindInt),
	pMethod, pApplied,
)

func init() {
	register("iAC", "Accelerator Oscillator", params(pShift),
		func(a *argv) Indicator {
			return IAC(a.str(), a.tf(), a.integer())
		})
	register("iAD", "Accumulation/Distribution", params(pShift),
		func(a *argv) Indicator {
			return IAD(a.str(), a.tf(), a.integer())
		})
	register("iADX", "Average Directional Movement Index",
		params(pPeriod, pApplied, p("mode", KindADXLine), pShift),
		func(a *argv) Indicator {
			return IADX(a.str(), a.tf(), a.integer(), a.applied(), a.adxLine(), a.integer())
		})
	register("iAlligator", "Alligator",
		append(append([]Param{}, alligatorParams...), p("mode", KindAlligatorLine), pShift),
		func(a *argv) Indicator {
			return IAlligator(a.str(), a.tf(), a.integer(), a.integer(), a.integer(), a.integer(), a.integer(), a.integer(),
				a.method(), a.applied(), a.alligatorLine(), a.integer())
		})
	register("iAO", "Awesome Oscillator", params(pShift),
		func(a *argv) Indicator {
			return IAO(a.str(), a.tf(), a.integer())
		})
	register("iATR", "Average True Range", params(pPeriod, pShift),
		func(a *argv) Indicator {
			return IATR(a.str(), a.tf(), a.integer(), a.integer())
		})
	register("iBearsPower", "Bears Power", params(pPeriod, pApplied, pShift),
		func(a *argv) Indicator {
			return IBearsPower(a.str(), a.tf(), a.integer(), a.applied(), a.integer())
		})
	register("iBands", "Bollinger Bands",
		params(pPeriod, p("deviation", KindFloat), p("bands_shift", KindInt), pApplied, p("mode", KindBandsLine), pShift),
		func(a *argv) Indicator {
			return IBands(a.str(), a.tf(), a.integer(), a.float(), a.integer(), a.applied(), a.bandsLine(), a.integer())
		})
	register("iBullsPower", "Bulls Power", params(pPeriod, pApplied, pShift),
		func(a *argv) Indicator {
			return IBullsPower(a.str(), a.tf(), a.integer(), a.applied(), a.integer())
		})
	register("iCCI", "Commodity Channel Index", params(pPeriod, pApplied, pShift),
		func(a *argv) Indicator {
			return ICCI(a.str(), a.tf(), a.integer(), a.applied(), a.integer())
		})
	register("iDeMarker", "DeMarker", params(pPeriod, pShift),
		func(a *argv) Indicator {
			return IDeMarker(a.str(), a.tf(), a.integer(), a.integer())
		})
	register("iEnvelopes", "Envelopes",
		params(p("ma_period", KindInt), pMethod, p("ma_shift", KindInt), pApplied,
			p("deviation", KindFloat), p("mode", KindUpperLowerLine), pShift),
		func(a *argv) Indicator {
			return IEnvelopes(a.str(), a.tf(), a.integer(), a.method(), a.integer(), a.applied(), a.float(), a.upperLower(), a.integer())
		})
	register("iForce", "Force Index", params(pPeriod, pMethod, pApplied, pShift),
		func(a *argv) Indicator {
			return IForce(a.str(), a.tf(), a.integer(), a.method(), a.applied(), a.integer())
		})
	register("iFractals", "Fractals", params(p("mode", KindUpperLowerLine), pShift),
		func(a *argv) Indicator {
			return IFractals(a.str(), a.tf(), a.upperLower(), a.integer())
		})
	register("iGator", "Gator Oscillator",
		append(append([]Param{}, alligatorParams...), p("mode", KindUpperLowerLine), pShift),
		func(a *argv) Indicator {
			return IGator(a.str(), a.tf(), a.integer(), a.integer(), a.integer(), a.integer(), a.integer(), a.integer(),
				a.method(), a.applied(), a.upperLower(), a.integer())
		})
	register("iIchimoku", "Ichimoku Kinko Hyo",
		params(p("tenkan_sen", KindInt), p("kijun_sen", KindInt), p("senkou_span_b", KindInt), p("mode", KindIchimokuLine), pShift),
		func(a *argv) Indicator {
			return IIchimoku(a.str(), a.tf(), a.integer(), a.integer(), a.integer(), a.ichimokuLine(), a.integer())
		})
	register("iBWMFI", "Market Facilitation Index", params(pShift),
		func(a *argv) Indicator {
			return IBWMFI(a.str(), a.tf(), a.integer())
		})
	register("iMomentum", "Momentum", params(pPeriod, pApplied, pShift),
		func(a *argv) Indicator {
			return IMomentum(a.str(), a.tf(), a.integer(), a.applied(), a.integer())
		})
	register("iMFI", "Money Flow Index", params(pPeriod, pShift),
		func(a *argv) Indicator {
			return IMFI(a.str(), a.tf(), a.integer(), a.integer())
		})
	register("iMA", "Moving Average", params(pPeriod, p("ma_shift", KindInt), pMethod, pApplied, pShift),
		func(a *argv) Indicator {
			return IMA(a.str(), a.tf(), a.integer(), a.integer(), a.method(), a.applied(), a.integer())
		})
	register("iOsMA", "Moving Average of Oscillator",
		params(p("fast_ema", KindInt), p("slow_ema", KindInt), p("signal_period", KindInt), pApplied, pShift),
		func(a *argv) Indicator {
			return IOsMA(a.str(), a.tf(), a.integer(), a.integer(), a.integer(), a.applied(), a.integer())
		})
	register("iMACD", "Moving Average Convergence/Divergence",
		params(p("fast_ema", KindInt), p("slow_ema", KindInt), p("signal_period", KindInt), pApplied, p("mode", KindMACDLine), pShift),
		func(a *argv) Indicator {
			return IMACD(a.str(), a.tf(), a.integer(), a.integer(), a.integer(), a.applied(), a.macdLine(), a.integer())
		})
	register("iOBV", "On Balance Volume", params(pApplied, pShift),
		func(a *argv) Indicator {
			return IOBV(a.str(), a.tf(), a.applied(), a.integer())
		})
	register("iSAR", "Parabolic SAR", params(p("step", KindFloat), p("maximum", KindFloat), pShift),
		func(a *argv) Indicator {
			return ISAR(a.str(), a.tf(), a.float(), a.float(), a.integer())
		})
	register("iRSI", "Relative Strength Index", params(pPeriod, pApplied, pShift),
		func(a *argv) Indicator {
			return IRSI(a.str(), a.tf(), a.integer(), a.applied(), a.integer())
		})
	register("iRVI", "Relative Vigor Index", params(pPeriod, p("mode", KindMACDLine), pShift),
		func(a *argv) Indicator {
			return IRVI(a.str(), a.tf(), a.integer(), a.macdLine(), a.integer())
		})
	register("iStdDev", "Standard Deviation", params(p("ma_period", KindInt), p("ma_shift", KindInt), pMethod, pApplied, pShift),
		func(a *argv) Indicator {
			return IStdDev(a.str(), a.tf(), a.integer(), a.integer(), a.method(), a.applied(), a.integer())
		})
	register("iStochastic", "Stochastic Oscillator",
		params(p("k_period", KindInt), p("d_period", KindInt), p("slowing", KindInt), pMethod,
			p("price_field", KindPriceField), p("mode", KindMACDLine), pShift),
		func(a *argv) Indicator {
			return IStochastic(a.str(), a.tf(), a.integer(), a.integer(), a.integer(), a.method(), a.priceField(), a.macdLine(), a.integer())
		})
	register("iWPR", "Williams' Percent Range", params(pPeriod, pShift),
		func(a *argv) Indicator {
			return IWPR(a.str(), a.tf(), a.integer(), a.integer())
		})
}
