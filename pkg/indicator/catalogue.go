package indicator

import "metatrader-client/pkg/timeframe"

// IAC is the Accelerator Oscillator.
func IAC(symbol string, tf timeframe.Timeframe, shift int) Indicator {
	return call("iAC", symbol, tf, shift)
}

// IAD is Accumulation/Distribution.
func IAD(symbol string, tf timeframe.Timeframe, shift int) Indicator {
	return call("iAD", symbol, tf, shift)
}

// IADX is the Average Directional Movement Index.
func IADX(symbol string, tf timeframe.Timeframe, period int, applied AppliedPrice, mode ADXLine, shift int) Indicator {
	return call("iADX", symbol, tf, period, applied, mode, shift)
}

// IAlligator is Bill Williams' Alligator.
func IAlligator(symbol string, tf timeframe.Timeframe,
	jawPeriod, jawShift, teethPeriod, teethShift, lipsPeriod, lipsShift int,
	method SmoothingMethod, applied AppliedPrice, mode AlligatorLine, shift int) Indicator {
	return call("iAlligator", symbol, tf,
		jawPeriod, jawShift, teethPeriod, teethShift, lipsPeriod, lipsShift,
		method, applied, mode, shift)
}

// IAO is the Awesome Oscillator.
func IAO(symbol string, tf timeframe.Timeframe, shift int) Indicator {
	return call("iAO", symbol, tf, shift)
}

// IATR is the Average True Range.
func IATR(symbol string, tf timeframe.Timeframe, period, shift int) Indicator {
	return call("iATR", symbol, tf, period, shift)
}

// IBearsPower is Bears Power.
func IBearsPower(symbol string, tf timeframe.Timeframe, period int, applied AppliedPrice, shift int) Indicator {
	return call("iBearsPower", symbol, tf, period, applied, shift)
}

// IBands is Bollinger Bands.
func IBands(symbol string, tf timeframe.Timeframe, period int, deviation float64, bandsShift int,
	applied AppliedPrice, mode BandsLine, shift int) Indicator {
	return call("iBands", symbol, tf, period, deviation, bandsShift, applied, mode, shift)
}

// IBullsPower is Bulls Power.
func IBullsPower(symbol string, tf timeframe.Timeframe, period int, applied AppliedPrice, shift int) Indicator {
	return call("iBullsPower", symbol, tf, period, applied, shift)
}

// ICCI is the Commodity Channel Index.
func ICCI(symbol string, tf timeframe.Timeframe, period int, applied AppliedPrice, shift int) Indicator {
	return call("iCCI", symbol, tf, period, applied, shift)
}

// IDeMarker is DeMarker.
func IDeMarker(symbol string, tf timeframe.Timeframe, period, shift int) Indicator {
	return call("iDeMarker", symbol, tf, period, shift)
}

// IEnvelopes is Envelopes.
func IEnvelopes(symbol string, tf timeframe.Timeframe, maPeriod int, method SmoothingMethod, maShift int,
	applied AppliedPrice, deviation float64, mode UpperLowerLine, shift int) Indicator {
	return call("iEnvelopes", symbol, tf, maPeriod, method, maShift, applied, deviation, mode, shift)
}

// IForce is the Force Index.
func IForce(symbol string, tf timeframe.Timeframe, period int, method SmoothingMethod, applied AppliedPrice, shift int) Indicator {
	return call("iForce", symbol, tf, period, method, applied, shift)
}

// IFractals is Fractals.
func IFractals(symbol string, tf timeframe.Timeframe, mode UpperLowerLine, shift int) Indicator {
	return call("iFractals", symbol, tf, mode, shift)
}

// IGator is the Gator Oscillator.
func IGator(symbol string, tf timeframe.Timeframe,
	jawPeriod, jawShift, teethPeriod, teethShift, lipsPeriod, lipsShift int,
	method SmoothingMethod, applied AppliedPrice, mode UpperLowerLine, shift int) Indicator {
	return call("iGator", symbol, tf,
		jawPeriod, jawShift, teethPeriod, teethShift, lipsPeriod, lipsShift,
		method, applied, mode, shift)
}

// IIchimoku is Ichimoku Kinko Hyo.
func IIchimoku(symbol string, tf timeframe.Timeframe, tenkanSen, kijunSen, senkouSpanB int, mode IchimokuLine, shift int) Indicator {
	return call("iIchimoku", symbol, tf, tenkanSen, kijunSen, senkouSpanB, mode, shift)
}

// IBWMFI is the Market Facilitation Index.
func IBWMFI(symbol string, tf timeframe.Timeframe, shift int) Indicator {
	return call("iBWMFI", symbol, tf, shift)
}

// IMomentum is Momentum.
func IMomentum(symbol string, tf timeframe.Timeframe, period int, applied AppliedPrice, shift int) Indicator {
	return call("iMomentum", symbol, tf, period, applied, shift)
}

// IMFI is the Money Flow Index.
func IMFI(symbol string, tf timeframe.Timeframe, period, shift int) Indicator {
	return call("iMFI", symbol, tf, period, shift)
}

// IMA is a moving average.
func IMA(symbol string, tf timeframe.Timeframe, period, maShift int, method SmoothingMethod, applied AppliedPrice, shift int) Indicator {
	return call("iMA", symbol, tf, period, maShift, method, applied, shift)
}

// IOsMA is the Moving Average of Oscillator.
func IOsMA(symbol string, tf timeframe.Timeframe, fastEMA, slowEMA, signalPeriod int, applied AppliedPrice, shift int) Indicator {
	return call("iOsMA", symbol, tf, fastEMA, slowEMA, signalPeriod, applied, shift)
}

// IMACD is Moving Average Convergence/Divergence.
func IMACD(symbol string, tf timeframe.Timeframe, fastEMA, slowEMA, signalPeriod int,
	applied AppliedPrice, mode MACDLine, shift int) Indicator {
	return call("iMACD", symbol, tf, fastEMA, slowEMA, signalPeriod, applied, mode, shift)
}

// IOBV is On Balance Volume.
func IOBV(symbol string, tf timeframe.Timeframe, applied AppliedPrice, shift int) Indicator {
	return call("iOBV", symbol, tf, applied, shift)
}

// ISAR is Parabolic SAR.
func ISAR(symbol string, tf timeframe.Timeframe, step, maximum float64, shift int) Indicator {
	return call("iSAR", symbol, tf, step, maximum, shift)
}

// IRSI is the Relative Strength Index.
func IRSI(symbol string, tf timeframe.Timeframe, period int, applied AppliedPrice, shift int) Indicator {
	return call("iRSI", symbol, tf, period, applied, shift)
}

// IRVI is the Relative Vigor Index.
func IRVI(symbol string, tf timeframe.Timeframe, period int, mode MACDLine, shift int) Indicator {
	return call("iRVI", symbol, tf, period, mode, shift)
}

// IStdDev is Standard Deviation.
func IStdDev(symbol string, tf timeframe.Timeframe, maPeriod, maShift int, method SmoothingMethod, applied AppliedPrice, shift int) Indicator {
	return call("iStdDev", symbol, tf, maPeriod, maShift, method, applied, shift)
}

// IStochastic is the Stochastic Oscillator.
func IStochastic(symbol string, tf timeframe.Timeframe, kPeriod, dPeriod, slowing int,
	method SmoothingMethod, priceField PriceField, mode MACDLine, shift int) Indicator {
	return call("iStochastic", symbol, tf, kPeriod, dPeriod, slowing, method, priceField, mode, shift)
}

// IWPR is Williams' Percent Range.
func IWPR(symbol string, tf timeframe.Timeframe, period, shift int) Indicator {
	return call("iWPR", symbol, tf, period, shift)
}
