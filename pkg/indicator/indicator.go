// Package indicator builds technical indicator calls for the terminal.
//
// Each factory mirrors one built-in terminal function and returns its
// arguments in the exact positional order the terminal expects. The
// catalogue is flat: adding an indicator means adding a factory and a
// registry entry, nothing else changes. A nil timeframe is sent as
// timeframe.Current.
package indicator

import "metatrader-client/pkg/timeframe"

// Indicator is a named function call with positional arguments.
type Indicator struct {
	name string
	args []interface{}
}

// New returns an Indicator calling name with args.
func New(name string, args ...interface{}) Indicator {
	return Indicator{name: name, args: args}
}

// Name returns the terminal function name, e.g. iMA.
func (i Indicator) Name() string { return i.name }

// Args returns a copy of the argument list.
func (i Indicator) Args() []interface{} {
	out := make([]interface{}, len(i.args))
	copy(out, i.args)
	return out
}

// Arity returns the number of arguments.
func (i Indicator) Arity() int { return len(i.args) }

func head(symbol string, tf timeframe.Timeframe) []interface{} {
	if tf == nil {
		tf = timeframe.Current
	}
	return []interface{}{symbol, tf.Minutes()}
}

func call(name, symbol string, tf timeframe.Timeframe, rest ...interface{}) Indicator {
	return New(name, append(head(symbol, tf), rest...)...)
}
