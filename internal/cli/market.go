package cli

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"metatrader-client/internal/logging"
	"metatrader-client/internal/store"
	mterrors "metatrader-client/pkg/errors"
	"metatrader-client/pkg/indicator"
	"metatrader-client/pkg/models"
	"metatrader-client/pkg/timeframe"
)

// addMarketCommands adds account and market data commands.
func addMarketCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newAccountCmd(app))
	rootCmd.AddCommand(newSymbolsCmd(app))
	rootCmd.AddCommand(newSignalsCmd(app))
	rootCmd.AddCommand(newOHLCVCmd(app))
	rootCmd.AddCommand(newBarsCmd(app))
	rootCmd.AddCommand(newIndicatorCmd(app))
	rootCmd.AddCommand(newIndicatorsCmd())
	rootCmd.AddCommand(newTimeframeCmd())
}

// parseTimeframe accepts the bridge grammar, e.g. 0, 1m, 4h, 1d, 1w, 1mn.
func parseTimeframe(s string) (timeframe.Timeframe, error) {
	tf, ok := timeframe.Parse(s)
	if !ok {
		return nil, fmt.Errorf("%w: %q (use forms like 1m, 15m, 4h, 1d, 1w, 1mn)", mterrors.ErrInvalidTimeframe, s)
	}
	return tf, nil
}

func newAccountCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "account",
		Short: "Show the trading account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			b, err := app.Bridge(cmd.Context())
			if err != nil {
				return err
			}
			acc, err := b.Account(cmd.Context())
			if err != nil {
				return err
			}
			if output.IsJSON() {
				return output.JSON(acc)
			}

			output.Bold("Account %d (%s)", acc.Login, acc.Name)
			output.Printf("  Server:       %s\n", acc.Server)
			output.Printf("  Company:      %s\n", acc.Company)
			output.Printf("  Mode:         %s\n", acc.TradeMode)
			output.Printf("  Leverage:     1:%d\n", acc.Leverage)
			output.Println()
			output.Printf("  Balance:      %s\n", FormatMoney(acc.Balance, acc.Currency))
			output.Printf("  Credit:       %s\n", FormatMoney(acc.Credit, acc.Currency))
			output.Printf("  Equity:       %s\n", FormatMoney(acc.Equity, acc.Currency))
			output.Printf("  Profit:       %s\n", output.Signed(acc.Profit, FormatPnL(acc.Profit, acc.Currency)))
			output.Printf("  Margin:       %s\n", FormatMoney(acc.Margin, acc.Currency))
			output.Printf("  Free Margin:  %s\n", FormatMoney(acc.MarginFree, acc.Currency))
			if acc.Margin > 0 {
				output.Printf("  Margin Level: %.2f%%\n", acc.MarginLevel)
			}
			output.Printf("  Stop-out:     call %.2f / stop %.2f (%s)\n", acc.MarginSOCall, acc.MarginSOSO, acc.MarginSOMode)
			if !acc.TradeAllowed || !acc.ExpertTradingAllowed() {
				output.Warning("Trading is restricted: trade_allowed=%v, expert=%v", acc.TradeAllowed, acc.ExpertTradingAllowed())
			}
			return nil
		},
	}
}

func newSymbolsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "symbols [names...]",
		Short: "List symbols, or show details for the named symbols",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			b, err := app.Bridge(cmd.Context())
			if err != nil {
				return err
			}

			if len(args) == 0 {
				names, err := b.SymbolNames(cmd.Context())
				if err != nil {
					return err
				}
				if output.IsJSON() {
					return output.JSON(names)
				}
				for _, name := range names {
					output.Println(name)
				}
				return nil
			}

			symbols, err := b.Symbols(cmd.Context(), args...)
			if err != nil {
				return err
			}
			if output.IsJSON() {
				return output.JSON(symbols)
			}

			table := NewTable(output, "SYMBOL", "BID", "ASK", "SPREAD", "DIGITS", "MIN LOT", "STEP", "MODE").AlignRight(1, 2, 3, 4, 5, 6)
			for _, name := range args {
				s, ok := symbols[name]
				if !ok {
					table.AddRow(name, "-", "-", "-", "-", "-", "-", output.Yellow("not found"))
					continue
				}
				table.AddRow(
					s.Name,
					FormatPrice(s.Bid(), s.Digits),
					FormatPrice(s.Ask(), s.Digits),
					strconv.Itoa(s.SpreadPoints()),
					strconv.Itoa(s.Digits),
					FormatLots(s.VolumeMin),
					FormatLots(s.VolumeStep),
					s.TradeMode.String(),
				)
			}
			table.Render()
			return nil
		},
	}
}

func newSignalsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "signals [names...]",
		Short: "List trading signals, or show details for the named signals",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			b, err := app.Bridge(cmd.Context())
			if err != nil {
				return err
			}

			if len(args) == 0 {
				names, err := b.SignalNames(cmd.Context())
				if err != nil {
					return err
				}
				if output.IsJSON() {
					return output.JSON(names)
				}
				for _, name := range names {
					output.Println(name)
				}
				return nil
			}

			signals, err := b.Signals(cmd.Context(), args...)
			if err != nil {
				return err
			}
			if output.IsJSON() {
				return output.JSON(signals)
			}

			table := NewTable(output, "SIGNAL", "AUTHOR", "GAIN", "ROI", "DRAWDOWN", "SUBS", "PRICE").AlignRight(2, 3, 4, 5, 6)
			for _, name := range args {
				s, ok := signals[name]
				if !ok {
					table.AddRow(name, output.Yellow("not found"), "-", "-", "-", "-", "-")
					continue
				}
				table.AddRow(
					TruncateString(s.Name, 24),
					s.AuthorLogin,
					output.Signed(s.Gain, fmt.Sprintf("%.2f%%", s.Gain)),
					fmt.Sprintf("%.2f%%", s.ROI),
					fmt.Sprintf("%.2f%%", s.MaxDrawdown),
					strconv.FormatInt(s.Subscribers, 10),
					FormatMoney(s.Price, s.Currency),
				)
			}
			table.Render()
			return nil
		},
	}
}

func newOHLCVCmd(app *App) *cobra.Command {
	var (
		limit   int
		offset  int
		timeout time.Duration
		save    bool
	)

	cmd := &cobra.Command{
		Use:   "ohlcv <symbol> <timeframe>",
		Short: "Fetch price bars from the terminal",
		Example: `  mtctl ohlcv EURUSD 1h --limit 24
  mtctl ohlcv DE40 5m --offset 100 --save`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx := cmd.Context()
			symbol := args[0]
			tf, err := parseTimeframe(args[1])
			if err != nil {
				return err
			}
			if timeout <= 0 {
				timeout = app.Config.Server.OHLCVTimeout
			}

			b, err := app.Bridge(ctx)
			if err != nil {
				return err
			}
			logger := logging.WithSymbol(logging.WithOperation(app.Logger, "ohlcv"), symbol)

			var (
				bars   []models.OHLCV
				cached bool
			)
			if save && app.Store != nil {
				cache := store.NewBarCache(app.Store, logger)
				bars, cached, err = cache.GetBarsWithCache(ctx, symbol, tf.Minutes(), limit, offset,
					func(ctx context.Context, symbol string, _, limit, offset int) ([]models.OHLCV, error) {
						return b.OHLCV(ctx, symbol, tf, limit, timeout, offset)
					})
			} else {
				if save {
					logger.Warn().Msg("Store is disabled, bars are not saved")
				}
				bars, err = b.OHLCV(ctx, symbol, tf, limit, timeout, offset)
			}
			if err != nil {
				return err
			}

			if output.IsJSON() {
				return output.JSON(bars)
			}
			if cached {
				output.Warning("Terminal unavailable, showing %d cached bars", len(bars))
			}
			renderBars(output, bars)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 100, "number of bars")
	cmd.Flags().IntVar(&offset, "offset", 0, "bars to skip back from the most recent one")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "history load timeout (default from config)")
	cmd.Flags().BoolVar(&save, "save", false, "save the bars to the local store")

	return cmd
}

func renderBars(output *Output, bars []models.OHLCV) {
	if len(bars) == 0 {
		output.Dim("No bars")
		return
	}
	table := NewTable(output, "TIME", "OPEN", "HIGH", "LOW", "CLOSE", "VOLUME").AlignRight(1, 2, 3, 4, 5)
	for _, bar := range bars {
		closeText := FormatPrice(bar.Close, -1)
		table.AddRow(
			FormatUnix(bar.Time),
			FormatPrice(bar.Open, -1),
			FormatPrice(bar.High, -1),
			FormatPrice(bar.Low, -1),
			output.Signed(bar.Close-bar.Open, closeText),
			FormatVolume(bar.TickVolume),
		)
	}
	table.Render()
}

func newBarsCmd(app *App) *cobra.Command {
	var (
		limit int
		from  string
		to    string
	)

	cmd := &cobra.Command{
		Use:   "bars [symbol timeframe]",
		Short: "Show bars from the local store",
		Long:  "Without arguments, list the cached series. With a symbol and timeframe, show its cached bars.",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("accepts 0 or 2 args, received %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx := cmd.Context()
			if app.Store == nil {
				return fmt.Errorf("%w: store is disabled", mterrors.ErrDataNotFound)
			}

			if len(args) == 0 {
				series, err := app.Store.ListSeries(ctx)
				if err != nil {
					return err
				}
				if output.IsJSON() {
					return output.JSON(series)
				}
				now := time.Now()
				table := NewTable(output, "SYMBOL", "TIMEFRAME", "BARS", "FIRST", "LAST", "NEWEST").AlignRight(2)
				for _, s := range series {
					tfText := strconv.Itoa(s.Timeframe)
					if tf, ok := timeframe.FromMinutes(s.Timeframe); ok {
						tfText = tf.String()
					}
					table.AddRow(s.Symbol, tfText, strconv.Itoa(s.Bars), FormatUnix(s.First), FormatUnix(s.Last),
						store.FormatFreshness(time.Unix(s.Last, 0), now))
				}
				table.Render()
				return nil
			}

			tf, err := parseTimeframe(args[1])
			if err != nil {
				return err
			}
			filter := store.BarFilter{Limit: limit}
			if filter.From, err = unixFlag("from", from); err != nil {
				return err
			}
			if filter.To, err = unixFlag("to", to); err != nil {
				return err
			}

			bars, err := app.Store.GetBars(ctx, args[0], tf.Minutes(), filter)
			if err != nil {
				return err
			}
			if output.IsJSON() {
				return output.JSON(bars)
			}
			renderBars(output, bars)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "most recent bars to show (0 for all)")
	cmd.Flags().StringVar(&from, "from", "", "first bar time, \"2006.01.02 15:04\"")
	cmd.Flags().StringVar(&to, "to", "", "last bar time, \"2006.01.02 15:04\"")

	return cmd
}

func unixFlag(name, value string) (int64, error) {
	if value == "" {
		return 0, nil
	}
	t, ok := models.ParseTerminalTime(value)
	if !ok {
		return 0, mterrors.NewValidationError(name, value, "expected 2006.01.02 15:04:05")
	}
	return t.Unix(), nil
}

func newIndicatorCmd(app *App) *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "indicator <name> <args...>",
		Short: "Evaluate a built-in indicator",
		Long:  "Evaluate a built-in indicator. Run 'mtctl indicators <name>' to see its arguments.",
		Example: `  mtctl indicator iMA EURUSD 1h 14 0 sma close 0
  mtctl indicator iBands DE40 15m 20 2 0 close upper 1`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ind, err := indicator.Parse(args[0], args[1:])
			if err != nil {
				if entry, ok := indicator.Lookup(args[0]); ok {
					output.Dim("usage: %s", entry.Usage())
				}
				return err
			}

			b, err := app.Bridge(cmd.Context())
			if err != nil {
				return err
			}
			value, err := b.RunIndicator(cmd.Context(), ind, timeout)
			if err != nil {
				return err
			}

			if output.IsJSON() {
				return output.JSON(map[string]interface{}{
					"indicator": ind.Name(),
					"argv":      ind.Args(),
					"value":     value,
				})
			}
			output.Printf("%s = %s\n", ind.Name(), strconv.FormatFloat(value, 'f', -1, 64))
			return nil
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", 0, "chart load timeout (default from config)")
	return cmd
}

func newIndicatorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "indicators [name]",
		Short: "List the indicator catalogue",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			if len(args) == 1 {
				entry, ok := indicator.Lookup(args[0])
				if !ok {
					return fmt.Errorf("%w: %s", mterrors.ErrUnknownIndicator, args[0])
				}
				if output.IsJSON() {
					return output.JSON(entry)
				}
				output.Bold("%s", entry.Description)
				output.Printf("  %s\n", entry.Usage())
				for _, p := range entry.Params {
					line := fmt.Sprintf("    %-14s %s", p.Name, p.Kind)
					if choices := p.Kind.Choices(); len(choices) > 0 {
						line += " (" + strings.Join(choices, "|") + ")"
					}
					output.Println(line)
				}
				return nil
			}

			names := indicator.Names()
			if output.IsJSON() {
				return output.JSON(names)
			}
			sort.Strings(names)
			table := NewTable(output, "NAME", "DESCRIPTION", "ARGS").AlignRight(2)
			for _, name := range names {
				entry, _ := indicator.Lookup(name)
				table.AddRow(entry.Name, entry.Description, strconv.Itoa(len(entry.Params)))
			}
			table.Render()
			return nil
		},
	}
}

func newTimeframeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "timeframe <expr>",
		Short: "Parse a timeframe expression",
		Example: `  mtctl timeframe 4h
  mtctl timeframe 90m`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			tf, err := parseTimeframe(args[0])
			if err != nil {
				return err
			}

			info := map[string]interface{}{
				"input":     args[0],
				"minutes":   tf.Minutes(),
				"canonical": tf.String(),
				"standard":  timeframe.IsStandard(tf),
			}
			if std, ok := tf.(timeframe.Standard); ok {
				info["name"] = std.Name()
			}
			if output.IsJSON() {
				return output.JSON(info)
			}

			output.Printf("%s = %d minutes\n", tf, tf.Minutes())
			if std, ok := tf.(timeframe.Standard); ok {
				output.Success("standard timeframe %s", std.Name())
			} else {
				output.Warning("non-standard timeframe: MT4 terminals only chart standard periods")
			}
			return nil
		},
	}
}
