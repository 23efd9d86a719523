package cli

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"metatrader-client/internal/logging"
	"metatrader-client/internal/store"
	mterrors "metatrader-client/pkg/errors"
	"metatrader-client/pkg/models"
	"metatrader-client/pkg/orders"
	"metatrader-client/pkg/protocol"
)

// addTradingCommands adds order commands and the order journal.
func addTradingCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newOrdersCmd(app))
	rootCmd.AddCommand(newOrderCmd(app))
	rootCmd.AddCommand(newSendCmd(app))
	rootCmd.AddCommand(newModifyCmd(app))
	rootCmd.AddCommand(newCloseCmd(app))
	rootCmd.AddCommand(newDeleteCmd(app))
	rootCmd.AddCommand(newJournalCmd(app))
}

var orderTypeAliases = map[string]models.OrderType{
	"BUY":  models.OrderBuy,
	"SELL": models.OrderSell,
}

// parseOrderType accepts MARKET-BUY style names, BUY/SELL and wire ids.
func parseOrderType(s string) (models.OrderType, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	if t, ok := models.ParseOrderType(name); ok {
		return t, nil
	}
	if t, ok := orderTypeAliases[name]; ok {
		return t, nil
	}
	if id, err := strconv.Atoi(name); err == nil {
		if t, ok := models.OrderTypeFromID(id); ok {
			return t, nil
		}
	}
	return 0, mterrors.NewValidationError("order_type", s, "use buy, sell, buy-limit, buy-stop, sell-limit or sell-stop")
}

// parseTicket reads a ticket as 64 bits; the dialect decides whether it fits.
func parseTicket(s string) (int64, error) {
	t, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || t <= 0 {
		return 0, mterrors.NewValidationError("ticket", s, "expected a positive integer")
	}
	return t, nil
}

// journal records an order action in the store, when one is open, and logs it.
func (a *App) journal(ctx context.Context, dialect string, action protocol.Action, ticket int64, symbol string, request interface{}, err error) {
	logging.LogOrderEvent(a.Logger, string(action), ticket, symbol, err)
	if a.Store == nil {
		return
	}

	event := &store.OrderEvent{
		Action:  string(action),
		Ticket:  ticket,
		Symbol:  symbol,
		Dialect: dialect,
		Success: err == nil,
	}
	if request != nil {
		if data, merr := json.Marshal(request); merr == nil {
			event.Request = string(data)
		}
	}
	if err != nil {
		event.Error = err.Error()
	}
	if serr := a.Store.LogOrderEvent(ctx, event); serr != nil {
		a.Logger.Warn().Err(serr).Msg("Failed to journal order event")
	}
}

func newOrdersCmd(app *App) *cobra.Command {
	var history bool

	cmd := &cobra.Command{
		Use:   "orders",
		Short: "List open positions and pending orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			b, err := app.Bridge(cmd.Context())
			if err != nil {
				return err
			}

			var list []models.MT5Order
			if history {
				list, err = b.HistoricalOrders(cmd.Context())
			} else {
				list, err = b.Orders(cmd.Context())
			}
			if err != nil {
				return err
			}

			if output.IsJSON() {
				return output.JSON(list)
			}
			if len(list) == 0 {
				output.Dim("No orders")
				return nil
			}
			renderOrders(output, list, history)
			return nil
		},
	}

	cmd.Flags().BoolVar(&history, "history", false, "list closed and deleted orders instead")
	return cmd
}

func renderOrders(output *Output, list []models.MT5Order, history bool) {
	headers := []string{"TICKET", "SYMBOL", "TYPE", "LOTS", "OPEN", "SL", "TP", "PROFIT", "OPENED"}
	if history {
		headers = append(headers, "CLOSED")
	}
	table := NewTable(output, headers...).AlignRight(0, 3, 4, 5, 6, 7)

	var total float64
	for _, o := range list {
		row := []string{
			strconv.FormatInt(o.Ticket, 10),
			o.Symbol,
			output.Side(o.IsBuy(), o.OrderType.String()),
			FormatLots(o.Lots),
			FormatPrice(o.OpenPrice, -1),
			FormatOptional(o.SL, -1),
			FormatOptional(o.TP, -1),
			output.Signed(o.Profit, FormatPnL(o.Profit, "")),
			o.OpenTime,
		}
		if history {
			row = append(row, o.CloseTime)
		}
		table.AddRow(row...)
		total += o.Profit + o.Swap + o.Commission
	}
	table.Render()
	output.Println()
	output.Printf("%d orders, net %s\n", len(list), output.Signed(total, FormatPnL(total, "")))
}

func renderOrder(output *Output, o models.MT5Order) {
	output.Bold("Order %d", o.Ticket)
	output.Printf("  Symbol:     %s\n", o.Symbol)
	output.Printf("  Type:       %s\n", output.Side(o.IsBuy(), o.OrderType.String()))
	output.Printf("  Lots:       %s\n", FormatLots(o.Lots))
	output.Printf("  Open Price: %s\n", FormatPrice(o.OpenPrice, -1))
	if o.ClosePrice != 0 {
		output.Printf("  Close:      %s\n", FormatPrice(o.ClosePrice, -1))
	}
	output.Printf("  SL / TP:    %s / %s\n", FormatOptional(o.SL, -1), FormatOptional(o.TP, -1))
	output.Printf("  Profit:     %s\n", output.Signed(o.Profit, FormatPnL(o.Profit, "")))
	output.Printf("  Swap:       %s\n", FormatMoney(o.Swap, ""))
	output.Printf("  Commission: %s\n", FormatMoney(o.Commission, ""))
	output.Printf("  Opened:     %s\n", o.OpenTime)
	if _, ok := o.ClosedAt(); ok {
		output.Printf("  Closed:     %s\n", o.CloseTime)
	}
	if _, ok := o.ExpiresAt(); ok {
		output.Printf("  Expires:    %s\n", o.Expiration)
	}
	if o.MagicNumber != 0 {
		output.Printf("  Magic:      %d\n", o.MagicNumber)
	}
	if o.Comment != "" {
		output.Printf("  Comment:    %s\n", o.Comment)
	}
}

func newOrderCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "order <ticket>",
		Short: "Show one order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ticket, err := parseTicket(args[0])
			if err != nil {
				return err
			}
			b, err := app.Bridge(cmd.Context())
			if err != nil {
				return err
			}
			o, err := b.Order(cmd.Context(), ticket)
			if err != nil {
				return err
			}
			if output.IsJSON() {
				return output.JSON(o)
			}
			renderOrder(output, o)
			return nil
		},
	}
}

func newSendCmd(app *App) *cobra.Command {
	var (
		price    float64
		slippage int
		sl, tp   float64
		slPoints int
		tpPoints int
		comment  string
		magic    int
	)

	cmd := &cobra.Command{
		Use:   "send <symbol> <type> <lots>",
		Short: "Place an order",
		Long:  "Place an order. Types: buy, sell, buy-limit, buy-stop, sell-limit, sell-stop.",
		Example: `  mtctl send EURUSD buy 0.1 --sl-points 200 --tp-points 400
  mtctl send DE40 buy-limit 1 --price 18950 --sl 18900`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx := cmd.Context()

			orderType, err := parseOrderType(args[1])
			if err != nil {
				return err
			}
			lots, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return mterrors.NewValidationError("lots", args[2], "expected a number")
			}

			builder := orders.NewOrderFor(args[0]).OrderType(orderType).Lots(lots)
			flags := cmd.Flags()
			if flags.Changed("price") {
				builder.Price(price)
			}
			if flags.Changed("slippage") {
				builder.Slippage(slippage)
			}
			if flags.Changed("sl") {
				builder.SL(sl)
			}
			if flags.Changed("tp") {
				builder.TP(tp)
			}
			if flags.Changed("sl-points") {
				builder.SLPoints(slPoints)
			}
			if flags.Changed("tp-points") {
				builder.TPPoints(tpPoints)
			}
			if flags.Changed("comment") {
				builder.Comment(comment)
			}
			if flags.Changed("magic") {
				builder.MagicNumber(magic)
			}
			request, err := builder.Build()
			if err != nil {
				return err
			}

			b, err := app.Bridge(ctx)
			if err != nil {
				return err
			}
			o, err := b.SendOrder(ctx, request)
			app.journal(ctx, b.Dialect(), protocol.ActionDoOrderSend, o.Ticket, args[0], request, err)
			if err != nil {
				return err
			}

			if output.IsJSON() {
				return output.JSON(o)
			}
			output.Success("Order %d placed: %s %s %s", o.Ticket, o.OrderType, FormatLots(o.Lots), o.Symbol)
			return nil
		},
	}

	cmd.Flags().Float64Var(&price, "price", 0, "open price (required for pending orders)")
	cmd.Flags().IntVar(&slippage, "slippage", 0, "maximum slippage in points")
	cmd.Flags().Float64Var(&sl, "sl", 0, "stop-loss price")
	cmd.Flags().Float64Var(&tp, "tp", 0, "take-profit price")
	cmd.Flags().IntVar(&slPoints, "sl-points", 0, "stop-loss distance in points")
	cmd.Flags().IntVar(&tpPoints, "tp-points", 0, "take-profit distance in points")
	cmd.Flags().StringVar(&comment, "comment", "", "order comment")
	cmd.Flags().IntVar(&magic, "magic", 0, "magic number")

	return cmd
}

func newModifyCmd(app *App) *cobra.Command {
	var (
		price    float64
		sl, tp   float64
		slPoints int
		tpPoints int
	)

	cmd := &cobra.Command{
		Use:     "modify <ticket>",
		Short:   "Change an order's price, stop-loss or take-profit",
		Example: `  mtctl modify 12345 --sl 1.0850 --tp 1.0950`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx := cmd.Context()

			ticket, err := parseTicket(args[0])
			if err != nil {
				return err
			}

			builder := orders.ModifyTicket(ticket)
			flags := cmd.Flags()
			if flags.Changed("price") {
				builder.Price(price)
			}
			if flags.Changed("sl") {
				builder.SL(sl)
			}
			if flags.Changed("tp") {
				builder.TP(tp)
			}
			if flags.Changed("sl-points") {
				builder.SLPoints(slPoints)
			}
			if flags.Changed("tp-points") {
				builder.TPPoints(tpPoints)
			}
			request := builder.Build()

			b, err := app.Bridge(ctx)
			if err != nil {
				return err
			}
			o, err := b.ModifyOrder(ctx, request)
			app.journal(ctx, b.Dialect(), protocol.ActionDoOrderModify, ticket, o.Symbol, request, err)
			if err != nil {
				return err
			}

			if output.IsJSON() {
				return output.JSON(o)
			}
			output.Success("Order %d modified", o.Ticket)
			renderOrder(output, o)
			return nil
		},
	}

	cmd.Flags().Float64Var(&price, "price", 0, "new open price (pending orders)")
	cmd.Flags().Float64Var(&sl, "sl", 0, "stop-loss price")
	cmd.Flags().Float64Var(&tp, "tp", 0, "take-profit price")
	cmd.Flags().IntVar(&slPoints, "sl-points", 0, "stop-loss distance in points")
	cmd.Flags().IntVar(&tpPoints, "tp-points", 0, "take-profit distance in points")

	return cmd
}

func newCloseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "close <ticket>",
		Short: "Close an open position at market",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx := cmd.Context()

			ticket, err := parseTicket(args[0])
			if err != nil {
				return err
			}
			b, err := app.Bridge(ctx)
			if err != nil {
				return err
			}

			err = b.CloseOrder(ctx, ticket)
			app.journal(ctx, b.Dialect(), protocol.ActionDoOrderClose, ticket, "", map[string]int64{"ticket": ticket}, err)
			if err != nil {
				return err
			}

			if output.IsJSON() {
				return output.JSON(map[string]interface{}{"ticket": ticket, "closed": true})
			}
			output.Success("Order %d closed", ticket)
			return nil
		},
	}
}

func newDeleteCmd(app *App) *cobra.Command {
	var closeIfOpened bool

	cmd := &cobra.Command{
		Use:   "delete <ticket>",
		Short: "Delete a pending order",
		Long:  "Delete a pending order. A ticket that has already been filled is closed at market unless --close-if-opened=false.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx := cmd.Context()

			ticket, err := parseTicket(args[0])
			if err != nil {
				return err
			}
			b, err := app.Bridge(ctx)
			if err != nil {
				return err
			}

			err = b.DeleteOrder(ctx, ticket, closeIfOpened)
			app.journal(ctx, b.Dialect(), protocol.ActionDoOrderDelete, ticket, "",
				map[string]interface{}{"ticket": ticket, "close_if_opened": closeIfOpened}, err)
			if err != nil {
				return err
			}

			if output.IsJSON() {
				return output.JSON(map[string]interface{}{"ticket": ticket, "deleted": true})
			}
			output.Success("Order %d deleted", ticket)
			return nil
		},
	}

	cmd.Flags().BoolVar(&closeIfOpened, "close-if-opened", orders.DefaultCloseIfOpened, "close the position if the order was already filled")
	return cmd
}

func newJournalCmd(app *App) *cobra.Command {
	var (
		filter store.EventFilter
		ticket string
		since  string
	)

	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Show the local order journal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if app.Store == nil {
				return mterrors.Wrap(mterrors.ErrDataNotFound, "store is disabled")
			}

			if ticket != "" {
				t, err := parseTicket(ticket)
				if err != nil {
					return err
				}
				filter.Ticket = t
			}
			if since != "" {
				t, ok := models.ParseTerminalTime(since)
				if !ok {
					return mterrors.NewValidationError("since", since, "expected 2006.01.02 15:04:05")
				}
				filter.StartDate = t
			}

			events, err := app.Store.GetOrderEvents(cmd.Context(), filter)
			if err != nil {
				return err
			}
			if output.IsJSON() {
				return output.JSON(events)
			}
			if len(events) == 0 {
				output.Dim("No journal entries")
				return nil
			}

			table := NewTable(output, "TIME", "ACTION", "TICKET", "SYMBOL", "DIALECT", "RESULT").AlignRight(2)
			for _, e := range events {
				result := output.Green("ok")
				if !e.Success {
					result = output.Red(TruncateString(e.Error, 60))
				}
				ticketText := "-"
				if e.Ticket != 0 {
					ticketText = strconv.FormatInt(e.Ticket, 10)
				}
				table.AddRow(models.FormatTerminalTime(e.Timestamp), e.Action, ticketText, e.Symbol, e.Dialect, result)
			}
			table.Render()
			return nil
		},
	}

	cmd.Flags().StringVar(&filter.Action, "action", "", "only this action, e.g. do_order_send")
	cmd.Flags().StringVar(&filter.Symbol, "symbol", "", "only this symbol")
	cmd.Flags().StringVar(&ticket, "ticket", "", "only this ticket")
	cmd.Flags().StringVar(&since, "since", "", "entries at or after \"2006.01.02 15:04\"")
	cmd.Flags().IntVarP(&filter.Limit, "limit", "n", 50, "maximum entries")

	return cmd
}
