// Package cli provides the mtctl command-line interface.
package cli

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"metatrader-client/internal/config"
	"metatrader-client/internal/logging"
	"metatrader-client/internal/store"
	"metatrader-client/pkg/client"
)

// Version information
const (
	Version   = "0.1.0"
	BuildDate = "2026-10-01"
)

// DialFunc connects to the terminal described by cfg.
type DialFunc func(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (Bridge, error)

// App holds the application dependencies.
type App struct {
	Config *config.Config
	Logger zerolog.Logger
	Store  store.DataStore

	dial   DialFunc
	bridge Bridge
}

// NewApp creates an App that dials the terminal on first use.
func NewApp(dial DialFunc) *App {
	if dial == nil {
		dial = DialBridge
	}
	return &App{
		Logger: zerolog.Nop(),
		dial:   dial,
	}
}

// DialBridge connects with the dialect and transport named in cfg.
func DialBridge(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (Bridge, error) {
	opts := []client.Option{
		client.WithLogger(logger),
		client.WithIndicatorTimeout(cfg.Server.IndicatorTimeout),
	}
	if cfg.IsMT5() {
		c, err := client.DialMT5(ctx, cfg.TransportConfig(), opts...)
		if err != nil {
			return nil, err
		}
		return NewMT5Bridge(c), nil
	}
	c, err := client.DialMT4(ctx, cfg.TransportConfig(), opts...)
	if err != nil {
		return nil, err
	}
	return NewMT4Bridge(c), nil
}

// Bridge returns the terminal session, connecting on first use.
func (a *App) Bridge(ctx context.Context) (Bridge, error) {
	if a.bridge != nil {
		return a.bridge, nil
	}
	b, err := a.dial(ctx, a.Config, a.Logger)
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", logging.RedactAddress(a.Config.Server.Address), err)
	}
	a.Logger.Debug().
		Str("address", logging.RedactAddress(a.Config.Server.Address)).
		Str("dialect", b.Dialect()).
		Msg("Bridge connected")
	a.bridge = b
	return b, nil
}

// Close releases the bridge session and the store.
func (a *App) Close() error {
	var first error
	if a.bridge != nil {
		first = a.bridge.Close()
		a.bridge = nil
	}
	if a.Store != nil {
		if err := a.Store.Close(); err != nil && first == nil {
			first = err
		}
		a.Store = nil
	}
	return first
}

// setup loads configuration, builds the logger and opens the store.
// A Config set in advance is kept.
func (a *App) setup(cmd *cobra.Command) error {
	if a.Config == nil {
		dir, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(dir)
		if err != nil {
			return err
		}
		a.Config = cfg
		a.Logger = logging.NewLoggerWithConfig(cfg.LogConfig())
	}

	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		a.Logger = a.Logger.Level(zerolog.DebugLevel)
	}

	if a.Store == nil && a.Config.Store.Enabled {
		dataStore, err := store.NewSQLiteStore(a.Config.Store.Path)
		if err != nil {
			a.Logger.Warn().Err(err).Msg("Failed to initialize store, bar cache and journal are unavailable")
		} else {
			a.Store = dataStore
			a.Logger.Debug().Str("path", a.Config.Store.Path).Msg("SQLite store initialized")
		}
	}
	return nil
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mtctl",
		Short: "mtctl - MetaTrader terminal bridge client",
		Long: `mtctl talks to a MetaTrader 4 or 5 terminal through its ZeroMQ bridge.

It reads account, symbol, signal and price data, evaluates built-in indicators
and sends, modifies, closes and deletes orders.

Use 'mtctl config show' to see which terminal is targeted.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setup(cmd)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config directory (default: ~/.config/metatrader-client)")
	rootCmd.PersistentFlags().Bool("json", false, "output in JSON format")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	addCoreCommands(rootCmd, app)
	addMarketCommands(rootCmd, app)
	addTradingCommands(rootCmd, app)

	return rootCmd
}

// Execute runs mtctl with args and releases every resource afterwards.
func Execute(ctx context.Context, args []string) error {
	app := NewApp(nil)
	defer app.Close()

	rootCmd := NewRootCmd(app)
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// addCoreCommands adds core utility commands.
func addCoreCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(app))
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{
					"version":    Version,
					"build_date": BuildDate,
				})
			} else {
				output.Printf("mtctl v%s\n", Version)
				output.Dim("Build date: %s", BuildDate)
			}
		},
	}
}

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  "View and validate application configuration.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if output.IsJSON() {
				shown := *app.Config
				shown.Server.Address = logging.RedactAddress(shown.Server.Address)
				return output.JSON(shown)
			}
			showConfig(output, app.Config)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration directory path",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			dir, _ := cmd.Flags().GetString("config")
			if dir == "" {
				dir = config.DefaultConfigDir()
			}
			if output.IsJSON() {
				output.JSON(map[string]string{"path": dir})
			} else {
				output.Println(dir)
			}
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Validate configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if err := app.Config.Validate(); err != nil {
				output.Error("Configuration validation failed: %v", err)
				return err
			}
			if output.IsJSON() {
				return output.JSON(map[string]bool{"valid": true})
			}
			output.Success("Configuration is valid")
			return nil
		},
	})

	return cmd
}

func showConfig(output *Output, cfg *config.Config) {
	transport := cfg.Server.Transport
	if transport == "" {
		transport = cfg.TransportKind() + " (from address)"
	}

	output.Bold("Server")
	output.Printf("  Address:           %s\n", logging.RedactAddress(cfg.Server.Address))
	output.Printf("  Transport:         %s\n", transport)
	output.Printf("  Dialect:           %s\n", cfg.Server.Dialect)
	output.Printf("  Send Timeout:      %s\n", cfg.Server.SendTimeout)
	output.Printf("  Receive Timeout:   %s\n", cfg.Server.ReceiveTimeout)
	output.Printf("  Indicator Timeout: %s\n", cfg.Server.IndicatorTimeout)
	output.Printf("  OHLCV Timeout:     %s\n", cfg.Server.OHLCVTimeout)
	output.Println()

	output.Bold("Logging")
	output.Printf("  Level:             %s\n", cfg.Logging.Level)
	output.Printf("  Console:           %v\n", cfg.Logging.Console)
	output.Printf("  File:              %v\n", cfg.Logging.File)
	if cfg.Logging.File {
		output.Printf("  File Path:         %s\n", cfg.Logging.FilePath)
	}
	output.Println()

	output.Bold("Store")
	output.Printf("  Enabled:           %v\n", cfg.Store.Enabled)
	output.Printf("  Path:              %s\n", cfg.Store.Path)
}
