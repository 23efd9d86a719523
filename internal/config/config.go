// Package config provides configuration management for mtctl.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"metatrader-client/internal/logging"
	mterrors "metatrader-client/pkg/errors"
	"metatrader-client/pkg/transport"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Logging LoggingConfig `mapstructure:"logging"`
	Store   StoreConfig   `mapstructure:"store"`
}

// ServerConfig describes how to reach the terminal bridge.
type ServerConfig struct {
	Address          string        `mapstructure:"address"`           // tcp://host:port or ws://host:port/path
	Transport        string        `mapstructure:"transport"`         // "zmq", "ws" or empty to infer from address
	Dialect          string        `mapstructure:"dialect"`           // "mt4" or "mt5"
	SendTimeout      time.Duration `mapstructure:"send_timeout"`      // per request
	ReceiveTimeout   time.Duration `mapstructure:"receive_timeout"`   // per request
	IndicatorTimeout time.Duration `mapstructure:"indicator_timeout"` // chart load wait for run_indicator
	OHLCVTimeout     time.Duration `mapstructure:"ohlcv_timeout"`     // history load wait for get_ohlcv
}

// LoggingConfig mirrors logging.LogConfig in the config file.
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Console    bool   `mapstructure:"console"`
	File       bool   `mapstructure:"file"`
	FilePath   string `mapstructure:"file_path"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
}

// StoreConfig holds the local bar cache and order journal settings.
type StoreConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

const (
	TransportZMQ = "zmq"
	TransportWS  = "ws"

	DialectMT4 = "mt4"
	DialectMT5 = "mt5"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "MTCLIENT_"

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/metatrader-client"
	}
	return filepath.Join(home, ".config", "metatrader-client")
}

// Default returns the configuration used when no file sets a value.
func Default(configDir string) *Config {
	logs := logging.DefaultLogConfig()
	return &Config{
		Server: ServerConfig{
			Address:          "tcp://localhost:28282",
			Dialect:          DialectMT4,
			SendTimeout:      transport.DefaultSendTimeout,
			ReceiveTimeout:   transport.DefaultReceiveTimeout,
			IndicatorTimeout: 5 * time.Second,
			OHLCVTimeout:     5 * time.Second,
		},
		Logging: LoggingConfig{
			Level:      logs.Level,
			Console:    logs.Console,
			File:       logs.File,
			FilePath:   filepath.Join(configDir, "logs", "mtctl.log"),
			MaxSize:    logs.MaxSize,
			MaxBackups: logs.MaxBackups,
			MaxAge:     logs.MaxAge,
		},
		Store: StoreConfig{
			Enabled: true,
			Path:    filepath.Join(configDir, "mtctl.db"),
		},
	}
}

// Load loads configuration from the specified directory.
// If configDir is empty, uses the default config directory. A missing
// config.toml is replaced by a commented template.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	// .env files never override variables already set in the environment.
	_ = godotenv.Load(filepath.Join(configDir, ".env"))
	_ = godotenv.Load()

	cfg, err := loadConfigFile(configDir)
	if err != nil {
		return nil, fmt.Errorf("loading config.toml: %w", err)
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func loadConfigFile(configDir string) (*Config, error) {
	def := Default(configDir)

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)
	setDefaults(v, def)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		if err := createTemplateConfig(configDir); err != nil {
			return nil, err
		}
		return def, nil
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if cfg.Logging.FilePath == "" {
		cfg.Logging.FilePath = def.Logging.FilePath
	}
	if cfg.Store.Path == "" {
		cfg.Store.Path = def.Store.Path
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, def *Config) {
	v.SetDefault("server.address", def.Server.Address)
	v.SetDefault("server.transport", def.Server.Transport)
	v.SetDefault("server.dialect", def.Server.Dialect)
	v.SetDefault("server.send_timeout", def.Server.SendTimeout)
	v.SetDefault("server.receive_timeout", def.Server.ReceiveTimeout)
	v.SetDefault("server.indicator_timeout", def.Server.IndicatorTimeout)
	v.SetDefault("server.ohlcv_timeout", def.Server.OHLCVTimeout)

	v.SetDefault("logging.level", def.Logging.Level)
	v.SetDefault("logging.console", def.Logging.Console)
	v.SetDefault("logging.file", def.Logging.File)
	v.SetDefault("logging.file_path", def.Logging.FilePath)
	v.SetDefault("logging.max_size", def.Logging.MaxSize)
	v.SetDefault("logging.max_backups", def.Logging.MaxBackups)
	v.SetDefault("logging.max_age", def.Logging.MaxAge)

	v.SetDefault("store.enabled", def.Store.Enabled)
	v.SetDefault("store.path", def.Store.Path)
}

func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv(EnvPrefix + "ADDRESS"); v != "" {
		cfg.Server.Address = v
	}
	if v := os.Getenv(EnvPrefix + "TRANSPORT"); v != "" {
		cfg.Server.Transport = v
	}
	if v := os.Getenv(EnvPrefix + "DIALECT"); v != "" {
		cfg.Server.Dialect = v
	}

	durations := map[string]*time.Duration{
		"SEND_TIMEOUT":      &cfg.Server.SendTimeout,
		"RECEIVE_TIMEOUT":   &cfg.Server.ReceiveTimeout,
		"INDICATOR_TIMEOUT": &cfg.Server.IndicatorTimeout,
		"OHLCV_TIMEOUT":     &cfg.Server.OHLCVTimeout,
	}
	for name, target := range durations {
		v := os.Getenv(EnvPrefix + name)
		if v == "" {
			continue
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q: %v", mterrors.ErrConfigInvalid, EnvPrefix, name, v, err)
		}
		*target = d
	}

	if v := os.Getenv(EnvPrefix + "LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv(EnvPrefix + "STORE_PATH"); v != "" {
		cfg.Store.Path = v
	}
	if v := os.Getenv(EnvPrefix + "STORE_ENABLED"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %sSTORE_ENABLED=%q", mterrors.ErrConfigInvalid, EnvPrefix, v)
		}
		cfg.Store.Enabled = b
	}
	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Address == "" {
		return fmt.Errorf("%w: server.address must be set", mterrors.ErrConfigInvalid)
	}

	switch c.Server.Transport {
	case "":
	case TransportZMQ, TransportWS:
		if c.Server.Transport != c.TransportKind() {
			return fmt.Errorf("%w: server.transport %q does not match address %s",
				mterrors.ErrConfigInvalid, c.Server.Transport, c.Server.Address)
		}
	default:
		return fmt.Errorf("%w: invalid transport: %s (must be 'zmq' or 'ws')", mterrors.ErrConfigInvalid, c.Server.Transport)
	}

	if c.Server.Dialect != DialectMT4 && c.Server.Dialect != DialectMT5 {
		return fmt.Errorf("%w: invalid dialect: %s (must be 'mt4' or 'mt5')", mterrors.ErrConfigInvalid, c.Server.Dialect)
	}

	if c.Server.SendTimeout <= 0 || c.Server.ReceiveTimeout <= 0 {
		return fmt.Errorf("%w: send_timeout and receive_timeout must be positive", mterrors.ErrConfigInvalid)
	}
	if c.Server.IndicatorTimeout <= 0 || c.Server.OHLCVTimeout <= 0 {
		return fmt.Errorf("%w: indicator_timeout and ohlcv_timeout must be positive", mterrors.ErrConfigInvalid)
	}

	if c.Store.Enabled && c.Store.Path == "" {
		return fmt.Errorf("%w: store.path must be set when the store is enabled", mterrors.ErrConfigInvalid)
	}

	return nil
}

// TransportKind reports which transport the address selects.
func (c *Config) TransportKind() string {
	addr := strings.ToLower(c.Server.Address)
	if strings.HasPrefix(addr, "ws://") || strings.HasPrefix(addr, "wss://") {
		return TransportWS
	}
	return TransportZMQ
}

// IsMT5 returns true for the 64-bit ticket dialect.
func (c *Config) IsMT5() bool {
	return c.Server.Dialect == DialectMT5
}

// TransportConfig returns the socket settings for the bridge.
func (c *Config) TransportConfig() transport.Config {
	return transport.Config{
		Address:        c.Server.Address,
		SendTimeout:    c.Server.SendTimeout,
		ReceiveTimeout: c.Server.ReceiveTimeout,
	}
}

// LogConfig returns the logger settings.
func (c *Config) LogConfig() logging.LogConfig {
	return logging.LogConfig{
		Level:      c.Logging.Level,
		Console:    c.Logging.Console,
		File:       c.Logging.File,
		FilePath:   c.Logging.FilePath,
		MaxSize:    c.Logging.MaxSize,
		MaxBackups: c.Logging.MaxBackups,
		MaxAge:     c.Logging.MaxAge,
	}
}
