package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const configTemplate = `# metatrader-client configuration

[server]
# Bridge address: tcp://host:port for the ZeroMQ bridge, ws://host:port/path for a websocket gateway
address = "tcp://localhost:28282"
# Transport: "zmq" or "ws"; leave empty to infer from the address
transport = ""
# Terminal dialect: "mt4" (32-bit tickets) or "mt5" (64-bit tickets)
dialect = "mt4"
# Socket timeouts (e.g., "10s", "500ms")
send_timeout = "10s"
receive_timeout = "10s"
# How long the terminal may wait for chart data when running an indicator
indicator_timeout = "5s"
# How long the terminal may wait for history when fetching bars
ohlcv_timeout = "5s"

[logging]
# Level: trace, debug, info, warn, error
level = "info"
# Log to stderr
console = true
# Log to a rotating file
file = false
file_path = ""
# Rotation: megabytes per file, files kept, days kept
max_size = 50
max_backups = 5
max_age = 14

[store]
# Cache fetched bars and journal order actions in SQLite
enabled = true
# Database path; empty uses mtctl.db in the config directory
path = ""
`

func createTemplateConfig(configDir string) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	path := filepath.Join(configDir, "config.toml")
	if err := os.WriteFile(path, []byte(configTemplate), 0644); err != nil {
		return fmt.Errorf("writing config template: %w", err)
	}

	return nil
}
