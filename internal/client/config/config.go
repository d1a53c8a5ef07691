package config

import "time"

// Account store backends.
const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
)

// Latency holds the simulated round-trip time of each mock backend call.
type Latency struct {
	Login    time.Duration
	Logout   time.Duration
	Recovery time.Duration
	Register time.Duration
}

// Config holds runtime settings for the loginflow client.
//
// Fields:
//   - LogFormat / LogLevel: logger selection (see logging.New).
//   - Store: account table backend, "memory" or "sqlite".
//   - DatabaseDSN: SQLite DSN used when Store is "sqlite".
//   - TokenSecret: HMAC key for session tokens; generated when empty.
//   - OnlineCheckInterval: how often the client checks backend reachability.
//   - Latency: simulated backend delays; zero disables them.
type Config struct {
	LogFormat           string
	LogLevel            string
	Store               string
	DatabaseDSN         string
	TokenSecret         string
	OnlineCheckInterval time.Duration
	Latency             Latency
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.LogFormat = "text"
	c.LogLevel = "info"
	c.Store = StoreMemory
	c.DatabaseDSN = ":memory:"
	c.TokenSecret = ""
	c.OnlineCheckInterval = 3 * time.Second
	c.Latency = Latency{
		Login:    1500 * time.Millisecond,
		Logout:   500 * time.Millisecond,
		Recovery: 1000 * time.Millisecond,
		Register: 2000 * time.Millisecond,
	}
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
