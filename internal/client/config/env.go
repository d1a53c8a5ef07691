package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrijs2005/loginflow/internal/flagx"
)

// EnvConfig mirrors Config for environment parsing. It is pre-filled from
// the current Config so unset variables keep earlier values.
type EnvConfig struct {
	LogFormat           string        `env:"LOGINFLOW_LOG_FORMAT"`
	LogLevel            string        `env:"LOGINFLOW_LOG_LEVEL"`
	Store               string        `env:"LOGINFLOW_STORE"`
	DatabaseDSN         string        `env:"LOGINFLOW_DATABASE_DSN"`
	TokenSecret         string        `env:"LOGINFLOW_TOKEN_SECRET"`
	OnlineCheckInterval time.Duration `env:"LOGINFLOW_ONLINE_CHECK_INTERVAL"`
	LatencyLogin        time.Duration `env:"LOGINFLOW_LATENCY_LOGIN"`
	LatencyLogout       time.Duration `env:"LOGINFLOW_LATENCY_LOGOUT"`
	LatencyRecovery     time.Duration `env:"LOGINFLOW_LATENCY_RECOVERY"`
	LatencyRegister     time.Duration `env:"LOGINFLOW_LATENCY_REGISTER"`
}

// parseEnv overlays Config with LOGINFLOW_* environment variables. A dotenv
// file named by -e / -env-file is loaded first; without the flag ./.env is
// tried and silently skipped when missing. Already exported variables win
// over dotenv entries. Panics on malformed values, like the other loaders.
func parseEnv(cfg *Config) {
	if f := flagx.EnvFile(); f != "" {
		if err := godotenv.Load(f); err != nil {
			panic(err)
		}
	} else {
		_ = godotenv.Load()
	}

	ec := EnvConfig{
		LogFormat:           cfg.LogFormat,
		LogLevel:            cfg.LogLevel,
		Store:               cfg.Store,
		DatabaseDSN:         cfg.DatabaseDSN,
		TokenSecret:         cfg.TokenSecret,
		OnlineCheckInterval: cfg.OnlineCheckInterval,
		LatencyLogin:        cfg.Latency.Login,
		LatencyLogout:       cfg.Latency.Logout,
		LatencyRecovery:     cfg.Latency.Recovery,
		LatencyRegister:     cfg.Latency.Register,
	}
	if err := env.Parse(&ec); err != nil {
		panic(err)
	}

	cfg.LogFormat = ec.LogFormat
	cfg.LogLevel = ec.LogLevel
	cfg.Store = ec.Store
	cfg.DatabaseDSN = ec.DatabaseDSN
	cfg.TokenSecret = ec.TokenSecret
	cfg.OnlineCheckInterval = ec.OnlineCheckInterval
	cfg.Latency = Latency{
		Login:    ec.LatencyLogin,
		Logout:   ec.LatencyLogout,
		Recovery: ec.LatencyRecovery,
		Register: ec.LatencyRegister,
	}
}
