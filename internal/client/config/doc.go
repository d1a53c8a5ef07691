// Package config loads runtime configuration for the loginflow client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables (see parseEnv), optionally seeded from a dotenv
//     file given with -e / -env-file, or ./.env when present.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-f string     log format: text, json or zap
//	-l string     log level: debug, info, warn, error
//	-s string     account store: memory or sqlite
//	-d string     SQLite DSN
//	-i int        online status check interval (seconds)
//	-latency dur  simulated login latency (e.g. 1500ms, 0)
//
// # JSON schema
//
// Durations use timex.Duration, so values can be strings like "1500ms" or
// integer nanoseconds:
//
//	{
//	  "log_format": "json",
//	  "log_level": "debug",
//	  "store": "sqlite",
//	  "database_dsn": ":memory:",
//	  "online_check_interval": "3s",
//	  "latency": {"login": "1500ms", "logout": "500ms", "recovery": "1s", "register": "2s"}
//	}
//
// # Environment
//
// LOGINFLOW_LOG_FORMAT, LOGINFLOW_LOG_LEVEL, LOGINFLOW_STORE,
// LOGINFLOW_DATABASE_DSN, LOGINFLOW_TOKEN_SECRET,
// LOGINFLOW_ONLINE_CHECK_INTERVAL, LOGINFLOW_LATENCY_LOGIN,
// LOGINFLOW_LATENCY_LOGOUT, LOGINFLOW_LATENCY_RECOVERY,
// LOGINFLOW_LATENCY_REGISTER.
package config
