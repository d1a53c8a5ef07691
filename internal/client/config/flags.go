package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/loginflow/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-f string     log format
//	-l string     log level
//	-s string     account store
//	-d string     SQLite DSN
//	-i int        online check interval in seconds
//	-latency dur  simulated login latency
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-f", "-l", "-s", "-d", "-i", "-latency"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.LogFormat, "f", cfg.LogFormat, "log format: text, json or zap")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.Store, "s", cfg.Store, "account store: memory or sqlite")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "SQLite DSN")
	fs.DurationVar(&cfg.Latency.Login, "latency", cfg.Latency.Login, "simulated login latency")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// -i only has whole-second precision, so an interval from JSON or the
	// environment is kept unless -i was given.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "i" {
			cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
		}
	})
}
