package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/loginflow/internal/flagx"
	"github.com/dmitrijs2005/loginflow/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Absent keys
// leave the corresponding Config field untouched.
type JsonConfig struct {
	LogFormat           *string         `json:"log_format"`
	LogLevel            *string         `json:"log_level"`
	Store               *string         `json:"store"`
	DatabaseDSN         *string         `json:"database_dsn"`
	TokenSecret         *string         `json:"token_secret"`
	OnlineCheckInterval *timex.Duration `json:"online_check_interval"`
	Latency             *JsonLatency    `json:"latency"`
}

type JsonLatency struct {
	Login    *timex.Duration `json:"login"`
	Logout   *timex.Duration `json:"logout"`
	Recovery *timex.Duration `json:"recovery"`
	Register *timex.Duration `json:"register"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c / -config. It does nothing when no file is given and panics on read or
// unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFile()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	jc.apply(cfg)
}

func (jc *JsonConfig) apply(cfg *Config) {
	setString(&cfg.LogFormat, jc.LogFormat)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.Store, jc.Store)
	setString(&cfg.DatabaseDSN, jc.DatabaseDSN)
	setString(&cfg.TokenSecret, jc.TokenSecret)
	if jc.OnlineCheckInterval != nil {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}
	if l := jc.Latency; l != nil {
		setDuration(&cfg.Latency.Login, l.Login)
		setDuration(&cfg.Latency.Logout, l.Logout)
		setDuration(&cfg.Latency.Recovery, l.Recovery)
		setDuration(&cfg.Latency.Register, l.Register)
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setDuration(dst *time.Duration, v *timex.Duration) {
	if v != nil {
		*dst = v.Duration
	}
}
