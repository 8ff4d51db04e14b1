package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// RapidShyp stores upstream provider settings.
type RapidShyp struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// Pprof stores debug server settings. A zero port disables the listener.
type Pprof struct {
	Port int
	User string
	Pass string
}

// Config stores serviceability relay settings.
type Config struct {
	Port      int
	Env       string
	RapidShyp RapidShyp
	Pprof     Pprof
}

// IsDevelopment reports whether internal error detail may be echoed to callers.
func (c *Config) IsDevelopment() bool {
	return c.Env == envDevelopment
}

// Load reads configuration in order: .env (if present) → environment → flags.
// A missing RapidShyp API key is a startup error: the relay refuses to run
// without it.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: .env not loaded: %v", err)
	}

	port := DefaultPort()
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			port = p
		}
	}

	env := DefaultEnv()
	if v := os.Getenv("APP_ENV"); v != "" {
		env = v
	}

	pflag.IntVarP(&port, "port", "p", port, "port to listen on")
	pflag.StringVar(&env, "env", env, "runtime environment (development|production)")
	pflag.Parse()

	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("invalid port: %d", port)
	}

	rs := DefaultRapidShyp()
	rs.APIKey = os.Getenv("RAPIDSHYP_API_KEY")
	if rs.APIKey == "" {
		return nil, fmt.Errorf("RAPIDSHYP_API_KEY is required")
	}
	if v := os.Getenv("RAPIDSHYP_BASE_URL"); v != "" {
		rs.BaseURL = v
	}
	if v := os.Getenv("UPSTREAM_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid UPSTREAM_TIMEOUT: %w", err)
		}
		rs.Timeout = d
	}

	var pprofCfg Pprof
	if v := os.Getenv("PPROF_PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil || p < 0 || p > 65535 {
			return nil, fmt.Errorf("invalid PPROF_PORT: %q", v)
		}
		pprofCfg.Port = p
	}
	pprofCfg.User = os.Getenv("PPROF_USER")
	pprofCfg.Pass = os.Getenv("PPROF_PASS")

	return &Config{
		Port:      port,
		Env:       env,
		RapidShyp: rs,
		Pprof:     pprofCfg,
	}, nil
}
