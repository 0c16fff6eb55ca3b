package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/MKhiriev/go-smite-api/models"
)

// ParseFlags registers the configuration flags on fs, parses args and
// returns the positional arguments that follow them. fs may already carry
// the caller's own flags; a nil fs gets a private, silent set.
//
// Flags:
//
//	-dev-id developer id
//	-auth-key developer auth key
//	-platform PC, Xbox or PS4
//	-format json or xml
//	-base-url endpoint override
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-rate-limit requests per second (0 disables)
//	-rate-burst limiter burst
//	-cache-size catalog cache entries (0 disables)
//	-cache-ttl catalog cache ttl
//	-keep-alive session keeper interval
//	-session-max-age session renewal age
//	-log-level log level
//	-log-file rotating log file path
//	-c/-config json file path with configs
func ParseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, []string, error) {
	cfg := &StructuredConfig{}

	if fs == nil {
		fs = flag.NewFlagSet("config", flag.ContinueOnError)
		fs.SetOutput(io.Discard)
	}

	fs.StringVar(&cfg.API.DevID, "dev-id", "", "Developer id")
	fs.StringVar(&cfg.API.AuthKey, "auth-key", "", "Developer auth key")
	fs.Func("platform", "Platform: PC, Xbox or PS4", func(s string) error {
		p, err := models.ParsePlatform(s)
		if err != nil {
			return err
		}
		cfg.API.Platform = p
		return nil
	})
	fs.Func("format", "Response format: json or xml", func(s string) error {
		f, err := models.ParseResponseFormat(s)
		if err != nil {
			return err
		}
		cfg.API.Format = f
		return nil
	})
	fs.StringVar(&cfg.API.BaseURL, "base-url", "", "Endpoint override")
	fs.DurationVar(&cfg.API.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.Float64Var(&cfg.API.RateLimit, "rate-limit", 0, "Requests per second, 0 disables")
	fs.IntVar(&cfg.API.RateBurst, "rate-burst", 0, "Rate limiter burst")
	fs.IntVar(&cfg.Cache.Size, "cache-size", 0, "Catalog cache entries, 0 disables")
	fs.DurationVar(&cfg.Cache.TTL, "cache-ttl", 0, "Catalog cache ttl")
	fs.DurationVar(&cfg.Workers.KeepAliveInterval, "keep-alive", 0, "Session keeper interval")
	fs.DurationVar(&cfg.Workers.SessionMaxAge, "session-max-age", 0, "Session renewal age")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "Log level")
	fs.StringVar(&cfg.Log.File, "log-file", "", "Rotating log file path")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return cfg, fs.Args(), nil
}
