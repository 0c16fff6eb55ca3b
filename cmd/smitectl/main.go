package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-smite-api/internal/client"
	"github.com/MKhiriev/go-smite-api/internal/config"
	"github.com/MKhiriev/go-smite-api/internal/logger"
	"github.com/MKhiriev/go-smite-api/internal/workers"
	"github.com/MKhiriev/go-smite-api/pkg/smite"
	"github.com/atotto/clipboard"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fs := flag.NewFlagSet("smitectl", flag.ContinueOnError)
	var opts client.Options
	fs.DurationVar(&opts.Poll, "poll", 0, "Repeat the call at this interval (e.g., 30s)")
	fs.BoolVar(&opts.Copy, "copy", false, "Copy the response body to the clipboard")
	fs.BoolVar(&opts.ListMethods, "methods", false, "List available methods and exit")
	showVersion := fs.Bool("version", false, "Print build info and exit")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: smitectl [flags] <method> [args...]")
		fs.PrintDefaults()
	}

	cfg, args, err := config.GetStructuredConfig(fs, os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if *showVersion {
		printBuildInfo()
		return
	}
	if err != nil && !opts.ListMethods {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log, closer := newLogger(cfg)
	code := run(cfg, opts, args, log)
	_ = closer.Close()

	os.Exit(code)
}

func run(cfg *config.StructuredConfig, opts client.Options, args []string, log *logger.Logger) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var api client.API = noAPI{}
	var keeper *workers.SessionKeeper

	if !opts.ListMethods {
		smiteClient, err := newSmiteClient(cfg, log)
		if err != nil {
			log.Error().Err(err).Msg("error creating smite client")
			return 1
		}
		api = smiteClient
		keeper = workers.NewSessionKeeper(smiteClient, cfg.Workers.KeepAliveInterval, cfg.Workers.SessionMaxAge, log)
	}

	a, err := client.NewApp(api, keeper, opts, os.Stdout, os.Stderr, clipboard.WriteAll, log)
	if err != nil {
		log.Error().Err(err).Msg("init client app error")
		return 1
	}

	if err = a.Run(ctx, args); err != nil {
		log.Debug().Err(err).Msg("command failed")
		return 1
	}

	return 0
}

func newSmiteClient(cfg *config.StructuredConfig, log *logger.Logger) (*smite.Client, error) {
	opts := []smite.Option{
		smite.WithLogger(log.Component("smite").Logger),
		smite.WithTimeout(cfg.API.RequestTimeout),
		smite.WithRateLimit(cfg.API.RateLimit, cfg.API.RateBurst),
		smite.WithCache(cfg.Cache.Size, cfg.Cache.TTL),
	}
	if cfg.API.BaseURL != "" {
		opts = append(opts, smite.WithBaseURL(cfg.API.BaseURL))
	}

	return smite.New(cfg.API.DevID, cfg.API.AuthKey, cfg.API.Platform, cfg.API.Format, opts...)
}

func newLogger(cfg *config.StructuredConfig) (*logger.Logger, io.Closer) {
	if cfg == nil {
		return logger.NewLogger("smitectl", "info"), io.NopCloser(nil)
	}
	if cfg.Log.File != "" {
		return logger.NewFileLogger("smitectl", cfg.Log.Level, logger.FileConfig{Path: cfg.Log.File})
	}
	return logger.NewLogger("smitectl", cfg.Log.Level), io.NopCloser(nil)
}

// noAPI backs -methods, which never talks to the API and may run without
// credentials.
type noAPI struct{}

func (noAPI) CreateSession(context.Context) error { return smite.ErrInvalidConfig }
func (noAPI) TestSession(context.Context) bool    { return false }
func (noAPI) Ping(context.Context) bool           { return false }
func (noAPI) Call(context.Context, string, ...string) (string, error) {
	return "", smite.ErrInvalidConfig
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
