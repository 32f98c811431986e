package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"
	_ "time/tzdata" // the pause timezone must resolve in scratch containers too

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/vibpath/vibot/pkg/agent"
	"github.com/vibpath/vibot/pkg/bot"
	"github.com/vibpath/vibot/pkg/config"
	"github.com/vibpath/vibot/pkg/line"
	"github.com/vibpath/vibot/pkg/store"
	"github.com/vibpath/vibot/pkg/templates"
	"github.com/vibpath/vibot/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"config.yml" description:"config file path"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	if opts.NoColor {
		color.NoColor = true
	}
	setupLog(opts.Debug)

	lgr.Printf("[INFO] starting vibot version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		lgr.Printf("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()

	if err != nil {
		lgr.Printf("[ERROR] vibot failed: %v", err)
		os.Exit(1)
	}

	lgr.Printf("[INFO] shutdown complete")
}

// run loads the config, wires the bot together and serves until the context
// is canceled
func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// redact credentials from log output
	setupLog(opts.Debug, cfg.Line.ChannelSecret, cfg.Line.ChannelToken, cfg.Agent.APIKey)

	mongoStore, err := store.NewMongo(ctx, cfg.GetMongoConfig())
	if err != nil {
		return fmt.Errorf("failed to create preference store: %w", err)
	}
	defer func() {
		closeCtx, closeCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer closeCancel()
		if closeErr := mongoStore.Close(closeCtx); closeErr != nil {
			lgr.Printf("[WARN] mongodb disconnect failed: %v", closeErr)
		}
	}()

	prefs := store.NewService(mongoStore, cfg.GetCacheTTL())
	assets := templates.NewAssets(cfg.Server.StaticBaseURL)
	messenger := line.NewClient(cfg.GetLineConfig())
	responder := agent.NewAgent(cfg.GetAgentConfig(), assets)

	adminCfg := cfg.GetAdminConfig()
	loc, err := time.LoadLocation(adminCfg.Timezone)
	if err != nil {
		lgr.Printf("[WARN] timezone %q not available, using UTC: %v", adminCfg.Timezone, err)
		loc = time.UTC
	}

	chatBot := bot.New(messenger, prefs, responder, bot.NewPause(loc), bot.Config{
		Admins:       bot.ParseAdmins(adminCfg.UserIDs),
		Assets:       assets,
		DefaultPause: adminCfg.DefaultPause,
	})

	srv := server.New(cfg, prefs, chatBot, revision, opts.Debug)
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))

	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}

	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
