package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"arttable/internal/artic"
	"arttable/internal/config"
	"arttable/internal/eventbus"
	"arttable/internal/logging"
	"arttable/internal/metrics"
	"arttable/internal/ui"
	"arttable/internal/ui/handlers"
)

// Flags holds the root command flags. Zero values leave the config untouched.
type Flags struct {
	ConfigPath  string
	PageSize    int
	BaseURL     string
	LogFile     string
	LogLevel    string
	MetricsAddr string
}

func rootCmd() *cobra.Command {
	var flags Flags
	cmd := &cobra.Command{
		Use:          "arttable",
		Short:        "Browse the Art Institute of Chicago collection in a paged table",
		SilenceUsage: true,
		Long: `arttable pages through the Art Institute of Chicago artworks API in a
terminal table. Rows can be selected one by one or as the first N rows of
the loaded page.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, &flags)
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}

	fs := cmd.PersistentFlags()
	fs.StringVarP(&flags.ConfigPath, "config", "c", "", "config file (default "+config.DefaultPath()+")")
	fs.IntVar(&flags.PageSize, "page-size", 0, "initial rows per page, one of ui.page_size_options")
	fs.StringVar(&flags.BaseURL, "base-url", "", "artworks API base url")
	fs.StringVar(&flags.LogFile, "log-file", "", "log file path")
	fs.StringVar(&flags.LogLevel, "log-level", "", "log level (debug, info, warn, error)")
	fs.StringVar(&flags.MetricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")

	cmd.AddCommand(configCmd(&flags))
	cmd.AddCommand(versionCmd())
	return cmd
}

// Execute runs the root command
func Execute() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

// loadConfig reads the config file and applies the flags that were set
func loadConfig(cmd *cobra.Command, flags *Flags) (*config.Config, error) {
	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		return nil, err
	}
	applyFlags(cmd, flags, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyFlags(cmd *cobra.Command, flags *Flags, cfg *config.Config) {
	changed := func(name string) bool {
		f := cmd.Flags().Lookup(name)
		return f != nil && f.Changed
	}
	if changed("page-size") {
		cfg.UI.PageSize = flags.PageSize
	}
	if changed("base-url") {
		cfg.API.BaseURL = flags.BaseURL
	}
	if changed("log-file") {
		cfg.Log.File = flags.LogFile
	}
	if changed("log-level") {
		cfg.Log.Level = flags.LogLevel
	}
	if changed("metrics-addr") {
		cfg.Metrics.Addr = flags.MetricsAddr
	}
}

func run(cfg *config.Config) error {
	logCfg := cfg.Log.Logging()
	if logCfg.FilePath == "" {
		// the terminal belongs to the UI
		logCfg.Output = io.Discard
	}
	logger, closer := logging.Setup(logCfg)
	defer closer.Close()

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(sigCtx)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if cfg.Metrics.Addr != "" {
		g.Go(func() error {
			// a failed listener is logged, the UI keeps running
			if err := metrics.Serve(ctx, cfg.Metrics.Addr); err != nil {
				logger.Error().Err(err).Str("addr", cfg.Metrics.Addr).Msg("metrics listener stopped")
			}
			return nil
		})
	}

	bus := eventbus.New()
	defer bus.Close()
	events := handlers.NewEventHandler(bus)
	defer events.Close()

	client, err := artic.New(artic.Config{
		BaseURL:   cfg.API.BaseURL,
		UserAgent: cfg.API.UserAgent,
		Timeout:   cfg.API.Timeout(),

		RequestsPerMinute: cfg.API.RequestsPerMinute,
	})
	if err != nil {
		return err
	}

	logger.Info().Str("base_url", cfg.API.BaseURL).Int("page_size", cfg.UI.PageSize).Msg("starting arttable")

	model := ui.NewModel(ctx, cfg, client, bus)
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(model, opts...)
	model.SetProgram(p)

	g.Go(func() error {
		defer cancel()
		if _, err := p.Run(); err != nil {
			if errors.Is(err, tea.ErrProgramKilled) && sigCtx.Err() != nil {
				return nil
			}
			return fmt.Errorf("ui: %w", err)
		}
		return nil
	})
	return g.Wait()
}
