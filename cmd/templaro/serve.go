package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/templaro-dev/templaro"
	"github.com/templaro-dev/templaro/pkg/devserver"
)

func serveCmd() *cobra.Command {
	var (
		addr      string
		rootDir   string
		ext       string
		pathFlags []string
		interval  time.Duration
		verbose   bool
	)

	cmd := &cobra.Command{
		Use:   "serve [flags]",
		Short: "Run the template preview server",
		Long: `Serve registered templates over HTTP for previewing. Edits to
files under the registered directories invalidate the resolution cache
and live-reload connected browsers. Resolution metrics are exposed at
/metrics.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

			registry := prometheus.NewRegistry()

			cfg := templaro.DefaultConfig()
			cfg.RootDir = rootDir
			cfg.Logger = logger
			cfg.MetricsRegistry = registry
			if ext != "" {
				cfg.DefaultExtension = ext
			}

			loader, err := templaro.New(cfg)
			if err != nil {
				return err
			}
			if err := registerPaths(loader, pathFlags); err != nil {
				return err
			}

			srv := devserver.New(loader, devserver.Config{
				Addr:            addr,
				WatchInterval:   interval,
				MetricsGatherer: registry,
				Logger:          logger,
			})

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			return srv.ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address")
	cmd.Flags().StringVar(&rootDir, "root", "", "Base directory for relative template paths (default: working directory)")
	cmd.Flags().StringVar(&ext, "ext", "", "Default template extension (default: htm)")
	cmd.Flags().StringArrayVar(&pathFlags, "path", nil, "Template directory, repeatable, as \"dir\" or \"namespace=dir\"")
	cmd.Flags().DurationVar(&interval, "watch-interval", 500*time.Millisecond, "Template directory polling interval")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}
