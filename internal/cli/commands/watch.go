package commands

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/AnasAshrafGit/Sirge-impact-analysis/internal/feed"
	"github.com/AnasAshrafGit/Sirge-impact-analysis/internal/pipeline"
	"github.com/AnasAshrafGit/Sirge-impact-analysis/internal/sink"
	"github.com/AnasAshrafGit/Sirge-impact-analysis/internal/watcher"
	"github.com/AnasAshrafGit/Sirge-impact-analysis/pkg/core"
)

// startedMessage is announced once the watcher is running.
const startedMessage = "DB Schema Watcher started!"

// WatchOptions holds options for the watch command.
type WatchOptions struct {
	Initial bool // Run the pipeline once at startup
}

// NewWatchCommand creates the watch command.
func NewWatchCommand() *cobra.Command {
	opts := &WatchOptions{}
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch the schema file and report affected files on every save",
		Long: `Watch the configured schema file for changes.

Each time the file is written, its full contents are parsed and every
CREATE TABLE and ALTER TABLE statement is reported. Workspace files that
mention a reported change are listed as candidates for updating.

Every save is processed on its own; saves are not debounced or queued.`,
		Example: `  # Watch the schema configured in schemawatch.yaml
  schemawatch watch

  # Watch a specific file and stream messages over HTTP
  schemawatch watch --schema db/schema.sql --feed 127.0.0.1:7777`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWatch(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Initial, "initial", false, "Process the current schema once at startup")
	cmd.Flags().String("feed", "", "Serve messages as server-sent events on this address")

	return cmd
}

func runWatch(cmd *cobra.Command, opts *WatchOptions) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	cfg := cmdCtx.Cfg
	logger := cmdCtx.Logger

	if err := cfg.RequireSchema(); err != nil {
		return err
	}
	driver, err := cmdCtx.Driver()
	if err != nil {
		return err
	}

	w, err := watcher.New(cfg.SchemaPath, logger)
	if err != nil {
		return err
	}
	defer func() { _ = w.Close() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	eg, egctx := errgroup.WithContext(ctx)

	out := cmdCtx.Sink()
	if cfg.Feed.Addr != "" {
		srv := feed.NewServer(feed.Config{Addr: cfg.Feed.Addr, Logger: logger})
		out = sink.Broadcast{out, srv.Hub()}
		eg.Go(func() error {
			return srv.Serve(egctx)
		})
	}

	eg.Go(func() error {
		return w.Run(egctx)
	})

	// Closing the watcher ends Run even if nothing else cancels egctx.
	eg.Go(func() error {
		<-egctx.Done()
		return w.Close()
	})

	out.Notify(core.Message{Severity: core.SeverityInfo, Text: startedMessage, Time: time.Now()})
	logger.Info("watching schema file", "path", w.Path(), "workspace", cfg.Workspace)

	if opts.Initial {
		pipeline.Present(driver.RunFile(egctx, w.Path()), out)
	}

	eg.Go(func() error {
		processEvents(egctx, w.Events(), driver, out)
		return nil
	})

	return eg.Wait()
}

// processEvents runs the pipeline once per event, each on its own goroutine,
// and returns when events is closed and every started run has finished.
func processEvents(ctx context.Context, events <-chan watcher.Event, driver *pipeline.Driver, out core.Sink) {
	var wg sync.WaitGroup
	defer wg.Wait()

	for ev := range events {
		wg.Add(1)
		go func() {
			defer wg.Done()
			pipeline.Present(driver.RunFile(ctx, ev.Path), out)
		}()
	}
}
