package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/iphase-tech/iphase-site/internal/content"
	"github.com/iphase-tech/iphase-site/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the live site",
	Long: `Starts the HTTP server. Every page view opens a WebSocket session that
tracks the active section, animates the statistics and handles the contact
form. With --watch (or site.watch) the content file is reloaded on change.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "port to listen on (defaults to server.port)")
	serveCmd.Flags().Bool("watch", false, "reload the content file when it changes")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if port, _ := cmd.Flags().GetInt("port"); port != 0 {
		cfg.Server.Port = port
	}
	if watch, _ := cmd.Flags().GetBool("watch"); watch {
		cfg.Site.Watch = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	store, err := content.NewStore(cfg.Site.ContentFile)
	if err != nil {
		return err
	}

	srv := server.New(cfg, store, logger)

	if cfg.Site.Watch {
		if cfg.Site.ContentFile == "" {
			logger.Warn("site.watch is set but no content file is configured; using built-in content")
		} else {
			w, err := server.NewWatcher(cfg.Site.ContentFile, store.Reload, logger)
			if err != nil {
				return fmt.Errorf("watching %s: %w", cfg.Site.ContentFile, err)
			}
			w.Start()
			defer w.Stop()
		}
	}

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	logger.Info("iphase starting",
		zap.String("version", Version),
		zap.Int("port", cfg.Server.Port),
		zap.String("content", contentSource(cfg.Site.ContentFile)),
	)
	return g.Wait()
}

func contentSource(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}
