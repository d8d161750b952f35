package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	v1 "github.com/zhakazx/animeinfo/api/v1"
	"github.com/zhakazx/animeinfo/internal/cache"
	"github.com/zhakazx/animeinfo/internal/config"
	"github.com/zhakazx/animeinfo/internal/handlers"
	"github.com/zhakazx/animeinfo/internal/server"
	"github.com/zhakazx/animeinfo/internal/services"
	"github.com/zhakazx/animeinfo/pkg/scheduler"
	"github.com/zhakazx/animeinfo/pkg/seo"
)

func NewRunCommand(cfg *config.Configuration) *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the animeinfo API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateConfiguration(cfg); err != nil {
				return err
			}

			zap.S().Named("run").Infow("using configuration", "configuration", cfg.DebugMap())

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			return run(ctx, cfg)
		},
	}

	registerRunFlags(runCmd, cfg)

	return runCmd
}

func registerRunFlags(cmd *cobra.Command, cfg *config.Configuration) {
	nfs := cmd.Flags()

	nfs.IntVar(&cfg.Server.HTTPPort, "server-http-port", cfg.Server.HTTPPort, "Port on which the HTTP server is listening")
	nfs.StringVar(&cfg.Server.ServerMode, "server-mode", cfg.Server.ServerMode, "Server mode (dev or prod)")
	nfs.DurationVar(&cfg.Server.ShutdownTimeout, "server-shutdown-timeout", cfg.Server.ShutdownTimeout, "Graceful shutdown timeout")
	nfs.BoolVar(&cfg.Server.TLSEnabled, "server-tls-enabled", cfg.Server.TLSEnabled, "Serve HTTPS")
	nfs.StringVar(&cfg.Server.TLSCertFile, "server-tls-cert-file", cfg.Server.TLSCertFile, "TLS certificate; a self-signed one is generated when empty")
	nfs.StringVar(&cfg.Server.TLSKeyFile, "server-tls-key-file", cfg.Server.TLSKeyFile, "TLS private key")

	nfs.IntVar(&cfg.NumWorkers, "num-workers", cfg.NumWorkers, "Number of workers assembling anime pages")

	registerJikanFlags(nfs, cfg)
	registerYouTubeFlags(nfs, cfg)
	registerCacheFlags(nfs, cfg)

	nfs.StringVar(&cfg.Site.Name, "site-name", cfg.Site.Name, "Site name used in page metadata")
	nfs.StringVar(&cfg.Site.URL, "site-url", cfg.Site.URL, "Public site URL used in canonical links and the sitemap")
}

func validateConfiguration(cfg *config.Configuration) error {
	if cfg.Server.HTTPPort < 1 || cfg.Server.HTTPPort > 65535 {
		return fmt.Errorf("invalid http-port %d: must be between 1 and 65535", cfg.Server.HTTPPort)
	}

	if cfg.Server.ServerMode != server.DevServer && cfg.Server.ServerMode != server.ProductionServer {
		return fmt.Errorf("invalid server mode %q: must be %q or %q", cfg.Server.ServerMode, server.DevServer, server.ProductionServer)
	}

	if cfg.Server.ShutdownTimeout <= 0 {
		return errors.New("server-shutdown-timeout must be positive")
	}

	if cfg.Server.TLSEnabled && (cfg.Server.TLSCertFile == "") != (cfg.Server.TLSKeyFile == "") {
		return errors.New("server-tls-cert-file and server-tls-key-file must be set together")
	}

	if cfg.NumWorkers < 1 {
		return fmt.Errorf("invalid num-workers %d: must be at least 1", cfg.NumWorkers)
	}

	return validateUpstreamConfiguration(cfg)
}

// validateUpstreamConfiguration covers the settings shared by every command.
func validateUpstreamConfiguration(cfg *config.Configuration) error {
	if cfg.Jikan.URL == "" {
		return errors.New("jikan-url cannot be empty")
	}

	if cfg.Jikan.MinInterval <= 0 {
		return errors.New("jikan-min-interval must be positive")
	}

	if cfg.Jikan.RequestsPerMinute <= 0 {
		return errors.New("jikan-requests-per-minute must be positive")
	}

	if cfg.Jikan.MaxRetries < 0 {
		return errors.New("jikan-max-retries cannot be negative")
	}

	if !cache.IsValidBackend(cfg.Cache.Backend) {
		return fmt.Errorf("invalid cache-backend %q: must be one of %v", cfg.Cache.Backend, cache.Backends)
	}

	if cfg.Cache.Backend == cache.BackendPostgres && cfg.Cache.DSN == "" {
		return errors.New("cache-dsn must be set when cache-backend is postgres")
	}

	if u, err := url.Parse(cfg.Site.URL); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid site-url %q", cfg.Site.URL)
	}

	return nil
}

func run(ctx context.Context, cfg *config.Configuration) error {
	logger := zap.S().Named("run")

	up, err := newUpstream(ctx, cfg)
	if err != nil {
		return err
	}

	sched := scheduler.NewScheduler(cfg.NumWorkers)
	site := seo.Site{Name: cfg.Site.Name, URL: cfg.Site.URL}

	h := handlers.New(
		services.NewHomeService(sched, up.jikan),
		services.NewAnimeService(sched, up.jikan, up.youtube, site),
		services.NewMetadataService(up.jikan, site),
		up.jikan,
	)

	srv, err := server.NewServer(cfg,
		func(router *gin.RouterGroup) {
			v1.RegisterHandlersWithOptions(router, h, v1.GinServerOptions{ErrorHandler: handlers.ErrorHandler})
		},
		func(router *gin.RouterGroup) {
			router.GET("/sitemap.xml", h.GetSitemap)
		},
	)
	if err != nil {
		sched.Close()
		up.Close()
		return fmt.Errorf("failed to create server: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infow("http server listening", "port", cfg.Server.HTTPPort, "tls", cfg.Server.TLSEnabled)
		errCh <- srv.Start(ctx)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case runErr = <-errCh:
		if runErr != nil {
			logger.Errorw("http server stopped", "error", runErr)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	srv.Stop(shutdownCtx)
	sched.Close()
	up.Close()

	logger.Info("animeinfo stopped")

	return runErr
}
