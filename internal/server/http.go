package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/zhakazx/animeinfo/internal/config"
	"github.com/zhakazx/animeinfo/internal/server/middlewares"
	"github.com/zhakazx/animeinfo/pkg/certificates"
)

const (
	ProductionServer string = "prod"
	DevServer        string = "dev"
	apiV1            string = "/api/v1"
)

type Server struct {
	srv *http.Server
}

// NewServer mounts the API under /api/v1 through registerHandlerFn and the
// root level routes (sitemap) through registerRootFn, which may be nil.
func NewServer(cfg *config.Configuration, registerHandlerFn func(router *gin.RouterGroup), registerRootFn func(router *gin.RouterGroup)) (*Server, error) {
	gin.SetMode(gin.DebugMode)
	if cfg.Server.ServerMode == ProductionServer {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()

	srv := &http.Server{
		Addr:              fmt.Sprintf("0.0.0.0:%d", cfg.Server.HTTPPort),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	if cfg.Server.TLSEnabled {
		tlsConfig, err := certificates.TLSConfig(cfg.Server.TLSCertFile, cfg.Server.TLSKeyFile, tlsHosts(cfg.Site.URL))
		if err != nil {
			return nil, err
		}
		srv.TLSConfig = tlsConfig
	}

	engine.Use(
		middlewares.Logger(),
		ginzap.RecoveryWithZap(zap.S().Desugar(), true),
	)

	engine.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "API endpoint not found",
			})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	if registerRootFn != nil {
		registerRootFn(&engine.RouterGroup)
	}

	registerHandlerFn(engine.Group(apiV1))

	return &Server{srv: srv}, nil
}

func tlsHosts(siteURL string) []string {
	hosts := []string{"localhost", "127.0.0.1"}
	if u, err := url.Parse(siteURL); err == nil && u.Hostname() != "" {
		hosts = append(hosts, u.Hostname())
	}
	return hosts
}

// Start serves HTTP or HTTPS, depending on the TLS configuration, until Stop.
func (r *Server) Start(ctx context.Context) error {
	var err error
	if r.srv.TLSConfig != nil {
		err = r.srv.ListenAndServeTLS("", "")
	} else {
		err = r.srv.ListenAndServe()
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (r *Server) Stop(ctx context.Context) {
	if err := r.srv.Shutdown(ctx); err != nil {
		zap.S().Errorw("server shutdown", "error", err)
	}
}
