package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/difysjs/docsite/config"
	"github.com/difysjs/docsite/config/site"
	"github.com/difysjs/docsite/export"
	"github.com/difysjs/docsite/server/routes"
	"github.com/difysjs/docsite/utils"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// New returns the engine serving a snapshot of cfg.Site. The documents are
// encoded once; every request gets the same bytes.
func New(cfg config.Config) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	if cfg.Env == config.EnvDevelopment {
		gin.SetMode(gin.DebugMode)
	}

	snapshot := cfg.Site.Clone()

	r := gin.New()
	r.Use(
		RequestID(),
		Logger(),
		gin.Recovery(),
	)

	r.GET(routes.GetHealthPath(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	cfgGrp := r.Group("/")
	cfgGrp.Use(NoStore())
	for _, f := range []export.Format{export.FormatJSON, export.FormatYAML} {
		h, err := SiteConfigHandler(snapshot, f)
		if err != nil {
			return nil, err
		}
		cfgGrp.GET(routes.GetSiteConfigPath(string(f)), h)
	}
	cfgGrp.GET(routes.GetSiteConfigPath("yml"), func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, routes.GetSiteConfigPath(string(export.FormatYAML)))
	})

	return r, nil
}

func SiteConfigHandler(s site.SiteConfiguration, f export.Format) (gin.HandlerFunc, error) {
	body, err := export.Encode(s, f)
	if err != nil {
		return nil, fmt.Errorf("preparing %s document: %w", f, err)
	}
	etag := `"` + utils.HashBytes(body)[:16] + `"`
	return func(c *gin.Context) {
		c.Set(FormatKey, string(f))
		c.Header("ETag", etag)
		if etagMatches(c.GetHeader("If-None-Match"), etag) {
			c.Set(NotModifiedKey, true)
			c.Status(http.StatusNotModified)
			return
		}
		c.Data(http.StatusOK, f.ContentType(), body)
	}, nil
}

// etagMatches does the weak comparison of If-None-Match. Tag lists and
// "*" are accepted.
func etagMatches(header, etag string) bool {
	want := strings.TrimPrefix(etag, "W/")
	for _, tag := range strings.Split(header, ",") {
		tag = strings.TrimSpace(tag)
		if tag == "*" || (tag != "" && strings.TrimPrefix(tag, "W/") == want) {
			return true
		}
	}
	return false
}

// Run serves until ctx is done and then shuts the server down gracefully.
func Run(ctx context.Context, cfg config.Config) error {
	r, err := New(cfg)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: r,

		ReadTimeout:       cfg.Server.Timeouts.Read,
		ReadHeaderTimeout: cfg.Server.Timeouts.Header,
		WriteTimeout:      cfg.Server.Timeouts.Write,
		IdleTimeout:       cfg.Server.Timeouts.Idle,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Logger.Info().Str("addr", srv.Addr).Msg("serving site configuration")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	log.Logger.Info().Msg("shutting down http server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return <-errCh
}
