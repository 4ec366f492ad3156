package server

import (
	"time"

	"github.com/difysjs/docsite/logging"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	RequestIDKey    = "request_id"
	RequestIDHeader = "X-Request-Id"

	// set by SiteConfigHandler for the access log
	FormatKey      = "format"
	NotModifiedKey = "not_modified"
)

func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader(RequestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
		}

		c.Set(RequestIDKey, reqID)
		c.Writer.Header().Set(RequestIDHeader, reqID)

		c.Next()
	}
}

func requestEvent(status int) *zerolog.Event {
	switch {
	case status >= 500:
		return log.Logger.Error()
	case status >= 400:
		return log.Logger.Warn()
	default:
		return log.Logger.Info()
	}
}

// Logger writes one access line per request. Site configuration requests
// also carry the served format and whether the client copy was still
// current.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		d := zerolog.Dict().
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Dur("latency", time.Since(start))

		event := "http.request"
		if f := c.GetString(FormatKey); f != "" {
			event = "site_config.served"
			d.Str("format", f).Bool("not_modified", c.GetBool(NotModifiedKey))
		}

		requestEvent(status).
			Str(logging.TraceIDKey, c.GetString(RequestIDKey)).
			Str(logging.FieldFunc, "server.request").
			Str(logging.FieldEvent, event).
			Int(logging.FieldResult, status).
			Dict(logging.FieldParams, d).
			Msg("")
	}
}

func NoStore() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")
		c.Next()
	}
}
