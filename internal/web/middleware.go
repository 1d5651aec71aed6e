package web

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/saifidev/portfolio/internal/metrics"
)

// visitorSalt is regenerated on every start, so visitor hashes cannot be
// correlated across restarts.
var visitorSalt = newSalt()

func newSalt() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic("generating visitor salt: " + err.Error())
	}
	return hex.EncodeToString(b)
}

// hashIP turns a client address into a short stable-per-process token. Raw
// addresses are never logged.
func hashIP(ip string) string {
	h := sha256.New()
	h.Write([]byte(ip + visitorSalt))
	return hex.EncodeToString(h.Sum(nil))[:16]
}

// untracked reports paths that are not page views.
func untracked(path string) bool {
	for _, prefix := range []string{"/static/", "/assets/", "/metrics", "/healthz", "/favicon"} {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// requestLogger logs one line per request with a hashed visitor id.
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		level := slog.LevelInfo
		status := c.Writer.Status()
		switch {
		case status >= 500:
			level = slog.LevelError
		case status >= 400 || untracked(c.Request.URL.Path):
			level = slog.LevelDebug
		}
		logger.Log(c.Request.Context(), level, "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency", time.Since(start),
			"visitor", hashIP(c.ClientIP()),
			"htmx", c.GetHeader("HX-Request") == "true",
		)
	}
}

// pageViews counts rendered pages and fragments by route. Static files are
// skipped and Do Not Track is honored.
func pageViews(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if untracked(c.Request.URL.Path) || c.GetHeader("DNT") == "1" {
			return
		}
		route := c.FullPath()
		if route == "" || c.Writer.Status() >= 400 {
			return
		}
		m.PageViews.WithLabelValues(route).Inc()
	}
}
