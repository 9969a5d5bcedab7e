package middleware

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// Compression returns a middleware that gzips responses for clients accepting it.
// Paths in excluded (for example /metrics, which Prometheus negotiates itself) are left alone.
func Compression(excluded ...string) gin.HandlerFunc {
	if len(excluded) == 0 {
		return gzip.Gzip(gzip.DefaultCompression)
	}
	return gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths(excluded))
}
