package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/gin-gonic/gin"
)

// etagFor returns a strong ETag derived from the response body.
func etagFor(body []byte) string {
	return fmt.Sprintf(`"%016x"`, xxhash.Sum64(body))
}

// notModified reports whether any entity tag in If-None-Match matches etag.
func notModified(r *http.Request, etag string) bool {
	header := r.Header.Get("If-None-Match")
	if header == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == etag || candidate == "*" {
			return true
		}
	}
	return false
}

// writeCacheable writes body with an ETag, or 304 when the client already
// holds it.
func writeCacheable(c *gin.Context, body []byte) {
	etag := etagFor(body)
	c.Header("ETag", etag)
	if notModified(c.Request, etag) {
		c.Status(http.StatusNotModified)
		return
	}
	c.Data(http.StatusOK, jsonContentType, body)
}
