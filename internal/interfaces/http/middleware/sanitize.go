package middleware

import (
	"bytes"
	"encoding/json"
	"html"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
)

// SanitizeFields strips markup from the named top-level string fields of JSON
// request bodies. Bodies that are not JSON objects are passed through so the
// handler reports the binding error.
func SanitizeFields(fields ...string) gin.HandlerFunc {
	policy := bluemonday.StrictPolicy()

	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
		default:
			c.Next()
			return
		}
		if c.Request.Body == nil || !strings.HasPrefix(c.ContentType(), gin.MIMEJSON) {
			c.Next()
			return
		}

		raw, err := io.ReadAll(c.Request.Body)
		_ = c.Request.Body.Close()
		if err != nil {
			c.Request.Body = io.NopCloser(bytes.NewReader(nil))
			c.Next()
			return
		}

		body := sanitizeBody(policy, raw, fields)
		c.Request.Body = io.NopCloser(bytes.NewReader(body))
		c.Request.ContentLength = int64(len(body))
		c.Next()
	}
}

func sanitizeBody(policy *bluemonday.Policy, raw []byte, fields []string) []byte {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var body map[string]any
	if err := dec.Decode(&body); err != nil {
		return raw
	}

	changed := false
	for _, field := range fields {
		s, ok := body[field].(string)
		if !ok {
			continue
		}
		// bluemonday escapes text; unescape so plain "Q&A" survives unchanged.
		clean := html.UnescapeString(policy.Sanitize(s))
		if clean != s {
			body[field] = clean
			changed = true
		}
	}
	if !changed {
		return raw
	}

	out, err := json.Marshal(body)
	if err != nil {
		return raw
	}
	return out
}
