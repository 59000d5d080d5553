package middleware

import (
	"context"
	stderrors "errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ticketdesk/ticketdesk/internal/application/user/dto"
	"github.com/ticketdesk/ticketdesk/internal/infrastructure/ratelimit"
	"github.com/ticketdesk/ticketdesk/internal/shared/constants"
	"github.com/ticketdesk/ticketdesk/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func echoBody(c *gin.Context) {
	raw, _ := io.ReadAll(c.Request.Body)
	c.Data(http.StatusOK, "application/json", raw)
}

func TestSanitizeFields(t *testing.T) {
	r := gin.New()
	r.POST("/tickets", SanitizeFields("subject"), echoBody)

	tests := []struct {
		name string
		body string
		want string
	}{
		{"strips markup from subject", `{"subject":"<b>Printer</b> <script>x()</script>down","description":"<i>keep</i>"}`, `"subject":"Printer down"`},
		{"leaves other fields", `{"subject":"ok","description":"<i>keep</i>"}`, `"description":"<i>keep</i>"`},
		{"keeps ampersands readable", `{"subject":"Q&A session"}`, `"subject":"Q&A session"`},
		{"passes malformed json through", `{"subject":`, `{"subject":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/tickets", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), tt.want)
		})
	}
}

func TestSanitizeFields_PreservesLargeNumbers(t *testing.T) {
	r := gin.New()
	r.POST("/tickets", SanitizeFields("subject"), echoBody)

	req := httptest.NewRequest(http.MethodPost, "/tickets", strings.NewReader(`{"subject":"<b>x</b>","size":9007199254740993}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Contains(t, w.Body.String(), "9007199254740993")
}

type failingLimiter struct{}

func (failingLimiter) Allow(context.Context, string, ratelimit.RateLimitConfig) (bool, error) {
	return false, stderrors.New("redis down")
}

func (failingLimiter) GetUsed(context.Context, string, time.Duration) (int64, error) {
	return 0, nil
}

func (failingLimiter) Reset(context.Context, string) error { return nil }

func TestRateLimiter(t *testing.T) {
	t.Run("rejects once the window is spent", func(t *testing.T) {
		rl := NewRateLimiter(ratelimit.NewMemoryRateLimiter(), "upload", ratelimit.RateLimitConfig{RequestsPerMinute: 2}, logger.NewNopLogger())
		r := gin.New()
		r.POST("/upload", rl.Limit(), func(c *gin.Context) { c.Status(http.StatusOK) })

		codes := make([]int, 0, 3)
		for i := 0; i < 3; i++ {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/upload", nil))
			codes = append(codes, w.Code)
		}
		assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	})

	t.Run("fails open", func(t *testing.T) {
		rl := NewRateLimiter(failingLimiter{}, "upload", ratelimit.RateLimitConfig{RequestsPerMinute: 1}, logger.NewNopLogger())
		r := gin.New()
		r.POST("/upload", rl.Limit(), func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/upload", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

type stubEnsureUser struct {
	resp *dto.UserResponse
	err  error
	got  dto.EnsureUserRequest
}

func (s *stubEnsureUser) Execute(_ context.Context, req dto.EnsureUserRequest) (*dto.UserResponse, error) {
	s.got = req
	return s.resp, s.err
}

func TestDefaultUser(t *testing.T) {
	identity := dto.EnsureUserRequest{Email: constants.DefaultUserEmail, Username: constants.DefaultUserUsername}

	t.Run("sets the acting user", func(t *testing.T) {
		stub := &stubEnsureUser{resp: &dto.UserResponse{ID: 7}}
		r := gin.New()
		r.GET("/", DefaultUser(stub, identity, logger.NewNopLogger()), func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"user_id": c.MustGet(constants.ContextKeyUserID)})
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"user_id":7}`, w.Body.String())
		assert.Equal(t, identity, stub.got)
	})

	t.Run("aborts when the user cannot be resolved", func(t *testing.T) {
		stub := &stubEnsureUser{err: stderrors.New("db down")}
		r := gin.New()
		called := false
		r.GET("/", DefaultUser(stub, identity, logger.NewNopLogger()), func(c *gin.Context) { called = true })

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.False(t, called)
	})
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery(logger.NewNopLogger()))
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), constants.ErrMsgInternalServerError)
}

func TestCORS(t *testing.T) {
	t.Run("wildcard allows any origin", func(t *testing.T) {
		r := gin.New()
		r.Use(CORS([]string{"*"}))
		r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("explicit list rejects other origins", func(t *testing.T) {
		r := gin.New()
		r.Use(CORS([]string{"https://desk.example.com"}))
		r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(constants.ContextKeyRequestID)) })

	t.Run("echoes client id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constants.HeaderXRequestID, "abc-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "abc-123", w.Header().Get(constants.HeaderXRequestID))
		assert.Equal(t, "abc-123", w.Body.String())
	})

	t.Run("assigns one when missing", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Len(t, w.Header().Get(constants.HeaderXRequestID), 36)
	})
}
