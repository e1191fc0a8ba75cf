package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func setupRouter(logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Recovery(logger))
	r.Use(GinMiddleware(logger))
	return r
}

func TestGinMiddleware(t *testing.T) {
	t.Run("logs successful request at info", func(t *testing.T) {
		core, recorded := observer.New(zap.InfoLevel)
		r := setupRouter(zap.New(core))
		r.GET("/ping", func(c *gin.Context) {
			c.String(http.StatusOK, "pong")
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping?verbose=1", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, 1, recorded.Len())

		entry := recorded.All()[0]
		assert.Equal(t, zap.InfoLevel, entry.Level)
		fields := entry.ContextMap()
		assert.Equal(t, "GET", fields["method"])
		assert.Equal(t, "/ping", fields["path"])
		assert.Equal(t, int64(http.StatusOK), fields["status"])
		assert.Equal(t, "verbose=1", fields["query"])
	})

	t.Run("logs client error at warn", func(t *testing.T) {
		core, recorded := observer.New(zap.InfoLevel)
		r := setupRouter(zap.New(core))
		r.GET("/missing", func(c *gin.Context) {
			c.Status(http.StatusNotFound)
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))

		require.Equal(t, 1, recorded.Len())
		assert.Equal(t, zap.WarnLevel, recorded.All()[0].Level)
	})

	t.Run("logs server error at error", func(t *testing.T) {
		core, recorded := observer.New(zap.InfoLevel)
		r := setupRouter(zap.New(core))
		r.GET("/boom", func(c *gin.Context) {
			c.Status(http.StatusInternalServerError)
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

		require.Equal(t, 1, recorded.Len())
		assert.Equal(t, zap.ErrorLevel, recorded.All()[0].Level)
	})

	t.Run("stores request-scoped logger in gin context", func(t *testing.T) {
		core, _ := observer.New(zap.InfoLevel)
		r := setupRouter(zap.New(core))

		var fromCtx *zap.Logger
		r.GET("/scoped", func(c *gin.Context) {
			fromCtx = GetGinLogger(c)
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/scoped", nil))

		require.NotNil(t, fromCtx)
	})
}

func TestRecovery(t *testing.T) {
	core, recorded := observer.New(zap.ErrorLevel)
	r := setupRouter(zap.New(core))
	r.GET("/panic", func(c *gin.Context) {
		panic("something broke")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	require.GreaterOrEqual(t, recorded.Len(), 1)
	assert.Equal(t, "Panic recovered", recorded.All()[0].Message)
}

func TestGetGinLogger_ReturnsNopWhenAbsent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	logger := GetGinLogger(c)
	require.NotNil(t, logger)
	logger.Info("no-op")
}
