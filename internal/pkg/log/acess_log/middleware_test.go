package acess_log

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newEngine(logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware(logger))
	r.GET("/ok", func(c *gin.Context) {
		trace := RayTrace(c)
		if trace == nil {
			c.Status(http.StatusTeapot)
			return
		}
		c.String(http.StatusOK, *trace)
	})
	r.GET("/fail", func(c *gin.Context) {
		c.Status(http.StatusInternalServerError)
	})
	return r
}

func TestMiddlewareAssignsRayTrace(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	r := newEngine(zap.New(core))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))

	require.Equal(t, http.StatusOK, w.Code)
	trace := w.Header().Get(RayTraceHeader)
	_, err := uuid.Parse(trace)
	require.NoError(t, err)
	assert.Equal(t, trace, w.Body.String())

	entries := logs.FilterMessage("[ACCESS]").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "/ok", entries[0].ContextMap()["path"])
	assert.Equal(t, trace, entries[0].ContextMap()["ray_trace"])
}

func TestMiddlewareKeepsIncomingRayTrace(t *testing.T) {
	core, _ := observer.New(zapcore.InfoLevel)
	r := newEngine(zap.New(core))

	incoming := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(RayTraceHeader, incoming)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, incoming, w.Header().Get(RayTraceHeader))
}

func TestMiddlewareReplacesMalformedRayTrace(t *testing.T) {
	core, _ := observer.New(zapcore.InfoLevel)
	r := newEngine(zap.New(core))

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(RayTraceHeader, "<script>")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.NotEqual(t, "<script>", w.Header().Get(RayTraceHeader))
}

func TestMiddlewareLogsServerErrorsAsError(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	r := newEngine(zap.New(core))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fail", nil))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.EqualValues(t, http.StatusInternalServerError, entries[0].ContextMap()["status"])
}

func TestRayTraceWithoutMiddleware(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Nil(t, RayTrace(c))
}
