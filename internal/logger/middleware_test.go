package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(Middleware())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, RequestID(c))
	})

	return router
}

func TestMiddleware_AssignsRequestID(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	require.Equal(t, http.StatusOK, w.Code)

	header := w.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(header)
	require.NoError(t, err, "generated request id should be a uuid")
	assert.Equal(t, header, w.Body.String())
}

func TestMiddleware_KeepsValidClientRequestID(t *testing.T) {
	router := newTestRouter()
	clientID := uuid.NewString()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, clientID)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, clientID, w.Header().Get(RequestIDHeader))
}

func TestMiddleware_ReplacesGarbageRequestID(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "<script>")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.NotEqual(t, "<script>", w.Header().Get(RequestIDHeader))
}

func TestFromContext_FallsBackToDefault(t *testing.T) {
	assert.Equal(t, Default(), FromContext(nil)) //nolint:staticcheck // nil context is handled explicitly
}
