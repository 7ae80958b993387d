package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordMint(t *testing.T) {
	c := NewCollector(prometheus.NewRegistry())

	c.RecordMint("success")
	c.RecordMint("success")
	c.RecordMint("network_error")

	assert.Equal(t, 2.0, testutil.ToFloat64(c.mintOutcomes.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.mintOutcomes.WithLabelValues("network_error")))
}

func TestRecordSignup(t *testing.T) {
	c := NewCollector(prometheus.NewRegistry())

	c.RecordSignup("profile_bootstrap_failed")

	assert.Equal(t, 1.0, testutil.ToFloat64(c.signupStates.WithLabelValues("profile_bootstrap_failed")))
}

func TestMiddleware_UsesRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c := NewCollector(prometheus.NewRegistry())

	router := gin.New()
	router.Use(Middleware(c))
	router.POST("/topics/:id/complete", func(ctx *gin.Context) {
		ctx.Status(http.StatusCreated)
	})

	for _, id := range []string{"1", "2", "3"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/topics/"+id+"/complete", nil))
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, 3.0, testutil.ToFloat64(c.requests.WithLabelValues("POST", "/topics/:id/complete", "201")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.requests.WithLabelValues("GET", "unmatched", "404")))
}

func TestHandler_ExposesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	c.RecordRequest("GET", "/health", http.StatusOK, 5*time.Millisecond)

	server := httptest.NewServer(Handler(reg))
	defer server.Close()

	resp, err := http.Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck // test

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.Contains(string(body), `tutor_http_requests_total{method="GET",route="/health",status="200"} 1`))
	assert.Contains(t, string(body), "tutor_http_request_duration_seconds_bucket")
}

func TestNoop(t *testing.T) {
	var rec Recorder = Noop{}

	assert.NotPanics(t, func() {
		rec.RecordRequest("GET", "/", 200, time.Millisecond)
		rec.RecordMint("success")
		rec.RecordSignup("start")
	})
}
