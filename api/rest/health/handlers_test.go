package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakePinger struct {
	err error
}

func (f fakePinger) Ping(context.Context) error {
	return f.err
}

func newRouter(db Pinger) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	RegisterRoutes(router, db)

	return router
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

	return w
}

func TestWelcome(t *testing.T) {
	w := get(newRouter(fakePinger{}), "/")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Welcome to the Voice App API"}`, w.Body.String())
}

func TestHandler(t *testing.T) {
	w := get(newRouter(fakePinger{}), "/health")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy","service":"voice-tutor","version":"1.0.0"}`, w.Body.String())
}

func TestReady(t *testing.T) {
	w := get(newRouter(fakePinger{}), "/health/ready")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ready","database":"ok"}`, w.Body.String())
}

func TestReady_DatabaseDown(t *testing.T) {
	w := get(newRouter(fakePinger{err: errors.New("connection refused")}), "/health/ready")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.JSONEq(t, `{"status":"unavailable","database":"unreachable"}`, w.Body.String())
}
