package routes_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/harentsoaR/pet24-api/internal/handlers"
	"github.com/harentsoaR/pet24-api/internal/routes"
	"github.com/harentsoaR/pet24-api/internal/services"
	"github.com/harentsoaR/pet24-api/internal/storage"
	"github.com/harentsoaR/pet24-api/internal/utils"
)

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := zap.NewNop()
	files := storage.NewFileStore(t.TempDir(), false, log)
	mongo := storage.NewMongoClient("", "", log)
	tokens := utils.NewTokenIssuer("test-secret")

	h := handlers.NewHandler(handlers.Services{
		Users: services.NewUserService(storage.NewRepository(services.UserCollection(log), files, mongo, log), log),
	}, tokens, handlers.Options{StorageMode: "file"}, log)

	return routes.NewRouter(h, routes.Config{
		CORSOrigins: []string{"http://localhost:3000"},
		Tokens:      tokens,
		Log:         log,
	})
}

func TestHealth(t *testing.T) {
	r := newRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","storage":"file"}`, w.Body.String())
}

func TestAdminRoutesRequireSession(t *testing.T) {
	r := newRouter(t)

	for _, path := range []string{"/api/doctors", "/api/products", "/api/slides"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, path, strings.NewReader(`{}`)))
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/reservations", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginIsRateLimited(t *testing.T) {
	r := newRouter(t)

	login := func() int {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"x@example.com","password":"wrong"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	for i := 0; i < 10; i++ {
		require.Equal(t, http.StatusUnauthorized, login(), "attempt %d", i+1)
	}
	assert.Equal(t, http.StatusTooManyRequests, login())
}

func TestCORSPreflight(t *testing.T) {
	r := newRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/doctors", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}
