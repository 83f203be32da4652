package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/harentsoaR/pet24-api/internal/handlers"
	"github.com/harentsoaR/pet24-api/internal/models"
	"github.com/harentsoaR/pet24-api/internal/routes"
	"github.com/harentsoaR/pet24-api/internal/services"
	"github.com/harentsoaR/pet24-api/internal/storage"
	"github.com/harentsoaR/pet24-api/internal/utils"
)

type testApp struct {
	router *gin.Engine
	tokens *utils.TokenIssuer
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := zap.NewNop()
	files := storage.NewFileStore(t.TempDir(), false, log)
	mongo := storage.NewMongoClient("", "", log)
	media := services.NewMediaResolver()
	tokens := utils.NewTokenIssuer("test-secret")

	doctors := services.NewDoctorService(storage.NewRepository(services.DoctorCollection(), files, mongo, log), media, log)
	h := handlers.NewHandler(handlers.Services{
		Doctors:      doctors,
		Posts:        services.NewPostService(storage.NewRepository(services.PostCollection(), files, mongo, log), log),
		Products:     services.NewProductService(storage.NewRepository(services.ProductCollection(), files, mongo, log), media, log),
		Slides:       services.NewSlideService(storage.NewRepository(services.SlideCollection(), files, mongo, log), log),
		Reservations: services.NewReservationService(storage.NewRepository(services.ReservationCollection(), files, mongo, log), doctors, services.NewNotificationService("", log), log),
		Users:        services.NewUserService(storage.NewRepository(services.UserCollection(log), files, mongo, log), log),
	}, tokens, handlers.Options{StorageMode: "file"}, log)

	return &testApp{
		router: routes.NewRouter(h, routes.Config{CORSOrigins: []string{"http://localhost:3000"}, Tokens: tokens, Log: log}),
		tokens: tokens,
	}
}

func (a *testApp) sessionCookie(t *testing.T, role models.Role) *http.Cookie {
	t.Helper()
	token, err := a.tokens.GenerateJWT(models.User{Base: models.Base{ID: "1"}, Email: "admin@example.com", Role: role})
	require.NoError(t, err)
	return &http.Cookie{Name: utils.SessionCookie, Value: token}
}

func (a *testApp) admin(t *testing.T) *http.Cookie {
	return a.sessionCookie(t, models.RoleAdmin)
}

// do sends body (marshalled unless it is already a string) and returns the
// recorder.
func (a *testApp) do(t *testing.T, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var payload []byte
	switch b := body.(type) {
	case nil:
	case string:
		payload = []byte(b)
	default:
		var err error
		payload, err = json.Marshal(b)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func errorOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[map[string]any](t, w)["error"].(string)
}
