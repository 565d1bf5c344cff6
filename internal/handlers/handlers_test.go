package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"property-analyst/internal/activity"
	"property-analyst/internal/auth"
	"property-analyst/internal/database"
	"property-analyst/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "test-secret"

type testServer struct {
	router *gin.Engine
	store  *database.DB
	auth   *auth.Service
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	store := database.NewFromGorm(gdb)
	require.NoError(t, store.InitSchema())

	svc := auth.NewService(testSecret, time.Hour)
	return &testServer{
		router: newRouter(store, svc),
		store:  store,
		auth:   svc,
	}
}

// newRouter mirrors the route table in cmd/api
func newRouter(store *database.DB, svc *auth.Service) *gin.Engine {
	r := gin.New()

	activityLogger := activity.NewLogger(store)
	authHandler := NewAuthHandler(store, svc)
	propertyHandler := NewPropertyHandler(store, activityLogger)
	ownerHandler := NewOwnerHandler(store, activityLogger)

	r.POST("/api/auth/register", authHandler.Register)
	r.POST("/api/auth/login", authHandler.Login)

	api := r.Group("/api", auth.Middleware(svc))
	{
		api.GET("/properties", propertyHandler.List)
		api.GET("/properties/search", propertyHandler.Search)
		api.GET("/properties/:id", propertyHandler.Get)
		api.POST("/properties", propertyHandler.Create)
		api.PUT("/properties/:id", propertyHandler.Update)
		api.DELETE("/properties/:id", propertyHandler.Delete)
		api.GET("/properties/:id/logs", propertyHandler.GetLogs)

		api.GET("/properties/:id/owners", ownerHandler.List)
		api.POST("/properties/:id/owners", ownerHandler.Add)
		api.PUT("/owners/:id", ownerHandler.Update)
		api.DELETE("/owners/:id", ownerHandler.Delete)
	}

	return r
}

// newBroker seeds a broker row directly and issues a token for it. The
// password hash is irrelevant for token-authenticated tests.
func (ts *testServer) newBroker(t *testing.T, id, email string) string {
	t.Helper()
	require.NoError(t, ts.store.CreateBroker(&models.Broker{
		ID:           id,
		Name:         "Test Broker",
		Email:        email,
		PasswordHash: "unused",
	}))
	token, err := ts.auth.IssueToken(id, email)
	require.NoError(t, err)
	return token
}

func (ts *testServer) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dest))
}

func requireStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, w.Code, "body: %s", w.Body.String())
}
