package profile

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"inspectbook/internal/domain"
	"inspectbook/internal/modules/appstate"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	state *domain.AppState
}

func (m *memoryStore) Load(ctx context.Context) (*domain.AppState, error) {
	return m.state, nil
}

func (m *memoryStore) Save(ctx context.Context, state *domain.AppState) error {
	m.state = state.Clone()
	return nil
}

func (m *memoryStore) Clear(ctx context.Context) error {
	m.state = nil
	return nil
}

type profileEnvelope struct {
	Success bool            `json:"success"`
	Data    ProfileResponse `json:"data"`
}

func setupRouter(t *testing.T) (*gin.Engine, *appstate.Service, *memoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := &memoryStore{}
	manager := appstate.New(store)
	t.Cleanup(manager.Close)

	router := gin.New()
	v1 := router.Group("/api/v1")
	NewHandler(manager).RegisterRoutes(v1)

	return router, manager, store
}

func performRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestGetProfile_EmptyState(t *testing.T) {
	router, _, _ := setupRouter(t)

	resp := performRequest(router, http.MethodGet, "/api/v1/profile", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var out profileEnvelope
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	assert.True(t, out.Success)
	assert.Empty(t, out.Data.FullName)
	assert.False(t, out.Data.Authenticated)
	assert.Zero(t, out.Data.OrderCount)
}

func TestUpdateProfile_RoundTrip(t *testing.T) {
	router, _, _ := setupRouter(t)

	resp := performRequest(router, http.MethodPut, "/api/v1/profile", UpdateProfileRequest{
		FullName: "Asel Nurlanova",
		Phone:    "+77001234567",
		Email:    "asel@example.com",
	})
	require.Equal(t, http.StatusOK, resp.Code)

	resp = performRequest(router, http.MethodGet, "/api/v1/profile", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var out profileEnvelope
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	assert.Equal(t, "Asel Nurlanova", out.Data.FullName)
	assert.Equal(t, "+77001234567", out.Data.Phone)
}

func TestUpdateProfile_RejectsBadEmail(t *testing.T) {
	router, _, _ := setupRouter(t)

	resp := performRequest(router, http.MethodPut, "/api/v1/profile", UpdateProfileRequest{
		FullName: "Asel",
		Phone:    "+77001234567",
		Email:    "not-an-email",
	})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestClearData_WipesStateAndStorage(t *testing.T) {
	router, manager, store := setupRouter(t)

	manager.Login("asel@example.com")
	manager.UpdateProfile(domain.Profile{FullName: "Asel", Phone: "1", Email: "a@b.kz"})
	manager.Flush()
	require.NotNil(t, store.state)

	resp := performRequest(router, http.MethodDelete, "/api/v1/profile/data", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	manager.Flush()

	state := manager.State()
	assert.False(t, state.IsAuthenticated)
	assert.Nil(t, state.Profile)
	assert.Nil(t, store.state)
}
