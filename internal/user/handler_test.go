// AngelaMos | 2026
// handler_test.go

package user

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noopMiddleware(next http.Handler) http.Handler {
	return next
}

func newAdminRouter(t *testing.T) (*Service, chi.Router) {
	t.Helper()
	svc := NewService(newFakeRepo())
	router := chi.NewRouter()
	NewHandler(svc).RegisterAdminRoutes(router, noopMiddleware, noopMiddleware)
	return svc, router
}

// Accounts are never removed; the admin surface must not expose a delete
// that would take simulation and export history with it.
func TestAdminRoutes_NoUserDelete(t *testing.T) {
	svc, router := newAdminRouter(t)

	info, err := svc.Create(
		context.Background(),
		"marie", "marie@example.com", "hash", "",
	)
	require.NoError(t, err)

	req := httptest.NewRequest(
		http.MethodDelete,
		"/admin/users/"+info.ID,
		nil,
	)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestAdminRoutes_GetUser(t *testing.T) {
	svc, router := newAdminRouter(t)

	info, err := svc.Create(
		context.Background(),
		"marie", "marie@example.com", "hash", "",
	)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin/users/"+info.ID, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "marie")
}
