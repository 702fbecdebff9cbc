// AngelaMos | 2026
// auth_test.go

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoriumlabs/platform-api/internal/core"
)

type fakeResolver struct {
	identities map[string]*Identity
	err        error
}

func (f *fakeResolver) Resolve(
	_ context.Context,
	token string,
) (*Identity, error) {
	if f.err != nil {
		return nil, f.err
	}
	identity, ok := f.identities[token]
	if !ok {
		return nil, core.ErrSessionInvalid
	}
	return identity, nil
}

func okHandler(t *testing.T, gotIdentity **Identity) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*gotIdentity = GetIdentity(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticator_ValidToken(t *testing.T) {
	resolver := &fakeResolver{identities: map[string]*Identity{
		"tok-1": {UserID: "user-1", Username: "marie", Role: "researcher"},
	}}

	var got *Identity
	handler := Authenticator(resolver)(okHandler(t, &got))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer tok-1")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got)
	assert.Equal(t, "user-1", got.UserID)
	assert.Equal(t, "researcher", got.Role)
}

func TestAuthenticator_MissingToken(t *testing.T) {
	resolver := &fakeResolver{}

	var got *Identity
	handler := Authenticator(resolver)(okHandler(t, &got))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, got)
}

func TestAuthenticator_UnknownToken(t *testing.T) {
	resolver := &fakeResolver{identities: map[string]*Identity{}}

	handler := Authenticator(resolver)(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not run")
		},
	))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "SESSION_INVALID")
}

func TestAuthenticator_ExpiredToken(t *testing.T) {
	resolver := &fakeResolver{err: core.ErrSessionExpired}

	handler := Authenticator(resolver)(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not run")
		},
	))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer expired")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "SESSION_EXPIRED")
}

func TestOptionalAuth_AnonymousPassesThrough(t *testing.T) {
	resolver := &fakeResolver{identities: map[string]*Identity{}}

	var got *Identity
	handler := OptionalAuth(resolver)(okHandler(t, &got))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, got)
}

func TestOptionalAuth_ValidTokenAttachesIdentity(t *testing.T) {
	resolver := &fakeResolver{identities: map[string]*Identity{
		"tok-1": {UserID: "user-1"},
	}}

	var got *Identity
	handler := OptionalAuth(resolver)(okHandler(t, &got))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer tok-1")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got)
	assert.Equal(t, "user-1", got.UserID)
}

func TestRequireAdmin(t *testing.T) {
	handler := RequireAdmin(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		},
	))

	adminCtx := withIdentity(context.Background(), &Identity{
		UserID: "user-1",
		Role:   "admin",
	})
	req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(adminCtx)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	userCtx := withIdentity(context.Background(), &Identity{
		UserID: "user-2",
		Role:   "user",
	})
	req = httptest.NewRequest(http.MethodGet, "/", nil).WithContext(userCtx)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestExtractToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, ExtractToken(req))

	req.Header.Set("Authorization", "Bearer abc123")
	assert.Equal(t, "abc123", ExtractToken(req))

	req.Header.Set("Authorization", "bearer abc123")
	assert.Equal(t, "abc123", ExtractToken(req))

	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	assert.Empty(t, ExtractToken(req))
}
