// AngelaMos | 2026
// service_test.go

package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoriumlabs/platform-api/internal/core"
)

type fakeRepo struct {
	sessions map[string]*Session

	// stampedLogins records the last_login side effect of Create, which
	// the real repository runs in the same transaction as the insert.
	stampedLogins []string
	createErr     error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{sessions: make(map[string]*Session)}
}

func (f *fakeRepo) Create(_ context.Context, session *Session) error {
	if f.createErr != nil {
		return f.createErr
	}
	session.CreatedAt = time.Now()
	f.sessions[session.TokenHash] = session
	f.stampedLogins = append(f.stampedLogins, session.UserID)
	return nil
}

func (f *fakeRepo) FindByTokenHash(
	_ context.Context,
	tokenHash string,
) (*Session, error) {
	session, ok := f.sessions[tokenHash]
	if !ok {
		return nil, core.ErrNotFound
	}
	return session, nil
}

func (f *fakeRepo) DeleteByTokenHash(_ context.Context, tokenHash string) error {
	delete(f.sessions, tokenHash)
	return nil
}

func (f *fakeRepo) DeleteAllForUser(_ context.Context, userID string) error {
	for hash, session := range f.sessions {
		if session.UserID == userID {
			delete(f.sessions, hash)
		}
	}
	return nil
}

func (f *fakeRepo) GetActiveSessionsForUser(
	_ context.Context,
	userID string,
) ([]Session, error) {
	var out []Session
	for _, session := range f.sessions {
		if session.UserID == userID && !session.IsExpired() {
			out = append(out, *session)
		}
	}
	return out, nil
}

func (f *fakeRepo) DeleteExpired(_ context.Context) (int64, error) {
	var n int64
	for hash, session := range f.sessions {
		if session.IsExpired() {
			delete(f.sessions, hash)
			n++
		}
	}
	return n, nil
}

type fakeUserProvider struct {
	users map[string]*UserInfo

	createErr error
	rehashes  map[string]string
}

func newFakeUserProvider() *fakeUserProvider {
	return &fakeUserProvider{
		users:    make(map[string]*UserInfo),
		rehashes: make(map[string]string),
	}
}

func (f *fakeUserProvider) add(user *UserInfo) {
	f.users[user.ID] = user
}

func (f *fakeUserProvider) GetByIdentifier(
	_ context.Context,
	identifier string,
) (*UserInfo, error) {
	for _, u := range f.users {
		if u.Username == identifier || u.Email == identifier {
			return u, nil
		}
	}
	return nil, core.ErrNotFound
}

func (f *fakeUserProvider) GetByID(
	_ context.Context,
	id string,
) (*UserInfo, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserProvider) Create(
	_ context.Context,
	username, email, passwordHash, role string,
) (*UserInfo, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	for _, u := range f.users {
		if u.Username == username || u.Email == email {
			return nil, core.ErrDuplicateKey
		}
	}
	user := &UserInfo{
		ID:           "user-" + username,
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    time.Now(),
	}
	f.users[user.ID] = user
	return user, nil
}

func (f *fakeUserProvider) UpdatePassword(
	_ context.Context,
	userID, passwordHash string,
) error {
	f.rehashes[userID] = passwordHash
	return nil
}

func newTestService(t *testing.T) (*Service, *fakeRepo, *fakeUserProvider) {
	t.Helper()
	repo := newFakeRepo()
	users := newFakeUserProvider()
	return NewService(repo, users, 24*time.Hour), repo, users
}

func registeredUser(t *testing.T, users *fakeUserProvider, password string) *UserInfo {
	t.Helper()
	hash, err := core.HashPassword(password)
	require.NoError(t, err)

	user := &UserInfo{
		ID:           "user-1",
		Username:     "marie",
		Email:        "marie@example.com",
		PasswordHash: hash,
		Role:         "researcher",
		CreatedAt:    time.Now(),
	}
	users.add(user)
	return user
}

func TestRegister_DefaultsRole(t *testing.T) {
	svc, _, users := newTestService(t)

	resp, err := svc.Register(context.Background(), RegisterRequest{
		Username: "marie",
		Email:    "marie@example.com",
		Password: "radium-is-warm",
	})
	require.NoError(t, err)

	assert.Equal(t, "user", resp.Role)
	assert.Equal(t, "marie", resp.Username)

	stored := users.users[resp.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "radium-is-warm", stored.PasswordHash)
}

func TestRegister_Duplicate(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Username: "marie",
		Email:    "marie@example.com",
		Password: "radium-is-warm",
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), RegisterRequest{
		Username: "marie",
		Email:    "other@example.com",
		Password: "radium-is-warm",
	})
	assert.ErrorIs(t, err, ErrDuplicateUser)
}

func TestLogin_IssuesSession(t *testing.T) {
	svc, repo, users := newTestService(t)
	user := registeredUser(t, users, "radium-is-warm")

	resp, err := svc.Login(context.Background(), LoginRequest{
		Identifier: "marie",
		Password:   "radium-is-warm",
	}, "test-agent", "10.0.0.1")
	require.NoError(t, err)

	assert.NotEmpty(t, resp.SessionToken)
	assert.WithinDuration(
		t,
		time.Now().Add(24*time.Hour),
		resp.ExpiresAt,
		time.Minute,
	)
	assert.Equal(t, user.ID, resp.User.ID)

	// Only the hash is stored, never the raw token.
	stored := repo.sessions[core.HashToken(resp.SessionToken)]
	require.NotNil(t, stored)
	assert.NotEqual(t, resp.SessionToken, stored.TokenHash)
	assert.Equal(t, "test-agent", stored.UserAgent)

	// The login stamp rides along with the session insert.
	assert.Contains(t, repo.stampedLogins, user.ID)
}

func TestLogin_ByEmail(t *testing.T) {
	svc, _, users := newTestService(t)
	registeredUser(t, users, "radium-is-warm")

	resp, err := svc.Login(context.Background(), LoginRequest{
		Identifier: "marie@example.com",
		Password:   "radium-is-warm",
	}, "", "")
	require.NoError(t, err)
	assert.Equal(t, "marie", resp.User.Username)
}

func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	svc, _, users := newTestService(t)
	registeredUser(t, users, "radium-is-warm")

	_, errUnknown := svc.Login(context.Background(), LoginRequest{
		Identifier: "nobody",
		Password:   "radium-is-warm",
	}, "", "")

	_, errWrongPass := svc.Login(context.Background(), LoginRequest{
		Identifier: "marie",
		Password:   "polonium-is-cold",
	}, "", "")

	assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPass, ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrongPass.Error())
}

func TestResolve_ValidToken(t *testing.T) {
	svc, _, users := newTestService(t)
	user := registeredUser(t, users, "radium-is-warm")

	resp, err := svc.Login(context.Background(), LoginRequest{
		Identifier: "marie",
		Password:   "radium-is-warm",
	}, "", "")
	require.NoError(t, err)

	identity, err := svc.Resolve(context.Background(), resp.SessionToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, identity.UserID)
	assert.Equal(t, "marie", identity.Username)
	assert.Equal(t, "researcher", identity.Role)
	assert.NotEmpty(t, identity.SessionID)
}

func TestResolve_UnknownToken(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Resolve(context.Background(), "never-issued")
	assert.ErrorIs(t, err, core.ErrSessionInvalid)
}

func TestResolve_ExpiredToken(t *testing.T) {
	svc, repo, users := newTestService(t)
	user := registeredUser(t, users, "radium-is-warm")

	token, err := core.GenerateSessionToken()
	require.NoError(t, err)
	repo.sessions[core.HashToken(token)] = &Session{
		ID:        "session-1",
		UserID:    user.ID,
		TokenHash: core.HashToken(token),
		ExpiresAt: time.Now().Add(-time.Minute),
	}

	_, err = svc.Resolve(context.Background(), token)
	assert.ErrorIs(t, err, core.ErrSessionExpired)
}

func TestLogout_RevokesAndIsIdempotent(t *testing.T) {
	svc, _, users := newTestService(t)
	registeredUser(t, users, "radium-is-warm")

	resp, err := svc.Login(context.Background(), LoginRequest{
		Identifier: "marie",
		Password:   "radium-is-warm",
	}, "", "")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), resp.SessionToken))

	_, err = svc.Resolve(context.Background(), resp.SessionToken)
	assert.ErrorIs(t, err, core.ErrSessionInvalid)

	// Second revocation of the same token still succeeds.
	assert.NoError(t, svc.Logout(context.Background(), resp.SessionToken))
}

func TestSweepExpired(t *testing.T) {
	svc, repo, users := newTestService(t)
	user := registeredUser(t, users, "radium-is-warm")

	repo.sessions["expired"] = &Session{
		ID:        "session-old",
		UserID:    user.ID,
		TokenHash: "expired",
		ExpiresAt: time.Now().Add(-time.Hour),
	}
	repo.sessions["live"] = &Session{
		ID:        "session-new",
		UserID:    user.ID,
		TokenHash: "live",
		ExpiresAt: time.Now().Add(time.Hour),
	}

	swept, err := svc.SweepExpired(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), swept)
	assert.NotContains(t, repo.sessions, "expired")
	assert.Contains(t, repo.sessions, "live")
}

func TestLogin_StorageFailure(t *testing.T) {
	svc, repo, users := newTestService(t)
	registeredUser(t, users, "radium-is-warm")
	repo.createErr = errors.New("connection refused")

	_, err := svc.Login(context.Background(), LoginRequest{
		Identifier: "marie",
		Password:   "radium-is-warm",
	}, "", "")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}
