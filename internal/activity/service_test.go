// AngelaMos | 2026
// service_test.go

package activity

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoriumlabs/platform-api/internal/auth"
	"github.com/thoriumlabs/platform-api/internal/core"
)

type fakeRepo struct {
	prefs   map[string]string
	exports []Export
	events  []Event

	eventErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{prefs: make(map[string]string)}
}

func (f *fakeRepo) UpsertPreference(
	_ context.Context,
	userID, key, value string,
) error {
	f.prefs[userID+"/"+key] = value
	return nil
}

func (f *fakeRepo) GetPreferences(
	_ context.Context,
	userID string,
) (map[string]string, error) {
	out := make(map[string]string)
	prefix := userID + "/"
	for k, v := range f.prefs {
		if len(k) > len(prefix) && k[:len(prefix)] == prefix {
			out[k[len(prefix):]] = v
		}
	}
	return out, nil
}

func (f *fakeRepo) LogExport(_ context.Context, export *Export) error {
	export.CreatedAt = time.Now()
	f.exports = append(f.exports, *export)
	return nil
}

func (f *fakeRepo) ListExports(
	_ context.Context,
	userID string,
	limit int,
) ([]Export, error) {
	var out []Export
	for i := len(f.exports) - 1; i >= 0 && len(out) < limit; i-- {
		if f.exports[i].UserID == userID {
			out = append(out, f.exports[i])
		}
	}
	return out, nil
}

func (f *fakeRepo) CountExports(_ context.Context, userID string) (int, error) {
	count := 0
	for _, e := range f.exports {
		if e.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (f *fakeRepo) RecordEvent(_ context.Context, event *Event) error {
	if f.eventErr != nil {
		return f.eventErr
	}
	f.events = append(f.events, *event)
	return nil
}

type fakeSimStats struct {
	count    int
	favorite string
}

func (f *fakeSimStats) CountForUser(context.Context, string) (int, error) {
	return f.count, nil
}

func (f *fakeSimStats) FavoriteKind(context.Context, string) (string, error) {
	if f.favorite == "" {
		return "", core.ErrNotFound
	}
	return f.favorite, nil
}

type fakeUsers struct {
	lastLogin *time.Time
}

func (f *fakeUsers) GetByIdentifier(
	context.Context,
	string,
) (*auth.UserInfo, error) {
	return nil, core.ErrNotFound
}

func (f *fakeUsers) GetByID(
	_ context.Context,
	id string,
) (*auth.UserInfo, error) {
	return &auth.UserInfo{ID: id, LastLogin: f.lastLogin}, nil
}

func (f *fakeUsers) Create(
	context.Context,
	string, string, string, string,
) (*auth.UserInfo, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeUsers) UpdatePassword(context.Context, string, string) error {
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSavePreference_Overwrites(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, &fakeSimStats{}, &fakeUsers{}, discardLogger())

	ctx := context.Background()
	require.NoError(t, svc.SavePreference(ctx, "user-1", "theme", "dark"))
	require.NoError(t, svc.SavePreference(ctx, "user-1", "theme", "light"))
	require.NoError(t, svc.SavePreference(ctx, "user-1", "units", "metric"))

	prefs, err := svc.GetPreferences(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"theme": "light",
		"units": "metric",
	}, prefs)
}

func TestSavePreference_EmptyKey(t *testing.T) {
	svc := NewService(newFakeRepo(), &fakeSimStats{}, &fakeUsers{}, discardLogger())

	err := svc.SavePreference(context.Background(), "user-1", "", "x")
	assert.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestRecordEvent_SwallowsStorageFailure(t *testing.T) {
	repo := newFakeRepo()
	repo.eventErr = errors.New("disk full")
	svc := NewService(repo, &fakeSimStats{}, &fakeUsers{}, discardLogger())

	// Must not panic or surface the error.
	svc.RecordEvent(context.Background(), nil, RecordEventRequest{
		ActionType: "page_view",
		PageName:   "reactor_simulator",
	})

	assert.Empty(t, repo.events)
}

func TestRecordEvent_AnonymousAndAuthenticated(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, &fakeSimStats{}, &fakeUsers{}, discardLogger())

	svc.RecordEvent(context.Background(), nil, RecordEventRequest{
		ActionType: "page_view",
		PageName:   "landing",
	})

	userID := "user-1"
	svc.RecordEvent(context.Background(), &userID, RecordEventRequest{
		ActionType: "simulation_run",
		PageName:   "reactor_simulator",
	})

	require.Len(t, repo.events, 2)
	assert.Nil(t, repo.events[0].UserID)
	require.NotNil(t, repo.events[1].UserID)
	assert.Equal(t, "user-1", *repo.events[1].UserID)
}

func TestUserStats(t *testing.T) {
	repo := newFakeRepo()
	lastLogin := time.Now().Add(-time.Hour)
	svc := NewService(
		repo,
		&fakeSimStats{count: 7, favorite: "reactor"},
		&fakeUsers{lastLogin: &lastLogin},
		discardLogger(),
	)

	ctx := context.Background()
	_, err := svc.LogExport(ctx, "user-1", LogExportRequest{
		ExportType: "csv",
		FileName:   "runs.csv",
	})
	require.NoError(t, err)

	stats, err := svc.UserStats(ctx, "user-1")
	require.NoError(t, err)

	assert.Equal(t, 7, stats.SimulationCount)
	assert.Equal(t, 1, stats.ExportCount)
	assert.Equal(t, "reactor", stats.FavoriteSimulation)
	require.NotNil(t, stats.LastLogin)
	assert.WithinDuration(t, lastLogin, *stats.LastLogin, time.Second)
}

func TestUserStats_NoSimulations(t *testing.T) {
	svc := NewService(
		newFakeRepo(),
		&fakeSimStats{count: 0},
		&fakeUsers{},
		discardLogger(),
	)

	stats, err := svc.UserStats(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, 0, stats.SimulationCount)
	assert.Equal(t, "None", stats.FavoriteSimulation)
	assert.Nil(t, stats.LastLogin)
}

func TestLogExport_DefaultsData(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, &fakeSimStats{}, &fakeUsers{}, discardLogger())

	export, err := svc.LogExport(context.Background(), "user-1", LogExportRequest{
		ExportType: "json",
		FileName:   "history.json",
	})
	require.NoError(t, err)
	assert.Equal(t, "{}", export.ExportData)
	assert.NotEmpty(t, export.ID)
}
