// AngelaMos | 2026
// repository.go

package activity

import (
	"context"
	"fmt"

	"github.com/thoriumlabs/platform-api/internal/core"
)

type Repository interface {
	UpsertPreference(ctx context.Context, userID, key, value string) error
	GetPreferences(ctx context.Context, userID string) (map[string]string, error)
	LogExport(ctx context.Context, export *Export) error
	ListExports(ctx context.Context, userID string, limit int) ([]Export, error)
	CountExports(ctx context.Context, userID string) (int, error)
	RecordEvent(ctx context.Context, event *Event) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

// UpsertPreference writes the per-key preference; a second write for the
// same key replaces the value.
func (r *repository) UpsertPreference(
	ctx context.Context,
	userID, key, value string,
) error {
	query := `
		INSERT INTO user_preferences (
			id, user_id, preference_key, preference_value
		) VALUES (
			gen_random_uuid(), $1, $2, $3
		)
		ON CONFLICT (user_id, preference_key)
		DO UPDATE SET preference_value = EXCLUDED.preference_value,
		              updated_at = NOW()`

	if _, err := r.db.ExecContext(ctx, query, userID, key, value); err != nil {
		return fmt.Errorf("upsert preference: %w", err)
	}

	return nil
}

func (r *repository) GetPreferences(
	ctx context.Context,
	userID string,
) (map[string]string, error) {
	query := `
		SELECT id, user_id, preference_key, preference_value,
		       created_at, updated_at
		FROM user_preferences
		WHERE user_id = $1`

	var rows []Preference
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("get preferences: %w", err)
	}

	prefs := make(map[string]string, len(rows))
	for _, p := range rows {
		prefs[p.PreferenceKey] = p.PreferenceValue
	}

	return prefs, nil
}

func (r *repository) LogExport(ctx context.Context, export *Export) error {
	query := `
		INSERT INTO export_history (
			id, user_id, export_type, file_name, file_path, export_data
		) VALUES (
			$1, $2, $3, $4, $5, $6
		)
		RETURNING created_at`

	err := r.db.GetContext(ctx, &export.CreatedAt, query,
		export.ID,
		export.UserID,
		export.ExportType,
		export.FileName,
		export.FilePath,
		export.ExportData,
	)
	if err != nil {
		return fmt.Errorf("log export: %w", err)
	}

	return nil
}

func (r *repository) ListExports(
	ctx context.Context,
	userID string,
	limit int,
) ([]Export, error) {
	query := `
		SELECT id, user_id, export_type, file_name, file_path, export_data,
		       created_at
		FROM export_history
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`

	var exports []Export
	if err := r.db.SelectContext(ctx, &exports, query, userID, limit); err != nil {
		return nil, fmt.Errorf("list exports: %w", err)
	}

	return exports, nil
}

func (r *repository) CountExports(
	ctx context.Context,
	userID string,
) (int, error) {
	query := `SELECT COUNT(*) FROM export_history WHERE user_id = $1`

	var count int
	if err := r.db.GetContext(ctx, &count, query, userID); err != nil {
		return 0, fmt.Errorf("count exports: %w", err)
	}

	return count, nil
}

func (r *repository) RecordEvent(ctx context.Context, event *Event) error {
	query := `
		INSERT INTO app_analytics (
			id, user_id, action_type, page_name, session_id, metadata
		) VALUES (
			$1, $2, $3, $4, $5, $6
		)`

	_, err := r.db.ExecContext(ctx, query,
		event.ID,
		event.UserID,
		event.ActionType,
		event.PageName,
		event.SessionID,
		event.Metadata,
	)
	if err != nil {
		return fmt.Errorf("record event: %w", err)
	}

	return nil
}
