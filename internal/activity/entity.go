// AngelaMos | 2026
// entity.go

package activity

import (
	"time"
)

type Preference struct {
	ID              string    `db:"id"`
	UserID          string    `db:"user_id"`
	PreferenceKey   string    `db:"preference_key"`
	PreferenceValue string    `db:"preference_value"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

type Export struct {
	ID         string    `db:"id"`
	UserID     string    `db:"user_id"`
	ExportType string    `db:"export_type"`
	FileName   string    `db:"file_name"`
	FilePath   string    `db:"file_path"`
	ExportData string    `db:"export_data"`
	CreatedAt  time.Time `db:"created_at"`
}

// Event is one app_analytics row. UserID is nil for anonymous traffic.
type Event struct {
	ID         string    `db:"id"`
	UserID     *string   `db:"user_id"`
	ActionType string    `db:"action_type"`
	PageName   string    `db:"page_name"`
	SessionID  string    `db:"session_id"`
	Metadata   *string   `db:"metadata"`
	CreatedAt  time.Time `db:"created_at"`
}
