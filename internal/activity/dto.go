// AngelaMos | 2026
// dto.go

package activity

import (
	"encoding/json"
	"time"
)

type SavePreferenceRequest struct {
	Value string `json:"value" validate:"required,max=4096"`
}

type PreferencesResponse struct {
	Preferences map[string]string `json:"preferences"`
}

type LogExportRequest struct {
	ExportType string          `json:"export_type" validate:"required,oneof=csv json pdf png"`
	FileName   string          `json:"file_name"   validate:"required,max=255"`
	FilePath   string          `json:"file_path"   validate:"omitempty,max=1024"`
	ExportData json.RawMessage `json:"export_data" validate:"omitempty"`
}

type ExportResponse struct {
	ID         string    `json:"id"`
	ExportType string    `json:"export_type"`
	FileName   string    `json:"file_name"`
	CreatedAt  time.Time `json:"created_at"`
}

type ExportHistoryResponse struct {
	Exports []ExportResponse `json:"exports"`
}

type RecordEventRequest struct {
	ActionType string          `json:"action_type" validate:"required,max=100"`
	PageName   string          `json:"page_name"   validate:"required,max=100"`
	SessionID  string          `json:"session_id"  validate:"omitempty,max=128"`
	Metadata   json.RawMessage `json:"metadata"    validate:"omitempty"`
}

// UserStats is the dashboard's usage summary. FavoriteSimulation is the
// literal string "None" when the user has never run one.
type UserStats struct {
	SimulationCount    int        `json:"simulation_count"`
	ExportCount        int        `json:"export_count"`
	LastLogin          *time.Time `json:"last_login"`
	FavoriteSimulation string     `json:"favorite_simulation"`
}

func ToExportResponse(e *Export) ExportResponse {
	return ExportResponse{
		ID:         e.ID,
		ExportType: e.ExportType,
		FileName:   e.FileName,
		CreatedAt:  e.CreatedAt,
	}
}

func ToExportResponseList(exports []Export) []ExportResponse {
	responses := make([]ExportResponse, 0, len(exports))
	for _, e := range exports {
		responses = append(responses, ToExportResponse(&e))
	}
	return responses
}
