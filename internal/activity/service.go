// AngelaMos | 2026
// service.go

package activity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/thoriumlabs/platform-api/internal/auth"
	"github.com/thoriumlabs/platform-api/internal/core"
)

const (
	defaultExportLimit = 10
	maxExportLimit     = 100

	// noFavorite is what the stats endpoint reports for a user who has
	// never run a simulation.
	noFavorite = "None"
)

// SimulationStats is implemented by the simulation service; stats pulls
// the run count and the most-used tool through it.
type SimulationStats interface {
	CountForUser(ctx context.Context, userID string) (int, error)
	FavoriteKind(ctx context.Context, userID string) (string, error)
}

type Service struct {
	repo        Repository
	simulations SimulationStats
	users       auth.UserProvider
	logger      *slog.Logger
}

func NewService(
	repo Repository,
	simulations SimulationStats,
	users auth.UserProvider,
	logger *slog.Logger,
) *Service {
	return &Service{
		repo:        repo,
		simulations: simulations,
		users:       users,
		logger:      logger,
	}
}

func (s *Service) SavePreference(
	ctx context.Context,
	userID, key, value string,
) error {
	if key == "" {
		return fmt.Errorf("save preference: empty key: %w", core.ErrInvalidInput)
	}

	return s.repo.UpsertPreference(ctx, userID, key, value)
}

func (s *Service) GetPreferences(
	ctx context.Context,
	userID string,
) (map[string]string, error) {
	return s.repo.GetPreferences(ctx, userID)
}

func (s *Service) LogExport(
	ctx context.Context,
	userID string,
	req LogExportRequest,
) (*Export, error) {
	export := &Export{
		ID:         uuid.New().String(),
		UserID:     userID,
		ExportType: req.ExportType,
		FileName:   req.FileName,
		FilePath:   req.FilePath,
		ExportData: string(req.ExportData),
	}
	if export.ExportData == "" {
		export.ExportData = "{}"
	}

	if err := s.repo.LogExport(ctx, export); err != nil {
		return nil, err
	}

	return export, nil
}

func (s *Service) GetExportHistory(
	ctx context.Context,
	userID string,
	limit int,
) ([]Export, error) {
	if limit < 1 {
		limit = defaultExportLimit
	}
	if limit > maxExportLimit {
		limit = maxExportLimit
	}

	return s.repo.ListExports(ctx, userID, limit)
}

// RecordEvent is best-effort: analytics must never fail a user request,
// so storage errors are logged and swallowed.
func (s *Service) RecordEvent(
	ctx context.Context,
	userID *string,
	req RecordEventRequest,
) {
	var metadata *string
	if len(req.Metadata) > 0 {
		m := string(req.Metadata)
		metadata = &m
	}

	event := &Event{
		ID:         uuid.New().String(),
		UserID:     userID,
		ActionType: req.ActionType,
		PageName:   req.PageName,
		SessionID:  req.SessionID,
		Metadata:   metadata,
	}

	if err := s.repo.RecordEvent(ctx, event); err != nil {
		s.logger.Warn("failed to record analytics event",
			"action_type", req.ActionType,
			"page_name", req.PageName,
			"error", err,
		)
	}
}

// UserStats aggregates the dashboard usage summary for a user.
func (s *Service) UserStats(
	ctx context.Context,
	userID string,
) (*UserStats, error) {
	simCount, err := s.simulations.CountForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user stats: %w", err)
	}

	exportCount, err := s.repo.CountExports(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user stats: %w", err)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user stats: %w", err)
	}

	favorite, err := s.simulations.FavoriteKind(ctx, userID)
	if errors.Is(err, core.ErrNotFound) {
		favorite = noFavorite
	} else if err != nil {
		return nil, fmt.Errorf("user stats: %w", err)
	}

	return &UserStats{
		SimulationCount:    simCount,
		ExportCount:        exportCount,
		LastLogin:          user.LastLogin,
		FavoriteSimulation: favorite,
	}, nil
}
