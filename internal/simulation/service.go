// AngelaMos | 2026
// service.go

package simulation

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/thoriumlabs/platform-api/internal/core"
)

const (
	defaultHistoryLimit = 10
	maxHistoryLimit     = 100
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// RunReactor evaluates the reactor digital twin and records the run.
func (s *Service) RunReactor(
	ctx context.Context,
	userID string,
	req ReactorRequest,
) (*ReactorResponse, error) {
	result := SimulateReactor(ReactorInput{
		FuelType:     req.FuelType,
		TemperatureC: req.TemperatureC,
		BurnupGWdT:   req.BurnupGWdT,
	})

	sim, err := s.record(ctx, userID, KindReactor, req, result)
	if err != nil {
		return nil, err
	}

	return &ReactorResponse{
		Simulation: ToSimulationResponse(sim),
		Result:     result,
	}, nil
}

// RunPolicy projects policy impact and records the run.
func (s *Service) RunPolicy(
	ctx context.Context,
	userID string,
	req PolicyRequest,
) (*PolicyResponse, error) {
	result := SimulatePolicy(PolicyInput{
		AdoptionPct: req.AdoptionPct,
		CapacityMW:  req.CapacityMW,
		Units:       req.Units,
	})

	sim, err := s.record(ctx, userID, KindPolicy, req, result)
	if err != nil {
		return nil, err
	}

	return &PolicyResponse{
		Simulation: ToSimulationResponse(sim),
		Result:     result,
	}, nil
}

// Record stores an externally computed run, such as a knowledge assistant
// exchange the client wants in its history.
func (s *Service) Record(
	ctx context.Context,
	userID string,
	req RecordRequest,
) (*SimulationResponse, error) {
	if !ValidKind(req.SimulationType) {
		return nil, fmt.Errorf(
			"record simulation: invalid type %q: %w",
			req.SimulationType,
			core.ErrInvalidInput,
		)
	}

	sim := &Simulation{
		ID:             uuid.New().String(),
		UserID:         userID,
		SimulationType: req.SimulationType,
		Parameters:     string(req.Parameters),
		Results:        string(req.Results),
	}

	if err := s.repo.Create(ctx, sim); err != nil {
		return nil, err
	}

	resp := ToSimulationResponse(sim)
	return &resp, nil
}

func (s *Service) record(
	ctx context.Context,
	userID, kind string,
	parameters, results any,
) (*Simulation, error) {
	paramsJSON, err := json.Marshal(parameters)
	if err != nil {
		return nil, fmt.Errorf("marshal parameters: %w", err)
	}

	resultsJSON, err := json.Marshal(results)
	if err != nil {
		return nil, fmt.Errorf("marshal results: %w", err)
	}

	sim := &Simulation{
		ID:             uuid.New().String(),
		UserID:         userID,
		SimulationType: kind,
		Parameters:     string(paramsJSON),
		Results:        string(resultsJSON),
	}

	if err := s.repo.Create(ctx, sim); err != nil {
		return nil, err
	}

	return sim, nil
}

// History returns the user's most recent runs, newest first.
func (s *Service) History(
	ctx context.Context,
	userID string,
	limit int,
) ([]Simulation, error) {
	if limit < 1 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	return s.repo.ListByUser(ctx, userID, limit)
}

func (s *Service) CountForUser(
	ctx context.Context,
	userID string,
) (int, error) {
	return s.repo.CountByUser(ctx, userID)
}

func (s *Service) FavoriteKind(
	ctx context.Context,
	userID string,
) (string, error) {
	return s.repo.FavoriteKind(ctx, userID)
}
