// AngelaMos | 2026
// repository.go

package simulation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thoriumlabs/platform-api/internal/core"
)

type Repository interface {
	Create(ctx context.Context, sim *Simulation) error
	ListByUser(ctx context.Context, userID string, limit int) ([]Simulation, error)
	CountByUser(ctx context.Context, userID string) (int, error)
	FavoriteKind(ctx context.Context, userID string) (string, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

// Create appends a run to simulation_history. Rows are never updated or
// deleted.
func (r *repository) Create(ctx context.Context, sim *Simulation) error {
	query := `
		INSERT INTO simulation_history (
			id, user_id, simulation_type, parameters, results
		) VALUES (
			$1, $2, $3, $4, $5
		)
		RETURNING created_at`

	err := r.db.GetContext(ctx, &sim.CreatedAt, query,
		sim.ID,
		sim.UserID,
		sim.SimulationType,
		sim.Parameters,
		sim.Results,
	)
	if err != nil {
		return fmt.Errorf("create simulation: %w", err)
	}

	return nil
}

func (r *repository) ListByUser(
	ctx context.Context,
	userID string,
	limit int,
) ([]Simulation, error) {
	query := `
		SELECT id, user_id, simulation_type, parameters, results, created_at
		FROM simulation_history
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`

	var sims []Simulation
	if err := r.db.SelectContext(ctx, &sims, query, userID, limit); err != nil {
		return nil, fmt.Errorf("list simulations: %w", err)
	}

	return sims, nil
}

func (r *repository) CountByUser(
	ctx context.Context,
	userID string,
) (int, error) {
	query := `SELECT COUNT(*) FROM simulation_history WHERE user_id = $1`

	var count int
	if err := r.db.GetContext(ctx, &count, query, userID); err != nil {
		return 0, fmt.Errorf("count simulations: %w", err)
	}

	return count, nil
}

// FavoriteKind returns the user's most-run simulation type. Ties break
// alphabetically so the result is stable.
func (r *repository) FavoriteKind(
	ctx context.Context,
	userID string,
) (string, error) {
	query := `
		SELECT simulation_type
		FROM simulation_history
		WHERE user_id = $1
		GROUP BY simulation_type
		ORDER BY COUNT(*) DESC, simulation_type ASC
		LIMIT 1`

	var kind string
	err := r.db.GetContext(ctx, &kind, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("favorite kind: %w", core.ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("favorite kind: %w", err)
	}

	return kind, nil
}
