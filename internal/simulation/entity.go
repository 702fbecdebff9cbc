// AngelaMos | 2026
// entity.go

package simulation

import (
	"time"
)

// Simulation is one append-only row in simulation_history. Parameters and
// Results hold the run's inputs and outputs as JSON.
type Simulation struct {
	ID             string    `db:"id"`
	UserID         string    `db:"user_id"`
	SimulationType string    `db:"simulation_type"`
	Parameters     string    `db:"parameters"`
	Results        string    `db:"results"`
	CreatedAt      time.Time `db:"created_at"`
}

const (
	KindKnowledge = "knowledge"
	KindReactor   = "reactor"
	KindPolicy    = "policy"
)

func ValidKind(kind string) bool {
	switch kind {
	case KindKnowledge, KindReactor, KindPolicy:
		return true
	}
	return false
}
