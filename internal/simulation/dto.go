// AngelaMos | 2026
// dto.go

package simulation

import (
	"encoding/json"
	"time"
)

type ReactorRequest struct {
	FuelType     string  `json:"fuel_type"     validate:"required,oneof=thorium uranium"`
	TemperatureC float64 `json:"temperature_c" validate:"required,gte=300,lte=1200"`
	BurnupGWdT   float64 `json:"burnup_gwd_t"  validate:"required,gte=10,lte=120"`
}

type PolicyRequest struct {
	AdoptionPct float64 `json:"adoption_pct" validate:"gte=0,lte=100"`
	CapacityMW  float64 `json:"capacity_mw"  validate:"required,gte=100,lte=5000"`
	Units       int     `json:"units"        validate:"required,gte=1,lte=100"`
}

type RecordRequest struct {
	SimulationType string          `json:"simulation_type" validate:"required,oneof=knowledge reactor policy"`
	Parameters     json.RawMessage `json:"parameters"      validate:"required"`
	Results        json.RawMessage `json:"results"         validate:"required"`
}

type SimulationResponse struct {
	ID             string          `json:"id"`
	SimulationType string          `json:"simulation_type"`
	Parameters     json.RawMessage `json:"parameters"`
	Results        json.RawMessage `json:"results"`
	CreatedAt      time.Time       `json:"created_at"`
}

type ReactorResponse struct {
	Simulation SimulationResponse `json:"simulation"`
	Result     ReactorResult      `json:"result"`
}

type PolicyResponse struct {
	Simulation SimulationResponse `json:"simulation"`
	Result     PolicyResult       `json:"result"`
}

type HistoryResponse struct {
	Simulations []SimulationResponse `json:"simulations"`
}

func ToSimulationResponse(s *Simulation) SimulationResponse {
	return SimulationResponse{
		ID:             s.ID,
		SimulationType: s.SimulationType,
		Parameters:     json.RawMessage(s.Parameters),
		Results:        json.RawMessage(s.Results),
		CreatedAt:      s.CreatedAt,
	}
}

func ToSimulationResponseList(sims []Simulation) []SimulationResponse {
	responses := make([]SimulationResponse, 0, len(sims))
	for _, s := range sims {
		responses = append(responses, ToSimulationResponse(&s))
	}
	return responses
}
