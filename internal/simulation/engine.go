// AngelaMos | 2026
// engine.go

package simulation

import (
	"math"
)

const (
	FuelThorium = "thorium"
	FuelUranium = "uranium"
)

const (
	minTemperatureC = 300
	maxTemperatureC = 1200
	curveStepC      = 100
)

type ReactorInput struct {
	FuelType     string
	TemperatureC float64
	BurnupGWdT   float64
}

type CurvePoint struct {
	TemperatureC  float64 `json:"temperature_c"`
	EfficiencyPct float64 `json:"efficiency_pct"`
}

type ReactorResult struct {
	EfficiencyPct float64      `json:"efficiency_pct"`
	WasteKgPerTWh float64      `json:"waste_kg_per_twh"`
	Curve         []CurvePoint `json:"curve"`
}

// efficiencyAt is the closed-form efficiency estimate for a fuel at a core
// temperature. Thorium starts higher and climbs faster.
func efficiencyAt(fuelType string, temperatureC float64) float64 {
	if fuelType == FuelThorium {
		return 30 + (temperatureC-300)/100
	}
	return 25 + (temperatureC-300)/120
}

func wasteIntensity(fuelType string, burnupGWdT float64) float64 {
	if fuelType == FuelThorium {
		return 5 + burnupGWdT/50
	}
	return 10 + burnupGWdT/40
}

// SimulateReactor evaluates the digital-twin estimate for one operating
// point and builds the efficiency-vs-temperature curve across the full
// operating range.
func SimulateReactor(in ReactorInput) ReactorResult {
	curve := make([]CurvePoint, 0, (maxTemperatureC-minTemperatureC)/curveStepC+1)
	for t := float64(minTemperatureC); t <= maxTemperatureC; t += curveStepC {
		curve = append(curve, CurvePoint{
			TemperatureC:  t,
			EfficiencyPct: round2(efficiencyAt(in.FuelType, t)),
		})
	}

	return ReactorResult{
		EfficiencyPct: round2(efficiencyAt(in.FuelType, in.TemperatureC)),
		WasteKgPerTWh: round2(wasteIntensity(in.FuelType, in.BurnupGWdT)),
		Curve:         curve,
	}
}

type PolicyInput struct {
	AdoptionPct float64
	CapacityMW  float64
	Units       int
}

type PolicyResult struct {
	AnnualGenerationTWh float64 `json:"annual_generation_twh"`
	CO2AvoidedMt        float64 `json:"co2_avoided_mt"`
	EVsSupported        int64   `json:"evs_supported"`
}

// SimulatePolicy projects fleet-level impact assuming an 85% capacity
// factor. The CO2 and EV figures scale with the raw adoption percentage.
func SimulatePolicy(in PolicyInput) PolicyResult {
	annualGen := in.CapacityMW * float64(in.Units) * 0.85 * 8760 / 1e6

	return PolicyResult{
		AnnualGenerationTWh: round2(annualGen),
		CO2AvoidedMt:        round2(annualGen * in.AdoptionPct * 0.8),
		EVsSupported:        int64(annualGen * in.AdoptionPct * 20000),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
