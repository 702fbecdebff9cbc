// AngelaMos | 2026
// engine_test.go

package simulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimulateReactor_Thorium(t *testing.T) {
	result := SimulateReactor(ReactorInput{
		FuelType:     FuelThorium,
		TemperatureC: 600,
		BurnupGWdT:   40,
	})

	assert.InDelta(t, 33.0, result.EfficiencyPct, 0.001)
	assert.InDelta(t, 5.8, result.WasteKgPerTWh, 0.001)
}

func TestSimulateReactor_Uranium(t *testing.T) {
	result := SimulateReactor(ReactorInput{
		FuelType:     FuelUranium,
		TemperatureC: 600,
		BurnupGWdT:   40,
	})

	assert.InDelta(t, 27.5, result.EfficiencyPct, 0.001)
	assert.InDelta(t, 11.0, result.WasteKgPerTWh, 0.001)
}

func TestSimulateReactor_ThoriumBeatsUraniumAcrossRange(t *testing.T) {
	for temp := 300.0; temp <= 1200; temp += 100 {
		th := SimulateReactor(ReactorInput{
			FuelType: FuelThorium, TemperatureC: temp, BurnupGWdT: 40,
		})
		ur := SimulateReactor(ReactorInput{
			FuelType: FuelUranium, TemperatureC: temp, BurnupGWdT: 40,
		})
		assert.Greater(t, th.EfficiencyPct, ur.EfficiencyPct, "temp %v", temp)
	}
}

func TestSimulateReactor_Curve(t *testing.T) {
	result := SimulateReactor(ReactorInput{
		FuelType:     FuelThorium,
		TemperatureC: 600,
		BurnupGWdT:   40,
	})

	// 300..1200 in steps of 100.
	assert.Len(t, result.Curve, 10)
	assert.Equal(t, 300.0, result.Curve[0].TemperatureC)
	assert.Equal(t, 30.0, result.Curve[0].EfficiencyPct)
	assert.Equal(t, 1200.0, result.Curve[9].TemperatureC)
	assert.Equal(t, 39.0, result.Curve[9].EfficiencyPct)

	for i := 1; i < len(result.Curve); i++ {
		assert.Greater(
			t,
			result.Curve[i].EfficiencyPct,
			result.Curve[i-1].EfficiencyPct,
		)
	}
}

func TestSimulatePolicy(t *testing.T) {
	result := SimulatePolicy(PolicyInput{
		AdoptionPct: 10,
		CapacityMW:  300,
		Units:       5,
	})

	// 300 * 5 * 0.85 * 8760 / 1e6 = 11.169 TWh
	assert.InDelta(t, 11.17, result.AnnualGenerationTWh, 0.001)
	assert.InDelta(t, 89.35, result.CO2AvoidedMt, 0.01)
	assert.InDelta(t, 2233800, float64(result.EVsSupported), 1)
}

func TestSimulatePolicy_ZeroAdoption(t *testing.T) {
	result := SimulatePolicy(PolicyInput{
		AdoptionPct: 0,
		CapacityMW:  1000,
		Units:       10,
	})

	assert.Greater(t, result.AnnualGenerationTWh, 0.0)
	assert.Equal(t, 0.0, result.CO2AvoidedMt)
	assert.Equal(t, int64(0), result.EVsSupported)
}
