// AngelaMos | 2026
// service_test.go

package feed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeInsights_BaselineSnapshot(t *testing.T) {
	now := time.Now().UTC()
	insights := computeInsights(
		now,
		buildIndiaEnergy(now),
		buildWeather(now, "New Delhi"),
		buildEconomic(now),
	)

	// current 195000 of 351780 MW leaves ~44.6% headroom.
	assert.InDelta(t, 44.57, insights.EnergySecurityScore, 0.01)

	// renewable share ~34.1% scaled by the 0.80 weather factor.
	assert.InDelta(t, 27.29, insights.RenewablePotential, 0.01)

	// thorium potential dwarfs current nuclear; clamps at 100.
	assert.Equal(t, 100.0, insights.EconomicViability)

	assert.Contains(t, insights.Recommendations,
		"Consider increasing thorium reactor deployment for energy security")
	assert.Contains(t, insights.Recommendations,
		"Strong economic case for thorium energy investment")
	assert.NotContains(t, insights.Recommendations,
		"Excellent conditions for renewable energy expansion")
}

func TestComputeInsights_ScoresStayInRange(t *testing.T) {
	now := time.Now().UTC()

	energy := buildIndiaEnergy(now)
	energy.Demand.CurrentDemandMW = energy.TotalGeneration.TotalMW * 2

	insights := computeInsights(
		now,
		energy,
		buildWeather(now, "New Delhi"),
		buildEconomic(now),
	)

	assert.GreaterOrEqual(t, insights.EnergySecurityScore, 0.0)
	assert.LessOrEqual(t, insights.EnergySecurityScore, 100.0)
	assert.LessOrEqual(t, insights.RenewablePotential, 100.0)
	assert.LessOrEqual(t, insights.EconomicViability, 100.0)
}

func TestComputeInsights_RecommendationsNeverNil(t *testing.T) {
	now := time.Now().UTC()

	energy := buildIndiaEnergy(now)
	// Plenty of headroom: no security recommendation.
	energy.Demand.CurrentDemandMW = 1000
	// Kill the economic case.
	energy.ThoriumPotential.PotentialCapacityMW = 1
	weather := buildWeather(now, "New Delhi")
	weather.RenewablePotential.SolarEfficiency = 0.1
	weather.RenewablePotential.WindEfficiency = 0.1

	insights := computeInsights(now, energy, weather, buildEconomic(now))

	assert.NotNil(t, insights.Recommendations)
	assert.Empty(t, insights.Recommendations)
}

func TestBuildPayloads_InternallyConsistent(t *testing.T) {
	now := time.Now().UTC()

	energy := buildIndiaEnergy(now)
	sum := energy.TotalGeneration.ThermalMW +
		energy.TotalGeneration.HydroMW +
		energy.TotalGeneration.NuclearMW +
		energy.TotalGeneration.RenewableMW
	assert.Equal(t, energy.TotalGeneration.TotalMW, sum)

	weather := buildWeather(now, "Mumbai")
	assert.Equal(t, "Mumbai", weather.City)
	assert.Equal(t, now, weather.Timestamp)

	trends := buildGlobalTrends(now)
	assert.Contains(t, trends.CountryComparisons, "india")
	assert.Equal(t, 1, trends.CountryComparisons["india"].ThoriumReservesRank)
}
