// AngelaMos | 2026
// service.go

package feed

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultWeatherCity = "New Delhi"

type Service struct {
	cache *Cache
}

func NewService(client *redis.Client, logger *slog.Logger) *Service {
	return &Service{cache: NewCache(client, logger)}
}

func (s *Service) IndiaEnergy(ctx context.Context) IndiaEnergy {
	return getOrBuild(ctx, s.cache, "india_energy", energyTTL, func() IndiaEnergy {
		return buildIndiaEnergy(time.Now().UTC())
	})
}

func (s *Service) Weather(ctx context.Context, city string) Weather {
	if city == "" {
		city = defaultWeatherCity
	}

	key := "weather:" + strings.ToLower(strings.ReplaceAll(city, " ", "_"))
	return getOrBuild(ctx, s.cache, key, weatherTTL, func() Weather {
		return buildWeather(time.Now().UTC(), city)
	})
}

func (s *Service) Economic(ctx context.Context) Economic {
	return getOrBuild(ctx, s.cache, "economic", economicTTL, func() Economic {
		return buildEconomic(time.Now().UTC())
	})
}

func (s *Service) GlobalTrends(ctx context.Context) GlobalTrends {
	return getOrBuild(ctx, s.cache, "global_trends", globalTTL, func() GlobalTrends {
		return buildGlobalTrends(time.Now().UTC())
	})
}

// Insights derives composite scores from the energy, weather and economic
// feeds. Scores clamp to 0..100.
func (s *Service) Insights(ctx context.Context) Insights {
	energy := s.IndiaEnergy(ctx)
	weather := s.Weather(ctx, defaultWeatherCity)
	economic := s.Economic(ctx)

	return computeInsights(time.Now().UTC(), energy, weather, economic)
}

func computeInsights(
	now time.Time,
	energy IndiaEnergy,
	weather Weather,
	economic Economic,
) Insights {
	insights := Insights{
		Timestamp:       now,
		Recommendations: []string{},
	}

	demandSupplyRatio := energy.Demand.CurrentDemandMW /
		energy.TotalGeneration.TotalMW
	insights.EnergySecurityScore = clamp100((1 - demandSupplyRatio) * 100)

	renewableShare := energy.TotalGeneration.RenewableMW /
		energy.TotalGeneration.TotalMW
	weatherFactor := (weather.RenewablePotential.SolarEfficiency +
		weather.RenewablePotential.WindEfficiency) / 2
	insights.RenewablePotential = clamp100(renewableShare * weatherFactor * 100)

	costFactor := 1 / (economic.EnergyPrices.ElectricityCostINRPerKWh / 10)
	viability := energy.ThoriumPotential.PotentialCapacityMW /
		energy.TotalGeneration.NuclearMW * costFactor * 10
	insights.EconomicViability = clamp100(viability)

	if insights.EnergySecurityScore < 70 {
		insights.Recommendations = append(insights.Recommendations,
			"Consider increasing thorium reactor deployment for energy security")
	}
	if insights.RenewablePotential > 80 {
		insights.Recommendations = append(insights.Recommendations,
			"Excellent conditions for renewable energy expansion")
	}
	if insights.EconomicViability > 75 {
		insights.Recommendations = append(insights.Recommendations,
			"Strong economic case for thorium energy investment")
	}

	return insights
}

func clamp100(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
