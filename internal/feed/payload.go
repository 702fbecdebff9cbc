// AngelaMos | 2026
// payload.go

package feed

import (
	"time"
)

// The feed payloads are representative snapshots of India's energy
// landscape. Production would swap the builders for real upstream API
// calls; the shapes stay the same.

type GenerationMix struct {
	ThermalMW   float64 `json:"thermal"`
	HydroMW     float64 `json:"hydro"`
	NuclearMW   float64 `json:"nuclear"`
	RenewableMW float64 `json:"renewable"`
	TotalMW     float64 `json:"total"`
}

type Demand struct {
	PeakDemandMW      float64 `json:"peak_demand"`
	CurrentDemandMW   float64 `json:"current_demand"`
	DemandSupplyGapMW float64 `json:"demand_supply_gap"`
}

type ThoriumPotential struct {
	ReservesTonnes      float64 `json:"reserves"`
	CurrentUtilization  float64 `json:"current_utilization"`
	PotentialCapacityMW float64 `json:"potential_capacity"`
}

type Emissions struct {
	CO2EmissionsMt       float64 `json:"co2_emissions"`
	ReductionPotentialMt float64 `json:"reduction_potential"`
}

type IndiaEnergy struct {
	Timestamp        time.Time        `json:"timestamp"`
	TotalGeneration  GenerationMix    `json:"total_generation"`
	Demand           Demand           `json:"demand"`
	ThoriumPotential ThoriumPotential `json:"thorium_potential"`
	Emissions        Emissions        `json:"emissions"`
}

type RenewablePotential struct {
	SolarEfficiency   float64 `json:"solar_efficiency"`
	WindEfficiency    float64 `json:"wind_efficiency"`
	OptimalConditions bool    `json:"optimal_conditions"`
}

type Weather struct {
	Timestamp          time.Time          `json:"timestamp"`
	City               string             `json:"city"`
	TemperatureC       float64            `json:"temperature"`
	HumidityPct        float64            `json:"humidity"`
	WindSpeedKmh       float64            `json:"wind_speed"`
	SolarIrradianceWm2 float64            `json:"solar_irradiance"`
	CloudCoverPct      float64            `json:"cloud_cover"`
	RenewablePotential RenewablePotential `json:"renewable_potential"`
}

type Currency struct {
	USDToINR float64 `json:"usd_to_inr"`
	EURToINR float64 `json:"eur_to_inr"`
}

type EnergyPrices struct {
	CrudeOilUSDPerBarrel     float64 `json:"crude_oil_usd_per_barrel"`
	NaturalGasUSDPerMBtu     float64 `json:"natural_gas_usd_per_mbtu"`
	CoalUSDPerTon            float64 `json:"coal_usd_per_ton"`
	ElectricityCostINRPerKWh float64 `json:"electricity_cost_inr_per_kwh"`
}

type EconomicIndicators struct {
	GDPGrowthRatePct            float64 `json:"gdp_growth_rate"`
	InflationRatePct            float64 `json:"inflation_rate"`
	UnemploymentRatePct         float64 `json:"unemployment_rate"`
	EnergySectorContributionPct float64 `json:"energy_sector_contribution"`
}

type InvestmentOpportunities struct {
	RenewableEnergyInvestmentBnUSD float64 `json:"renewable_energy_investment"`
	NuclearEnergyInvestmentBnUSD   float64 `json:"nuclear_energy_investment"`
	ThoriumResearchFundingBnUSD    float64 `json:"thorium_research_funding"`
}

type Economic struct {
	Timestamp               time.Time               `json:"timestamp"`
	Currency                Currency                `json:"currency"`
	EnergyPrices            EnergyPrices            `json:"energy_prices"`
	EconomicIndicators      EconomicIndicators      `json:"economic_indicators"`
	InvestmentOpportunities InvestmentOpportunities `json:"investment_opportunities"`
}

type GlobalGeneration struct {
	FossilFuelsPct  float64 `json:"fossil_fuels"`
	RenewablesPct   float64 `json:"renewables"`
	NuclearPct      float64 `json:"nuclear"`
	TotalCapacityGW float64 `json:"total_capacity"`
}

type CountryProfile struct {
	TotalCapacityGW     float64 `json:"total_capacity"`
	RenewableSharePct   float64 `json:"renewable_share"`
	NuclearSharePct     float64 `json:"nuclear_share"`
	ThoriumReservesRank int     `json:"thorium_reserves_rank"`
}

type TechnologyTrends struct {
	ThoriumResearchInvestmentBnUSD float64 `json:"thorium_research_investment"`
	AdvancedReactorProjects        int     `json:"advanced_reactor_projects"`
	FusionEnergyProgress           float64 `json:"fusion_energy_progress"`
	EnergyStorageAdvancement       float64 `json:"energy_storage_advancement"`
}

type GlobalTrends struct {
	Timestamp          time.Time                 `json:"timestamp"`
	GlobalGeneration   GlobalGeneration          `json:"global_generation"`
	CountryComparisons map[string]CountryProfile `json:"country_comparisons"`
	TechnologyTrends   TechnologyTrends          `json:"technology_trends"`
}

// Insights is the cross-feed derived view: composite scores in 0..100 and
// threshold-driven recommendations.
type Insights struct {
	Timestamp           time.Time `json:"timestamp"`
	EnergySecurityScore float64   `json:"energy_security_score"`
	RenewablePotential  float64   `json:"renewable_potential"`
	EconomicViability   float64   `json:"economic_viability"`
	Recommendations     []string  `json:"recommendations"`
}

func buildIndiaEnergy(now time.Time) IndiaEnergy {
	return IndiaEnergy{
		Timestamp: now,
		TotalGeneration: GenerationMix{
			ThermalMW:   180000,
			HydroMW:     45000,
			NuclearMW:   6780,
			RenewableMW: 120000,
			TotalMW:     351780,
		},
		Demand: Demand{
			PeakDemandMW:      220000,
			CurrentDemandMW:   195000,
			DemandSupplyGapMW: 156780,
		},
		ThoriumPotential: ThoriumPotential{
			ReservesTonnes:      360000,
			CurrentUtilization:  0,
			PotentialCapacityMW: 500000,
		},
		Emissions: Emissions{
			CO2EmissionsMt:       2500,
			ReductionPotentialMt: 1800,
		},
	}
}

func buildWeather(now time.Time, city string) Weather {
	return Weather{
		Timestamp:          now,
		City:               city,
		TemperatureC:       28.5,
		HumidityPct:        65,
		WindSpeedKmh:       12.3,
		SolarIrradianceWm2: 850,
		CloudCoverPct:      30,
		RenewablePotential: RenewablePotential{
			SolarEfficiency:   0.85,
			WindEfficiency:    0.75,
			OptimalConditions: true,
		},
	}
}

func buildEconomic(now time.Time) Economic {
	return Economic{
		Timestamp: now,
		Currency: Currency{
			USDToINR: 83.25,
			EURToINR: 90.15,
		},
		EnergyPrices: EnergyPrices{
			CrudeOilUSDPerBarrel:     78.50,
			NaturalGasUSDPerMBtu:     3.25,
			CoalUSDPerTon:            120.00,
			ElectricityCostINRPerKWh: 6.50,
		},
		EconomicIndicators: EconomicIndicators{
			GDPGrowthRatePct:            6.8,
			InflationRatePct:            4.5,
			UnemploymentRatePct:         7.2,
			EnergySectorContributionPct: 8.5,
		},
		InvestmentOpportunities: InvestmentOpportunities{
			RenewableEnergyInvestmentBnUSD: 150,
			NuclearEnergyInvestmentBnUSD:   25,
			ThoriumResearchFundingBnUSD:    2.5,
		},
	}
}

func buildGlobalTrends(now time.Time) GlobalTrends {
	return GlobalTrends{
		Timestamp: now,
		GlobalGeneration: GlobalGeneration{
			FossilFuelsPct:  63.5,
			RenewablesPct:   28.2,
			NuclearPct:      8.3,
			TotalCapacityGW: 7500,
		},
		CountryComparisons: map[string]CountryProfile{
			"india": {
				TotalCapacityGW:     351.78,
				RenewableSharePct:   34.1,
				NuclearSharePct:     1.9,
				ThoriumReservesRank: 1,
			},
			"china": {
				TotalCapacityGW:     2200,
				RenewableSharePct:   45.2,
				NuclearSharePct:     4.9,
				ThoriumReservesRank: 2,
			},
			"usa": {
				TotalCapacityGW:     1200,
				RenewableSharePct:   22.1,
				NuclearSharePct:     19.7,
				ThoriumReservesRank: 3,
			},
		},
		TechnologyTrends: TechnologyTrends{
			ThoriumResearchInvestmentBnUSD: 5.2,
			AdvancedReactorProjects:        47,
			FusionEnergyProgress:           0.75,
			EnergyStorageAdvancement:       0.65,
		},
	}
}
