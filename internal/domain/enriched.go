package domain

import (
	"github.com/shopspring/decimal"
)

type IndustryAverage struct {
	EnergyUsage   float64         `json:"energyUsage"` // kWh per sq ft
	SolarAdoption float64         `json:"solarAdoption"`
	CostPerWatt   decimal.Decimal `json:"costPerWatt"`
	PaybackPeriod float64         `json:"paybackPeriod"`
}

type SolarPotential struct {
	MaxCapacity         int             `json:"maxCapacity"`      // kW
	AnnualProduction    int             `json:"annualProduction"` // kWh
	EnergyCoverage      float64         `json:"energyCoverage"`
	InstallationCost    decimal.Decimal `json:"installationCost"`
	NetInstallationCost decimal.Decimal `json:"netInstallationCost"`
	Incentives          decimal.Decimal `json:"incentives"`
	CostWithoutSolar    decimal.Decimal `json:"costWithoutSolar"`
	CostWithSolar       decimal.Decimal `json:"costWithSolar"`
	AnnualSavings       decimal.Decimal `json:"annualSavings"`
	MonthlySavings      decimal.Decimal `json:"monthlySavings"`
	PaybackPeriod       float64         `json:"paybackPeriod"`
	ROI                 float64         `json:"roi"`
	CarbonOffset        float64         `json:"carbonOffset"` // metric tons per year
}

// EnrichedFacilityRecord extends a facility contact with pre-computed solar economics.
type EnrichedFacilityRecord struct {
	FacilityRecord
	FacilitySize      int             `json:"facilitySize"` // sq ft
	YearBuilt         int             `json:"yearBuilt"`
	RoofArea          int             `json:"roofArea"`          // sq ft
	AnnualEnergyUsage int             `json:"annualEnergyUsage"` // kWh
	EnergyRate        decimal.Decimal `json:"energyRate"`        // $ per kWh
	PeakDemand        int             `json:"peakDemand"`        // kW
	IndustryAvg       IndustryAverage `json:"industryAvg"`
	SolarPotential    SolarPotential  `json:"solarPotential"`
}

// DerivedMetrics are display-time ratios computed from the stored figures.
type DerivedMetrics struct {
	EnergyPerSqFt         decimal.Decimal `json:"energyPerSqFt"`
	UsageVsIndustry       decimal.Decimal `json:"usageVsIndustry"` // percent above (+) or below (-) the industry average
	RoofAreaPerKW         decimal.Decimal `json:"roofAreaPerKw"`
	SavingsShare          decimal.Decimal `json:"savingsShare"` // percent of the bill without solar
	FormattedAnnualUsage  string          `json:"formattedAnnualUsage"`
	FormattedInstallation string          `json:"formattedInstallation"`
	FormattedSavings      string          `json:"formattedSavings"`
}

// Derive computes the display ratios. Zero denominators yield zero.
func (r *EnrichedFacilityRecord) Derive() DerivedMetrics {
	var m DerivedMetrics

	if r.FacilitySize > 0 {
		m.EnergyPerSqFt = decimal.NewFromInt(int64(r.AnnualEnergyUsage)).
			Div(decimal.NewFromInt(int64(r.FacilitySize))).Round(2)

		if r.IndustryAvg.EnergyUsage > 0 {
			avg := decimal.NewFromFloat(r.IndustryAvg.EnergyUsage)
			m.UsageVsIndustry = m.EnergyPerSqFt.Sub(avg).Div(avg).Mul(decimal.NewFromInt(100)).Round(1)
		}
	}

	if r.SolarPotential.MaxCapacity > 0 {
		m.RoofAreaPerKW = decimal.NewFromInt(int64(r.RoofArea)).
			Div(decimal.NewFromInt(int64(r.SolarPotential.MaxCapacity))).Round(1)
	}

	if r.SolarPotential.CostWithoutSolar.IsPositive() {
		m.SavingsShare = r.SolarPotential.AnnualSavings.
			Div(r.SolarPotential.CostWithoutSolar).Mul(decimal.NewFromInt(100)).Round(1)
	}

	m.FormattedAnnualUsage = FormatInt(int64(r.AnnualEnergyUsage)) + " kWh"
	m.FormattedInstallation = FormatCurrency(r.SolarPotential.InstallationCost)
	m.FormattedSavings = FormatCurrency(r.SolarPotential.AnnualSavings)

	return m
}
