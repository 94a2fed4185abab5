package catalog

import (
	"slices"

	"github.com/ougirez/solarscope/internal/domain"
	"github.com/shopspring/decimal"
)

func usd(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

var enriched = []domain.EnrichedFacilityRecord{
	{
		FacilityRecord: domain.FacilityRecord{
			ID: 101, Name: "Sarah Mitchell", JobTitle: "Facilities Director", Company: "Stellantis",
			Location: "Auburn Hills, Michigan", Emails: true, PhoneNumbers: true, Enriched: true, Verified: true,
			Email: "s.mitchell@stellantis.com", Phone: "(248) 555-0142", FacilityType: "Manufacturing", EmployeeCount: "36K",
		},
		FacilitySize: 520000, YearBuilt: 1996, RoofArea: 310000, AnnualEnergyUsage: 14560000,
		EnergyRate: usd("0.118"), PeakDemand: 3900,
		IndustryAvg: domain.IndustryAverage{EnergyUsage: 24.5, SolarAdoption: 18, CostPerWatt: usd("2.15"), PaybackPeriod: 7.2},
		SolarPotential: domain.SolarPotential{
			MaxCapacity: 4650, AnnualProduction: 5812500, EnergyCoverage: 39.9,
			InstallationCost: usd("9997500"), NetInstallationCost: usd("6998250"), Incentives: usd("2999250"),
			CostWithoutSolar: usd("1718080"), CostWithSolar: usd("1032205"), AnnualSavings: usd("685875"), MonthlySavings: usd("57156"),
			PaybackPeriod: 10.2, ROI: 9.8, CarbonOffset: 4120,
		},
	},
	{
		FacilityRecord: domain.FacilityRecord{
			ID: 102, Name: "Priya Raman", JobTitle: "Sustainability Lead", Company: "Amazon",
			Location: "Romulus, Michigan", Emails: true, PhoneNumbers: true, Enriched: true, Verified: true,
			Email: "praman@amazon.com", Phone: "(734) 555-0163", FacilityType: "Distribution Center", EmployeeCount: "1.5M",
		},
		FacilitySize: 855000, YearBuilt: 2019, RoofArea: 640000, AnnualEnergyUsage: 9405000,
		EnergyRate: usd("0.112"), PeakDemand: 2600,
		IndustryAvg: domain.IndustryAverage{EnergyUsage: 9.8, SolarAdoption: 27, CostPerWatt: usd("1.95"), PaybackPeriod: 6.4},
		SolarPotential: domain.SolarPotential{
			MaxCapacity: 9600, AnnualProduction: 12000000, EnergyCoverage: 100,
			InstallationCost: usd("18720000"), NetInstallationCost: usd("13104000"), Incentives: usd("5616000"),
			CostWithoutSolar: usd("1053360"), CostWithSolar: usd("0"), AnnualSavings: usd("1053360"), MonthlySavings: usd("87780"),
			PaybackPeriod: 12.4, ROI: 8.0, CarbonOffset: 6650,
		},
	},
	{
		FacilityRecord: domain.FacilityRecord{
			ID: 103, Name: "Angela Brooks", JobTitle: "Chief Operating Officer", Company: "Henry Ford Health",
			Location: "Detroit, Michigan", Emails: true, PhoneNumbers: true, Enriched: true, Verified: true,
			Email: "abrooks@hfhs.org", Phone: "(313) 555-0108", FacilityType: "Healthcare", EmployeeCount: "33K",
		},
		FacilitySize: 410000, YearBuilt: 1988, RoofArea: 120000, AnnualEnergyUsage: 12710000,
		EnergyRate: usd("0.131"), PeakDemand: 3100,
		IndustryAvg: domain.IndustryAverage{EnergyUsage: 27.5, SolarAdoption: 11, CostPerWatt: usd("2.40"), PaybackPeriod: 8.1},
		SolarPotential: domain.SolarPotential{
			MaxCapacity: 1800, AnnualProduction: 2250000, EnergyCoverage: 17.7,
			InstallationCost: usd("4320000"), NetInstallationCost: usd("3024000"), Incentives: usd("1296000"),
			CostWithoutSolar: usd("1665010"), CostWithSolar: usd("1370260"), AnnualSavings: usd("294750"), MonthlySavings: usd("24563"),
			PaybackPeriod: 10.3, ROI: 9.7, CarbonOffset: 1595,
		},
	},
	{
		FacilityRecord: domain.FacilityRecord{
			ID: 104, Name: "Linda Park", JobTitle: "Energy Procurement Manager", Company: "Steelcase",
			Location: "Grand Rapids, Michigan", Emails: true, PhoneNumbers: true, Enriched: true, Verified: true,
			Email: "lpark@steelcase.com", Phone: "(616) 555-0131", FacilityType: "Office Building", EmployeeCount: "11K",
		},
		FacilitySize: 185000, YearBuilt: 2003, RoofArea: 72000, AnnualEnergyUsage: 2960000,
		EnergyRate: usd("0.124"), PeakDemand: 820,
		IndustryAvg: domain.IndustryAverage{EnergyUsage: 15.2, SolarAdoption: 14, CostPerWatt: usd("2.30"), PaybackPeriod: 7.8},
		SolarPotential: domain.SolarPotential{
			MaxCapacity: 1080, AnnualProduction: 1350000, EnergyCoverage: 45.6,
			InstallationCost: usd("2484000"), NetInstallationCost: usd("1738800"), Incentives: usd("745200"),
			CostWithoutSolar: usd("367040"), CostWithSolar: usd("199640"), AnnualSavings: usd("167400"), MonthlySavings: usd("13950"),
			PaybackPeriod: 10.4, ROI: 9.6, CarbonOffset: 957,
		},
	},
	{
		FacilityRecord: domain.FacilityRecord{
			ID: 105, Name: "Kevin O'Brien", JobTitle: "Operations Manager", Company: "Lineage Logistics",
			Location: "Columbus, Ohio", Emails: true, PhoneNumbers: false, Enriched: true, Verified: true,
			Email: "kobrien@lineagelogistics.com", Phone: "", FacilityType: "Cold Storage", EmployeeCount: "26K",
		},
		FacilitySize: 260000, YearBuilt: 2011, RoofArea: 215000, AnnualEnergyUsage: 11700000,
		EnergyRate: usd("0.105"), PeakDemand: 2200,
		IndustryAvg: domain.IndustryAverage{EnergyUsage: 41.0, SolarAdoption: 21, CostPerWatt: usd("2.05"), PaybackPeriod: 6.9},
		SolarPotential: domain.SolarPotential{
			MaxCapacity: 3200, AnnualProduction: 3900000, EnergyCoverage: 33.3,
			InstallationCost: usd("6560000"), NetInstallationCost: usd("4592000"), Incentives: usd("1968000"),
			CostWithoutSolar: usd("1228500"), CostWithSolar: usd("819000"), AnnualSavings: usd("409500"), MonthlySavings: usd("34125"),
			PaybackPeriod: 11.2, ROI: 8.9, CarbonOffset: 2764,
		},
	},
	{
		FacilityRecord: domain.FacilityRecord{
			ID: 106, Name: "Brian Walsh", JobTitle: "Data Center Operations Lead", Company: "Switch",
			Location: "Grand Rapids, Michigan", Emails: true, PhoneNumbers: true, Enriched: true, Verified: true,
			Email: "bwalsh@switch.com", Phone: "(616) 555-0102", FacilityType: "Data Center", EmployeeCount: "1K",
		},
		FacilitySize: 470000, YearBuilt: 2000, RoofArea: 180000, AnnualEnergyUsage: 98700000,
		EnergyRate: usd("0.097"), PeakDemand: 14000,
		IndustryAvg: domain.IndustryAverage{EnergyUsage: 180.0, SolarAdoption: 33, CostPerWatt: usd("2.10"), PaybackPeriod: 6.1},
		SolarPotential: domain.SolarPotential{
			MaxCapacity: 2700, AnnualProduction: 3375000, EnergyCoverage: 3.4,
			InstallationCost: usd("5670000"), NetInstallationCost: usd("3969000"), Incentives: usd("1701000"),
			CostWithoutSolar: usd("9573900"), CostWithSolar: usd("9246525"), AnnualSavings: usd("327375"), MonthlySavings: usd("27281"),
			PaybackPeriod: 12.1, ROI: 8.2, CarbonOffset: 2392,
		},
	},
}

// hidden only enters the enrichment screen through a matching search.
var hidden = domain.EnrichedFacilityRecord{
	FacilityRecord: domain.FacilityRecord{
		ID: 199, Name: "James Schifko", JobTitle: "Chief Operating Officer", Company: "LuxWall",
		Location: "Ypsilanti, Michigan", Emails: true, PhoneNumbers: true, Enriched: true, Verified: true,
		Email: "jschifko@luxwall.com", Phone: "(734) 555-0177", FacilityType: "Manufacturing", EmployeeCount: "250",
	},
	FacilitySize: 250000, YearBuilt: 2022, RoofArea: 175000, AnnualEnergyUsage: 6250000,
	EnergyRate: usd("0.121"), PeakDemand: 1650,
	IndustryAvg: domain.IndustryAverage{EnergyUsage: 24.5, SolarAdoption: 18, CostPerWatt: usd("2.15"), PaybackPeriod: 7.2},
	SolarPotential: domain.SolarPotential{
		MaxCapacity: 2600, AnnualProduction: 3250000, EnergyCoverage: 52.0,
		InstallationCost: usd("5590000"), NetInstallationCost: usd("3913000"), Incentives: usd("1677000"),
		CostWithoutSolar: usd("756250"), CostWithSolar: usd("363000"), AnnualSavings: usd("393250"), MonthlySavings: usd("32771"),
		PaybackPeriod: 9.9, ROI: 10.1, CarbonOffset: 2304,
	},
}

// HiddenTriggers are the lower-case query fragments that surface the hidden record.
var HiddenTriggers = []string{"james", "schifko", "luxwall", "ypsilanti"}

// EnrichedFacilities returns a fresh copy of the enrichment catalog, without the hidden record.
func EnrichedFacilities() []domain.EnrichedFacilityRecord {
	return slices.Clone(enriched)
}

func HiddenFacility() domain.EnrichedFacilityRecord {
	return hidden
}
