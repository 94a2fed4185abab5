package domain

import (
	"fmt"
	"net/url"
	"strconv"
)

const (
	RouteAIAnalysis           = "/facility-ai-analysis"
	RouteEnergyUsageEstimator = "/energy-usage-estimation"
)

type FacilityRoutes struct {
	Enrichment     string `json:"enrichment"`
	AIAnalysis     string `json:"aiAnalysis"`
	EnergyEstimate string `json:"energyEstimate"`
}

func EnrichmentRoute(facilityID int) string {
	return fmt.Sprintf("/facility-enrichment/%d", facilityID)
}

func EnergyEstimateRoute(facilityID int) string {
	q := url.Values{"facilityId": []string{strconv.Itoa(facilityID)}}
	return RouteEnergyUsageEstimator + "?" + q.Encode()
}

func RoutesFor(facilityID int) FacilityRoutes {
	return FacilityRoutes{
		Enrichment:     EnrichmentRoute(facilityID),
		AIAnalysis:     RouteAIAnalysis,
		EnergyEstimate: EnergyEstimateRoute(facilityID),
	}
}
