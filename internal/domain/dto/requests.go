package dto

type SetFilterRequest struct {
	Category string `json:"category" validate:"required"`
	Value    any    `json:"value"`
}

type ClearFilterRequest struct {
	Category string `param:"category" validate:"required"`
}

type SearchTermRequest struct {
	Term string `json:"term" validate:"max=200"`
}

// ScrapeRequest is validated by the listing service, which notifies the session on a blank query.
type ScrapeRequest struct {
	Query string `json:"query" validate:"max=200"`
}

type SelectRequest struct {
	IDs []int `json:"ids" validate:"dive,gt=0"`
}

type FacilityIDRequest struct {
	ID int `param:"id" validate:"gt=0"`
}

type PageRequest struct {
	Page int `param:"page" validate:"gte=1"`
}

type EnrichmentSearchRequest struct {
	Query string `json:"query" validate:"max=200"`
}
