package constants

const (
	HeaderSessionID = "X-Session-ID"
	HeaderRequestID = "X-Request-ID"

	// FilterStorageKey is the key of the persisted filter selection inside a session namespace.
	FilterStorageKey = "facilityFilters"

	LoadingAsset = "/assets/solar-loading.gif"
)

type ctxKey int

const (
	CtxKeyRequestID ctxKey = iota
	CtxKeySessionID
)
