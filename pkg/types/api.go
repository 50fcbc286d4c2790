package types

// OpRequest asks the daemon to run one ad operation on the consumer tick.
type OpRequest struct {
	// Op is one of: initialize, load, show, hide.
	// example: load
	Op string `json:"op" example:"load"`
	// Kind selects the ad format for load/show/hide.
	// example: rewarded
	Kind AdKind `json:"kind,omitempty" example:"rewarded"`
	// AdID is an opaque placement identifier forwarded to the backend.
	// example: rewarded-main-menu
	AdID string `json:"ad_id,omitempty" example:"rewarded-main-menu"`
}

// Op names accepted by OpRequest.
const (
	OpInitialize = "initialize"
	OpLoad       = "load"
	OpShow       = "show"
	OpHide       = "hide"
)

// OpResponse reports the boolean outcome of an ad operation.
type OpResponse struct {
	// OK is the operation's success flag. Misuse (wrong state,
	// uninitialized manager) yields false, never an error.
	// example: true
	OK bool `json:"ok" example:"true"`
}

// AdStatus summarizes one ad kind for GET /status.
type AdStatus struct {
	// Kind of the ad.
	// example: rewarded
	Kind AdKind `json:"kind" example:"rewarded"`
	// State is the current lifecycle state (not_loaded, loading, ready,
	// showing; hidden/shown for banner).
	// example: loading
	State string `json:"state" example:"loading"`
	// Ready reports whether show would currently succeed.
	// example: false
	Ready bool `json:"ready" example:"false"`
	// LoadRemainingMS is the time left on the load timer, if one is armed.
	// example: 420
	LoadRemainingMS int64 `json:"load_remaining_ms,omitempty" example:"420"`
	// ShowRemainingMS is the time left on the show timer, if one is armed.
	// example: 1200
	ShowRemainingMS int64 `json:"show_remaining_ms,omitempty" example:"1200"`
}

// StatusResponse is returned by GET /status.
type StatusResponse struct {
	// Initialized reports whether the manager completed initialization.
	// example: true
	Initialized bool `json:"initialized" example:"true"`
	// Ads holds per-kind lifecycle status.
	Ads []AdStatus `json:"ads"`
	// PendingEvents is the number of queued, not yet dispatched events.
	// example: 0
	PendingEvents int `json:"pending_events" example:"0"`
	// UptimeSeconds since the daemon started.
	// example: 3600
	UptimeSeconds int64 `json:"uptime_seconds" example:"3600"`
	// ServerTimeUnix is the server time in unix seconds.
	// example: 1700000000
	ServerTimeUnix int64 `json:"server_time_unix" example:"1700000000"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: unknown ad kind
	Error string `json:"error" example:"unknown ad kind"`
	// HTTP status code.
	// example: 400
	Code int `json:"code" example:"400"`
}
