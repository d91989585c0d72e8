package handlers

// StatusResponse is the body of the health probes and other endpoints that
// only report a state word.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

// ErrorResponse is the error body for the echo-served routes; the versioned
// API returns huma's RFC 9457 problem documents instead.
type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}
