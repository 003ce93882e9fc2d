package types

// StatusResponse is a small confirmation object returned by item actions.
type StatusResponse struct {
	Status string `json:"status"`
}

// ErrorResponse mirrors the JSON shape emitted by the error handler
// middleware. Used in tests and documentation.
type ErrorResponse struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
	Code    string `json:"code,omitempty"`
}
