package errors

// ErrorInfo is the machine-readable error payload returned to clients.
type ErrorInfo struct {
	Code    string `json:"code"`              // Stable business code, e.g. "PARKING_LOCATION_NOT_FOUND"
	Message string `json:"message"`           // Human-readable description safe to show users
	Details any    `json:"details,omitempty"` // Optional field-level details (validation errors)
}

// MetaInfo carries per-response metadata.
type MetaInfo struct {
	RequestID string `json:"request_id"` // Correlates the response with server logs
}

// SuccessResponse is the envelope for every successful API response.
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse is the envelope for every failed API response.
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}
