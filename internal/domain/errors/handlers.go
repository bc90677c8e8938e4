package errors

// ErrorInfo is the error payload clients receive.
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g. "DEAL_NOT_FOUND"
	Message string `json:"message"`           // User-facing error message
	Details any    `json:"details,omitempty"` // Optional validation details
}

// MetaInfo carries per-response metadata.
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

// SuccessResponse wraps successful API responses.
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse wraps failed API responses.
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}
