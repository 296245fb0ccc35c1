package models

// APIError represents a standardized error response format for the API.
// @Description APIError represents a standardized error response format, including an application-specific error code, a human-readable message, and optional details.
type APIError struct {
	Code    string      `json:"code"`              // Application-specific error code (e.g., "VALUE_OUT_OF_RANGE")
	Message string      `json:"message"`           // Human-readable message, localized for the form UI
	Details interface{} `json:"details,omitempty"` // Optional field for additional error details
}

// Predefined application-specific error codes
const (
	// Generic Errors
	ErrorCodeInternalServerError = "INTERNAL_SERVER_ERROR"
	ErrorCodeServiceUnavailable  = "SERVICE_UNAVAILABLE"

	// Input Validation & Data Errors
	ErrorCodeInvalidJSON      = "INVALID_JSON"
	ErrorCodeValueOutOfRange  = "VALUE_OUT_OF_RANGE"
	ErrorCodeMissingSelection = "MISSING_REQUIRED_FIELD"

	// The property lies outside what the encoder was fitted on
	ErrorCodeInsufficientData = "INSUFFICIENT_DATA"

	// Resource Specific Errors
	ErrorCodeDistrictNotFound = "DISTRICT_NOT_FOUND"

	ErrorCodePredictionFailed = "PREDICTION_FAILED"
)
