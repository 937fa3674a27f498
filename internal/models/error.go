package models

// ErrorResponse is the body written for every failed request.
// Field order is part of the contract.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Symbolic error code
	// example: INVALID_PARAMETER
	Code string `json:"code"`

	// Error category: Client, Service or Unknown
	// example: Client
	ErrorType string `json:"errorType"`

	// Human readable detail
	// example: The user id -100 is invalid
	Message string `json:"message"`

	// HTTP status, mirrored from the status line
	// example: 400
	StatusCode int `json:"statusCode"`
}
