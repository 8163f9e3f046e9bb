package apiutil

// ErrorResponse is the standard error envelope for the API
//
// Example:
//
//	{
//	  "error": "internal_server_error",
//	  "message": "An internal server error occurred"
//	}
type ErrorResponse struct {
	Error   string      `json:"error"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}
