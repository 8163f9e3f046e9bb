package responses

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Aidin1998/goodbye/common/apiutil"
	"github.com/gin-gonic/gin"
)

// ContentTypeJSON is written verbatim, without a charset parameter
const ContentTypeJSON = "application/json"

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// AvailableEndpoints lists the routes served by the API, in the order they
// are advertised to clients.
func AvailableEndpoints() []string {
	return []string{
		"GET / - This help message",
		"GET /goodbye - Returns a goodbye message",
	}
}

// WelcomeResponse is the body of GET /
type WelcomeResponse struct {
	Message            string   `json:"message" example:"Welcome to the Goodbye World API!"`
	AvailableEndpoints []string `json:"available_endpoints"`
	Status             string   `json:"status" example:"success"`
}

// GoodbyeResponse is the body of GET /goodbye
type GoodbyeResponse struct {
	Message string `json:"message" example:"Goodbye, World!"`
	Status  string `json:"status" example:"success"`
}

// NotFoundResponse is the body of every unmatched request
type NotFoundResponse struct {
	Error              string   `json:"error" example:"Route not found"`
	Message            string   `json:"message" example:"The requested endpoint does not exist"`
	AvailableEndpoints []string `json:"available_endpoints"`
	Status             string   `json:"status" example:"error"`
}

func NewWelcomeResponse() WelcomeResponse {
	return WelcomeResponse{
		Message:            "Welcome to the Goodbye World API!",
		AvailableEndpoints: AvailableEndpoints(),
		Status:             StatusSuccess,
	}
}

func NewGoodbyeResponse() GoodbyeResponse {
	return GoodbyeResponse{
		Message: "Goodbye, World!",
		Status:  StatusSuccess,
	}
}

func NewNotFoundResponse() NotFoundResponse {
	return NotFoundResponse{
		Error:              "Route not found",
		Message:            "The requested endpoint does not exist",
		AvailableEndpoints: AvailableEndpoints(),
		Status:             StatusError,
	}
}

// JSON encodes payload and writes it with the given status. gin's own JSON
// renderer appends "; charset=utf-8", so the body is rendered as raw data.
// An encoding failure is recorded on the context and answered with a 500.
func JSON(c *gin.Context, status int, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		_ = c.Error(fmt.Errorf("encode response: %w", err))
		body, _ = json.Marshal(apiutil.ErrorResponse{
			Error:   "internal_server_error",
			Message: "An internal server error occurred",
		})
		status = http.StatusInternalServerError
	}

	c.Data(status, ContentTypeJSON, body)
}

// Success sends a 200 response
func Success(c *gin.Context, payload interface{}) {
	JSON(c, http.StatusOK, payload)
}

// NotFound sends the 404 route-not-found response
func NotFound(c *gin.Context) {
	JSON(c, http.StatusNotFound, NewNotFoundResponse())
}
