package apperrors

import (
	"log"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the wire format for every failure: an object with a
// plain `error` string. Validation failures additionally carry a
// field->message map under `details`. No codes, domains or stack traces
// leak to clients.
type ErrorResponse struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

// GinErrorHandler renders AppErrors as JSON responses.
type GinErrorHandler struct {
	Debug bool
}

func (h *GinErrorHandler) HandleGinError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= 500 {
		log.Printf("server error: %v", appErr)
		if !h.Debug {
			// Never expose internals on 500s.
			appErr = &AppError{
				Code:     appErr.Code,
				Domain:   appErr.Domain,
				Message:  "Internal server error",
				HTTPCode: appErr.HTTPCode,
			}
		}
	}

	c.JSON(appErr.HTTPCode, ErrorResponse{Error: appErr.Message, Details: appErr.Details})
}

// HandleError is the short-hand used by handlers.
func HandleError(c *gin.Context, err error) {
	handler := &GinErrorHandler{Debug: gin.Mode() != gin.ReleaseMode}
	handler.HandleGinError(c, err)
}

// AsAppError extracts an *AppError from an error chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
