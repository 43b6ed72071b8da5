package handlers

import (
	"net/http"

	"freelancehub_backend/internal/services"
	"freelancehub_backend/internal/services/dto"
	"freelancehub_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup) {
	users := r.Group("/users")
	{
		users.POST("/id", h.GetUserIDFromBody)
		users.GET("/id", h.GetUserIDFromQuery)
	}
}

// GetUserIDFromBody resolves a user id from an email in the request body.
// A missing or unparsable body behaves like an unknown email: the lookup
// finds nothing and reports 404. This endpoint never 400s.
func (h *UserHandler) GetUserIDFromBody(c *gin.Context) {
	var req dto.UserIDLookupRequest
	_ = c.ShouldBindJSON(&req)

	userID, err := h.userService.GetUserIDByEmail(c.Request.Context(), h.GetDB(c), req.Email)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UserIDResponse{UserID: userID})
}

// GetUserIDFromQuery is the query-parameter variant; unlike the POST form
// it rejects a missing email outright.
func (h *UserHandler) GetUserIDFromQuery(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Email query parameter is required"))
		return
	}

	userID, err := h.userService.GetUserIDByEmail(c.Request.Context(), h.GetDB(c), email)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UserIDResponse{UserID: userID})
}
