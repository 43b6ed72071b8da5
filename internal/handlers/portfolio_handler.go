package handlers

import (
	"net/http"

	"freelancehub_backend/internal/services"
	"freelancehub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type PortfolioHandler struct {
	*BaseHandler
	portfolioService services.PortfolioService
}

func NewPortfolioHandler(base *BaseHandler, portfolioService services.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{
		BaseHandler:      base,
		portfolioService: portfolioService,
	}
}

func (h *PortfolioHandler) RegisterRoutes(r *gin.RouterGroup) {
	portfolio := r.Group("/profiles/:userId/portfolio")
	{
		portfolio.POST("", h.AddItem)
		portfolio.GET("", h.ListItems)
		portfolio.PUT("/:portfolioItemId", h.UpdateItem)
		portfolio.DELETE("/:portfolioItemId", h.DeleteItem)
	}
}

func (h *PortfolioHandler) AddItem(c *gin.Context) {
	userID := c.Param("userId")

	var req dto.CreatePortfolioItemRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	item, err := h.portfolioService.AddItem(c.Request.Context(), h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":       "Portfolio item added successfully",
		"portfolioItem": item,
	})
}

func (h *PortfolioHandler) ListItems(c *gin.Context) {
	userID := c.Param("userId")

	items, err := h.portfolioService.ListItems(c.Request.Context(), h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *PortfolioHandler) UpdateItem(c *gin.Context) {
	userID := c.Param("userId")
	itemID := c.Param("portfolioItemId")

	var req dto.UpdatePortfolioItemRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	item, err := h.portfolioService.UpdateItem(c.Request.Context(), h.GetDB(c), userID, itemID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Portfolio item updated successfully",
		"portfolioItem": item,
	})
}

func (h *PortfolioHandler) DeleteItem(c *gin.Context) {
	userID := c.Param("userId")
	itemID := c.Param("portfolioItemId")

	if err := h.portfolioService.DeleteItem(c.Request.Context(), h.GetDB(c), userID, itemID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Portfolio item deleted successfully"})
}
