package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"freelancehub_backend/internal/services"
	"freelancehub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type SkillsHandler struct {
	*BaseHandler
	skillsService services.SkillsService
}

func NewSkillsHandler(base *BaseHandler, skillsService services.SkillsService) *SkillsHandler {
	return &SkillsHandler{
		BaseHandler:   base,
		skillsService: skillsService,
	}
}

func (h *SkillsHandler) RegisterRoutes(r *gin.RouterGroup) {
	sk := r.Group("/skills")
	{
		sk.GET("", h.GetAllSkills)
		sk.GET("/:userId", h.GetUserSkills)
		sk.PUT("/:userId", h.ReplaceSkills)
		sk.POST("/:userId", h.AddSkill)
		sk.DELETE("/:userId/:skill", h.RemoveSkill)
	}
}

func (h *SkillsHandler) GetAllSkills(c *gin.Context) {
	all, err := h.skillsService.GetAllSkills(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, all)
}

func (h *SkillsHandler) GetUserSkills(c *gin.Context) {
	userID := c.Param("userId")

	list, err := h.skillsService.GetUserSkills(c.Request.Context(), h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *SkillsHandler) ReplaceSkills(c *gin.Context) {
	userID := c.Param("userId")

	var req dto.ReplaceSkillsRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	list, err := h.skillsService.ReplaceSkills(c.Request.Context(), h.GetDB(c), userID, *req.Skills)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Skills updated successfully",
		"skills":  list,
	})
}

// AddSkill responds 200 without persisting when a case-insensitive match
// already exists, 201 when the skill was actually appended.
func (h *SkillsHandler) AddSkill(c *gin.Context) {
	userID := c.Param("userId")

	var req dto.AddSkillRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	list, existed, err := h.skillsService.AddSkill(c.Request.Context(), h.GetDB(c), userID, req.Skill)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if existed {
		c.JSON(http.StatusOK, gin.H{
			"message": "Skill already exists",
			"skills":  list,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": fmt.Sprintf("Skill '%s' added successfully", strings.TrimSpace(req.Skill)),
		"skills":  list,
	})
}

func (h *SkillsHandler) RemoveSkill(c *gin.Context) {
	userID := c.Param("userId")
	skill := c.Param("skill")

	list, err := h.skillsService.RemoveSkill(c.Request.Context(), h.GetDB(c), userID, skill)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Skill '%s' removed successfully", strings.ToLower(strings.TrimSpace(skill))),
		"skills":  list,
	})
}
