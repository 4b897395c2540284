package v1

import (
	"net/http"

	"resume-builder-backend/internal/delivery/http/response"
	"resume-builder-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type SkillHandler struct {
	uc domain.SkillUsecase
}

func NewSkillHandler(protected *gin.RouterGroup, uc domain.SkillUsecase) {
	handler := &SkillHandler{uc: uc}

	g := protected.Group("/skills")
	g.GET("", handler.List)
	g.POST("", handler.Create)
	g.PUT("/:id", handler.Update)
	g.DELETE("/:id", handler.Delete)
}

// List godoc
// @Summary      List the caller's skills
// @Tags         skills
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Skill}
// @Failure      401  {object}  response.Response
// @Router       /skills [get]
// @Security     BearerAuth
func (h *SkillHandler) List(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}
	items, err := h.uc.List(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skill list retrieved successfully", items)
}

// Create godoc
// @Summary      Add a skill
// @Tags         skills
// @Accept       json
// @Produce      json
// @Param        body  body      domain.SkillInput  true  "Skill"
// @Success      201   {object}  response.Response{data=domain.Skill}
// @Failure      400   {object}  response.Response
// @Router       /skills [post]
// @Security     BearerAuth
func (h *SkillHandler) Create(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}
	var in domain.SkillInput
	if !bind(c, &in) {
		return
	}
	item, err := h.uc.Create(c.Request.Context(), userID, &in)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Skill added successfully", item)
}

// Update godoc
// @Summary      Replace a skill
// @Tags         skills
// @Accept       json
// @Produce      json
// @Param        id    path      int  true  "Skill ID"
// @Param        body  body      domain.SkillInput  true  "Skill"
// @Success      200   {object}  response.Response{data=domain.Skill}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /skills/{id} [put]
// @Security     BearerAuth
func (h *SkillHandler) Update(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	var in domain.SkillInput
	if !bind(c, &in) {
		return
	}
	item, err := h.uc.Update(c.Request.Context(), userID, id, &in)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skill updated successfully", item)
}

// Delete godoc
// @Summary      Delete a skill
// @Tags         skills
// @Produce      json
// @Param        id   path      int  true  "Skill ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /skills/{id} [delete]
// @Security     BearerAuth
func (h *SkillHandler) Delete(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.uc.Delete(c.Request.Context(), userID, id); err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skill deleted successfully", nil)
}
