package v1

import (
	"net/http"

	"resume-builder-backend/internal/delivery/http/response"
	"resume-builder-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ExperienceHandler struct {
	uc domain.ExperienceUsecase
}

func NewExperienceHandler(protected *gin.RouterGroup, uc domain.ExperienceUsecase) {
	handler := &ExperienceHandler{uc: uc}

	g := protected.Group("/experiences")
	g.GET("", handler.List)
	g.POST("", handler.Create)
	g.PUT("/:id", handler.Update)
	g.DELETE("/:id", handler.Delete)
}

// List godoc
// @Summary      List the caller's work experiences
// @Tags         experiences
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Experience}
// @Failure      401  {object}  response.Response
// @Router       /experiences [get]
// @Security     BearerAuth
func (h *ExperienceHandler) List(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}
	items, err := h.uc.List(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Experience list retrieved successfully", items)
}

// Create godoc
// @Summary      Add an experience
// @Tags         experiences
// @Accept       json
// @Produce      json
// @Param        body  body      domain.ExperienceInput  true  "Experience"
// @Success      201   {object}  response.Response{data=domain.Experience}
// @Failure      400   {object}  response.Response
// @Router       /experiences [post]
// @Security     BearerAuth
func (h *ExperienceHandler) Create(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}
	var in domain.ExperienceInput
	if !bind(c, &in) {
		return
	}
	item, err := h.uc.Create(c.Request.Context(), userID, &in)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Experience added successfully", item)
}

// Update godoc
// @Summary      Replace an experience
// @Tags         experiences
// @Accept       json
// @Produce      json
// @Param        id    path      int  true  "Experience ID"
// @Param        body  body      domain.ExperienceInput  true  "Experience"
// @Success      200   {object}  response.Response{data=domain.Experience}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /experiences/{id} [put]
// @Security     BearerAuth
func (h *ExperienceHandler) Update(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	var in domain.ExperienceInput
	if !bind(c, &in) {
		return
	}
	item, err := h.uc.Update(c.Request.Context(), userID, id, &in)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Experience updated successfully", item)
}

// Delete godoc
// @Summary      Delete an experience
// @Tags         experiences
// @Produce      json
// @Param        id   path      int  true  "Experience ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /experiences/{id} [delete]
// @Security     BearerAuth
func (h *ExperienceHandler) Delete(c *gin.Context) {
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
	response.Success(c, http.StatusOK, "Experience deleted successfully", nil)
}
