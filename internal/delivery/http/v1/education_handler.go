package v1

import (
	"net/http"

	"resume-builder-backend/internal/delivery/http/response"
	"resume-builder-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type EducationHandler struct {
	uc domain.EducationUsecase
}

func NewEducationHandler(protected *gin.RouterGroup, uc domain.EducationUsecase) {
	handler := &EducationHandler{uc: uc}

	g := protected.Group("/education")
	g.GET("", handler.List)
	g.POST("", handler.Create)
	g.PUT("/:id", handler.Update)
	g.DELETE("/:id", handler.Delete)
}

// List godoc
// @Summary      List the caller's education entries
// @Tags         education
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Education}
// @Failure      401  {object}  response.Response
// @Router       /education [get]
// @Security     BearerAuth
func (h *EducationHandler) List(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}
	items, err := h.uc.List(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Education list retrieved successfully", items)
}

// Create godoc
// @Summary      Add an education entry
// @Tags         education
// @Accept       json
// @Produce      json
// @Param        body  body      domain.EducationInput  true  "Education"
// @Success      201   {object}  response.Response{data=domain.Education}
// @Failure      400   {object}  response.Response
// @Router       /education [post]
// @Security     BearerAuth
func (h *EducationHandler) Create(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}
	var in domain.EducationInput
	if !bind(c, &in) {
		return
	}
	item, err := h.uc.Create(c.Request.Context(), userID, &in)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Education added successfully", item)
}

// Update godoc
// @Summary      Replace an education entry
// @Tags         education
// @Accept       json
// @Produce      json
// @Param        id    path      int  true  "Education ID"
// @Param        body  body      domain.EducationInput  true  "Education"
// @Success      200   {object}  response.Response{data=domain.Education}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /education/{id} [put]
// @Security     BearerAuth
func (h *EducationHandler) Update(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	var in domain.EducationInput
	if !bind(c, &in) {
		return
	}
	item, err := h.uc.Update(c.Request.Context(), userID, id, &in)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Education updated successfully", item)
}

// Delete godoc
// @Summary      Delete an education entry
// @Tags         education
// @Produce      json
// @Param        id   path      int  true  "Education ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /education/{id} [delete]
// @Security     BearerAuth
func (h *EducationHandler) Delete(c *gin.Context) {
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
	response.Success(c, http.StatusOK, "Education deleted successfully", nil)
}
