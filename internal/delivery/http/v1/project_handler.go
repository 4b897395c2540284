package v1

import (
	"net/http"

	"resume-builder-backend/internal/delivery/http/response"
	"resume-builder-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	uc domain.ProjectUsecase
}

func NewProjectHandler(protected *gin.RouterGroup, uc domain.ProjectUsecase) {
	handler := &ProjectHandler{uc: uc}

	g := protected.Group("/projects")
	g.GET("", handler.List)
	g.POST("", handler.Create)
	g.PUT("/:id", handler.Update)
	g.DELETE("/:id", handler.Delete)
}

// List godoc
// @Summary      List the caller's projects
// @Tags         projects
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Project}
// @Failure      401  {object}  response.Response
// @Router       /projects [get]
// @Security     BearerAuth
func (h *ProjectHandler) List(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}
	items, err := h.uc.List(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Project list retrieved successfully", items)
}

// Create godoc
// @Summary      Add a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        body  body      domain.ProjectInput  true  "Project"
// @Success      201   {object}  response.Response{data=domain.Project}
// @Failure      400   {object}  response.Response
// @Router       /projects [post]
// @Security     BearerAuth
func (h *ProjectHandler) Create(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}
	var in domain.ProjectInput
	if !bind(c, &in) {
		return
	}
	item, err := h.uc.Create(c.Request.Context(), userID, &in)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Project added successfully", item)
}

// Update godoc
// @Summary      Replace a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id    path      int  true  "Project ID"
// @Param        body  body      domain.ProjectInput  true  "Project"
// @Success      200   {object}  response.Response{data=domain.Project}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /projects/{id} [put]
// @Security     BearerAuth
func (h *ProjectHandler) Update(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	var in domain.ProjectInput
	if !bind(c, &in) {
		return
	}
	item, err := h.uc.Update(c.Request.Context(), userID, id, &in)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Project updated successfully", item)
}

// Delete godoc
// @Summary      Delete a project
// @Tags         projects
// @Produce      json
// @Param        id   path      int  true  "Project ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /projects/{id} [delete]
// @Security     BearerAuth
func (h *ProjectHandler) Delete(c *gin.Context) {
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
	response.Success(c, http.StatusOK, "Project deleted successfully", nil)
}
