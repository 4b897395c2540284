package v1

import (
	"net/http"

	"resume-builder-backend/internal/delivery/http/response"
	"resume-builder-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type LinkedinHandler struct {
	uc domain.LinkedinUsecase
}

func NewLinkedinHandler(protected *gin.RouterGroup, uc domain.LinkedinUsecase) {
	handler := &LinkedinHandler{uc: uc}

	g := protected.Group("/linkedin")
	g.GET("", handler.List)
	g.POST("", handler.Create)
	g.PUT("/:id", handler.Update)
	g.DELETE("/:id", handler.Delete)
}

// List godoc
// @Summary      List the caller's LinkedIn profiles
// @Tags         linkedin
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.LinkedinProfile}
// @Failure      401  {object}  response.Response
// @Router       /linkedin [get]
// @Security     BearerAuth
func (h *LinkedinHandler) List(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}
	items, err := h.uc.List(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "LinkedIn profile list retrieved successfully", items)
}

// Create godoc
// @Summary      Add a LinkedIn profile
// @Tags         linkedin
// @Accept       json
// @Produce      json
// @Param        body  body      domain.LinkedinInput  true  "LinkedIn profile"
// @Success      201   {object}  response.Response{data=domain.LinkedinProfile}
// @Failure      400   {object}  response.Response
// @Router       /linkedin [post]
// @Security     BearerAuth
func (h *LinkedinHandler) Create(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}
	var in domain.LinkedinInput
	if !bind(c, &in) {
		return
	}
	item, err := h.uc.Create(c.Request.Context(), userID, &in)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "LinkedIn profile added successfully", item)
}

// Update godoc
// @Summary      Replace a LinkedIn profile
// @Tags         linkedin
// @Accept       json
// @Produce      json
// @Param        id    path      int  true  "LinkedIn profile ID"
// @Param        body  body      domain.LinkedinInput  true  "LinkedIn profile"
// @Success      200   {object}  response.Response{data=domain.LinkedinProfile}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /linkedin/{id} [put]
// @Security     BearerAuth
func (h *LinkedinHandler) Update(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	var in domain.LinkedinInput
	if !bind(c, &in) {
		return
	}
	item, err := h.uc.Update(c.Request.Context(), userID, id, &in)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "LinkedIn profile updated successfully", item)
}

// Delete godoc
// @Summary      Delete a LinkedIn profile
// @Tags         linkedin
// @Produce      json
// @Param        id   path      int  true  "LinkedIn profile ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /linkedin/{id} [delete]
// @Security     BearerAuth
func (h *LinkedinHandler) Delete(c *gin.Context) {
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
	response.Success(c, http.StatusOK, "LinkedIn profile deleted successfully", nil)
}
