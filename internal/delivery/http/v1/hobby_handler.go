package v1

import (
	"net/http"

	"resume-builder-backend/internal/delivery/http/response"
	"resume-builder-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type HobbyHandler struct {
	uc domain.HobbyUsecase
}

func NewHobbyHandler(protected *gin.RouterGroup, uc domain.HobbyUsecase) {
	handler := &HobbyHandler{uc: uc}

	g := protected.Group("/hobbies")
	g.GET("", handler.List)
	g.POST("", handler.Create)
	g.DELETE("/:id", handler.Delete)
}

// List godoc
// @Summary      List the caller's hobbies
// @Tags         hobbies
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Hobby}
// @Failure      401  {object}  response.Response
// @Router       /hobbies [get]
// @Security     BearerAuth
func (h *HobbyHandler) List(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}
	items, err := h.uc.List(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Hobby list retrieved successfully", items)
}

// Create godoc
// @Summary      Add a hobby
// @Tags         hobbies
// @Accept       json
// @Produce      json
// @Param        body  body      domain.HobbyInput  true  "Hobby"
// @Success      201   {object}  response.Response{data=domain.Hobby}
// @Failure      400   {object}  response.Response
// @Router       /hobbies [post]
// @Security     BearerAuth
func (h *HobbyHandler) Create(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}
	var in domain.HobbyInput
	if !bind(c, &in) {
		return
	}
	item, err := h.uc.Create(c.Request.Context(), userID, &in)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Hobby added successfully", item)
}

// Delete godoc
// @Summary      Delete a hobby
// @Tags         hobbies
// @Produce      json
// @Param        id   path      int  true  "Hobby ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /hobbies/{id} [delete]
// @Security     BearerAuth
func (h *HobbyHandler) Delete(c *gin.Context) {
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
	response.Success(c, http.StatusOK, "Hobby deleted successfully", nil)
}
