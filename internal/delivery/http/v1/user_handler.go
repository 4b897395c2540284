package v1

import (
	"net/http"

	"resume-builder-backend/internal/delivery/http/response"
	"resume-builder-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUC  domain.UserUsecase
	uploads uploads
}

func NewUserHandler(protected *gin.RouterGroup, userUC domain.UserUsecase, up uploads) {
	handler := &UserHandler{userUC: userUC, uploads: up}

	protected.GET("/user", handler.GetMe)
	protected.PUT("/user", up.chain(handler.UpdatePhoto)...)
	protected.PUT("/user/update", handler.UpdateInfo)
	protected.GET("/users/:id", handler.GetByID)
}

// GetMe godoc
// @Summary      Current user
// @Tags         user
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.PublicUser}
// @Failure      401  {object}  response.Response
// @Router       /user [get]
// @Security     BearerAuth
func (h *UserHandler) GetMe(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}
	user, err := h.userUC.GetMe(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User retrieved successfully", user)
}

// UpdatePhoto godoc
// @Summary      Replace or clear the profile photo
// @Description  Sending no file clears the photo.
// @Tags         user
// @Accept       multipart/form-data
// @Produce      json
// @Param        profile_photo  formData  file  false  "Profile photo"
// @Success      200  {object}  response.Response{data=domain.PublicUser}
// @Failure      400  {object}  response.Response
// @Failure      413  {object}  response.Response
// @Failure      503  {object}  response.Response
// @Router       /user [put]
// @Security     BearerAuth
func (h *UserHandler) UpdatePhoto(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}
	photo, err := h.uploads.read(c, "profile_photo")
	if err != nil {
		_ = c.Error(err)
		return
	}

	user, err := h.userUC.UpdatePhoto(c.Request.Context(), userID, photo)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile photo updated successfully", user)
}

// UpdateInfo godoc
// @Summary      Update name, username, mobile and location
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        user  body      domain.UpdateUserInput  true  "User details"
// @Success      200   {object}  response.Response{data=domain.PublicUser}
// @Failure      400   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /user/update [put]
// @Security     BearerAuth
func (h *UserHandler) UpdateInfo(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}
	var in domain.UpdateUserInput
	if !bind(c, &in) {
		return
	}

	user, err := h.userUC.UpdateInfo(c.Request.Context(), userID, &in)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User updated successfully", user)
}

// GetByID godoc
// @Summary      Public view of another user
// @Tags         user
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  response.Response{data=domain.PublicUser}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /users/{id} [get]
// @Security     BearerAuth
func (h *UserHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	user, err := h.userUC.GetPublicByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User retrieved successfully", user)
}
