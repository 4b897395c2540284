package v1

import (
	"net/http"

	"resume-builder-backend/internal/delivery/http/response"
	"resume-builder-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC  domain.AuthUsecase
	uploads uploads
}

// NewAuthHandler registers /signup and /login on public, behind limit.
func NewAuthHandler(public *gin.RouterGroup, authUC domain.AuthUsecase, up uploads, limit gin.HandlerFunc) {
	handler := &AuthHandler{authUC: authUC, uploads: up}

	public.POST("/signup", append([]gin.HandlerFunc{limit}, up.chain(handler.Signup)...)...)
	public.POST("/login", limit, handler.Login)
}

// Signup godoc
// @Summary      Create an account
// @Description  Multipart form with an optional profile photo (jpg/png), resized and stored as JPEG.
// @Tags         auth
// @Accept       multipart/form-data
// @Produce      json
// @Param        name            formData  string  true   "Full name"
// @Param        username        formData  string  true   "Unique username"
// @Param        password        formData  string  true   "Password"
// @Param        username_alias  formData  string  false  "Display alias"
// @Param        mobile          formData  string  false  "Mobile number"
// @Param        location        formData  string  false  "Location"
// @Param        profile_photo   formData  file    false  "Profile photo"
// @Success      201  {object}  response.Response{data=domain.PublicUser}
// @Failure      400  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Failure      413  {object}  response.Response
// @Router       /signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var in domain.SignupInput
	if !bind(c, &in) {
		return
	}
	photo, err := h.uploads.read(c, "profile_photo")
	if err != nil {
		_ = c.Error(err)
		return
	}

	user, err := h.authUC.Signup(c.Request.Context(), &in, photo)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "User registered successfully", user)
}

// Login godoc
// @Summary      Log in
// @Description  Exchange username and password for a bearer token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials  body      domain.LoginInput  true  "Credentials"
// @Success      200  {object}  response.Response{data=domain.LoginResult}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      429  {object}  response.Response
// @Router       /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var in domain.LoginInput
	if !bind(c, &in) {
		return
	}

	result, err := h.authUC.Login(c.Request.Context(), &in)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Login successful", result)
}
