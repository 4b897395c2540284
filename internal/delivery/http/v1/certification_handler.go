package v1

import (
	"net/http"

	"resume-builder-backend/internal/delivery/http/response"
	"resume-builder-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type CertificationHandler struct {
	uc      domain.CertificationUsecase
	uploads uploads
}

func NewCertificationHandler(protected *gin.RouterGroup, uc domain.CertificationUsecase, up uploads) {
	handler := &CertificationHandler{uc: uc, uploads: up}

	g := protected.Group("/certifications")
	g.GET("", handler.List)
	g.POST("", up.chain(handler.Create)...)
	g.PUT("/:id", up.chain(handler.Update)...)
	g.DELETE("/:id", handler.Delete)
}

// List godoc
// @Summary      List the caller's certifications
// @Tags         certifications
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Certification}
// @Router       /certifications [get]
// @Security     BearerAuth
func (h *CertificationHandler) List(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}
	items, err := h.uc.List(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Certification list retrieved successfully", items)
}

// Create godoc
// @Summary      Add a certification
// @Description  Optional attachment: pdf, jpg, jpeg, png or webp.
// @Tags         certifications
// @Accept       multipart/form-data
// @Produce      json
// @Param        title      formData  string  true   "Title"
// @Param        institute  formData  string  true   "Issuing institute"
// @Param        file       formData  file    false  "Certificate file"
// @Success      201  {object}  response.Response{data=domain.Certification}
// @Failure      400  {object}  response.Response
// @Failure      413  {object}  response.Response
// @Failure      502  {object}  response.Response
// @Router       /certifications [post]
// @Security     BearerAuth
func (h *CertificationHandler) Create(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}
	in, file, ok := h.readForm(c)
	if !ok {
		return
	}
	item, err := h.uc.Create(c.Request.Context(), userID, in, file)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Certification added successfully", item)
}

// Update godoc
// @Summary      Replace a certification
// @Description  Without a file the current attachment is kept.
// @Tags         certifications
// @Accept       multipart/form-data
// @Produce      json
// @Param        id         path      int     true   "Certification ID"
// @Param        title      formData  string  true   "Title"
// @Param        institute  formData  string  true   "Issuing institute"
// @Param        file       formData  file    false  "Certificate file"
// @Success      200  {object}  response.Response{data=domain.Certification}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /certifications/{id} [put]
// @Security     BearerAuth
func (h *CertificationHandler) Update(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	in, file, ok := h.readForm(c)
	if !ok {
		return
	}
	item, err := h.uc.Update(c.Request.Context(), userID, id, in, file)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Certification updated successfully", item)
}

// Delete godoc
// @Summary      Delete a certification and its attachment
// @Tags         certifications
// @Produce      json
// @Param        id   path      int  true  "Certification ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /certifications/{id} [delete]
// @Security     BearerAuth
func (h *CertificationHandler) Delete(c *gin.Context) {
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
	response.Success(c, http.StatusOK, "Certification deleted successfully", nil)
}

func (h *CertificationHandler) readForm(c *gin.Context) (*domain.CertificationInput, *domain.FileUpload, bool) {
	var in domain.CertificationInput
	if !bind(c, &in) {
		return nil, nil, false
	}
	file, err := h.uploads.read(c, "file")
	if err != nil {
		_ = c.Error(err)
		return nil, nil, false
	}
	return &in, file, true
}
