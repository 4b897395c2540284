package v1

import (
	"fmt"
	"net/http"
	"strings"

	"resume-builder-backend/internal/delivery/http/response"
	"resume-builder-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
	exportUC  domain.ExportUsecase
}

func NewProfileHandler(protected *gin.RouterGroup, profileUC domain.ProfileUsecase, exportUC domain.ExportUsecase) {
	handler := &ProfileHandler{profileUC: profileUC, exportUC: exportUC}

	protected.GET("/user-info", handler.Mine)
	protected.GET("/user-info/export", handler.Export)
	protected.GET("/users/:id/profile", handler.ByUser)
}

// Mine godoc
// @Summary      Full profile of the caller
// @Tags         profile
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.ProfileDocument}
// @Failure      401  {object}  response.Response
// @Router       /user-info [get]
// @Security     BearerAuth
func (h *ProfileHandler) Mine(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}
	h.respond(c, userID)
}

// ByUser godoc
// @Summary      Full profile of another user
// @Tags         profile
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  response.Response{data=domain.ProfileDocument}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /users/{id}/profile [get]
// @Security     BearerAuth
func (h *ProfileHandler) ByUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	h.respond(c, id)
}

func (h *ProfileHandler) respond(c *gin.Context, userID int64) {
	doc, err := h.profileUC.Assemble(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile retrieved successfully", doc)
}

// Export godoc
// @Summary      Download the caller's profile
// @Description  xlsx workbook (default) or csv of section,record,field,value rows.
// @Tags         profile
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce      text/csv
// @Param        format  query     string  false  "xlsx or csv"
// @Success      200     {file}    file
// @Failure      400     {object}  response.Response
// @Router       /user-info/export [get]
// @Security     BearerAuth
func (h *ProfileHandler) Export(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}
	format := strings.ToLower(strings.TrimSpace(c.DefaultQuery("format", domain.ExportFormatXLSX)))

	file, err := h.exportUC.Export(c.Request.Context(), userID, format)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}
