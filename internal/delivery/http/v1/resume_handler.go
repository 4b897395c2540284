package v1

import (
	"bytes"
	"net/http"

	"resume-builder-backend/internal/delivery/http/response"
	"resume-builder-backend/internal/domain"
	"resume-builder-backend/pkg/apperror"
	"resume-builder-backend/pkg/logger"
	"resume-builder-backend/pkg/resume"

	"github.com/gin-gonic/gin"
)

type ResumeHandler struct {
	profileUC domain.ProfileUsecase
	resumeUC  domain.ResumeUsecase
}

func NewResumeHandler(protected *gin.RouterGroup, profileUC domain.ProfileUsecase, resumeUC domain.ResumeUsecase) {
	handler := &ResumeHandler{profileUC: profileUC, resumeUC: resumeUC}

	r := protected.Group("/resume")
	r.GET("/view", handler.View)
	r.POST("/generate", handler.Generate)
}

// View godoc
// @Summary      Printable HTML résumé of the caller
// @Tags         resume
// @Produce      html
// @Success      200  {string}  string  "HTML document"
// @Failure      401  {object}  response.Response
// @Router       /resume/view [get]
// @Security     BearerAuth
func (h *ResumeHandler) View(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}
	doc, err := h.profileUC.Assemble(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	// Render fully before writing so a template error can still become a JSON 500
	var buf bytes.Buffer
	if err := resume.RenderHTML(&buf, doc); err != nil {
		logger.Log.Error("render resume html", "user_id", userID, "error", err)
		_ = c.Error(apperror.Internal(err))
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// Generate godoc
// @Summary      Generate a PDF résumé
// @Description  Builds prose from the caller's stored profile, renders a PDF and stores it.
// @Tags         resume
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.ResumeResult}
// @Failure      401  {object}  response.Response
// @Failure      502  {object}  response.Response
// @Failure      503  {object}  response.Response
// @Router       /resume/generate [post]
// @Security     BearerAuth
func (h *ResumeHandler) Generate(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}
	result, err := h.resumeUC.Generate(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Resume generated successfully", result)
}
