package v1

import (
	"net/http"

	"resume-builder-backend/internal/delivery/http/response"
	"resume-builder-backend/internal/usecase"

	"github.com/gin-gonic/gin"
)

// Health godoc
// @Summary      Liveness and database reachability
// @Tags         health
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      503  {object}  response.Response
// @Router       /health [get]
func healthHandler(uc usecase.HealthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		status, healthy := uc.Check(c.Request.Context())
		if !healthy {
			response.Error(c, http.StatusServiceUnavailable, "System degraded", status)
			return
		}
		response.Success(c, http.StatusOK, "System operational", status)
	}
}
