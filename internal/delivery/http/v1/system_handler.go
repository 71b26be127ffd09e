package v1

import (
	"net/http"

	"next-form-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type SystemHandler struct {
	healthUC domain.HealthUsecase
}

func NewSystemHandler(r gin.IRoutes, healthUC domain.HealthUsecase) {
	handler := &SystemHandler{healthUC: healthUC}

	r.GET("/", handler.Root)
	r.GET("/healthy", handler.Healthy)
}

// Root godoc
// @Summary      Service identity
// @Tags         system
// @Produce      json
// @Success      200  {object}  domain.ServiceInfo
// @Router       / [get]
func (h *SystemHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, h.healthUC.Info())
}

// Healthy godoc
// @Summary      Liveness probe
// @Tags         system
// @Produce      json
// @Success      200  {object}  domain.HealthStatus
// @Router       /healthy [get]
func (h *SystemHandler) Healthy(c *gin.Context) {
	c.JSON(http.StatusOK, h.healthUC.Check(c.Request.Context()))
}
