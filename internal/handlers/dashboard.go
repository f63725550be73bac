package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/workflowhq/workflow-api/internal/errors"
	"github.com/workflowhq/workflow-api/internal/services"
)

type DashboardHandler struct {
	dashboardService *services.DashboardService
}

func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Stats returns aggregate task, budget and hour statistics.
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboardService.Stats()
	if err != nil {
		log.Printf("failed to compute dashboard stats: %v", err)
		apierrors.FromStorage(c, err, "")
		return
	}
	c.JSON(http.StatusOK, stats)
}
