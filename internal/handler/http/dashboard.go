package http

import (
	"net/http"

	"github.com/cmlabs-hris/hr-portal-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hr-portal-go/internal/handler/http/response"
)

type DashboardHandler interface {
	Analytics(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// Analytics implements DashboardHandler.
func (h *dashboardHandlerImpl) Analytics(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetAnalytics(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
