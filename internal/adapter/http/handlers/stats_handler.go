package handlers

import (
	response "iblind_pos/internal/adapter/http/dto/response"
	"iblind_pos/internal/usecase"
	"iblind_pos/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

// StatsHandler serves the dashboard aggregates.
type StatsHandler struct {
	usecase usecase.IStatsUseCase
}

func NewStatsHandler(uc usecase.IStatsUseCase) *StatsHandler {
	return &StatsHandler{usecase: uc}
}

func (h *StatsHandler) GetDashboard(c *gin.Context) {
	stats, err := h.usecase.Dashboard(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDashboardStats(stats))
}
