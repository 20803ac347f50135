package response

import (
	"iblind_pos/internal/usecase"
)

type DashboardStatsResponse struct {
	Revenue            float64 `json:"revenue"`
	Count              int     `json:"count"`
	AvgTicket          float64 `json:"avg_ticket"`
	CriticalStockCount int     `json:"critical_stock_count"`
	CountToday         int     `json:"count_today"`
}

func FromDashboardStats(s usecase.DashboardStats) DashboardStatsResponse {
	return DashboardStatsResponse{
		Revenue:            s.Revenue,
		Count:              s.Count,
		AvgTicket:          s.AvgTicket,
		CriticalStockCount: s.CriticalStockCount,
		CountToday:         s.CountToday,
	}
}
