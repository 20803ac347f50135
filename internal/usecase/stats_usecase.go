package usecase

import (
	"context"
	"time"

	"iblind_pos/internal/domain/entities"
	"iblind_pos/internal/usecase/interfaces"
)

// DashboardStats are the derived dashboard metrics. Always recomputed from
// the current collections, never cached or persisted.
type DashboardStats struct {
	Revenue            float64 `json:"revenue"`
	Count              int     `json:"count"`
	AvgTicket          float64 `json:"avgTicket"`
	CriticalStockCount int     `json:"criticalStockCount"`
	CountToday         int     `json:"countToday"`
}

// ComputeDashboard derives the metrics from in-memory collections.
// Soft-deleted attendances are excluded from every aggregate; "today" is a
// calendar-day comparison in now's location, not a rolling 24h window.
func ComputeDashboard(attendances []entities.Attendance, items []entities.InventoryItem, now time.Time) DashboardStats {
	var s DashboardStats

	y, m, d := now.Date()
	for _, a := range attendances {
		if a.IsDeleted {
			continue
		}
		s.Revenue += a.TotalValue
		s.Count++

		ay, am, ad := a.Date.In(now.Location()).Date()
		if ay == y && am == m && ad == d {
			s.CountToday++
		}
	}
	if s.Count > 0 {
		s.AvgTicket = s.Revenue / float64(s.Count)
	}

	for _, it := range items {
		if it.IsCritical() {
			s.CriticalStockCount++
		}
	}

	return s
}

// IStatsUseCase serves the dashboard aggregate endpoint.

type IStatsUseCase interface {
	Dashboard(ctx context.Context) (DashboardStats, error)
}

type StatsUseCase struct {
	attendanceRepo interfaces.IAttendanceRepository
	inventoryRepo  interfaces.IInventoryRepository

	nowFn func() time.Time
}

var _ IStatsUseCase = (*StatsUseCase)(nil)

func NewStatsUseCase(attendanceRepo interfaces.IAttendanceRepository, inventoryRepo interfaces.IInventoryRepository) *StatsUseCase {
	return &StatsUseCase{attendanceRepo: attendanceRepo, inventoryRepo: inventoryRepo, nowFn: time.Now}
}

func (u *StatsUseCase) Dashboard(ctx context.Context) (DashboardStats, error) {
	attendances, err := u.attendanceRepo.ListAll(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	items, err := u.inventoryRepo.ListAll(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	return ComputeDashboard(attendances, items, u.nowFn()), nil
}
