package routes

import (
	"iblind_pos/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathIntake      = "/intake"
	PathAttendances = "/attendances"
	PathInventory   = "/inventory"
	PathSpecialists = "/specialists"
	PathStats       = "/stats"
	PathAuditLogs   = "/audit-logs"
)

func addPosRoutes(
	rg *gin.RouterGroup,
	intakeHandler *handlers.IntakeHandler,
	attendanceHandler *handlers.AttendanceHandler,
	inventoryHandler *handlers.InventoryHandler,
	specialistHandler *handlers.SpecialistHandler,
	statsHandler *handlers.StatsHandler,
	auditHandler *handlers.AuditHandler,
) {
	intake := rg.Group(PathIntake)
	{
		intake.POST("", intakeHandler.StartIntake)
		intake.GET("/:session_id", intakeHandler.GetIntake)
		intake.PATCH("/:session_id/draft", intakeHandler.PatchDraft)
		intake.POST("/:session_id/next", intakeHandler.Next)
		intake.POST("/:session_id/back", intakeHandler.Back)
		intake.DELETE("/:session_id", intakeHandler.CancelIntake)
	}

	attendances := rg.Group(PathAttendances)
	{
		attendances.GET("", attendanceHandler.ListAttendances)
		attendances.GET("/:id", attendanceHandler.GetAttendance)
		attendances.POST("/:id/deletion-request", attendanceHandler.RequestDeletion)
	}

	inventory := rg.Group(PathInventory)
	{
		inventory.POST("", inventoryHandler.CreateItem)
		inventory.GET("", inventoryHandler.ListItems)
		inventory.GET("/:id", inventoryHandler.GetItem)
		inventory.PUT("/:id", inventoryHandler.UpdateItem)
		inventory.POST("/:id/adjust", inventoryHandler.AdjustStock)
		inventory.GET("/:id/movements", inventoryHandler.ListMovements)
	}

	specialists := rg.Group(PathSpecialists)
	{
		specialists.POST("", specialistHandler.AddSpecialist)
		specialists.GET("", specialistHandler.ListSpecialists)
		specialists.DELETE("/:id", specialistHandler.RemoveSpecialist)
		specialists.GET("/:id/performance", specialistHandler.GetPerformance)
	}

	rg.GET(PathStats+"/dashboard", statsHandler.GetDashboard)
	rg.GET(PathAuditLogs, auditHandler.ListAuditLogs)
}
