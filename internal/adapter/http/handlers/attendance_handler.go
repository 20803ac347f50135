package handlers

import (
	"errors"
	request "iblind_pos/internal/adapter/http/dto/request"
	response "iblind_pos/internal/adapter/http/dto/response"
	"iblind_pos/internal/adapter/http/middleware"
	"iblind_pos/internal/domain/entities"
	"iblind_pos/internal/usecase"
	"iblind_pos/pkg"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidDeletionPayload = pkg.NewDomainErrorSimple("INVALID_DELETION_INPUT", "Invalid deletion payload", http.StatusBadRequest)
)

// AttendanceHandler serves the attendance history views and the
// deletion-with-justification flow.
type AttendanceHandler struct {
	usecase usecase.IAttendanceUseCase
}

func NewAttendanceHandler(uc usecase.IAttendanceUseCase) *AttendanceHandler {
	return &AttendanceHandler{usecase: uc}
}

// ListAttendances returns the history, newest first. Soft-deleted records are
// hidden unless include_deleted=true; a search term filters by client, model,
// IMEI or warranty id.
func (h *AttendanceHandler) ListAttendances(c *gin.Context) {
	var (
		list []entities.Attendance
		err  error
	)
	if term := strings.TrimSpace(c.Query("search")); term != "" {
		list, err = h.usecase.Search(c.Request.Context(), term)
	} else if c.Query("include_deleted") == "true" {
		list, err = h.usecase.ListAll(c.Request.Context())
	} else {
		list, err = h.usecase.ListActive(c.Request.Context())
	}
	if err != nil {
		appErr := mapAttendanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAttendances(list))
}

// GetAttendance returns one record by id, deleted or not.
func (h *AttendanceHandler) GetAttendance(c *gin.Context) {
	attendance, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapAttendanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAttendance(attendance))
}

// RequestDeletion soft-deletes an attendance after journaling the actor and
// justification in the audit trail.
func (h *AttendanceHandler) RequestDeletion(c *gin.Context) {
	var payload request.DeletionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDeletionPayload.HTTPStatus, errInvalidDeletionPayload.ToHTTPError())
		return
	}

	actor := middleware.ActorFromContext(c)
	if err := h.usecase.RequestDeletion(c.Request.Context(), c.Param("id"), payload.Reason, actor); err != nil {
		appErr := mapAttendanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapAttendanceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAttendanceID), errors.Is(err, usecase.ErrInvalidActor):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrReasonTooShort):
		return pkg.NewDomainErrorSimple("REASON_TOO_SHORT", "Justificativa muito curta", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrIncompleteDraft):
		return pkg.NewDomainErrorSimple("INCOMPLETE_DRAFT", "Preencha todos os campos obrigatórios", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrAttendanceNotFound):
		return pkg.NewDomainErrorSimple("ATTENDANCE_NOT_FOUND", "Attendance not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
