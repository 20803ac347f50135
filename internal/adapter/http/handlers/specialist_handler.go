package handlers

import (
	"errors"
	request "iblind_pos/internal/adapter/http/dto/request"
	response "iblind_pos/internal/adapter/http/dto/response"
	"iblind_pos/internal/adapter/http/middleware"
	"iblind_pos/internal/usecase"
	"iblind_pos/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidSpecialistPayload = pkg.NewDomainErrorSimple("INVALID_SPECIALIST_INPUT", "Invalid specialist payload", http.StatusBadRequest)
)

// SpecialistHandler manages the specialist roster and per-head performance.
type SpecialistHandler struct {
	usecase usecase.ISpecialistUseCase
}

func NewSpecialistHandler(uc usecase.ISpecialistUseCase) *SpecialistHandler {
	return &SpecialistHandler{usecase: uc}
}

func (h *SpecialistHandler) AddSpecialist(c *gin.Context) {
	var payload request.SpecialistRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSpecialistPayload.HTTPStatus, errInvalidSpecialistPayload.ToHTTPError())
		return
	}

	actor := middleware.ActorFromContext(c)
	user, err := h.usecase.Add(c.Request.Context(), payload.Name, payload.Email, actor)
	if err != nil {
		appErr := mapSpecialistError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromUser(user))
}

func (h *SpecialistHandler) ListSpecialists(c *gin.Context) {
	users, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapSpecialistError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromUsers(users))
}

func (h *SpecialistHandler) RemoveSpecialist(c *gin.Context) {
	actor := middleware.ActorFromContext(c)
	if err := h.usecase.Remove(c.Request.Context(), c.Param("id"), actor); err != nil {
		appErr := mapSpecialistError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *SpecialistHandler) GetPerformance(c *gin.Context) {
	perf, err := h.usecase.Performance(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapSpecialistError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSpecialistPerformance(perf))
}

func mapSpecialistError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSpecialist):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAdminRequired):
		return pkg.NewDomainErrorSimple("ADMIN_REQUIRED", "Apenas administradores podem gerenciar especialistas", http.StatusForbidden)
	case errors.Is(err, usecase.ErrCannotDeleteAdmin):
		return pkg.NewDomainErrorSimple("CANNOT_DELETE_ADMIN", "Contas de administrador não podem ser removidas", http.StatusForbidden)
	case errors.Is(err, usecase.ErrEmailAlreadyUsed):
		return pkg.NewDomainErrorSimple("EMAIL_ALREADY_USED", "E-mail já cadastrado", http.StatusConflict)
	case errors.Is(err, usecase.ErrSpecialistNotFound):
		return pkg.NewDomainErrorSimple("SPECIALIST_NOT_FOUND", "Specialist not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
