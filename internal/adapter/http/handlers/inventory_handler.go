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

	"github.com/gin-gonic/gin"
)

var (
	errInvalidInventoryPayload = pkg.NewDomainErrorSimple("INVALID_INVENTORY_INPUT", "Invalid inventory payload", http.StatusBadRequest)
)

// InventoryHandler serves the stock module: item registry, critical alerts,
// manual adjustments and the movement journal.
type InventoryHandler struct {
	usecase usecase.IInventoryUseCase
}

func NewInventoryHandler(uc usecase.IInventoryUseCase) *InventoryHandler {
	return &InventoryHandler{usecase: uc}
}

func (h *InventoryHandler) CreateItem(c *gin.Context) {
	var payload request.InventoryItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInventoryPayload.HTTPStatus, errInvalidInventoryPayload.ToHTTPError())
		return
	}

	actor := middleware.ActorFromContext(c)
	item, err := h.usecase.CreateItem(c.Request.Context(), payload.ToEntity(), actor)
	if err != nil {
		appErr := mapInventoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromInventoryItem(item))
}

// UpdateItem edits descriptive fields. Stock levels are immutable here; only
// AdjustStock and the finalize flow move stock.
func (h *InventoryHandler) UpdateItem(c *gin.Context) {
	var payload request.InventoryItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInventoryPayload.HTTPStatus, errInvalidInventoryPayload.ToHTTPError())
		return
	}

	item := payload.ToEntity()
	item.ID = c.Param("id")

	updated, err := h.usecase.UpdateItem(c.Request.Context(), item)
	if err != nil {
		appErr := mapInventoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInventoryItem(updated))
}

func (h *InventoryHandler) GetItem(c *gin.Context) {
	item, err := h.usecase.GetItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapInventoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInventoryItem(item))
}

// ListItems returns the registry, optionally filtered by a brand/model
// search term or narrowed to critical items with critical=true.
func (h *InventoryHandler) ListItems(c *gin.Context) {
	var (
		list []entities.InventoryItem
		err  error
	)
	if c.Query("critical") == "true" {
		list, err = h.usecase.ListCritical(c.Request.Context())
	} else {
		list, err = h.usecase.ListItems(c.Request.Context(), c.Query("search"))
	}
	if err != nil {
		appErr := mapInventoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInventoryItems(list))
}

// AdjustStock applies a signed manual correction and journals it.
func (h *InventoryHandler) AdjustStock(c *gin.Context) {
	var payload request.AdjustStockRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInventoryPayload.HTTPStatus, errInvalidInventoryPayload.ToHTTPError())
		return
	}

	actor := middleware.ActorFromContext(c)
	item, err := h.usecase.AdjustStock(c.Request.Context(), c.Param("id"), payload.Delta, payload.Reason, actor)
	if err != nil {
		appErr := mapInventoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInventoryItem(item))
}

// ListMovements returns the journal for one item, newest first.
func (h *InventoryHandler) ListMovements(c *gin.Context) {
	movements, err := h.usecase.ListMovements(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapInventoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromStockMovements(movements))
}

func mapInventoryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidItemID), errors.Is(err, usecase.ErrInvalidItemPayload):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidAdjustment):
		return pkg.NewDomainErrorSimple("INVALID_ADJUSTMENT", "Ajuste de estoque inválido", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Inventory item not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
