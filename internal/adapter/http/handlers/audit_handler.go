package handlers

import (
	response "iblind_pos/internal/adapter/http/dto/response"
	"iblind_pos/internal/usecase"
	"iblind_pos/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AuditHandler exposes the read-only audit trail.
type AuditHandler struct {
	usecase usecase.IAuditUseCase
}

func NewAuditHandler(uc usecase.IAuditUseCase) *AuditHandler {
	return &AuditHandler{usecase: uc}
}

func (h *AuditHandler) ListAuditLogs(c *gin.Context) {
	logs, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAuditLogs(logs))
}
