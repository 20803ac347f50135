package handlers

import (
	"errors"
	request "iblind_pos/internal/adapter/http/dto/request"
	response "iblind_pos/internal/adapter/http/dto/response"
	"iblind_pos/internal/adapter/http/middleware"
	"iblind_pos/internal/adapter/http/session"
	"iblind_pos/internal/domain/wizard"
	"iblind_pos/internal/usecase"
	"iblind_pos/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidIntakePayload = pkg.NewDomainErrorSimple("INVALID_INTAKE_INPUT", "Invalid intake payload", http.StatusBadRequest)
	errIntakeSessionMissing = pkg.NewDomainErrorSimple("INTAKE_SESSION_NOT_FOUND", "Intake session not found", http.StatusNotFound)
	errFinalizeInFlight     = pkg.NewDomainErrorSimple("FINALIZE_IN_FLIGHT", "Finalization already in progress", http.StatusConflict)
)

// IntakeHandler drives the new-service wizard over HTTP. Each session holds
// one in-progress draft; the final advance hands the draft to the attendance
// use case and drops the session on success.
type IntakeHandler struct {
	sessions *session.Store
	usecase  usecase.IAttendanceUseCase
}

func NewIntakeHandler(sessions *session.Store, uc usecase.IAttendanceUseCase) *IntakeHandler {
	return &IntakeHandler{sessions: sessions, usecase: uc}
}

// StartIntake opens a fresh wizard session at the first step.
func (h *IntakeHandler) StartIntake(c *gin.Context) {
	sess := h.sessions.Start()
	c.JSON(http.StatusCreated, response.FromIntakeState(sess.ID, sess.Wizard.Step(), sess.Wizard.Draft()))
}

// GetIntake returns the current state of a session.
func (h *IntakeHandler) GetIntake(c *gin.Context) {
	h.withSessionState(c, func(sess *session.IntakeSession) error { return nil })
}

// PatchDraft merges a partial draft payload into the session's wizard.
// Edits never fail validation here; invalid data only blocks on advance.
func (h *IntakeHandler) PatchDraft(c *gin.Context) {
	var payload request.IntakeDraftRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidIntakePayload.HTTPStatus, errInvalidIntakePayload.ToHTTPError())
		return
	}

	h.withSessionState(c, func(sess *session.IntakeSession) error {
		sess.Wizard.UpdateDraft(payload.ApplyTo)
		return nil
	})
}

// Next advances the wizard one step. Validation failures keep the cursor in
// place and come back as a 422 with per-field messages. On the last step the
// draft is finalized instead of advancing.
func (h *IntakeHandler) Next(c *gin.Context) {
	id := c.Param("session_id")

	var (
		finalize bool
		verrs    wizard.ValidationErrors
		state    response.IntakeStateResponse
	)
	err := h.sessions.With(id, func(sess *session.IntakeSession) error {
		finalize, verrs = sess.Wizard.Next()
		state = response.FromIntakeState(sess.ID, sess.Wizard.Step(), sess.Wizard.Draft())
		return nil
	})
	if err != nil {
		c.JSON(errIntakeSessionMissing.HTTPStatus, errIntakeSessionMissing.ToHTTPError())
		return
	}
	if len(verrs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"code":    "VALIDATION_FAILED",
			"message": "Corrija os campos destacados",
			"fields":  verrs.Fields(),
		})
		return
	}
	if !finalize {
		c.JSON(http.StatusOK, state)
		return
	}

	h.finalize(c, id)
}

// Back moves the wizard one step towards the start. At the first step the
// session is cancelled and the draft discarded.
func (h *IntakeHandler) Back(c *gin.Context) {
	id := c.Param("session_id")

	var (
		cancelled bool
		state     response.IntakeStateResponse
	)
	err := h.sessions.With(id, func(sess *session.IntakeSession) error {
		cancelled = sess.Wizard.Back()
		state = response.FromIntakeState(sess.ID, sess.Wizard.Step(), sess.Wizard.Draft())
		return nil
	})
	if err != nil {
		c.JSON(errIntakeSessionMissing.HTTPStatus, errIntakeSessionMissing.ToHTTPError())
		return
	}
	if cancelled {
		h.sessions.Delete(id)
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, state)
}

// CancelIntake drops a session unconditionally, regardless of step.
func (h *IntakeHandler) CancelIntake(c *gin.Context) {
	h.sessions.Delete(c.Param("session_id"))
	c.Status(http.StatusNoContent)
}

func (h *IntakeHandler) finalize(c *gin.Context, id string) {
	draft, err := h.sessions.BeginFinalize(id)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrFinalizeInFlight):
			c.JSON(errFinalizeInFlight.HTTPStatus, errFinalizeInFlight.ToHTTPError())
		default:
			c.JSON(errIntakeSessionMissing.HTTPStatus, errIntakeSessionMissing.ToHTTPError())
		}
		return
	}

	actor := middleware.ActorFromContext(c)
	attendance, err := h.usecase.Finalize(c.Request.Context(), draft, actor)
	if err != nil && !errors.Is(err, usecase.ErrPartialCompletion) {
		h.sessions.EndFinalize(id)
		appErr := mapAttendanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	h.sessions.Delete(id)

	out := response.FinalizeResponse{Attendance: response.FromAttendance(attendance)}
	if err != nil {
		out.Warning = "Atendimento registrado, mas a baixa de estoque falhou"
	}
	c.JSON(http.StatusCreated, out)
}

func (h *IntakeHandler) withSessionState(c *gin.Context, fn func(*session.IntakeSession) error) {
	id := c.Param("session_id")

	var state response.IntakeStateResponse
	err := h.sessions.With(id, func(sess *session.IntakeSession) error {
		if err := fn(sess); err != nil {
			return err
		}
		state = response.FromIntakeState(sess.ID, sess.Wizard.Step(), sess.Wizard.Draft())
		return nil
	})
	if err != nil {
		c.JSON(errIntakeSessionMissing.HTTPStatus, errIntakeSessionMissing.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, state)
}
