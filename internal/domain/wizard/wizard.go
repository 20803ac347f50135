// Package wizard implements the new-service intake state machine: an ordered,
// linear, step-indexed form that accumulates an attendance draft and gates
// each advance on step-local validation. It performs no I/O; finalizing the
// validated draft is the caller's job.
package wizard

import (
	"strings"

	"iblind_pos/internal/domain/entities"
)

// Step indexes the ordered intake steps. The order is fixed: client/device
// capture first, inspection before financials, signature always last.

type Step int

const (
	StepClient Step = iota
	StepInspection
	StepCoverage
	StepSignature

	stepCount
)

func (s Step) String() string {
	switch s {
	case StepClient:
		return "CLIENT"
	case StepInspection:
		return "INSPECTION"
	case StepCoverage:
		return "COVERAGE"
	case StepSignature:
		return "SIGNATURE"
	default:
		return "UNKNOWN"
	}
}

// MinDamageNoteLen is the minimum descriptive note length required when a
// part is marked damaged.
const MinDamageNoteLen = 3

// Draft is the wizard's in-progress, not-yet-persisted attendance data.
// TotalValue is always derived, never stored on the draft.
type Draft struct {
	ClientName  string `json:"clientName"`
	ClientPhone string `json:"clientPhone"`
	DeviceModel string `json:"deviceModel"`
	DeviceIMEI  string `json:"deviceIMEI"`

	SpecialistID   string `json:"specialistId"`
	SpecialistName string `json:"specialistName"`

	State    entities.InspectionState `json:"state"`
	Coverage entities.ServiceCoverage `json:"coverage"`

	UsedItemID string `json:"usedItemId"`

	ValueBlindagem float64 `json:"valueBlindagem"`
	ValuePelicula  float64 `json:"valuePelicula"`
	ValueOthers    float64 `json:"valueOthers"`

	PaymentMethod entities.PaymentMethod `json:"paymentMethod"`

	Photos          []string `json:"photos"`
	ClientSignature string   `json:"clientSignature"`
}

// TotalValue derives the monetary total from the three value fields.
func (d Draft) TotalValue() float64 {
	return d.ValueBlindagem + d.ValuePelicula + d.ValueOthers
}

// FieldError is a step-local validation failure, keyed by draft field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors aggregates the failures of one step validation.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return "no validation errors"
	}
	parts := make([]string, 0, len(v))
	for _, e := range v {
		parts = append(parts, e.Field+": "+e.Message)
	}
	return strings.Join(parts, "; ")
}

// Fields returns the failures as a field→message map for API responses.
func (v ValidationErrors) Fields() map[string]string {
	m := make(map[string]string, len(v))
	for _, e := range v {
		m[e.Field] = e.Message
	}
	return m
}

// Wizard owns one intake draft and a step cursor. It is not safe for
// concurrent use; callers serialize access per session.
type Wizard struct {
	step  Step
	draft Draft
}

// New starts a wizard at the client step with the original form defaults.
func New() *Wizard {
	return &Wizard{
		draft: Draft{
			Coverage:      entities.CoverageFull,
			PaymentMethod: entities.PaymentMethodPix,
			Photos:        []string{},
		},
	}
}

// Step returns the current step index.
func (w *Wizard) Step() Step { return w.step }

// StepCount returns the number of ordered steps.
func StepCount() int { return int(stepCount) }

// Draft returns a copy of the accumulated draft.
func (w *Wizard) Draft() Draft { return w.draft }

// UpdateDraft mutates the draft in place. Edits are unrestricted; invalid
// values only block on the next advance attempt.
func (w *Wizard) UpdateDraft(apply func(*Draft)) {
	apply(&w.draft)
}

// Next validates the current step. On failure the cursor does not move and
// the field errors are returned. On success the cursor advances, except on
// the last step where finalize=true signals that the draft is ready to be
// handed to the completion flow.
func (w *Wizard) Next() (finalize bool, errs ValidationErrors) {
	if errs = ValidateStep(w.step, w.draft); len(errs) > 0 {
		return false, errs
	}
	if w.step == stepCount-1 {
		return true, nil
	}
	w.step++
	return false, nil
}

// Back moves one step towards the start, keeping all entered data. At the
// first step it reports cancelled=true instead; discarding the draft is then
// up to the caller.
func (w *Wizard) Back() (cancelled bool) {
	if w.step == 0 {
		return true
	}
	w.step--
	return false
}

// ValidateStep runs the validation rules of a single step against the draft.
func ValidateStep(step Step, d Draft) ValidationErrors {
	var errs ValidationErrors

	switch step {
	case StepClient:
		if strings.TrimSpace(d.ClientName) == "" {
			errs = append(errs, FieldError{Field: "clientName", Message: "Campo obrigatório"})
		}
		if strings.TrimSpace(d.DeviceModel) == "" {
			errs = append(errs, FieldError{Field: "deviceModel", Message: "Campo obrigatório"})
		}
		if strings.TrimSpace(d.SpecialistID) == "" {
			errs = append(errs, FieldError{Field: "specialistId", Message: "Selecione um especialista"})
		}

	case StepInspection:
		for _, p := range d.State.Parts() {
			if p.Condition.HasDamage && len(strings.TrimSpace(p.Condition.Notes)) < MinDamageNoteLen {
				errs = append(errs, FieldError{Field: "state." + p.Name, Message: "Descreva a avaria"})
			}
		}

	case StepCoverage:
		if d.ValueBlindagem <= 0 {
			errs = append(errs, FieldError{Field: "valueBlindagem", Message: "Insira um valor válido"})
		}
		if d.Coverage == "" {
			errs = append(errs, FieldError{Field: "coverage", Message: "Selecione a cobertura"})
		}
		if d.PaymentMethod == "" {
			errs = append(errs, FieldError{Field: "paymentMethod", Message: "Selecione a forma de acerto"})
		}

	case StepSignature:
		if strings.TrimSpace(d.ClientSignature) == "" {
			errs = append(errs, FieldError{Field: "clientSignature", Message: "Assinatura obrigatória"})
		}
	}

	return errs
}

// ValidateAll runs every step's rules over a draft, plus the cross-step photo
// cap. Used by the completion flow to reject drafts that bypassed the wizard.
func ValidateAll(d Draft) ValidationErrors {
	var errs ValidationErrors
	for s := Step(0); s < stepCount; s++ {
		errs = append(errs, ValidateStep(s, d)...)
	}
	if len(d.Photos) > entities.MaxAttendancePhotos {
		errs = append(errs, FieldError{Field: "photos", Message: "Máximo de 3 fotos"})
	}
	return errs
}
