package response

import (
	"iblind_pos/internal/domain/wizard"
)

// IntakeStateResponse mirrors one intake session: the step cursor, the draft
// as entered so far and the derived running total.
type IntakeStateResponse struct {
	SessionID  string       `json:"session_id"`
	Step       int          `json:"step"`
	StepName   string       `json:"step_name"`
	StepCount  int          `json:"step_count"`
	Draft      wizard.Draft `json:"draft"`
	TotalValue float64      `json:"total_value"`
}

func FromIntakeState(sessionID string, step wizard.Step, draft wizard.Draft) IntakeStateResponse {
	return IntakeStateResponse{
		SessionID:  sessionID,
		Step:       int(step),
		StepName:   step.String(),
		StepCount:  wizard.StepCount(),
		Draft:      draft,
		TotalValue: draft.TotalValue(),
	}
}
