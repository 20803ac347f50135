package request

// DeletionRequest carries the mandatory justification for removing an
// attendance record from the active views.
type DeletionRequest struct {
	Reason string `json:"reason" binding:"required"`
}
