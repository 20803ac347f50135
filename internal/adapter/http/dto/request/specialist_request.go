package request

// SpecialistRequest is the payload for enrolling a new specialist account.
type SpecialistRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
}
