package response

import (
	"iblind_pos/internal/domain/entities"
	"iblind_pos/internal/usecase"
)

type SpecialistResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func FromUser(u entities.User) SpecialistResponse {
	return SpecialistResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  string(u.Role),
	}
}

func FromUsers(list []entities.User) []SpecialistResponse {
	out := make([]SpecialistResponse, 0, len(list))
	for _, u := range list {
		out = append(out, FromUser(u))
	}
	return out
}

type SpecialistPerformanceResponse struct {
	SpecialistID string  `json:"specialist_id"`
	Count        int     `json:"count"`
	Revenue      float64 `json:"revenue"`
}

func FromSpecialistPerformance(p usecase.SpecialistPerformance) SpecialistPerformanceResponse {
	return SpecialistPerformanceResponse{
		SpecialistID: p.SpecialistID,
		Count:        p.Count,
		Revenue:      p.Revenue,
	}
}
