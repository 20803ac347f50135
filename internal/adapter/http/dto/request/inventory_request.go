package request

import (
	"strings"

	"iblind_pos/internal/domain/entities"
)

// InventoryItemRequest is the payload for registering or editing a stock item.
type InventoryItemRequest struct {
	Brand    string `json:"brand" binding:"required"`
	Model    string `json:"model" binding:"required"`
	Type     string `json:"type"`
	Material string `json:"material"`
	Category string `json:"category"`

	CurrentStock int `json:"currentStock"`
	MinStock     int `json:"minStock"`

	Supplier       string  `json:"supplier"`
	CostPrice      float64 `json:"costPrice"`
	SuggestedPrice float64 `json:"suggestedPrice"`

	AssignedSpecialistID   string `json:"assignedSpecialistId"`
	AssignedSpecialistName string `json:"assignedSpecialistName"`

	Observations string `json:"observations"`
}

// ToEntity maps the payload onto a domain item. ID, SKU and the entry date
// are filled by the use case.
func (r InventoryItemRequest) ToEntity() entities.InventoryItem {
	return entities.InventoryItem{
		Brand:                  strings.TrimSpace(r.Brand),
		Model:                  strings.TrimSpace(r.Model),
		Type:                   strings.TrimSpace(r.Type),
		Material:               strings.TrimSpace(r.Material),
		Category:               entities.InventoryCategory(strings.ToUpper(strings.TrimSpace(r.Category))),
		CurrentStock:           r.CurrentStock,
		MinStock:               r.MinStock,
		Supplier:               strings.TrimSpace(r.Supplier),
		CostPrice:              r.CostPrice,
		SuggestedPrice:         r.SuggestedPrice,
		AssignedSpecialistID:   strings.TrimSpace(r.AssignedSpecialistID),
		AssignedSpecialistName: strings.TrimSpace(r.AssignedSpecialistName),
		Observations:           strings.TrimSpace(r.Observations),
	}
}

// AdjustStockRequest is the payload for a manual signed stock correction.
type AdjustStockRequest struct {
	Delta  int    `json:"delta" binding:"required"`
	Reason string `json:"reason" binding:"required"`
}
