package response

import (
	"time"

	"iblind_pos/internal/domain/entities"
)

type InventoryItemResponse struct {
	ID       string `json:"id"`
	SKU      string `json:"sku"`
	Brand    string `json:"brand"`
	Model    string `json:"model"`
	Type     string `json:"type"`
	Material string `json:"material"`
	Category string `json:"category"`

	CurrentStock int  `json:"current_stock"`
	MinStock     int  `json:"min_stock"`
	IsCritical   bool `json:"is_critical"`

	Supplier       string  `json:"supplier,omitempty"`
	CostPrice      float64 `json:"cost_price"`
	SuggestedPrice float64 `json:"suggested_price"`

	AssignedSpecialistID   string `json:"assigned_specialist_id,omitempty"`
	AssignedSpecialistName string `json:"assigned_specialist_name,omitempty"`

	LastEntryDate time.Time `json:"last_entry_date"`
	Observations  string    `json:"observations,omitempty"`
}

func FromInventoryItem(i entities.InventoryItem) InventoryItemResponse {
	return InventoryItemResponse{
		ID:                     i.ID,
		SKU:                    i.SKU,
		Brand:                  i.Brand,
		Model:                  i.Model,
		Type:                   i.Type,
		Material:               i.Material,
		Category:               string(i.Category),
		CurrentStock:           i.CurrentStock,
		MinStock:               i.MinStock,
		IsCritical:             i.IsCritical(),
		Supplier:               i.Supplier,
		CostPrice:              i.CostPrice,
		SuggestedPrice:         i.SuggestedPrice,
		AssignedSpecialistID:   i.AssignedSpecialistID,
		AssignedSpecialistName: i.AssignedSpecialistName,
		LastEntryDate:          i.LastEntryDate,
		Observations:           i.Observations,
	}
}

func FromInventoryItems(list []entities.InventoryItem) []InventoryItemResponse {
	out := make([]InventoryItemResponse, 0, len(list))
	for _, i := range list {
		out = append(out, FromInventoryItem(i))
	}
	return out
}

type StockMovementResponse struct {
	ID        string    `json:"id"`
	ItemID    string    `json:"item_id"`
	Type      string    `json:"type"`
	Quantity  int       `json:"quantity"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Timestamp time.Time `json:"timestamp"`
	Reason    string    `json:"reason"`

	RelatedAttendanceID string `json:"related_attendance_id,omitempty"`
}

func FromStockMovement(m entities.StockMovement) StockMovementResponse {
	return StockMovementResponse{
		ID:                  m.ID,
		ItemID:              m.ItemID,
		Type:                string(m.Type),
		Quantity:            m.Quantity,
		UserID:              m.UserID,
		UserName:            m.UserName,
		Timestamp:           m.Timestamp,
		Reason:              m.Reason,
		RelatedAttendanceID: m.RelatedAttendanceID,
	}
}

func FromStockMovements(list []entities.StockMovement) []StockMovementResponse {
	out := make([]StockMovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, FromStockMovement(m))
	}
	return out
}
