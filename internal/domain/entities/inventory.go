package entities

import "time"

// InventoryCategory classifies consumables tracked by the stock module.

type InventoryCategory string

const (
	CategoryPelicula  InventoryCategory = "PELICULA"
	CategoryCapa      InventoryCategory = "CAPA"
	CategoryAcessorio InventoryCategory = "ACESSORIO"
)

// MovementType tags a StockMovement entry.
//
// AUTO_DEDUCTION is reserved for the finalize flow; manual adjustments use
// ADJUST with a signed quantity.

type MovementType string

const (
	MovementIn            MovementType = "IN"
	MovementOut           MovementType = "OUT"
	MovementAdjust        MovementType = "ADJUST"
	MovementAutoDeduction MovementType = "AUTO_DEDUCTION"
)

// InventoryItem is a protective film/case/accessory in stock.
//
// Storage model (DynamoDB):
//   - PK: id
//
// CurrentStock is only mutated through server-side atomic updates, never
// read-modify-write, and never goes below zero.

type InventoryItem struct {
	ID       string `json:"id"`
	SKU      string `json:"sku"`
	Brand    string `json:"brand"`
	Model    string `json:"model"`
	Type     string `json:"type"`
	Material string `json:"material"`

	Category InventoryCategory `json:"category"`

	CurrentStock int `json:"currentStock"`
	MinStock     int `json:"minStock"`

	Supplier       string  `json:"supplier,omitempty"`
	CostPrice      float64 `json:"costPrice"`
	SuggestedPrice float64 `json:"suggestedPrice"`

	AssignedSpecialistID   string `json:"assignedSpecialistId,omitempty"`
	AssignedSpecialistName string `json:"assignedSpecialistName,omitempty"`

	LastEntryDate time.Time `json:"lastEntryDate"`
	Observations  string    `json:"observations,omitempty"`
}

// IsCritical reports whether the item sits at or below its alert threshold.
func (i InventoryItem) IsCritical() bool {
	return i.CurrentStock <= i.MinStock
}

// StockMovement journals one stock change on an item. Entries are immutable.
type StockMovement struct {
	ID       string       `json:"id"`
	ItemID   string       `json:"itemId"`
	Type     MovementType `json:"type"`
	Quantity int          `json:"quantity"`

	UserID   string `json:"userId"`
	UserName string `json:"userName"`

	Timestamp time.Time `json:"timestamp"`
	Reason    string    `json:"reason"`

	RelatedAttendanceID string `json:"relatedAttendanceId,omitempty"`
}
