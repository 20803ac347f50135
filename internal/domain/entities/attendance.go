package entities

import "time"

// PaymentMethod is the settlement method chosen by the client.

type PaymentMethod string

const (
	PaymentMethodPix      PaymentMethod = "PIX"
	PaymentMethodCredito  PaymentMethod = "CREDITO"
	PaymentMethodDebito   PaymentMethod = "DEBITO"
	PaymentMethodDinheiro PaymentMethod = "DINHEIRO"
)

// ServiceCoverage identifies which surfaces of the device are protected.

type ServiceCoverage string

const (
	CoverageFull    ServiceCoverage = "FULL"
	CoverageScreen  ServiceCoverage = "SCREEN"
	CoverageBack    ServiceCoverage = "BACK"
	CoverageCameras ServiceCoverage = "CAMERAS"
)

// MaxAttendancePhotos caps the initial-state evidence photos per attendance.
const MaxAttendancePhotos = 3

// PartCondition records the inspected state of one device part.
// When HasDamage is set, Notes must describe the damage.
type PartCondition struct {
	HasDamage bool   `json:"hasDamage"`
	Notes     string `json:"notes,omitempty"`
}

// InspectionState is the fixed-shape device inspection checklist.
// The part set is fixed: display, back glass, camera lenses and buttons.
type InspectionState struct {
	Screen  PartCondition `json:"tela"`
	Back    PartCondition `json:"traseira"`
	Cameras PartCondition `json:"cameras"`
	Buttons PartCondition `json:"botoes"`
}

// NamedPart pairs a part with its wire/field name, for iteration.
type NamedPart struct {
	Name      string
	Condition PartCondition
}

// Parts returns the checklist in its fixed order.
func (s InspectionState) Parts() []NamedPart {
	return []NamedPart{
		{Name: "tela", Condition: s.Screen},
		{Name: "traseira", Condition: s.Back},
		{Name: "cameras", Condition: s.Cameras},
		{Name: "botoes", Condition: s.Buttons},
	}
}

// Attendance is one blindagem service record (a "ticket").
//
// Storage model (DynamoDB):
//   - PK: id
//
// Lifecycle:
//   - created exactly once by the finalize flow;
//   - mutated only by the deletion-audit flow (is_deleted flip);
//   - immutable otherwise. Actor names are snapshots taken at creation,
//     later renames never rewrite past records.

type Attendance struct {
	ID            string    `json:"id"`
	WarrantyID    string    `json:"warrantyId"`
	Date          time.Time `json:"date"`
	WarrantyUntil time.Time `json:"warrantyUntil"`

	TechnicianID   string `json:"technicianId"`
	TechnicianName string `json:"technicianName"`
	SpecialistID   string `json:"specialistId"`
	SpecialistName string `json:"specialistName"`

	ClientName  string `json:"clientName"`
	ClientPhone string `json:"clientPhone,omitempty"`
	DeviceModel string `json:"deviceModel"`
	DeviceIMEI  string `json:"deviceIMEI,omitempty"`

	State    InspectionState `json:"state"`
	Coverage ServiceCoverage `json:"coverage"`

	UsedItemID string `json:"usedItemId,omitempty"`

	ValueBlindagem float64 `json:"valueBlindagem"`
	ValuePelicula  float64 `json:"valuePelicula"`
	ValueOthers    float64 `json:"valueOthers"`
	TotalValue     float64 `json:"totalValue"`

	PaymentMethod    PaymentMethod `json:"paymentMethod"`
	PaymentReference string        `json:"paymentReference,omitempty"`

	ClientSignature string   `json:"clientSignature"`
	Photos          []string `json:"photos,omitempty"`

	IsDeleted bool `json:"isDeleted"`
}
