package response

import (
	"time"

	"iblind_pos/internal/domain/entities"
)

type AttendanceResponse struct {
	ID            string    `json:"id"`
	WarrantyID    string    `json:"warranty_id"`
	Date          time.Time `json:"date"`
	WarrantyUntil time.Time `json:"warranty_until"`

	TechnicianID   string `json:"technician_id"`
	TechnicianName string `json:"technician_name"`
	SpecialistID   string `json:"specialist_id"`
	SpecialistName string `json:"specialist_name"`

	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone,omitempty"`
	DeviceModel string `json:"device_model"`
	DeviceIMEI  string `json:"device_imei,omitempty"`

	State    entities.InspectionState `json:"state"`
	Coverage string                   `json:"coverage"`

	UsedItemID string `json:"used_item_id,omitempty"`

	ValueBlindagem float64 `json:"value_blindagem"`
	ValuePelicula  float64 `json:"value_pelicula"`
	ValueOthers    float64 `json:"value_others"`
	TotalValue     float64 `json:"total_value"`

	PaymentMethod    string `json:"payment_method"`
	PaymentReference string `json:"payment_reference,omitempty"`

	Photos    []string `json:"photos,omitempty"`
	IsDeleted bool     `json:"is_deleted"`
}

func FromAttendance(a entities.Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:               a.ID,
		WarrantyID:       a.WarrantyID,
		Date:             a.Date,
		WarrantyUntil:    a.WarrantyUntil,
		TechnicianID:     a.TechnicianID,
		TechnicianName:   a.TechnicianName,
		SpecialistID:     a.SpecialistID,
		SpecialistName:   a.SpecialistName,
		ClientName:       a.ClientName,
		ClientPhone:      a.ClientPhone,
		DeviceModel:      a.DeviceModel,
		DeviceIMEI:       a.DeviceIMEI,
		State:            a.State,
		Coverage:         string(a.Coverage),
		UsedItemID:       a.UsedItemID,
		ValueBlindagem:   a.ValueBlindagem,
		ValuePelicula:    a.ValuePelicula,
		ValueOthers:      a.ValueOthers,
		TotalValue:       a.TotalValue,
		PaymentMethod:    string(a.PaymentMethod),
		PaymentReference: a.PaymentReference,
		Photos:           a.Photos,
		IsDeleted:        a.IsDeleted,
	}
}

func FromAttendances(list []entities.Attendance) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(list))
	for _, a := range list {
		out = append(out, FromAttendance(a))
	}
	return out
}

// FinalizeResponse is the completion payload. Warning is set when the record
// was persisted but a secondary effect (stock deduction) failed.
type FinalizeResponse struct {
	Attendance AttendanceResponse `json:"attendance"`
	Warning    string             `json:"warning,omitempty"`
}
