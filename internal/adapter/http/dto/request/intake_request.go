package request

import (
	"strings"

	"iblind_pos/internal/domain/entities"
	"iblind_pos/internal/domain/wizard"
)

// IntakeDraftRequest carries a partial wizard draft sent by the POS front-end.
//
// Every field is optional: the handler merges the payload over the draft held
// in the intake session, so each screen only submits the fields it owns.
type IntakeDraftRequest struct {
	ClientName  *string `json:"clientName"`
	ClientPhone *string `json:"clientPhone"`
	DeviceModel *string `json:"deviceModel"`
	DeviceIMEI  *string `json:"deviceIMEI"`

	SpecialistID   *string `json:"specialistId"`
	SpecialistName *string `json:"specialistName"`

	State    *entities.InspectionState `json:"state"`
	Coverage *string                   `json:"coverage"`

	UsedItemID *string `json:"usedItemId"`

	ValueBlindagem *float64 `json:"valueBlindagem"`
	ValuePelicula  *float64 `json:"valuePelicula"`
	ValueOthers    *float64 `json:"valueOthers"`

	PaymentMethod *string `json:"paymentMethod"`

	Photos          *[]string `json:"photos"`
	ClientSignature *string   `json:"clientSignature"`
}

// ApplyTo merges the non-nil fields of the payload into the draft.
func (r IntakeDraftRequest) ApplyTo(d *wizard.Draft) {
	applyString(r.ClientName, &d.ClientName)
	applyString(r.ClientPhone, &d.ClientPhone)
	applyString(r.DeviceModel, &d.DeviceModel)
	applyString(r.DeviceIMEI, &d.DeviceIMEI)
	applyString(r.SpecialistID, &d.SpecialistID)
	applyString(r.SpecialistName, &d.SpecialistName)

	if r.State != nil {
		d.State = *r.State
	}
	if r.Coverage != nil {
		d.Coverage = entities.ServiceCoverage(strings.ToUpper(strings.TrimSpace(*r.Coverage)))
	}
	applyString(r.UsedItemID, &d.UsedItemID)

	if r.ValueBlindagem != nil {
		d.ValueBlindagem = *r.ValueBlindagem
	}
	if r.ValuePelicula != nil {
		d.ValuePelicula = *r.ValuePelicula
	}
	if r.ValueOthers != nil {
		d.ValueOthers = *r.ValueOthers
	}
	if r.PaymentMethod != nil {
		d.PaymentMethod = entities.PaymentMethod(strings.ToUpper(strings.TrimSpace(*r.PaymentMethod)))
	}

	if r.Photos != nil {
		d.Photos = *r.Photos
	}
	applyString(r.ClientSignature, &d.ClientSignature)
}

func applyString(src *string, dst *string) {
	if src != nil {
		*dst = *src
	}
}
