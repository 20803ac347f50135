package request

import (
	"testing"

	"iblind_pos/internal/domain/entities"
	"iblind_pos/internal/domain/wizard"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func TestIntakeDraftRequest_ApplyTo(t *testing.T) {
	t.Run("only non-nil fields are merged", func(t *testing.T) {
		d := wizard.Draft{ClientName: "Maria", ValueBlindagem: 150}

		r := IntakeDraftRequest{DeviceModel: strPtr("iPhone 15 Pro")}
		r.ApplyTo(&d)

		if d.ClientName != "Maria" {
			t.Fatalf("untouched field rewritten: %q", d.ClientName)
		}
		if d.DeviceModel != "iPhone 15 Pro" {
			t.Fatalf("expected device model, got %q", d.DeviceModel)
		}
		if d.ValueBlindagem != 150 {
			t.Fatalf("untouched value rewritten: %v", d.ValueBlindagem)
		}
	})

	t.Run("enums are normalized to upper case", func(t *testing.T) {
		var d wizard.Draft

		r := IntakeDraftRequest{
			Coverage:      strPtr(" full "),
			PaymentMethod: strPtr("pix"),
		}
		r.ApplyTo(&d)

		if d.Coverage != entities.CoverageFull {
			t.Fatalf("expected FULL, got %q", d.Coverage)
		}
		if d.PaymentMethod != entities.PaymentMethodPix {
			t.Fatalf("expected PIX, got %q", d.PaymentMethod)
		}
	})

	t.Run("inspection state replaces as a whole", func(t *testing.T) {
		var d wizard.Draft

		r := IntakeDraftRequest{
			State: &entities.InspectionState{
				Screen: entities.PartCondition{HasDamage: true, Notes: "trinca no canto"},
			},
			ValueOthers: floatPtr(30),
		}
		r.ApplyTo(&d)

		if !d.State.Screen.HasDamage || d.State.Screen.Notes != "trinca no canto" {
			t.Fatalf("unexpected state: %+v", d.State)
		}
		if d.ValueOthers != 30 {
			t.Fatalf("expected 30, got %v", d.ValueOthers)
		}
	})
}
