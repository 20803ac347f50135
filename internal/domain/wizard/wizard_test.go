package wizard

import (
	"testing"

	"iblind_pos/internal/domain/entities"
)

func completeDraft() Draft {
	return Draft{
		ClientName:      "Maria Souza",
		ClientPhone:     "11 99999-0000",
		DeviceModel:     "iPhone 15 Pro",
		DeviceIMEI:      "356789104563218",
		SpecialistID:    "spec-1",
		SpecialistName:  "João",
		Coverage:        entities.CoverageFull,
		ValueBlindagem:  150,
		ValuePelicula:   20,
		PaymentMethod:   entities.PaymentMethodPix,
		ClientSignature: "data:image/png;base64,abc",
	}
}

func TestNew(t *testing.T) {
	w := New()

	if w.Step() != StepClient {
		t.Fatalf("expected first step, got %v", w.Step())
	}
	d := w.Draft()
	if d.Coverage != entities.CoverageFull {
		t.Fatalf("expected default coverage FULL, got %s", d.Coverage)
	}
	if d.PaymentMethod != entities.PaymentMethodPix {
		t.Fatalf("expected default payment PIX, got %s", d.PaymentMethod)
	}
}

func TestDraft_TotalValue(t *testing.T) {
	d := Draft{ValueBlindagem: 150, ValuePelicula: 20, ValueOthers: 0}
	if got := d.TotalValue(); got != 170 {
		t.Fatalf("expected total 170, got %v", got)
	}
}

func TestWizard_Next(t *testing.T) {
	t.Run("client step blocks on missing fields", func(t *testing.T) {
		w := New()

		finalize, errs := w.Next()
		if finalize {
			t.Fatal("did not expect finalize")
		}
		if w.Step() != StepClient {
			t.Fatalf("cursor should not move, got %v", w.Step())
		}
		fields := errs.Fields()
		if fields["clientName"] != "Campo obrigatório" {
			t.Fatalf("unexpected clientName message: %q", fields["clientName"])
		}
		if fields["deviceModel"] != "Campo obrigatório" {
			t.Fatalf("unexpected deviceModel message: %q", fields["deviceModel"])
		}
		if fields["specialistId"] != "Selecione um especialista" {
			t.Fatalf("unexpected specialistId message: %q", fields["specialistId"])
		}
	})

	t.Run("walks every step and finalizes", func(t *testing.T) {
		w := New()
		w.UpdateDraft(func(d *Draft) { *d = completeDraft() })

		for i := 0; i < StepCount()-1; i++ {
			finalize, errs := w.Next()
			if len(errs) > 0 {
				t.Fatalf("step %d: unexpected errors: %v", i, errs)
			}
			if finalize {
				t.Fatalf("step %d: premature finalize", i)
			}
		}
		finalize, errs := w.Next()
		if len(errs) > 0 {
			t.Fatalf("unexpected errors: %v", errs)
		}
		if !finalize {
			t.Fatal("expected finalize on last step")
		}
		if w.Step() != StepSignature {
			t.Fatalf("cursor should stay on signature, got %v", w.Step())
		}
	})

	t.Run("damaged part requires a note", func(t *testing.T) {
		d := completeDraft()
		d.State.Screen = entities.PartCondition{HasDamage: true, Notes: "ok"}

		errs := ValidateStep(StepInspection, d)
		if errs.Fields()["state.tela"] != "Descreva a avaria" {
			t.Fatalf("expected damage note error, got %v", errs)
		}

		d.State.Screen.Notes = "trinca no canto"
		if errs := ValidateStep(StepInspection, d); len(errs) > 0 {
			t.Fatalf("unexpected errors: %v", errs)
		}
	})

	t.Run("coverage step requires a positive base value", func(t *testing.T) {
		d := completeDraft()
		d.ValueBlindagem = 0

		errs := ValidateStep(StepCoverage, d)
		if errs.Fields()["valueBlindagem"] != "Insira um valor válido" {
			t.Fatalf("expected value error, got %v", errs)
		}
	})
}

func TestWizard_Back(t *testing.T) {
	w := New()
	w.UpdateDraft(func(d *Draft) { *d = completeDraft() })

	if cancelled := w.Back(); !cancelled {
		t.Fatal("expected cancel at first step")
	}

	if _, errs := w.Next(); len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if cancelled := w.Back(); cancelled {
		t.Fatal("did not expect cancel")
	}
	if w.Step() != StepClient {
		t.Fatalf("expected cursor back at client step, got %v", w.Step())
	}
	if w.Draft().ClientName != "Maria Souza" {
		t.Fatal("back must keep entered data")
	}
}

func TestValidateAll(t *testing.T) {
	t.Run("complete draft passes", func(t *testing.T) {
		if errs := ValidateAll(completeDraft()); len(errs) > 0 {
			t.Fatalf("unexpected errors: %v", errs)
		}
	})

	t.Run("photo cap", func(t *testing.T) {
		d := completeDraft()
		d.Photos = []string{"a", "b", "c", "d"}

		errs := ValidateAll(d)
		if errs.Fields()["photos"] != "Máximo de 3 fotos" {
			t.Fatalf("expected photo cap error, got %v", errs)
		}
	})

	t.Run("empty draft collects errors from every step", func(t *testing.T) {
		errs := ValidateAll(Draft{})
		fields := errs.Fields()
		for _, f := range []string{"clientName", "valueBlindagem", "coverage", "paymentMethod", "clientSignature"} {
			if fields[f] == "" {
				t.Fatalf("expected error for %s, got %v", f, errs)
			}
		}
	})
}
