package session

import (
	"errors"
	"testing"

	"iblind_pos/internal/domain/wizard"
)

func TestStore_StartAndWith(t *testing.T) {
	s := NewStore()
	sess := s.Start()
	if sess.ID == "" {
		t.Fatal("expected session id")
	}

	err := s.With(sess.ID, func(sess *IntakeSession) error {
		sess.Wizard.UpdateDraft(func(d *wizard.Draft) { d.ClientName = "Maria" })
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = s.With(sess.ID, func(sess *IntakeSession) error {
		if sess.Wizard.Draft().ClientName != "Maria" {
			t.Fatal("draft edit lost")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := s.With("nope", func(*IntakeSession) error { return nil }); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestStore_FinalizeGuard(t *testing.T) {
	s := NewStore()
	sess := s.Start()

	if _, err := s.BeginFinalize(sess.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.BeginFinalize(sess.ID); !errors.Is(err, ErrFinalizeInFlight) {
		t.Fatalf("expected ErrFinalizeInFlight, got %v", err)
	}

	s.EndFinalize(sess.ID)
	if _, err := s.BeginFinalize(sess.ID); err != nil {
		t.Fatalf("expected retry after EndFinalize, got %v", err)
	}
}

func TestStore_Delete(t *testing.T) {
	s := NewStore()
	sess := s.Start()
	s.Delete(sess.ID)

	if _, err := s.BeginFinalize(sess.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}
