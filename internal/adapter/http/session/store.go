// Package session keeps in-progress intake wizards in process memory.
//
// Drafts are deliberately not persisted: abandoning a session loses the
// draft, and a store restart does too. Sessions are process-local, so a
// plain mutex is enough to serialize access.
package session

import (
	"errors"
	"sync"

	"iblind_pos/internal/domain/wizard"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound  = errors.New("intake session not found")
	ErrFinalizeInFlight = errors.New("finalize already in flight")
)

// IntakeSession pairs a wizard instance with its id and the double-submit
// guard flag.
type IntakeSession struct {
	ID         string
	Wizard     *wizard.Wizard
	finalizing bool
}

// Store owns all live intake sessions.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*IntakeSession
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*IntakeSession)}
}

// Start creates a fresh session with a new wizard and returns its id.
func (s *Store) Start() *IntakeSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := &IntakeSession{ID: uuid.NewString(), Wizard: wizard.New()}
	s.sessions[sess.ID] = sess
	return sess
}

// With runs fn against the named session while holding the store lock.
// Wizard access is only safe inside fn.
func (s *Store) With(id string, fn func(*IntakeSession) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	return fn(sess)
}

// BeginFinalize flips the in-flight flag for the session. A second call
// before EndFinalize returns ErrFinalizeInFlight, which is how double
// submissions are rejected while a finalize request is outstanding.
func (s *Store) BeginFinalize(id string) (wizard.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return wizard.Draft{}, ErrSessionNotFound
	}
	if sess.finalizing {
		return wizard.Draft{}, ErrFinalizeInFlight
	}
	sess.finalizing = true
	return sess.Wizard.Draft(), nil
}

// EndFinalize clears the in-flight flag after a failed finalize so the user
// can retry without re-entering data.
func (s *Store) EndFinalize(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[id]; ok {
		sess.finalizing = false
	}
}

// Delete discards a session and its draft. Used on cancel and on successful
// finalize.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
}
