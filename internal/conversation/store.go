// Package conversation holds the in-memory conversation store: the ordered
// message log, current workflow phase, busy flag, and session identifier.
// State lives for the life of a session only.
package conversation

import (
	"sync"
	"time"

	"github.com/finlark/onboard/internal/domain"
	"github.com/finlark/onboard/internal/reply"
	"github.com/google/uuid"
)

// Store is the single owner of conversation state. All mutation goes through
// its methods; reads return copies.
type Store struct {
	mu       sync.RWMutex
	id       string
	phase    domain.Phase
	busy     bool
	messages []domain.Message
}

// NewStore creates a conversation store at the initial phase with a fresh
// session identifier.
func NewStore() *Store {
	return &Store{
		id:    uuid.New().String(),
		phase: domain.PhaseDiscovery,
	}
}

// ID returns the session identifier.
func (s *Store) ID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.id
}

// Phase returns the current workflow phase.
func (s *Store) Phase() domain.Phase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.phase
}

// SetPhase overwrites the current phase. Used for manual overrides; normal
// progression happens via IngestResponse.
func (s *Store) SetPhase(p domain.Phase) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = p
}

// Busy reports whether a request is outstanding for this session.
func (s *Store) Busy() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.busy
}

// SetBusy sets or clears the busy flag. The store does not reject concurrent
// calls while busy; not overlapping submissions is a caller discipline.
func (s *Store) SetBusy(busy bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.busy = busy
}

// Messages returns a copy of the message log in insertion order.
func (s *Store) Messages() []domain.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Append adds a message to the log, always assigning a fresh unique
// identifier, and returns the stored message.
func (s *Store) Append(msg domain.Message) domain.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.append(msg)
}

// AppendUser records a user turn with the given text.
func (s *Store) AppendUser(text string) domain.Message {
	return s.Append(domain.Message{Role: domain.RoleUser, Content: text})
}

// IngestResponse interprets a raw model response, appends the resulting
// assistant message, and advances the phase if the reply carried a nextPhase
// tag. Monotonic progression is a policy of the upstream prompt contract,
// not enforced here.
func (s *Store) IngestResponse(raw string) domain.Message {
	rep := reply.Interpret(raw)

	msg := domain.Message{
		Role:          domain.RoleAssistant,
		Content:       rep.Message,
		UIAction:      rep.UIAction,
		ExtractedData: rep.ExtractedData,
		IsError:       rep.IsError,
	}
	if !rep.IsError {
		msg.RawResponse = raw
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	stored := s.append(msg)
	if rep.NextPhase != "" {
		s.phase = rep.NextPhase
	}
	return stored
}

// Reset clears the message log, returns the phase to the initial value, and
// regenerates the session identifier.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = nil
	s.busy = false
	s.phase = domain.PhaseDiscovery
	s.id = uuid.New().String()
}

func (s *Store) append(msg domain.Message) domain.Message {
	msg.ID = uuid.New().String()
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now()
	}
	s.messages = append(s.messages, msg)
	return msg
}
