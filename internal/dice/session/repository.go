// Package session provides an in-memory store for dice roll history,
// grouped by entity and context. There is no persistence layer: a
// Session lives only as long as the owning process, matching the
// explicit non-goal against durable storage.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/KirkDiggler/diceroll"
	"github.com/KirkDiggler/diceroll/internal/errors"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=sessionmock github.com/KirkDiggler/diceroll/internal/dice/session Repository

// RollRecord is a single recorded roll: the expression that produced it,
// the concrete result, and when it happened.
type RollRecord struct {
	ID         string
	Expression *dice.ParsedExpression
	Result     *dice.RollResult
	RolledAt   time.Time
}

// Session groups related RollRecords under an entity and context (e.g.
// EntityID "char_789", Context "ability_scores").
type Session struct {
	EntityID string
	Context  string
	Rolls    []RollRecord
}

// key identifies a session by its entity and context.
type key struct {
	entityID string
	context  string
}

// AppendInput contains parameters for appending a roll to a session,
// creating the session if it does not yet exist.
type AppendInput struct {
	EntityID string
	Context  string
	Roll     RollRecord
}

// AppendOutput contains the result of appending a roll.
type AppendOutput struct {
	Session *Session
}

// GetInput contains parameters for retrieving a session.
type GetInput struct {
	EntityID string
	Context  string
}

// GetOutput contains the result of retrieving a session.
type GetOutput struct {
	Session *Session
}

// DeleteInput contains parameters for clearing a session.
type DeleteInput struct {
	EntityID string
	Context  string
}

// DeleteOutput contains the result of clearing a session.
type DeleteOutput struct {
	RollsDeleted int
}

// Repository defines the interface for dice roll session storage.
type Repository interface {
	// Append records a roll, creating the session if needed.
	Append(ctx context.Context, input AppendInput) (*AppendOutput, error)

	// Get retrieves a session by entity ID and context.
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete clears a session.
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// memoryRepository is a process-local, goroutine-safe Repository.
type memoryRepository struct {
	mu       sync.Mutex
	sessions map[key]*Session
}

// NewMemoryRepository returns a Repository backed by an in-memory map.
func NewMemoryRepository() Repository {
	return &memoryRepository{sessions: make(map[key]*Session)}
}

func (r *memoryRepository) Append(_ context.Context, input AppendInput) (*AppendOutput, error) {
	if input.EntityID == "" {
		return nil, errors.InvalidArgument("entity ID is required")
	}
	if input.Context == "" {
		return nil, errors.InvalidArgument("context is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	k := key{entityID: input.EntityID, context: input.Context}
	sess, ok := r.sessions[k]
	if !ok {
		sess = &Session{EntityID: input.EntityID, Context: input.Context}
		r.sessions[k] = sess
	}
	sess.Rolls = append(sess.Rolls, input.Roll)

	return &AppendOutput{Session: sess}, nil
}

func (r *memoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sess, ok := r.sessions[key{entityID: input.EntityID, context: input.Context}]
	if !ok {
		return nil, errors.NotFoundf("no session for entity %q context %q", input.EntityID, input.Context)
	}
	return &GetOutput{Session: sess}, nil
}

func (r *memoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := key{entityID: input.EntityID, context: input.Context}
	sess, ok := r.sessions[k]
	if !ok {
		return &DeleteOutput{RollsDeleted: 0}, nil
	}
	delete(r.sessions, k)
	return &DeleteOutput{RollsDeleted: len(sess.Rolls)}, nil
}
