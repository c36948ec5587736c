// Package diceroller is the orchestration facade over the dice engine:
// it wires parsing, rolling, and in-memory roll history together
// behind a single Service, the way a caller (a CLI, a bot, a game
// server) would actually use this module.
package diceroller

//go:generate mockgen -destination=mock/mock_service.go -package=dicerollermock github.com/KirkDiggler/diceroll/internal/diceroller Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/diceroll"
	"github.com/KirkDiggler/diceroll/internal/dice/session"
	"github.com/KirkDiggler/diceroll/internal/errors"
	"github.com/KirkDiggler/diceroll/internal/pkg/clock"
	"github.com/KirkDiggler/diceroll/internal/pkg/idgen"
)

// Service defines the operations available on the dice engine once it
// is wired into an application: parse-only, roll-only, and
// roll-and-record against a session.
type Service interface {
	// Parse validates and statistically analyzes an expression without
	// rolling it.
	Parse(ctx context.Context, input *ParseInput) (*ParseOutput, error)

	// Roll parses and rolls an expression, without recording
	// it to any session.
	Roll(ctx context.Context, input *RollInput) (*RollOutput, error)

	// RollAndRecord rolls an expression and appends the result to the
	// named entity/context session.
	RollAndRecord(ctx context.Context, input *RollAndRecordInput) (*RollAndRecordOutput, error)

	// GetSession retrieves the roll history for an entity/context.
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)

	// ClearSession discards the roll history for an entity/context.
	ClearSession(ctx context.Context, input *ClearSessionInput) (*ClearSessionOutput, error)
}

// Config holds the dependencies for the orchestrator.
type Config struct {
	SessionRepo session.Repository
	IDGenerator idgen.Generator
	Clock       clock.Clock
	RandSource  dice.RandomSource
}

// Validate ensures all required dependencies are provided.
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.SessionRepo == nil {
		vb.RequiredField("SessionRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.RandSource == nil {
		vb.RequiredField("RandSource")
	}

	return vb.Build()
}

type orchestrator struct {
	sessionRepo session.Repository
	idGen       idgen.Generator
	clock       clock.Clock
	src         dice.RandomSource
}

// New creates a Service with the provided dependencies.
func New(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		sessionRepo: cfg.SessionRepo,
		idGen:       cfg.IDGenerator,
		clock:       cfg.Clock,
		src:         cfg.RandSource,
	}, nil
}

// ParseInput contains parameters for parsing an expression.
type ParseInput struct {
	Expression string
	Variables  map[string]int
}

// ParseOutput contains the parsed, statistically analyzed expression.
type ParseOutput struct {
	Expression *dice.ParsedExpression
}

// Parse implements Service.
func (o *orchestrator) Parse(_ context.Context, input *ParseInput) (*ParseOutput, error) {
	if input.Expression == "" {
		return nil, errors.InvalidArgument("expression is required")
	}

	expr, err := dice.Parse(input.Expression, input.Variables)
	if err != nil {
		return nil, err
	}

	return &ParseOutput{Expression: expr}, nil
}

// RollInput contains parameters for a one-off roll.
type RollInput struct {
	Expression string
	Variables  map[string]int
}

// RollOutput contains the roll result and the expression it came from.
type RollOutput struct {
	Expression *dice.ParsedExpression
	Result     *dice.RollResult
}

// Roll implements Service.
func (o *orchestrator) Roll(_ context.Context, input *RollInput) (*RollOutput, error) {
	if input.Expression == "" {
		return nil, errors.InvalidArgument("expression is required")
	}

	expr, err := dice.Parse(input.Expression, input.Variables)
	if err != nil {
		return nil, err
	}

	result, err := dice.Roll(expr, o.src)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll expression")
	}

	slog.Info("dice rolled",
		"expression", input.Expression,
		"total", result.Total,
	)

	return &RollOutput{Expression: expr, Result: result}, nil
}

// RollAndRecordInput contains parameters for a recorded roll.
type RollAndRecordInput struct {
	EntityID   string
	Context    string
	Expression string
	Variables  map[string]int
}

// RollAndRecordOutput contains the roll result and the updated session.
type RollAndRecordOutput struct {
	Result  *dice.RollResult
	Session *session.Session
}

// RollAndRecord implements Service.
func (o *orchestrator) RollAndRecord(ctx context.Context, input *RollAndRecordInput) (*RollAndRecordOutput, error) {
	if input.EntityID == "" {
		return nil, errors.InvalidArgument("entity ID is required")
	}
	if input.Context == "" {
		return nil, errors.InvalidArgument("context is required")
	}

	rollOut, err := o.Roll(ctx, &RollInput{Expression: input.Expression, Variables: input.Variables})
	if err != nil {
		return nil, err
	}

	record := session.RollRecord{
		ID:         o.idGen.Generate(),
		Expression: rollOut.Expression,
		Result:     rollOut.Result,
		RolledAt:   o.clock.Now(),
	}

	appendOut, err := o.sessionRepo.Append(ctx, session.AppendInput{
		EntityID: input.EntityID,
		Context:  input.Context,
		Roll:     record,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to record roll")
	}

	slog.Info("dice rolled and recorded",
		"entity_id", input.EntityID,
		"context", input.Context,
		"roll_id", record.ID,
		"total", rollOut.Result.Total,
	)

	return &RollAndRecordOutput{Result: rollOut.Result, Session: appendOut.Session}, nil
}

// GetSessionInput contains parameters for retrieving a session.
type GetSessionInput struct {
	EntityID string
	Context  string
}

// GetSessionOutput contains the retrieved session.
type GetSessionOutput struct {
	Session *session.Session
}

// GetSession implements Service.
func (o *orchestrator) GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	if input.EntityID == "" {
		return nil, errors.InvalidArgument("entity ID is required")
	}
	if input.Context == "" {
		return nil, errors.InvalidArgument("context is required")
	}

	out, err := o.sessionRepo.Get(ctx, session.GetInput{EntityID: input.EntityID, Context: input.Context})
	if err != nil {
		return nil, err
	}
	return &GetSessionOutput{Session: out.Session}, nil
}

// ClearSessionInput contains parameters for clearing a session.
type ClearSessionInput struct {
	EntityID string
	Context  string
}

// ClearSessionOutput reports how many rolls were discarded.
type ClearSessionOutput struct {
	RollsDeleted int
}

// ClearSession implements Service.
func (o *orchestrator) ClearSession(ctx context.Context, input *ClearSessionInput) (*ClearSessionOutput, error) {
	if input.EntityID == "" {
		return nil, errors.InvalidArgument("entity ID is required")
	}
	if input.Context == "" {
		return nil, errors.InvalidArgument("context is required")
	}

	out, err := o.sessionRepo.Delete(ctx, session.DeleteInput{EntityID: input.EntityID, Context: input.Context})
	if err != nil {
		return nil, err
	}

	slog.Info("dice session cleared",
		"entity_id", input.EntityID,
		"context", input.Context,
		"rolls_deleted", out.RollsDeleted,
	)

	return &ClearSessionOutput{RollsDeleted: out.RollsDeleted}, nil
}
