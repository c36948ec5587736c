package session_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/diceroll/internal/dice/session"
	"github.com/KirkDiggler/diceroll/internal/errors"
)

func TestAppendCreatesSessionOnFirstRoll(t *testing.T) {
	repo := session.NewMemoryRepository()
	ctx := context.Background()

	out, err := repo.Append(ctx, session.AppendInput{
		EntityID: "char_1",
		Context:  "combat",
		Roll:     session.RollRecord{ID: "roll_1"},
	})
	require.NoError(t, err)
	assert.Len(t, out.Session.Rolls, 1)
}

func TestAppendAccumulatesAcrossCalls(t *testing.T) {
	repo := session.NewMemoryRepository()
	ctx := context.Background()

	_, err := repo.Append(ctx, session.AppendInput{EntityID: "char_1", Context: "combat", Roll: session.RollRecord{ID: "roll_1"}})
	require.NoError(t, err)
	out, err := repo.Append(ctx, session.AppendInput{EntityID: "char_1", Context: "combat", Roll: session.RollRecord{ID: "roll_2"}})
	require.NoError(t, err)

	assert.Len(t, out.Session.Rolls, 2)
}

func TestGetMissingSessionReturnsNotFound(t *testing.T) {
	repo := session.NewMemoryRepository()
	_, err := repo.Get(context.Background(), session.GetInput{EntityID: "nope", Context: "nope"})
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestDeleteReportsRollsDeleted(t *testing.T) {
	repo := session.NewMemoryRepository()
	ctx := context.Background()

	_, err := repo.Append(ctx, session.AppendInput{EntityID: "char_1", Context: "combat", Roll: session.RollRecord{ID: "roll_1"}})
	require.NoError(t, err)
	_, err = repo.Append(ctx, session.AppendInput{EntityID: "char_1", Context: "combat", Roll: session.RollRecord{ID: "roll_2"}})
	require.NoError(t, err)

	out, err := repo.Delete(ctx, session.DeleteInput{EntityID: "char_1", Context: "combat"})
	require.NoError(t, err)
	assert.Equal(t, 2, out.RollsDeleted)

	_, err = repo.Get(ctx, session.GetInput{EntityID: "char_1", Context: "combat"})
	require.Error(t, err)
}

func TestDeleteMissingSessionIsNotAnError(t *testing.T) {
	repo := session.NewMemoryRepository()
	out, err := repo.Delete(context.Background(), session.DeleteInput{EntityID: "nope", Context: "nope"})
	require.NoError(t, err)
	assert.Equal(t, 0, out.RollsDeleted)
}

func TestAppendRequiresEntityAndContext(t *testing.T) {
	repo := session.NewMemoryRepository()
	ctx := context.Background()

	_, err := repo.Append(ctx, session.AppendInput{Context: "combat"})
	require.Error(t, err)

	_, err = repo.Append(ctx, session.AppendInput{EntityID: "char_1"})
	require.Error(t, err)
}
