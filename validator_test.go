package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/diceroll"
)

func TestValidateDiceSpecRejectsOutOfRangeCount(t *testing.T) {
	v := dice.NewValidator()
	err := v.ValidateDiceSpec(dice.DiceSpecification{Count: 0, Sides: 6})
	require.Error(t, err)

	err = v.ValidateDiceSpec(dice.DiceSpecification{Count: 101, Sides: 6})
	require.Error(t, err)
}

func TestValidateDiceSpecRejectsOutOfRangeSides(t *testing.T) {
	v := dice.NewValidator()
	err := v.ValidateDiceSpec(dice.DiceSpecification{Count: 1, Sides: 1})
	require.Error(t, err)

	err = v.ValidateDiceSpec(dice.DiceSpecification{Count: 1, Sides: 101})
	require.Error(t, err)
}

func TestValidateDiceSpecAcceptsFudgeAndPercentile(t *testing.T) {
	v := dice.NewValidator()
	assert.NoError(t, v.ValidateDiceSpec(dice.DiceSpecification{Count: 4, Sides: 3, Type: dice.Fudge}))
	assert.NoError(t, v.ValidateDiceSpec(dice.DiceSpecification{Count: 1, Sides: 100, Type: dice.Percentile}))
}

func TestValidateKeepWithinPool(t *testing.T) {
	v := dice.NewValidator()
	assert.NoError(t, v.ValidateKeep(&dice.KeepClause{Highest: true, N: 3}, 4))
	assert.Error(t, v.ValidateKeep(&dice.KeepClause{Highest: true, N: 5}, 4))
	assert.NoError(t, v.ValidateKeep(nil, 4))
}

func TestValidateCriticalOutsideFaceRange(t *testing.T) {
	v := dice.NewValidator()
	spec := dice.DiceSpecification{Count: 1, Sides: 20}
	assert.NoError(t, v.ValidateCritical("critical", spec, 20))
	assert.Error(t, v.ValidateCritical("critical", spec, 21))
	assert.Error(t, v.ValidateCritical("critical", spec, 0))
}

func TestValidateParensBalance(t *testing.T) {
	v := dice.NewValidator()

	balanced, err := dice.Tokenize("(1+2)")
	require.NoError(t, err)
	assert.NoError(t, v.ValidateParens(balanced))

	unopened, err := dice.Tokenize("1+2)")
	require.NoError(t, err)
	assert.Error(t, v.ValidateParens(unopened))

	unclosed, err := dice.Tokenize("(1+2")
	require.NoError(t, err)
	assert.Error(t, v.ValidateParens(unclosed))
}
