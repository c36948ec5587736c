package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/diceroll"
	dicemock "github.com/KirkDiggler/diceroll/mock"
)

// sequenceSource returns successive values from a fixed list,
// ignoring the requested range. It is a minimal hand-rolled fake; the
// generated MockRandomSource is used where call-count/argument
// expectations matter.
type sequenceSource struct {
	values []int
	next   int
}

func (s *sequenceSource) Uniform(int, int) (int, error) {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v, nil
}

func TestRollSimpleSum(t *testing.T) {
	expr, err := dice.Parse("3d6+5", nil)
	require.NoError(t, err)

	src := &sequenceSource{values: []int{2, 3, 4}}
	result, err := dice.Roll(expr, src)
	require.NoError(t, err)

	assert.Equal(t, []int{2, 3, 4}, result.DiceValues)
	assert.Equal(t, float64(14), result.Total) // 2+3+4+5
	assert.Len(t, result.KeptIndices, 3)
}

func TestRollAdvantageKeepsHighest(t *testing.T) {
	expr, err := dice.Parse("1d20 advantage", nil)
	require.NoError(t, err)

	src := &sequenceSource{values: []int{8, 15}}
	result, err := dice.Roll(expr, src)
	require.NoError(t, err)

	assert.Equal(t, []int{8, 15}, result.DiceValues)
	assert.True(t, result.KeptIndices[1])
	assert.True(t, result.DiscardedIndices[0])
	assert.Equal(t, float64(15), result.Total)
}

func TestRollDisadvantageKeepsLowest(t *testing.T) {
	expr, err := dice.Parse("1d20 disadvantage", nil)
	require.NoError(t, err)

	src := &sequenceSource{values: []int{8, 15}}
	result, err := dice.Roll(expr, src)
	require.NoError(t, err)

	assert.True(t, result.KeptIndices[0])
	assert.True(t, result.DiscardedIndices[1])
	assert.Equal(t, float64(8), result.Total)
}

func TestRollKeepHighestThree(t *testing.T) {
	expr, err := dice.Parse("4d6 keep 3 highest", nil)
	require.NoError(t, err)

	src := &sequenceSource{values: []int{1, 6, 4, 2}}
	result, err := dice.Roll(expr, src)
	require.NoError(t, err)

	// Kept: indices of values 6,4,2 (the three highest); discarded: 1 (lowest).
	assert.True(t, result.DiscardedIndices[0])
	assert.False(t, result.KeptIndices[0])
	assert.Equal(t, float64(12), result.Total) // 6+4+2
}

func TestRollSuccessCounting(t *testing.T) {
	expr, err := dice.Parse("5d10 >=8", nil)
	require.NoError(t, err)

	src := &sequenceSource{values: []int{8, 9, 3, 10, 1}}
	result, err := dice.Roll(expr, src)
	require.NoError(t, err)

	require.NotNil(t, result.SuccessCount)
	assert.Equal(t, 3, *result.SuccessCount) // 8, 9, 10 all satisfy >=8
	assert.Equal(t, float64(3), result.Total)
}

func TestRollCriticalDetectionChecksFirstDie(t *testing.T) {
	expr, err := dice.Parse("1d20 crit 20", nil)
	require.NoError(t, err)

	src := &sequenceSource{values: []int{20}}
	result, err := dice.Roll(expr, src)
	require.NoError(t, err)
	assert.True(t, result.IsCriticalSuccess)
}

func TestRollTailComparisonSetsIsSuccess(t *testing.T) {
	expr, err := dice.Parse("3d6+5>=10", nil)
	require.NoError(t, err)

	src := &sequenceSource{values: []int{6, 6, 6}}
	result, err := dice.Roll(expr, src)
	require.NoError(t, err)

	require.NotNil(t, result.IsSuccess)
	assert.True(t, *result.IsSuccess) // 6+6+6+5=23 >= 10
}

func TestRollRerollReplacesMatchingFaces(t *testing.T) {
	expr, err := dice.Parse("1d6 reroll <=1", nil)
	require.NoError(t, err)

	// First roll is a 1 (matches reroll predicate), second roll is a 4.
	src := &sequenceSource{values: []int{1, 4}}
	result, err := dice.Roll(expr, src)
	require.NoError(t, err)

	assert.Equal(t, []int{4}, result.DiceValues)
	entry, ok := result.RerollHistory[0]
	require.True(t, ok)
	assert.Equal(t, 1, entry.Count)
	assert.Equal(t, []int{1, 4}, entry.Rolls)
}

func TestRollExplosionAccumulates(t *testing.T) {
	expr, err := dice.Parse("1d6 explode >=6", nil)
	require.NoError(t, err)

	// 6 explodes once more into a 3.
	src := &sequenceSource{values: []int{6, 3}}
	result, err := dice.Roll(expr, src)
	require.NoError(t, err)

	assert.Equal(t, []int{9}, result.DiceValues) // 6+3 cumulative
	entry, ok := result.ExplosionHistory[0]
	require.True(t, ok)
	assert.Equal(t, 1, entry.Count)
	assert.Equal(t, 9, entry.CumulativeTotal)
}

func TestRollUsesRandomSourceMock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	expr, err := dice.Parse("2d6", nil)
	require.NoError(t, err)

	src := dicemock.NewMockRandomSource(ctrl)
	src.EXPECT().Uniform(1, 6).Return(3, nil)
	src.EXPECT().Uniform(1, 6).Return(5, nil)

	result, err := dice.Roll(expr, src)
	require.NoError(t, err)
	assert.Equal(t, float64(8), result.Total)
}
