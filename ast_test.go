package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/diceroll"
)

func TestNodeEvalArithmetic(t *testing.T) {
	// (poolTotal + 2) * 3
	n := &dice.Node{
		Kind: dice.NodeBinaryOp,
		Op:   '*',
		Left: &dice.Node{
			Kind: dice.NodeBinaryOp,
			Op:   '+',
			Left: &dice.Node{Kind: dice.NodeDice},
			Right: &dice.Node{Kind: dice.NodeNumber, Value: 2},
		},
		Right: &dice.Node{Kind: dice.NodeNumber, Value: 3},
	}

	got, err := n.Eval(10)
	require.NoError(t, err)
	assert.Equal(t, float64(36), got)
}

func TestNodeEvalDivisionByZero(t *testing.T) {
	n := &dice.Node{
		Kind:  dice.NodeBinaryOp,
		Op:    '/',
		Left:  &dice.Node{Kind: dice.NodeDice},
		Right: &dice.Node{Kind: dice.NodeNumber, Value: 0},
	}

	_, err := n.Eval(5)
	require.Error(t, err)
}

func TestNodeEvalFunctions(t *testing.T) {
	floor := &dice.Node{Kind: dice.NodeFunction, FuncName: "floor", Arg: &dice.Node{Kind: dice.NodeNumber, Value: 2.7}}
	got, err := floor.Eval(0)
	require.NoError(t, err)
	assert.Equal(t, float64(2), got)

	ceil := &dice.Node{Kind: dice.NodeFunction, FuncName: "ceil", Arg: &dice.Node{Kind: dice.NodeNumber, Value: 2.1}}
	got, err = ceil.Eval(0)
	require.NoError(t, err)
	assert.Equal(t, float64(3), got)

	round := &dice.Node{Kind: dice.NodeFunction, FuncName: "round", Arg: &dice.Node{Kind: dice.NodeNumber, Value: 2.5}}
	got, err = round.Eval(0)
	require.NoError(t, err)
	assert.Equal(t, float64(2), got) // half-to-even
}

func TestNodeStatIntervalPropagatesThroughArithmetic(t *testing.T) {
	n := &dice.Node{
		Kind:  dice.NodeBinaryOp,
		Op:    '+',
		Left:  &dice.Node{Kind: dice.NodeDice},
		Right: &dice.Node{Kind: dice.NodeNumber, Value: 5},
	}

	pool := dice.Interval{Min: 3, Max: 18, Expected: 10.5}
	interval, err := n.StatInterval(pool)
	require.NoError(t, err)
	assert.Equal(t, float64(8), interval.Min)
	assert.Equal(t, float64(23), interval.Max)
	assert.InDelta(t, 15.5, interval.Expected, 0.001)
}
