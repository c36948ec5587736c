package dice

import (
	"math"

	"github.com/KirkDiggler/diceroll/internal/errors"
)

// NodeKind tags the variant held by a Node.
type NodeKind int

// Recognized AST node kinds.
const (
	NodeNumber NodeKind = iota
	NodeDice
	NodeBinaryOp
	NodeFunction
)

// Node is the arithmetic AST. Exactly one NodeDice appears across the
// whole AST of any accepted expression (the "primary pool"); its
// evaluated value is the post-mechanics pool total the roll engine
// substitutes in.
type Node struct {
	Kind NodeKind

	// NodeNumber
	Value float64

	// NodeDice
	DiceSpec DiceSpecification

	// NodeBinaryOp
	Op    byte
	Left  *Node
	Right *Node

	// NodeFunction: FuncName is normalized ("ceiling" -> "ceil").
	FuncName string
	Arg      *Node
}

// Eval evaluates the AST, substituting poolTotal for the sole NodeDice
// leaf. Division by zero is a ValidationError surfaced at evaluation
// time (should be unreachable after validation).
func (n *Node) Eval(poolTotal float64) (float64, error) {
	switch n.Kind {
	case NodeNumber:
		return n.Value, nil
	case NodeDice:
		return poolTotal, nil
	case NodeBinaryOp:
		l, err := n.Left.Eval(poolTotal)
		if err != nil {
			return 0, err
		}
		r, err := n.Right.Eval(poolTotal)
		if err != nil {
			return 0, err
		}
		switch n.Op {
		case '+':
			return l + r, nil
		case '-':
			return l - r, nil
		case '*':
			return l * r, nil
		case '/':
			if r == 0 {
				return 0, errors.Validation("arithmetic", "division by zero")
			}
			return l / r, nil
		default:
			return 0, errors.Validationf("operator", "unknown operator %q", n.Op)
		}
	case NodeFunction:
		arg, err := n.Arg.Eval(poolTotal)
		if err != nil {
			return 0, err
		}
		return applyFunc(n.FuncName, arg), nil
	default:
		return 0, errors.Validation("arithmetic", "unknown AST node")
	}
}

func applyFunc(name string, x float64) float64 {
	switch name {
	case "floor":
		return math.Floor(x)
	case "ceil":
		return math.Ceil(x)
	case "round":
		return math.RoundToEven(x)
	default:
		return x
	}
}

// Interval is the {min, max, expected} triple the statistical analyzer
// propagates through the AST via interval arithmetic.
type Interval struct {
	Min      float64
	Max      float64
	Expected float64
}

// constantInterval returns a degenerate interval for a literal value.
func constantInterval(v float64) Interval {
	return Interval{Min: v, Max: v, Expected: v}
}

// guardDenominator applies a pragmatic division guard: max(denom, 1)
// in magnitude, preserving sign, so a denominator
// interval that (improperly) spans or touches zero never divides by
// zero.
func guardDenominator(x float64) float64 {
	if x >= 0 {
		if x < 1 {
			return 1
		}
		return x
	}
	if x > -1 {
		return -1
	}
	return x
}

// StatInterval propagates pool (the Interval already computed for the
// sole Dice node by the statistical analyzer's decision tree) through
// the rest of the AST using recursive interval arithmetic.
func (n *Node) StatInterval(pool Interval) (Interval, error) {
	switch n.Kind {
	case NodeNumber:
		return constantInterval(n.Value), nil
	case NodeDice:
		return pool, nil
	case NodeBinaryOp:
		l, err := n.Left.StatInterval(pool)
		if err != nil {
			return Interval{}, err
		}
		r, err := n.Right.StatInterval(pool)
		if err != nil {
			return Interval{}, err
		}
		return combine(n.Op, l, r)
	case NodeFunction:
		arg, err := n.Arg.StatInterval(pool)
		if err != nil {
			return Interval{}, err
		}
		return Interval{
			Min:      applyFunc(n.FuncName, arg.Min),
			Max:      applyFunc(n.FuncName, arg.Max),
			Expected: roundTo(applyFunc(n.FuncName, arg.Expected), 3),
		}, nil
	default:
		return Interval{}, errors.Validation("arithmetic", "unknown AST node")
	}
}

func combine(op byte, l, r Interval) (Interval, error) {
	switch op {
	case '+':
		return Interval{
			Min:      l.Min + r.Min,
			Max:      l.Max + r.Max,
			Expected: roundTo(l.Expected+r.Expected, 3),
		}, nil
	case '-':
		return Interval{
			Min:      l.Min - r.Max,
			Max:      l.Max - r.Min,
			Expected: roundTo(l.Expected-r.Expected, 3),
		}, nil
	case '*':
		corners := []float64{l.Min * r.Min, l.Min * r.Max, l.Max * r.Min, l.Max * r.Max}
		return Interval{
			Min:      minOf(corners),
			Max:      maxOf(corners),
			Expected: roundTo(l.Expected*r.Expected, 3),
		}, nil
	case '/':
		return Interval{
			Min:      l.Min / guardDenominator(r.Max),
			Max:      l.Max / guardDenominator(r.Min),
			Expected: roundTo(l.Expected/guardDenominator(r.Expected), 3),
		}, nil
	default:
		return Interval{}, errors.Validationf("operator", "unknown operator %q", op)
	}
}

func minOf(xs []float64) float64 {
	m := xs[0]
	for _, x := range xs[1:] {
		if x < m {
			m = x
		}
	}
	return m
}

func maxOf(xs []float64) float64 {
	m := xs[0]
	for _, x := range xs[1:] {
		if x > m {
			m = x
		}
	}
	return m
}

// roundTo rounds half-away-from-zero to the given number of decimals.
func roundTo(v float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	if v >= 0 {
		return math.Floor(v*scale+0.5) / scale
	}
	return math.Ceil(v*scale-0.5) / scale
}
