package dice

import "math"

// Analyze computes the pre-roll StatisticalData for a parsed expression
// without ever rolling a die: every figure is derived from closed-form
// probability over the dice type's face set.
//
// A single decision tree picks the one mechanic that governs the
// primary dice node's Interval, in priority order: success counting,
// explosion, reroll, keep (including advantage/disadvantage), then the
// plain sum. When an expression combines several mechanics, only the
// first present in that order is reflected in the statistics.
// The resulting Interval is then propagated through the rest of the
// AST by Node.StatInterval.
func Analyze(spec DiceSpecification, mods RollModifiers, ast *Node) (StatisticalData, error) {
	pool := poolInterval(spec, mods)

	interval, err := ast.StatInterval(pool)
	if err != nil {
		return StatisticalData{}, err
	}

	return StatisticalData{
		Minimum:  interval.Min,
		Maximum:  interval.Max,
		Expected: interval.Expected,
	}, nil
}

func poolInterval(spec DiceSpecification, mods RollModifiers) Interval {
	switch {
	case mods.SuccessThreshold != nil:
		return successInterval(spec, mods)
	case mods.ExplosionThreshold != nil:
		return explosionInterval(spec, mods)
	case mods.RerollThreshold != nil:
		return rerollInterval(spec, mods)
	case mods.Keep != nil:
		return keepInterval(spec, mods)
	default:
		return sumInterval(spec, spec.Count)
	}
}

// faceStats returns the face-value min, max, and arithmetic mean of a
// dice type's face set.
func faceStats(spec DiceSpecification) (min, max, avg float64) {
	faces := spec.Faces()
	sum := 0
	lo, hi := faces[0], faces[0]
	for _, f := range faces {
		sum += f
		if f < lo {
			lo = f
		}
		if f > hi {
			hi = f
		}
	}
	return float64(lo), float64(hi), float64(sum) / float64(len(faces))
}

// sumInterval is the plain "sum of n dice" branch: the default when no
// success/explosion/reroll/keep mechanic is present.
func sumInterval(spec DiceSpecification, n int) Interval {
	min, max, avg := faceStats(spec)
	return Interval{
		Min:      min * float64(n),
		Max:      max * float64(n),
		Expected: roundTo(avg*float64(n), 3),
	}
}

// successInterval counts dice satisfying the success predicate: each
// die independently succeeds with probability p, so the aggregate is a
// Binomial(n, p) whose expectation is n*p and whose support is [0, n].
func successInterval(spec DiceSpecification, mods RollModifiers) Interval {
	p := faceProbability(spec, mods.SuccessOperator, *mods.SuccessThreshold)
	n := float64(spec.Count)
	return Interval{
		Min:      0,
		Max:      n,
		Expected: roundTo(n*p, 3),
	}
}

// explosionInterval accounts for a die that re-rolls and adds an extra
// roll whenever it satisfies the explosion predicate, up to
// mods.ExplosionLimit additional rolls. The per-die expectation is the
// truncated geometric series E1*(1 + q + q^2 + ... + q^limit); the
// per-die maximum assumes every allowed explosion hits the top face.
func explosionInterval(spec DiceSpecification, mods RollModifiers) Interval {
	min, max, avg := faceStats(spec)
	q := faceProbability(spec, mods.ExplosionOperator, *mods.ExplosionThreshold)

	extraRolls := float64(mods.ExplosionLimit)
	var seriesSum float64
	if q >= 1 {
		seriesSum = extraRolls + 1
	} else {
		// sum_{k=0}^{limit} q^k
		seriesSum = (1 - math.Pow(q, extraRolls+1)) / (1 - q)
	}

	perDieExpected := avg * seriesSum
	perDieMax := max * (extraRolls + 1)

	n := float64(spec.Count)
	return Interval{
		Min:      min * n,
		Max:      perDieMax * n,
		Expected: roundTo(perDieExpected*n, 3),
	}
}

// rerollInterval approximates "reroll while the predicate matches, up
// to the configured limit" as converging on the faces that never match
// the predicate — exact once the limit is large enough that the
// probability of exhausting it is negligible, which is the default
// (100) and the common case.
func rerollInterval(spec DiceSpecification, mods RollModifiers) Interval {
	faces := spec.Faces()
	var kept []int
	for _, f := range faces {
		if !mods.RerollOperator.Satisfies(f, *mods.RerollThreshold) {
			kept = append(kept, f)
		}
	}
	if len(kept) == 0 {
		// Validation should have rejected an all-matching predicate; fall
		// back to the unmodified face set rather than divide by zero.
		kept = faces
	}

	lo, hi, sum := kept[0], kept[0], 0
	for _, f := range kept {
		sum += f
		if f < lo {
			lo = f
		}
		if f > hi {
			hi = f
		}
	}
	avg := float64(sum) / float64(len(kept))

	n := float64(spec.Count)
	return Interval{
		Min:      float64(lo) * n,
		Max:      float64(hi) * n,
		Expected: roundTo(avg*n, 3),
	}
}

// keepInterval approximates the sum of the N highest (or lowest) of M
// dice via the continuous-uniform order-statistic approximation
// E[X_(i)] = (sides+1)*i/(M+1), summed over the kept ranks (i counted
// from the lowest roll up). This is exact for the bounds (min/max
// always come from the extreme kept ranks) and a close approximation
// for the expectation, matching 1d20 advantage's expected 14.0 and
// 4d6 keep 3 highest's expected 12.6.
func keepInterval(spec DiceSpecification, mods RollModifiers) Interval {
	m := spec.Count
	if mods.AdvantageCount != nil {
		m += *mods.AdvantageCount
	}
	keep := mods.Keep
	n := keep.N
	if n > m {
		n = m
	}

	faceMin, faceMax, _ := faceStats(spec)
	sidesPlusOne := float64(spec.Sides) + 1

	var lo, hi int
	var expected float64
	if keep.Highest {
		lo, hi = m-n+1, m
	} else {
		lo, hi = 1, n
	}
	for i := lo; i <= hi; i++ {
		expected += faceMin - 1 + sidesPlusOne*float64(i)/float64(m+1)
	}

	return Interval{
		Min:      faceMin * float64(n),
		Max:      faceMax * float64(n),
		Expected: roundTo(expected, 3),
	}
}

// faceProbability returns the fraction of a dice type's faces
// satisfying op threshold.
func faceProbability(spec DiceSpecification, op CompareOp, threshold int) float64 {
	faces := spec.Faces()
	count := 0
	for _, f := range faces {
		if op.Satisfies(f, threshold) {
			count++
		}
	}
	return float64(count) / float64(len(faces))
}
