package dice

// Roll executes a ParsedExpression against src, producing a fresh
// RollResult via a nine-step pipeline: pool roll, reroll, explosion,
// keep selection, aggregate, success counting, AST evaluation,
// critical detection, comparison.
func Roll(expr *ParsedExpression, src RandomSource) (*RollResult, error) {
	spec := expr.Spec
	mods := expr.Modifiers

	poolSize := spec.Count
	if mods.AdvantageCount != nil {
		poolSize += *mods.AdvantageCount
	}

	values := make([]int, poolSize)
	rerollHistory := make(map[int]RerollHistoryEntry)
	explosionHistory := make(map[int]ExplosionHistoryEntry)

	for i := 0; i < poolSize; i++ {
		v, err := rollFace(spec, src)
		if err != nil {
			return nil, err
		}

		if mods.RerollThreshold != nil {
			v, rerollHistory[i], err = applyReroll(spec, mods, src, v)
			if err != nil {
				return nil, err
			}
		}

		if mods.ExplosionThreshold != nil {
			v, explosionHistory[i], err = applyExplosion(spec, mods, src, v)
			if err != nil {
				return nil, err
			}
		}

		values[i] = v
	}

	keptIndices, discardedIndices := selectKept(mods, values)

	var total float64
	var successCount *int
	if mods.SuccessThreshold != nil {
		count := 0
		for idx := range keptIndices {
			if mods.SuccessOperator.Satisfies(values[idx], *mods.SuccessThreshold) {
				count++
			}
		}
		successCount = &count
		total = float64(count)
	} else {
		sum := 0
		for idx := range keptIndices {
			sum += values[idx]
		}
		total = float64(sum)
	}

	finalTotal, err := expr.AST.Eval(total)
	if err != nil {
		return nil, err
	}

	isCritSuccess := false
	isCritFailure := false
	if len(values) > 0 {
		firstDie := values[0]
		if mods.CriticalSuccess != nil && firstDie == *mods.CriticalSuccess {
			isCritSuccess = true
		}
		if mods.CriticalFailure != nil && firstDie == *mods.CriticalFailure {
			isCritFailure = true
		}
	}

	var isSuccess *bool
	if expr.ComparisonThreshold != nil {
		ok := expr.ComparisonOp.Satisfies(int(finalTotal), *expr.ComparisonThreshold)
		isSuccess = &ok
	}

	return &RollResult{
		Expression:        expr,
		Total:             finalTotal,
		DiceValues:        values,
		KeptIndices:       keptIndices,
		DiscardedIndices:  discardedIndices,
		SuccessCount:      successCount,
		IsCriticalSuccess: isCritSuccess,
		IsCriticalFailure: isCritFailure,
		IsSuccess:         isSuccess,
		RerollHistory:     rerollHistory,
		ExplosionHistory:  explosionHistory,
	}, nil
}

func rollFace(spec DiceSpecification, src RandomSource) (int, error) {
	return src.Uniform(spec.faceMin(), spec.faceMax())
}

func applyReroll(spec DiceSpecification, mods RollModifiers, src RandomSource, v int) (int, RerollHistoryEntry, error) {
	entry := RerollHistoryEntry{Rolls: []int{v}}
	for entry.Count < mods.RerollLimit && mods.RerollOperator.Satisfies(v, *mods.RerollThreshold) {
		next, err := rollFace(spec, src)
		if err != nil {
			return 0, entry, err
		}
		v = next
		entry.Count++
		entry.Rolls = append(entry.Rolls, v)
	}
	if entry.Count == mods.RerollLimit && mods.RerollOperator.Satisfies(v, *mods.RerollThreshold) {
		entry.LimitReached = true
	}
	return v, entry, nil
}

func applyExplosion(spec DiceSpecification, mods RollModifiers, src RandomSource, v int) (int, ExplosionHistoryEntry, error) {
	entry := ExplosionHistoryEntry{Rolls: []int{v}, CumulativeTotal: v}
	for entry.Count < mods.ExplosionLimit && mods.ExplosionOperator.Satisfies(v, *mods.ExplosionThreshold) {
		next, err := rollFace(spec, src)
		if err != nil {
			return 0, entry, err
		}
		v = next
		entry.Count++
		entry.Rolls = append(entry.Rolls, v)
		entry.CumulativeTotal += v
	}
	if entry.Count == mods.ExplosionLimit && mods.ExplosionOperator.Satisfies(v, *mods.ExplosionThreshold) {
		entry.LimitReached = true
	}
	return entry.CumulativeTotal, entry, nil
}

// selectKept applies the keep-highest/keep-lowest clause (if any),
// returning the set of indices into values contributing to the
// aggregate and the set discarded.
func selectKept(mods RollModifiers, values []int) (kept, discarded map[int]bool) {
	kept = make(map[int]bool, len(values))
	discarded = make(map[int]bool)

	if mods.Keep == nil {
		for i := range values {
			kept[i] = true
		}
		return kept, discarded
	}

	order := make([]int, len(values))
	for i := range order {
		order[i] = i
	}
	// Stable sort by value (descending for keep-highest, ascending for
	// keep-lowest) so ties keep the earliest-rolled index, matching a
	// deterministic, reproducible keep selection.
	ranksBefore := func(a, b int) bool {
		if mods.Keep.Highest {
			return a > b
		}
		return a < b
	}
	for i := 1; i < len(order); i++ {
		for j := i; j > 0 && ranksBefore(values[order[j]], values[order[j-1]]); j-- {
			order[j], order[j-1] = order[j-1], order[j]
		}
	}

	n := mods.Keep.N
	if n > len(order) {
		n = len(order)
	}

	selected := order[:n]

	selectedSet := make(map[int]bool, len(selected))
	for _, idx := range selected {
		selectedSet[idx] = true
	}

	for i := range values {
		if selectedSet[i] {
			kept[i] = true
		} else {
			discarded[i] = true
		}
	}
	return kept, discarded
}
