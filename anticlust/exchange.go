// Package anticlust - the exchange engine (greedy pairwise-swap local search).
//
// One full pass visits elements in index order 0..N−1. For element i the
// engine prices a swap with every element j of a different group (filtered by
// the constraint partition when one is active), tracks the best delta over
// all candidates, and commits that single best swap when it improves the
// objective by more than Eps. Swap selection is greedy-best-of-candidates per
// element, not first-improvement.
//
// Termination:
//   - MethodExchange: exactly one full pass.
//   - MethodLocalMaximum: full passes until one accepts zero swaps — a fixed
//     point of the swap neighborhood.
//
// Invariants:
//   - Group sizes never change (swaps preserve them by construction).
//   - The objective is monotonically non-decreasing across accepted swaps.
//   - Tie-breaking is deterministic: the first candidate (lowest partner
//     index) achieving the best delta wins.
//
// Complexity: one pass prices O(N²) candidates in the unconstrained case,
// each O(1) (diversity) to O(d) (variance family); unsuitable for very large
// N without preclustering, which shrinks the candidate sets.
//
// Failure modes: none fatal — a pass that finds no improving swap returns
// the assignment unchanged (valid, just non-improved).
package anticlust

// engine is the per-repetition optimizer state. The assignment slice is
// shared with the evaluator, which applies committed swaps to both.
type engine struct {
	n      int
	assign []int
	eval   evaluator
	cons   *constraintState // nil when no constraint partition is active
	eps    float64
}

// pass performs one full exchange pass and returns the number of accepted swaps.
func (e *engine) pass() int {
	var (
		accepted  int
		i, j      int
		g, h      int
		delta     float64
		bestDelta float64
		bestJ     int
	)
	for i = 0; i < e.n; i++ {
		g = e.assign[i]
		bestJ = -1

		// Scan partners in ascending index order; the group structure is
		// implicit in the assignment, so one flat scan covers every h ≠ g.
		for j = 0; j < e.n; j++ {
			h = e.assign[j]
			if h == g {
				continue
			}
			if e.cons != nil && !e.cons.eligible(i, j, g, h) {
				continue
			}
			delta = e.eval.swapDelta(i, j)
			// Strict > keeps the first best candidate (stable tie-break).
			if bestJ < 0 || delta > bestDelta {
				bestDelta = delta
				bestJ = j
			}
		}

		if bestJ >= 0 && bestDelta > e.eps {
			h = e.assign[bestJ]
			e.eval.commit(i, bestJ)
			if e.cons != nil {
				e.cons.commitSwap(i, bestJ, g, h)
			}
			accepted++
		}
	}

	return accepted
}

// run drives passes per the requested termination mode. MethodExact never
// reaches the engine; the dispatcher rejects it upstream.
func (e *engine) run(method Method) {
	if method == MethodExchange {
		e.pass()

		return
	}
	for e.pass() > 0 {
	}
}
