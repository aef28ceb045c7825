// Package anticlust - preclustering via sequential nearest-neighbor matching.
//
// Preclustering forms small groups of mutually similar elements that are then
// forbidden from sharing an anticluster: constraining the exchange search to
// spread each matched tuple across groups both speeds up the search (smaller
// candidate sets) and raises solution quality on spread-out data.
//
// Algorithm: repeatedly pick an unmatched element (per MatchOrder policy),
// collect its groupSize−1 nearest unmatched neighbors, emit one fresh label
// for the tuple, remove it from the pool. Elements left without enough
// partners form smaller tuples down to singletons, each under a fresh label,
// so they impose no (or weaker) constraints.
//
// Contracts:
//   - Deterministic: pick policies and nearest-neighbor ties break toward
//     the lowest index; no RNG involved.
//   - With a `within` partition, matching never crosses class boundaries
//     (split matching for stimulus-selection callers).
package anticlust

import (
	"math"

	"github.com/katalvlaran/anticluster/matrix"
)

// Precluster builds a constraint partition of matched tuples.
//
//   - dist: validated symmetric distance matrix (N×N).
//   - groupSize: tuple size; the Solve wiring uses K so that each tuple can
//     donate exactly one member per anticluster.
//   - within: optional length-N class vector; when set, tuples are formed
//     only inside a class.
//   - order: pick-next policy. MatchIndexOrder (default) takes the lowest
//     unmatched index; MatchFarthestFirst takes the unmatched element with
//     the largest summed distance to the full pool (computed once up front).
//
// Returns a length-N label vector; every tuple, including leftovers and
// singletons, carries its own fresh label.
//
// Errors: matrix sentinels from validation; ErrBadMatchSize,
// ErrCategoriesLength, ErrUnknownMatchOrder.
//
// Complexity: O(n²) time (index order) plus O(n²) for the farthest-first
// precomputation; O(n) extra space.
func Precluster(dist *matrix.Dense, groupSize int, within []int, order MatchOrder) ([]int, error) {
	if err := matrix.ValidateDistances(dist, matrix.SymTol); err != nil {
		return nil, err
	}

	var n = dist.Rows()
	if groupSize < 2 || groupSize > n {
		return nil, ErrBadMatchSize
	}
	if within != nil && len(within) != n {
		return nil, ErrCategoriesLength
	}
	if order != MatchIndexOrder && order != MatchFarthestFirst {
		return nil, ErrUnknownMatchOrder
	}

	var (
		buf       = dist.Data() // flattened n×n, validated above
		labels    = make([]int, n)
		matched   = make([]bool, n)
		remaining = n
		next      int // fresh label counter
		total     []float64
		i, j      int
	)
	if order == MatchFarthestFirst {
		// Summed distance to the full pool, fixed for the whole run.
		total = make([]float64, n)
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				total[i] += buf[i*n+j]
			}
		}
	}

	var (
		pick    int
		partner int
		bestD   float64
		taken   int
	)
	for remaining > 0 {
		// Pick the next seed element per policy.
		pick = -1
		for i = 0; i < n; i++ {
			if matched[i] {
				continue
			}
			if pick < 0 {
				pick = i
				continue
			}
			if order == MatchFarthestFirst && total[i] > total[pick] {
				pick = i
			}
		}

		matched[pick] = true
		remaining--
		labels[pick] = next

		// Attach the groupSize−1 nearest eligible neighbors.
		for taken = 1; taken < groupSize; taken++ {
			partner = -1
			bestD = math.Inf(1)
			for j = 0; j < n; j++ {
				if matched[j] {
					continue
				}
				if within != nil && within[j] != within[pick] {
					continue
				}
				if buf[pick*n+j] < bestD {
					bestD = buf[pick*n+j]
					partner = j
				}
			}
			if partner < 0 {
				// Pool (or class) exhausted: the tuple stays smaller.
				break
			}
			matched[partner] = true
			remaining--
			labels[partner] = next
		}
		next++
	}

	return labels, nil
}
