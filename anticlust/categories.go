// Package anticlust - categorical constraints: merging, caps, balance.
//
// A constraint partition assigns each element a class; two elements of the
// same class should end in different groups whenever feasible. The partition
// comes from caller categories, from preclustering, or from the Cartesian
// merge of both. Feasibility degrades gracefully: a class with more members
// than K gets a per-group cap of ⌈|class|/K⌉ instead of failing the run.
//
// Design:
//   - MergeCategories is a pure function; combined class ids follow first
//     appearance in index order, so results are deterministic.
//   - constraintState keeps a group×class occupancy table so the exchange
//     engine can test partner eligibility in O(1) and commit in O(1).
package anticlust

import (
	"math/rand"
	"strconv"
)

// MergeCategories folds one or more categorical label vectors into a single
// partition. Distinct values of the result are the combinations actually
// observed in the data (not all theoretical combinations); ids are assigned
// in first-appearance scan order starting at 0.
//
// Errors: ErrCategoriesLength when the vectors are empty or disagree in length.
//
// Complexity: O(n·v) time (v = number of vectors), O(n) space.
func MergeCategories(cats [][]int) ([]int, int, error) {
	if len(cats) == 0 || len(cats[0]) == 0 {
		return nil, 0, ErrCategoriesLength
	}

	var (
		n    = len(cats[0])
		v    int
		i    int
		seen = make(map[string]int, n)
		out  = make([]int, n)
		key  []byte
		id   int
		ok   bool
		next int
	)
	for v = 1; v < len(cats); v++ {
		if len(cats[v]) != n {
			return nil, 0, ErrCategoriesLength
		}
	}

	for i = 0; i < n; i++ {
		key = key[:0]
		for v = 0; v < len(cats); v++ {
			key = strconv.AppendInt(key, int64(cats[v][i]), 10)
			key = append(key, ',')
		}
		if id, ok = seen[string(key)]; !ok {
			id = next
			seen[string(key)] = id
			next++
		}
		out[i] = id
	}

	return out, next, nil
}

// classCaps returns the per-class group cap ⌈|class|/k⌉: classes that fit (size
// ≤ k) get cap 1 (strict one-per-group), oversized classes spread as evenly
// as the group count allows.
//
// Complexity: O(n + c).
func classCaps(classes []int, numClasses, k int) []int {
	var (
		caps = make([]int, numClasses)
		i    int
	)
	for i = 0; i < len(classes); i++ {
		caps[classes[i]]++
	}
	for i = 0; i < numClasses; i++ {
		caps[i] = (caps[i] + k - 1) / k
	}

	return caps
}

// constraintState tracks group×class occupancy for the exchange engine.
type constraintState struct {
	classes    []int // class of each element (shared, read-only)
	numClasses int
	caps       []int // per-class per-group cap
	count      []int // count[g*numClasses+c] = members of class c in group g
}

// newConstraintState builds the occupancy table for an assignment.
//
// Complexity: O(n + k·c) time and space.
func newConstraintState(classes []int, numClasses, k int, assign []int) *constraintState {
	s := &constraintState{
		classes:    classes,
		numClasses: numClasses,
		caps:       classCaps(classes, numClasses, k),
		count:      make([]int, k*numClasses),
	}
	var i int
	for i = 0; i < len(assign); i++ {
		s.count[assign[i]*numClasses+classes[i]]++
	}

	return s
}

// eligible reports whether exchanging i (group g) with j (group h) respects
// the constraint partition: the partner's class must differ from i's, and
// neither element may push its class past the cap in its destination group.
//
// Complexity: O(1).
func (s *constraintState) eligible(i, j, g, h int) bool {
	var (
		ci = s.classes[i]
		cj = s.classes[j]
	)
	if ci == cj {
		return false
	}
	if s.count[h*s.numClasses+ci] >= s.caps[ci] {
		return false
	}
	if s.count[g*s.numClasses+cj] >= s.caps[cj] {
		return false
	}

	return true
}

// commitSwap records an accepted exchange of i (g→h) and j (h→g).
//
// Complexity: O(1).
func (s *constraintState) commitSwap(i, j, g, h int) {
	var (
		ci = s.classes[i]
		cj = s.classes[j]
	)
	s.count[g*s.numClasses+ci]--
	s.count[h*s.numClasses+ci]++
	s.count[h*s.numClasses+cj]--
	s.count[g*s.numClasses+cj]++
}

// groupSizesFor distributes n elements over k groups: every group gets n/k
// elements and the first n mod k groups one extra (the documented remainder
// policy).
//
// Complexity: O(k).
func groupSizesFor(n, k int) []int {
	var (
		sizes = make([]int, k)
		base  = n / k
		extra = n % k
		g     int
	)
	for g = 0; g < k; g++ {
		sizes[g] = base
		if g < extra {
			sizes[g]++
		}
	}

	return sizes
}

// randomInit draws a uniform random assignment with exactly the requested
// group sizes: a label multiset is laid out group by group and shuffled.
//
// Complexity: O(n).
func randomInit(sizes []int, rng *rand.Rand) []int {
	var (
		n int
		g int
		i int
	)
	for g = 0; g < len(sizes); g++ {
		n += sizes[g]
	}

	var (
		out = make([]int, 0, n)
	)
	for g = 0; g < len(sizes); g++ {
		for i = 0; i < sizes[g]; i++ {
			out = append(out, g)
		}
	}
	shuffleIntsInPlace(out, rng)

	return out
}

// constrainedInit draws a random assignment that honors both the group sizes
// and the constraint partition whenever feasible: classes are dealt
// largest-first, members in shuffled order, each member to the non-full
// group currently holding the fewest members of that class (ties: most
// remaining capacity, then lowest group index). Infeasible classes simply
// exceed their cap in some groups - the degrade-gracefully policy.
//
// Complexity: O(n·k + n log n).
func constrainedInit(classes []int, numClasses int, sizes []int, rng *rand.Rand) []int {
	var (
		k       = len(sizes)
		n       = len(classes)
		members = make([][]int, numClasses)
		order   = make([]int, numClasses) // class ids sorted by size, largest first
		rem     = make([]int, k)          // remaining capacity per group
		count   = make([]int, k*numClasses)
		out     = make([]int, n)
		i, g, c int
	)
	for i = 0; i < n; i++ {
		members[classes[i]] = append(members[classes[i]], i)
	}
	for c = 0; c < numClasses; c++ {
		order[c] = c
	}
	// Insertion sort by descending class size with stable id tie-break;
	// class counts are small, a O(c²) sort keeps this dependency-free.
	var (
		a, b int
	)
	for a = 1; a < numClasses; a++ {
		for b = a; b > 0 && len(members[order[b]]) > len(members[order[b-1]]); b-- {
			order[b], order[b-1] = order[b-1], order[b]
		}
	}
	copy(rem, sizes)

	var (
		best     int
		el       int
		m        int
		betterBy func(cand, cur int) bool
	)
	for a = 0; a < numClasses; a++ {
		c = order[a]
		// Shuffle within the class so repetitions explore different layouts.
		shuffleIntsInPlace(members[c], rng)
		betterBy = func(cand, cur int) bool {
			if count[cand*numClasses+c] != count[cur*numClasses+c] {
				return count[cand*numClasses+c] < count[cur*numClasses+c]
			}

			return rem[cand] > rem[cur]
		}
		for m = 0; m < len(members[c]); m++ {
			el = members[c][m]
			best = -1
			for g = 0; g < k; g++ {
				if rem[g] == 0 {
					continue
				}
				if best < 0 || betterBy(g, best) {
					best = g
				}
			}
			out[el] = best
			rem[best]--
			count[best*numClasses+c]++
		}
	}

	return out
}
