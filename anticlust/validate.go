// Package anticlust - validation utilities shared by the dispatcher.
//
// This file contains small, tight helpers that:
//  1. Validate Options combinations (objective ↔ method, bounds, custom fn).
//  2. Validate and normalize the K / Labels pair against N.
//  3. Validate category vectors.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - Input validation aborts before any optimization state is built.
package anticlust

// validateOptionsStandalone checks internal consistency of Options without
// referencing the data (N is unknown here).
//
// Complexity: O(1).
func validateOptionsStandalone(opts Options) error {
	if opts.Repetitions < 0 {
		return ErrBadRepetitions
	}
	if opts.Parallelism < 0 {
		return ErrBadParallelism
	}
	// Eps is the acceptance tolerance for Δ>Eps. A negative epsilon would
	// accept objective-degrading swaps and break monotonicity ⇒ reject.
	if opts.Eps < 0 {
		return ErrBadEps
	}

	switch opts.Objective {
	case ObjectiveDiversity, ObjectiveVariance, ObjectiveKPlus, ObjectiveCustom:
		// ok
	default:
		return ErrUnknownObjective
	}
	// A custom scoring function and the custom kind come as a pair.
	if (opts.Objective == ObjectiveCustom) != (opts.Custom != nil) {
		return ErrCustomObjective
	}

	switch opts.Method {
	case MethodExchange, MethodLocalMaximum, MethodExact:
		// ok
	default:
		return ErrUnknownMethod
	}

	switch opts.MatchOrder {
	case MatchIndexOrder, MatchFarthestFirst:
		// ok
	default:
		return ErrUnknownMatchOrder
	}

	if opts.Method == MethodExact {
		// Only the diversity objective admits the 0/1 linear formulation.
		if opts.Objective != ObjectiveDiversity {
			return ErrObjectiveNotLinear
		}
		if opts.Solver == nil {
			return ErrSolverUnavailable
		}
	}

	return nil
}

// resolveGrouping validates the K/Labels pair against n and returns the
// group count, the per-group sizes, and the normalized initial assignment
// (nil when only K was given).
//
// Normalization maps the distinct values of Labels, in ascending original
// value, onto 0..K−1, so callers may label groups arbitrarily.
//
// Errors: ErrBadLabels, ErrBadK.
//
// Complexity: O(n + k²) time (k distinct labels), O(n) space.
func resolveGrouping(n int, opts Options) (k int, sizes []int, init []int, err error) {
	if opts.Labels == nil {
		k = opts.K
		if k < 2 || k > n {
			return 0, nil, nil, ErrBadK
		}

		return k, groupSizesFor(n, k), nil, nil
	}

	if len(opts.Labels) != n {
		return 0, nil, nil, ErrBadLabels
	}

	// Collect distinct labels in ascending order (insertion into a sorted
	// slice; the distinct count is small).
	var (
		distinct []int
		i, p     int
		v        int
		found    bool
	)
	for i = 0; i < n; i++ {
		v = opts.Labels[i]
		found = false
		for p = 0; p < len(distinct); p++ {
			if distinct[p] == v {
				found = true

				break
			}
		}
		if !found {
			distinct = append(distinct, v)
		}
	}
	for p = 1; p < len(distinct); p++ {
		for i = p; i > 0 && distinct[i] < distinct[i-1]; i-- {
			distinct[i], distinct[i-1] = distinct[i-1], distinct[i]
		}
	}

	k = len(distinct)
	if k < 2 || k > n {
		return 0, nil, nil, ErrBadLabels
	}
	// An explicit K must agree with the labels when both are given.
	if opts.K != 0 && opts.K != k {
		return 0, nil, nil, ErrBadK
	}

	init = make([]int, n)
	sizes = make([]int, k)
	var g int
	for i = 0; i < n; i++ {
		v = opts.Labels[i]
		for g = 0; distinct[g] != v; g++ {
		}
		init[i] = g
		sizes[g]++
	}
	// Every group label must actually be populated; sizes[g]>0 holds by
	// construction since distinct values were collected from Labels.

	return k, sizes, init, nil
}

// validateCategories checks that every categorical vector has length n.
//
// Complexity: O(v).
func validateCategories(cats [][]int, n int) error {
	var v int
	for v = 0; v < len(cats); v++ {
		if len(cats[v]) != n {
			return ErrCategoriesLength
		}
	}

	return nil
}
