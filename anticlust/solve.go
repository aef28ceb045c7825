// Package anticlust - unified dispatcher for the anticlustering optimizers.
//
// This file provides the canonical entry points:
//
//   - Solve: accept a self-describing table (a square, zero-diagonal,
//     symmetric, non-negative matrix is treated as distances; anything else
//     as features) and route to the requested method.
//   - SolveFeatures / SolveDistances: skip the structural detection and force
//     the representation.
//
// Design principles:
//   - Deterministic: seed routing to heuristics; no time-based randomness.
//   - Strict sentinels: only errors from types.go (matrix/ilp sentinels are
//     forwarded as-is); no fmt.Errorf where a sentinel suffices.
//   - Constraints are resolved exactly once, before any optimization starts.
//   - Stable objective: all returned values are rounded to 1e−9 to prevent
//     FP drift.
package anticlust

import (
	"github.com/katalvlaran/anticluster/ilp"
	"github.com/katalvlaran/anticluster/matrix"
)

// Solve classifies data structurally and partitions its rows into balanced
// groups per opts.
//
// Contracts:
//   - data is an N×d feature table or an N×N distance matrix, N ≥ 2.
//   - Exactly one grouping input: opts.K, or opts.Labels (which fixes K and
//     the group sizes; opts.K may restate the same K).
//   - The returned assignment has length N, values in [0,K), and group sizes
//     equal to the initial sizes (swap-based search preserves them).
//
// Errors: sentinels from types.go; matrix validation sentinels; ilp
// sentinels and solver errors (forwarded unmodified) on the exact path.
//
// Complexity: validation O(N²); one exchange pass O(N²) candidate deltas,
// each O(1) (diversity) to O(d) (variance family); the exact path is bound
// by the external solver.
func Solve(data *matrix.Dense, opts Options) (Result, error) {
	if err := validateOptionsStandalone(opts); err != nil {
		return Result{}, err
	}
	if data == nil {
		return Result{}, ErrNilData
	}

	if matrix.IsDistanceMatrix(data, matrix.SymTol) {
		return solveWith(nil, data, data, opts)
	}
	if err := matrix.ValidateFeatures(data); err != nil {
		return Result{}, err
	}

	return solveWith(data, nil, data, opts)
}

// SolveFeatures treats data as an N×d feature table regardless of shape.
func SolveFeatures(features *matrix.Dense, opts Options) (Result, error) {
	if err := validateOptionsStandalone(opts); err != nil {
		return Result{}, err
	}
	if err := matrix.ValidateFeatures(features); err != nil {
		return Result{}, err
	}

	return solveWith(features, nil, features, opts)
}

// SolveDistances treats data as an N×N distance matrix and validates it as such.
func SolveDistances(dist *matrix.Dense, opts Options) (Result, error) {
	if err := validateOptionsStandalone(opts); err != nil {
		return Result{}, err
	}
	if err := matrix.ValidateDistances(dist, matrix.SymTol); err != nil {
		return Result{}, err
	}

	return solveWith(nil, dist, dist, opts)
}

// solveWith resolves grouping and constraints once, then routes by method.
// raw is the matrix exactly as the caller supplied it (for custom objectives).
func solveWith(feats, dist, raw *matrix.Dense, opts Options) (Result, error) {
	// Stage 1 - grouping and per-vector category validation.
	var n int
	if feats != nil {
		n = feats.Rows()
	} else {
		n = dist.Rows()
	}

	k, sizes, init, err := resolveGrouping(n, opts)
	if err != nil {
		return Result{}, err
	}
	if err = validateCategories(opts.Categories, n); err != nil {
		return Result{}, err
	}

	// Stage 2 - representation demands of the objective and method.
	var needDist = opts.Objective == ObjectiveDiversity ||
		opts.Method == MethodExact || opts.Preclustering
	if needDist && dist == nil {
		if dist, err = matrix.EuclideanDistances(feats); err != nil {
			return Result{}, err
		}
	}
	if (opts.Objective == ObjectiveVariance || opts.Objective == ObjectiveKPlus) && feats == nil {
		return Result{}, ErrFeaturesRequired
	}

	// Stage 3 - resolve the constraint partition exactly once.
	var (
		classes    []int
		numClasses int
		precl      []int
	)
	if len(opts.Categories) > 0 {
		if classes, numClasses, err = MergeCategories(opts.Categories); err != nil {
			return Result{}, err
		}
	}
	if opts.Preclustering {
		if precl, err = Precluster(dist, k, classes, opts.MatchOrder); err != nil {
			return Result{}, err
		}
		if classes == nil {
			classes = precl
			numClasses = distinctCount(precl)
		} else {
			// Matched tuples are formed inside merged categories, so the
			// Cartesian merge refines the categorical partition.
			if classes, numClasses, err = MergeCategories([][]int{classes, precl}); err != nil {
				return Result{}, err
			}
		}
	}

	// Stage 4 - route by method.
	if opts.Method == MethodExact {
		return solveExact(dist, n, k, sizes, precl, opts)
	}

	p := &problem{
		n:          n,
		k:          k,
		sizes:      sizes,
		objective:  opts.Objective,
		custom:     opts.Custom,
		raw:        raw,
		classes:    classes,
		numClasses: numClasses,
		init:       init,
		eps:        opts.Eps,
	}
	switch opts.Objective {
	case ObjectiveDiversity:
		p.distFlat = dist.Data()
	case ObjectiveVariance:
		p.featFlat = feats.Data()
		p.featDim = feats.Cols()
		p.normSq = rowNormSq(p.featFlat, n, p.featDim)
	case ObjectiveKPlus:
		var aug *matrix.Dense
		if aug, err = matrix.AugmentSquaredDeviations(feats); err != nil {
			return Result{}, err
		}
		p.featFlat = aug.Data()
		p.featDim = aug.Cols()
		p.normSq = rowNormSq(p.featFlat, n, p.featDim)
	}

	assign, obj, err := runRepetitions(p, opts)
	if err != nil {
		return Result{}, err
	}

	return newResult(assign, obj, k), nil
}

// solveExact builds the 0/1 program, delegates to the external solver and
// parses the returned solution. Solver errors propagate unmodified.
func solveExact(dist *matrix.Dense, n, k int, sizes []int, precl []int, opts Options) (Result, error) {
	// The equality formulation encodes equal group sizes only; explicit
	// labels with uneven sizes cannot be honored.
	var g int
	for g = 0; g < k; g++ {
		if sizes[g] != n/k {
			return Result{}, ilp.ErrUnevenGroups
		}
	}

	prog, err := ilp.BuildDiversity(dist, k, preclusterPairs(precl))
	if err != nil {
		return Result{}, err
	}

	sol, err := opts.Solver.Solve(prog)
	if err != nil {
		return Result{}, err
	}

	assign, err := ilp.AssignmentFromSolution(prog, sol)
	if err != nil {
		return Result{}, err
	}

	// Score the returned partition with the same evaluator the heuristics use.
	eval := newDiversityEvaluator(dist.Data(), n, k, assign)

	return newResult(assign, eval.value(), k), nil
}

// preclusterPairs expands precluster labels into the forbidden same-group
// pairs of the exact formulation. Nil labels mean no extra constraints.
//
// Complexity: O(n²).
func preclusterPairs(precl []int) [][2]int {
	if precl == nil {
		return nil
	}

	var (
		pairs [][2]int
		i, j  int
	)
	for i = 0; i < len(precl); i++ {
		for j = i + 1; j < len(precl); j++ {
			if precl[i] == precl[j] {
				pairs = append(pairs, [2]int{i, j})
			}
		}
	}

	return pairs
}

// distinctCount counts the distinct values of a dense 0..m−1 label vector.
//
// Complexity: O(n).
func distinctCount(labels []int) int {
	var (
		max = -1
		i   int
	)
	for i = 0; i < len(labels); i++ {
		if labels[i] > max {
			max = labels[i]
		}
	}

	return max + 1
}

// newResult assembles the public result: rounded objective, group sizes
// recomputed from the final assignment.
func newResult(assign []int, obj float64, k int) Result {
	var (
		sizes = make([]int, k)
		i     int
	)
	for i = 0; i < len(assign); i++ {
		sizes[assign[i]]++
	}

	return Result{
		Assignment: assign,
		Objective:  round1e9(obj),
		K:          k,
		GroupSizes: sizes,
	}
}
