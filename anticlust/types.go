// Package anticlust - core types, options and sentinel errors.
//
// The anticlust package partitions N elements into K groups that are as
// similar as possible to one another (the inverse of clustering). All
// exported configuration lives in Options; all error conditions are strict
// package-level sentinels matched via errors.Is.
package anticlust

import (
	"errors"

	"github.com/katalvlaran/anticluster/ilp"
	"github.com/katalvlaran/anticluster/matrix"
)

// Sentinel errors returned by the anticlust package.
var (
	// ErrNilData indicates that a nil data matrix was supplied.
	ErrNilData = errors.New("anticlust: data matrix is nil")

	// ErrBadK indicates K outside [2..N], or a K that contradicts the
	// distinct label count of an explicit initial assignment.
	ErrBadK = errors.New("anticlust: K must satisfy 2 <= K <= N")

	// ErrBadLabels indicates an initial assignment vector of the wrong
	// length, with fewer than two distinct values, or with an empty group.
	ErrBadLabels = errors.New("anticlust: invalid initial assignment vector")

	// ErrCategoriesLength indicates a categorical label vector whose length
	// differs from N.
	ErrCategoriesLength = errors.New("anticlust: categories length mismatch")

	// ErrBadRepetitions indicates a negative Repetitions value
	// (0 means the default of one repetition).
	ErrBadRepetitions = errors.New("anticlust: Repetitions must be non-negative")

	// ErrBadParallelism indicates a negative Parallelism value
	// (0 means one worker per available CPU).
	ErrBadParallelism = errors.New("anticlust: Parallelism must be non-negative")

	// ErrBadEps indicates a negative swap-acceptance tolerance. A negative
	// epsilon would accept non-improving swaps and break monotonicity.
	ErrBadEps = errors.New("anticlust: Eps must be non-negative")

	// ErrUnknownObjective indicates an Objective outside the supported set.
	ErrUnknownObjective = errors.New("anticlust: unknown objective")

	// ErrUnknownMethod indicates a Method outside the supported set.
	ErrUnknownMethod = errors.New("anticlust: unknown method")

	// ErrUnknownMatchOrder indicates a MatchOrder outside the supported set.
	ErrUnknownMatchOrder = errors.New("anticlust: unknown match order")

	// ErrCustomObjective indicates that Custom and ObjectiveCustom were not
	// set together: a custom scoring function requires the custom objective
	// kind, and vice versa.
	ErrCustomObjective = errors.New("anticlust: Custom must be set iff Objective is ObjectiveCustom")

	// ErrFeaturesRequired indicates that a variance-family objective was
	// requested but only a distance matrix is available; centroids need raw
	// feature vectors.
	ErrFeaturesRequired = errors.New("anticlust: objective requires a feature table, not a distance matrix")

	// ErrObjectiveNotLinear indicates that a non-diversity objective was
	// combined with MethodExact; only the diversity objective admits the 0/1
	// linear formulation.
	ErrObjectiveNotLinear = errors.New("anticlust: objective not linearizable for the exact method")

	// ErrSolverUnavailable indicates MethodExact without a configured
	// external solver.
	ErrSolverUnavailable = errors.New("anticlust: exact method requires an external solver")

	// ErrBadMatchSize indicates a preclustering group size outside [2..N].
	ErrBadMatchSize = errors.New("anticlust: match group size must satisfy 2 <= size <= N")
)

// ObjectiveKind selects the objective maximized by the optimizer.
//
//   - ObjectiveDiversity — sum over groups of pairwise within-group
//     distances (cluster editing). Works on features or a distance matrix.
//   - ObjectiveVariance — sum over elements of squared Euclidean distance to
//     the group centroid. Requires feature vectors.
//   - ObjectiveKPlus — the variance objective on the feature matrix augmented
//     with per-feature squared deviations from the grand mean; balances both
//     group means and group spreads. Requires feature vectors.
//   - ObjectiveCustom — an opaque caller-supplied scoring function
//     (Options.Custom); no incremental deltas, recomputed per candidate swap.
type ObjectiveKind int

const (
	// ObjectiveDiversity maximizes the sum of pairwise within-group distances.
	ObjectiveDiversity ObjectiveKind = iota

	// ObjectiveVariance maximizes the within-group sum of squared centroid distances.
	ObjectiveVariance

	// ObjectiveKPlus is ObjectiveVariance on the squared-deviation-augmented features.
	ObjectiveKPlus

	// ObjectiveCustom scores assignments with Options.Custom.
	ObjectiveCustom
)

// Method selects the optimization strategy.
type Method int

const (
	// MethodExchange runs exactly one greedy exchange pass over all elements.
	MethodExchange Method = iota

	// MethodLocalMaximum repeats exchange passes until a full pass accepts
	// zero swaps (a fixed point of the swap neighborhood).
	MethodLocalMaximum

	// MethodExact formulates the diversity objective as a 0/1 integer
	// program and delegates to the external Options.Solver.
	MethodExact
)

// MatchOrder selects which unmatched element preclustering picks next.
type MatchOrder int

const (
	// MatchIndexOrder (default) picks the unmatched element with the lowest
	// index. Deterministic and cheap.
	MatchIndexOrder MatchOrder = iota

	// MatchFarthestFirst picks the unmatched element with the largest summed
	// distance to the full pool, so extreme elements choose their neighbors
	// before central ones. Ties break toward the lowest index.
	MatchFarthestFirst
)

// ObjectiveFunc scores an assignment for ObjectiveCustom; larger is better.
// It receives the data exactly as supplied to Solve and a candidate
// assignment of length N with values in [0,K).
//
// The function must not retain or mutate its arguments, and must be safe for
// concurrent calls when Repetitions > 1 with parallel workers.
type ObjectiveFunc func(data *matrix.Dense, assignment []int) float64

// Options configures a Solve run.
//
//   - K            — number of groups (2..N). Ignored when Labels is set,
//     unless non-zero, in which case it must match the distinct label count.
//   - Labels       — optional length-N initial assignment; fixes K and the
//     group sizes. Without it, groups get N/K elements each and the first
//     N mod K groups one extra.
//   - Objective    — one of the ObjectiveKind constants.
//   - Custom       — scoring function, required iff Objective==ObjectiveCustom.
//   - Method       — exchange pass, local maximum, or exact (external ILP).
//   - Preclustering — forbid the K mutually nearest elements from sharing a
//     group (constraint generated by Precluster with group size K).
//   - MatchOrder   — preclustering pick-next policy.
//   - Categories   — zero or more length-N categorical label vectors; their
//     observed combinations are merged into one constraint partition and
//     balanced across groups.
//   - Repetitions  — independent restarts, best final objective wins
//     (0 ⇒ 1).
//   - Parallelism  — worker bound for parallel repetitions (0 ⇒ GOMAXPROCS).
//   - Seed         — deterministic RNG seed; 0 selects a fixed default
//     stream. Repetition r derives its own independent stream.
//   - Eps          — swap-acceptance tolerance: a swap is committed only when
//     its objective delta exceeds Eps. Must be non-negative.
//   - Solver       — external MILP collaborator, required for MethodExact.
type Options struct {
	K             int
	Labels        []int
	Objective     ObjectiveKind
	Custom        ObjectiveFunc
	Method        Method
	Preclustering bool
	MatchOrder    MatchOrder
	Categories    [][]int
	Repetitions   int
	Parallelism   int
	Seed          int64
	Eps           float64
	Solver        ilp.Solver
}

// DefaultOptions returns the canonical defaults: diversity objective, one
// exchange pass, one repetition, deterministic seed, zero tolerance.
// Callers must still set K (or Labels).
func DefaultOptions() Options {
	return Options{
		Objective:   ObjectiveDiversity,
		Method:      MethodExchange,
		MatchOrder:  MatchIndexOrder,
		Repetitions: 1,
	}
}

// Result holds the outcome of a Solve run.
type Result struct {
	// Assignment maps each element index to a group label in [0,K).
	Assignment []int

	// Objective is the final objective value, rounded to 1e-9.
	Objective float64

	// K is the number of groups.
	K int

	// GroupSizes holds the (invariant) size of each group.
	GroupSizes []int
}
