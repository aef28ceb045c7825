// Package anticlust partitions N elements into K groups that are as similar
// as possible to one another — the inverse of classical clustering, used to
// split stimulus pools or item sets into balanced subsets.
//
// It includes three built-in objectives over a feature table or a distance
// matrix, all maximized:
//
//   - ObjectiveDiversity — sum of pairwise within-group distances
//     (cluster editing). Incremental swap deltas in O(1).
//
//   - ObjectiveVariance — within-group sum of squared centroid distances.
//     Incremental swap deltas in O(d).
//
//   - ObjectiveKPlus — the variance objective on features augmented with
//     squared deviations from the grand mean, balancing means and spreads.
//
// Optimization is a greedy exchange local search: one pass (MethodExchange),
// passes to a fixed point (MethodLocalMaximum), or an exact 0/1 program
// handed to an external solver (MethodExact, diversity only). Independent
// random restarts (Options.Repetitions) run in parallel and keep the best
// final objective.
//
// Constraints: categorical label vectors are merged into one partition and
// balanced across groups; Preclustering forbids the K mutually nearest
// elements from sharing a group.
//
// Use MethodExchange for large N, MethodLocalMaximum with repetitions for
// quality, and MethodExact only for small instances (the transitivity rows
// grow as O(N³)).
package anticlust
