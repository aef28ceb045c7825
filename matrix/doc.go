// Package matrix offers the dense numeric containers used by the
// anticlustering core.
//
// The matrix package provides:
//
//   - Dense, a cache-friendly row-major float64 matrix with safe At/Set
//     accessors (errors, never panics on user input).
//   - EuclideanDistances for deriving a symmetric pairwise distance matrix
//     from an N×d feature table.
//   - IsDistanceMatrix / ValidateDistances / ValidateFeatures to classify and
//     validate self-describing tabular input (a zero diagonal plus symmetry
//     distinguishes a distance matrix from a feature table).
//   - Column statistics (ColumnMeans) and the k-plus augmentation
//     (AugmentSquaredDeviations) used by the variance-family objectives.
//
// Dense matrices are best for the small-to-medium N this library targets,
// where O(N²) distance storage is acceptable.
//
// See the anticlust package examples for usage patterns.
package matrix
