// Package anticlust - objective evaluators with incremental swap deltas.
//
// Each built-in objective keeps enough state to price a hypothetical swap of
// two elements between two groups without recomputing the full objective:
//
//   - diversity: a contribution table M[i][g] = Σ_{m∈g} d(i,m) makes a swap
//     delta O(1); committing a swap updates two columns in O(N).
//   - variance/k-plus: per-group running sums S_g and Σ‖x‖² make a swap delta
//     O(d) via the König–Huygens identity Σ_{m∈g}‖x_m − c_g‖² = Σ‖x_m‖² − ‖S_g‖²/|g|.
//   - custom: no delta support; the opaque scoring function is recomputed on
//     a scratch assignment per candidate (the documented slow path).
//
// Contracts:
//   - Evaluators own the assignment slice they are constructed with: commit
//     applies the swap to both the cached state and the assignment, so the
//     two can never diverge.
//   - All deltas are "new − old" of a maximized objective; positive is better.
//
// Design:
//   - Deterministic: fixed loop orders, no map iteration.
//   - No panics or logging; constructors return sentinel errors from types.go.
package anticlust

import (
	"math"

	"github.com/katalvlaran/anticluster/matrix"
)

// roundScale controls final objective stabilization precision (1e-9).
// Avoids tiny FP drifts across platforms/opt levels without affecting optimality.
const roundScale = 1e9

// round1e9 returns x rounded to 1e-9 absolute precision.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// evaluator prices and applies pairwise swaps for one objective.
//
//   - value returns the current objective (not yet rounded).
//   - swapDelta prices exchanging elements i and j between their groups;
//     i and j must currently belong to different groups.
//   - commit applies the swap to the internal state and the assignment.
type evaluator interface {
	value() float64
	swapDelta(i, j int) float64
	commit(i, j int)
}

// ---------------------------------------------------------------------------
// diversity
// ---------------------------------------------------------------------------

// diversityEvaluator maximizes the sum of pairwise within-group distances.
type diversityEvaluator struct {
	n      int
	k      int
	dist   []float64 // flattened n×n distances (shared, read-only)
	assign []int     // current assignment (owned jointly with the engine)
	m      []float64 // m[i*k+g] = Σ distance from i to current members of g
	obj    float64
}

// newDiversityEvaluator builds the contribution table and the initial objective.
//
// Contracts:
//   - dist is the flattened n×n buffer of a validated distance matrix.
//   - assign has length n with values in [0,k).
//
// Complexity: O(n²) time, O(n·k) space.
func newDiversityEvaluator(dist []float64, n, k int, assign []int) *diversityEvaluator {
	e := &diversityEvaluator{
		n:      n,
		k:      k,
		dist:   dist,
		assign: assign,
		m:      make([]float64, n*k),
	}

	var (
		i, j int
		d    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			e.m[i*k+assign[j]] += dist[i*n+j]
		}
	}
	// Every within-group pair is counted from both endpoints; halve the sum.
	for i = 0; i < n; i++ {
		d += e.m[i*k+assign[i]]
	}
	e.obj = d / 2

	return e
}

func (e *diversityEvaluator) value() float64 { return e.obj }

// swapDelta prices exchanging i and j between their groups g and h.
//
// Δ = (M[i][h] − d(i,j)) + (M[j][g] − d(i,j)) − M[i][g] − M[j][h]:
// each element loses its ties to its old group and gains ties to the new
// group minus the tie to the partner it replaces.
//
// Complexity: O(1).
func (e *diversityEvaluator) swapDelta(i, j int) float64 {
	var (
		g   = e.assign[i]
		h   = e.assign[j]
		dij = e.dist[i*e.n+j]
	)

	return e.m[i*e.k+h] + e.m[j*e.k+g] - e.m[i*e.k+g] - e.m[j*e.k+h] - 2*dij
}

// commit applies the swap: two contribution-table columns shift by
// d(t,i)−d(t,j) for every element t, then the assignment entries trade places.
//
// Complexity: O(n).
func (e *diversityEvaluator) commit(i, j int) {
	var (
		g     = e.assign[i]
		h     = e.assign[j]
		delta = e.swapDelta(i, j)
		t     int
		di    float64 // d(t,i)
		dj    float64 // d(t,j)
	)
	for t = 0; t < e.n; t++ {
		di = e.dist[t*e.n+i]
		dj = e.dist[t*e.n+j]
		e.m[t*e.k+g] += dj - di
		e.m[t*e.k+h] += di - dj
	}
	e.assign[i] = h
	e.assign[j] = g
	e.obj += delta
}

// ---------------------------------------------------------------------------
// variance (also backs k-plus via the augmented feature matrix)
// ---------------------------------------------------------------------------

// varianceEvaluator maximizes Σ_i ‖x_i − centroid(group(i))‖².
type varianceEvaluator struct {
	n      int
	k      int
	d      int
	feats  []float64 // flattened n×d features (shared, read-only)
	normSq []float64 // ‖x_i‖² per element (shared, read-only)
	assign []int
	sum    []float64 // sum[g*d..g*d+d) = Σ of member vectors of g
	sumSq  []float64 // Σ‖x‖² over members of g
	size   []int     // current member count of g (invariant under swaps)
	obj    float64
}

// newVarianceEvaluator accumulates per-group sums and the initial objective.
//
// Complexity: O(n·d) time, O(k·d) space.
func newVarianceEvaluator(feats, normSq []float64, n, k, d int, assign []int) *varianceEvaluator {
	e := &varianceEvaluator{
		n:      n,
		k:      k,
		d:      d,
		feats:  feats,
		normSq: normSq,
		assign: assign,
		sum:    make([]float64, k*d),
		sumSq:  make([]float64, k),
		size:   make([]int, k),
	}

	var (
		i, c, g int
	)
	for i = 0; i < n; i++ {
		g = assign[i]
		for c = 0; c < d; c++ {
			e.sum[g*d+c] += feats[i*d+c]
		}
		e.sumSq[g] += normSq[i]
		e.size[g]++
	}
	for g = 0; g < k; g++ {
		e.obj += e.groupValue(g)
	}

	return e
}

// groupValue returns Σ_{m∈g}‖x_m − c_g‖² = sumSq[g] − ‖S_g‖²/|g|.
//
// Complexity: O(d).
func (e *varianceEvaluator) groupValue(g int) float64 {
	var (
		c  int
		ss float64
		v  float64
	)
	for c = 0; c < e.d; c++ {
		v = e.sum[g*e.d+c]
		ss += v * v
	}

	return e.sumSq[g] - ss/float64(e.size[g])
}

func (e *varianceEvaluator) value() float64 { return e.obj }

// swapDelta prices exchanging i and j: both affected group sums shift by
// ±(x_j − x_i) and the squared-norm totals trade ‖x_i‖² for ‖x_j‖².
//
// Complexity: O(d).
func (e *varianceEvaluator) swapDelta(i, j int) float64 {
	var (
		g        = e.assign[i]
		h        = e.assign[j]
		c        int
		sg, sh   float64 // new ‖S‖² accumulators
		v        float64
		newG     float64
		newH     float64
		oldG     = e.groupValue(g)
		oldH     = e.groupValue(h)
		xi, xj   float64
		sumSqG   = e.sumSq[g] - e.normSq[i] + e.normSq[j]
		sumSqH   = e.sumSq[h] - e.normSq[j] + e.normSq[i]
		invSizeG = 1 / float64(e.size[g])
		invSizeH = 1 / float64(e.size[h])
	)
	for c = 0; c < e.d; c++ {
		xi = e.feats[i*e.d+c]
		xj = e.feats[j*e.d+c]
		v = e.sum[g*e.d+c] - xi + xj
		sg += v * v
		v = e.sum[h*e.d+c] - xj + xi
		sh += v * v
	}
	newG = sumSqG - sg*invSizeG
	newH = sumSqH - sh*invSizeH

	return newG + newH - oldG - oldH
}

// commit applies the swap to the running sums and the assignment.
//
// Complexity: O(d).
func (e *varianceEvaluator) commit(i, j int) {
	var (
		g     = e.assign[i]
		h     = e.assign[j]
		delta = e.swapDelta(i, j)
		c     int
		xi    float64
		xj    float64
	)
	for c = 0; c < e.d; c++ {
		xi = e.feats[i*e.d+c]
		xj = e.feats[j*e.d+c]
		e.sum[g*e.d+c] += xj - xi
		e.sum[h*e.d+c] += xi - xj
	}
	e.sumSq[g] += e.normSq[j] - e.normSq[i]
	e.sumSq[h] += e.normSq[i] - e.normSq[j]
	e.assign[i] = h
	e.assign[j] = g
	e.obj += delta
}

// rowNormSq precomputes ‖x_i‖² for every row of a flattened n×d buffer.
//
// Complexity: O(n·d).
func rowNormSq(feats []float64, n, d int) []float64 {
	var (
		out  = make([]float64, n)
		i, c int
		v    float64
	)
	for i = 0; i < n; i++ {
		for c = 0; c < d; c++ {
			v = feats[i*d+c]
			out[i] += v * v
		}
	}

	return out
}

// ---------------------------------------------------------------------------
// custom (opaque scoring function, no delta support)
// ---------------------------------------------------------------------------

// customEvaluator recomputes an opaque scoring function per candidate swap on
// a scratch copy, so the user function never observes (or mutates) live state.
type customEvaluator struct {
	data    *matrix.Dense // handed to the user function as supplied to Solve
	fn      ObjectiveFunc
	assign  []int
	scratch []int
	obj     float64
}

func newCustomEvaluator(data *matrix.Dense, fn ObjectiveFunc, assign []int) *customEvaluator {
	e := &customEvaluator{
		data:    data,
		fn:      fn,
		assign:  assign,
		scratch: make([]int, len(assign)),
	}
	copy(e.scratch, assign)
	e.obj = fn(data, e.scratch)

	return e
}

func (e *customEvaluator) value() float64 { return e.obj }

// swapDelta performs the hypothetical swap on the scratch copy and rescores.
//
// Complexity: one full call of the user function.
func (e *customEvaluator) swapDelta(i, j int) float64 {
	copy(e.scratch, e.assign)
	e.scratch[i], e.scratch[j] = e.scratch[j], e.scratch[i]

	return e.fn(e.data, e.scratch) - e.obj
}

func (e *customEvaluator) commit(i, j int) {
	e.assign[i], e.assign[j] = e.assign[j], e.assign[i]
	copy(e.scratch, e.assign)
	e.obj = e.fn(e.data, e.scratch)
}
