package anticlust_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/anticluster/anticlust"
	"github.com/katalvlaran/anticluster/ilp"
	"github.com/katalvlaran/anticluster/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bruteSolver is a test stand-in for an external MILP backend: it enumerates
// every equal-size partition, keeps only those satisfying all program rows,
// and returns the objective-maximal one. Usable for tiny N only.
type bruteSolver struct{}

func (bruteSolver) Solve(p *ilp.Program) (*ilp.Solution, error) {
	var (
		bestObj = math.Inf(-1)
		best    []float64
		labels  = make([]int, p.N)
		counts  = make([]int, p.Groups)
		size    = p.N / p.Groups
	)

	var rec func(i int)
	rec = func(i int) {
		if i == p.N {
			vals := pairValues(p, labels)
			if !satisfiesAll(p, vals) {
				return
			}
			var obj float64
			for v, c := range p.Maximize {
				obj += c * vals[v]
			}
			if obj > bestObj {
				bestObj = obj
				best = vals
			}

			return
		}
		for g := 0; g < p.Groups; g++ {
			if counts[g] == size {
				continue
			}
			labels[i] = g
			counts[g]++
			rec(i + 1)
			counts[g]--
		}
	}
	rec(0)

	if best == nil {
		return nil, errors.New("brute: infeasible")
	}

	return &ilp.Solution{Values: best}, nil
}

// pairValues encodes a label vector as the 0/1 pair-variable vector.
func pairValues(p *ilp.Program, labels []int) []float64 {
	vals := make([]float64, p.NumVars)
	for i := 0; i < p.N; i++ {
		for j := i + 1; j < p.N; j++ {
			if labels[i] == labels[j] {
				vals[ilp.PairVar(p.N, i, j)] = 1
			}
		}
	}

	return vals
}

// satisfiesAll checks every constraint row against a candidate vector.
func satisfiesAll(p *ilp.Program, vals []float64) bool {
	for _, c := range p.Constraints {
		var sum float64
		for _, t := range c.Terms {
			sum += t.Coef * vals[t.Var]
		}
		switch c.Sense {
		case ilp.LE:
			if sum > c.RHS+1e-9 {
				return false
			}
		case ilp.EQ:
			if math.Abs(sum-c.RHS) > 1e-9 {
				return false
			}
		case ilp.GE:
			if sum < c.RHS-1e-9 {
				return false
			}
		}
	}

	return true
}

// failingSolver simulates a backend error (timeout, unreachable process).
type failingSolver struct{ err error }

func (s failingSolver) Solve(*ilp.Program) (*ilp.Solution, error) { return nil, s.err }

// TestSolve_ExactDominatesHeuristic: the optimal partition scores at least
// as well as a restarted local-maximum search.
func TestSolve_ExactDominatesHeuristic(t *testing.T) {
	feats := randomFeatures(t, 6, 2, 101)

	heur := anticlust.DefaultOptions()
	heur.K = 2
	heur.Method = anticlust.MethodLocalMaximum
	heur.Repetitions = 10

	approx, err := anticlust.Solve(feats, heur)
	require.NoError(t, err)

	exact := anticlust.DefaultOptions()
	exact.K = 2
	exact.Method = anticlust.MethodExact
	exact.Solver = bruteSolver{}

	opt, err := anticlust.Solve(feats, exact)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 3}, opt.GroupSizes)
	assert.GreaterOrEqual(t, opt.Objective, approx.Objective-1e-9)
}

// TestSolve_ExactHonorsPreclusterPairs: matched nearest neighbours are
// encoded as forbidden pairs and never share a group in the optimum.
func TestSolve_ExactHonorsPreclusterPairs(t *testing.T) {
	feats, err := matrix.FromRows([][]float64{
		{0}, {0.1}, {7}, {7.1},
	})
	require.NoError(t, err)

	opts := anticlust.DefaultOptions()
	opts.K = 2
	opts.Method = anticlust.MethodExact
	opts.Preclustering = true
	opts.Solver = bruteSolver{}

	res, err := anticlust.Solve(feats, opts)
	require.NoError(t, err)
	assert.NotEqual(t, res.Assignment[0], res.Assignment[1])
	assert.NotEqual(t, res.Assignment[2], res.Assignment[3])
}

// TestSolve_ExactPathErrors walks the exact-only failure modes.
func TestSolve_ExactPathErrors(t *testing.T) {
	feats := randomFeatures(t, 6, 2, 7)

	opts := anticlust.DefaultOptions()
	opts.K = 2
	opts.Method = anticlust.MethodExact
	_, err := anticlust.Solve(feats, opts) // no backend attached
	assert.ErrorIs(t, err, anticlust.ErrSolverUnavailable)

	opts.Solver = bruteSolver{}
	opts.Objective = anticlust.ObjectiveVariance
	_, err = anticlust.Solve(feats, opts)
	assert.ErrorIs(t, err, anticlust.ErrObjectiveNotLinear)

	opts.Objective = anticlust.ObjectiveDiversity
	opts.K = 0
	opts.Labels = []int{0, 0, 1, 1, 1, 1} // sizes 2/4: no equality encoding
	_, err = anticlust.Solve(feats, opts)
	assert.ErrorIs(t, err, ilp.ErrUnevenGroups)

	boom := errors.New("backend: time limit reached")
	opts = anticlust.DefaultOptions()
	opts.K = 2
	opts.Method = anticlust.MethodExact
	opts.Solver = failingSolver{err: boom}
	_, err = anticlust.Solve(feats, opts)
	assert.ErrorIs(t, err, boom, "solver errors must propagate unmodified")
}
