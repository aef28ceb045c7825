// Package anticlust - the repetition (restart) driver.
//
// Repetitions are independent: each draws a fresh initial assignment from its
// own deterministic RNG stream (deriveSeed of the base seed and the
// repetition index), owns its evaluator and constraint state, and runs to the
// requested termination mode. Shared inputs (distance/feature buffers, the
// constraint partition) are read-only and shared by reference. The only
// synchronization point is the final best-objective selection; ties break
// toward the lowest repetition index so results stay deterministic under any
// worker count.
package anticlust

import (
	"math/rand"
	"runtime"

	"github.com/katalvlaran/anticluster/matrix"
	"golang.org/x/sync/errgroup"
)

// problem is the immutable per-run description every repetition starts from.
type problem struct {
	n     int
	k     int
	sizes []int

	objective ObjectiveKind
	custom    ObjectiveFunc

	distFlat []float64 // flattened n×n distances (diversity)
	featFlat []float64 // flattened n×d features (variance family)
	featDim  int
	normSq   []float64 // ‖x_i‖² per row of featFlat

	raw *matrix.Dense // data exactly as supplied (custom objective)

	classes    []int // constraint partition, nil when unconstrained
	numClasses int

	init []int // normalized caller labels; seeds repetition 0 only
	eps  float64
}

// newEngine assembles the optimizer for one repetition. Repetition 0 honors
// a caller-supplied initial assignment; later repetitions always draw random
// (constraint-balanced when applicable) initial assignments with the same
// group sizes, which is how repeated local-maximum runs escape poor optima.
func (p *problem) newEngine(rep int, rng *rand.Rand) *engine {
	var assign []int
	switch {
	case rep == 0 && p.init != nil:
		assign = make([]int, p.n)
		copy(assign, p.init)
	case p.classes != nil:
		assign = constrainedInit(p.classes, p.numClasses, p.sizes, rng)
	default:
		assign = randomInit(p.sizes, rng)
	}

	var eval evaluator
	switch p.objective {
	case ObjectiveDiversity:
		eval = newDiversityEvaluator(p.distFlat, p.n, p.k, assign)
	case ObjectiveVariance, ObjectiveKPlus:
		eval = newVarianceEvaluator(p.featFlat, p.normSq, p.n, p.k, p.featDim, assign)
	default: // ObjectiveCustom, guaranteed by validation
		eval = newCustomEvaluator(p.raw, p.custom, assign)
	}

	e := &engine{
		n:      p.n,
		assign: assign,
		eval:   eval,
		eps:    p.eps,
	}
	if p.classes != nil {
		e.cons = newConstraintState(p.classes, p.numClasses, p.k, assign)
	}

	return e
}

// runRepetitions executes R independent repetitions under a bounded worker
// pool and returns the assignment with the best final objective.
func runRepetitions(p *problem, opts Options) ([]int, float64, error) {
	var (
		r       = opts.Repetitions
		workers = opts.Parallelism
	)
	if r == 0 {
		r = 1
	}
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > r {
		workers = r
	}

	type repOut struct {
		assign []int
		obj    float64
	}
	var (
		outs = make([]repOut, r)
		g    errgroup.Group
	)
	g.SetLimit(workers)
	// rep must be declared by the loop itself so each closure captures its
	// own per-iteration copy, not one variable racing with the increment.
	for rep := 0; rep < r; rep++ {
		g.Go(func() error {
			eng := p.newEngine(rep, repRNG(opts.Seed, rep))
			eng.run(opts.Method)
			outs[rep] = repOut{assign: eng.assign, obj: eng.eval.value()}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	// Best final objective wins; strict > keeps the lowest repetition index
	// on ties for determinism.
	var best = 0
	for rep := 1; rep < r; rep++ {
		if outs[rep].obj > outs[best].obj {
			best = rep
		}
	}

	return outs[best].assign, outs[best].obj, nil
}
