package ilp

import "errors"

// Sentinel errors returned by the ilp package.
var (
	// ErrBadGroups indicates a group count outside [2..N].
	ErrBadGroups = errors.New("ilp: group count must satisfy 2 <= K <= N")

	// ErrUnevenGroups indicates that K does not divide N; the equality
	// degree constraints encode equal group sizes only.
	ErrUnevenGroups = errors.New("ilp: exact formulation requires K to divide N")

	// ErrBadPair indicates a forbidden pair with out-of-range or equal indices.
	ErrBadPair = errors.New("ilp: invalid forbidden pair")

	// ErrNilProgram indicates a nil *Program argument.
	ErrNilProgram = errors.New("ilp: program is nil")

	// ErrNilSolution indicates a nil *Solution argument.
	ErrNilSolution = errors.New("ilp: solution is nil")

	// ErrBadSolution indicates a solution vector of the wrong length, with
	// non-binary values, or violating transitivity (no consistent grouping).
	ErrBadSolution = errors.New("ilp: solution does not encode a valid partition")
)

// Sense is the relation of a linear constraint.
type Sense int

const (
	// LE is Σ coef·x ≤ rhs.
	LE Sense = iota

	// EQ is Σ coef·x = rhs.
	EQ

	// GE is Σ coef·x ≥ rhs.
	GE
)

// Term is one coefficient of a linear constraint.
type Term struct {
	Var  int     // variable index in [0, NumVars)
	Coef float64 // coefficient
}

// Constraint is one linear row: Σ Terms Sense RHS.
type Constraint struct {
	Terms []Term
	Sense Sense
	RHS   float64
}

// Program is a 0/1 integer linear program in maximization form. All
// variables are binary; Maximize holds one objective coefficient per
// variable.
type Program struct {
	// N is the number of elements; NumVars == N·(N−1)/2 pair variables.
	N int

	// Groups is the group count K; GroupSize == N/K.
	Groups int

	// NumVars is the variable count.
	NumVars int

	// Maximize holds the objective coefficient of each variable.
	Maximize []float64

	// Constraints holds the full constraint rows (degree equalities,
	// transitivity triples, forbidden pairs).
	Constraints []Constraint
}

// Solution is the 0/1 variable vector returned by the external solver.
// Values within integrality tolerance of 0 or 1 are accepted.
type Solution struct {
	Values []float64
}

// Solver is the external MILP collaborator. Implementations run out of
// process (or in a cgo-backed library) and own their timeout policy; the
// core blocks until the solver returns a solution or an error
// (infeasibility, timeout, unreachable backend).
type Solver interface {
	Solve(p *Program) (*Solution, error)
}
