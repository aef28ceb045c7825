// Package ilp - program construction and solution parsing.
//
// Design:
//   - Deterministic: variables and constraints are emitted in fixed index
//     order (pairs lexicographic, triples lexicographic, forbidden pairs in
//     caller order).
//   - Strict sentinels from types.go; matrix validation errors forwarded as-is.
//   - No solving here: BuildDiversity emits the rows, AssignmentFromSolution
//     folds a 0/1 vector back into labels.
package ilp

import (
	"math"

	"github.com/katalvlaran/anticluster/matrix"
)

// intTol is the integrality tolerance when reading solver output: values
// within intTol of 0 or 1 are snapped, anything else is rejected.
const intTol = 1e-6

// PairVar returns the variable index of the unordered pair i<j among n
// elements (upper-triangular, row-major): pairs (0,1),(0,2),…,(n−2,n−1).
//
// Contracts: 0 ≤ i < j < n (not re-checked in this hot helper).
//
// Complexity: O(1).
func PairVar(n, i, j int) int {
	return i*n - i*(i+1)/2 + (j - i - 1)
}

// BuildDiversity constructs the 0/1 cluster-editing program for a validated
// distance matrix, K equal groups and optional forbidden pairs (from
// preclustering).
//
// Errors:
//   - matrix sentinels from ValidateDistances,
//   - ErrBadGroups, ErrUnevenGroups, ErrBadPair.
//
// Complexity: O(n³) time and space (the transitivity rows dominate).
func BuildDiversity(dist *matrix.Dense, groups int, forbidden [][2]int) (*Program, error) {
	if err := matrix.ValidateDistances(dist, matrix.SymTol); err != nil {
		return nil, err
	}

	var n = dist.Rows()
	if groups < 2 || groups > n {
		return nil, ErrBadGroups
	}
	if n%groups != 0 {
		return nil, ErrUnevenGroups
	}

	var (
		numVars = n * (n - 1) / 2
		p       = &Program{
			N:        n,
			Groups:   groups,
			NumVars:  numVars,
			Maximize: make([]float64, numVars),
		}
		buf     = dist.Data()
		i, j, k int
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			p.Maximize[PairVar(n, i, j)] = buf[i*n+j]
		}
	}

	// Degree equalities: every element shares its group with exactly
	// N/K − 1 partners.
	var (
		m     = n/groups - 1
		terms []Term
	)
	for i = 0; i < n; i++ {
		terms = make([]Term, 0, n-1)
		for j = 0; j < n; j++ {
			if j == i {
				continue
			}
			if j < i {
				terms = append(terms, Term{Var: PairVar(n, j, i), Coef: 1})
			} else {
				terms = append(terms, Term{Var: PairVar(n, i, j), Coef: 1})
			}
		}
		p.Constraints = append(p.Constraints, Constraint{Terms: terms, Sense: EQ, RHS: float64(m)})
	}

	// Transitivity: for every triple i<j<k, sharing two edges forces the third.
	var ij, ik, jk int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			for k = j + 1; k < n; k++ {
				ij = PairVar(n, i, j)
				ik = PairVar(n, i, k)
				jk = PairVar(n, j, k)
				p.Constraints = append(p.Constraints,
					Constraint{Terms: []Term{{ij, 1}, {jk, 1}, {ik, -1}}, Sense: LE, RHS: 1},
					Constraint{Terms: []Term{{ij, 1}, {jk, -1}, {ik, 1}}, Sense: LE, RHS: 1},
					Constraint{Terms: []Term{{ij, -1}, {jk, 1}, {ik, 1}}, Sense: LE, RHS: 1},
				)
			}
		}
	}

	// Forbidden pairs: precomputed matched tuples never share a group.
	var a, b int
	for _, pair := range forbidden {
		a, b = pair[0], pair[1]
		if a > b {
			a, b = b, a
		}
		if a < 0 || b >= n || a == b {
			return nil, ErrBadPair
		}
		p.Constraints = append(p.Constraints, Constraint{
			Terms: []Term{{Var: PairVar(n, a, b), Coef: 1}},
			Sense: EQ,
			RHS:   0,
		})
	}

	return p, nil
}

// AssignmentFromSolution folds a 0/1 pair-variable vector back into group
// labels 0..K−1, labeled by order of each group's first element.
//
// Errors: ErrNilProgram, ErrNilSolution, ErrBadSolution (wrong length,
// non-binary values, transitivity violations, wrong group count/sizes).
//
// Complexity: O(n²).
func AssignmentFromSolution(p *Program, s *Solution) ([]int, error) {
	if p == nil {
		return nil, ErrNilProgram
	}
	if s == nil {
		return nil, ErrNilSolution
	}
	if len(s.Values) != p.NumVars {
		return nil, ErrBadSolution
	}

	// Snap values to {0,1} within tolerance.
	var (
		same = make([]bool, p.NumVars)
		v    float64
		x    int
	)
	for x = 0; x < p.NumVars; x++ {
		v = s.Values[x]
		switch {
		case math.Abs(v) <= intTol:
			same[x] = false
		case math.Abs(v-1) <= intTol:
			same[x] = true
		default:
			return nil, ErrBadSolution
		}
	}

	var (
		n      = p.N
		labels = make([]int, n)
		next   int
		i, j   int
	)
	for i = 0; i < n; i++ {
		labels[i] = -1
	}
	for i = 0; i < n; i++ {
		if labels[i] < 0 {
			labels[i] = next
			next++
		}
		for j = i + 1; j < n; j++ {
			if !same[PairVar(n, i, j)] {
				// Elements claimed distinct must not have met through a chain.
				if labels[j] == labels[i] {
					return nil, ErrBadSolution
				}

				continue
			}
			if labels[j] < 0 {
				labels[j] = labels[i]
			} else if labels[j] != labels[i] {
				return nil, ErrBadSolution
			}
		}
	}

	// The degree equalities imply K groups of N/K; verify the parse agrees.
	if next != p.Groups {
		return nil, ErrBadSolution
	}
	var sizes = make([]int, next)
	for i = 0; i < n; i++ {
		sizes[labels[i]]++
	}
	for i = 0; i < next; i++ {
		if sizes[i] != n/p.Groups {
			return nil, ErrBadSolution
		}
	}

	return labels, nil
}
