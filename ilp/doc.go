// Package ilp formulates the diversity (cluster-editing) anticlustering
// objective as a 0/1 integer linear program and parses solver output back
// into group labels.
//
// The package builds the formulation only; the program is solved by an
// external, general-purpose MILP collaborator behind the Solver interface.
// Timeout and tolerance policies belong to that solver, not to this package.
//
// Formulation (N elements, K equal groups of m = N/K):
//
//   - one binary variable x_ij per unordered pair i<j: "i and j share a group";
//   - objective: maximize Σ d(i,j)·x_ij;
//   - group sizes: Σ_{j≠i} x_ij = m−1 for every element i;
//   - transitivity: x_ij + x_jk − x_ik ≤ 1 for every triple i<j<k, in all
//     three rotations, so "same group" is an equivalence relation;
//   - preclustering (optional): x_ij = 0 for forbidden pairs.
//
// The variance-family objectives are non-linear in the pair variables and
// cannot be formulated this way; the anticlust dispatcher rejects them
// before reaching this package.
package ilp
