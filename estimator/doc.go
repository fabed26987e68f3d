// Package estimator is the online cost model at the center of the
// solver: a structured regression over the grid's 1740 edges, refit by
// simulated annealing after every round.
//
// Cost grids in this contest are piecewise-constant along each row or
// column — one or two base-cost regimes separated by a single split
// point — plus small per-edge noise. A flat per-edge model is
// underdetermined after only a few hundred queries; factoring cost as
// line_base[line][segment] + edge_delta[edge] is what makes the problem
// identifiable from 1000 noisy path-length observations.
//
// Estimator keeps one cache per past round — its predicted total cost and
// a visit-count breakdown by (line, segment) — so that a proposed
// parameter change can be scored in O(turns touching that line or edge)
// rather than O(all turns). Every exported mutation (InsertRecord, the
// accepted moves inside Refit) keeps those caches exactly consistent
// with the current parameters; ValidateCache is the test hook that
// checks that invariant by recomputing everything from scratch.
package estimator
