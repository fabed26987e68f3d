// Package simulator is the local reference collaborator used for offline
// evaluation: it generates a hidden ground-truth cost grid from a 64-bit
// seed, validates and scores submitted paths against it, and returns a
// noisy response proportional to the true path length — the same
// contract env.Environment and the wire protocol expose to the driver,
// so a solver cannot tell which one it is talking to.
//
// Ground-truth generation follows the structural prior the estimator
// assumes: each of the 2N lines gets one or two base-cost regimes (drawn
// uniformly from [1000+d, 9000-d]) separated by at most one split point,
// and every edge's cost is its regime's base plus uniform integer noise
// in [-d, d].
package simulator
