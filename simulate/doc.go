// Package simulate integrates density fields on an entity graph.
//
// Run advances a field u by explicit forward-Euler steps combining three
// terms: Laplacian diffusion −D⊙(L·u), the chemotactic divergence of the
// flux toward an attractant c, and a per-kind reaction rate. When entities
// may move, every step first moves them, snapshots their positions and
// rebuilds the topology, and only then recomputes L and the divergence on
// the rebuilt graph. Swapping these stages changes which positions the new
// edges are based on.
//
// The step size is not controlled: a dt above the stability threshold of
// the current topology blows up without an error.
//
// StationaryState gives the equilibrium that pure diffusion converges to,
// computed from the Laplacian's null space instead of by time stepping.
//
// Logging uses zap through WithLogger; the default logger discards output.
package simulate
