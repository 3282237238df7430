// Package cellgraph simulates diffusion and chemotaxis of a density field on
// graphs whose vertices are biological cells.
//
// 🧫 What is cellgraph?
//
//	A small engine for studying how a scalar density spreads over a tissue:
//		• Graph primitives: vertices, undirected weighted edges, immutable graphs
//		• Matrix views: adjacency, incidence, Laplacian, normalized Laplacian
//		• Chemotaxis: Keller–Segel flux toward an attractant, as a divergence
//		• Cells: neurons, astrocytes and microglia with kind-specific reactions
//		• Topology rules: linear, fully_connected, ring, proximity
//		• Time stepping: forward Euler with moving cells and topology rebuilds
//
// Under the hood the code is split into packages:
//
//	core/      - Vertex, Edge, Graph, divergence, connected components
//	matrix/    - dense matrices, validators, Jacobi eigen, graph operators
//	geom/      - 2D/3D points and clamping bounds
//	cell/      - cell kinds, the kind registry, identity issuer
//	builder/   - connectivity rules producing edges from vertices and positions
//	cellgraph/ - EntityGraph: cells bound to vertices, movement and rebuilds
//	simulate/  - the integration driver and stationary states
//	scenario/  - YAML scenario files
//	cmd/cellsim - command line: run, stationary, inspect
//
// The field update of one step is
//
//	u ← u + dt·(−D⊙(L·u) + div(u, c) + reaction(u, c))
//
// where L is the Laplacian of the topology rebuilt after this step's moves.
//
//	go install github.com/katalvlaran/cellgraph/cmd/cellsim@latest
package cellgraph
