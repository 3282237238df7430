// Package builder turns a connectivity rule and an ordered list of vertices
// into the edge list of an undirected core.Graph.
//
// Rules:
//
//	linear          (i, i+1)                          n-1 edges
//	fully_connected every i<j once                    n(n-1)/2 edges
//	ring            linear plus (n-1, 0) for n >= 3   n edges
//	proximity       i<j with dist(i, j) <= radius     data dependent
//
// Zero or one vertex never produces an edge. Pairs come out in increasing
// (i, j) order, so rebuilding from unchanged inputs yields the same topology.
// Unknown names fail with ErrUnknownRule, which matches core.ErrConfiguration.
//
// Edge weights default to 1. WithWeight sets another constant and
// WithWeightFn derives the weight from the endpoint distance.
package builder
