// Package cell defines the biological entities placed on the graph.
//
// A Cell carries an identifier, a Kind tag, a position and a capability
// flag telling whether it may move. Per-kind behavior (initial density,
// reaction term, default mobility) lives in a Registry rather than in the
// type, so new kinds are added by registering a Profile. Identifiers come
// from an Issuer owned by the caller.
package cell
