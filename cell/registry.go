// SPDX-License-Identifier: MIT

package cell

import (
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/katalvlaran/cellgraph/core"
	"github.com/katalvlaran/cellgraph/geom"
)

// Default kinetic constants.
const (
	NeuronDensity    = 1.0
	AstrocyteDensity = 0.5
	MicrogliaDensity = 0.2

	NeuronGrowthRate     = 0.1
	AstrocyteDecayRate   = 0.05
	MicrogliaForcingGain = 0.02
)

// ErrBadProfile reports a profile with a non-finite initial density.
var ErrBadProfile = fmt.Errorf("%w: cell: profile density must be finite", core.ErrConfiguration)

// ReactionFunc returns the local source term for density u under attractant c.
type ReactionFunc func(u, c float64) float64

// Profile carries everything the simulation needs to know about a kind.
type Profile struct {
	// InitialDensity seeds u when no explicit override is given.
	InitialDensity float64
	// Reaction is the local source term; nil means no reaction.
	Reaction ReactionFunc
	// Movable marks kinds whose positions may be advanced.
	Movable bool
}

// Rate evaluates the reaction term, treating a nil Reaction as zero.
func (p Profile) Rate(u, c float64) float64 {
	if p.Reaction == nil {
		return 0
	}

	return p.Reaction(u, c)
}

// Logistic returns r·u·(1−u).
func Logistic(r float64) ReactionFunc {
	return func(u, _ float64) float64 { return r * u * (1 - u) }
}

// Decay returns −k·u.
func Decay(k float64) ReactionFunc {
	return func(u, _ float64) float64 { return -k * u }
}

// Forcing returns g·c, a source driven by the attractant.
func Forcing(g float64) ReactionFunc {
	return func(_, c float64) float64 { return g * c }
}

// Registry maps kinds to profiles. It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	profiles map[Kind]Profile
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{profiles: make(map[Kind]Profile)}
}

// DefaultRegistry returns a fresh registry holding the built-in kinds:
//
//	neuron     density 1.0, logistic growth 0.1·u·(1−u), fixed
//	astrocyte  density 0.5, decay −0.05·u, fixed
//	microglia  density 0.2, forcing 0.02·c, movable
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.profiles[Neuron] = Profile{InitialDensity: NeuronDensity, Reaction: Logistic(NeuronGrowthRate)}
	r.profiles[Astrocyte] = Profile{InitialDensity: AstrocyteDensity, Reaction: Decay(AstrocyteDecayRate)}
	r.profiles[Microglia] = Profile{InitialDensity: MicrogliaDensity, Reaction: Forcing(MicrogliaForcingGain), Movable: true}

	return r
}

// Register adds or replaces the profile for kind.
func (r *Registry) Register(kind Kind, p Profile) error {
	if kind <= 0 {
		return fmt.Errorf("Register(%v): %w", kind, ErrUnknownKind)
	}
	if math.IsNaN(p.InitialDensity) || math.IsInf(p.InitialDensity, 0) {
		return fmt.Errorf("Register(%v): %w", kind, ErrBadProfile)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[kind] = p

	return nil
}

// Lookup returns the profile for kind.
func (r *Registry) Lookup(kind Kind) (Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.profiles[kind]
	if !ok {
		return Profile{}, fmt.Errorf("Lookup(%v): %w", kind, ErrUnknownKind)
	}

	return p, nil
}

// Kinds returns the registered kinds in ascending order.
func (r *Registry) Kinds() []Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Kind, 0, len(r.profiles))
	for k := range r.profiles {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Spawn creates a cell with a fresh id from iss; mobility follows the profile.
func (r *Registry) Spawn(iss *Issuer, kind Kind, pos geom.Point) (*Cell, error) {
	p, err := r.Lookup(kind)
	if err != nil {
		return nil, err
	}

	return New(iss.Next(), kind, pos, WithMovable(p.Movable)), nil
}
