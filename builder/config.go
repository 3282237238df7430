// SPDX-License-Identifier: MIT
// Package: cellgraph/builder
//
// config.go - resolved configuration shared by every rule.

package builder

import (
	"github.com/katalvlaran/cellgraph/core"
	"github.com/katalvlaran/cellgraph/geom"
)

// builderConfig holds resolved options. Zero radius means "not set".
type builderConfig struct {
	radius   float64
	weight   float64
	weightFn func(dist float64) float64
}

// newBuilderConfig applies opts on top of the defaults (constant weight 1).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		weight: core.DefaultEdgeWeight,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// needsPositions reports whether the weight policy reads endpoint distances.
func (c builderConfig) needsPositions() bool { return c.weightFn != nil }

// edgeWeight resolves the weight for the pair (i, j).
func (c builderConfig) edgeWeight(pos []geom.Point, i, j int) (float64, error) {
	if c.weightFn == nil {
		return c.weight, nil
	}
	d, err := pos[i].Dist(pos[j])
	if err != nil {
		return 0, err
	}

	return c.weightFn(d), nil
}
