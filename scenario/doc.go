// Package scenario loads simulation scenarios from YAML and assembles them
// into an entity graph, initial fields and a run configuration.
//
// A scenario lists cells by kind and position, names a connectivity rule,
// and describes the attractant either explicitly or as a linear gradient.
// Parse rejects unknown keys; Validate checks struct tags, the rule name and
// the nested run configuration. Every validation failure matches
// core.ErrConfiguration.
package scenario
