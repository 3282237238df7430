// SPDX-License-Identifier: MIT
// Package: cellgraph/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Every sentinel also matches one of the core error kinds
//     (core.ErrConfiguration or core.ErrValidation).
//   - Rules MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import (
	"fmt"

	"github.com/katalvlaran/cellgraph/core"
)

// ErrUnknownRule indicates a connectivity rule name that no rule implements.
// Usage: if errors.Is(err, ErrUnknownRule) { /* list Rules() to the user */ }.
var ErrUnknownRule = fmt.Errorf("%w: builder: unknown connectivity rule", core.ErrConfiguration)

// ErrOptionViolation indicates that a rule was invoked without an option it
// requires, or with a value that only becomes invalid at resolution time
// (e.g. the proximity rule without WithRadius).
var ErrOptionViolation = fmt.Errorf("%w: builder: invalid option value", core.ErrConfiguration)

// ErrPositions indicates that positions are missing or not index-aligned
// with the vertices while the rule or the weight policy needs them.
var ErrPositions = fmt.Errorf("%w: builder: positions must align with vertices", core.ErrValidation)

// builderErrorf wraps an inner error with the given method context.
// It returns an error of the form "<Method>: <formatted message>: <err>".
func builderErrorf(method, format string, err error, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
