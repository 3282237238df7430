// SPDX-License-Identifier: MIT

package cell

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/cellgraph/core"
)

// Kind tags an entity with its biological role. The zero value is invalid.
type Kind int

// Built-in kinds.
const (
	Neuron Kind = iota + 1
	Astrocyte
	Microglia
)

var kindNames = map[Kind]string{
	Neuron:    "neuron",
	Astrocyte: "astrocyte",
	Microglia: "microglia",
}

// ErrUnknownKind reports a kind name or tag that no registry knows.
// It matches core.ErrConfiguration.
var ErrUnknownKind = fmt.Errorf("%w: cell: unknown kind", core.ErrConfiguration)

// ParseKind resolves a case-insensitive kind name.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}

	return 0, fmt.Errorf("ParseKind(%q): %w", s, ErrUnknownKind)
}

// String returns the lower-case kind name, or Kind(n) for unnamed tags.
func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, so kinds can be written
// by name in YAML and JSON documents.
func (k *Kind) UnmarshalText(b []byte) error {
	v, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = v

	return nil
}
