package config

import (
	"fmt"
	"os"
	"strings"
)

// Attribute modifies how one variable is treated downstream: string selects
// the target's quoted declaration form, eval expands $NAME references against
// earlier entries.
type Attribute string

const (
	AttrString Attribute = "string"
	AttrEval   Attribute = "eval"
)

// AttrSet holds the attributes present on one definition line.
type AttrSet map[Attribute]struct{}

// Has reports whether the attribute is present.
func (s AttrSet) Has(attr Attribute) bool {
	_, ok := s[attr]
	return ok
}

// Entry is one parsed variable. Value is stored after quote escaping and, for
// eval entries, reference expansion; entries are never mutated after the
// parse pass that created them.
type Entry struct {
	Name       string
	Value      string
	Attributes AttrSet
	Line       int
}

// ParseError reports a malformed definition line. Line numbers count every
// physical line of the input, including skipped blanks and comments.
type ParseError struct {
	Line   int
	Reason string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("config: line %d: %s", e.Line, e.Reason)
}

// DuplicateVariableError reports a name that collides with an earlier entry
// or with the reserved-name set handed to the parser.
type DuplicateVariableError struct {
	Name string
	Line int
}

func (e DuplicateVariableError) Error() string {
	return fmt.Sprintf("config: line %d: variable already in use: %s", e.Line, e.Name)
}

// ReservedFromEnviron snapshots the process environment into a reserved-name
// map for WithReservedNames. Callers that want the historical "collides with
// an environment variable" check opt in explicitly; Parse itself never reads
// ambient process state.
func ReservedFromEnviron() map[string]string {
	out := make(map[string]string, 64)
	for _, kv := range os.Environ() {
		if name, value, ok := strings.Cut(kv, "="); ok && name != "" {
			out[name] = value
		}
	}
	return out
}
