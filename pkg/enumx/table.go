// Package enumx maps protocol enumerations to their canonical wire strings.
//
// A Table is built once, usually in a package-level var, and is read-only
// afterwards. It backs two flavors of enumeration:
//
//   - Extensible enumerations reserve a catch-all value (by convention the zero
//     value of the Go type). Parse never fails: wire strings the table does not
//     know resolve to the catch-all, so readers tolerate values introduced by
//     newer writers. The catch-all has no wire form and Wire panics on it.
//   - Closed enumerations use Lookup and treat a miss as an error.
//
// Example:
//
//	type State uint8
//
//	const (
//	    stateUnknown State = iota
//	    Offline
//	    Online
//	)
//
//	var states = enumx.NewTable("state", stateUnknown,
//	    enumx.Entry[State]{Value: Offline, Wire: "offline"},
//	    enumx.Entry[State]{Value: Online, Wire: "online"},
//	)
package enumx

import (
	"fmt"
	"reflect"

	"github.com/casualjim/mxevents/pkg/jsonx"
	"github.com/invopop/jsonschema"
)

// Entry binds a named variant to its canonical wire string.
type Entry[E comparable] struct {
	Value E
	Wire  string
}

// Table is a static, exhaustive, bidirectional mapping between variants and
// wire strings.
type Table[E comparable] struct {
	name     string
	catchAll E
	entries  []Entry[E]
	toWire   map[E]string
	fromWire map[string]E
}

// NewTable builds a table. The name only appears in panic messages. NewTable
// panics when a value or wire string is listed twice, when a wire string is
// empty, or when the catch-all value is listed as an entry.
func NewTable[E comparable](name string, catchAll E, entries ...Entry[E]) *Table[E] {
	t := &Table[E]{
		name:     name,
		catchAll: catchAll,
		entries:  make([]Entry[E], 0, len(entries)),
		toWire:   make(map[E]string, len(entries)),
		fromWire: make(map[string]E, len(entries)),
	}

	for _, e := range entries {
		if e.Value == catchAll {
			panic(fmt.Sprintf("enumx: %s: catch-all value cannot have a wire form", name))
		}
		if e.Wire == "" {
			panic(fmt.Sprintf("enumx: %s: empty wire string for %v", name, e.Value))
		}
		if _, dup := t.toWire[e.Value]; dup {
			panic(fmt.Sprintf("enumx: %s: duplicate value %v", name, e.Value))
		}
		if _, dup := t.fromWire[e.Wire]; dup {
			panic(fmt.Sprintf("enumx: %s: duplicate wire string %q", name, e.Wire))
		}
		t.toWire[e.Value] = e.Wire
		t.fromWire[e.Wire] = e.Value
		t.entries = append(t.entries, e)
	}

	return t
}

// Name returns the table name.
func (t *Table[E]) Name() string {
	return t.name
}

// Wire returns the canonical wire string of v.
//
// Passing the catch-all, or any value the table does not list, is an
// invariant violation and panics.
func (t *Table[E]) Wire(v E) string {
	s, ok := t.toWire[v]
	if !ok {
		if v == t.catchAll {
			panic(fmt.Sprintf("enumx: %s: the catch-all variant is never serialized", t.name))
		}
		panic(fmt.Sprintf("enumx: %s: value %v is not in the table", t.name, v))
	}
	return s
}

// Parse resolves a wire string, falling back to the catch-all for strings the
// table does not know.
func (t *Table[E]) Parse(s string) E {
	if v, ok := t.fromWire[s]; ok {
		return v
	}
	return t.catchAll
}

// ParseJSON is Parse for a raw JSON token. Only strings are accepted; any
// other token, null included, fails with a *json.UnmarshalTypeError instead
// of falling back to the catch-all.
func (t *Table[E]) ParseJSON(data []byte) (E, error) {
	s, err := jsonx.String(data, reflect.TypeFor[E]())
	if err != nil {
		return t.catchAll, err
	}
	return t.Parse(s), nil
}

// Lookup resolves a wire string and reports whether the table knows it.
func (t *Table[E]) Lookup(s string) (E, bool) {
	v, ok := t.fromWire[s]
	return v, ok
}

// Known reports whether v is one of the named variants.
func (t *Table[E]) Known(v E) bool {
	_, ok := t.toWire[v]
	return ok
}

// Values returns the named variants in declaration order.
func (t *Table[E]) Values() []E {
	values := make([]E, len(t.entries))
	for i, e := range t.entries {
		values[i] = e.Value
	}
	return values
}

// WireValues returns the wire strings in declaration order.
func (t *Table[E]) WireValues() []string {
	wire := make([]string, len(t.entries))
	for i, e := range t.entries {
		wire[i] = e.Wire
	}
	return wire
}

// JSONSchema describes the wire strings as a string enum. The catch-all is
// not listed since it has no wire form.
func (t *Table[E]) JSONSchema() *jsonschema.Schema {
	s := &jsonschema.Schema{Type: "string"}
	for _, e := range t.entries {
		s.Enum = append(s.Enum, e.Wire)
	}
	return s
}
