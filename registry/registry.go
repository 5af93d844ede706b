// Package registry provides an optional, debug-only mapping from field
// numbers to human-readable names. It exists purely for diagnostics
// (see the dump package); the codec core never consults it and nothing
// here is on the encode/decode hot path.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/anirudhraja/pbflite/wire"
)

// Field describes one field of a registered message.
type Field struct {
	Name   string // human-readable field name
	Nested string // registered message name for message-typed fields, empty otherwise
}

// Registry stores field-name tables keyed by message name. We look this
// up when rendering diagnostic dumps of wire data.
type Registry struct {
	mu       sync.RWMutex
	messages map[string]map[wire.FieldNumber]Field
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		messages: make(map[string]map[wire.FieldNumber]Field),
	}
}

// RegisterMessage registers the field table for a message name,
// replacing any previous table for the same name.
func (r *Registry) RegisterMessage(name string, fields map[wire.FieldNumber]Field) {
	r.mu.Lock()
	defer r.mu.Unlock()

	table := make(map[wire.FieldNumber]Field, len(fields))
	for num, f := range fields {
		table[num] = f
	}
	r.messages[name] = table
}

// Lookup returns the field entry for a message/field-number pair.
func (r *Registry) Lookup(message string, num wire.FieldNumber) (Field, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	table, ok := r.messages[message]
	if !ok {
		return Field{}, false
	}
	f, ok := table[num]
	return f, ok
}

// FieldName returns the registered name for a field, or a synthetic
// "field_N" name when the message or field is unregistered.
func (r *Registry) FieldName(message string, num wire.FieldNumber) string {
	if f, ok := r.Lookup(message, num); ok && f.Name != "" {
		return f.Name
	}
	return fmt.Sprintf("field_%d", num)
}

// Messages returns the registered message names in sorted order.
func (r *Registry) Messages() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.messages))
	for name := range r.messages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
