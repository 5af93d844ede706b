// Package pbflite encodes and decodes the Protocol Buffers wire format
// without a schema compiler. Applications define their own record types
// and implement the FieldWriter and FieldReader capability interfaces;
// the codec core drives them and never inspects record shapes itself.
package pbflite

import (
	"sync"

	"github.com/anirudhraja/pbflite/wire"
)

// FieldWriter emits all fields of a record into a wire.Writer. Field
// order is the implementation's choice; protobuf decoders accept fields
// in any order.
type FieldWriter interface {
	WriteFields(w *wire.Writer)
}

// FieldReader consumes the value for one field during decoding. It must
// read exactly the value belonging to the tag using the wire.Reader
// helpers, or call r.Skip(wt) for field numbers it does not recognize.
// Unknown fields must be skipped, not rejected, so old readers keep
// working against newer writers.
type FieldReader interface {
	ReadField(num wire.FieldNumber, wt wire.WireType, r *wire.Reader) error
}

// Message combines both capabilities for types that round-trip.
type Message interface {
	FieldWriter
	FieldReader
}

var writerPool = sync.Pool{
	New: func() interface{} { return wire.NewWriter() },
}

// Marshal encodes m into a fresh byte slice. Writers are pooled across
// calls, so steady-state encoding reuses scratch frames instead of
// reallocating per nesting level.
func Marshal(m FieldWriter) []byte {
	w := writerPool.Get().(*wire.Writer)
	m.WriteFields(w)
	out := w.Take()
	writerPool.Put(w)
	return out
}

// MarshalAppend encodes m and appends the result to dst.
func MarshalAppend(dst []byte, m FieldWriter) []byte {
	w := writerPool.Get().(*wire.Writer)
	m.WriteFields(w)
	out := append(dst, w.Take()...)
	writerPool.Put(w)
	return out
}

// Unmarshal decodes data into m by dispatching every top-level field to
// m.ReadField. The first error aborts the pass; unknown fields are not
// errors when m skips them.
func Unmarshal(data []byte, m FieldReader) error {
	r := wire.NewReader(data)
	return r.ReadFields(r.Len(), m.ReadField)
}

// UnmarshalOptions configures a decode pass.
type UnmarshalOptions struct {
	// MaxDepth overrides the message nesting-depth guard. Zero keeps the
	// wire package default; negative disables the guard.
	MaxDepth int
}

// Unmarshal decodes data into m with the receiver's options applied.
func (o UnmarshalOptions) Unmarshal(data []byte, m FieldReader) error {
	r := wire.NewReader(data)
	if o.MaxDepth != 0 {
		r.SetMaxDepth(o.MaxDepth)
	}
	return r.ReadFields(r.Len(), m.ReadField)
}

// WriteMessage writes m as a nested message field under the given field
// number.
func WriteMessage(w *wire.Writer, num wire.FieldNumber, m FieldWriter) {
	w.WriteMessageField(num, m.WriteFields)
}

// ReadMessage reads one nested message from r into m. Call it from a
// FieldReader when the dispatched field is a message-typed field.
func ReadMessage(r *wire.Reader, m FieldReader) error {
	return r.ReadMessage(m.ReadField)
}
