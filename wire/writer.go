package wire

// Writer accumulates one encode pass. It owns a growable root buffer and
// a stack of frames, one per in-progress nested message; the top frame
// is always the active write target and the root buffer acts as frame 0.
// Popping a frame writes the child's byte length as a varint into the
// parent and appends the child bytes, so the length of a nested message
// never needs to be known before its content is written and no
// backpatching ever happens.
//
// A Writer must not be mutated concurrently; one instance serves one
// in-progress encode at a time.
type Writer struct {
	buf   []byte   // root buffer, conceptually frame 0
	stack [][]byte // in-progress nested frames, top is the active target
	spare [][]byte // recycled scratch buffers, one per nesting level
}

// NewWriter creates an empty writer
func NewWriter() *Writer {
	return &Writer{}
}

// target returns the active write buffer: the top frame, or the root
// buffer when no frame is open.
func (w *Writer) target() *[]byte {
	if n := len(w.stack); n > 0 {
		return &w.stack[n-1]
	}
	return &w.buf
}

// Len returns the number of bytes committed to the root buffer. Bytes in
// open frames are not counted until their frames are popped.
func (w *Writer) Len() int { return len(w.buf) }

// Depth returns the number of currently open frames.
func (w *Writer) Depth() int { return len(w.stack) }

// Reset discards all written bytes and open frames, keeping allocated
// buffers for reuse.
func (w *Writer) Reset() {
	w.buf = w.buf[:0]
	for _, frame := range w.stack {
		w.spare = append(w.spare, frame[:0])
	}
	w.stack = w.stack[:0]
}

// WriteVarint appends the varint encoding of v
func (w *Writer) WriteVarint(v uint64) {
	t := w.target()
	*t = AppendVarint(*t, v)
}

// WriteSint64 appends the zigzag varint encoding of v
func (w *Writer) WriteSint64(v int64) {
	w.WriteVarint(EncodeZigZag64(v))
}

// WriteSint32 appends the zigzag varint encoding of v
func (w *Writer) WriteSint32(v int32) {
	w.WriteVarint(EncodeZigZag32(v))
}

// WriteBool appends a bool as a single varint byte
func (w *Writer) WriteBool(v bool) {
	if v {
		w.WriteVarint(1)
	} else {
		w.WriteVarint(0)
	}
}

// WriteTag appends the tag for the given field number and wire type
func (w *Writer) WriteTag(num FieldNumber, wt WireType) {
	w.WriteVarint(uint64(MakeTag(num, wt)))
}

// PushFrame opens a new nested-message frame. All writes target the new
// frame until PopFrame merges it into its parent. Scratch buffers are
// recycled across pushes at the same nesting level.
func (w *Writer) PushFrame() {
	var scratch []byte
	if n := len(w.spare); n > 0 {
		scratch = w.spare[n-1]
		w.spare = w.spare[:n-1]
	}
	w.stack = append(w.stack, scratch)
}

// PopFrame closes the top frame: the frame's byte length is written as a
// varint into the parent, followed by the frame's bytes verbatim. It
// panics on an empty stack; push/pop imbalance is a programming error,
// not a recoverable condition.
func (w *Writer) PopFrame() {
	n := len(w.stack)
	if n == 0 {
		panic("wire: PopFrame without matching PushFrame")
	}

	child := w.stack[n-1]
	w.stack = w.stack[:n-1]

	t := w.target()
	*t = AppendVarint(*t, uint64(len(child)))
	*t = append(*t, child...)

	w.spare = append(w.spare, child[:0])
}

// Take returns the accumulated root bytes and resets the writer to the
// empty state. The scratch-frame pool survives, so a reused writer pays
// no per-nesting-level allocations on later passes. It panics if any
// frame is still open.
func (w *Writer) Take() []byte {
	if len(w.stack) != 0 {
		panic("wire: Take with open frames")
	}
	out := w.buf
	w.buf = nil
	return out
}

// ===== FIELD HELPERS: tag followed by the typed payload =====

// WriteVarintField writes a tag and an unsigned varint value
func (w *Writer) WriteVarintField(num FieldNumber, v uint64) {
	w.WriteTag(num, WireVarint)
	w.WriteVarint(v)
}

// WriteInt64Field writes a tag and an int64 varint value
func (w *Writer) WriteInt64Field(num FieldNumber, v int64) {
	w.WriteVarintField(num, uint64(v))
}

// WriteInt32Field writes a tag and an int32 varint value
func (w *Writer) WriteInt32Field(num FieldNumber, v int32) {
	w.WriteVarintField(num, uint64(v))
}

// WriteSint64Field writes a tag and a zigzag-encoded int64 value
func (w *Writer) WriteSint64Field(num FieldNumber, v int64) {
	w.WriteTag(num, WireVarint)
	w.WriteSint64(v)
}

// WriteSint32Field writes a tag and a zigzag-encoded int32 value
func (w *Writer) WriteSint32Field(num FieldNumber, v int32) {
	w.WriteTag(num, WireVarint)
	w.WriteSint32(v)
}

// WriteBoolField writes a tag and a bool value
func (w *Writer) WriteBoolField(num FieldNumber, v bool) {
	w.WriteTag(num, WireVarint)
	w.WriteBool(v)
}

// WriteMessageField writes a nested message field: the tag, then the
// sub-message emitted by body into a fresh frame, then the frame is
// popped so the length prefix lands in front of the sub-message bytes.
func (w *Writer) WriteMessageField(num FieldNumber, body func(*Writer)) {
	w.WriteTag(num, WireBytes)
	w.PushFrame()
	body(w)
	w.PopFrame()
}
