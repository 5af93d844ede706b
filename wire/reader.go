package wire

import "fmt"

// Reader is a cursor over an immutable byte sequence. It never mutates
// the backing bytes, so any number of Readers may observe the same
// buffer concurrently; a single Reader must not be shared between
// goroutines.
type Reader struct {
	buf      []byte
	pos      int
	depth    int
	maxDepth int
}

// NewReader creates a reader positioned at the start of data. The
// nesting-depth guard is taken from the active Config.
func NewReader(data []byte) *Reader {
	return &Reader{
		buf:      data,
		maxDepth: config.MaxNestingDepth,
	}
}

// Pos returns the current byte offset.
func (r *Reader) Pos() int { return r.pos }

// SetPos moves the cursor to an absolute byte offset. Decoding can be
// retried from a checkpoint taken with Pos. It panics if pos is outside
// [0, Len()].
func (r *Reader) SetPos(pos int) {
	if pos < 0 || pos > len(r.buf) {
		panic(fmt.Sprintf("wire: SetPos(%d) outside buffer of length %d", pos, len(r.buf)))
	}
	r.pos = pos
}

// Len returns the total length of the backing bytes.
func (r *Reader) Len() int { return len(r.buf) }

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.buf) - r.pos }

// SetMaxDepth overrides the message nesting-depth guard for this reader.
// Zero or negative disables the guard.
func (r *Reader) SetMaxDepth(n int) { r.maxDepth = n }

// ReadVarint decodes one varint and advances past it.
func (r *Reader) ReadVarint() (uint64, error) {
	v, n, err := DecodeVarint(r.buf[r.pos:])
	if err != nil {
		return 0, err
	}
	r.pos += n
	return v, nil
}

// ReadUint64 reads a varint as uint64
func (r *Reader) ReadUint64() (uint64, error) {
	return r.ReadVarint()
}

// ReadUint32 reads a varint as uint32. A wider value is truncated to its
// low 32 bits, matching standard wire-format narrowing semantics.
func (r *Reader) ReadUint32() (uint32, error) {
	v, err := r.ReadVarint()
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}

// ReadInt64 reads a varint as int64
func (r *Reader) ReadInt64() (int64, error) {
	v, err := r.ReadVarint()
	if err != nil {
		return 0, err
	}
	return int64(v), nil
}

// ReadInt32 reads a varint as int32, truncating to the low 32 bits.
func (r *Reader) ReadInt32() (int32, error) {
	v, err := r.ReadVarint()
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}

// ReadSint64 reads a zigzag-encoded signed varint as int64
func (r *Reader) ReadSint64() (int64, error) {
	v, err := r.ReadVarint()
	if err != nil {
		return 0, err
	}
	return DecodeZigZag64(v), nil
}

// ReadSint32 reads a zigzag-encoded signed varint as int32
func (r *Reader) ReadSint32() (int32, error) {
	v, err := r.ReadVarint()
	if err != nil {
		return 0, err
	}
	return DecodeZigZag32(v), nil
}

// ReadBool reads a varint as bool
func (r *Reader) ReadBool() (bool, error) {
	v, err := r.ReadVarint()
	if err != nil {
		return false, err
	}
	return v != 0, nil
}

// ReadTag reads one field tag and splits it into field number and wire
// type. It fails with ErrInvalidWireType if the low 3 bits do not map to
// a supported wire type, and with ErrInvalidFieldNumber on field number 0.
func (r *Reader) ReadTag() (FieldNumber, WireType, error) {
	v, err := r.ReadVarint()
	if err != nil {
		return 0, 0, err
	}

	num, wt := ParseTag(Tag(v))
	if !wt.Valid() {
		return 0, 0, fmt.Errorf("tag %#x: %w %d", v, ErrInvalidWireType, int(wt))
	}
	if num < 1 {
		return 0, 0, fmt.Errorf("tag %#x: %w", v, ErrInvalidFieldNumber)
	}
	return num, wt, nil
}

// Skip advances past one value of the given wire type without
// interpreting it. Unknown fields are skipped this way so that schema
// evolution never breaks decoding.
func (r *Reader) Skip(wt WireType) error {
	switch wt {
	case WireVarint:
		_, err := r.ReadVarint()
		return err
	case WireFixed64:
		return r.skipRaw(8)
	case WireFixed32:
		return r.skipRaw(4)
	case WireBytes:
		length, err := r.ReadVarint()
		if err != nil {
			return err
		}
		if length > uint64(r.Remaining()) {
			return ErrOutOfBounds
		}
		r.pos += int(length)
		return nil
	default:
		return fmt.Errorf("skip: %w %d", ErrInvalidWireType, int(wt))
	}
}

func (r *Reader) skipRaw(n int) error {
	if r.pos+n > len(r.buf) {
		return ErrTruncated
	}
	r.pos += n
	return nil
}
