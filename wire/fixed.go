package wire

import (
	"encoding/binary"
	"math"
)

// Fixed-width values are raw little-endian bytes on the wire; floats are
// their IEEE-754 bit patterns carried as fixed32/fixed64.

// DECODER METHODS

// ReadFixed32 reads a 32-bit fixed-width value
func (r *Reader) ReadFixed32() (uint32, error) {
	if r.pos+4 > len(r.buf) {
		return 0, ErrTruncated
	}
	v := binary.LittleEndian.Uint32(r.buf[r.pos:])
	r.pos += 4
	return v, nil
}

// ReadFixed64 reads a 64-bit fixed-width value
func (r *Reader) ReadFixed64() (uint64, error) {
	if r.pos+8 > len(r.buf) {
		return 0, ErrTruncated
	}
	v := binary.LittleEndian.Uint64(r.buf[r.pos:])
	r.pos += 8
	return v, nil
}

// ReadSfixed32 reads a signed 32-bit fixed-width value
func (r *Reader) ReadSfixed32() (int32, error) {
	v, err := r.ReadFixed32()
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}

// ReadSfixed64 reads a signed 64-bit fixed-width value
func (r *Reader) ReadSfixed64() (int64, error) {
	v, err := r.ReadFixed64()
	if err != nil {
		return 0, err
	}
	return int64(v), nil
}

// ReadFloat32 reads a 32-bit float from fixed32 data
func (r *Reader) ReadFloat32() (float32, error) {
	v, err := r.ReadFixed32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// ReadFloat64 reads a 64-bit float from fixed64 data
func (r *Reader) ReadFloat64() (float64, error) {
	v, err := r.ReadFixed64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

// ENCODER METHODS

// WriteFixed32 appends a 32-bit fixed-width value
func (w *Writer) WriteFixed32(v uint32) {
	t := w.target()
	*t = binary.LittleEndian.AppendUint32(*t, v)
}

// WriteFixed64 appends a 64-bit fixed-width value
func (w *Writer) WriteFixed64(v uint64) {
	t := w.target()
	*t = binary.LittleEndian.AppendUint64(*t, v)
}

// WriteSfixed32 appends a signed 32-bit fixed-width value
func (w *Writer) WriteSfixed32(v int32) {
	w.WriteFixed32(uint32(v))
}

// WriteSfixed64 appends a signed 64-bit fixed-width value
func (w *Writer) WriteSfixed64(v int64) {
	w.WriteFixed64(uint64(v))
}

// WriteFloat32 appends a 32-bit float as fixed32
func (w *Writer) WriteFloat32(v float32) {
	w.WriteFixed32(math.Float32bits(v))
}

// WriteFloat64 appends a 64-bit float as fixed64
func (w *Writer) WriteFloat64(v float64) {
	w.WriteFixed64(math.Float64bits(v))
}

// FIELD HELPERS

// WriteFixed32Field writes a tag and a fixed32 value
func (w *Writer) WriteFixed32Field(num FieldNumber, v uint32) {
	w.WriteTag(num, WireFixed32)
	w.WriteFixed32(v)
}

// WriteFixed64Field writes a tag and a fixed64 value
func (w *Writer) WriteFixed64Field(num FieldNumber, v uint64) {
	w.WriteTag(num, WireFixed64)
	w.WriteFixed64(v)
}

// WriteSfixed32Field writes a tag and a signed fixed32 value
func (w *Writer) WriteSfixed32Field(num FieldNumber, v int32) {
	w.WriteTag(num, WireFixed32)
	w.WriteSfixed32(v)
}

// WriteSfixed64Field writes a tag and a signed fixed64 value
func (w *Writer) WriteSfixed64Field(num FieldNumber, v int64) {
	w.WriteTag(num, WireFixed64)
	w.WriteSfixed64(v)
}

// WriteFloat32Field writes a tag and a float32 value
func (w *Writer) WriteFloat32Field(num FieldNumber, v float32) {
	w.WriteTag(num, WireFixed32)
	w.WriteFloat32(v)
}

// WriteFloat64Field writes a tag and a float64 value
func (w *Writer) WriteFloat64Field(num FieldNumber, v float64) {
	w.WriteTag(num, WireFixed64)
	w.WriteFloat64(v)
}
