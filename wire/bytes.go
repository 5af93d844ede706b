package wire

import (
	"strings"
	"unicode/utf8"
)

// DECODER METHODS

// ReadRaw reads n raw bytes starting at the current position. The
// returned slice shares the backing array. It fails with ErrOutOfBounds
// if fewer than n bytes remain.
func (r *Reader) ReadRaw(n int) ([]byte, error) {
	if n < 0 || r.pos+n > len(r.buf) {
		return nil, ErrOutOfBounds
	}
	data := r.buf[r.pos : r.pos+n]
	r.pos += n
	return data, nil
}

// ReadBytes reads a length-delimited byte array. The data is copied so
// the result does not alias the input buffer.
func (r *Reader) ReadBytes() ([]byte, error) {
	raw, err := r.ReadRawBytes()
	if err != nil {
		return nil, err
	}
	data := make([]byte, len(raw))
	copy(data, raw)
	return data, nil
}

// ReadRawBytes reads a length-delimited byte array without copying; the
// returned slice shares the backing array.
func (r *Reader) ReadRawBytes() ([]byte, error) {
	length, err := r.ReadVarint()
	if err != nil {
		return nil, err
	}
	if length > uint64(r.Remaining()) {
		return nil, ErrOutOfBounds
	}
	return r.ReadRaw(int(length))
}

// ReadString reads a length-delimited string. Decoding is strict UTF-8
// by default and fails with ErrInvalidUTF8 on malformed sequences;
// Config.ReplaceInvalidUTF8 switches to replacement-character decoding.
func (r *Reader) ReadString() (string, error) {
	data, err := r.ReadRawBytes()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		if config.ReplaceInvalidUTF8 {
			return strings.ToValidUTF8(string(data), string(utf8.RuneError)), nil
		}
		return "", ErrInvalidUTF8
	}
	return string(data), nil
}

// ENCODER METHODS

// WriteRaw appends raw bytes verbatim, with no length prefix
func (w *Writer) WriteRaw(data []byte) {
	t := w.target()
	*t = append(*t, data...)
}

// WriteBytes appends a varint length prefix followed by the raw bytes
func (w *Writer) WriteBytes(data []byte) {
	w.WriteVarint(uint64(len(data)))
	w.WriteRaw(data)
}

// WriteString appends a string as length-delimited bytes
func (w *Writer) WriteString(s string) {
	w.WriteVarint(uint64(len(s)))
	t := w.target()
	*t = append(*t, s...)
}

// FIELD HELPERS

// WriteBytesField writes a tag and a length-delimited byte array
func (w *Writer) WriteBytesField(num FieldNumber, data []byte) {
	w.WriteTag(num, WireBytes)
	w.WriteBytes(data)
}

// WriteStringField writes a tag and a length-delimited string
func (w *Writer) WriteStringField(num FieldNumber, s string) {
	w.WriteTag(num, WireBytes)
	w.WriteString(s)
}

// UTILITY FUNCTIONS

// BytesSize returns the encoded size of the given bytes
func BytesSize(data []byte) int {
	return VarintSize(uint64(len(data))) + len(data)
}

// StringSize returns the encoded size of the given string
func StringSize(s string) int {
	return VarintSize(uint64(len(s))) + len(s)
}
