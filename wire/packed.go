package wire

// Packed repeated fields carry all elements in one length-delimited
// payload with no per-element tags. Varint-width elements have unknown
// total length until encoded, so the writer routes them through a nested
// frame; fixed-width elements compute the length as count * width.

// DECODER METHODS

// readPackedEnd reads the payload length and returns the end offset.
func (r *Reader) readPackedEnd() (int, error) {
	length, err := r.ReadVarint()
	if err != nil {
		return 0, err
	}
	if length > uint64(r.Remaining()) {
		return 0, ErrOutOfBounds
	}
	return r.pos + int(length), nil
}

// ReadPackedVarint reads a packed repeated field of unsigned varints
func (r *Reader) ReadPackedVarint() ([]uint64, error) {
	end, err := r.readPackedEnd()
	if err != nil {
		return nil, err
	}
	var vals []uint64
	for r.pos < end {
		v, err := r.ReadVarint()
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	if r.pos != end {
		return nil, ErrUnexpectedEndOfMessage
	}
	return vals, nil
}

// ReadPackedSint64 reads a packed repeated field of zigzag varints
func (r *Reader) ReadPackedSint64() ([]int64, error) {
	end, err := r.readPackedEnd()
	if err != nil {
		return nil, err
	}
	var vals []int64
	for r.pos < end {
		v, err := r.ReadSint64()
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	if r.pos != end {
		return nil, ErrUnexpectedEndOfMessage
	}
	return vals, nil
}

// ReadPackedBool reads a packed repeated field of bools
func (r *Reader) ReadPackedBool() ([]bool, error) {
	end, err := r.readPackedEnd()
	if err != nil {
		return nil, err
	}
	var vals []bool
	for r.pos < end {
		v, err := r.ReadBool()
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	if r.pos != end {
		return nil, ErrUnexpectedEndOfMessage
	}
	return vals, nil
}

// ReadPackedFixed32 reads a packed repeated field of fixed32 values
func (r *Reader) ReadPackedFixed32() ([]uint32, error) {
	end, err := r.readPackedEnd()
	if err != nil {
		return nil, err
	}
	if (end-r.pos)%4 != 0 {
		return nil, ErrUnexpectedEndOfMessage
	}
	vals := make([]uint32, 0, (end-r.pos)/4)
	for r.pos < end {
		v, err := r.ReadFixed32()
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	return vals, nil
}

// ReadPackedFixed64 reads a packed repeated field of fixed64 values
func (r *Reader) ReadPackedFixed64() ([]uint64, error) {
	end, err := r.readPackedEnd()
	if err != nil {
		return nil, err
	}
	if (end-r.pos)%8 != 0 {
		return nil, ErrUnexpectedEndOfMessage
	}
	vals := make([]uint64, 0, (end-r.pos)/8)
	for r.pos < end {
		v, err := r.ReadFixed64()
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	return vals, nil
}

// ReadPackedFloat32 reads a packed repeated field of float32 values
func (r *Reader) ReadPackedFloat32() ([]float32, error) {
	end, err := r.readPackedEnd()
	if err != nil {
		return nil, err
	}
	if (end-r.pos)%4 != 0 {
		return nil, ErrUnexpectedEndOfMessage
	}
	vals := make([]float32, 0, (end-r.pos)/4)
	for r.pos < end {
		v, err := r.ReadFloat32()
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	return vals, nil
}

// ReadPackedFloat64 reads a packed repeated field of float64 values
func (r *Reader) ReadPackedFloat64() ([]float64, error) {
	end, err := r.readPackedEnd()
	if err != nil {
		return nil, err
	}
	if (end-r.pos)%8 != 0 {
		return nil, ErrUnexpectedEndOfMessage
	}
	vals := make([]float64, 0, (end-r.pos)/8)
	for r.pos < end {
		v, err := r.ReadFloat64()
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	return vals, nil
}

// ENCODER FIELD HELPERS

// WritePackedVarintField writes a packed repeated field of unsigned
// varints. Element lengths are not known up front, so the payload is
// built in a nested frame and length-prefixed when the frame pops.
func (w *Writer) WritePackedVarintField(num FieldNumber, vals []uint64) {
	w.WriteTag(num, WireBytes)
	w.PushFrame()
	for _, v := range vals {
		w.WriteVarint(v)
	}
	w.PopFrame()
}

// WritePackedSint64Field writes a packed repeated field of zigzag varints
func (w *Writer) WritePackedSint64Field(num FieldNumber, vals []int64) {
	w.WriteTag(num, WireBytes)
	w.PushFrame()
	for _, v := range vals {
		w.WriteSint64(v)
	}
	w.PopFrame()
}

// WritePackedBoolField writes a packed repeated field of bools
func (w *Writer) WritePackedBoolField(num FieldNumber, vals []bool) {
	w.WriteTag(num, WireBytes)
	w.WriteVarint(uint64(len(vals)))
	for _, v := range vals {
		w.WriteBool(v)
	}
}

// WritePackedFixed32Field writes a packed repeated field of fixed32
// values; the payload length is count * 4, known up front.
func (w *Writer) WritePackedFixed32Field(num FieldNumber, vals []uint32) {
	w.WriteTag(num, WireBytes)
	w.WriteVarint(uint64(len(vals)) * 4)
	for _, v := range vals {
		w.WriteFixed32(v)
	}
}

// WritePackedFixed64Field writes a packed repeated field of fixed64 values
func (w *Writer) WritePackedFixed64Field(num FieldNumber, vals []uint64) {
	w.WriteTag(num, WireBytes)
	w.WriteVarint(uint64(len(vals)) * 8)
	for _, v := range vals {
		w.WriteFixed64(v)
	}
}

// WritePackedFloat32Field writes a packed repeated field of float32 values
func (w *Writer) WritePackedFloat32Field(num FieldNumber, vals []float32) {
	w.WriteTag(num, WireBytes)
	w.WriteVarint(uint64(len(vals)) * 4)
	for _, v := range vals {
		w.WriteFloat32(v)
	}
}

// WritePackedFloat64Field writes a packed repeated field of float64 values
func (w *Writer) WritePackedFloat64Field(num FieldNumber, vals []float64) {
	w.WriteTag(num, WireBytes)
	w.WriteVarint(uint64(len(vals)) * 8)
	for _, v := range vals {
		w.WriteFloat64(v)
	}
}
