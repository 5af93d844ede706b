package wire

// MaxVarintLen is the maximum number of bytes in the varint encoding of
// a 64-bit value: ceil(64/7) = 10.
const MaxVarintLen = 10

// AppendVarint appends the base-128 varint encoding of v to buf and
// returns the extended buffer. The encoding is minimal length: low-order
// 7 bits first, continuation bit 0x80 on every byte except the last.
func AppendVarint(buf []byte, v uint64) []byte {
	for v >= 0x80 {
		buf = append(buf, byte(v)|0x80)
		v >>= 7
	}
	return append(buf, byte(v))
}

// DecodeVarint decodes a varint from the start of buf and returns the
// value and the number of bytes consumed. It fails with ErrTruncated if
// buf ends mid-varint and with ErrVarintOverflow if the encoding runs
// past 10 continuation groups, which bounds the work done on hostile
// non-terminating input.
func DecodeVarint(buf []byte) (uint64, int, error) {
	var v uint64
	var shift uint

	for n := 0; n < MaxVarintLen; n++ {
		if n >= len(buf) {
			return 0, 0, ErrTruncated
		}

		b := buf[n]
		v |= uint64(b&0x7f) << shift

		if b&0x80 == 0 {
			return v, n + 1, nil
		}
		shift += 7
	}

	return 0, 0, ErrVarintOverflow
}

// VarintSize returns the number of bytes needed to encode the given varint
func VarintSize(v uint64) int {
	switch {
	case v < 1<<7:
		return 1
	case v < 1<<14:
		return 2
	case v < 1<<21:
		return 3
	case v < 1<<28:
		return 4
	case v < 1<<35:
		return 5
	case v < 1<<42:
		return 6
	case v < 1<<49:
		return 7
	case v < 1<<56:
		return 8
	case v < 1<<63:
		return 9
	default:
		return 10
	}
}

// EncodeZigZag64 encodes a signed 64-bit integer using zigzag encoding.
// Small-magnitude values of either sign map to small unsigned values, so
// they stay short under varint encoding.
func EncodeZigZag64(v int64) uint64 {
	return uint64((v << 1) ^ (v >> 63))
}

// DecodeZigZag64 decodes a zigzag-encoded 64-bit integer. It is the
// exact inverse of EncodeZigZag64.
func DecodeZigZag64(encoded uint64) int64 {
	return int64((encoded >> 1) ^ uint64(-int64(encoded&1)))
}

// EncodeZigZag32 encodes a signed 32-bit integer using zigzag encoding
func EncodeZigZag32(v int32) uint64 {
	return uint64((uint32(v) << 1) ^ uint32(v>>31))
}

// DecodeZigZag32 decodes a zigzag-encoded 32-bit integer
func DecodeZigZag32(encoded uint64) int32 {
	return int32((uint32(encoded) >> 1) ^ uint32(-int32(encoded&1)))
}
