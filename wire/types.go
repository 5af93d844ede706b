package wire

// ===== PROTOBUF WIRE FORMAT TYPES =====

// WireType represents protobuf wire format types
type WireType int32

const (
	WireVarint  WireType = 0 // int32, int64, uint32, uint64, sint32, sint64, bool, enum
	WireFixed64 WireType = 1 // 64-bit: double, fixed64, sfixed64
	WireBytes   WireType = 2 // len-delimited: string, bytes, embedded messages, packed repeated fields
	WireFixed32 WireType = 5 // 32-bit: float, fixed32, sfixed32
)

// Valid reports whether wt is one of the four supported wire types.
// Wire types 3 and 4 (groups) are deprecated and unsupported; 6 and 7
// are unassigned.
func (wt WireType) Valid() bool {
	switch wt {
	case WireVarint, WireFixed64, WireBytes, WireFixed32:
		return true
	}
	return false
}

// String returns the canonical name of the wire type.
func (wt WireType) String() string {
	switch wt {
	case WireVarint:
		return "varint"
	case WireFixed64:
		return "fixed64"
	case WireBytes:
		return "bytes"
	case WireFixed32:
		return "fixed32"
	}
	return "invalid"
}

// FieldNumber represents a protobuf field number. Field number 0 is
// never valid on the wire.
type FieldNumber int32

// Tag represents a protobuf field tag (field number + wire type).
// A tag is never stored; it is computed on demand.
type Tag uint64

// MakeTag creates a tag from field number and wire type
func MakeTag(fieldNumber FieldNumber, wireType WireType) Tag {
	return Tag(uint64(fieldNumber)<<3 | uint64(wireType))
}

// ParseTag parses a tag into field number and wire type
func ParseTag(tag Tag) (FieldNumber, WireType) {
	return FieldNumber(tag >> 3), WireType(tag & 0x7)
}
