package wire

import (
	"bytes"
	"math"
	"math/rand"
	"testing"

	"google.golang.org/protobuf/encoding/protowire"
)

// These tests pin the codec to the reference wire format: every
// primitive must match protowire byte for byte in both directions.

func TestConformance_Varint(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	values := []uint64{0, 1, 127, 128, 300, 1<<32 - 1, 1 << 32, 1<<63 - 1, ^uint64(0)}
	for i := 0; i < 200; i++ {
		values = append(values, rng.Uint64()>>uint(rng.Intn(64)))
	}

	for _, v := range values {
		ours := AppendVarint(nil, v)
		theirs := protowire.AppendVarint(nil, v)
		if !bytes.Equal(ours, theirs) {
			t.Fatalf("AppendVarint(%d) = %v, protowire = %v", v, ours, theirs)
		}

		decoded, n := protowire.ConsumeVarint(ours)
		if n != len(ours) || decoded != v {
			t.Fatalf("protowire rejected our encoding of %d", v)
		}

		got, m, err := DecodeVarint(theirs)
		if err != nil || m != len(theirs) || got != v {
			t.Fatalf("DecodeVarint(protowire(%d)) = (%d, %d, %v)", v, got, m, err)
		}
	}
}

func TestConformance_ZigZag(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	values := []int64{0, 1, -1, 2, -2, math.MaxInt64, math.MinInt64}
	for i := 0; i < 200; i++ {
		values = append(values, int64(rng.Uint64()))
	}

	for _, v := range values {
		if got, want := EncodeZigZag64(v), protowire.EncodeZigZag(v); got != want {
			t.Fatalf("EncodeZigZag64(%d) = %d, protowire = %d", v, got, want)
		}
		enc := EncodeZigZag64(v)
		if got, want := DecodeZigZag64(enc), protowire.DecodeZigZag(enc); got != want {
			t.Fatalf("DecodeZigZag64(%d) = %d, protowire = %d", enc, got, want)
		}
	}
}

func TestConformance_Tags(t *testing.T) {
	pairs := []struct {
		num FieldNumber
		wt  WireType
	}{
		{1, WireVarint},
		{2, WireFixed64},
		{3, WireBytes},
		{15, WireFixed32},
		{16, WireVarint}, // first two-byte tag
		{536870911, WireBytes},
	}

	for _, p := range pairs {
		if got, want := uint64(MakeTag(p.num, p.wt)), uint64(protowire.EncodeTag(protowire.Number(p.num), protowire.Type(p.wt))); got != want {
			t.Fatalf("MakeTag(%d, %v) = %d, protowire = %d", p.num, p.wt, got, want)
		}

		w := NewWriter()
		w.WriteTag(p.num, p.wt)
		ours := w.Take()
		theirs := protowire.AppendTag(nil, protowire.Number(p.num), protowire.Type(p.wt))
		if !bytes.Equal(ours, theirs) {
			t.Fatalf("WriteTag(%d, %v) = %v, protowire = %v", p.num, p.wt, ours, theirs)
		}
	}
}

func TestConformance_ScalarFields(t *testing.T) {
	// One message with every scalar shape, encoded by us, decoded field
	// by field with protowire.
	w := NewWriter()
	w.WriteVarintField(1, 150)
	w.WriteSint64Field(2, -2)
	w.WriteFixed32Field(3, 0xdeadbeef)
	w.WriteFixed64Field(4, 0xfeedfacecafebeef)
	w.WriteFloat32Field(5, 1.5)
	w.WriteFloat64Field(6, -2.5)
	w.WriteBoolField(7, true)
	w.WriteStringField(8, "héllo")
	w.WriteBytesField(9, []byte{0, 1, 2})
	data := w.Take()

	want := protowire.AppendVarint(protowire.AppendTag(nil, 1, protowire.VarintType), 150)
	want = protowire.AppendVarint(protowire.AppendTag(want, 2, protowire.VarintType), protowire.EncodeZigZag(-2))
	want = protowire.AppendFixed32(protowire.AppendTag(want, 3, protowire.Fixed32Type), 0xdeadbeef)
	want = protowire.AppendFixed64(protowire.AppendTag(want, 4, protowire.Fixed64Type), 0xfeedfacecafebeef)
	want = protowire.AppendFixed32(protowire.AppendTag(want, 5, protowire.Fixed32Type), math.Float32bits(1.5))
	want = protowire.AppendFixed64(protowire.AppendTag(want, 6, protowire.Fixed64Type), math.Float64bits(-2.5))
	want = protowire.AppendVarint(protowire.AppendTag(want, 7, protowire.VarintType), 1)
	want = protowire.AppendString(protowire.AppendTag(want, 8, protowire.BytesType), "héllo")
	want = protowire.AppendBytes(protowire.AppendTag(want, 9, protowire.BytesType), []byte{0, 1, 2})

	if !bytes.Equal(data, want) {
		t.Fatalf("scalar message differs from protowire:\n ours  %v\n wire  %v", data, want)
	}
}

func TestConformance_NestedMessage(t *testing.T) {
	// Encoded with our frame stack, decoded with protowire.
	w := NewWriter()
	w.WriteMessageField(5, func(w *Writer) {
		w.WriteVarintField(1, 1)
		w.WriteFloat32Field(2, 2.2)
		w.WriteSint64Field(3, -3)
	})
	data := w.Take()

	num, typ, n := protowire.ConsumeTag(data)
	if n < 0 {
		t.Fatalf("protowire.ConsumeTag: %v", protowire.ParseError(n))
	}
	if num != 5 || typ != protowire.BytesType {
		t.Fatalf("outer tag = (%d, %v)", num, typ)
	}

	payload, n2 := protowire.ConsumeBytes(data[n:])
	if n2 < 0 {
		t.Fatalf("protowire.ConsumeBytes: %v", protowire.ParseError(n2))
	}
	if n+n2 != len(data) {
		t.Fatalf("outer field consumed %d of %d bytes", n+n2, len(data))
	}

	var sawVarint, sawFloat, sawSint bool
	for len(payload) > 0 {
		num, typ, n := protowire.ConsumeTag(payload)
		if n < 0 {
			t.Fatalf("inner tag: %v", protowire.ParseError(n))
		}
		payload = payload[n:]

		switch num {
		case 1:
			v, n := protowire.ConsumeVarint(payload)
			if v != 1 {
				t.Errorf("inner field 1 = %d", v)
			}
			payload = payload[n:]
			sawVarint = true
		case 2:
			v, n := protowire.ConsumeFixed32(payload)
			if math.Float32frombits(v) != 2.2 {
				t.Errorf("inner field 2 = %v", math.Float32frombits(v))
			}
			payload = payload[n:]
			sawFloat = true
		case 3:
			v, n := protowire.ConsumeVarint(payload)
			if protowire.DecodeZigZag(v) != -3 {
				t.Errorf("inner field 3 = %d", protowire.DecodeZigZag(v))
			}
			payload = payload[n:]
			sawSint = true
		default:
			n = protowire.ConsumeFieldValue(num, typ, payload)
			payload = payload[n:]
		}
	}
	if !sawVarint || !sawFloat || !sawSint {
		t.Errorf("missing inner fields: varint=%v float=%v sint=%v", sawVarint, sawFloat, sawSint)
	}
}

func TestConformance_DecodeProtowireMessage(t *testing.T) {
	// Encoded with protowire, decoded with our reader.
	inner := protowire.AppendVarint(protowire.AppendTag(nil, 1, protowire.VarintType), 99)
	inner = protowire.AppendString(protowire.AppendTag(inner, 2, protowire.BytesType), "pw")
	data := protowire.AppendBytes(protowire.AppendTag(nil, 7, protowire.BytesType), inner)

	var gotNum uint64
	var gotStr string
	r := NewReader(data)
	err := r.ReadFields(r.Len(), func(num FieldNumber, wt WireType, r *Reader) error {
		if num != 7 {
			return r.Skip(wt)
		}
		return r.ReadMessage(func(num FieldNumber, wt WireType, r *Reader) error {
			var err error
			switch num {
			case 1:
				gotNum, err = r.ReadVarint()
			case 2:
				gotStr, err = r.ReadString()
			default:
				err = r.Skip(wt)
			}
			return err
		})
	})
	if err != nil {
		t.Fatalf("decode protowire message: %v", err)
	}
	if gotNum != 99 || gotStr != "pw" {
		t.Errorf("decoded (%d, %q), want (99, \"pw\")", gotNum, gotStr)
	}
}

func TestConformance_PackedField(t *testing.T) {
	w := NewWriter()
	w.WritePackedVarintField(4, []uint64{1, 2, 3})
	data := w.Take()

	payload := protowire.AppendVarint(nil, 1)
	payload = protowire.AppendVarint(payload, 2)
	payload = protowire.AppendVarint(payload, 3)
	want := protowire.AppendBytes(protowire.AppendTag(nil, 4, protowire.BytesType), payload)

	if !bytes.Equal(data, want) {
		t.Fatalf("packed field = %v, protowire = %v", data, want)
	}
}
