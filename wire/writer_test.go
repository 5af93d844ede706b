package wire

import (
	"bytes"
	"testing"
)

func TestWriter_FrameStack(t *testing.T) {
	// A nested message is framed by push/pop: the child's length lands
	// in front of its bytes with no backpatching.
	w := NewWriter()
	w.WriteTag(5, WireBytes)
	w.PushFrame()
	w.WriteVarintField(1, 1)
	w.WriteFloat32Field(2, 2.2)
	w.WriteSint64Field(3, -3)
	w.PopFrame()
	got := w.Take()

	want := []byte{42, 9, 8, 1, 21, 205, 204, 12, 64, 24, 5}
	if !bytes.Equal(got, want) {
		t.Errorf("framed message = %v, want %v", got, want)
	}
}

func TestWriter_WriteMessageField(t *testing.T) {
	w := NewWriter()
	w.WriteMessageField(5, func(w *Writer) {
		w.WriteVarintField(1, 1)
		w.WriteFloat32Field(2, 2.2)
		w.WriteSint64Field(3, -3)
	})
	got := w.Take()

	want := []byte{42, 9, 8, 1, 21, 205, 204, 12, 64, 24, 5}
	if !bytes.Equal(got, want) {
		t.Errorf("WriteMessageField = %v, want %v", got, want)
	}
}

func TestWriter_DeepNesting(t *testing.T) {
	// Three levels: outer{ mid{ inner{ field } } }
	w := NewWriter()
	w.WriteMessageField(1, func(w *Writer) {
		w.WriteMessageField(1, func(w *Writer) {
			w.WriteMessageField(1, func(w *Writer) {
				w.WriteVarintField(2, 7)
			})
		})
	})
	got := w.Take()

	// inner: tag(2,varint)=16, 7         -> [16 7]
	// level3: tag(1,bytes)=10, len 2     -> [10 2 16 7]
	// level2: tag(1,bytes)=10, len 4     -> [10 4 10 2 16 7]
	// level1: tag(1,bytes)=10, len 6     -> [10 6 10 4 10 2 16 7]
	want := []byte{10, 6, 10, 4, 10, 2, 16, 7}
	if !bytes.Equal(got, want) {
		t.Errorf("deep nesting = %v, want %v", got, want)
	}
}

func TestWriter_EmptyFrame(t *testing.T) {
	w := NewWriter()
	w.WriteMessageField(3, func(*Writer) {})
	got := w.Take()

	want := []byte{26, 0} // tag(3,bytes), length 0
	if !bytes.Equal(got, want) {
		t.Errorf("empty message = %v, want %v", got, want)
	}
}

func TestWriter_TakeResets(t *testing.T) {
	w := NewWriter()
	w.WriteVarint(5)
	first := w.Take()

	if w.Len() != 0 {
		t.Errorf("Len after Take = %d, want 0", w.Len())
	}

	w.WriteVarint(6)
	second := w.Take()

	if !bytes.Equal(first, []byte{5}) || !bytes.Equal(second, []byte{6}) {
		t.Errorf("takes = %v, %v", first, second)
	}
}

func TestWriter_ScratchReuse(t *testing.T) {
	// Frames popped at the same depth reuse the same scratch buffer.
	w := NewWriter()
	for i := 0; i < 3; i++ {
		w.WriteMessageField(1, func(w *Writer) {
			w.WriteVarintField(1, uint64(i))
		})
	}
	data := w.Take()

	r := NewReader(data)
	var vals []uint64
	err := r.ReadFields(r.Len(), func(num FieldNumber, wt WireType, r *Reader) error {
		return r.ReadMessage(func(num FieldNumber, wt WireType, r *Reader) error {
			v, err := r.ReadVarint()
			vals = append(vals, v)
			return err
		})
	})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(vals) != 3 || vals[0] != 0 || vals[1] != 1 || vals[2] != 2 {
		t.Errorf("decoded %v, want [0 1 2]", vals)
	}
}

func TestWriter_PopFrameImbalance(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("PopFrame on an empty stack should panic")
		}
	}()
	NewWriter().PopFrame()
}

func TestWriter_TakeWithOpenFrame(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Take with an open frame should panic")
		}
	}()
	w := NewWriter()
	w.PushFrame()
	w.Take()
}

func TestWriter_Reset(t *testing.T) {
	w := NewWriter()
	w.WriteVarint(1)
	w.PushFrame()
	w.WriteVarint(2)
	w.Reset()

	if w.Len() != 0 || w.Depth() != 0 {
		t.Fatalf("after Reset: Len=%d Depth=%d", w.Len(), w.Depth())
	}

	w.WriteVarint(9)
	if got := w.Take(); !bytes.Equal(got, []byte{9}) {
		t.Errorf("write after Reset = %v, want [9]", got)
	}
}

func TestWriter_ScalarFieldHelpers(t *testing.T) {
	w := NewWriter()
	w.WriteInt32Field(1, -1)
	w.WriteInt64Field(2, -2)
	w.WriteSint32Field(3, -3)
	w.WriteBoolField(4, true)
	data := w.Take()

	r := NewReader(data)
	err := r.ReadFields(r.Len(), func(num FieldNumber, wt WireType, r *Reader) error {
		switch num {
		case 1:
			v, err := r.ReadInt32()
			if v != -1 {
				t.Errorf("field 1 = %d", v)
			}
			return err
		case 2:
			v, err := r.ReadInt64()
			if v != -2 {
				t.Errorf("field 2 = %d", v)
			}
			return err
		case 3:
			v, err := r.ReadSint32()
			if v != -3 {
				t.Errorf("field 3 = %d", v)
			}
			return err
		case 4:
			v, err := r.ReadBool()
			if !v {
				t.Errorf("field 4 = false")
			}
			return err
		}
		return r.Skip(wt)
	})
	if err != nil {
		t.Fatalf("ReadFields: %v", err)
	}
}
