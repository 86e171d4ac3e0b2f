package dynpb

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/kr/pretty"
)

func TestEncodeRoundTrip(t *testing.T) {
	reg := testRegistry()
	desc, _ := reg.Message("test.Scalars")

	m := NewMessage(desc)
	set := func(name string, v Value) {
		f, ok := m.FieldByName(name)
		if !ok {
			t.Fatalf("no field %q", name)
		}
		if err := f.Set(v); err != nil {
			t.Fatalf("Set(%s, %v) got err: %v", name, v, err)
		}
	}
	set("b", Bool(true))
	set("i32", Int32(-42))
	set("i64", Int64(1<<40))
	set("u32", Uint32(42))
	set("u64", Uint64(1<<63))
	set("s32", Sint32(-7))
	set("s64", Sint64(-1<<40))
	set("f32", Fixed32(0xdeadbeef))
	set("f64", Fixed64(0xdeadbeefcafe))
	set("sf32", Sfixed32(-1))
	set("sf64", Sfixed64(-2))
	set("fl", Float(1.5))
	set("db", Double(-2.25))
	set("by", Bytes{0x00, 0x01, 0xff})
	set("st", String("hello"))

	got := NewMessage(desc)
	if err := got.Merge(reg, m.Encode()); err != nil {
		t.Fatalf("Merge of re-encoded bytes got err: %v", err)
	}
	if !got.Equal(m) {
		t.Fatalf("round trip changed the message:\n got: %# v\nwant: %# v",
			pretty.Formatter(got), pretty.Formatter(m))
	}
}

func TestEncodeRoundTripNested(t *testing.T) {
	reg := testRegistry()
	raw := []byte{
		0x08, 0x05, // x = 5
		0x12, 0x02, 0x01, 0x02, // ys = [1 2]
		0x1a, 0x02, 'h', 'i', // name = "hi"
		0x22, 0x01, 'a', // tags = ["a"]
		0x22, 0x01, 'b', // tags += ["b"]
		0x28, 0x01, // color = GREEN
		0x32, 0x04, 0x08, 0x01, 0x10, 0x02, // inner = {c:1, d:2}
		// The inners element carries d = 7 explicitly: a fresh Inner
		// seeds d's declared default as present, and present fields
		// re-encode.
		0x3a, 0x04, 0x08, 0x09, 0x10, 0x07, // inners = [{c:9, d:7}]
	}
	m := newTestMessage(t, reg, "test.Msg", raw)
	if diff := cmp.Diff(m.Encode(), raw); diff != "" {
		t.Errorf("re-encode differs from input (-got+want):\n%s", diff)
	}
}

func TestEncodeFieldOrder(t *testing.T) {
	reg := testRegistry()

	// Input carries field 3 before field 1; output is always in
	// ascending field-number order.
	raw := []byte{
		0x1a, 0x02, 'h', 'i', // name = "hi"
		0x08, 0x05, // x = 5
	}
	m := newTestMessage(t, reg, "test.Msg", raw)
	want := []byte{
		0x08, 0x05,
		0x1a, 0x02, 'h', 'i',
	}
	if diff := cmp.Diff(m.Encode(), want); diff != "" {
		t.Errorf("encode wrong order (-got+want):\n%s", diff)
	}
}

func TestEncodeRepeatedShapes(t *testing.T) {
	reg := testRegistry()
	desc, _ := reg.Message("test.Msg")

	m := NewMessage(desc)
	ys, _ := m.FieldByName("ys")
	for _, v := range []int32{1, 2, 300} {
		if err := ys.Append(Int32(v)); err != nil {
			t.Fatalf("Append got err: %v", err)
		}
	}
	tags, _ := m.FieldByName("tags")
	for _, s := range []string{"a", "bc"} {
		if err := tags.Append(String(s)); err != nil {
			t.Fatalf("Append got err: %v", err)
		}
	}

	want := []byte{
		// Numeric scalars pack: one tag, one length, raw values.
		0x12, 0x04, 0x01, 0x02, 0xac, 0x02,
		// Strings never pack: one tag per element.
		0x22, 0x01, 'a',
		0x22, 0x02, 'b', 'c',
	}
	if diff := cmp.Diff(m.Encode(), want); diff != "" {
		t.Errorf("encode wrong shape (-got+want):\n%s", diff)
	}
}

func TestEncodeAbsentSingularOmitted(t *testing.T) {
	reg := testRegistry()
	desc, _ := reg.Message("test.Msg")
	m := NewMessage(desc)
	if got := m.Encode(); len(got) != 0 {
		t.Errorf("empty message encoded to % x, want no bytes", got)
	}
}

func TestFieldEncode(t *testing.T) {
	reg := testRegistry()
	desc, _ := reg.Message("test.Msg")
	m := NewMessage(desc)
	f, _ := m.FieldByName("x")
	if err := f.Set(Int32(5)); err != nil {
		t.Fatalf("Set got err: %v", err)
	}
	if diff := cmp.Diff(f.Encode(), []byte{0x08, 0x05}); diff != "" {
		t.Errorf("Field.Encode wrong bytes (-got+want):\n%s", diff)
	}
}

func TestWriteTo(t *testing.T) {
	reg := testRegistry()
	m := newTestMessage(t, reg, "test.Msg", nil)
	f, _ := m.FieldByName("x")
	if err := f.Set(Int32(5)); err != nil {
		t.Fatalf("Set: %v", err)
	}

	var buf bytes.Buffer
	n, err := m.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if want := m.Encode(); !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("WriteTo wrote % x, want % x", buf.Bytes(), want)
	} else if n != int64(len(want)) {
		t.Errorf("WriteTo reported %d bytes, want %d", n, len(want))
	}
}
