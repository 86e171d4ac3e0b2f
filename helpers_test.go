package dynpb

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// Test schema, shared across the package tests:
//
//	enum test.Color { RED = 0; GREEN = 1; }
//
//	message test.Inner {
//	    optional int32 c = 1;
//	    optional int32 d = 2 [default = 7];
//	}
//
//	message test.Outer {
//	    optional test.Inner b = 1;
//	}
//
//	message test.Msg {
//	    optional int32      x      = 1;
//	    repeated int32      ys     = 2;
//	    optional string     name   = 3;
//	    repeated string     tags   = 4;
//	    optional test.Color color  = 5;
//	    optional test.Inner inner  = 6;
//	    repeated test.Inner inners = 7;
//	}
//
//	message test.Scalars { one singular field per scalar kind, 1..15 }
//
// test.BadRef references types that are never registered, and
// test.HasGroup declares a legacy group field.
func testRegistry() *Registry {
	reg := NewRegistry()
	reg.AddEnum(&EnumDesc{
		Name:   "test.Color",
		Values: map[int32]string{0: "RED", 1: "GREEN"},
	})
	reg.AddMessage(&MessageDesc{
		Name: "test.Inner",
		Fields: []*FieldDesc{
			{Name: "c", Number: 1, Kind: KindInt32},
			{Name: "d", Number: 2, Kind: KindInt32, Default: Int32(7)},
		},
	})
	reg.AddMessage(&MessageDesc{
		Name: "test.Outer",
		Fields: []*FieldDesc{
			{Name: "b", Number: 1, Kind: KindMessage, TypeName: "test.Inner"},
		},
	})
	reg.AddMessage(&MessageDesc{
		Name: "test.Msg",
		Fields: []*FieldDesc{
			{Name: "x", Number: 1, Kind: KindInt32},
			{Name: "ys", Number: 2, Kind: KindInt32, Repeated: true},
			{Name: "name", Number: 3, Kind: KindString},
			{Name: "tags", Number: 4, Kind: KindString, Repeated: true},
			{Name: "color", Number: 5, Kind: KindEnum, TypeName: "test.Color"},
			{Name: "inner", Number: 6, Kind: KindMessage, TypeName: "test.Inner"},
			{Name: "inners", Number: 7, Kind: KindMessage, TypeName: "test.Inner", Repeated: true},
		},
	})
	reg.AddMessage(&MessageDesc{
		Name: "test.Scalars",
		Fields: []*FieldDesc{
			{Name: "b", Number: 1, Kind: KindBool},
			{Name: "i32", Number: 2, Kind: KindInt32},
			{Name: "i64", Number: 3, Kind: KindInt64},
			{Name: "u32", Number: 4, Kind: KindUint32},
			{Name: "u64", Number: 5, Kind: KindUint64},
			{Name: "s32", Number: 6, Kind: KindSint32},
			{Name: "s64", Number: 7, Kind: KindSint64},
			{Name: "f32", Number: 8, Kind: KindFixed32},
			{Name: "f64", Number: 9, Kind: KindFixed64},
			{Name: "sf32", Number: 10, Kind: KindSfixed32},
			{Name: "sf64", Number: 11, Kind: KindSfixed64},
			{Name: "fl", Number: 12, Kind: KindFloat},
			{Name: "db", Number: 13, Kind: KindDouble},
			{Name: "by", Number: 14, Kind: KindBytes},
			{Name: "st", Number: 15, Kind: KindString},
		},
	})
	reg.AddMessage(&MessageDesc{
		Name: "test.BadRef",
		Fields: []*FieldDesc{
			{Name: "m", Number: 1, Kind: KindMessage, TypeName: "test.Missing"},
			{Name: "e", Number: 2, Kind: KindEnum, TypeName: "test.NoSuchEnum"},
		},
	})
	reg.AddMessage(&MessageDesc{
		Name: "test.HasGroup",
		Fields: []*FieldDesc{
			{Name: "g", Number: 1, Kind: KindGroup},
		},
	})
	return reg
}

// newTestMessage decodes bs into a fresh message of the named type,
// failing the test on any error.
func newTestMessage(t *testing.T, reg *Registry, name string, bs []byte) *Message {
	t.Helper()
	desc, ok := reg.Message(name)
	if !ok {
		t.Fatalf("message type %s not registered", name)
	}
	m := NewMessage(desc)
	if err := m.Merge(reg, bs); err != nil {
		t.Fatalf("Merge(%s, % x) got err: %v", name, bs, err)
	}
	return m
}

// mustValues returns the repeated values of the named field.
func mustValues(t *testing.T, m *Message, name string) []Value {
	t.Helper()
	f, ok := m.FieldByName(name)
	if !ok {
		t.Fatalf("message %s has no field %q", m.Desc().Name, name)
	}
	return f.Values()
}

// mustGet returns the singular value of the named field, failing if
// the field is absent.
func mustGet(t *testing.T, m *Message, name string) Value {
	t.Helper()
	f, ok := m.FieldByName(name)
	if !ok {
		t.Fatalf("message %s has no field %q", m.Desc().Name, name)
	}
	v, ok := f.Get()
	if !ok {
		t.Fatalf("field %s is absent", name)
	}
	return v
}

// valueDiff compares Value trees with go-cmp, treating nested
// messages by their own equality.
var valueDiff = cmp.Comparer(func(a, b *Message) bool { return a.Equal(b) })
