package dynpb

import (
	"bytes"

	"github.com/dynpb/dynpb/wire"
	"google.golang.org/protobuf/encoding/protowire"
)

// A Value is a single decoded protobuf value. It is a closed union:
// the only implementations are the named types in this package, one
// per declared field kind. In particular the varint, zigzag and
// fixed-width integer representations stay distinct variants, so
// that a value always re-encodes the way its field declares.
type Value interface {
	// Kind reports the declared kind this value corresponds to.
	Kind() Kind

	// wireType returns the wire type used when the value is encoded
	// with its own tag.
	wireType() protowire.Type
	// encodeTo appends the value's wire encoding, without a tag.
	encodeTo(e *wire.Encoder)
}

// Bool is a boolean value.
type Bool bool

// Int32 is a 32-bit signed integer value.
type Int32 int32

// Int64 is a 64-bit signed integer value.
type Int64 int64

// Uint32 is a 32-bit unsigned integer value.
type Uint32 uint32

// Uint64 is a 64-bit unsigned integer value.
type Uint64 uint64

// Sint32 is a 32-bit signed integer value using the zigzag encoding,
// which is more compact for negative numbers.
type Sint32 int32

// Sint64 is a 64-bit signed integer value using the zigzag encoding.
type Sint64 int64

// Fixed32 is a 32-bit fixed-width unsigned integer value.
type Fixed32 uint32

// Fixed64 is a 64-bit fixed-width unsigned integer value.
type Fixed64 uint64

// Sfixed32 is a 32-bit fixed-width signed integer value.
type Sfixed32 int32

// Sfixed64 is a 64-bit fixed-width signed integer value.
type Sfixed64 int64

// Float is a 32-bit floating point value.
type Float float32

// Double is a 64-bit floating point value.
type Double float64

// Bytes is a byte sequence value.
type Bytes []byte

// String is a string value.
type String string

// Enum is an enum value, carrying the raw wire number. The number is
// preserved even when it matches no declared enumerator, so unknown
// enumerators survive a decode/encode round trip.
type Enum int32

func (Bool) Kind() Kind { return KindBool }
func (Int32) Kind() Kind { return KindInt32 }
func (Int64) Kind() Kind { return KindInt64 }
func (Uint32) Kind() Kind { return KindUint32 }
func (Uint64) Kind() Kind { return KindUint64 }
func (Sint32) Kind() Kind { return KindSint32 }
func (Sint64) Kind() Kind { return KindSint64 }
func (Fixed32) Kind() Kind { return KindFixed32 }
func (Fixed64) Kind() Kind { return KindFixed64 }
func (Sfixed32) Kind() Kind { return KindSfixed32 }
func (Sfixed64) Kind() Kind { return KindSfixed64 }
func (Float) Kind() Kind { return KindFloat }
func (Double) Kind() Kind { return KindDouble }
func (Bytes) Kind() Kind { return KindBytes }
func (String) Kind() Kind { return KindString }
func (Enum) Kind() Kind { return KindEnum }

func (Bool) wireType() protowire.Type { return protowire.VarintType }
func (Int32) wireType() protowire.Type { return protowire.VarintType }
func (Int64) wireType() protowire.Type { return protowire.VarintType }
func (Uint32) wireType() protowire.Type { return protowire.VarintType }
func (Uint64) wireType() protowire.Type { return protowire.VarintType }
func (Sint32) wireType() protowire.Type { return protowire.VarintType }
func (Sint64) wireType() protowire.Type { return protowire.VarintType }
func (Enum) wireType() protowire.Type { return protowire.VarintType }
func (Fixed32) wireType() protowire.Type { return protowire.Fixed32Type }
func (Sfixed32) wireType() protowire.Type { return protowire.Fixed32Type }
func (Float) wireType() protowire.Type { return protowire.Fixed32Type }
func (Fixed64) wireType() protowire.Type { return protowire.Fixed64Type }
func (Sfixed64) wireType() protowire.Type { return protowire.Fixed64Type }
func (Double) wireType() protowire.Type { return protowire.Fixed64Type }
func (Bytes) wireType() protowire.Type { return protowire.BytesType }
func (String) wireType() protowire.Type { return protowire.BytesType }

func (v Bool) encodeTo(e *wire.Encoder) { e.Bool(bool(v)) }
func (v Int32) encodeTo(e *wire.Encoder) { e.Int32(int32(v)) }
func (v Int64) encodeTo(e *wire.Encoder) { e.Int64(int64(v)) }
func (v Uint32) encodeTo(e *wire.Encoder) { e.Uint32(uint32(v)) }
func (v Uint64) encodeTo(e *wire.Encoder) { e.Uint64(uint64(v)) }
func (v Sint32) encodeTo(e *wire.Encoder) { e.Sint32(int32(v)) }
func (v Sint64) encodeTo(e *wire.Encoder) { e.Sint64(int64(v)) }
func (v Enum) encodeTo(e *wire.Encoder) { e.Int32(int32(v)) }
func (v Fixed32) encodeTo(e *wire.Encoder) { e.Fixed32(uint32(v)) }
func (v Sfixed32) encodeTo(e *wire.Encoder) { e.Sfixed32(int32(v)) }
func (v Float) encodeTo(e *wire.Encoder) { e.Float(float32(v)) }
func (v Fixed64) encodeTo(e *wire.Encoder) { e.Fixed64(uint64(v)) }
func (v Sfixed64) encodeTo(e *wire.Encoder) { e.Sfixed64(int64(v)) }
func (v Double) encodeTo(e *wire.Encoder) { e.Double(float64(v)) }
func (v Bytes) encodeTo(e *wire.Encoder) { e.Bytes([]byte(v)) }
func (v String) encodeTo(e *wire.Encoder) { e.String(string(v)) }

// packable reports whether v belongs to the numeric scalar kinds
// that may use the packed repeated encoding. Strings, bytes, enums
// and messages are always encoded one tag per element.
func packable(v Value) bool {
	switch v.(type) {
	case Bool, Int32, Int64, Uint32, Uint64, Sint32, Sint64,
		Fixed32, Fixed64, Sfixed32, Sfixed64, Float, Double:
		return true
	}
	return false
}

// valueEqual reports whether two values are the same variant with
// equal contents.
func valueEqual(a, b Value) bool {
	switch av := a.(type) {
	case Bytes:
		bv, ok := b.(Bytes)
		return ok && bytes.Equal(av, bv)
	case *Message:
		bv, ok := b.(*Message)
		return ok && av.Equal(bv)
	default:
		return a == b
	}
}
