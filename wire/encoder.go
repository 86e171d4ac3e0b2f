package wire

import (
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// An Encoder provides utilities to write protobuf wire format data
// to a byte slice.
//
// Methods append to [Encoder.Out] verbatim. The zero Encoder is
// ready to use.
type Encoder struct {
	// Out is the encoded output.
	Out []byte
}

// Tag writes one field tag.
func (e *Encoder) Tag(num protowire.Number, typ protowire.Type) {
	e.Out = protowire.AppendTag(e.Out, num, typ)
}

// Varint writes one base-128 varint.
func (e *Encoder) Varint(v uint64) {
	e.Out = protowire.AppendVarint(e.Out, v)
}

// Fixed32 writes one 32-bit little-endian value.
func (e *Encoder) Fixed32(v uint32) {
	e.Out = protowire.AppendFixed32(e.Out, v)
}

// Fixed64 writes one 64-bit little-endian value.
func (e *Encoder) Fixed64(v uint64) {
	e.Out = protowire.AppendFixed64(e.Out, v)
}

// Bool writes a varint-encoded bool.
func (e *Encoder) Bool(v bool) {
	e.Varint(protowire.EncodeBool(v))
}

// Int32 writes a varint-encoded int32. Negative values are
// sign-extended to ten bytes, as the wire format requires.
func (e *Encoder) Int32(v int32) {
	e.Varint(uint64(int64(v)))
}

// Int64 writes a varint-encoded int64.
func (e *Encoder) Int64(v int64) {
	e.Varint(uint64(v))
}

// Uint32 writes a varint-encoded uint32.
func (e *Encoder) Uint32(v uint32) {
	e.Varint(uint64(v))
}

// Uint64 writes a varint-encoded uint64.
func (e *Encoder) Uint64(v uint64) {
	e.Varint(v)
}

// Sint32 writes a zigzag-encoded int32.
func (e *Encoder) Sint32(v int32) {
	e.Varint(protowire.EncodeZigZag(int64(v)))
}

// Sint64 writes a zigzag-encoded int64.
func (e *Encoder) Sint64(v int64) {
	e.Varint(protowire.EncodeZigZag(v))
}

// Sfixed32 writes a 32-bit fixed-width signed value.
func (e *Encoder) Sfixed32(v int32) {
	e.Fixed32(uint32(v))
}

// Sfixed64 writes a 64-bit fixed-width signed value.
func (e *Encoder) Sfixed64(v int64) {
	e.Fixed64(uint64(v))
}

// Float writes a 32-bit IEEE 754 value.
func (e *Encoder) Float(v float32) {
	e.Fixed32(math.Float32bits(v))
}

// Double writes a 64-bit IEEE 754 value.
func (e *Encoder) Double(v float64) {
	e.Fixed64(math.Float64bits(v))
}

// Bytes writes bs as one length-delimited payload.
func (e *Encoder) Bytes(bs []byte) {
	e.Out = protowire.AppendBytes(e.Out, bs)
}

// String writes s as one length-delimited payload.
func (e *Encoder) String(s string) {
	e.Out = protowire.AppendString(e.Out, s)
}

// Write writes bs as-is to the output. It is the caller's
// responsibility to ensure bs is well-formed wire data.
func (e *Encoder) Write(bs []byte) {
	e.Out = append(e.Out, bs...)
}

// Delimited writes everything fn produces as one length-delimited
// payload, prefixed with its varint byte length.
func (e *Encoder) Delimited(fn func(*Encoder)) {
	var nested Encoder
	fn(&nested)
	e.Bytes(nested.Out)
}
