package dynpb

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// WireTypeError is the error returned when incoming wire data
// carries a wire type that does not match a field's declared kind.
type WireTypeError struct {
	// Field is the name of the field being decoded.
	Field string
	// Got is the wire type found in the data.
	Got protowire.Type
	// Want is the wire type the field's declared kind requires.
	Want protowire.Type
}

func (e *WireTypeError) Error() string {
	return fmt.Sprintf("field %s: wire type %s, want %s", e.Field, wireTypeName(e.Got), wireTypeName(e.Want))
}

// UnknownTypeError is the error returned when a field references an
// enum or message type that the registry does not contain.
type UnknownTypeError struct {
	// Kind is "enum" or "message".
	Kind string
	// Name is the unresolved type name.
	Name string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown %s type %q", e.Kind, e.Name)
}

// InvalidNumberError is the error returned when wire data carries a
// field number outside the valid range.
type InvalidNumberError struct {
	Number protowire.Number
}

func (e *InvalidNumberError) Error() string {
	return fmt.Sprintf("invalid field number %d", e.Number)
}

// ErrGroupEncoding is returned when wire data or a descriptor uses
// the legacy group encoding, which this package does not support.
var ErrGroupEncoding = errors.New("legacy group encoding is not supported")

func wireTypeName(t protowire.Type) string {
	switch t {
	case protowire.VarintType:
		return "varint"
	case protowire.Fixed32Type:
		return "fixed32"
	case protowire.Fixed64Type:
		return "fixed64"
	case protowire.BytesType:
		return "length-delimited"
	case protowire.StartGroupType:
		return "group start"
	case protowire.EndGroupType:
		return "group end"
	}
	return fmt.Sprintf("wire type %d", int(t))
}
