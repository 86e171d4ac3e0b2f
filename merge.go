package dynpb

import (
	"fmt"
	"log"

	"github.com/dynpb/dynpb/wire"
	"google.golang.org/protobuf/encoding/protowire"
)

const debugMerge = false

func debugMergef(msg string, args ...any) {
	if !debugMerge {
		return
	}
	log.Printf(msg, args...)
}

// Merge decodes the wire data in bs into m, following the standard
// protobuf merge rules: singular fields are overwritten, repeated
// fields appended to, nested messages merged recursively. Wire data
// for undeclared field numbers is captured into the unknown bag.
//
// Merge aborts on the first error. A message that received a failed
// merge is in an unspecified partial state and must be discarded.
func (m *Message) Merge(reg *Registry, bs []byte) error {
	return m.merge(reg, wire.NewDecoder(bs))
}

func (m *Message) merge(reg *Registry, d *wire.Decoder) error {
	for !d.Empty() {
		num, typ, err := d.Tag()
		if err != nil {
			return err
		}
		debugMergef("merge %s: field %d, wire type %d", m.desc.Name, num, typ)
		if fd := m.desc.FieldByNumber(num); fd != nil {
			if err := m.field(fd).merge(reg, d, typ, nil); err != nil {
				return err
			}
		} else if err := m.captureUnknown(d, num, typ); err != nil {
			return err
		}
	}
	return nil
}

// captureUnknown copies one undeclared field's tag and payload into
// the unknown bag, preserving it for forward compatibility.
func (m *Message) captureUnknown(d *wire.Decoder, num protowire.Number, typ protowire.Type) error {
	raw, err := d.RawValue(num, typ)
	if err != nil {
		return fmt.Errorf("capturing unknown field %d: %w", num, err)
	}
	m.unknown = protowire.AppendTag(m.unknown, num, typ)
	m.unknown = append(m.unknown, raw...)
	return nil
}

// MergeMasked decodes the wire data in bs into m, restricted to the
// fields the mask selects. Selected message fields recurse with the
// residual mask; a fully consumed mask entry decodes its subtree in
// full. Declared fields outside the mask are skipped and their bytes
// discarded, not captured. Undeclared field numbers are skipped the
// same way: under a mask the caller asked for specific paths only.
func (m *Message) MergeMasked(reg *Registry, bs []byte, mask Mask) error {
	return m.mergeMasked(reg, wire.NewDecoder(bs), mask)
}

func (m *Message) mergeMasked(reg *Registry, d *wire.Decoder, mask Mask) error {
	for !d.Empty() {
		// The tag varint is decoded by hand here so that an
		// out-of-range field number can be reported as a typed
		// error rather than a bare parse failure.
		raw, err := d.Varint()
		if err != nil {
			return err
		}
		if n := raw >> 3; n < uint64(protowire.MinValidNumber) || n > uint64(protowire.MaxValidNumber) {
			return &InvalidNumberError{Number: protowire.Number(n)}
		}
		num, typ := protowire.DecodeTag(raw)
		fd := m.desc.FieldByNumber(num)
		if fd == nil {
			if _, err := d.RawValue(num, typ); err != nil {
				return err
			}
			continue
		}
		residual, selected := mask.match(fd.Name)
		if !selected {
			debugMergef("mergeMasked %s: field %s excluded by mask", m.desc.Name, fd.Name)
			if _, err := d.RawValue(num, typ); err != nil {
				return err
			}
			continue
		}
		if err := m.field(fd).merge(reg, d, typ, residual); err != nil {
			return err
		}
	}
	return nil
}

// scalarReader decodes one scalar of a particular kind off the wire.
type scalarReader func(*wire.Decoder) (Value, error)

func readBool(d *wire.Decoder) (Value, error) { v, err := d.Bool(); return Bool(v), err }

func readInt32(d *wire.Decoder) (Value, error) { v, err := d.Int32(); return Int32(v), err }

func readInt64(d *wire.Decoder) (Value, error) { v, err := d.Int64(); return Int64(v), err }

func readUint32(d *wire.Decoder) (Value, error) { v, err := d.Uint32(); return Uint32(v), err }

func readUint64(d *wire.Decoder) (Value, error) { v, err := d.Uint64(); return Uint64(v), err }

func readSint32(d *wire.Decoder) (Value, error) { v, err := d.Sint32(); return Sint32(v), err }

func readSint64(d *wire.Decoder) (Value, error) { v, err := d.Sint64(); return Sint64(v), err }

func readFixed32(d *wire.Decoder) (Value, error) { v, err := d.Fixed32(); return Fixed32(v), err }

func readFixed64(d *wire.Decoder) (Value, error) { v, err := d.Fixed64(); return Fixed64(v), err }

func readSfixed32(d *wire.Decoder) (Value, error) { v, err := d.Sfixed32(); return Sfixed32(v), err }

func readSfixed64(d *wire.Decoder) (Value, error) { v, err := d.Sfixed64(); return Sfixed64(v), err }

func readFloat(d *wire.Decoder) (Value, error) { v, err := d.Float(); return Float(v), err }

func readDouble(d *wire.Decoder) (Value, error) { v, err := d.Double(); return Double(v), err }

func readBytes(d *wire.Decoder) (Value, error) { v, err := d.Bytes(); return Bytes(v), err }

func readString(d *wire.Decoder) (Value, error) { v, err := d.String(); return String(v), err }

// merge decodes one wire-format occurrence of the field, dispatching
// on its declared kind. typ is the wire type read from the tag; mask
// is the residual mask for a nested message decode, nil for an
// unmasked decode.
func (f *Field) merge(reg *Registry, d *wire.Decoder, typ protowire.Type, mask Mask) error {
	switch f.desc.Kind {
	case KindBool:
		return f.mergePackable(d, typ, protowire.VarintType, readBool)
	case KindInt32:
		return f.mergePackable(d, typ, protowire.VarintType, readInt32)
	case KindInt64:
		return f.mergePackable(d, typ, protowire.VarintType, readInt64)
	case KindUint32:
		return f.mergePackable(d, typ, protowire.VarintType, readUint32)
	case KindUint64:
		return f.mergePackable(d, typ, protowire.VarintType, readUint64)
	case KindSint32:
		return f.mergePackable(d, typ, protowire.VarintType, readSint32)
	case KindSint64:
		return f.mergePackable(d, typ, protowire.VarintType, readSint64)
	case KindFixed32:
		return f.mergePackable(d, typ, protowire.Fixed32Type, readFixed32)
	case KindFixed64:
		return f.mergePackable(d, typ, protowire.Fixed64Type, readFixed64)
	case KindSfixed32:
		return f.mergePackable(d, typ, protowire.Fixed32Type, readSfixed32)
	case KindSfixed64:
		return f.mergePackable(d, typ, protowire.Fixed64Type, readSfixed64)
	case KindFloat:
		return f.mergePackable(d, typ, protowire.Fixed32Type, readFloat)
	case KindDouble:
		return f.mergePackable(d, typ, protowire.Fixed64Type, readDouble)
	case KindBytes:
		return f.mergeScalar(d, typ, protowire.BytesType, readBytes)
	case KindString:
		return f.mergeScalar(d, typ, protowire.BytesType, readString)
	case KindEnum:
		return f.mergeEnum(reg, d, typ)
	case KindMessage:
		return f.mergeMessage(reg, d, typ, mask)
	case KindGroup:
		return fmt.Errorf("field %s: %w", f.desc.Name, ErrGroupEncoding)
	}
	return fmt.Errorf("field %s: invalid kind %d", f.desc.Name, int(f.desc.Kind))
}

// mergeScalar decodes one scalar value, requiring an exact wire type
// match.
func (f *Field) mergeScalar(d *wire.Decoder, got, want protowire.Type, read scalarReader) error {
	if got != want {
		return &WireTypeError{Field: f.desc.Name, Got: got, Want: want}
	}
	v, err := read(d)
	if err != nil {
		return fmt.Errorf("field %s: %w", f.desc.Name, err)
	}
	f.put(v)
	return nil
}

// mergePackable decodes a scalar kind that admits the packed
// encoding. For a repeated field, a length-delimited payload is
// treated as a packed run and decoded in a loop under a scoped byte
// limit, appending each element. Everything else decodes a single
// value with the usual exact-match rule, so a singular scalar
// presented as length-delimited data is a wire type error, not a
// silent coercion.
func (f *Field) mergePackable(d *wire.Decoder, got, want protowire.Type, read scalarReader) error {
	if got != protowire.BytesType || !f.desc.Repeated {
		return f.mergeScalar(d, got, want, read)
	}
	return d.Delimited(func() error {
		for !d.Empty() {
			v, err := read(d)
			if err != nil {
				return fmt.Errorf("field %s (packed): %w", f.desc.Name, err)
			}
			f.put(v)
		}
		return nil
	})
}

// mergeEnum decodes one enum value. The raw number is preserved even
// when the enum declares no matching enumerator.
func (f *Field) mergeEnum(reg *Registry, d *wire.Decoder, got protowire.Type) error {
	if _, ok := reg.Enum(f.desc.TypeName); !ok {
		return &UnknownTypeError{Kind: "enum", Name: f.desc.TypeName}
	}
	if got != protowire.VarintType {
		return &WireTypeError{Field: f.desc.Name, Got: got, Want: protowire.VarintType}
	}
	v, err := d.Int32()
	if err != nil {
		return fmt.Errorf("field %s: %w", f.desc.Name, err)
	}
	f.put(Enum(v))
	return nil
}

// mergeMessage decodes one nested message frame. If the field
// already holds a singular message the frame merges into it,
// accumulating state; otherwise a fresh message is built from the
// nested descriptor. The frame's byte limit is released on every
// exit path by the Delimited guard.
func (f *Field) mergeMessage(reg *Registry, d *wire.Decoder, got protowire.Type, mask Mask) error {
	md, ok := reg.Message(f.desc.TypeName)
	if !ok {
		return &UnknownTypeError{Kind: "message", Name: f.desc.TypeName}
	}
	if got != protowire.BytesType {
		return &WireTypeError{Field: f.desc.Name, Got: got, Want: protowire.BytesType}
	}
	msg := f.takeMessage(md)
	err := d.Delimited(func() error {
		if mask == nil {
			return msg.merge(reg, d)
		}
		return msg.mergeMasked(reg, d, mask)
	})
	if err != nil {
		return err
	}
	f.put(msg)
	return nil
}

// takeMessage removes and returns the field's current singular
// message value so the next frame can merge into it, or builds a
// fresh empty message when there is none to accumulate into.
func (f *Field) takeMessage(md *MessageDesc) *Message {
	if !f.desc.Repeated {
		if v, ok := f.one.GetOK(); ok {
			if prior, ok := v.(*Message); ok {
				f.Clear()
				return prior
			}
		}
	}
	return NewMessage(md)
}
