package dynpb

import (
	"fmt"
	"strings"

	"github.com/creachadair/mds/omap"
	"github.com/dynpb/dynpb/wire"
	"google.golang.org/protobuf/encoding/protowire"
)

// A Message is the decoded form of one protobuf message: its
// declared fields keyed and ordered by field number, plus the raw
// wire data of any field numbers its descriptor does not declare.
//
// Messages form a strict ownership tree rooted at the top-level
// decode: nested message values are owned by their parent field and
// never shared. Descriptors, in contrast, are shared by reference
// and never copied.
type Message struct {
	desc    *MessageDesc
	fields  omap.Map[protowire.Number, *Field]
	unknown []byte
}

// NewMessage returns an empty message for the given descriptor, with
// every declared field pre-populated: singular fields hold their
// declared default, repeated fields are empty.
func NewMessage(desc *MessageDesc) *Message {
	m := &Message{desc: desc, fields: omap.New[protowire.Number, *Field]()}
	for _, fd := range desc.Fields {
		m.fields.Set(fd.Number, newField(fd))
	}
	return m
}

// Desc returns the message's descriptor.
func (m *Message) Desc() *MessageDesc {
	return m.desc
}

// Field returns the field with the given declared number.
func (m *Message) Field(num protowire.Number) (*Field, bool) {
	return m.fields.GetOK(num)
}

// FieldByName returns the field with the given declared name.
func (m *Message) FieldByName(name string) (*Field, bool) {
	fd := m.desc.FieldByName(name)
	if fd == nil {
		return nil, false
	}
	return m.fields.GetOK(fd.Number)
}

// UnknownBytes returns the raw tag/value wire data captured for
// field numbers the descriptor does not declare, in decode order.
// Encoding does not re-emit these bytes; callers that want lossless
// passthrough must append them to the encoded output themselves.
func (m *Message) UnknownBytes() []byte {
	return m.unknown
}

// field returns the field for fd, creating it if a merge runs ahead
// of the pre-population done by NewMessage.
func (m *Message) field(fd *FieldDesc) *Field {
	if f, ok := m.fields.GetOK(fd.Number); ok {
		return f
	}
	f := newField(fd)
	m.fields.Set(fd.Number, f)
	return f
}

// Equal reports whether two messages describe the same type and hold
// the same field values and unknown bytes.
func (m *Message) Equal(o *Message) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.desc.Name != o.desc.Name || m.fields.Len() != o.fields.Len() {
		return false
	}
	for _, num := range m.fields.Keys() {
		a, _ := m.fields.GetOK(num)
		b, ok := o.fields.GetOK(num)
		if !ok || !a.Equal(b) {
			return false
		}
	}
	return string(m.unknown) == string(o.unknown)
}

// Value interface. A message used as a field value encodes as a
// length-delimited payload.

func (m *Message) Kind() Kind               { return KindMessage }
func (m *Message) wireType() protowire.Type { return protowire.BytesType }

func (m *Message) encodeTo(e *wire.Encoder) {
	e.Delimited(func(nested *wire.Encoder) {
		m.AppendTo(nested)
	})
}

// String renders the message for debugging: field name to value in
// descriptor field order, omitting absent singular fields.
func (m *Message) String() string {
	var sb strings.Builder
	sb.WriteString(m.desc.Name)
	sb.WriteByte('{')
	first := true
	for _, fd := range m.desc.Fields {
		f, ok := m.fields.GetOK(fd.Number)
		if !ok {
			continue
		}
		var body string
		if fd.Repeated {
			if len(f.rep) == 0 {
				continue
			}
			parts := make([]string, len(f.rep))
			for i, v := range f.rep {
				parts[i] = formatValue(v)
			}
			body = "[" + strings.Join(parts, ", ") + "]"
		} else {
			v, ok := f.Get()
			if !ok {
				continue
			}
			body = formatValue(v)
		}
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(fd.Name)
		sb.WriteByte(':')
		sb.WriteString(body)
	}
	sb.WriteByte('}')
	return sb.String()
}

func formatValue(v Value) string {
	switch v := v.(type) {
	case String:
		return fmt.Sprintf("%q", string(v))
	case Bytes:
		return fmt.Sprintf("0x%x", []byte(v))
	case *Message:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
