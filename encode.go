package dynpb

import (
	"io"

	"github.com/dynpb/dynpb/wire"
)

// Encode returns the protobuf wire encoding of m.
//
// Fields are emitted in ascending field-number order. Absent
// singular fields emit nothing. Repeated fields use the packed
// encoding when they hold numeric scalar values, and one tag per
// element otherwise. Unknown bytes captured during decode are not
// re-emitted; see [Message.UnknownBytes].
func (m *Message) Encode() []byte {
	var e wire.Encoder
	m.AppendTo(&e)
	return e.Out
}

// AppendTo appends m's wire encoding to e, without an enclosing tag
// or length prefix.
func (m *Message) AppendTo(e *wire.Encoder) {
	for _, num := range m.fields.Keys() {
		f, _ := m.fields.GetOK(num)
		f.appendTo(num, e)
	}
}

// WriteTo writes m's wire encoding to w. It implements [io.WriterTo].
func (m *Message) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(m.Encode())
	return int64(n), err
}
