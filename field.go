package dynpb

import (
	"fmt"
	"slices"

	"github.com/creachadair/mds/value"
	"github.com/dynpb/dynpb/wire"
	"google.golang.org/protobuf/encoding/protowire"
)

// A Field holds the decoded state of one declared field: at most one
// value for a singular field, or an ordered sequence of values for a
// repeated field.
type Field struct {
	desc *FieldDesc
	one  value.Maybe[Value]
	rep  []Value
}

// newField returns an empty field for fd. Singular fields start out
// holding their declared default, if any.
func newField(fd *FieldDesc) *Field {
	f := &Field{desc: fd}
	if !fd.Repeated && fd.Default != nil {
		f.one = value.Just(fd.Default)
	}
	return f
}

// Desc returns the field's descriptor.
func (f *Field) Desc() *FieldDesc {
	return f.desc
}

// Get returns the singular value and whether one is present. For
// repeated fields it reports false; use [Field.Values].
func (f *Field) Get() (Value, bool) {
	return f.one.GetOK()
}

// Values returns the repeated value sequence in decode order. For
// singular fields it returns nil.
func (f *Field) Values() []Value {
	return f.rep
}

// checkValue verifies that v may be stored in the field: the kind
// must match the declared kind, and a message value must describe
// the declared message type.
func (f *Field) checkValue(v Value) error {
	if v.Kind() != f.desc.Kind {
		return fmt.Errorf("field %s holds %s values, not %s", f.desc.Name, f.desc.Kind, v.Kind())
	}
	if msg, ok := v.(*Message); ok && msg.desc.Name != f.desc.TypeName {
		return fmt.Errorf("field %s holds %s messages, not %s", f.desc.Name, f.desc.TypeName, msg.desc.Name)
	}
	return nil
}

// Set stores v as the field's singular value, replacing any previous
// value. It rejects values whose kind or message type does not match
// the field's declaration, and rejects repeated fields.
func (f *Field) Set(v Value) error {
	if f.desc.Repeated {
		return fmt.Errorf("field %s is repeated, use Append", f.desc.Name)
	}
	if err := f.checkValue(v); err != nil {
		return err
	}
	f.one = value.Just(v)
	return nil
}

// Append adds v to the end of the field's repeated sequence. It
// rejects values whose kind or message type does not match the
// field's declaration, and rejects singular fields.
func (f *Field) Append(v Value) error {
	if !f.desc.Repeated {
		return fmt.Errorf("field %s is singular, use Set", f.desc.Name)
	}
	if err := f.checkValue(v); err != nil {
		return err
	}
	f.rep = append(f.rep, v)
	return nil
}

// Clear resets the field to its empty state: no values for a
// repeated field, unset for a singular field.
func (f *Field) Clear() {
	f.one = value.Absent[Value]()
	f.rep = nil
}

// put stores a freshly decoded value: overwrite for singular fields,
// append for repeated ones.
func (f *Field) put(v Value) {
	if f.desc.Repeated {
		f.rep = append(f.rep, v)
	} else {
		f.one = value.Just(v)
	}
}

// Equal reports whether two fields hold the same values.
func (f *Field) Equal(o *Field) bool {
	if f.desc.Repeated != o.desc.Repeated {
		return false
	}
	av, aok := f.one.GetOK()
	bv, bok := o.one.GetOK()
	if aok != bok || (aok && !valueEqual(av, bv)) {
		return false
	}
	return slices.EqualFunc(f.rep, o.rep, valueEqual)
}

// Encode returns the wire encoding of the single field, tagged with
// its declared number.
func (f *Field) Encode() []byte {
	var e wire.Encoder
	f.appendTo(f.desc.Number, &e)
	return e.Out
}

// appendTo appends the field's wire encoding under the given field
// number. Singular absent fields emit nothing. Repeated fields
// choose the packed form when their values are numeric scalars, and
// one tag per element otherwise; the choice follows the values
// actually held, not the descriptor.
func (f *Field) appendTo(num protowire.Number, e *wire.Encoder) {
	if v, ok := f.one.GetOK(); ok {
		e.Tag(num, v.wireType())
		v.encodeTo(e)
		return
	}
	if len(f.rep) == 0 {
		return
	}
	if packable(f.rep[0]) {
		e.Tag(num, protowire.BytesType)
		e.Delimited(func(nested *wire.Encoder) {
			for _, v := range f.rep {
				v.encodeTo(nested)
			}
		})
		return
	}
	for _, v := range f.rep {
		e.Tag(num, v.wireType())
		v.encodeTo(e)
	}
}
