package dynpb

import (
	"google.golang.org/protobuf/encoding/protowire"
)

// Kind enumerates the declared protobuf types a field can have.
type Kind int

const (
	KindBool Kind = iota
	KindInt32
	KindInt64
	KindUint32
	KindUint64
	KindSint32
	KindSint64
	KindFixed32
	KindFixed64
	KindSfixed32
	KindSfixed64
	KindFloat
	KindDouble
	KindBytes
	KindString
	KindEnum
	KindMessage
	// KindGroup is the legacy group encoding. Fields of this kind
	// are declared for completeness but cannot be decoded or
	// encoded, see [ErrGroupEncoding].
	KindGroup
)

var kindNames = map[Kind]string{
	KindBool:     "bool",
	KindInt32:    "int32",
	KindInt64:    "int64",
	KindUint32:   "uint32",
	KindUint64:   "uint64",
	KindSint32:   "sint32",
	KindSint64:   "sint64",
	KindFixed32:  "fixed32",
	KindFixed64:  "fixed64",
	KindSfixed32: "sfixed32",
	KindSfixed64: "sfixed64",
	KindFloat:    "float",
	KindDouble:   "double",
	KindBytes:    "bytes",
	KindString:   "string",
	KindEnum:     "enum",
	KindMessage:  "message",
	KindGroup:    "group",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "invalid"
}

// A FieldDesc describes one declared field of a message type.
type FieldDesc struct {
	// Name is the field's declared name.
	Name string
	// Number is the field's wire number.
	Number protowire.Number
	// Kind is the field's declared type.
	Kind Kind
	// Repeated reports whether the field holds a sequence of values
	// rather than at most one.
	Repeated bool
	// TypeName is the fully qualified name of the field's enum or
	// message type. It is empty for other kinds, and is resolved
	// through a [Registry] at decode time.
	TypeName string
	// Default is the declared default for a singular scalar field,
	// or nil if the field defaults to unset.
	Default Value
}

// A MessageDesc describes a message type: its fully qualified name
// and its declared fields, in declaration order.
type MessageDesc struct {
	Name   string
	Fields []*FieldDesc
}

// FieldByNumber returns the declared field with the given wire
// number, or nil if the message declares no such field.
func (d *MessageDesc) FieldByNumber(num protowire.Number) *FieldDesc {
	for _, f := range d.Fields {
		if f.Number == num {
			return f
		}
	}
	return nil
}

// FieldByName returns the declared field with the given name, or nil
// if the message declares no such field.
func (d *MessageDesc) FieldByName(name string) *FieldDesc {
	for _, f := range d.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// An EnumDesc describes an enum type. Values maps declared
// enumerator numbers to their names; wire values outside the map
// still decode, carrying their raw number.
type EnumDesc struct {
	Name   string
	Values map[int32]string
}

// A Registry is a set of named type descriptors. Enum and message
// field types reference their descriptors by name, and are resolved
// through the registry during decoding.
//
// A registry is a read-only, shared lookup structure once decoding
// starts; messages reference it, they never modify it.
type Registry struct {
	messages map[string]*MessageDesc
	enums    map[string]*EnumDesc
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		messages: make(map[string]*MessageDesc),
		enums:    make(map[string]*EnumDesc),
	}
}

// AddMessage registers a message descriptor under its name.
func (r *Registry) AddMessage(d *MessageDesc) {
	r.messages[d.Name] = d
}

// AddEnum registers an enum descriptor under its name.
func (r *Registry) AddEnum(d *EnumDesc) {
	r.enums[d.Name] = d
}

// Message returns the message descriptor registered under name.
func (r *Registry) Message(name string) (*MessageDesc, bool) {
	d, ok := r.messages[name]
	return d, ok
}

// Enum returns the enum descriptor registered under name.
func (r *Registry) Enum(name string) (*EnumDesc, bool) {
	d, ok := r.enums[name]
	return d, ok
}
