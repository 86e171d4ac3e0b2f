package wire

import (
	"io"
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// A Decoder provides utilities to read protobuf wire format data
// from an in-memory buffer.
//
// Methods advance the read cursor past the bytes they consume. The
// readable window can be narrowed with [Decoder.Delimited], so that
// decoding a length-delimited frame cannot run into sibling data.
type Decoder struct {
	buf []byte
	pos int
	end int
}

// NewDecoder returns a Decoder reading from bs.
func NewDecoder(bs []byte) *Decoder {
	return &Decoder{buf: bs, end: len(bs)}
}

// Empty reports whether the active window has no bytes left to read.
func (d *Decoder) Empty() bool {
	return d.pos >= d.end
}

// Remaining returns the number of unread bytes in the active window.
func (d *Decoder) Remaining() int {
	return d.end - d.pos
}

func (d *Decoder) window() []byte {
	return d.buf[d.pos:d.end]
}

// Tag reads one field tag, returning its field number and wire type.
func (d *Decoder) Tag() (protowire.Number, protowire.Type, error) {
	num, typ, n := protowire.ConsumeTag(d.window())
	if n < 0 {
		return 0, 0, protowire.ParseError(n)
	}
	d.pos += n
	return num, typ, nil
}

// Varint reads one base-128 varint.
func (d *Decoder) Varint() (uint64, error) {
	v, n := protowire.ConsumeVarint(d.window())
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	d.pos += n
	return v, nil
}

// Fixed32 reads one 32-bit little-endian value.
func (d *Decoder) Fixed32() (uint32, error) {
	v, n := protowire.ConsumeFixed32(d.window())
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	d.pos += n
	return v, nil
}

// Fixed64 reads one 64-bit little-endian value.
func (d *Decoder) Fixed64() (uint64, error) {
	v, n := protowire.ConsumeFixed64(d.window())
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	d.pos += n
	return v, nil
}

// Bool reads a varint-encoded bool.
func (d *Decoder) Bool() (bool, error) {
	v, err := d.Varint()
	return protowire.DecodeBool(v), err
}

// Int32 reads a varint-encoded int32.
func (d *Decoder) Int32() (int32, error) {
	v, err := d.Varint()
	return int32(v), err
}

// Int64 reads a varint-encoded int64.
func (d *Decoder) Int64() (int64, error) {
	v, err := d.Varint()
	return int64(v), err
}

// Uint32 reads a varint-encoded uint32.
func (d *Decoder) Uint32() (uint32, error) {
	v, err := d.Varint()
	return uint32(v), err
}

// Uint64 reads a varint-encoded uint64.
func (d *Decoder) Uint64() (uint64, error) {
	return d.Varint()
}

// Sint32 reads a zigzag-encoded int32.
func (d *Decoder) Sint32() (int32, error) {
	v, err := d.Varint()
	return int32(protowire.DecodeZigZag(v & math.MaxUint32)), err
}

// Sint64 reads a zigzag-encoded int64.
func (d *Decoder) Sint64() (int64, error) {
	v, err := d.Varint()
	return protowire.DecodeZigZag(v), err
}

// Sfixed32 reads a 32-bit fixed-width signed value.
func (d *Decoder) Sfixed32() (int32, error) {
	v, err := d.Fixed32()
	return int32(v), err
}

// Sfixed64 reads a 64-bit fixed-width signed value.
func (d *Decoder) Sfixed64() (int64, error) {
	v, err := d.Fixed64()
	return int64(v), err
}

// Float reads a 32-bit IEEE 754 value.
func (d *Decoder) Float() (float32, error) {
	v, err := d.Fixed32()
	return math.Float32frombits(v), err
}

// Double reads a 64-bit IEEE 754 value.
func (d *Decoder) Double() (float64, error) {
	v, err := d.Fixed64()
	return math.Float64frombits(v), err
}

// Bytes reads one length-delimited payload. The returned slice is a
// copy and remains valid after further decoding.
func (d *Decoder) Bytes() ([]byte, error) {
	v, n := protowire.ConsumeBytes(d.window())
	if n < 0 {
		return nil, protowire.ParseError(n)
	}
	d.pos += n
	return append([]byte(nil), v...), nil
}

// String reads one length-delimited payload as a string.
func (d *Decoder) String() (string, error) {
	v, n := protowire.ConsumeString(d.window())
	if n < 0 {
		return "", protowire.ParseError(n)
	}
	d.pos += n
	return v, nil
}

// RawValue consumes the encoded payload of a field with the given
// wire type, returning the bytes verbatim without decoding them. The
// returned slice aliases the decoder's buffer.
func (d *Decoder) RawValue(num protowire.Number, typ protowire.Type) ([]byte, error) {
	n := protowire.ConsumeFieldValue(num, typ, d.window())
	if n < 0 {
		return nil, protowire.ParseError(n)
	}
	ret := d.buf[d.pos : d.pos+n]
	d.pos += n
	return ret, nil
}

// Delimited reads a varint length prefix, narrows the readable
// window to that many bytes, and invokes fn to decode the frame. The
// outer window is restored on every exit path, and the cursor lands
// at the end of the frame, so that enclosing data stays correctly
// framed even when fn fails partway through.
func (d *Decoder) Delimited(fn func() error) error {
	ln, err := d.Varint()
	if err != nil {
		return err
	}
	if ln > uint64(d.Remaining()) {
		return io.ErrUnexpectedEOF
	}
	outer := d.end
	frameEnd := d.pos + int(ln)
	d.end = frameEnd
	defer func() {
		d.end = outer
		d.pos = frameEnd
	}()
	return fn()
}
