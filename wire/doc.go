// Package wire provides low-level encoding and decoding helpers to
// construct and parse protobuf wire format data.
//
// The provided encoder and decoder are very low level, and do not
// enforce any schema semantics. It is the caller's responsibility to
// pair tags with payloads of the matching wire type, and to frame
// length-delimited data correctly using these tools.
//
// You should not need to use this package at all, unless you are
// processing wire data that the dynpb value model cannot represent,
// in which case a [Decoder]/[Encoder] lets you walk raw tag/value
// records yourself.
package wire
