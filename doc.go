// Package dynpb implements a schema-driven runtime value model for
// the protobuf binary wire format.
//
// Unlike generated protobuf code, dynpb needs no compile-time
// knowledge of message shapes: a [Registry] of descriptors supplied
// at runtime is enough to decode arbitrary wire data into a generic,
// inspectable tree of [Message], [Field] and [Value] nodes, and to
// re-encode that tree back to bytes. This suits proxies, generic
// tooling, and anything else that must read or write messages whose
// exact shape is known only at runtime.
//
// # Decoding
//
// [NewMessage] constructs an empty message from a descriptor, with
// every declared field pre-populated to its default state.
// [Message.Merge] then folds wire data into the tree following the
// standard protobuf merge rules: singular fields are overwritten,
// repeated fields are appended to, and nested messages are merged
// recursively rather than replaced. Repeated numeric scalars accept
// both packed and individually tagged encodings. Wire data for field
// numbers the descriptor does not declare is preserved verbatim in
// the message's unknown-bytes bag.
//
// A decoded value always carries the declared kind of its field:
// int32, sint32 and sfixed32 data all arrive as Go int32s, but
// remain distinct [Value] variants so that re-encoding reproduces
// the original representation.
//
// [Message.MergeMasked] restricts decoding to a [Mask] of dotted
// field paths. Fields outside the mask are skipped entirely: their
// bytes are not decoded and not retained. A path that ends at a
// message field selects that entire subtree.
//
// # Encoding
//
// [Message.Encode] walks the tree in ascending field-number order
// and re-synthesizes tags and payloads. Repeated numeric scalars are
// emitted in packed form; strings, bytes, enums and messages are
// emitted one tag per element. Bytes held in the unknown bag are not
// re-emitted; callers that need lossless passthrough of unknown
// fields can retrieve them with [Message.UnknownBytes].
//
// The legacy group encoding is not supported, and is reported with
// [ErrGroupEncoding] rather than skipped silently.
package dynpb
