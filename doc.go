// Package bytekind provides byte containers that carry their serialization format in their type.
//
// Key material, hashes and other byte blobs tend to be serialized as a list of numbers in one place and as a hex
// string in another. With bytekind the format is part of the type, so every code path that handles a value
// encodes it the same way:
//
//	type Header struct {
//		Parent bytekind.Array[bytekind.HexString, [32]byte] `json:"parent"`
//		Extra  bytekind.Bytes[bytekind.Plain]               `json:"extra"`
//	}
//
// encodes as {"parent":"0102...","extra":[1,2,3]}.
//
// Two formats are built in:
//
//   - Plain: a sequence of integers in the range 0-255. Decoding also accepts a native byte-string where the
//     serialization framework has one (msgpack bin).
//   - HexString: lowercase hex digits without prefix. Decoding tolerates a single leading "0x".
//
// Further formats are added by implementing Format, see the formats package.
//
// Array holds a fixed number of bytes, the length being the length of its array type argument. Decoding an Array
// fails with a LengthMismatchError if the input doesn't have exactly that length. Bytes holds any number of bytes.
//
// A container can be handed to an API that expects another format with ConvertArray or ConvertBytes, which never
// fail and never copy more than the value itself. Containers that only differ in their format hold the same value:
// EqualArrays, CompareArrays, EqualBytes, CompareBytes and Hash ignore the format.
//
// Containers plug into encoding/json, msgpack (github.com/vmihailenco/msgpack/v5), yaml (gopkg.in/yaml.v2) and
// generic value trees (EncodeJSON/DecodeJSON, as used by serix). Other frameworks can use EncodeWire and DecodeWire
// with their own wire.Encoder and wire.Decoder.
package bytekind
