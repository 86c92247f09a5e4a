package bytekind

import (
	"bytes"
	"encoding/hex"
	"unsafe"

	"github.com/cespare/xxhash/v2"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/iotaledger/bytekind/wire"
)

// Array is a fixed-size byte container whose wire format is selected by F.
// The length is the length of the array type A, e.g. Array[HexString, [32]byte] always holds 32 bytes.
//
// Arrays of the same type can be compared with ==. Arrays that only differ in F hold the same value,
// use EqualArrays and CompareArrays to compare them.
type Array[F Format, A ByteArray] struct {
	inner A
}

// NewArray wraps the given bytes.
func NewArray[F Format, A ByteArray](inner A) Array[F, A] {
	return Array[F, A]{inner: inner}
}

// ArrayFromBytes copies b into a new Array. It fails if b doesn't have exactly the length of A.
func ArrayFromBytes[F Format, A ByteArray](b []byte) (Array[F, A], error) {
	var a Array[F, A]
	if len(b) != a.Len() {
		return a, lengthMismatch(a.Len(), len(b), UnitBytes)
	}
	copy(a.Slice(), b)

	return a, nil
}

// ConvertArray changes the format of the given Array. The bytes are not touched.
func ConvertArray[G Format, F Format, A ByteArray](a Array[F, A]) Array[G, A] {
	return Array[G, A](a)
}

// EqualArrays tells whether two arrays hold the same bytes, regardless of their formats.
func EqualArrays[F Format, G Format, A ByteArray](a Array[F, A], b Array[G, A]) bool {
	return a.inner == b.inner
}

// CompareArrays compares two arrays lexicographically, regardless of their formats.
func CompareArrays[F Format, G Format, A ByteArray](a Array[F, A], b Array[G, A]) int {
	return bytes.Compare(a.Slice(), b.Slice())
}

// Inner returns the underlying array.
func (a Array[F, A]) Inner() A {
	return a.inner
}

// Len returns the fixed length of the Array.
func (a Array[F, A]) Len() int {
	return len(a.inner)
}

// Bytes returns a copy of the bytes.
func (a Array[F, A]) Bytes() []byte {
	return append([]byte(nil), a.Slice()...)
}

// Slice returns a slice that shares its storage with the Array.
// Writes through the slice modify the Array. The slice must not be resliced beyond its length.
func (a *Array[F, A]) Slice() []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(&a.inner)), len(a.inner))
}

// Equal tells whether a and other hold the same bytes.
func (a Array[F, A]) Equal(other Array[F, A]) bool {
	return a.inner == other.inner
}

// EqualBytes tells whether the Array holds exactly the given bytes.
func (a Array[F, A]) EqualBytes(b []byte) bool {
	return bytes.Equal(a.Slice(), b)
}

// Compare compares a and other lexicographically.
func (a Array[F, A]) Compare(other Array[F, A]) int {
	return bytes.Compare(a.Slice(), other.Slice())
}

// Hash returns a hash of the bytes. It doesn't depend on F.
func (a Array[F, A]) Hash() uint64 {
	return xxhash.Sum64(a.Slice())
}

// String returns a human-readable version of the Array.
func (a Array[F, A]) String() string {
	return formatOf[F]().Name() + "(" + hex.EncodeToString(a.Slice()) + ")"
}

// EncodeWire encodes the Array with the format F.
func (a Array[F, A]) EncodeWire(enc wire.Encoder) error {
	return formatOf[F]().Encode(enc, a.Slice())
}

// DecodeWire decodes exactly len(A) bytes with the format F. a is left untouched on failure.
func (a *Array[F, A]) DecodeWire(dec wire.Decoder) error {
	var decoded Array[F, A]
	if err := formatOf[F]().DecodeFixed(dec, decoded.Slice()); err != nil {
		return err
	}
	a.inner = decoded.inner

	return nil
}

func (a Array[F, A]) MarshalJSON() ([]byte, error) {
	enc := wire.NewJSONEncoder()
	if err := a.EncodeWire(enc); err != nil {
		return nil, err
	}

	return enc.Bytes(), nil
}

func (a *Array[F, A]) UnmarshalJSON(data []byte) error {
	if wire.IsJSONNull(data) {
		return nil
	}

	return a.DecodeWire(wire.NewJSONDecoder(data))
}

// EncodeJSON returns the Array as a generic value tree (see serix.SerializableJSON).
func (a Array[F, A]) EncodeJSON() (any, error) {
	enc := wire.NewValueEncoder()
	if err := a.EncodeWire(enc); err != nil {
		return nil, err
	}

	return enc.Value(), nil
}

// DecodeJSON decodes the Array from a generic value tree (see serix.DeserializableJSON).
func (a *Array[F, A]) DecodeJSON(value any) error {
	return a.DecodeWire(wire.NewValueDecoder(value))
}

func (a Array[F, A]) EncodeMsgpack(enc *msgpack.Encoder) error {
	return a.EncodeWire(wire.NewMsgpackEncoder(enc))
}

func (a *Array[F, A]) DecodeMsgpack(dec *msgpack.Decoder) error {
	return a.DecodeWire(wire.NewMsgpackDecoder(dec))
}

func (a Array[F, A]) MarshalYAML() (any, error) {
	return a.EncodeJSON()
}

func (a *Array[F, A]) UnmarshalYAML(unmarshal func(any) error) error {
	value, err := wire.YAMLValue(unmarshal)
	if err != nil {
		return err
	}

	return a.DecodeJSON(value)
}
