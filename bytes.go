package bytekind

import (
	"bytes"
	"encoding/hex"
	"slices"

	"github.com/cespare/xxhash/v2"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/iotaledger/bytekind/wire"
)

// Bytes is a growable byte container whose wire format is selected by F.
// It is a plain byte slice: append, len, cap, range, slicing and copy all work as usual.
//
// Bytes that only differ in F hold the same value, use EqualBytes and CompareBytes to compare them.
type Bytes[F Format] []byte

// NewBytes wraps the given slice without copying it.
func NewBytes[F Format](b []byte) Bytes[F] {
	return Bytes[F](b)
}

// WithCapacity creates an empty Bytes with at least the given capacity.
func WithCapacity[F Format](capacity int) Bytes[F] {
	return make(Bytes[F], 0, capacity)
}

// ConvertBytes changes the format of the given Bytes. The underlying storage is reused.
func ConvertBytes[G Format, F Format](b Bytes[F]) Bytes[G] {
	return Bytes[G](b)
}

// EqualBytes tells whether two containers hold the same bytes, regardless of their formats.
func EqualBytes[F Format, G Format](a Bytes[F], b Bytes[G]) bool {
	return bytes.Equal(a, b)
}

// CompareBytes compares two containers lexicographically, regardless of their formats.
func CompareBytes[F Format, G Format](a Bytes[F], b Bytes[G]) int {
	return bytes.Compare(a, b)
}

// Inner returns the underlying slice.
func (b Bytes[F]) Inner() []byte {
	return b
}

// Clone returns a copy of b with its own storage.
func (b Bytes[F]) Clone() Bytes[F] {
	return slices.Clone(b)
}

// Grow makes room for at least n more bytes without another allocation.
func (b Bytes[F]) Grow(n int) Bytes[F] {
	return slices.Grow(b, n)
}

// Equal tells whether b and other hold the same bytes.
func (b Bytes[F]) Equal(other []byte) bool {
	return bytes.Equal(b, other)
}

// Compare compares b and other lexicographically.
func (b Bytes[F]) Compare(other []byte) int {
	return bytes.Compare(b, other)
}

// Hash returns a hash of the bytes. It doesn't depend on F.
func (b Bytes[F]) Hash() uint64 {
	return xxhash.Sum64(b)
}

// String returns a human-readable version of b.
func (b Bytes[F]) String() string {
	return formatOf[F]().Name() + "(" + hex.EncodeToString(b) + ")"
}

// EncodeWire encodes b with the format F.
func (b Bytes[F]) EncodeWire(enc wire.Encoder) error {
	return formatOf[F]().Encode(enc, b)
}

// DecodeWire decodes b with the format F. b is left untouched on failure.
func (b *Bytes[F]) DecodeWire(dec wire.Decoder) error {
	decoded, err := formatOf[F]().Decode(dec)
	if err != nil {
		return err
	}
	*b = decoded

	return nil
}

func (b Bytes[F]) MarshalJSON() ([]byte, error) {
	enc := wire.NewJSONEncoder()
	if err := b.EncodeWire(enc); err != nil {
		return nil, err
	}

	return enc.Bytes(), nil
}

func (b *Bytes[F]) UnmarshalJSON(data []byte) error {
	if wire.IsJSONNull(data) {
		return nil
	}

	return b.DecodeWire(wire.NewJSONDecoder(data))
}

// EncodeJSON returns b as a generic value tree (see serix.SerializableJSON).
func (b Bytes[F]) EncodeJSON() (any, error) {
	enc := wire.NewValueEncoder()
	if err := b.EncodeWire(enc); err != nil {
		return nil, err
	}

	return enc.Value(), nil
}

// DecodeJSON decodes b from a generic value tree (see serix.DeserializableJSON).
func (b *Bytes[F]) DecodeJSON(value any) error {
	return b.DecodeWire(wire.NewValueDecoder(value))
}

func (b Bytes[F]) EncodeMsgpack(enc *msgpack.Encoder) error {
	return b.EncodeWire(wire.NewMsgpackEncoder(enc))
}

func (b *Bytes[F]) DecodeMsgpack(dec *msgpack.Decoder) error {
	return b.DecodeWire(wire.NewMsgpackDecoder(dec))
}

func (b Bytes[F]) MarshalYAML() (any, error) {
	return b.EncodeJSON()
}

func (b *Bytes[F]) UnmarshalYAML(unmarshal func(any) error) error {
	value, err := wire.YAMLValue(unmarshal)
	if err != nil {
		return err
	}

	return b.DecodeJSON(value)
}
