// Package wire defines the minimal structured-data model that bytekind containers are encoded into and decoded from.
//
// A serialization framework is plugged in by providing an Encoder and a Decoder for it. Adapters exist for
// encoding/json, msgpack and generic value trees (as produced by YAML, TOML or protobuf struct values).
package wire

import (
	"github.com/iotaledger/hive.go/ierrors"
)

var (
	// ErrUnexpectedKind gets returned when the offered value has a different shape than the one the decoder needs.
	ErrUnexpectedKind = ierrors.New("unexpected wire kind")
	// ErrInvalidElement gets returned when a sequence element is not an unsigned 8-bit integer.
	ErrInvalidElement = ierrors.New("sequence element is not a byte")
	// ErrUnsupported gets returned when a framework can't produce the requested kind.
	ErrUnsupported = ierrors.New("unsupported by the wire format")
	// ErrMalformed gets returned when the input is not exactly one well-formed value.
	ErrMalformed = ierrors.New("malformed input")
)

// Kind is the shape of the value offered by a Decoder.
type Kind byte

const (
	// KindUnknown is any shape bytekind doesn't know how to handle (maps, booleans, numbers...).
	KindUnknown Kind = iota
	// KindNil is an explicit null value.
	KindNil
	// KindString is a text string.
	KindString
	// KindBytes is a native byte-string.
	KindBytes
	// KindSeq is an ordered sequence.
	KindSeq
)

func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindString:
		return "string"
	case KindBytes:
		return "bytes"
	case KindSeq:
		return "sequence"
	default:
		return "unknown"
	}
}

// Encoder writes exactly one value.
type Encoder interface {
	// EncodeString writes a text string.
	EncodeString(v string) error
	// EncodeUint8Seq writes the bytes as an ordered sequence of unsigned 8-bit integers.
	EncodeUint8Seq(v []byte) error
}

// Decoder reads exactly one value.
type Decoder interface {
	// Kind reports the shape of the offered value without consuming it.
	Kind() (Kind, error)
	// DecodeString reads a text string.
	DecodeString() (string, error)
	// DecodeBytes reads a native byte-string.
	DecodeBytes() ([]byte, error)
	// DecodeSeq starts reading an ordered sequence.
	DecodeSeq() (SeqDecoder, error)
}

// SeqDecoder yields the elements of a sequence one by one.
type SeqDecoder interface {
	// Next returns the next element. ok is false once the sequence is exhausted.
	Next() (v byte, ok bool, err error)
}

// ReadString checks that the decoder offers a string and reads it.
func ReadString(dec Decoder) (string, error) {
	kind, err := dec.Kind()
	if err != nil {
		return "", err
	}
	if kind != KindString {
		return "", UnexpectedKind(kind, KindString.String())
	}

	return dec.DecodeString()
}

// UnexpectedKind returns an ErrUnexpectedKind error describing what was expected instead of kind.
func UnexpectedKind(kind Kind, expected string) error {
	return ierrors.Wrapf(ErrUnexpectedKind, "expected %s, got %s", expected, kind)
}
