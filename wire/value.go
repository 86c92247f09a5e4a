package wire

import (
	"encoding/json"
	"math"
	"reflect"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/lo"
)

// ValueEncoder builds a generic value tree: a string, or a []any holding one uint8 per byte.
// The result can be handed to encoding/json, yaml, toml or structpb as is.
type ValueEncoder struct {
	value any
}

// NewValueEncoder creates a new ValueEncoder.
func NewValueEncoder() *ValueEncoder {
	return &ValueEncoder{}
}

func (e *ValueEncoder) EncodeString(v string) error {
	e.value = v

	return nil
}

func (e *ValueEncoder) EncodeUint8Seq(v []byte) error {
	e.value = lo.Map(v, func(b byte) any { return b })

	return nil
}

// Value returns the encoded value.
func (e *ValueEncoder) Value() any {
	return e.value
}

// ValueDecoder reads from a generic value tree as produced by encoding/json, yaml, toml or structpb.
type ValueDecoder struct {
	value any
}

// NewValueDecoder creates a new ValueDecoder.
func NewValueDecoder(value any) *ValueDecoder {
	return &ValueDecoder{value: value}
}

func (d *ValueDecoder) Kind() (Kind, error) {
	switch d.value.(type) {
	case nil:
		return KindNil, nil
	case string:
		return KindString, nil
	case []byte:
		return KindBytes, nil
	}

	switch reflect.ValueOf(d.value).Kind() {
	case reflect.Slice, reflect.Array:
		return KindSeq, nil
	default:
		return KindUnknown, nil
	}
}

func (d *ValueDecoder) DecodeString() (string, error) {
	s, ok := d.value.(string)
	if !ok {
		return "", ierrors.Wrapf(ErrUnexpectedKind, "expected string, got %T", d.value)
	}

	return s, nil
}

func (d *ValueDecoder) DecodeBytes() ([]byte, error) {
	b, ok := d.value.([]byte)
	if !ok {
		return nil, ierrors.Wrapf(ErrUnexpectedKind, "expected bytes, got %T", d.value)
	}

	return append([]byte{}, b...), nil
}

func (d *ValueDecoder) DecodeSeq() (SeqDecoder, error) {
	rv := reflect.ValueOf(d.value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, ierrors.Wrapf(ErrUnexpectedKind, "expected sequence, got %T", d.value)
	}

	return &valueSeq{seq: rv}, nil
}

type valueSeq struct {
	seq   reflect.Value
	index int
}

func (s *valueSeq) Next() (byte, bool, error) {
	if s.index >= s.seq.Len() {
		return 0, false, nil
	}
	elem := s.seq.Index(s.index).Interface()
	s.index++

	b, err := toUint8(elem)
	if err != nil {
		return 0, false, err
	}

	return b, true, nil
}

// toUint8 accepts every integer representation the supported frameworks produce:
// Go integers (yaml, toml), float64 (encoding/json into any, structpb) and json.Number.
func toUint8(v any) (byte, error) {
	if num, ok := v.(json.Number); ok {
		b, _, err := parseUint8(num.String())

		return b, err
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if i := rv.Int(); i >= 0 && i <= math.MaxUint8 {
			return byte(i), nil
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if u := rv.Uint(); u <= math.MaxUint8 {
			return byte(u), nil
		}
	case reflect.Float32, reflect.Float64:
		if f := rv.Float(); f >= 0 && f <= math.MaxUint8 && f == math.Trunc(f) {
			return byte(f), nil
		}
	default:
		return 0, ierrors.Wrapf(ErrInvalidElement, "got %T", v)
	}

	return 0, ierrors.Wrapf(ErrInvalidElement, "%v", v)
}

// YAMLValue reads a yaml.v2 node through the unmarshal callback handed to an UnmarshalYAML method.
// Scalars are returned as their verbatim text, so that hex strings like 0x0102 or 01020304 are not resolved to integers.
func YAMLValue(unmarshal func(any) error) (any, error) {
	var raw any
	if err := unmarshal(&raw); err != nil {
		return nil, ierrors.Wrap(err, "failed to unmarshal YAML node")
	}

	switch raw.(type) {
	case nil, []any, map[any]any, map[string]any:
		return raw, nil
	}

	var text string
	if err := unmarshal(&text); err != nil {
		return raw, nil //nolint:nilerr // not representable as text, the decoder reports the kind mismatch
	}

	return text, nil
}
