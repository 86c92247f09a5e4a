// Package pbvalue converts bytekind containers to and from protobuf struct values.
//
// This lets containers travel inside google.protobuf.Struct and google.protobuf.Value fields with the same
// representation they have in JSON.
package pbvalue

import (
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/iotaledger/hive.go/ierrors"
)

// ErrUnsupportedValue gets returned when a container encodes to a value tree structpb can't represent.
var ErrUnsupportedValue = ierrors.New("unsupported value")

// Encodable is implemented by bytekind.Array and bytekind.Bytes.
type Encodable interface {
	EncodeJSON() (any, error)
}

// Decodable is implemented by *bytekind.Array and *bytekind.Bytes.
type Decodable interface {
	DecodeJSON(value any) error
}

// Marshal returns the struct value representation of v.
func Marshal(v Encodable) (*structpb.Value, error) {
	tree, err := v.EncodeJSON()
	if err != nil {
		return nil, err
	}

	switch tree := tree.(type) {
	case string:
		return structpb.NewStringValue(tree), nil
	case []any:
		numbers := make([]*structpb.Value, len(tree))
		for i, elem := range tree {
			b, ok := elem.(byte)
			if !ok {
				return nil, ierrors.Wrapf(ErrUnsupportedValue, "sequence element %d is %T, not a byte", i, elem)
			}
			numbers[i] = structpb.NewNumberValue(float64(b))
		}

		return structpb.NewListValue(&structpb.ListValue{Values: numbers}), nil
	default:
		value, err := structpb.NewValue(tree)
		if err != nil {
			return nil, ierrors.Wrapf(ErrUnsupportedValue, "%T: %s", tree, err)
		}

		return value, nil
	}
}

// Unmarshal decodes v from the given struct value. A nil value is rejected like a null value.
func Unmarshal(value *structpb.Value, v Decodable) error {
	return v.DecodeJSON(value.AsInterface())
}
