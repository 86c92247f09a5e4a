package formats

import (
	"github.com/mr-tron/base58"

	"github.com/iotaledger/hive.go/ierrors"

	"github.com/iotaledger/bytekind/wire"
)

// Base58 represents bytes as a base58 string using the bitcoin alphabet.
// Leading zero bytes are kept as leading '1' characters, the empty value is the empty string.
type Base58 struct{}

func (Base58) Name() string {
	return "Base58"
}

func (Base58) Encode(enc wire.Encoder, b []byte) error {
	return enc.EncodeString(base58.Encode(b))
}

func (Base58) Decode(dec wire.Decoder) ([]byte, error) {
	input, err := wire.ReadString(dec)
	if err != nil {
		return nil, err
	}

	return decodeBase58(input)
}

func (f Base58) DecodeFixed(dec wire.Decoder, dst []byte) error {
	decoded, err := f.Decode(dec)
	if err != nil {
		return err
	}
	if err := checkLength(decoded, dst); err != nil {
		return err
	}
	copy(dst, decoded)

	return nil
}

func decodeBase58(input string) ([]byte, error) {
	// base58.Decode rejects the empty string, which is how an empty value encodes
	if input == "" {
		return []byte{}, nil
	}

	decoded, err := base58.Decode(input)
	if err != nil {
		return nil, ierrors.Wrapf(ErrInvalidBase58, "%q: %s", input, err)
	}

	return decoded, nil
}
