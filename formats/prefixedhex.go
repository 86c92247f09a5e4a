package formats

import (
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/iotaledger/hive.go/ierrors"

	"github.com/iotaledger/bytekind"
	"github.com/iotaledger/bytekind/wire"
)

const hexPrefix = "0x"

// PrefixedHex represents bytes as lowercase hex digits behind a mandatory "0x" prefix, the way Ethereum JSON-RPC does.
// The empty value is "0x".
type PrefixedHex struct{}

func (PrefixedHex) Name() string {
	return "PrefixedHex"
}

func (PrefixedHex) Encode(enc wire.Encoder, b []byte) error {
	return enc.EncodeString(hexutil.Encode(b))
}

func (PrefixedHex) Decode(dec wire.Decoder) ([]byte, error) {
	input, err := wire.ReadString(dec)
	if err != nil {
		return nil, err
	}

	return decodePrefixedHex(input)
}

func (PrefixedHex) DecodeFixed(dec wire.Decoder, dst []byte) error {
	input, err := wire.ReadString(dec)
	if err != nil {
		return err
	}

	digits, found := strings.CutPrefix(input, hexPrefix)
	if !found {
		return ierrors.Wrapf(ErrMissingHexPrefix, "%q", input)
	}
	if len(digits) != 2*len(dst) {
		return &bytekind.LengthMismatchError{Expected: 2 * len(dst), Actual: len(digits), Unit: bytekind.UnitHexDigits}
	}

	decoded, err := decodePrefixedHex(input)
	if err != nil {
		return err
	}
	copy(dst, decoded)

	return nil
}

func decodePrefixedHex(input string) ([]byte, error) {
	// hexutil also accepts "0X"
	if !strings.HasPrefix(input, hexPrefix) {
		return nil, ierrors.Wrapf(ErrMissingHexPrefix, "%q", input)
	}

	decoded, err := hexutil.Decode(input)
	switch {
	case err == nil:
		return decoded, nil
	case ierrors.Is(err, hexutil.ErrOddLength):
		return nil, ierrors.Wrapf(bytekind.ErrOddHexLength, "%q", input)
	case ierrors.Is(err, hexutil.ErrSyntax):
		return nil, ierrors.Wrapf(bytekind.ErrInvalidHexDigit, "%q", input)
	default:
		return nil, ierrors.Wrapf(err, "failed to decode %q", input)
	}
}
