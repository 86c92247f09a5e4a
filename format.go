package bytekind

import (
	"encoding/hex"
	"strings"

	"github.com/iotaledger/hive.go/ierrors"

	"github.com/iotaledger/bytekind/wire"
)

// Format selects how a container is represented on the wire.
// Implementations are zero-size marker types, used as the F type parameter of Array and Bytes.
// The zero value of the type is used to encode and decode, so a Format must not carry state.
type Format interface {
	// Name returns the human readable name of the format.
	Name() string
	// Encode writes b to enc.
	Encode(enc wire.Encoder, b []byte) error
	// Decode reads a byte sequence of any length.
	Decode(dec wire.Decoder) ([]byte, error)
	// DecodeFixed reads exactly len(dst) bytes into dst. dst is left untouched on failure.
	DecodeFixed(dec wire.Decoder, dst []byte) error
}

// formatOf returns the zero value of the format F.
func formatOf[F Format]() F {
	var f F

	return f
}

// Plain represents bytes as an ordered sequence of integers in the range 0-255.
// When decoding, a native byte-string is accepted as well.
type Plain struct{}

func (Plain) Name() string {
	return "Plain"
}

func (Plain) Encode(enc wire.Encoder, b []byte) error {
	return enc.EncodeUint8Seq(b)
}

func (Plain) Decode(dec wire.Decoder) ([]byte, error) {
	kind, err := dec.Kind()
	if err != nil {
		return nil, err
	}

	switch kind {
	case wire.KindBytes:
		return dec.DecodeBytes()
	case wire.KindSeq:
		seq, err := dec.DecodeSeq()
		if err != nil {
			return nil, err
		}

		decoded := []byte{}
		for {
			b, ok, err := seq.Next()
			if err != nil {
				return nil, ierrors.Wrapf(err, "failed to decode element %d", len(decoded))
			}
			if !ok {
				return decoded, nil
			}
			decoded = append(decoded, b)
		}
	default:
		return nil, wire.UnexpectedKind(kind, "bytes or sequence")
	}
}

func (Plain) DecodeFixed(dec wire.Decoder, dst []byte) error {
	kind, err := dec.Kind()
	if err != nil {
		return err
	}

	switch kind {
	case wire.KindBytes:
		decoded, err := dec.DecodeBytes()
		if err != nil {
			return err
		}
		if len(decoded) != len(dst) {
			return lengthMismatch(len(dst), len(decoded), UnitBytes)
		}
		copy(dst, decoded)

		return nil
	case wire.KindSeq:
		seq, err := dec.DecodeSeq()
		if err != nil {
			return err
		}

		decoded := make([]byte, len(dst))
		for i := range decoded {
			b, ok, err := seq.Next()
			if err != nil {
				return ierrors.Wrapf(err, "failed to decode element %d", i)
			}
			if !ok {
				return lengthMismatch(len(dst), i, UnitBytes)
			}
			decoded[i] = b
		}

		// any further element is rejected, even one that isn't a valid byte
		if _, ok, err := seq.Next(); ok || err != nil {
			return trailingData(len(dst))
		}
		copy(dst, decoded)

		return nil
	default:
		return wire.UnexpectedKind(kind, "bytes or sequence")
	}
}

// HexString represents bytes as a string of lowercase hex digits, two per byte.
// When decoding, a single leading "0x" is tolerated and digits are accepted in any case.
type HexString struct{}

// hexPrefix is stripped from hex strings before decoding.
const hexPrefix = "0x"

func (HexString) Name() string {
	return "HexString"
}

func (HexString) Encode(enc wire.Encoder, b []byte) error {
	return enc.EncodeString(hex.EncodeToString(b))
}

func (HexString) Decode(dec wire.Decoder) ([]byte, error) {
	input, err := wire.ReadString(dec)
	if err != nil {
		return nil, err
	}

	return DecodeHex(input)
}

func (HexString) DecodeFixed(dec wire.Decoder, dst []byte) error {
	input, err := wire.ReadString(dec)
	if err != nil {
		return err
	}

	if digits := strings.TrimPrefix(input, hexPrefix); len(digits) != 2*len(dst) {
		return lengthMismatch(2*len(dst), len(digits), UnitHexDigits)
	}

	decoded, err := DecodeHex(input)
	if err != nil {
		return err
	}
	copy(dst, decoded)

	return nil
}

// DecodeHex decodes a hex string, stripping one leading "0x" first.
// It fails with ErrOddHexLength or an InvalidHexDigitError.
func DecodeHex(input string) ([]byte, error) {
	digits, hasPrefix := strings.CutPrefix(input, hexPrefix)
	if len(digits)%2 != 0 {
		return nil, ierrors.Wrapf(ErrOddHexLength, "%d digits in %q", len(digits), input)
	}

	decoded := make([]byte, len(digits)/2)
	if _, err := hex.Decode(decoded, []byte(digits)); err != nil {
		var invalidByte hex.InvalidByteError
		if !ierrors.As(err, &invalidByte) {
			return nil, ierrors.Wrapf(err, "failed to decode hex string %q", input)
		}

		offset := strings.IndexByte(digits, byte(invalidByte))
		if hasPrefix {
			offset += len(hexPrefix)
		}

		return nil, &InvalidHexDigitError{Input: input, Offset: offset, Char: byte(invalidByte)}
	}

	return decoded, nil
}
