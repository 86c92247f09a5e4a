package bytekind

import (
	"fmt"

	"github.com/iotaledger/hive.go/ierrors"
)

var (
	// ErrLengthMismatch gets returned when a fixed-size container is decoded from input of the wrong length.
	ErrLengthMismatch = ierrors.New("length mismatch")
	// ErrTrailingData gets returned when a sequence holds more elements than a fixed-size container can take.
	ErrTrailingData = ierrors.New("trailing data")
	// ErrOddHexLength gets returned when a hex string has an odd number of digits.
	ErrOddHexLength = ierrors.New("odd hex length")
	// ErrInvalidHexDigit gets returned when a hex string contains a character outside of [0-9a-fA-F].
	ErrInvalidHexDigit = ierrors.New("invalid hex digit")
)

// LengthUnit names what a LengthMismatchError counts.
type LengthUnit string

const (
	// UnitBytes counts decoded bytes or sequence elements.
	UnitBytes LengthUnit = "bytes"
	// UnitHexDigits counts hex digits after prefix removal.
	UnitHexDigits LengthUnit = "hex digits"
)

// LengthMismatchError is returned when a fixed-size decode sees the wrong amount of input.
// It matches ErrLengthMismatch, and ErrTrailingData as well if Trailing is set.
type LengthMismatchError struct {
	// Expected is the required length.
	Expected int
	// Actual is the length that was seen. For trailing data it is a lower bound.
	Actual int
	// Unit is what the lengths count.
	Unit LengthUnit
	// Trailing is set when a sequence had at least one element more than expected.
	Trailing bool
}

func (e *LengthMismatchError) Error() string {
	if e.Trailing {
		return fmt.Sprintf("%s: expected %d %s, got trailing data", ErrLengthMismatch, e.Expected, e.Unit)
	}

	return fmt.Sprintf("%s: expected %d %s, got %d", ErrLengthMismatch, e.Expected, e.Unit, e.Actual)
}

func (e *LengthMismatchError) Is(target error) bool {
	return target == ErrLengthMismatch || (e.Trailing && target == ErrTrailingData)
}

// InvalidHexDigitError is returned when a hex string contains a non-hex character.
// It matches ErrInvalidHexDigit.
type InvalidHexDigitError struct {
	// Input is the malformed input, including a possible 0x prefix.
	Input string
	// Offset is the byte offset of the offending character within Input.
	Offset int
	// Char is the offending character.
	Char byte
}

func (e *InvalidHexDigitError) Error() string {
	return fmt.Sprintf("%s: %q at offset %d of %q", ErrInvalidHexDigit, e.Char, e.Offset, e.Input)
}

func (e *InvalidHexDigitError) Is(target error) bool {
	return target == ErrInvalidHexDigit
}

func lengthMismatch(expected, actual int, unit LengthUnit) error {
	return &LengthMismatchError{Expected: expected, Actual: actual, Unit: unit}
}

func trailingData(expected int) error {
	return &LengthMismatchError{Expected: expected, Actual: expected + 1, Unit: UnitBytes, Trailing: true}
}
