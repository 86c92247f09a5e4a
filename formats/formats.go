// Package formats contains bytekind formats beyond Plain and HexString, and a registry to look formats up by name.
package formats

import (
	"sort"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/lo"

	"github.com/iotaledger/bytekind"
)

var (
	// ErrInvalidBase58 gets returned when a string is not valid base58.
	ErrInvalidBase58 = ierrors.New("invalid base58 string")
	// ErrMissingHexPrefix gets returned when a PrefixedHex string doesn't start with 0x.
	ErrMissingHexPrefix = ierrors.New("missing 0x prefix")
	// ErrUnknownFormat gets returned when ByName is called with an unregistered name.
	ErrUnknownFormat = ierrors.New("unknown format")
)

var registry = map[string]bytekind.Format{
	"plain":        bytekind.Plain{},
	"hex":          bytekind.HexString{},
	"base58":       Base58{},
	"prefixed-hex": PrefixedHex{},
}

// ByName returns the format registered under the given name.
func ByName(name string) (bytekind.Format, error) {
	format, exists := registry[name]
	if !exists {
		return nil, ierrors.Wrapf(ErrUnknownFormat, "%q, known formats are %v", name, Names())
	}

	return format, nil
}

// Names returns the sorted names of all registered formats.
func Names() []string {
	names := lo.Keys(registry)
	sort.Strings(names)

	return names
}

// checkLength fails if the decoded bytes don't fit a fixed-size destination.
func checkLength(decoded []byte, dst []byte) error {
	if len(decoded) != len(dst) {
		return &bytekind.LengthMismatchError{Expected: len(dst), Actual: len(decoded), Unit: bytekind.UnitBytes}
	}

	return nil
}
