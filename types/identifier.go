package types

import (
	"crypto/rand"
	"sync"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/blake2b"

	"github.com/iotaledger/hive.go/ierrors"

	"github.com/iotaledger/bytekind"
	"github.com/iotaledger/bytekind/formats"
)

// IdentifierLength contains the byte length of a serialized Identifier.
const IdentifierLength = blake2b.Size256

// region Identifier ///////////////////////////////////////////////////////////////////////////////////////////////////

// Identifier is a 32 byte hash value that can be used to uniquely identify some blob of data.
// It serializes as a hex string.
type Identifier struct {
	bytekind.Array[bytekind.HexString, [IdentifierLength]byte]
}

// NewIdentifier returns a new Identifier for the given data.
func NewIdentifier(data []byte) Identifier {
	return Identifier{bytekind.NewArray[bytekind.HexString](blake2b.Sum256(data))}
}

// RandomIdentifier generates a random Identifier.
func RandomIdentifier() (Identifier, error) {
	var id Identifier
	if _, err := rand.Read(id.Slice()); err != nil {
		return Identifier{}, ierrors.Wrap(err, "failed to read randomness")
	}

	return id, nil
}

// IdentifierFromBase58 un-serializes an Identifier from a base58 encoded string.
func IdentifierFromBase58(base58String string) (Identifier, error) {
	decoded, err := base58.Decode(base58String)
	if err != nil {
		return Identifier{}, ierrors.Wrapf(formats.ErrInvalidBase58, "%q: %s", base58String, err)
	}

	inner, err := bytekind.ArrayFromBytes[bytekind.HexString, [IdentifierLength]byte](decoded)
	if err != nil {
		return Identifier{}, ierrors.Wrap(err, "failed to parse Identifier from bytes")
	}

	return Identifier{inner}, nil
}

// RegisterAlias allows to register a human-readable alias for the Identifier which will be used as a replacement for
// the String method.
func (t Identifier) RegisterAlias(alias string) {
	identifierAliasesMutex.Lock()
	defer identifierAliasesMutex.Unlock()

	identifierAliases[t] = alias
}

// Alias returns the human-readable alias of the Identifier (or the base58 encoded bytes if no alias was set).
func (t Identifier) Alias() string {
	identifierAliasesMutex.RLock()
	defer identifierAliasesMutex.RUnlock()

	if existingAlias, exists := identifierAliases[t]; exists {
		return existingAlias
	}

	return t.Base58()
}

// UnregisterAlias allows to unregister a previously registered alias.
func (t Identifier) UnregisterAlias() {
	identifierAliasesMutex.Lock()
	defer identifierAliasesMutex.Unlock()

	delete(identifierAliases, t)
}

// Base58 returns a base58 encoded version of the Identifier.
func (t Identifier) Base58() string {
	return base58.Encode(t.Bytes())
}

// String returns a human-readable version of the Identifier.
func (t Identifier) String() string {
	return "Identifier(" + t.Alias() + ")"
}

var (
	// identifierAliases contains a dictionary of identifiers associated to their human-readable alias.
	identifierAliases = make(map[Identifier]string)

	// identifierAliasesMutex is the mutex that is used to synchronize access to the previous map.
	identifierAliasesMutex = sync.RWMutex{}
)

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
