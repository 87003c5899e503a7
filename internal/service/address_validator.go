package service

import "github.com/mr-tron/base58"

const (
	// ed25519 public keys are exactly 32 bytes.
	publicKeyByteLength = 32

	// base58 bounds for a 32-byte payload: an all-zero key encodes to 32
	// '1' characters, a max-value key to 44 characters.
	minAddressLength = 32
	maxAddressLength = 44
)

// IsValidWalletAddress reports whether the string is a well-formed
// base58-encoded ed25519 public key. Pure and side-effect free; invoked
// before any state-mutating operation that accepts a caller-supplied address.
// Non-canonical encodings are rejected: the decoded bytes must re-encode to
// the original string exactly.
func IsValidWalletAddress(address string) bool {
	if len(address) < minAddressLength || len(address) > maxAddressLength {
		return false
	}

	decoded, err := base58.Decode(address)
	if err != nil {
		// Characters outside the base58 alphabet land here.
		return false
	}
	if len(decoded) != publicKeyByteLength {
		return false
	}

	return base58.Encode(decoded) == address
}
