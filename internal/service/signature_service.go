package service

import (
	"crypto/ed25519"
	"encoding/base64"

	"github.com/mr-tron/base58"
	"github.com/rs/zerolog"
)

// Ed25519Verifier implements ports.SignatureVerifier: detached ed25519
// verification of a UTF-8 message against a base58 public key and a standard
// base64 signature.
type Ed25519Verifier struct {
	log zerolog.Logger
}

// NewEd25519Verifier creates a new Ed25519Verifier.
func NewEd25519Verifier(log zerolog.Logger) *Ed25519Verifier {
	return &Ed25519Verifier{log: log}
}

// Verify returns true only when the signature verifies. Decoding failures and
// curve failures are both "not verified"; the caller cannot distinguish a
// malformed signature from a well-formed invalid one, and nothing here ever
// propagates an error.
func (v *Ed25519Verifier) Verify(publicKey string, message string, signature string) bool {
	pub, err := base58.Decode(publicKey)
	if err != nil || len(pub) != ed25519.PublicKeySize {
		v.log.Debug().Msg("signature verify: public key not decodable")
		return false
	}

	sig, err := base64.StdEncoding.DecodeString(signature)
	if err != nil || len(sig) != ed25519.SignatureSize {
		v.log.Debug().Msg("signature verify: signature not decodable")
		return false
	}

	return ed25519.Verify(ed25519.PublicKey(pub), []byte(message), sig)
}
