// Package crypto wraps the secp256k1 primitives used to sign and verify
// transactions.
package crypto

import (
	"errors"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
)

// SignTypeSecp256k1 is the signature type id carried in types.Signature.
const SignTypeSecp256k1 = int32(1)

// GenKey generates a fresh secp256k1 private key.
func GenKey() (*btcec.PrivateKey, error) {
	return btcec.NewPrivateKey()
}

// PrivKeyFromBytes restores a private key from its 32 raw bytes.
func PrivKeyFromBytes(b []byte) (*btcec.PrivateKey, error) {
	if len(b) != 32 {
		return nil, errors.New("invalid private key length")
	}
	priv, _ := btcec.PrivKeyFromBytes(b)
	return priv, nil
}

// PubKey returns the compressed public key of priv.
func PubKey(priv *btcec.PrivateKey) []byte {
	return priv.PubKey().SerializeCompressed()
}

// Sign produces a DER encoded signature over msg (msg is expected to be a
// 32-byte hash already).
func Sign(priv *btcec.PrivateKey, msg []byte) []byte {
	sig := ecdsa.Sign(priv, msg)
	return sig.Serialize()
}

// Verify checks a DER encoded signature against a compressed pubkey.
func Verify(pubkey, msg, sig []byte) bool {
	pub, err := btcec.ParsePubKey(pubkey)
	if err != nil {
		return false
	}
	s, err := ecdsa.ParseDERSignature(sig)
	if err != nil {
		return false
	}
	return s.Verify(msg, pub)
}
