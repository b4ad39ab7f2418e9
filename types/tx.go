package types

import (
	"crypto/rand"
	"encoding/binary"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/rpschain/rpschain/common"
	"github.com/rpschain/rpschain/common/address"
	"github.com/rpschain/rpschain/common/crypto"
)

// MinFee is the flat fee attached to every transaction.
const MinFee int64 = 100000

// Signature authenticates a transaction.
type Signature struct {
	Ty        int32  `json:"ty"`
	Pubkey    []byte `json:"pubkey"`
	Signature []byte `json:"signature"`
}

// Transaction is one signed ledger action. Execer names the target driver,
// Payload carries the encoded dapp action, To must equal the driver's
// contract address.
type Transaction struct {
	Execer    []byte     `json:"execer"`
	Payload   []byte     `json:"payload"`
	Fee       int64      `json:"fee"`
	Nonce     int64      `json:"nonce"`
	To        string     `json:"to"`
	Signature *Signature `json:"signature,omitempty"`
}

// Hash is the sha256 of the transaction without its signature.
func (tx *Transaction) Hash() []byte {
	copytx := *tx
	copytx.Signature = nil
	return common.Sha256(Encode(&copytx))
}

// Sign signs the transaction in place with a secp256k1 key.
func (tx *Transaction) Sign(priv *btcec.PrivateKey) {
	tx.Signature = nil
	hash := tx.Hash()
	tx.Signature = &Signature{
		Ty:        crypto.SignTypeSecp256k1,
		Pubkey:    crypto.PubKey(priv),
		Signature: crypto.Sign(priv, hash),
	}
}

// CheckSign verifies the signature against the unsigned hash.
func (tx *Transaction) CheckSign() bool {
	if tx.Signature == nil || tx.Signature.Ty != crypto.SignTypeSecp256k1 {
		return false
	}
	return crypto.Verify(tx.Signature.Pubkey, tx.Hash(), tx.Signature.Signature)
}

// From is the address of the signer. Empty until the tx is signed.
func (tx *Transaction) From() string {
	if tx.Signature == nil {
		return ""
	}
	return address.PubKeyToAddr(tx.Signature.Pubkey)
}

// Nonce draws a random transaction nonce so identical actions hash
// differently.
func Nonce() int64 {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(err)
	}
	return int64(binary.LittleEndian.Uint64(b[:]) >> 1)
}
