package types

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rpschain/rpschain/common/address"
	"github.com/rpschain/rpschain/common/crypto"
)

func newTestTx() *Transaction {
	return &Transaction{
		Execer:  []byte("rps"),
		Payload: []byte(`{"ty":2}`),
		Fee:     MinFee,
		Nonce:   Nonce(),
		To:      address.ExecAddress("rps"),
	}
}

func TestTxHash(t *testing.T) {
	tx := newTestTx()
	hash := tx.Hash()
	require.Len(t, hash, 32)

	// the hash covers everything but the signature
	priv, err := crypto.GenKey()
	require.NoError(t, err)
	tx.Sign(priv)
	require.Equal(t, hash, tx.Hash())

	tx2 := newTestTx()
	require.NotEqual(t, hash, tx2.Hash()) // nonces differ
}

func TestTxSign(t *testing.T) {
	priv, err := crypto.GenKey()
	require.NoError(t, err)

	tx := newTestTx()
	require.False(t, tx.CheckSign())
	require.Empty(t, tx.From())

	tx.Sign(priv)
	require.True(t, tx.CheckSign())
	require.Equal(t, address.PubKeyToAddr(crypto.PubKey(priv)), tx.From())

	// any mutation invalidates the signature
	tx.Payload = []byte(`{"ty":3}`)
	require.False(t, tx.CheckSign())
}

func TestTxEncodeRoundtrip(t *testing.T) {
	priv, err := crypto.GenKey()
	require.NoError(t, err)
	tx := newTestTx()
	tx.Sign(priv)

	var decoded Transaction
	require.NoError(t, Decode(Encode(tx), &decoded))
	require.True(t, decoded.CheckSign())
	require.Equal(t, tx.Hash(), decoded.Hash())
	require.Equal(t, tx.From(), decoded.From())
}

func TestCheckAmount(t *testing.T) {
	require.True(t, CheckAmount(0))
	require.True(t, CheckAmount(100*Coin))
	require.False(t, CheckAmount(-1))
	require.False(t, CheckAmount(MaxCoin))
}
