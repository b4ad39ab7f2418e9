package rpc

import (
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/stretchr/testify/require"

	"github.com/rpschain/rpschain/common"
	"github.com/rpschain/rpschain/common/address"
	"github.com/rpschain/rpschain/common/crypto"
	"github.com/rpschain/rpschain/ledger"
	"github.com/rpschain/rpschain/rps/executor"
	rpsty "github.com/rpschain/rpschain/rps/types"
	"github.com/rpschain/rpschain/types"
)

var (
	setupOnce  sync.Once
	adminPriv  *btcec.PrivateKey
	playerPriv *btcec.PrivateKey
	adminAddr  string
	playerAddr string
)

func newTestServer(t *testing.T) (*httptest.Server, *JSONClient) {
	setupOnce.Do(func() {
		var err error
		adminPriv, err = crypto.GenKey()
		require.NoError(t, err)
		playerPriv, err = crypto.GenKey()
		require.NoError(t, err)
		adminAddr = address.PubKeyToAddr(crypto.PubKey(adminPriv))
		playerAddr = address.PubKeyToAddr(crypto.PubKey(playerPriv))
		executor.Init(adminAddr)
	})
	l := ledger.NewMem([]*types.GenesisAccount{
		{Addr: adminAddr, Amount: 10000},
		{Addr: playerAddr, Amount: 1000},
	})
	server := httptest.NewServer(NewServer(l))
	t.Cleanup(server.Close)
	t.Cleanup(l.Close)
	return server, NewJSONClient(server.URL)
}

func sendTx(t *testing.T, client *JSONClient, priv *btcec.PrivateKey, tx *types.Transaction) ReplyTxHash {
	tx.Sign(priv)
	var reply ReplyTxHash
	err := client.Call("Chain.SendTransaction", RawParm{Data: common.ToHex(types.Encode(tx))}, &reply)
	require.NoError(t, err)
	return reply
}

func TestSendTransactionRPC(t *testing.T) {
	_, client := newTestServer(t)

	reply := sendTx(t, client, playerPriv, rpsty.CreateGameInitTx())
	require.NotEmpty(t, reply.Hash)

	var receipt types.Receipt
	err := client.Call("Chain.QueryTransaction", HashParm{Hash: reply.Hash}, &receipt)
	require.NoError(t, err)
	require.Equal(t, types.ExecOk, receipt.Ty)
}

func TestSendTransactionRPCRejectsUnsigned(t *testing.T) {
	_, client := newTestServer(t)

	tx := rpsty.CreateGameInitTx()
	var reply ReplyTxHash
	err := client.Call("Chain.SendTransaction", RawParm{Data: common.ToHex(types.Encode(tx))}, &reply)
	require.Error(t, err)
	require.Equal(t, types.ErrSign.Error(), err.Error())
}

func TestQueryRPC(t *testing.T) {
	_, client := newTestServer(t)

	sendTx(t, client, adminPriv, rpsty.CreateTreasuryInitTx())
	sendTx(t, client, playerPriv, rpsty.CreateGameInitTx())

	var raw json.RawMessage
	err := client.Call("Chain.Query", Query4Jrpc{
		Execer:   rpsty.RPSX,
		FuncName: rpsty.FuncGetGame,
		Payload:  types.Encode(&rpsty.QueryGameParams{Addr: playerAddr}),
	}, &raw)
	require.NoError(t, err)

	var game rpsty.Game
	require.NoError(t, json.Unmarshal(raw, &game))
	require.Equal(t, playerAddr, game.Player)
	require.Equal(t, rpsty.BaseMultiplier, game.Multiplier)

	var treasury rpsty.ReplyTreasury
	err = client.Call("Chain.Query", Query4Jrpc{
		Execer:   rpsty.RPSX,
		FuncName: rpsty.FuncGetTreasury,
		Payload:  types.Encode(&rpsty.QueryTreasuryParams{}),
	}, &raw)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &treasury))
	require.Equal(t, adminAddr, treasury.Admin)
}

func TestGetBalanceRPC(t *testing.T) {
	_, client := newTestServer(t)

	var acc types.Account
	err := client.Call("Chain.GetBalance", BalanceParm{Addr: playerAddr}, &acc)
	require.NoError(t, err)
	require.Equal(t, 1000*types.Coin, acc.Balance)
}
