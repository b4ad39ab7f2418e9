package ledger_test

import (
	"sync"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/stretchr/testify/require"

	coinsexec "github.com/rpschain/rpschain/coins/executor"
	cty "github.com/rpschain/rpschain/coins/types"
	"github.com/rpschain/rpschain/common/address"
	"github.com/rpschain/rpschain/common/crypto"
	"github.com/rpschain/rpschain/common/random"
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

func newTestLedger(t *testing.T) *ledger.Ledger {
	setupOnce.Do(func() {
		var err error
		adminPriv, err = crypto.GenKey()
		require.NoError(t, err)
		playerPriv, err = crypto.GenKey()
		require.NoError(t, err)
		adminAddr = address.PubKeyToAddr(crypto.PubKey(adminPriv))
		playerAddr = address.PubKeyToAddr(crypto.PubKey(playerPriv))
		executor.Init(adminAddr)
		coinsexec.Init()
	})
	return ledger.NewMem([]*types.GenesisAccount{
		{Addr: adminAddr, Amount: 10000},
		{Addr: playerAddr, Amount: 1000},
	})
}

func send(t *testing.T, l *ledger.Ledger, priv *btcec.PrivateKey, tx *types.Transaction) *types.Receipt {
	tx.Sign(priv)
	receipt, err := l.SendTransaction(tx)
	require.NoError(t, err)
	require.Equal(t, types.ExecOk, receipt.Ty)
	return receipt
}

func TestGenesis(t *testing.T) {
	l := newTestLedger(t)
	defer l.Close()

	require.Equal(t, 10000*types.Coin, l.GetBalance(adminAddr, "").Balance)
	require.Equal(t, 1000*types.Coin, l.GetBalance(playerAddr, "").Balance)
	require.Equal(t, int64(0), l.Height())
}

func TestSendTransactionChecks(t *testing.T) {
	l := newTestLedger(t)
	defer l.Close()

	// unsigned
	tx := rpsty.CreateGameInitTx()
	_, err := l.SendTransaction(tx)
	require.Equal(t, types.ErrSign, err)

	// unknown execer
	tx = rpsty.CreateGameInitTx()
	tx.Execer = []byte("nosuch")
	tx.Sign(playerPriv)
	_, err = l.SendTransaction(tx)
	require.Equal(t, types.ErrExecNotFound, err)

	// destination is not the contract address
	tx = rpsty.CreateGameInitTx()
	tx.To = adminAddr
	tx.Sign(playerPriv)
	_, err = l.SendTransaction(tx)
	require.Equal(t, types.ErrToAddrNotSameToExecAddr, err)

	// underpaid fee
	tx = rpsty.CreateGameInitTx()
	tx.Fee = 0
	tx.Sign(playerPriv)
	_, err = l.SendTransaction(tx)
	require.Equal(t, types.ErrInvalidParam, err)
}

func TestFailedActionLeavesNoState(t *testing.T) {
	l := newTestLedger(t)
	defer l.Close()

	// bet without a game record fails and must not move funds
	tx := rpsty.CreateBetTx(100*types.Coin, adminAddr)
	tx.Sign(playerPriv)
	_, err := l.SendTransaction(tx)
	require.Error(t, err)
	require.Equal(t, 1000*types.Coin, l.GetBalance(playerAddr, "").Balance)
	require.Equal(t, int64(0), l.Height())
}

func TestFullGameFlow(t *testing.T) {
	l := newTestLedger(t)
	defer l.Close()
	l.SetRand(&random.Fixed{Values: []int64{2}})

	send(t, l, adminPriv, rpsty.CreateTreasuryInitTx())
	send(t, l, playerPriv, rpsty.CreateGameInitTx())
	send(t, l, playerPriv, rpsty.CreateBetTx(100*types.Coin, adminAddr))

	require.Equal(t, 900*types.Coin, l.GetBalance(playerAddr, "").Balance)
	require.Equal(t, 10100*types.Coin, l.GetBalance(adminAddr, "").Balance)

	playReceipt := send(t, l, playerPriv, rpsty.CreatePlayTx(rpsty.MoveRock))
	send(t, l, playerPriv, rpsty.CreateContinueTx())
	send(t, l, playerPriv, rpsty.CreateCashoutTx(adminAddr))

	// stake 100 at multiplier 50 pays 150
	require.Equal(t, 1050*types.Coin, l.GetBalance(playerAddr, "").Balance)
	require.Equal(t, 9950*types.Coin, l.GetBalance(adminAddr, "").Balance)
	require.Equal(t, int64(6), l.Height())

	// the game record is back at its baseline
	msg, err := l.Query(rpsty.RPSX, rpsty.FuncGetGame, types.Encode(&rpsty.QueryGameParams{Addr: playerAddr}))
	require.NoError(t, err)
	game := msg.(*rpsty.Game)
	require.False(t, game.Active)
	require.Equal(t, int64(0), game.Bet)
	require.Equal(t, rpsty.BaseMultiplier, game.Multiplier)

	// the round survived into the localdb index
	msg, err = l.Query(rpsty.RPSX, rpsty.FuncListRounds, types.Encode(&rpsty.ListRoundsParams{Addr: playerAddr}))
	require.NoError(t, err)
	rounds := msg.(*rpsty.ReplyRounds)
	require.Len(t, rounds.Rounds, 1)
	require.Equal(t, rpsty.ResultWin, rounds.Rounds[0].Result)

	// receipts are queryable by tx hash
	var playLogFound bool
	for _, item := range playReceipt.Logs {
		if item.Ty == rpsty.TyLogRPSPlay {
			playLogFound = true
		}
	}
	require.True(t, playLogFound)
}

func TestCoinsTransfer(t *testing.T) {
	l := newTestLedger(t)
	defer l.Close()

	send(t, l, adminPriv, cty.CreateTransferTx(playerAddr, 50*types.Coin, "topup"))
	require.Equal(t, 1050*types.Coin, l.GetBalance(playerAddr, "").Balance)
	require.Equal(t, 9950*types.Coin, l.GetBalance(adminAddr, "").Balance)

	// overdraw commits nothing
	tx := cty.CreateTransferTx(adminAddr, 5000*types.Coin, "")
	tx.Sign(playerPriv)
	_, err := l.SendTransaction(tx)
	require.Equal(t, types.ErrNoBalance, err)
	require.Equal(t, 1050*types.Coin, l.GetBalance(playerAddr, "").Balance)
}

func TestQueryReceipt(t *testing.T) {
	l := newTestLedger(t)
	defer l.Close()

	tx := rpsty.CreateGameInitTx()
	tx.Sign(playerPriv)
	receipt, err := l.SendTransaction(tx)
	require.NoError(t, err)

	stored, err := l.QueryReceipt(tx.Hash())
	require.NoError(t, err)
	require.Equal(t, receipt.Ty, stored.Ty)
	require.Len(t, stored.Logs, len(receipt.Logs))

	_, err = l.QueryReceipt([]byte("nosuchhash"))
	require.Equal(t, types.ErrNotFound, err)
}
