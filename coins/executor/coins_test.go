package executor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rpschain/rpschain/account"
	"github.com/rpschain/rpschain/common/address"
	"github.com/rpschain/rpschain/common/crypto"
	cty "github.com/rpschain/rpschain/coins/types"
	dbm "github.com/rpschain/rpschain/common/db"
	"github.com/rpschain/rpschain/types"
)

func TestTransfer(t *testing.T) {
	priv, err := crypto.GenKey()
	require.NoError(t, err)
	from := address.PubKeyToAddr(crypto.PubKey(priv))
	to := address.ExecAddress("sink")

	statedb, _ := dbm.NewGoMemDB("statedb", "test", 128)
	c := newCoins().(*Coins)
	c.SetStateDB(statedb)

	acc := account.NewCoinsAccount()
	acc.SetDB(statedb)
	_, err = acc.Deposit(from, 100*types.Coin)
	require.NoError(t, err)

	tx := cty.CreateTransferTx(to, 30*types.Coin, "rent")
	tx.Sign(priv)

	require.NoError(t, c.CheckTx(tx, 0))
	receipt, err := c.Exec(tx, 0)
	require.NoError(t, err)
	require.Equal(t, types.ExecOk, receipt.Ty)
	require.Equal(t, 70*types.Coin, acc.LoadAccount(from).Balance)
	require.Equal(t, 30*types.Coin, acc.LoadAccount(to).Balance)

	// overdraw
	tx = cty.CreateTransferTx(to, 100*types.Coin, "")
	tx.Sign(priv)
	_, err = c.Exec(tx, 0)
	require.Equal(t, types.ErrNoBalance, err)
}

func TestCheckTx(t *testing.T) {
	priv, err := crypto.GenKey()
	require.NoError(t, err)
	to := address.ExecAddress("sink")
	c := newCoins().(*Coins)

	// destination mismatch
	tx := cty.CreateTransferTx(to, types.Coin, "")
	tx.To = address.ExecAddress("elsewhere")
	tx.Sign(priv)
	require.Equal(t, types.ErrToAddrNotSameToExecAddr, c.CheckTx(tx, 0))

	// bad destination address
	tx = cty.CreateTransferTx("garbage", types.Coin, "")
	tx.Sign(priv)
	require.Equal(t, types.ErrInvalidAddress, c.CheckTx(tx, 0))

	tx = cty.CreateTransferTx(to, types.Coin, "")
	tx.Sign(priv)
	require.NoError(t, c.CheckTx(tx, 0))
}
