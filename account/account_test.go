package account

import (
	"testing"

	"github.com/rpschain/rpschain/common/db"
	"github.com/rpschain/rpschain/types"
	"github.com/stretchr/testify/require"
)

var (
	addr1 = "14ZTV2wHG3uPHnA5cBJmNxAxxvbzS7Z5mE"
	addr2 = "24ZTV2wHG3uPHnA5cBJmNxAxxvbzS7Z5mE"
	addr3 = "34ZTV2wHG3uPHnA5cBJmNxAxxvbzS7Z5mE"
	addr4 = "44ZTV2wHG3uPHnA5cBJmNxAxxvbzS7Z5mE"

	execAddr1 = "1Ka7EPFRqs3v9yreXG6qA4RQbNmbPJCZPj"
)

func GenerAccDb() (*DB, *DB) {
	accCoin := NewCoinsAccount()
	storedb, _ := db.NewGoMemDB("gomemdb", "test", 128)
	accCoin.SetDB(storedb)

	accToken, _ := NewAccountDB("token", "test", nil)
	storedb2, _ := db.NewGoMemDB("gomemdb", "test", 128)
	accToken.SetDB(storedb2)

	return accCoin, accToken
}

func (acc *DB) GenerAccData() {
	account := &types.Account{
		Balance: 1000 * types.Coin,
		Addr:    addr1,
	}
	acc.SaveAccount(account)

	account.Balance = 900 * types.Coin
	account.Addr = addr2
	acc.SaveAccount(account)

	account.Balance = 800 * types.Coin
	account.Addr = addr3
	acc.SaveAccount(account)

	account.Balance = 700 * types.Coin
	account.Addr = addr4
	acc.SaveAccount(account)
}

func TestCheckTransfer(t *testing.T) {
	accCoin, tokenCoin := GenerAccDb()
	accCoin.GenerAccData()
	tokenCoin.GenerAccData()

	err := accCoin.CheckTransfer(addr1, addr2, 10*types.Coin)
	require.NoError(t, err)

	err = tokenCoin.CheckTransfer(addr3, addr4, 10*types.Coin)
	require.NoError(t, err)

	err = accCoin.CheckTransfer(addr1, addr2, 2000*types.Coin)
	require.Equal(t, types.ErrNoBalance, err)

	err = accCoin.CheckTransfer(addr1, addr2, -1)
	require.Equal(t, types.ErrAmount, err)
}

func TestTransfer(t *testing.T) {
	accCoin, tokenCoin := GenerAccDb()
	accCoin.GenerAccData()
	tokenCoin.GenerAccData()

	receipt, err := accCoin.Transfer(addr1, addr2, 10*types.Coin)
	require.NoError(t, err)
	require.Equal(t, types.ExecOk, receipt.Ty)
	require.Len(t, receipt.Logs, 2)
	require.Equal(t, int64(990*types.Coin), accCoin.LoadAccount(addr1).Balance)
	require.Equal(t, int64(910*types.Coin), accCoin.LoadAccount(addr2).Balance)

	_, err = tokenCoin.Transfer(addr3, addr3, 10*types.Coin)
	require.Equal(t, types.ErrSendSameToRecv, err)

	_, err = accCoin.Transfer(addr4, addr1, 800*types.Coin)
	require.Equal(t, types.ErrNoBalance, err)
}

func TestDeposit(t *testing.T) {
	accCoin, _ := GenerAccDb()

	receipt, err := accCoin.Deposit(addr1, 100*types.Coin)
	require.NoError(t, err)
	require.Equal(t, types.ExecOk, receipt.Ty)
	require.Equal(t, types.TyLogGenesis, receipt.Logs[0].Ty)
	require.Equal(t, int64(100*types.Coin), accCoin.LoadAccount(addr1).Balance)
}

func TestTransferToExec(t *testing.T) {
	accCoin, _ := GenerAccDb()
	accCoin.GenerAccData()

	receipt, err := accCoin.TransferToExec(addr1, execAddr1, 100*types.Coin)
	require.NoError(t, err)
	require.Equal(t, types.ExecOk, receipt.Ty)
	require.Equal(t, int64(900*types.Coin), accCoin.LoadAccount(addr1).Balance)

	execAcc := accCoin.LoadExecAccount(addr1, execAddr1)
	require.Equal(t, int64(100*types.Coin), execAcc.Balance)
	require.Equal(t, int64(0), execAcc.Frozen)
}

func TestTransferWithdraw(t *testing.T) {
	accCoin, _ := GenerAccDb()
	accCoin.GenerAccData()

	_, err := accCoin.TransferToExec(addr1, execAddr1, 100*types.Coin)
	require.NoError(t, err)

	_, err = accCoin.TransferWithdraw(addr1, execAddr1, 40*types.Coin)
	require.NoError(t, err)
	require.Equal(t, int64(940*types.Coin), accCoin.LoadAccount(addr1).Balance)
	require.Equal(t, int64(60*types.Coin), accCoin.LoadExecAccount(addr1, execAddr1).Balance)

	_, err = accCoin.TransferWithdraw(addr1, execAddr1, 100*types.Coin)
	require.Equal(t, types.ErrNoBalance, err)
}

func TestExecFrozen(t *testing.T) {
	accCoin, _ := GenerAccDb()
	accCoin.GenerAccData()

	_, err := accCoin.TransferToExec(addr1, execAddr1, 100*types.Coin)
	require.NoError(t, err)

	receipt, err := accCoin.ExecFrozen(addr1, execAddr1, 30*types.Coin)
	require.NoError(t, err)
	require.Equal(t, types.TyLogExecFrozen, receipt.Logs[0].Ty)

	execAcc := accCoin.LoadExecAccount(addr1, execAddr1)
	require.Equal(t, int64(70*types.Coin), execAcc.Balance)
	require.Equal(t, int64(30*types.Coin), execAcc.Frozen)

	_, err = accCoin.ExecFrozen(addr1, execAddr1, 100*types.Coin)
	require.Equal(t, types.ErrNoBalance, err)
}

func TestExecActive(t *testing.T) {
	accCoin, _ := GenerAccDb()
	accCoin.GenerAccData()

	_, err := accCoin.TransferToExec(addr1, execAddr1, 100*types.Coin)
	require.NoError(t, err)
	_, err = accCoin.ExecFrozen(addr1, execAddr1, 30*types.Coin)
	require.NoError(t, err)

	_, err = accCoin.ExecActive(addr1, execAddr1, 20*types.Coin)
	require.NoError(t, err)

	execAcc := accCoin.LoadExecAccount(addr1, execAddr1)
	require.Equal(t, int64(90*types.Coin), execAcc.Balance)
	require.Equal(t, int64(10*types.Coin), execAcc.Frozen)

	_, err = accCoin.ExecActive(addr1, execAddr1, 20*types.Coin)
	require.Equal(t, types.ErrNoBalance, err)
}

func TestExecTransfer(t *testing.T) {
	accCoin, _ := GenerAccDb()
	accCoin.GenerAccData()

	_, err := accCoin.TransferToExec(addr1, execAddr1, 100*types.Coin)
	require.NoError(t, err)

	receipt, err := accCoin.ExecTransfer(addr1, addr2, execAddr1, 25*types.Coin)
	require.NoError(t, err)
	require.Len(t, receipt.Logs, 2)
	require.Equal(t, int64(75*types.Coin), accCoin.LoadExecAccount(addr1, execAddr1).Balance)
	require.Equal(t, int64(25*types.Coin), accCoin.LoadExecAccount(addr2, execAddr1).Balance)

	_, err = accCoin.ExecTransfer(addr1, addr1, execAddr1, 1)
	require.Equal(t, types.ErrSendSameToRecv, err)
}

func TestExecTransferFrozen(t *testing.T) {
	accCoin, _ := GenerAccDb()
	accCoin.GenerAccData()

	_, err := accCoin.TransferToExec(addr1, execAddr1, 100*types.Coin)
	require.NoError(t, err)
	_, err = accCoin.ExecFrozen(addr1, execAddr1, 50*types.Coin)
	require.NoError(t, err)

	_, err = accCoin.ExecTransferFrozen(addr1, addr2, execAddr1, 50*types.Coin)
	require.NoError(t, err)

	execAcc1 := accCoin.LoadExecAccount(addr1, execAddr1)
	require.Equal(t, int64(50*types.Coin), execAcc1.Balance)
	require.Equal(t, int64(0), execAcc1.Frozen)
	require.Equal(t, int64(50*types.Coin), accCoin.LoadExecAccount(addr2, execAddr1).Balance)

	_, err = accCoin.ExecTransferFrozen(addr1, addr2, execAddr1, 1)
	require.Equal(t, types.ErrNoBalance, err)
}

func TestLoadAccountEmpty(t *testing.T) {
	accCoin, _ := GenerAccDb()

	acc := accCoin.LoadAccount(addr1)
	require.Equal(t, addr1, acc.Addr)
	require.Equal(t, int64(0), acc.Balance)
	require.Equal(t, int64(0), acc.Frozen)
}

func TestNewAccountDB(t *testing.T) {
	_, err := NewAccountDB("bad-execer", "test", nil)
	require.Equal(t, types.ErrInvalidParam, err)

	_, err = NewAccountDB("token", "bad-symbol", nil)
	require.Equal(t, types.ErrInvalidParam, err)

	accDB, err := NewAccountDB("token", "tst", nil)
	require.NoError(t, err)
	require.Equal(t, "mavl-token-tst-"+addr1, string(accDB.AccountKey(addr1)))
}
