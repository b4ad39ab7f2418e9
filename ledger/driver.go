// Package ledger runs the single-node chain: it keeps the statedb and
// localdb, dispatches signed transactions to registered dapp drivers and
// applies their receipts serially.
package ledger

import (
	log "github.com/inconshreveable/log15"

	"github.com/rpschain/rpschain/account"
	"github.com/rpschain/rpschain/common/address"
	dbm "github.com/rpschain/rpschain/common/db"
	"github.com/rpschain/rpschain/common/random"
	"github.com/rpschain/rpschain/types"
)

var blog = log.New("module", "ledger")

// Driver is one dapp executor. Exec mutates the statedb through the
// receipt it returns, ExecLocal derives localdb query indexes from that
// receipt, and Query serves read-only lookups by function name.
type Driver interface {
	SetEnv(height, blocktime int64)
	SetStateDB(dbm.KV)
	SetLocalDB(dbm.KVDB)
	SetTxEnv(txhash []byte, fromaddr string, index int)
	SetRand(rnd random.Source)
	GetName() string
	GetCoinsAccount() *account.DB
	CheckTx(tx *types.Transaction, index int) error
	Exec(tx *types.Transaction, index int) (*types.Receipt, error)
	ExecLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error)
	Query(funcName string, params []byte) (types.Message, error)
}

// DriverBase carries the execution environment every driver needs. Dapp
// drivers embed it and override Exec, ExecLocal and Query.
type DriverBase struct {
	statedb      dbm.KV
	localdb      dbm.KVDB
	coinsaccount *account.DB
	rnd          random.Source
	height       int64
	blocktime    int64
	txhash       []byte
	fromaddr     string
	index        int
	name         string
}

// SetName fixes the driver name used for contract address derivation.
func (d *DriverBase) SetName(name string) {
	d.name = name
}

// GetName returns the driver name.
func (d *DriverBase) GetName() string {
	return d.name
}

// SetEnv installs the block environment before execution.
func (d *DriverBase) SetEnv(height, blocktime int64) {
	d.height = height
	d.blocktime = blocktime
}

// SetStateDB binds the statedb view the driver executes against.
func (d *DriverBase) SetStateDB(db dbm.KV) {
	d.statedb = db
	if d.coinsaccount == nil {
		d.coinsaccount = account.NewCoinsAccount()
	}
	d.coinsaccount.SetDB(db)
}

// SetLocalDB binds the localdb used for query indexes.
func (d *DriverBase) SetLocalDB(db dbm.KVDB) {
	d.localdb = db
}

// SetTxEnv installs the per-transaction environment.
func (d *DriverBase) SetTxEnv(txhash []byte, fromaddr string, index int) {
	d.txhash = txhash
	d.fromaddr = fromaddr
	d.index = index
}

// SetRand installs the randomness source drivers draw from.
func (d *DriverBase) SetRand(rnd random.Source) {
	d.rnd = rnd
}

// GetStateDB returns the bound statedb.
func (d *DriverBase) GetStateDB() dbm.KV {
	return d.statedb
}

// GetLocalDB returns the bound localdb.
func (d *DriverBase) GetLocalDB() dbm.KVDB {
	return d.localdb
}

// GetCoinsAccount returns the native coin asset bound to the statedb.
func (d *DriverBase) GetCoinsAccount() *account.DB {
	if d.coinsaccount == nil {
		d.coinsaccount = account.NewCoinsAccount()
		d.coinsaccount.SetDB(d.statedb)
	}
	return d.coinsaccount
}

// GetRand returns the randomness source.
func (d *DriverBase) GetRand() random.Source {
	if d.rnd == nil {
		d.rnd = random.New()
	}
	return d.rnd
}

// GetHeight returns the executing block height.
func (d *DriverBase) GetHeight() int64 {
	return d.height
}

// GetBlockTime returns the executing block timestamp.
func (d *DriverBase) GetBlockTime() int64 {
	return d.blocktime
}

// GetTxHash returns the executing transaction hash.
func (d *DriverBase) GetTxHash() []byte {
	return d.txhash
}

// GetFromAddr returns the signer of the executing transaction.
func (d *DriverBase) GetFromAddr() string {
	return d.fromaddr
}

// GetIndex returns the index of the executing transaction inside its
// block.
func (d *DriverBase) GetIndex() int {
	return d.index
}

// GetExecAddress returns the driver's own contract address.
func (d *DriverBase) GetExecAddress() string {
	return address.ExecAddress(d.name)
}

// CheckTx is the default admission check: the destination must be the
// driver's contract address.
func (d *DriverBase) CheckTx(tx *types.Transaction, index int) error {
	if tx.To != address.ExecAddress(string(tx.Execer)) {
		return types.ErrToAddrNotSameToExecAddr
	}
	return nil
}

// Exec must be overridden by the dapp.
func (d *DriverBase) Exec(tx *types.Transaction, index int) (*types.Receipt, error) {
	return nil, types.ErrActionNotSupport
}

// ExecLocal derives no indexes by default.
func (d *DriverBase) ExecLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return &types.LocalDBSet{}, nil
}

// Query rejects unknown functions by default.
func (d *DriverBase) Query(funcName string, params []byte) (types.Message, error) {
	return nil, types.ErrQueryNotSupport
}

// CheckExecAccountBalance reports whether addr holds at least amount
// available and frozen funds inside this contract's sub-account.
func (d *DriverBase) CheckExecAccountBalance(addr string, amount, frozen int64) bool {
	acc := d.GetCoinsAccount().LoadExecAccount(addr, d.GetExecAddress())
	if acc.GetBalance() >= amount && acc.GetFrozen() >= frozen {
		return true
	}
	return false
}
