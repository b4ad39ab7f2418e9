package ledger

import (
	"encoding/binary"
	"sync"
	"time"

	"github.com/rpschain/rpschain/account"
	"github.com/rpschain/rpschain/common/address"
	dbm "github.com/rpschain/rpschain/common/db"
	"github.com/rpschain/rpschain/common/random"
	"github.com/rpschain/rpschain/types"
)

var (
	heightKey     = []byte("meta-height")
	genesisKey    = []byte("meta-genesis")
	receiptPrefix = "receipt-tx-"
)

// Ledger executes transactions one at a time against the statedb and keeps
// localdb query indexes in step with the receipts.
type Ledger struct {
	mu      sync.Mutex
	statedb dbm.DB
	localdb dbm.DB
	rnd     random.Source
	height  int64
}

// New opens the ledger stores and funds the genesis accounts on first open.
func New(cfg *types.Config) *Ledger {
	statedb := dbm.NewDB("statedb", cfg.DB.Driver, cfg.DB.DBPath, int(cfg.DB.DBCache))
	localdb := dbm.NewDB("localdb", cfg.DB.Driver, cfg.DB.DBPath, int(cfg.DB.DBCache))
	l := &Ledger{
		statedb: statedb,
		localdb: localdb,
		rnd:     random.New(),
	}
	l.height = l.loadHeight()
	l.applyGenesis(cfg.Genesis)
	return l
}

// NewMem opens a memory-backed ledger. Test use only.
func NewMem(genesis []*types.GenesisAccount) *Ledger {
	statedb, _ := dbm.NewGoMemDB("statedb", "", 128)
	localdb, _ := dbm.NewGoMemDB("localdb", "", 128)
	l := &Ledger{
		statedb: statedb,
		localdb: localdb,
		rnd:     random.New(),
	}
	l.applyGenesis(genesis)
	return l
}

// SetRand overrides the randomness source handed to drivers.
func (l *Ledger) SetRand(rnd random.Source) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.rnd = rnd
}

// Close releases the underlying stores.
func (l *Ledger) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.statedb.Close()
	l.localdb.Close()
}

// Height is the number of committed transactions.
func (l *Ledger) Height() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.height
}

func (l *Ledger) loadHeight() int64 {
	value, err := l.statedb.Get(heightKey)
	if err != nil {
		return 0
	}
	return int64(binary.BigEndian.Uint64(value))
}

func (l *Ledger) saveHeight(batch dbm.Batch) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(l.height))
	batch.Set(heightKey, b[:])
}

func (l *Ledger) applyGenesis(genesis []*types.GenesisAccount) {
	if _, err := l.statedb.Get(genesisKey); err == nil {
		return
	}
	acc := account.NewCoinsAccount()
	acc.SetDB(l.statedb)
	for _, g := range genesis {
		receipt, err := acc.Deposit(g.Addr, g.Amount*types.Coin)
		if err != nil {
			blog.Error("applyGenesis", "addr", g.Addr, "err", err)
			panic(err)
		}
		blog.Info("genesis", "addr", g.Addr, "amount", g.Amount, "logs", len(receipt.Logs))
	}
	if err := l.statedb.SetSync(genesisKey, []byte("done")); err != nil {
		panic(err)
	}
}

// SendTransaction verifies, executes and commits one transaction. The
// receipt's statedb writes apply only when execution succeeds, so a failed
// action cannot leave partial state behind.
func (l *Ledger) SendTransaction(tx *types.Transaction) (*types.Receipt, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !tx.CheckSign() {
		return nil, types.ErrSign
	}
	if tx.Fee < types.MinFee {
		return nil, types.ErrInvalidParam
	}
	driver, err := LoadDriver(string(tx.Execer))
	if err != nil {
		return nil, err
	}

	height := l.height + 1
	blocktime := time.Now().Unix()
	cache := newStateCache(l.statedb)

	driver.SetStateDB(cache)
	driver.SetLocalDB(l.localdb)
	driver.SetEnv(height, blocktime)
	driver.SetTxEnv(tx.Hash(), tx.From(), 0)
	driver.SetRand(l.rnd)

	if err := driver.CheckTx(tx, 0); err != nil {
		return nil, err
	}
	receipt, err := driver.Exec(tx, 0)
	if err != nil {
		blog.Debug("SendTransaction exec", "execer", string(tx.Execer), "err", err)
		return nil, err
	}
	if receipt == nil || receipt.Ty != types.ExecOk {
		return nil, types.ErrActionNotSupport
	}

	batch := l.statedb.NewBatch(true)
	for _, kv := range receipt.KV {
		batch.Set(kv.Key, kv.Value)
	}
	l.height = height
	l.saveHeight(batch)
	if err := batch.Write(); err != nil {
		panic(err) // statedb write failure is unrecoverable
	}

	l.execLocal(driver, tx, receipt)
	return receipt, nil
}

// execLocal derives and writes localdb indexes. Index trouble is logged,
// not fatal: the committed state is already final.
func (l *Ledger) execLocal(driver Driver, tx *types.Transaction, receipt *types.Receipt) {
	receiptData := &types.ReceiptData{Ty: receipt.Ty, Logs: receipt.Logs}
	set, err := driver.ExecLocal(tx, receiptData, 0)
	if err != nil {
		blog.Error("execLocal", "execer", string(tx.Execer), "err", err)
		return
	}
	batch := l.localdb.NewBatch(false)
	if set != nil {
		for _, kv := range set.KV {
			if kv.Value == nil {
				batch.Delete(kv.Key)
			} else {
				batch.Set(kv.Key, kv.Value)
			}
		}
	}
	batch.Set(receiptKey(tx.Hash()), types.Encode(receipt))
	if err := batch.Write(); err != nil {
		blog.Error("execLocal write", "err", err)
	}
}

func receiptKey(txhash []byte) []byte {
	return append([]byte(receiptPrefix), txhash...)
}

// QueryReceipt returns the stored receipt of a committed transaction.
func (l *Ledger) QueryReceipt(txhash []byte) (*types.Receipt, error) {
	value, err := l.localdb.Get(receiptKey(txhash))
	if err != nil {
		return nil, types.ErrNotFound
	}
	var receipt types.Receipt
	if err := types.Decode(value, &receipt); err != nil {
		return nil, err
	}
	return &receipt, nil
}

// Query dispatches a read-only lookup to the named driver.
func (l *Ledger) Query(execer, funcName string, params []byte) (types.Message, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	driver, err := LoadDriver(execer)
	if err != nil {
		return nil, err
	}
	driver.SetStateDB(l.statedb)
	driver.SetLocalDB(l.localdb)
	driver.SetEnv(l.height, time.Now().Unix())
	return driver.Query(funcName, params)
}

// GetBalance reads an account. With execer empty it returns the plain
// account, otherwise the sub-account held under that contract.
func (l *Ledger) GetBalance(addr, execer string) *types.Account {
	l.mu.Lock()
	defer l.mu.Unlock()

	acc := account.NewCoinsAccount()
	acc.SetDB(l.statedb)
	if execer == "" {
		return acc.LoadAccount(addr)
	}
	return acc.LoadExecAccount(addr, address.ExecAddress(execer))
}
