// Package types holds the core ledger types shared by the account layer,
// the driver framework and the rpc surface.
package types

// Coin is the smallest-unit denomination of one coin.
const Coin int64 = 1e8

// MaxCoin bounds any single amount moved by one operation.
const MaxCoin int64 = 1e8 * 1e10

// Receipt execution status.
const (
	ExecErr  = int32(0)
	ExecPack = int32(1)
	ExecOk   = int32(2)
)

// Core receipt log types. Dapps define their own starting at 600.
const (
	TyLogErr          = int32(1)
	TyLogFee          = int32(2)
	TyLogTransfer     = int32(3)
	TyLogGenesis      = int32(4)
	TyLogDeposit      = int32(5)
	TyLogExecTransfer = int32(6)
	TyLogExecWithdraw = int32(7)
	TyLogExecDeposit  = int32(8)
	TyLogExecFrozen   = int32(9)
	TyLogExecActive   = int32(10)
)

// Message is a query reply; any JSON-encodable value qualifies.
type Message interface{}

// KeyValue is one statedb write. A nil Value deletes the key when applied
// to the localdb.
type KeyValue struct {
	Key   []byte `json:"key"`
	Value []byte `json:"value"`
}

func (kv *KeyValue) GetKey() []byte {
	if kv == nil {
		return nil
	}
	return kv.Key
}

// ReceiptLog is one emitted event.
type ReceiptLog struct {
	Ty  int32  `json:"ty"`
	Log []byte `json:"log"`
}

// Receipt is the result of executing one transaction.
type Receipt struct {
	Ty   int32         `json:"ty"`
	KV   []*KeyValue   `json:"kv"`
	Logs []*ReceiptLog `json:"logs"`
}

// ReceiptData is the log-only projection of a Receipt handed to ExecLocal.
type ReceiptData struct {
	Ty   int32         `json:"ty"`
	Logs []*ReceiptLog `json:"logs"`
}

func (r *ReceiptData) GetTy() int32 {
	if r == nil {
		return ExecErr
	}
	return r.Ty
}

// LocalDBSet carries the localdb index writes produced by ExecLocal.
type LocalDBSet struct {
	KV []*KeyValue `json:"kv"`
}

// Account is a balance record. Frozen holds funds committed to an open
// contract operation.
type Account struct {
	Currency int32  `json:"currency"`
	Balance  int64  `json:"balance"`
	Frozen   int64  `json:"frozen"`
	Addr     string `json:"addr"`
}

func (acc *Account) GetBalance() int64 {
	if acc == nil {
		return 0
	}
	return acc.Balance
}

func (acc *Account) GetFrozen() int64 {
	if acc == nil {
		return 0
	}
	return acc.Frozen
}

// ReceiptAccountTransfer records a balance move on a plain account.
type ReceiptAccountTransfer struct {
	Prev    *Account `json:"prev"`
	Current *Account `json:"current"`
}

// ReceiptExecAccountTransfer records a balance move on a contract
// sub-account.
type ReceiptExecAccountTransfer struct {
	ExecAddr string   `json:"execAddr"`
	Prev     *Account `json:"prev"`
	Current  *Account `json:"current"`
}

// CheckAmount rejects negative or absurd amounts before they reach the
// account layer.
func CheckAmount(amount int64) bool {
	if amount < 0 || amount >= MaxCoin {
		return false
	}
	return true
}
