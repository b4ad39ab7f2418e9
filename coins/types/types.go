// Package types defines the actions of the native coin contract.
package types

import (
	"github.com/rpschain/rpschain/common/address"
	"github.com/rpschain/rpschain/types"
)

// CoinsX is the execer name of the native coin contract.
const CoinsX = "coins"

// Action types.
const (
	CoinsActionTransfer = 1
)

// CoinsAction is the payload of a coin transaction.
type CoinsAction struct {
	Ty       int32          `json:"ty"`
	Transfer *CoinsTransfer `json:"transfer,omitempty"`
}

// CoinsTransfer moves Amount from the signer to To.
type CoinsTransfer struct {
	To     string `json:"to"`
	Amount int64  `json:"amount"`
	Note   string `json:"note,omitempty"`
}

// CreateTransferTx builds an unsigned transfer. Coin transactions are
// addressed to the recipient, not to a contract address.
func CreateTransferTx(to string, amount int64, note string) *types.Transaction {
	action := &CoinsAction{
		Ty:       CoinsActionTransfer,
		Transfer: &CoinsTransfer{To: to, Amount: amount, Note: note},
	}
	return &types.Transaction{
		Execer:  []byte(CoinsX),
		Payload: types.Encode(action),
		Fee:     types.MinFee,
		Nonce:   types.Nonce(),
		To:      to,
	}
}

// CheckTo validates a transfer destination.
func CheckTo(to string) error {
	if err := address.CheckAddress(to); err != nil {
		return types.ErrInvalidAddress
	}
	return nil
}
