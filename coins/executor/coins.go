// Package executor implements the native coin contract: plain transfers
// between accounts.
package executor

import (
	log "github.com/inconshreveable/log15"

	cty "github.com/rpschain/rpschain/coins/types"
	"github.com/rpschain/rpschain/ledger"
	"github.com/rpschain/rpschain/types"
)

var clog = log.New("module", "execs.coins")

// Init registers the coin contract driver.
func Init() {
	ledger.Register(cty.CoinsX, newCoins)
}

// Coins is the coin contract driver.
type Coins struct {
	ledger.DriverBase
}

func newCoins() ledger.Driver {
	c := &Coins{}
	c.SetName(cty.CoinsX)
	return c
}

// GetName returns the execer name.
func (c *Coins) GetName() string {
	return cty.CoinsX
}

// CheckTx requires the transaction destination to match the transfer
// recipient. Coin transactions are addressed to the recipient rather than
// to a contract address.
func (c *Coins) CheckTx(tx *types.Transaction, index int) error {
	var action cty.CoinsAction
	if err := types.Decode(tx.Payload, &action); err != nil {
		return types.ErrInvalidParam
	}
	if action.Ty != cty.CoinsActionTransfer || action.Transfer == nil {
		return types.ErrActionNotSupport
	}
	if err := cty.CheckTo(action.Transfer.To); err != nil {
		return err
	}
	if tx.To != action.Transfer.To {
		return types.ErrToAddrNotSameToExecAddr
	}
	return nil
}

// Exec applies a transfer from the signer to the destination.
func (c *Coins) Exec(tx *types.Transaction, index int) (*types.Receipt, error) {
	var action cty.CoinsAction
	if err := types.Decode(tx.Payload, &action); err != nil {
		return nil, types.ErrInvalidParam
	}
	if action.Ty != cty.CoinsActionTransfer || action.Transfer == nil {
		return nil, types.ErrActionNotSupport
	}
	transfer := action.Transfer
	clog.Debug("Exec transfer", "from", tx.From(), "to", transfer.To, "amount", transfer.Amount)
	return c.GetCoinsAccount().Transfer(tx.From(), transfer.To, transfer.Amount)
}
