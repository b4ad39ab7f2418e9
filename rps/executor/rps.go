// Package executor implements the rock-paper-scissors betting contract: a
// treasury pool owned by one administrator and a per-player game record
// moved through bet, play, continue and cashout transitions.
package executor

import (
	log "github.com/inconshreveable/log15"

	dbm "github.com/rpschain/rpschain/common/db"
	"github.com/rpschain/rpschain/ledger"
	rpsty "github.com/rpschain/rpschain/rps/types"
	"github.com/rpschain/rpschain/types"
)

var clog = log.New("module", "execs.rps")

// Init registers the contract driver and fixes the administrator address.
func Init(admin string) {
	rpsty.SetAdmin(admin)
	ledger.Register(rpsty.RPSX, newRPS)
}

// RPS is the contract driver.
type RPS struct {
	ledger.DriverBase
}

func newRPS() ledger.Driver {
	r := &RPS{}
	r.SetName(rpsty.RPSX)
	return r
}

// GetName returns the execer name.
func (r *RPS) GetName() string {
	return rpsty.RPSX
}

// Exec decodes the action payload and dispatches to the matching state
// transition.
func (r *RPS) Exec(tx *types.Transaction, index int) (*types.Receipt, error) {
	var action rpsty.RPSAction
	if err := types.Decode(tx.Payload, &action); err != nil {
		clog.Error("Exec", "decode", err)
		return nil, types.ErrInvalidParam
	}
	clog.Debug("Exec", "ty", action.Ty, "from", tx.From())
	a := NewAction(r, tx, index)
	switch action.Ty {
	case rpsty.RPSActionTreasuryInit:
		if action.TreasuryInit == nil {
			return nil, types.ErrInvalidParam
		}
		return a.TreasuryInit(action.TreasuryInit)
	case rpsty.RPSActionGameInit:
		if action.GameInit == nil {
			return nil, types.ErrInvalidParam
		}
		return a.GameInit(action.GameInit)
	case rpsty.RPSActionPlaceBet:
		if action.Bet == nil {
			return nil, types.ErrInvalidParam
		}
		return a.PlaceBet(action.Bet)
	case rpsty.RPSActionPlay:
		if action.Play == nil {
			return nil, types.ErrInvalidParam
		}
		return a.Play(action.Play)
	case rpsty.RPSActionContinue:
		if action.Continue == nil {
			return nil, types.ErrInvalidParam
		}
		return a.Continue(action.Continue)
	case rpsty.RPSActionCashout:
		if action.Cashout == nil {
			return nil, types.ErrInvalidParam
		}
		return a.Cashout(action.Cashout)
	}
	return nil, types.ErrActionNotSupport
}

// ExecLocal indexes every resolved round under the player address so
// ListRounds can page through them newest first.
func (r *RPS) ExecLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	set := &types.LocalDBSet{}
	if receipt.GetTy() != types.ExecOk {
		return set, nil
	}
	for _, item := range receipt.Logs {
		if item.Ty != rpsty.TyLogRPSPlay {
			continue
		}
		var playLog rpsty.RPSPlayLog
		if err := types.Decode(item.Log, &playLog); err != nil {
			return nil, err
		}
		set.KV = append(set.KV, &types.KeyValue{
			Key:   calcRoundKey(playLog.Player, playLog.Index),
			Value: item.Log,
		})
	}
	return set, nil
}

// Query serves the read-only contract lookups.
func (r *RPS) Query(funcName string, params []byte) (types.Message, error) {
	switch funcName {
	case rpsty.FuncGetGame:
		var in rpsty.QueryGameParams
		if err := types.Decode(params, &in); err != nil {
			return nil, types.ErrInvalidParam
		}
		return r.queryGame(in.Addr)
	case rpsty.FuncGetTreasury:
		return r.queryTreasury()
	case rpsty.FuncListRounds:
		var in rpsty.ListRoundsParams
		if err := types.Decode(params, &in); err != nil {
			return nil, types.ErrInvalidParam
		}
		return r.listRounds(&in)
	}
	return nil, types.ErrQueryNotSupport
}

func (r *RPS) queryGame(addr string) (types.Message, error) {
	value, err := r.GetStateDB().Get(GameKey(addr))
	if err != nil {
		return nil, rpsty.ErrGameNotFound
	}
	var game rpsty.Game
	if err := types.Decode(value, &game); err != nil {
		return nil, err
	}
	return &game, nil
}

func (r *RPS) queryTreasury() (types.Message, error) {
	value, err := r.GetStateDB().Get(TreasuryKey())
	if err != nil {
		return nil, rpsty.ErrTreasuryNotFound
	}
	var treasury rpsty.Treasury
	if err := types.Decode(value, &treasury); err != nil {
		return nil, err
	}
	acc := r.GetCoinsAccount().LoadAccount(treasury.Admin)
	return &rpsty.ReplyTreasury{
		Admin:        treasury.Admin,
		Balance:      acc.GetBalance(),
		TotalBets:    treasury.TotalBets,
		TotalPayouts: treasury.TotalPayouts,
	}, nil
}

func (r *RPS) listRounds(in *rpsty.ListRoundsParams) (types.Message, error) {
	count := in.Count
	if count <= 0 || count > 100 {
		count = 20
	}
	var key []byte
	if in.Index > 0 {
		key = calcRoundKey(in.Addr, in.Index)
	}
	values, err := r.GetLocalDB().List(calcRoundPrefix(in.Addr), key, count, in.Direction)
	if err != nil {
		if err == dbm.ErrNotFoundInDb {
			return &rpsty.ReplyRounds{}, nil
		}
		return nil, err
	}
	reply := &rpsty.ReplyRounds{}
	for _, value := range values {
		var playLog rpsty.RPSPlayLog
		if err := types.Decode(value, &playLog); err != nil {
			return nil, err
		}
		reply.Rounds = append(reply.Rounds, &playLog)
	}
	return reply, nil
}
