package executor

import (
	"fmt"

	"github.com/rpschain/rpschain/account"
	dbm "github.com/rpschain/rpschain/common/db"
	"github.com/rpschain/rpschain/common/random"
	rpsty "github.com/rpschain/rpschain/rps/types"
	"github.com/rpschain/rpschain/types"
)

// GameKey is the statedb key of one player's game record.
func GameKey(addr string) []byte {
	return []byte(fmt.Sprintf("mavl-rps-game-%s", addr))
}

// TreasuryKey is the statedb key of the treasury singleton.
func TreasuryKey() []byte {
	return []byte("mavl-rps-treasury")
}

func calcRoundKey(addr string, index int64) []byte {
	return []byte(fmt.Sprintf("LODB-rps-round:%s:%018d", addr, index))
}

func calcRoundPrefix(addr string) []byte {
	return []byte(fmt.Sprintf("LODB-rps-round:%s:", addr))
}

// calcWinnings is the payout of a winning stake: the stake plus the
// multiplier percentage of it, truncated.
func calcWinnings(bet, multiplier int64) int64 {
	return bet + bet*multiplier/100
}

// beats reports whether move a defeats move b.
func beats(a, b string) bool {
	switch a {
	case rpsty.MoveRock:
		return b == rpsty.MoveScissors
	case rpsty.MovePaper:
		return b == rpsty.MoveRock
	case rpsty.MoveScissors:
		return b == rpsty.MovePaper
	}
	return false
}

func validMove(move string) bool {
	return move == rpsty.MoveRock || move == rpsty.MovePaper || move == rpsty.MoveScissors
}

var moveTable = []string{rpsty.MoveRock, rpsty.MovePaper, rpsty.MoveScissors}

// Action bundles the execution environment of one contract transaction.
type Action struct {
	coinsAccount *account.DB
	db           dbm.KV
	txhash       []byte
	fromaddr     string
	blocktime    int64
	height       int64
	execaddr     string
	rnd          random.Source
	index        int
}

// NewAction captures the driver environment for one transaction.
func NewAction(r *RPS, tx *types.Transaction, index int) *Action {
	return &Action{
		coinsAccount: r.GetCoinsAccount(),
		db:           r.GetStateDB(),
		txhash:       tx.Hash(),
		fromaddr:     tx.From(),
		blocktime:    r.GetBlockTime(),
		height:       r.GetHeight(),
		execaddr:     r.GetExecAddress(),
		rnd:          r.GetRand(),
		index:        index,
	}
}

func (a *Action) readGame(addr string) (*rpsty.Game, error) {
	value, err := a.db.Get(GameKey(addr))
	if err != nil {
		return nil, rpsty.ErrGameNotFound
	}
	var game rpsty.Game
	if err := types.Decode(value, &game); err != nil {
		return nil, err
	}
	return &game, nil
}

func (a *Action) readTreasury() (*rpsty.Treasury, error) {
	value, err := a.db.Get(TreasuryKey())
	if err != nil {
		return nil, rpsty.ErrTreasuryNotFound
	}
	var treasury rpsty.Treasury
	if err := types.Decode(value, &treasury); err != nil {
		return nil, err
	}
	return &treasury, nil
}

func (a *Action) saveGame(game *rpsty.Game) *types.KeyValue {
	value := types.Encode(game)
	if err := a.db.Set(GameKey(game.Player), value); err != nil {
		panic(err)
	}
	return &types.KeyValue{Key: GameKey(game.Player), Value: value}
}

func (a *Action) saveTreasury(treasury *rpsty.Treasury) *types.KeyValue {
	value := types.Encode(treasury)
	if err := a.db.Set(TreasuryKey(), value); err != nil {
		panic(err)
	}
	return &types.KeyValue{Key: TreasuryKey(), Value: value}
}

// TreasuryInit creates the treasury record. The sender must be the
// configured administrator and the record must not exist yet.
func (a *Action) TreasuryInit(init *rpsty.RPSTreasuryInit) (*types.Receipt, error) {
	if a.fromaddr != rpsty.AdminAddr() {
		clog.Error("TreasuryInit", "from", a.fromaddr, "admin", rpsty.AdminAddr())
		return nil, rpsty.ErrNotAdmin
	}
	if _, err := a.readTreasury(); err == nil {
		return nil, rpsty.ErrTreasuryExists
	}
	treasury := &rpsty.Treasury{
		Admin:        a.fromaddr,
		CreateHeight: a.height,
	}
	kv := a.saveTreasury(treasury)
	log1 := &types.ReceiptLog{
		Ty:  rpsty.TyLogRPSTreasuryInit,
		Log: types.Encode(&rpsty.RPSTreasuryInitLog{Admin: a.fromaddr}),
	}
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   []*types.KeyValue{kv},
		Logs: []*types.ReceiptLog{log1},
	}, nil
}

// GameInit creates the sender's game record at the baseline multiplier.
func (a *Action) GameInit(init *rpsty.RPSGameInit) (*types.Receipt, error) {
	if _, err := a.readGame(a.fromaddr); err == nil {
		return nil, rpsty.ErrGameExists
	}
	game := &rpsty.Game{
		Player:     a.fromaddr,
		Multiplier: rpsty.BaseMultiplier,
	}
	kv := a.saveGame(game)
	log1 := &types.ReceiptLog{
		Ty:  rpsty.TyLogRPSGameInit,
		Log: types.Encode(&rpsty.RPSGameInitLog{Player: a.fromaddr}),
	}
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   []*types.KeyValue{kv},
		Logs: []*types.ReceiptLog{log1},
	}, nil
}

// PlaceBet moves the stake from the player into the treasury pool and arms
// the game.
func (a *Action) PlaceBet(bet *rpsty.RPSBet) (*types.Receipt, error) {
	treasury, err := a.readTreasury()
	if err != nil {
		return nil, err
	}
	if bet.AdminAddr != treasury.Admin {
		clog.Error("PlaceBet", "adminAddr", bet.AdminAddr, "admin", treasury.Admin)
		return nil, rpsty.ErrNotAdmin
	}
	game, err := a.readGame(a.fromaddr)
	if err != nil {
		return nil, err
	}
	if game.Active {
		return nil, rpsty.ErrGameInProgress
	}
	if bet.Amount <= 0 || !types.CheckAmount(bet.Amount) {
		return nil, types.ErrAmount
	}
	if err := a.coinsAccount.CheckTransfer(a.fromaddr, treasury.Admin, bet.Amount); err != nil {
		clog.Error("PlaceBet", "from", a.fromaddr, "amount", bet.Amount, "err", err)
		return nil, err
	}
	receipt, err := a.coinsAccount.Transfer(a.fromaddr, treasury.Admin, bet.Amount)
	if err != nil {
		return nil, err
	}

	game.Bet = bet.Amount
	game.Multiplier = rpsty.BaseMultiplier
	game.ComputerMove = ""
	game.Result = ""
	game.Active = true
	kv := a.saveGame(game)

	treasury.TotalBets += bet.Amount
	tkv := a.saveTreasury(treasury)

	log1 := &types.ReceiptLog{
		Ty: rpsty.TyLogRPSBet,
		Log: types.Encode(&rpsty.RPSBetLog{
			Player: a.fromaddr,
			Amount: bet.Amount,
			Index:  a.height,
		}),
	}
	receipt.KV = append(receipt.KV, kv, tkv)
	receipt.Logs = append(receipt.Logs, log1)
	return receipt, nil
}

// Play resolves one round against a random computer move. A win leaves the
// stake on the table, a loss resets the game, equal moves keep the round
// open with the result cleared.
func (a *Action) Play(play *rpsty.RPSPlay) (*types.Receipt, error) {
	game, err := a.readGame(a.fromaddr)
	if err != nil {
		return nil, err
	}
	if !game.Active {
		return nil, rpsty.ErrNoActiveGame
	}
	if !validMove(play.Selection) {
		return nil, rpsty.ErrInvalidSelection
	}

	computerMove := moveTable[a.rnd.Intn(3)]
	game.ComputerMove = computerMove
	game.Round++

	playLog := &rpsty.RPSPlayLog{
		Player:       a.fromaddr,
		Bet:          game.Bet,
		Multiplier:   game.Multiplier,
		PlayerMove:   play.Selection,
		ComputerMove: computerMove,
		Round:        game.Round,
		Index:        a.height,
	}

	switch {
	case beats(play.Selection, computerMove):
		game.Result = rpsty.ResultWin
		playLog.Result = rpsty.ResultWin
		playLog.Winnings = calcWinnings(game.Bet, game.Multiplier)
	case beats(computerMove, play.Selection):
		game.Result = rpsty.ResultLose
		playLog.Result = rpsty.ResultLose
		game.Bet = 0
		game.Multiplier = rpsty.BaseMultiplier
		game.Active = false
	default:
		// equal moves: the stake stays at risk, a stale win may not
		// survive into the next cashout
		game.Result = ""
		playLog.Result = rpsty.ResultDraw
	}

	kv := a.saveGame(game)
	log1 := &types.ReceiptLog{
		Ty:  rpsty.TyLogRPSPlay,
		Log: types.Encode(playLog),
	}
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   []*types.KeyValue{kv},
		Logs: []*types.ReceiptLog{log1},
	}, nil
}

// Continue raises the multiplier ahead of the next round. It requires a
// standing win and plays no round itself.
func (a *Action) Continue(cont *rpsty.RPSContinue) (*types.Receipt, error) {
	game, err := a.readGame(a.fromaddr)
	if err != nil {
		return nil, err
	}
	if !game.Active {
		return nil, rpsty.ErrNoActiveGame
	}
	if game.Result != rpsty.ResultWin {
		return nil, rpsty.ErrNotWinner
	}
	game.Multiplier += rpsty.MultiplierStep
	kv := a.saveGame(game)
	return &types.Receipt{
		Ty: types.ExecOk,
		KV: []*types.KeyValue{kv},
	}, nil
}

// Cashout pays the standing winnings out of the treasury pool and resets
// the game to its baseline.
func (a *Action) Cashout(cashout *rpsty.RPSCashout) (*types.Receipt, error) {
	treasury, err := a.readTreasury()
	if err != nil {
		return nil, err
	}
	if cashout.AdminAddr != treasury.Admin {
		clog.Error("Cashout", "adminAddr", cashout.AdminAddr, "admin", treasury.Admin)
		return nil, rpsty.ErrNotAdmin
	}
	game, err := a.readGame(a.fromaddr)
	if err != nil {
		return nil, err
	}
	if !game.Active {
		return nil, rpsty.ErrNoActiveGame
	}
	if game.Result != rpsty.ResultWin {
		return nil, rpsty.ErrNotWinner
	}

	payout := calcWinnings(game.Bet, game.Multiplier)
	receipt, err := a.coinsAccount.Transfer(treasury.Admin, a.fromaddr, payout)
	if err != nil {
		clog.Error("Cashout", "payout", payout, "err", err)
		return nil, err
	}

	multiplier := game.Multiplier
	game.Bet = 0
	game.Multiplier = rpsty.BaseMultiplier
	game.ComputerMove = ""
	game.Result = ""
	game.Active = false
	kv := a.saveGame(game)

	treasury.TotalPayouts += payout
	tkv := a.saveTreasury(treasury)

	log1 := &types.ReceiptLog{
		Ty: rpsty.TyLogRPSCashout,
		Log: types.Encode(&rpsty.RPSCashoutLog{
			Player:     a.fromaddr,
			Amount:     payout,
			Multiplier: multiplier,
			Index:      a.height,
		}),
	}
	receipt.KV = append(receipt.KV, kv, tkv)
	receipt.Logs = append(receipt.Logs, log1)
	return receipt, nil
}
