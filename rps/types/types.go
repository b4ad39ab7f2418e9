package types

import (
	"sync"

	"github.com/rpschain/rpschain/common/address"
	"github.com/rpschain/rpschain/types"
)

var (
	adminMu   sync.RWMutex
	adminAddr string
)

// SetAdmin installs the designated treasury administrator from the node
// configuration.
func SetAdmin(addr string) {
	adminMu.Lock()
	defer adminMu.Unlock()
	adminAddr = addr
}

// AdminAddr returns the designated treasury administrator.
func AdminAddr() string {
	adminMu.RLock()
	defer adminMu.RUnlock()
	return adminAddr
}

// RPSAction is the payload of every contract transaction. Ty selects which
// sub-message is set.
type RPSAction struct {
	Ty           int32            `json:"ty"`
	TreasuryInit *RPSTreasuryInit `json:"treasuryInit,omitempty"`
	GameInit     *RPSGameInit     `json:"gameInit,omitempty"`
	Bet          *RPSBet          `json:"bet,omitempty"`
	Play         *RPSPlay         `json:"play,omitempty"`
	Continue     *RPSContinue     `json:"continue,omitempty"`
	Cashout      *RPSCashout      `json:"cashout,omitempty"`
}

// RPSTreasuryInit creates the treasury. Only the designated administrator
// may send it.
type RPSTreasuryInit struct{}

// RPSGameInit creates the sender's game record.
type RPSGameInit struct{}

// RPSBet stakes Amount on a new round sequence. AdminAddr must name the
// treasury administrator the stake is paid to.
type RPSBet struct {
	Amount    int64  `json:"amount"`
	AdminAddr string `json:"adminAddr"`
}

// RPSPlay plays one round with the declared move.
type RPSPlay struct {
	Selection string `json:"selection"`
}

// RPSContinue raises the multiplier ahead of the next round.
type RPSContinue struct{}

// RPSCashout collects the winnings from the treasury administrator.
type RPSCashout struct {
	AdminAddr string `json:"adminAddr"`
}

// Game is the per-player contract record, keyed by the player address. It
// is created once and survives across games.
type Game struct {
	Player       string `json:"player"`
	Bet          int64  `json:"bet"`
	Multiplier   int64  `json:"multiplier"`
	ComputerMove string `json:"computerMove"`
	Result       string `json:"result"`
	Active       bool   `json:"active"`
	Round        int64  `json:"round"`
}

// Treasury is the singleton record naming the stake pool's administrator.
// The pooled funds live in the administrator's own coin account; the record
// keeps running totals for observability.
type Treasury struct {
	Admin        string `json:"admin"`
	CreateHeight int64  `json:"createHeight"`
	TotalBets    int64  `json:"totalBets"`
	TotalPayouts int64  `json:"totalPayouts"`
}

// RPSTreasuryInitLog is emitted when the treasury is created.
type RPSTreasuryInitLog struct {
	Admin string `json:"admin"`
}

// RPSGameInitLog is emitted when a player record is created.
type RPSGameInitLog struct {
	Player string `json:"player"`
}

// RPSBetLog is emitted when a stake moves into the treasury.
type RPSBetLog struct {
	Player string `json:"player"`
	Amount int64  `json:"amount"`
	Index  int64  `json:"index"`
}

// RPSPlayLog is emitted for every resolved round.
type RPSPlayLog struct {
	Player       string `json:"player"`
	Bet          int64  `json:"bet"`
	Multiplier   int64  `json:"multiplier"`
	PlayerMove   string `json:"playerMove"`
	ComputerMove string `json:"computerMove"`
	Result       string `json:"result"`
	Winnings     int64  `json:"winnings"`
	Round        int64  `json:"round"`
	Index        int64  `json:"index"`
}

// RPSCashoutLog is emitted when winnings leave the treasury.
type RPSCashoutLog struct {
	Player     string `json:"player"`
	Amount     int64  `json:"amount"`
	Multiplier int64  `json:"multiplier"`
	Index      int64  `json:"index"`
}

// QueryGameParams asks for one player's game record.
type QueryGameParams struct {
	Addr string `json:"addr"`
}

// QueryTreasuryParams asks for the treasury record.
type QueryTreasuryParams struct{}

// ReplyTreasury projects the treasury with its live pooled balance.
type ReplyTreasury struct {
	Admin        string `json:"admin"`
	Balance      int64  `json:"balance"`
	TotalBets    int64  `json:"totalBets"`
	TotalPayouts int64  `json:"totalPayouts"`
}

// ListRoundsParams pages through a player's resolved rounds. Index is the
// resume point from the previous page, zero for the newest rounds.
type ListRoundsParams struct {
	Addr      string `json:"addr"`
	Index     int64  `json:"index"`
	Count     int32  `json:"count"`
	Direction int32  `json:"direction"`
}

// ReplyRounds carries one page of resolved rounds.
type ReplyRounds struct {
	Rounds []*RPSPlayLog `json:"rounds"`
}

// NewTx wraps an encoded action into an unsigned transaction addressed to
// the contract.
func NewTx(action *RPSAction) *types.Transaction {
	return &types.Transaction{
		Execer:  []byte(RPSX),
		Payload: types.Encode(action),
		Fee:     types.MinFee,
		Nonce:   types.Nonce(),
		To:      address.ExecAddress(RPSX),
	}
}

// CreateTreasuryInitTx builds an unsigned treasury creation transaction.
func CreateTreasuryInitTx() *types.Transaction {
	return NewTx(&RPSAction{Ty: RPSActionTreasuryInit, TreasuryInit: &RPSTreasuryInit{}})
}

// CreateGameInitTx builds an unsigned game creation transaction.
func CreateGameInitTx() *types.Transaction {
	return NewTx(&RPSAction{Ty: RPSActionGameInit, GameInit: &RPSGameInit{}})
}

// CreateBetTx builds an unsigned bet transaction.
func CreateBetTx(amount int64, adminAddr string) *types.Transaction {
	return NewTx(&RPSAction{Ty: RPSActionPlaceBet, Bet: &RPSBet{Amount: amount, AdminAddr: adminAddr}})
}

// CreatePlayTx builds an unsigned play transaction.
func CreatePlayTx(selection string) *types.Transaction {
	return NewTx(&RPSAction{Ty: RPSActionPlay, Play: &RPSPlay{Selection: selection}})
}

// CreateContinueTx builds an unsigned continue transaction.
func CreateContinueTx() *types.Transaction {
	return NewTx(&RPSAction{Ty: RPSActionContinue, Continue: &RPSContinue{}})
}

// CreateCashoutTx builds an unsigned cashout transaction.
func CreateCashoutTx(adminAddr string) *types.Transaction {
	return NewTx(&RPSAction{Ty: RPSActionCashout, Cashout: &RPSCashout{AdminAddr: adminAddr}})
}
