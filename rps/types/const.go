// Package types defines the actions, state records, events and errors of
// the rock-paper-scissors betting contract.
package types

// RPSX is the execer name the contract registers under.
const RPSX = "rps"

// Action types carried in RPSAction.Ty.
const (
	RPSActionTreasuryInit = 1
	RPSActionGameInit     = 2
	RPSActionPlaceBet     = 3
	RPSActionPlay         = 4
	RPSActionContinue     = 5
	RPSActionCashout      = 6
)

// Receipt log types emitted by the contract.
const (
	TyLogRPSTreasuryInit = 601
	TyLogRPSGameInit     = 602
	TyLogRPSBet          = 603
	TyLogRPSPlay         = 604
	TyLogRPSCashout      = 605
)

// Moves.
const (
	MoveRock     = "Rock"
	MovePaper    = "Paper"
	MoveScissors = "Scissors"
)

// Round results. An empty result means no resolved round is pending.
const (
	ResultWin  = "Win"
	ResultLose = "Lose"
	ResultDraw = "Draw"
)

// Multiplier schedule, in integer percent of the stake.
const (
	BaseMultiplier = int64(25)
	MultiplierStep = int64(25)
)

// Query function names.
const (
	FuncGetGame     = "GetGame"
	FuncGetTreasury = "GetTreasury"
	FuncListRounds  = "ListRounds"
)
