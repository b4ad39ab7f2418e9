// Package commands provides the cli surface of the betting contract.
package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rpschain/rpschain/common"
	"github.com/rpschain/rpschain/common/crypto"
	"github.com/rpschain/rpschain/rpc"
	rpsty "github.com/rpschain/rpschain/rps/types"
	"github.com/rpschain/rpschain/types"
)

// RPSCmd is the root of the contract subcommands.
func RPSCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rps",
		Short: "Rock paper scissors betting contract",
	}
	cmd.AddCommand(
		treasuryInitCmd(),
		gameInitCmd(),
		betCmd(),
		playCmd(),
		continueCmd(),
		cashoutCmd(),
		queryGameCmd(),
		queryTreasuryCmd(),
		listRoundsCmd(),
	)
	return cmd
}

// BalanceCmd reads an account balance.
func BalanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Get account balance",
		Run:   balance,
	}
	cmd.Flags().StringP("addr", "a", "", "account address")
	cmd.MarkFlagRequired("addr")
	cmd.Flags().StringP("exec", "e", "", "contract name for a sub-account balance")
	return cmd
}

func addKeyFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("key", "k", "", "private key of the sender (hex)")
	cmd.MarkFlagRequired("key")
}

func newClient(cmd *cobra.Command) *rpc.JSONClient {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	return rpc.NewJSONClient(rpcLaddr)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		fatal(err)
	}
	fmt.Println(string(data))
}

// parseCoinAmount converts a decimal coin amount to its smallest unit.
func parseCoinAmount(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, err
	}
	return d.Mul(decimal.New(1, 8)).IntPart(), nil
}

func signAndSend(cmd *cobra.Command, tx *types.Transaction) {
	key, _ := cmd.Flags().GetString("key")
	raw, err := common.FromHex(key)
	if err != nil {
		fatal(err)
	}
	priv, err := crypto.PrivKeyFromBytes(raw)
	if err != nil {
		fatal(err)
	}
	tx.Sign(priv)

	var reply rpc.ReplyTxHash
	if err := newClient(cmd).Call("Chain.SendTransaction", rpc.RawParm{Data: common.ToHex(types.Encode(tx))}, &reply); err != nil {
		fatal(err)
	}
	printJSON(reply)
}

func query(cmd *cobra.Command, funcName string, payload any, result any) {
	err := newClient(cmd).Call("Chain.Query", rpc.Query4Jrpc{
		Execer:   rpsty.RPSX,
		FuncName: funcName,
		Payload:  types.Encode(payload),
	}, result)
	if err != nil {
		fatal(err)
	}
}

func treasuryInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init_treasury",
		Short: "Create the treasury (administrator only)",
		Run: func(cmd *cobra.Command, args []string) {
			signAndSend(cmd, rpsty.CreateTreasuryInitTx())
		},
	}
	addKeyFlag(cmd)
	return cmd
}

func gameInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the sender's game record",
		Run: func(cmd *cobra.Command, args []string) {
			signAndSend(cmd, rpsty.CreateGameInitTx())
		},
	}
	addKeyFlag(cmd)
	return cmd
}

func betCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bet",
		Short: "Stake an amount on a new round sequence",
		Run: func(cmd *cobra.Command, args []string) {
			amountStr, _ := cmd.Flags().GetString("amount")
			amount, err := parseCoinAmount(amountStr)
			if err != nil {
				fatal(err)
			}
			admin, _ := cmd.Flags().GetString("admin")
			signAndSend(cmd, rpsty.CreateBetTx(amount, admin))
		},
	}
	addKeyFlag(cmd)
	cmd.Flags().StringP("amount", "m", "", "stake amount in coins")
	cmd.MarkFlagRequired("amount")
	cmd.Flags().StringP("admin", "a", "", "treasury administrator address")
	cmd.MarkFlagRequired("admin")
	return cmd
}

func playCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play one round with Rock, Paper or Scissors",
		Run: func(cmd *cobra.Command, args []string) {
			selection, _ := cmd.Flags().GetString("selection")
			signAndSend(cmd, rpsty.CreatePlayTx(selection))
		},
	}
	addKeyFlag(cmd)
	cmd.Flags().StringP("selection", "s", "", "Rock, Paper or Scissors")
	cmd.MarkFlagRequired("selection")
	return cmd
}

func continueCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "continue",
		Short: "Raise the multiplier after a win",
		Run: func(cmd *cobra.Command, args []string) {
			signAndSend(cmd, rpsty.CreateContinueTx())
		},
	}
	addKeyFlag(cmd)
	return cmd
}

func cashoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cashout",
		Short: "Collect the winnings after a win",
		Run: func(cmd *cobra.Command, args []string) {
			admin, _ := cmd.Flags().GetString("admin")
			signAndSend(cmd, rpsty.CreateCashoutTx(admin))
		},
	}
	addKeyFlag(cmd)
	cmd.Flags().StringP("admin", "a", "", "treasury administrator address")
	cmd.MarkFlagRequired("admin")
	return cmd
}

func queryGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Get a player's game record",
		Run: func(cmd *cobra.Command, args []string) {
			addr, _ := cmd.Flags().GetString("addr")
			var game rpsty.Game
			query(cmd, rpsty.FuncGetGame, &rpsty.QueryGameParams{Addr: addr}, &game)
			printJSON(&game)
		},
	}
	cmd.Flags().StringP("addr", "a", "", "player address")
	cmd.MarkFlagRequired("addr")
	return cmd
}

func queryTreasuryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "treasury",
		Short: "Get the treasury record and its pooled balance",
		Run: func(cmd *cobra.Command, args []string) {
			var treasury rpsty.ReplyTreasury
			query(cmd, rpsty.FuncGetTreasury, &rpsty.QueryTreasuryParams{}, &treasury)
			printJSON(&treasury)
		},
	}
}

func listRoundsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rounds",
		Short: "List a player's resolved rounds, newest first",
		Run: func(cmd *cobra.Command, args []string) {
			addr, _ := cmd.Flags().GetString("addr")
			count, _ := cmd.Flags().GetInt32("count")
			index, _ := cmd.Flags().GetInt64("index")
			var rounds rpsty.ReplyRounds
			query(cmd, rpsty.FuncListRounds, &rpsty.ListRoundsParams{
				Addr:  addr,
				Count: count,
				Index: index,
			}, &rounds)
			printJSON(&rounds)
		},
	}
	cmd.Flags().StringP("addr", "a", "", "player address")
	cmd.MarkFlagRequired("addr")
	cmd.Flags().Int32P("count", "c", 20, "page size")
	cmd.Flags().Int64P("index", "i", 0, "resume point from the previous page")
	return cmd
}

func balance(cmd *cobra.Command, args []string) {
	addr, _ := cmd.Flags().GetString("addr")
	exec, _ := cmd.Flags().GetString("exec")
	var acc types.Account
	if err := newClient(cmd).Call("Chain.GetBalance", rpc.BalanceParm{Addr: addr, Execer: exec}, &acc); err != nil {
		fatal(err)
	}
	printJSON(&acc)
}
