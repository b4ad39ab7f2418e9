// Package commands provides the cli surface of the coin contract.
package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	cty "github.com/rpschain/rpschain/coins/types"
	"github.com/rpschain/rpschain/common"
	"github.com/rpschain/rpschain/common/crypto"
	"github.com/rpschain/rpschain/rpc"
	"github.com/rpschain/rpschain/types"
)

// SendCmd transfers coins between accounts.
func SendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send",
		Short: "Transfer coins to an address",
		Run:   send,
	}
	cmd.Flags().StringP("key", "k", "", "private key of the sender (hex)")
	cmd.MarkFlagRequired("key")
	cmd.Flags().StringP("to", "t", "", "destination address")
	cmd.MarkFlagRequired("to")
	cmd.Flags().StringP("amount", "m", "", "amount in coins")
	cmd.MarkFlagRequired("amount")
	cmd.Flags().StringP("note", "n", "", "transfer note")
	return cmd
}

func send(cmd *cobra.Command, args []string) {
	to, _ := cmd.Flags().GetString("to")
	amountStr, _ := cmd.Flags().GetString("amount")
	note, _ := cmd.Flags().GetString("note")
	key, _ := cmd.Flags().GetString("key")
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")

	d, err := decimal.NewFromString(amountStr)
	if err != nil {
		fatal(err)
	}
	amount := d.Mul(decimal.New(1, 8)).IntPart()

	raw, err := common.FromHex(key)
	if err != nil {
		fatal(err)
	}
	priv, err := crypto.PrivKeyFromBytes(raw)
	if err != nil {
		fatal(err)
	}

	tx := cty.CreateTransferTx(to, amount, note)
	tx.Sign(priv)

	var reply rpc.ReplyTxHash
	client := rpc.NewJSONClient(rpcLaddr)
	if err := client.Call("Chain.SendTransaction", rpc.RawParm{Data: common.ToHex(types.Encode(tx))}, &reply); err != nil {
		fatal(err)
	}
	data, err := json.MarshalIndent(&reply, "", "    ")
	if err != nil {
		fatal(err)
	}
	fmt.Println(string(data))
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
