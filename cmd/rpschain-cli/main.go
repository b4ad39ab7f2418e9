// rpschain-cli talks to a running node over JSON-RPC: account tools plus
// the betting contract subcommands.
package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	coinscmd "github.com/rpschain/rpschain/coins/commands"
	"github.com/rpschain/rpschain/common/address"
	"github.com/rpschain/rpschain/common/crypto"
	"github.com/rpschain/rpschain/rps/commands"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rpschain-cli",
		Short: "Rock paper scissors betting chain client",
	}
	rootCmd.PersistentFlags().String("rpc_laddr", "http://localhost:8801", "http url of the node")
	rootCmd.AddCommand(
		commands.RPSCmd(),
		commands.BalanceCmd(),
		coinscmd.SendCmd(),
		keygenCmd(),
	)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func keygenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Generate a private key and its address",
		Run: func(cmd *cobra.Command, args []string) {
			priv, err := crypto.GenKey()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			fmt.Println("privkey:", hex.EncodeToString(priv.Serialize()))
			fmt.Println("address:", address.PubKeyToAddr(crypto.PubKey(priv)))
		},
	}
}
