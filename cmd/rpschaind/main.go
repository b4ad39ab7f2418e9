// rpschaind runs a single node: it opens the ledger stores, registers the
// betting contract and serves the JSON-RPC interface.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	coinsexec "github.com/rpschain/rpschain/coins/executor"
	clog "github.com/rpschain/rpschain/common/log"
	"github.com/rpschain/rpschain/ledger"
	"github.com/rpschain/rpschain/rpc"
	rpsexec "github.com/rpschain/rpschain/rps/executor"
	"github.com/rpschain/rpschain/types"
)

var configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:   "rpschaind",
		Short: "Rock paper scissors betting chain node",
		Run:   run,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "rpschain.toml", "configuration file")
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) {
	cfg, err := types.InitCfg(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	clog.SetFileLog(cfg.Log)

	mlog := clog.New("module", "main")
	mlog.Info("starting", "title", cfg.Title, "db", cfg.DB.Driver, "admin", cfg.RPS.Admin)

	coinsexec.Init()
	rpsexec.Init(cfg.RPS.Admin)
	l := ledger.New(cfg)
	defer l.Close()

	if err := rpc.Serve(cfg.RPC.JrpcBindAddr, l); err != nil {
		mlog.Crit("rpc serve", "err", err)
		os.Exit(1)
	}
}
