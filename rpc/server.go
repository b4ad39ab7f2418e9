// Package rpc exposes the ledger over HTTP JSON-RPC and provides the
// matching client used by the command line tools.
package rpc

import (
	"encoding/json"
	"io"
	"net/http"
	"net/rpc"
	"net/rpc/jsonrpc"

	log "github.com/inconshreveable/log15"
	"github.com/rs/cors"

	"github.com/rpschain/rpschain/common"
	"github.com/rpschain/rpschain/ledger"
	"github.com/rpschain/rpschain/types"
)

var rlog = log.New("module", "rpc")

// RawParm carries a hex encoded signed transaction.
type RawParm struct {
	Data string `json:"data"`
}

// Query4Jrpc addresses one read-only contract lookup.
type Query4Jrpc struct {
	Execer   string          `json:"execer"`
	FuncName string          `json:"funcName"`
	Payload  json.RawMessage `json:"payload"`
}

// BalanceParm asks for an account balance, optionally scoped to a
// contract sub-account.
type BalanceParm struct {
	Addr   string `json:"addr"`
	Execer string `json:"execer"`
}

// HashParm addresses a committed transaction by its hex hash.
type HashParm struct {
	Hash string `json:"hash"`
}

// ReplyTxHash acknowledges a committed transaction.
type ReplyTxHash struct {
	Hash string `json:"hash"`
}

// Chain is the JSON-RPC receiver.
type Chain struct {
	ledger *ledger.Ledger
}

// SendTransaction decodes, executes and commits a signed transaction,
// replying with its hash.
func (c *Chain) SendTransaction(in RawParm, result *ReplyTxHash) error {
	data, err := common.FromHex(in.Data)
	if err != nil {
		return types.ErrInvalidParam
	}
	var tx types.Transaction
	if err := types.Decode(data, &tx); err != nil {
		return types.ErrInvalidParam
	}
	if _, err := c.ledger.SendTransaction(&tx); err != nil {
		rlog.Debug("SendTransaction", "err", err)
		return err
	}
	result.Hash = common.ToHex(tx.Hash())
	return nil
}

// Query dispatches a read-only lookup to the named contract.
func (c *Chain) Query(in Query4Jrpc, result *json.RawMessage) error {
	msg, err := c.ledger.Query(in.Execer, in.FuncName, in.Payload)
	if err != nil {
		rlog.Debug("Query", "execer", in.Execer, "funcName", in.FuncName, "err", err)
		return err
	}
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	*result = data
	return nil
}

// GetBalance reads one account record.
func (c *Chain) GetBalance(in BalanceParm, result *types.Account) error {
	acc := c.ledger.GetBalance(in.Addr, in.Execer)
	*result = *acc
	return nil
}

// QueryTransaction returns the receipt of a committed transaction.
func (c *Chain) QueryTransaction(in HashParm, result *types.Receipt) error {
	hash, err := common.FromHex(in.Hash)
	if err != nil {
		return types.ErrInvalidParam
	}
	receipt, err := c.ledger.QueryReceipt(hash)
	if err != nil {
		return err
	}
	*result = *receipt
	return nil
}

type httpConn struct {
	in  io.Reader
	out io.Writer
}

func (c *httpConn) Read(p []byte) (int, error)  { return c.in.Read(p) }
func (c *httpConn) Write(p []byte) (int, error) { return c.out.Write(p) }
func (c *httpConn) Close() error                { return nil }

// NewServer builds the HTTP handler serving the Chain receiver.
func NewServer(l *ledger.Ledger) http.Handler {
	server := rpc.NewServer()
	if err := server.RegisterName("Chain", &Chain{ledger: l}); err != nil {
		panic(err)
	}
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		codec := jsonrpc.NewServerCodec(&httpConn{in: r.Body, out: w})
		if err := server.ServeRequest(codec); err != nil {
			rlog.Error("ServeRequest", "err", err)
		}
	})
	return cors.New(cors.Options{AllowedMethods: []string{http.MethodPost}}).Handler(handler)
}

// Serve blocks, listening on bindAddr.
func Serve(bindAddr string, l *ledger.Ledger) error {
	rlog.Info("jrpc listening", "addr", bindAddr)
	return http.ListenAndServe(bindAddr, NewServer(l))
}
