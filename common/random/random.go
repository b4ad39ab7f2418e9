// Package random provides the randomness capability injected into contract
// drivers. The default source draws from crypto/rand so a player cannot
// predict or replay a draw before submitting a transaction; tests substitute
// a deterministic source.
package random

import (
	"crypto/rand"
	"math/big"
)

// Source draws a uniform integer in [0, n).
type Source interface {
	Intn(n int64) int64
}

type cryptoSource struct{}

// New returns the crypto-strength default source.
func New() Source {
	return cryptoSource{}
}

func (cryptoSource) Intn(n int64) int64 {
	if n <= 0 {
		panic("random: Intn with non-positive bound")
	}
	v, err := rand.Int(rand.Reader, big.NewInt(n))
	if err != nil {
		// crypto/rand failure means the host entropy source is broken;
		// refusing to continue is the only safe option.
		panic(err)
	}
	return v.Int64()
}

// Fixed replays a fixed sequence of draws. Test use only.
type Fixed struct {
	Values []int64
	pos    int
}

func (f *Fixed) Intn(n int64) int64 {
	if len(f.Values) == 0 {
		return 0
	}
	v := f.Values[f.pos%len(f.Values)] % n
	f.pos++
	return v
}
