// Package db abstracts the key-value stores backing the ledger state and
// the local query indexes.
package db

import (
	"errors"
	"fmt"
)

// ErrNotFoundInDb is returned by Get when the key does not exist.
var ErrNotFoundInDb = errors.New("ErrNotFoundInDb")

// List directions.
const (
	ListDESC = int32(0)
	ListASC  = int32(1)
)

// KV is the statedb surface drivers see during execution.
type KV interface {
	Get(key []byte) ([]byte, error)
	Set(key []byte, value []byte) error
}

// KVDB adds prefix listing for localdb query indexes. When key is non-empty
// the listing resumes strictly after (ASC) or before (DESC) that key.
type KVDB interface {
	KV
	List(prefix, key []byte, count, direction int32) ([][]byte, error)
}

// DB is a full storage backend.
type DB interface {
	KVDB
	SetSync(key, value []byte) error
	Delete(key []byte) error
	DeleteSync(key []byte) error
	Close()
	NewBatch(sync bool) Batch
	PrefixScan(prefix []byte) ([][]byte, error)
}

// Batch accumulates writes applied atomically by Write. A nil value marks a
// deletion.
type Batch interface {
	Set(key, value []byte)
	Delete(key []byte)
	Write() error
}

// Backend names accepted in the configuration.
const (
	LevelDBBackendStr    = "leveldb"
	GoLevelDBBackendStr  = "goleveldb"
	MemDBBackendStr      = "memdb"
	GoBadgerDBBackendStr = "gobadgerdb"
)

type dbCreator func(name string, dir string, cache int) (DB, error)

var backends = map[string]dbCreator{}

func registerDBCreator(backend string, creator dbCreator, force bool) {
	_, ok := backends[backend]
	if !force && ok {
		return
	}
	backends[backend] = creator
}

// NewDB opens a database with the named backend. Unknown backends and open
// failures are fatal: a node without storage cannot run.
func NewDB(name string, backend string, dir string, cache int) DB {
	dbCreator, ok := backends[backend]
	if !ok {
		fmt.Printf("Error initializing DB: %v\n", backend)
		panic("initializing DB error")
	}
	db, err := dbCreator(name, dir, cache)
	if err != nil {
		fmt.Printf("Error initializing DB: %v\n", err)
		panic("initializing DB error")
	}
	return db
}
