package db

import (
	"sort"
	"strings"
	"sync"

	log "github.com/inconshreveable/log15"
)

var mlog = log.New("module", "db.memdb")

func init() {
	dbCreator := func(name string, dir string, cache int) (DB, error) {
		return NewGoMemDB(name, dir, cache)
	}
	registerDBCreator(MemDBBackendStr, dbCreator, false)
}

// GoMemDB is an in-memory backend used by tests and throwaway nodes.
type GoMemDB struct {
	db   map[string][]byte
	lock sync.RWMutex
}

func NewGoMemDB(name string, dir string, cache int) (*GoMemDB, error) {
	return &GoMemDB{
		db: make(map[string][]byte),
	}, nil
}

func copyBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

func (db *GoMemDB) Get(key []byte) ([]byte, error) {
	db.lock.RLock()
	defer db.lock.RUnlock()

	if entry, ok := db.db[string(key)]; ok {
		return copyBytes(entry), nil
	}
	return nil, ErrNotFoundInDb
}

func (db *GoMemDB) Set(key []byte, value []byte) error {
	db.lock.Lock()
	defer db.lock.Unlock()

	db.db[string(key)] = copyBytes(value)
	return nil
}

func (db *GoMemDB) SetSync(key []byte, value []byte) error {
	return db.Set(key, value)
}

func (db *GoMemDB) Delete(key []byte) error {
	db.lock.Lock()
	defer db.lock.Unlock()

	delete(db.db, string(key))
	return nil
}

func (db *GoMemDB) DeleteSync(key []byte) error {
	return db.Delete(key)
}

func (db *GoMemDB) Close() {
}

func (db *GoMemDB) PrefixScan(prefix []byte) ([][]byte, error) {
	db.lock.RLock()
	defer db.lock.RUnlock()

	var values [][]byte
	for _, k := range db.sortedKeys(prefix) {
		values = append(values, copyBytes(db.db[k]))
	}
	return values, nil
}

func (db *GoMemDB) List(prefix, key []byte, count, direction int32) ([][]byte, error) {
	db.lock.RLock()
	defer db.lock.RUnlock()

	keys := db.sortedKeys(prefix)
	if direction == ListDESC {
		for i, j := 0, len(keys)-1; i < j; i, j = i+1, j-1 {
			keys[i], keys[j] = keys[j], keys[i]
		}
	}
	var values [][]byte
	seeking := len(key) > 0
	for _, k := range keys {
		if seeking {
			// resume strictly past the last seen key
			if direction == ListASC && !(k > string(key)) {
				continue
			}
			if direction == ListDESC && !(k < string(key)) {
				continue
			}
		}
		values = append(values, copyBytes(db.db[k]))
		if count > 0 && int32(len(values)) >= count {
			break
		}
	}
	return values, nil
}

func (db *GoMemDB) sortedKeys(prefix []byte) []string {
	var keys []string
	for k := range db.db {
		if strings.HasPrefix(k, string(prefix)) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

type memKV struct{ k, v []byte }

type memBatch struct {
	db     *GoMemDB
	writes []memKV
}

func (db *GoMemDB) NewBatch(sync bool) Batch {
	return &memBatch{db: db}
}

func (b *memBatch) Set(key, value []byte) {
	b.writes = append(b.writes, memKV{copyBytes(key), copyBytes(value)})
}

func (b *memBatch) Delete(key []byte) {
	b.writes = append(b.writes, memKV{copyBytes(key), nil})
}

func (b *memBatch) Write() error {
	for _, kv := range b.writes {
		if kv.v == nil {
			if err := b.db.Delete(kv.k); err != nil {
				mlog.Error("memBatch.Write delete", "err", err)
				return err
			}
			continue
		}
		if err := b.db.Set(kv.k, kv.v); err != nil {
			mlog.Error("memBatch.Write set", "err", err)
			return err
		}
	}
	b.writes = b.writes[:0]
	return nil
}
