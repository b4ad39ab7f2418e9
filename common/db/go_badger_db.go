package db

import (
	"path"

	"github.com/dgraph-io/badger"
	log "github.com/inconshreveable/log15"
)

var blog = log.New("module", "db.gobadgerdb")

func init() {
	dbCreator := func(name string, dir string, cache int) (DB, error) {
		return NewGoBadgerDB(name, dir, cache)
	}
	registerDBCreator(GoBadgerDBBackendStr, dbCreator, false)
}

// GoBadgerDB stores data in a badger database under dir/name.
type GoBadgerDB struct {
	db *badger.DB
}

func NewGoBadgerDB(name string, dir string, cache int) (*GoBadgerDB, error) {
	dbPath := path.Join(dir, name)
	opts := badger.DefaultOptions(dbPath)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &GoBadgerDB{db: db}, nil
}

func (db *GoBadgerDB) Get(key []byte) ([]byte, error) {
	var val []byte
	err := db.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	if err == badger.ErrKeyNotFound {
		return nil, ErrNotFoundInDb
	}
	if err != nil {
		blog.Error("Get", "error", err)
		return nil, err
	}
	return val, nil
}

func (db *GoBadgerDB) Set(key []byte, value []byte) error {
	err := db.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
	if err != nil {
		blog.Error("Set", "error", err)
	}
	return err
}

func (db *GoBadgerDB) SetSync(key []byte, value []byte) error {
	return db.Set(key, value)
}

func (db *GoBadgerDB) Delete(key []byte) error {
	err := db.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
	if err != nil {
		blog.Error("Delete", "error", err)
	}
	return err
}

func (db *GoBadgerDB) DeleteSync(key []byte) error {
	return db.Delete(key)
}

func (db *GoBadgerDB) Close() {
	db.db.Close()
}

func (db *GoBadgerDB) PrefixScan(prefix []byte) ([][]byte, error) {
	var values [][]byte
	err := db.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			value, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			values = append(values, value)
		}
		return nil
	})
	if err != nil {
		blog.Error("PrefixScan", "error", err)
		return nil, err
	}
	return values, nil
}

func (db *GoBadgerDB) List(prefix, key []byte, count, direction int32) ([][]byte, error) {
	var values [][]byte
	err := db.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		if direction == ListDESC {
			opts.Reverse = true
		}
		it := txn.NewIterator(opts)
		defer it.Close()

		if len(key) == 0 {
			if direction == ListDESC {
				// reverse iteration seeks to the largest key under prefix
				seek := append(append([]byte{}, prefix...), 0xff)
				it.Seek(seek)
			} else {
				it.Seek(prefix)
			}
		} else {
			it.Seek(key)
			// resume strictly past the last seen key
			if it.ValidForPrefix(prefix) && string(it.Item().Key()) == string(key) {
				it.Next()
			}
		}
		for ; it.ValidForPrefix(prefix); it.Next() {
			value, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			values = append(values, value)
			if count > 0 && int32(len(values)) >= count {
				break
			}
		}
		return nil
	})
	if err != nil {
		blog.Error("List", "error", err)
		return nil, err
	}
	return values, nil
}

//--------------------------------------------------------------------------------

type goBadgerDBBatch struct {
	db     *GoBadgerDB
	writes []memKV
}

func (db *GoBadgerDB) NewBatch(sync bool) Batch {
	return &goBadgerDBBatch{db: db}
}

func (mBatch *goBadgerDBBatch) Set(key, value []byte) {
	mBatch.writes = append(mBatch.writes, memKV{copyBytes(key), copyBytes(value)})
}

func (mBatch *goBadgerDBBatch) Delete(key []byte) {
	mBatch.writes = append(mBatch.writes, memKV{copyBytes(key), nil})
}

func (mBatch *goBadgerDBBatch) Write() error {
	err := mBatch.db.db.Update(func(txn *badger.Txn) error {
		for _, kv := range mBatch.writes {
			if kv.v == nil {
				if err := txn.Delete(kv.k); err != nil {
					return err
				}
				continue
			}
			if err := txn.Set(kv.k, kv.v); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		blog.Error("batch.Write", "error", err)
		return err
	}
	mBatch.writes = mBatch.writes[:0]
	return nil
}
