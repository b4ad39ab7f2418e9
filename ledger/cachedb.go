package ledger

import (
	dbm "github.com/rpschain/rpschain/common/db"
)

// stateCache is the statedb view a driver executes against. Writes stay in
// the overlay until the receipt commits, so a failed transaction leaves the
// backing store untouched.
type stateCache struct {
	db    dbm.DB
	cache map[string][]byte
}

func newStateCache(db dbm.DB) *stateCache {
	return &stateCache{
		db:    db,
		cache: make(map[string][]byte),
	}
}

func (s *stateCache) Get(key []byte) ([]byte, error) {
	if value, ok := s.cache[string(key)]; ok {
		if value == nil {
			return nil, dbm.ErrNotFoundInDb
		}
		return value, nil
	}
	return s.db.Get(key)
}

func (s *stateCache) Set(key []byte, value []byte) error {
	s.cache[string(key)] = value
	return nil
}
