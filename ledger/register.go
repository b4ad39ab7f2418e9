package ledger

import (
	"fmt"

	"github.com/rpschain/rpschain/types"
)

// DriverCreate builds a fresh driver instance.
type DriverCreate func() Driver

var registedExecDriver = make(map[string]DriverCreate)

// Register adds a dapp driver under its execer name. Duplicate names are a
// programming error.
func Register(name string, create DriverCreate) {
	if create == nil {
		panic("ledger: register driver is nil")
	}
	if _, dup := registedExecDriver[name]; dup {
		panic(fmt.Sprintf("ledger: register called twice for driver %s", name))
	}
	registedExecDriver[name] = create
}

// LoadDriver instantiates the driver registered under name.
func LoadDriver(name string) (Driver, error) {
	create, ok := registedExecDriver[name]
	if !ok {
		return nil, types.ErrExecNotFound
	}
	return create(), nil
}
