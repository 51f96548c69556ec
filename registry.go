package mintdb

import (
	"context"
	"sort"
	"sync"
)

// OpenFunc opens a handle for one driver kind. The Config passed in has
// already had defaults applied and the password resolved.
type OpenFunc func(ctx context.Context, cfg Config, opts OpenOptions) (Handle, error)

var (
	driversMu sync.RWMutex
	drivers   = make(map[DriverKind]OpenFunc)
)

// Register makes a backend available under the given driver kind, in the
// manner of database/sql driver registration. It panics on a nil OpenFunc
// or a duplicate registration.
func Register(kind DriverKind, open OpenFunc) {
	driversMu.Lock()
	defer driversMu.Unlock()
	if open == nil {
		panic("mintdb: Register open func is nil")
	}
	if _, dup := drivers[kind]; dup {
		panic("mintdb: Register called twice for driver " + string(kind))
	}
	drivers[kind] = open
}

// Drivers returns the sorted kinds of the registered backends.
func Drivers() []DriverKind {
	driversMu.RLock()
	defer driversMu.RUnlock()
	list := make([]DriverKind, 0, len(drivers))
	for k := range drivers {
		list = append(list, k)
	}
	sort.Slice(list, func(i, j int) bool { return list[i] < list[j] })
	return list
}

func opener(kind DriverKind) (OpenFunc, bool) {
	driversMu.RLock()
	defer driversMu.RUnlock()
	open, ok := drivers[kind]
	return open, ok
}
