package mintdb_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sagarc03/mintdb"
)

func TestRegisterDuplicatePanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		mintdb.Register(fakeDriver, func(context.Context, mintdb.Config, mintdb.OpenOptions) (mintdb.Handle, error) {
			return nil, nil
		})
	})
}

func TestRegisterNilPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		mintdb.Register(mintdb.DriverKind("nil-open"), nil)
	})
}

func TestDrivers(t *testing.T) {
	t.Parallel()

	assert.Contains(t, mintdb.Drivers(), fakeDriver)
}
