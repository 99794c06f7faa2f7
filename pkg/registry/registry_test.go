package registry

import (
	"sync"
	"testing"

	"github.com/arthur-debert/pear2modman/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type kind string

type testItem struct {
	ID int
}

func TestRegister(t *testing.T) {
	reg := New[kind, testItem]()
	assert.Equal(t, 0, reg.Count())

	require.NoError(t, reg.Register("code", testItem{ID: 1}))
	assert.Equal(t, 1, reg.Count())
	assert.True(t, reg.Has("code"))

	t.Run("empty name", func(t *testing.T) {
		err := reg.Register("", testItem{})
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})

	t.Run("duplicate", func(t *testing.T) {
		err := reg.Register("code", testItem{ID: 2})
		assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))
		assert.Equal(t, "code", errors.GetErrorDetails(err)["name"])

		item, err := reg.Get("code")
		require.NoError(t, err)
		assert.Equal(t, 1, item.ID, "first registration wins")
	})
}

func TestGet_NotFound(t *testing.T) {
	reg := New[kind, testItem]()

	item, err := reg.Get("skin")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	assert.Equal(t, testItem{}, item)
	assert.False(t, reg.Has("skin"))
}

func TestList_RegistrationOrder(t *testing.T) {
	reg := New[kind, testItem]()
	for i, name := range []kind{"web", "code", "lib"} {
		require.NoError(t, reg.Register(name, testItem{ID: i}))
	}

	names := reg.List()
	assert.Equal(t, []kind{"web", "code", "lib"}, names)

	names[0] = "changed"
	assert.Equal(t, kind("web"), reg.List()[0], "List returns a copy")
}

func TestMustRegister(t *testing.T) {
	reg := New[kind, testItem]()
	MustRegister(reg, "code", testItem{})

	assert.Panics(t, func() { MustRegister(reg, "code", testItem{}) })
}

func TestConcurrentAccess(t *testing.T) {
	reg := New[kind, testItem]()
	names := []kind{"a", "b", "c", "d", "e", "f", "g", "h"}

	var wg sync.WaitGroup
	for i, name := range names {
		wg.Add(1)
		go func(i int, name kind) {
			defer wg.Done()
			_ = reg.Register(name, testItem{ID: i})
			_ = reg.Has(name)
			_ = reg.List()
		}(i, name)
	}
	wg.Wait()

	assert.Equal(t, len(names), reg.Count())
}
