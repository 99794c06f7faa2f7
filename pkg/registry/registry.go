package registry

import (
	"fmt"
	"slices"
	"sync"

	"github.com/arthur-debert/pear2modman/pkg/errors"
)

// Registry is a generic, thread-safe registry for storing and retrieving items by name
type Registry[K ~string, T any] interface {
	// Register adds an item to the registry
	Register(name K, item T) error

	// Get retrieves an item from the registry
	Get(name K) (T, error)

	// Has checks if an item is registered
	Has(name K) bool

	// List returns all registered names in registration order
	List() []K

	// Count returns the number of registered items
	Count() int
}

type registry[K ~string, T any] struct {
	mu    sync.RWMutex
	items map[K]T
	order []K
}

// New creates a new Registry instance
func New[K ~string, T any]() Registry[K, T] {
	return &registry[K, T]{
		items: make(map[K]T),
	}
}

// MustRegister registers item and panics on failure. Use it for static
// tables built at construction time.
func MustRegister[K ~string, T any](r Registry[K, T], name K, item T) {
	if err := r.Register(name, item); err != nil {
		panic(fmt.Sprintf("registry: %v", err))
	}
}

func (r *registry[K, T]) Register(name K, item T) error {
	if name == "" {
		return errors.New(errors.ErrInvalidInput, "registry name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[name]; exists {
		return errors.Newf(errors.ErrAlreadyExists, "item '%s' is already registered", name).
			WithDetail("name", string(name))
	}

	r.items[name] = item
	r.order = append(r.order, name)
	return nil
}

func (r *registry[K, T]) Get(name K) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, exists := r.items[name]
	if !exists {
		var zero T
		return zero, errors.Newf(errors.ErrNotFound, "item '%s' not found in registry", name).
			WithDetail("name", string(name))
	}

	return item, nil
}

func (r *registry[K, T]) Has(name K) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.items[name]
	return exists
}

func (r *registry[K, T]) List() []K {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.order)
}

func (r *registry[K, T]) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items)
}
