package montgomery

import (
	"sync"

	"github.com/taurusgroup/modexp/internal/hash"
	"github.com/taurusgroup/modexp/pkg/math/bigint"
	"golang.org/x/sync/singleflight"
)

type cacheKey = [hash.DigestLengthBytes]byte

// Cache holds one Context per modulus.
//
// Lookups take a read lock. Concurrent misses on the same modulus are
// collapsed into a single NewContext call.
// The zero value is not usable, use NewCache.
type Cache struct {
	mtx      sync.RWMutex
	contexts map[cacheKey]*Context
	group    singleflight.Group
}

// NewCache returns an empty Cache.
func NewCache() *Cache {
	return &Cache{contexts: make(map[cacheKey]*Context)}
}

func keyOf(modulus bigint.Int) cacheKey {
	h := hash.New()
	if err := h.WriteAny(modulus); err != nil {
		// writing to a hasher never fails
		panic(err)
	}
	return h.Sum()
}

// Lookup returns the cached Context for modulus, if any.
func (c *Cache) Lookup(modulus bigint.Int) (*Context, bool) {
	return c.lookup(keyOf(modulus), modulus)
}

func (c *Cache) lookup(key cacheKey, modulus bigint.Int) (*Context, bool) {
	c.mtx.RLock()
	ctx, ok := c.contexts[key]
	c.mtx.RUnlock()
	if !ok || !ctx.modulus.Eq(modulus) {
		return nil, false
	}
	return ctx, true
}

// Get returns the Context for modulus, creating and caching it if necessary.
func (c *Cache) Get(modulus bigint.Int) *Context {
	key := keyOf(modulus)
	if ctx, ok := c.lookup(key, modulus); ok {
		return ctx
	}
	v, _, _ := c.group.Do(string(key[:]), func() (interface{}, error) {
		if ctx, ok := c.lookup(key, modulus); ok {
			return ctx, nil
		}
		ctx := NewContext(modulus)
		c.mtx.Lock()
		c.contexts[key] = ctx
		c.mtx.Unlock()
		return ctx, nil
	})
	ctx := v.(*Context)
	if !ctx.modulus.Eq(modulus) {
		// digest collision, do not share the entry
		return NewContext(modulus)
	}
	return ctx
}

// Len returns the number of cached contexts.
func (c *Cache) Len() int {
	c.mtx.RLock()
	defer c.mtx.RUnlock()
	return len(c.contexts)
}

// Reset drops every cached context.
func (c *Cache) Reset() {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	c.contexts = make(map[cacheKey]*Context)
}
