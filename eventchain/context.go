package eventchain

import (
	"fmt"
	"sort"
)

// Context is the shared key→value store events communicate through.
// Values are type-erased; retrieval needs a type assertion, which is the
// cost the pattern is measured for.
type Context struct {
	data map[string]any
}

// NewContext creates an empty context.
func NewContext() *Context {
	return &Context{data: make(map[string]any)}
}

// Set stores value under key, replacing any previous value.
func (c *Context) Set(key string, value any) {
	c.data[key] = value
}

// Get returns the value under key and whether it exists.
func (c *Context) Get(key string) (any, bool) {
	v, ok := c.data[key]
	return v, ok
}

// Take removes key and returns its former value.
func (c *Context) Take(key string) (any, bool) {
	v, ok := c.data[key]
	if ok {
		delete(c.data, key)
	}
	return v, ok
}

// Has reports whether key is present.
func (c *Context) Has(key string) bool {
	_, ok := c.data[key]
	return ok
}

// Delete removes key from the context.
func (c *Context) Delete(key string) {
	delete(c.data, key)
}

// Len returns the number of stored keys.
func (c *Context) Len() int { return len(c.data) }

// Keys returns all keys in ascending order.
func (c *Context) Keys() []string {
	keys := make([]string, 0, len(c.data))
	for k := range c.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// Snapshot returns a shallow copy of all data.
func (c *Context) Snapshot() map[string]any {
	out := make(map[string]any, len(c.data))
	for k, v := range c.data {
		out[k] = v
	}

	return out
}

// Reset removes every key but keeps the map's storage.
func (c *Context) Reset() {
	clear(c.data)
}

// Value returns the value under key as T.
func Value[T any](c *Context, key string) (T, error) {
	var zero T
	raw, ok := c.data[key]
	if !ok {
		return zero, fmt.Errorf("%w: %q", ErrMissingKey, key)
	}
	v, ok := raw.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %q holds %T, want %T", ErrTypeMismatch, key, raw, zero)
	}

	return v, nil
}

// TakeValue removes key and returns its value as T. On a type mismatch the
// key is left in place.
func TakeValue[T any](c *Context, key string) (T, error) {
	v, err := Value[T](c, key)
	if err != nil {
		return v, err
	}
	delete(c.data, key)

	return v, nil
}

// MustValue is Value that panics on error. For tests and examples.
func MustValue[T any](c *Context, key string) T {
	v, err := Value[T](c, key)
	if err != nil {
		panic(err)
	}

	return v
}
