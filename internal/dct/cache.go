package dct

import "sync"

// Cache shares precomputed DCT basis tables across concurrent callers.
type Cache struct {
	data sync.Map
}

func NewCache() *Cache {
	var c Cache
	return &c
}

func (c *Cache) New(n int) *DCT {
	if v, ok := c.data.Load(n); ok {
		return v.(*DCT)
	}
	dct := New(n)
	actual, loaded := c.data.LoadOrStore(n, dct)
	if loaded {
		return actual.(*DCT)
	}
	return dct
}
