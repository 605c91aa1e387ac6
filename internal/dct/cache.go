package dct

import "sync"

// Cache reuses Transform instances across calls; basis construction is
// O(n^4) and identical for every block of the same size.
type Cache struct {
	data sync.Map
}

func NewCache() *Cache {
	var c Cache
	return &c
}

func (c *Cache) Get(n int) *Transform {
	if v, ok := c.data.Load(n); ok {
		return v.(*Transform)
	}
	t := New(n)
	actual, loaded := c.data.LoadOrStore(n, t)
	if loaded {
		return actual.(*Transform)
	}
	return t
}
