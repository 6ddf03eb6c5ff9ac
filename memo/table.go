// Package memo provides explicit, caller-scoped memo tables and the two
// counting recursions that lean on them: splitting stones and composing
// towel designs.
//
// A Table is created per top-level call and discarded afterwards. Nothing
// is cached across calls, so results never depend on call history.
package memo

// Table is a plain memo cache. The zero value is not usable; call NewTable.
type Table[K comparable, V any] struct {
	entries map[K]V
}

// NewTable returns an empty table.
func NewTable[K comparable, V any]() *Table[K, V] {
	return &Table[K, V]{entries: make(map[K]V)}
}

// Get returns the cached value for k and whether it was present.
func (t *Table[K, V]) Get(k K) (V, bool) {
	v, ok := t.entries[k]
	return v, ok
}

// Put stores v under k, replacing any previous value.
func (t *Table[K, V]) Put(k K, v V) {
	t.entries[k] = v
}

// Len returns the number of cached entries.
func (t *Table[K, V]) Len() int { return len(t.entries) }

// Reset drops every entry.
func (t *Table[K, V]) Reset() {
	clear(t.entries)
}

// Memoize returns fn wrapped so that each key is computed once per table.
// fn receives the memoized function itself for recursive calls.
func Memoize[K comparable, V any](t *Table[K, V], fn func(self func(K) V, k K) V) func(K) V {
	var self func(K) V
	self = func(k K) V {
		if v, ok := t.Get(k); ok {
			return v
		}
		v := fn(self, k)
		t.Put(k, v)
		return v
	}
	return self
}
