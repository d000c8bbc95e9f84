// Package hashtable implements a generic open-addressing hash table with
// linear probing, tombstone deletion and universal hashing.
//
// Every key is first reduced to 64 bits by a Hasher, then mapped to its home
// slot by h_{a,b}(k) = ((a·k + b) mod p) mod m, with p = 2^61 - 1 and a, b
// drawn at construction. Collisions walk home, home+1, … (mod m).
//
// Complexity:
//
//   - Insert/Get/Remove/Contains: expected O(1), worst case O(m) probes.
//   - Len/IsEmpty/Cap: O(1).
//   - Space: O(m).
//
// Notes on implementation choices:
//
//   - Remove leaves a tombstone so probe chains of other keys stay intact.
//   - Insert keeps probing past tombstones until it reaches an empty slot or the
//     key itself, and only then writes into the first free slot it saw. This
//     keeps every key in at most one occupied slot.
//   - With WithGrowth the table rehashes into 2·m+1 slots (fresh a, b) once the
//     load factor exceeds the threshold; without it Insert returns ErrTableFull.
package hashtable

import (
	"fmt"
	"math/rand"
)

// Table is a fixed-capacity (or, opt-in, growing) associative container.
// The zero value is not usable; construct with New or NewWithHasher.
type Table[K comparable, V any] struct {
	slots   []slot[K, V]
	a, b    uint64
	count   int
	hash    Hasher[K]
	rng     *rand.Rand
	maxLoad float64
}

// New returns an empty table with capacity slots and the DefaultHasher.
//
// Errors:
//   - ErrBadCapacity if capacity < 1.
//
// Complexity: O(capacity).
func New[K comparable, V any](capacity int, opts ...Option) (*Table[K, V], error) {
	return NewWithHasher[K, V](capacity, DefaultHasher[K](), opts...)
}

// NewWithHasher is New with a caller-supplied key reducer.
func NewWithHasher[K comparable, V any](capacity int, h Hasher[K], opts ...Option) (*Table[K, V], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadCapacity, capacity)
	}
	if h == nil {
		h = DefaultHasher[K]()
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	r := cfg.Rand
	if r == nil {
		r = rngFromSeed(cfg.Seed)
	}

	t := &Table[K, V]{
		slots:   make([]slot[K, V], capacity),
		hash:    h,
		rng:     r,
		maxLoad: cfg.MaxLoad,
	}
	t.a, t.b = drawCoefficients(r)

	return t, nil
}

// MustNew is like New but panics on error.
func MustNew[K comparable, V any](capacity int, opts ...Option) *Table[K, V] {
	t, err := New[K, V](capacity, opts...)
	if err != nil {
		panic(err)
	}

	return t
}

// Len returns the number of live entries.
func (t *Table[K, V]) Len() int { return t.count }

// IsEmpty reports whether Len() == 0.
func (t *Table[K, V]) IsEmpty() bool { return t.count == 0 }

// Cap returns the current number of slots.
func (t *Table[K, V]) Cap() int { return len(t.slots) }

// home returns the first slot of key's probe sequence.
func (t *Table[K, V]) home(key K) int {
	return universal(t.a, t.b, t.hash(key), len(t.slots))
}

// lookup probes for key and returns its slot index, or -1.
// The walk stops at an empty slot or after a full cycle of m probes.
func (t *Table[K, V]) lookup(key K) int {
	m := len(t.slots)
	i := t.home(key)
	for probes := 0; probes < m; probes++ {
		s := &t.slots[i]
		switch s.state {
		case slotEmpty:
			return -1
		case slotOccupied:
			if s.key == key {
				return i
			}
		}
		// tombstone or foreign key: keep probing
		i++
		if i == m {
			i = 0
		}
	}

	return -1
}

// Insert stores value under key, overwriting any previous value.
//
// Behavior:
//   - Existing key: value replaced in place, Len() unchanged.
//   - New key: written into the first empty or tombstone slot on its probe
//     sequence, Len() incremented.
//
// Errors:
//   - ErrTableFull if no free slot exists within m probes (fixed capacity only).
//
// Complexity: expected O(1), worst O(m); O(m) amortised rehash with growth.
func (t *Table[K, V]) Insert(key K, value V) error {
	if err := t.insert(key, value); err != nil {
		return err
	}
	if t.maxLoad > 0 && float64(t.count) > t.maxLoad*float64(len(t.slots)) {
		t.grow()
	}

	return nil
}

func (t *Table[K, V]) insert(key K, value V) error {
	m := len(t.slots)
	i := t.home(key)
	free := -1
probe:
	for probes := 0; probes < m; probes++ {
		s := &t.slots[i]
		switch s.state {
		case slotEmpty:
			if free < 0 {
				free = i
			}
			// an empty slot ends the key's chain: it is not stored further on
			break probe
		case slotTombstone:
			if free < 0 {
				free = i
			}
		case slotOccupied:
			if s.key == key {
				s.value = value
				return nil
			}
		}
		i++
		if i == m {
			i = 0
		}
	}

	if free < 0 {
		if t.maxLoad > 0 {
			t.grow()
			return t.insert(key, value)
		}
		return fmt.Errorf("%w: %d of %d slots occupied", ErrTableFull, t.count, m)
	}

	t.slots[free] = slot[K, V]{state: slotOccupied, key: key, value: value}
	t.count++

	return nil
}

// Get returns the value stored under key.
//
// Errors:
//   - ErrKeyNotFound if key is absent.
func (t *Table[K, V]) Get(key K) (V, error) {
	i := t.lookup(key)
	if i < 0 {
		var zero V
		return zero, ErrKeyNotFound
	}

	return t.slots[i].value, nil
}

// GetRef returns a pointer to the value stored under key so it can be
// modified in place. The pointer is invalidated by the next Insert on a
// growing table (a rehash moves every slot).
//
// Errors:
//   - ErrKeyNotFound if key is absent.
func (t *Table[K, V]) GetRef(key K) (*V, error) {
	i := t.lookup(key)
	if i < 0 {
		return nil, ErrKeyNotFound
	}

	return &t.slots[i].value, nil
}

// Contains reports whether key is present.
func (t *Table[K, V]) Contains(key K) bool {
	return t.lookup(key) >= 0
}

// Remove deletes key, leaving a tombstone in its slot.
//
// Errors:
//   - ErrKeyNotFound if key is absent.
func (t *Table[K, V]) Remove(key K) error {
	i := t.lookup(key)
	if i < 0 {
		return ErrKeyNotFound
	}
	t.slots[i] = slot[K, V]{state: slotTombstone}
	t.count--

	return nil
}

// Range calls fn for every live entry in slot order until fn returns false.
// The table must not be mutated during Range.
func (t *Table[K, V]) Range(fn func(key K, value V) bool) {
	for i := range t.slots {
		s := &t.slots[i]
		if s.state != slotOccupied {
			continue
		}
		if !fn(s.key, s.value) {
			return
		}
	}
}

// grow rehashes every live entry into 2·m+1 slots under fresh coefficients.
// Tombstones are dropped.
func (t *Table[K, V]) grow() {
	old := t.slots
	t.slots = make([]slot[K, V], 2*len(old)+1)
	t.a, t.b = drawCoefficients(t.rng)
	t.count = 0

	for i := range old {
		if old[i].state != slotOccupied {
			continue
		}
		// cannot fail: the new table has more free slots than live entries
		_ = t.insert(old[i].key, old[i].value)
	}
}
