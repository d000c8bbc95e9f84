// Package hashtable defines the slot model, sentinel errors and
// configuration options for the open-addressing Table.
package hashtable

import (
	"errors"
	"math/rand"
)

// Sentinel errors returned by Table operations.
var (
	// ErrTableFull indicates that Insert probed every slot without finding
	// a free (empty or tombstone) slot or a slot holding the same key.
	ErrTableFull = errors.New("hashtable: table is full")

	// ErrKeyNotFound indicates that Get, GetRef or Remove did not find the key.
	ErrKeyNotFound = errors.New("hashtable: key not found")

	// ErrBadCapacity indicates a capacity smaller than one slot.
	ErrBadCapacity = errors.New("hashtable: capacity must be positive")

	// ErrBadLoadFactor indicates a growth threshold outside (0, 1).
	ErrBadLoadFactor = errors.New("hashtable: max load factor must be in (0, 1)")
)

// DefaultCapacity is the slot count used by callers that do not size the
// table themselves. It is prime so that the final "mod m" spreads well.
const DefaultCapacity = 101

// mersenne61 is the prime modulus p = 2^61 - 1 of the universal family.
const mersenne61 uint64 = 1<<61 - 1

// slotState tags a slot as never used, deleted or in use.
type slotState uint8

const (
	slotEmpty     slotState = iota // never used; terminates lookups
	slotTombstone                  // deleted; skipped by lookups, reusable by inserts
	slotOccupied                   // holds a live key/value pair
)

// slot is one cell of the backing array.
type slot[K comparable, V any] struct {
	state slotState
	key   K
	value V
}

// Options configures a Table at construction time.
//
// Rand     – random source for the universal-hash coefficients a and b.
//
//	If nil, a source is built from Seed.
//
// Seed     – seed used when Rand is nil; 0 means "seed from the clock".
// MaxLoad  – if > 0, the table grows (rehash into 2·m+1 slots with fresh
//
//	coefficients) once Len()/Cap() exceeds MaxLoad. 0 keeps the
//	capacity fixed and Insert reports ErrTableFull instead.
type Options struct {
	Rand    *rand.Rand
	Seed    int64
	MaxLoad float64
}

// Option represents a functional option for configuring a Table.
type Option func(*Options)

// DefaultOptions returns the fixed-capacity, clock-seeded configuration.
func DefaultOptions() Options {
	return Options{
		Rand:    nil,
		Seed:    0,
		MaxLoad: 0,
	}
}

// WithSeed makes the choice of a and b reproducible.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithRand injects the random source used to draw a and b (and the fresh
// coefficients chosen on every rehash). The Table takes ownership of r.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		o.Rand = r
	}
}

// WithGrowth enables dynamic growth once the load factor exceeds maxLoad.
// Panics with ErrBadLoadFactor when maxLoad is not in (0, 1).
func WithGrowth(maxLoad float64) Option {
	return func(o *Options) {
		if !(maxLoad > 0 && maxLoad < 1) {
			panic(ErrBadLoadFactor.Error())
		}
		o.MaxLoad = maxLoad
	}
}
