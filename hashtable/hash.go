package hashtable

import (
	"encoding/binary"
	"math"
	"math/bits"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// Hasher reduces a key of any type to a 64-bit integer. It must be
// deterministic and consistent with ==: equal keys hash equally.
type Hasher[K any] func(key K) uint64

// Hashable is implemented by key types that reduce themselves to 64 bits.
// DefaultHasher prefers it over the built-in encodings.
type Hashable interface {
	Hash64() uint64
}

// DefaultHasher returns the fixed key reducer used by New.
//
// Strings and integer/float/bool kinds are hashed with xxhash over a
// canonical little-endian encoding; types implementing Hashable hash
// themselves. Pointers hash by address. Structs, arrays and interfaces are
// walked field by field with the same scalar encodings, so keys equal under
// == always hash alike.
func DefaultHasher[K comparable]() Hasher[K] {
	return func(key K) uint64 {
		return hashAny(any(key))
	}
}

// hashAny dispatches on the dynamic type of v.
func hashAny(v any) uint64 {
	var buf [8]byte
	if k, ok := v.(Hashable); ok && reflect.TypeOf(v).Kind() != reflect.Pointer {
		return k.Hash64()
	}
	switch k := v.(type) {
	case string:
		return xxhash.Sum64String(k)
	case int:
		binary.LittleEndian.PutUint64(buf[:], uint64(k))
	case int8:
		binary.LittleEndian.PutUint64(buf[:], uint64(k))
	case int16:
		binary.LittleEndian.PutUint64(buf[:], uint64(k))
	case int32:
		binary.LittleEndian.PutUint64(buf[:], uint64(k))
	case int64:
		binary.LittleEndian.PutUint64(buf[:], uint64(k))
	case uint:
		binary.LittleEndian.PutUint64(buf[:], uint64(k))
	case uint8:
		binary.LittleEndian.PutUint64(buf[:], uint64(k))
	case uint16:
		binary.LittleEndian.PutUint64(buf[:], uint64(k))
	case uint32:
		binary.LittleEndian.PutUint64(buf[:], uint64(k))
	case uint64:
		binary.LittleEndian.PutUint64(buf[:], k)
	case uintptr:
		binary.LittleEndian.PutUint64(buf[:], uint64(k))
	case float32:
		if k == 0 {
			k = 0 // -0 == +0, so both must hash alike
		}
		binary.LittleEndian.PutUint64(buf[:], uint64(math.Float32bits(k)))
	case float64:
		if k == 0 {
			k = 0
		}
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(k))
	case bool:
		if k {
			buf[0] = 1
		}
	default:
		d := xxhash.New()
		writeValue(d, reflect.ValueOf(v))
		return d.Sum64()
	}

	return xxhash.Sum64(buf[:])
}

// writeValue feeds a canonical encoding of v into d. Only kinds that can
// appear in a comparable value are encoded.
func writeValue(d *xxhash.Digest, v reflect.Value) {
	var buf [8]byte
	word := func(u uint64) {
		binary.LittleEndian.PutUint64(buf[:], u)
		_, _ = d.Write(buf[:])
	}
	float := func(f float64) {
		if f == 0 {
			f = 0 // -0 == +0
		}
		word(math.Float64bits(f))
	}

	switch v.Kind() {
	case reflect.Invalid:
		// nil interface
		word(0)
	case reflect.Bool:
		if v.Bool() {
			word(1)
		} else {
			word(0)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		word(uint64(v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		word(v.Uint())
	case reflect.Float32, reflect.Float64:
		float(v.Float())
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		float(real(c))
		float(imag(c))
	case reflect.String:
		// length prefix keeps adjacent string fields unambiguous
		word(uint64(v.Len()))
		_, _ = d.WriteString(v.String())
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		word(uint64(v.Pointer()))
	case reflect.Interface:
		if v.IsNil() {
			word(0)
			return
		}
		writeValue(d, v.Elem())
	case reflect.Struct:
		t := v.Type()
		for i := 0; i < v.NumField(); i++ {
			// == ignores blank fields
			if t.Field(i).Name == "_" {
				continue
			}
			writeValue(d, v.Field(i))
		}
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			writeValue(d, v.Index(i))
		}
	}
}

// universal computes ((a·k + b) mod p) mod m with exact 128-bit arithmetic.
//
// k is first reduced mod p so that a·k < 2^122 and the high word stays
// below p, which bits.Div64 requires.
//
// Complexity: O(1).
func universal(a, b, k uint64, m int) int {
	k %= mersenne61
	hi, lo := bits.Mul64(a, k)
	_, r := bits.Div64(hi, lo, mersenne61)
	r += b
	if r >= mersenne61 {
		r -= mersenne61
	}

	return int(r % uint64(m))
}
