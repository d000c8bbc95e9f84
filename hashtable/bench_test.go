package hashtable_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/pathfinder/hashtable"
)

// BenchmarkInsert measures inserts into a table kept at ~50% load.
func BenchmarkInsert(b *testing.B) {
	const n = 1 << 12
	keys := make([]string, n)
	for i := range keys {
		keys[i] = "k" + strconv.Itoa(i)
	}
	var t *hashtable.Table[string, int]
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if i%n == 0 {
			t = hashtable.MustNew[string, int](2*n+1, hashtable.WithSeed(1))
		}
		_ = t.Insert(keys[i%n], i)
	}
}

// BenchmarkGet measures hits on a half-full table.
func BenchmarkGet(b *testing.B) {
	const n = 1 << 12
	t := hashtable.MustNew[int, int](2*n+1, hashtable.WithSeed(1))
	for i := 0; i < n; i++ {
		_ = t.Insert(i, i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = t.Get(i % n)
	}
}
