// Package matrix_test provides benchmarks for the compressed storage engine,
// using deterministic random fill via the builder package.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/matlab/builder"
	"github.com/katalvlaran/matlab/matrix"
)

// benchSizes are the square matrix sizes to benchmark.
var benchSizes = []int{128, 512, 2048}

// benchDensity is the fraction of stored entries.
const benchDensity = 0.01

// sinks to defeat dead-code elimination
var (
	sinkC *matrix.Compressed
	sinkD *matrix.Conventional
	sinkV []float64
	sinkF float64
)

func mustRandom(b *testing.B, n int, seed int64, opts ...matrix.Option) *matrix.Compressed {
	b.Helper()
	m, err := builder.RandomSparse(n, n, benchDensity,
		builder.WithSeed(seed), builder.WithUniformValues(-1, 1), builder.WithMatrixOptions(opts...))
	if err != nil {
		b.Fatal(err)
	}

	return m
}

func BenchmarkAt(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := mustRandom(b, n, 1)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				v, err := m.At(i%n, (i*7)%n)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = v
			}
		})
	}
}

func BenchmarkSet(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := mustRandom(b, n, 2)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				// alternate insert and remove on the same coordinate
				if err := m.Set(i%n, (i*13)%n, float64(i&1)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkToConventional(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := mustRandom(b, n, 3)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkD = m.ToConventional()
			}
		})
	}
}

func BenchmarkFromConventional(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			d := mustRandom(b, n, 4).ToConventional()
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.FromConventional(d)
				if err != nil {
					b.Fatal(err)
				}
				sinkC = m
			}
		})
	}
}

func BenchmarkTranspose(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := mustRandom(b, n, 5)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkC = m.Transpose()
			}
		})
	}
}

func BenchmarkAdd(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x, y := mustRandom(b, n, 6), mustRandom(b, n, 7)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Add(x, y)
				if err != nil {
					b.Fatal(err)
				}
				sinkC = m
			}
		})
	}
}

func BenchmarkMulVec(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := mustRandom(b, n, 8)
			x := make([]float64, n)
			for k := range x {
				x[k] = 1
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				y, err := matrix.MulVec(m, x)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = y
			}
		})
	}
}
