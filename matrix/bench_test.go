// Package matrix_test provides benchmarks for the kernels on the hot path of
// a particle update: 2×2 × 2×N products, 2×N additions and row broadcasts.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/particles/matrix"
)

// benchCols are typical vertex counts per particle.
var benchCols = []int{25, 50, 500}

// sinks to defeat dead-code elimination
var sinkD *matrix.Dense

func BenchmarkMulRotation(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchCols {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			p := MustDense(b, 2, n)
			RandomFill(b, p, 1337)
			r := matrix.NewRotation(0.01)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(r, p)
				if err != nil {
					b.Fatal(err)
				}
				sinkD = m
			}
		})
	}
}

func BenchmarkAddTranslation(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchCols {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			p := MustDense(b, 2, n)
			RandomFill(b, p, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				tr, err := matrix.NewTranslation(1, -1, n)
				if err != nil {
					b.Fatal(err)
				}
				m, err := matrix.Add(tr, p)
				if err != nil {
					b.Fatal(err)
				}
				sinkD = m
			}
		})
	}
}

func BenchmarkBroadcastAddRows(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchCols {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			p := MustDense(b, 2, n)
			RandomFill(b, p, 11)
			shift := []float64{1, -1}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.BroadcastAddRows(p, shift)
				if err != nil {
					b.Fatal(err)
				}
				sinkD = m
			}
		})
	}
}
