package decoder_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/lo568los/HQEC-Tesseract/decoder"
)

// BenchmarkErasureRate measures one noise point on the radius-1 code
// (20 boundary qubits), the smallest code with non-trivial rank work.
func BenchmarkErasureRate(b *testing.B) {
	batch := newBatch(b, 1)
	backend := decoder.ErasureBackend{}
	noise := decoder.Erasure{Prob: 0.3}
	rng := rand.New(rand.NewSource(1))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := backend.Rate(context.Background(), batch, noise, 10, rng); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkDepolarizingRate covers the exact coset-sum path at radius 0
// and the greedy-climb path at radius 1 (19 generators > default limit).
func BenchmarkDepolarizingRate(b *testing.B) {
	noise := decoder.Depolarizing{Prob: 0.1, RX: 1.0 / 3, RY: 1.0 / 3, RZ: 1.0 / 3}

	for _, bc := range []struct {
		name   string
		radius int
	}{
		{"exact/R=0", 0},
		{"greedy/R=1", 1},
	} {
		b.Run(bc.name, func(b *testing.B) {
			batch := newBatch(b, bc.radius)
			backend := decoder.DepolarizingBackend{}
			rng := rand.New(rand.NewSource(1))

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := backend.Rate(context.Background(), batch, noise, 10, rng); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
