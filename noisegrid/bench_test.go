package noisegrid_test

import (
	"testing"

	"github.com/lo568los/HQEC-Tesseract/noisegrid"
)

func BenchmarkRange(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = noisegrid.Range(0.0, 1.0, 1e-4)
	}
}

func BenchmarkLinspace(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = noisegrid.Linspace(0.0, 1.0, 10000)
	}
}
