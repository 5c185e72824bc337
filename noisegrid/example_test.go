package noisegrid_test

import (
	"fmt"

	"github.com/lo568los/HQEC-Tesseract/noisegrid"
)

// ExampleRange builds the grid of a typical depolarizing scan: both
// endpoints included, ascending order.
func ExampleRange() {
	grid, _ := noisegrid.Range(0.00, 0.30, 0.05)
	for _, p := range grid {
		fmt.Printf("%.2f ", p)
	}
	fmt.Println()

	// Output:
	// 0.00 0.05 0.10 0.15 0.20 0.25 0.30
}

// ExampleLinspace asks for an exact point count instead of a step.
func ExampleLinspace() {
	grid, _ := noisegrid.Linspace(0.0, 0.5, 6)
	for _, p := range grid {
		fmt.Printf("%.1f ", p)
	}
	fmt.Println()

	// Output:
	// 0.0 0.1 0.2 0.3 0.4 0.5
}
