package report

import (
	"fmt"
	"io"

	"github.com/lo568los/HQEC-Tesseract/sweep"
)

// Console writes the classic scan transcript to an io.Writer: a header
// per radius, then one `p=<value> -> success rate <value>` line per grid
// point. It implements sweep.Reporter.
type Console struct {
	W io.Writer

	// Label names the code family in radius headers, e.g. "zero-rate HaPPY".
	Label string
}

// NewConsole returns a Console reporter writing to w.
func NewConsole(w io.Writer, label string) *Console {
	return &Console{W: w, Label: label}
}

// RadiusStart implements sweep.Reporter.
func (c *Console) RadiusStart(radius, physicalQubits, logicalQubits int) {
	fmt.Fprintf(c.W, "\nScanning %s (R=%d) with %d physical and %d logical qubits:\n",
		c.Label, radius, physicalQubits, logicalQubits)
}

// Point implements sweep.Reporter.
func (c *Console) Point(_ int, p, rate float64) {
	fmt.Fprintf(c.W, "  p=%.2f -> success rate %.3f\n", p, rate)
}

// RadiusDone implements sweep.Reporter.
func (c *Console) RadiusDone(sweep.Result) {}
