// SPDX-License-Identifier: MIT
// Package happy: code-description types shared by setup and push.
package happy

import "errors"

var (
	// ErrInvalidRadius is returned for a negative code radius.
	ErrInvalidRadius = errors.New("happy: radius must be >= 0")

	// ErrNilTensorList is returned when Push receives a nil code description.
	ErrNilTensorList = errors.New("happy: nil tensor list")

	// ErrPushInconsistent signals that contraction produced a group from
	// which a requested logical generator cannot be assembled. It indicates
	// a malformed tensor network, not user error.
	ErrPushInconsistent = errors.New("happy: inconsistent contraction")
)

// Variant selects how many logical legs the network keeps open.
type Variant int

const (
	// ZeroRate keeps a single logical leg on the central tensor; all other
	// tensors have their bulk leg fixed (one protected qubit total).
	ZeroRate Variant = iota

	// MaxRate keeps one logical leg per tensor (one protected qubit per tile).
	MaxRate
)

// String implements fmt.Stringer for log lines and test output.
func (v Variant) String() string {
	if v == MaxRate {
		return "max-rate"
	}
	return "zero-rate"
}

// pentagonLegs is the planar leg count of one tile: the five-qubit code's
// five physical legs.
const pentagonLegs = 5

// Tensor is one pentagon tile of the network.
type Tensor struct {
	// ID is the tensor's index in TensorList.Tensors.
	ID int

	// Layer is the tile's distance from the central tensor (0 = central).
	Layer int

	// Planar holds the tile's five global planar-leg IDs, in local leg
	// order. Leg 0 is the inward bond for every non-central tensor.
	Planar [pentagonLegs]int

	// Logical is the tile's logical-qubit index, or -1 when the bulk leg
	// is fixed.
	Logical int
}

// TensorList is an immutable description of one code instance: the tile
// set, the bond pairing of planar legs, and which legs remain open. It is
// the opaque handle the sweep constructs once per radius and shares
// read-only with every decoder trial.
type TensorList struct {
	Variant Variant
	Radius  int

	// Tensors in construction order: central tile first, then layer by layer.
	Tensors []Tensor

	// bonds pairs global planar-leg IDs contracted together.
	bonds [][2]int

	// boundary lists the open planar legs in ascending global-leg order;
	// position in this slice is the physical qubit index.
	boundary []int

	// numPlanar is the total number of planar legs (bonded + boundary).
	numPlanar int

	// numLogical is the number of open logical legs (the code's k).
	numLogical int
}

// NumQubits returns the physical (boundary) qubit count n.
func (t *TensorList) NumQubits() int { return len(t.boundary) }

// NumLogical returns the protected qubit count k.
func (t *TensorList) NumLogical() int { return t.numLogical }

// NumTensors returns the tile count.
func (t *TensorList) NumTensors() int { return len(t.Tensors) }
