package happy

// SetupZeroRate builds the zero-rate HaPPY code at the given radius: a
// central pentagon carrying the single logical leg, surrounded by `radius`
// layers of pentagons whose bulk legs are fixed.
//
// Sizes: radius 0 -> 1 tile / 5 qubits, radius 1 -> 6 tiles / 20 qubits,
// radius 2 -> 26 tiles / 80 qubits (each outer tile contributes four
// outward legs).
//
// Complexity: O(tiles). Returns ErrInvalidRadius for radius < 0.
func SetupZeroRate(radius int) (*TensorList, error) {
	return setup(ZeroRate, radius)
}

// SetupMaxRate builds the max-rate HaPPY code at the given radius: the same
// network as SetupZeroRate but with every tile keeping its logical leg, so
// k equals the tile count.
//
// Complexity: O(tiles). Returns ErrInvalidRadius for radius < 0.
func SetupMaxRate(radius int) (*TensorList, error) {
	return setup(MaxRate, radius)
}

// setup grows the layered pentagon network. The central tile exposes all
// five planar legs outward; each deeper tile bonds leg 0 to its parent and
// exposes the remaining four. Legs of the outermost layer stay open and
// become the physical qubits.
func setup(v Variant, radius int) (*TensorList, error) {
	if radius < 0 {
		return nil, ErrInvalidRadius
	}

	tl := &TensorList{Variant: v, Radius: radius}

	nextLeg := 0
	newTensor := func(layer int) *Tensor {
		t := Tensor{ID: len(tl.Tensors), Layer: layer, Logical: -1}
		for i := range t.Planar {
			t.Planar[i] = nextLeg
			nextLeg++
		}
		if v == MaxRate || t.ID == 0 {
			t.Logical = tl.numLogical
			tl.numLogical++
		}
		tl.Tensors = append(tl.Tensors, t)
		return &tl.Tensors[len(tl.Tensors)-1]
	}

	central := newTensor(0)
	frontier := []int{central.ID}

	for layer := 1; layer <= radius; layer++ {
		var next []int
		for _, pid := range frontier {
			parent := tl.Tensors[pid]
			// Outward legs: all five for the central tile, legs 1..4 otherwise.
			first := 1
			if parent.Layer == 0 {
				first = 0
			}
			for i := first; i < pentagonLegs; i++ {
				child := newTensor(layer)
				tl.bonds = append(tl.bonds, [2]int{parent.Planar[i], child.Planar[0]})
				next = append(next, child.ID)
			}
		}
		frontier = next
	}

	tl.numPlanar = nextLeg

	// Open planar legs, ascending global order, define the qubit indexing.
	bonded := make(map[int]bool, 2*len(tl.bonds))
	for _, b := range tl.bonds {
		bonded[b[0]] = true
		bonded[b[1]] = true
	}
	for leg := 0; leg < tl.numPlanar; leg++ {
		if !bonded[leg] {
			tl.boundary = append(tl.boundary, leg)
		}
	}
	return tl, nil
}
