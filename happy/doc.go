// Package happy constructs the HaPPY holographic code family and derives
// its stabilizer and logical generators by operator pushing.
//
// 🚀 What is the HaPPY code?
//
//	A stabilizer code built by contracting copies of the six-leg perfect
//	tensor of the five-qubit code across a layered pentagon network. The
//	radius R controls how many layers of pentagons surround the central
//	tile; boundary (uncontracted) legs are the physical qubits.
//
// Two variants:
//   - Zero rate — only the central tensor keeps its logical leg; every
//     outer tensor has that leg fixed, so the code protects one qubit and
//     the rate k/n tends to zero with R.
//   - Max rate  — every tensor keeps its logical leg, one protected qubit
//     per tile.
//
// ✨ What Push does:
//
//	Contraction is carried out entirely in the binary-symplectic picture:
//	stack every tensor's local generators, keep exactly the combinations
//	whose action matches across each contracted bond (a GF(2) nullspace),
//	project onto the open legs, then split the resulting group into
//	stabilizers (trivial on all logical legs) and logical X̄/Z̄ operators
//	(single-leg action). Phases are not tracked; see package qec.
//
// ⚙️ Usage:
//
//	code, _ := happy.SetupZeroRate(1)
//	res, _  := happy.Push(code)
//	stabs   := happy.ExtractStabilizers(res)
//	zs, xs  := happy.ExtractLogicals(res)
//
// Complexity: Push is polynomial in the tensor count — one nullspace over
// the stacked generators plus two smaller solves per logical qubit.
package happy
