// Package gate implements the Clifford+T gate algebra, a Clifford-run
// normalization against the C1 database, and the exact-unitary decomposer
// (Algorithm 1 of 1206.5236) that turns a 2x2 unitary over D[sqrt2][i] into a gate word.
package gate

import (
	"fmt"

	"github.com/quantumlang/gridsynth/internal/linalg"
	"github.com/quantumlang/gridsynth/internal/ring"
)

// Mat is shorthand for the exact 2x2 unitary matrix type every gate in this
// package is defined over.
type Mat = linalg.Matrix[ring.CD2]

// Atom is a single generator of the Clifford+T group.
type Atom int

const (
	AtomI Atom = iota
	AtomH
	AtomS
	AtomT
	AtomX
	AtomY
	AtomZ
	AtomW
)

var atomChars = map[Atom]byte{
	AtomI: 'I', AtomH: 'H', AtomS: 'S', AtomT: 'T',
	AtomX: 'X', AtomY: 'Y', AtomZ: 'Z', AtomW: 'W',
}

var charAtoms = func() map[byte]Atom {
	m := make(map[byte]Atom, len(atomChars))
	for a, c := range atomChars {
		m[c] = a
	}
	return m
}()

// ToChar returns the one-character textual representation of the atom.
func (a Atom) ToChar() byte { return atomChars[a] }

// AtomFromChar parses a single character into an Atom.
func AtomFromChar(c byte) (Atom, error) {
	a, ok := charAtoms[c]
	if !ok {
		return 0, fmt.Errorf("gate: unknown atom character %q", c)
	}
	return a, nil
}

// IsClifford reports whether the atom belongs to the Clifford group (every
// atom except T does).
func (a Atom) IsClifford() bool { return a != AtomT }

// Mat returns the exact unitary matrix of the atom.
func (a Atom) Mat() Mat {
	switch a {
	case AtomI:
		return MatI
	case AtomH:
		return MatH
	case AtomS:
		return MatS
	case AtomT:
		return MatT
	case AtomX:
		return MatX
	case AtomY:
		return MatY
	case AtomZ:
		return MatZ
	case AtomW:
		return MatW
	default:
		panic("gate: unknown atom")
	}
}

func (a Atom) String() string { return string(a.ToChar()) }
