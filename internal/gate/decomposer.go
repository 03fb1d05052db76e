package gate

import (
	"sync"

	"github.com/quantumlang/gridsynth/internal/ring"
)

// sde returns the smallest denominator exponent of a D[sqrt2] value: the
// smallest k such that x*sqrt2^k lies in Z[sqrt2]. This tracks how far an
// exact unitary still is from the identity under repeated multiplication by
// H*T^-1*H, and is the descent metric Algorithm 1 of 1206.5236 runs on.
func sde(x ring.D2) int32 {
	ret := 2 * x.A.DenExp()
	if v := 2*x.B.DenExp() - 1; v > ret {
		ret = v
	}
	if ret < 0 {
		ret = 0
	}
	return ret
}

// stepGate is H * T^-1 * H, the conjugated inverse-T step used to reduce a
// unitary's sde by exactly one per application, one of four possible phase
// corrections per step (see Decompose).
var stepGate = MatH.Mul(MatTDag).Mul(MatH)

// UnitaryDecomposer turns an exact 2x2 unitary over D[sqrt2][i] into a
// Clifford+T gate word. It holds an S3 table: every matrix with sde <= 3
// along with its minimal gate word, the base case the sde-descent loop
// bottoms out at.
type UnitaryDecomposer struct {
	s3 []s3Entry
}

type s3Entry struct {
	mat  Mat
	gate Gate
}

var (
	sharedS3     []s3Entry
	sharedS3Once sync.Once
)

// NewUnitaryDecomposer returns a decomposer backed by the shared S3 table,
// computed once per process and reused by every subsequent call -- mirroring
// the teacher pattern of lazily building expensive static tables once
// (see the C1 database in cliffordtable.go) instead of per-instance.
func NewUnitaryDecomposer() *UnitaryDecomposer {
	sharedS3Once.Do(func() {
		if cached, ok := loadS3Cache(); ok {
			sharedS3 = cached
			return
		}
		sharedS3 = buildS3Table()
		storeS3Cache(sharedS3)
	})
	return &UnitaryDecomposer{s3: sharedS3}
}

const (
	maxSDEDuringSearch = 4
	maxSearchDepth     = 30
)

// buildS3Table performs the same breadth-first search InitializeStorageImpl
// runs: starting from the identity, repeatedly left-multiply by H and T,
// keeping every matrix reached with sde <= 3, and bounding the frontier at
// sde <= 4 so the search stays finite.
func buildS3Table() []s3Entry {
	type item struct {
		mat  Mat
		gate Gate
	}
	table := []s3Entry{{mat: MatI, gate: NewGate()}}
	cache := []Mat{MatI}
	contains := func(m Mat) bool {
		for _, c := range cache {
			if c.Equal(m) {
				return true
			}
		}
		return false
	}

	frontier := []item{{mat: MatI, gate: NewGate()}}
	for depth := 0; depth < maxSearchDepth && len(frontier) > 0; depth++ {
		var next []item
		for _, cur := range frontier {
			for _, a := range []Atom{AtomH, AtomT} {
				m := a.Mat().Mul(cur.mat)
				if contains(m) {
					continue
				}
				g := cur.gate.Append(a)
				s := sde(m.Get(0, 0).Norm())
				if s <= maxSDEDuringSearch {
					cache = append(cache, m)
					next = append(next, item{mat: m, gate: g})
				}
				if s <= 3 {
					table = append(table, s3Entry{mat: m, gate: g})
				}
			}
		}
		frontier = next
	}
	return table
}

// lookUpS3 returns the canonical gate word for a matrix with sde <= 3,
// panicking if no entry matches -- an sde-3 matrix that misses the table
// means the descent loop above it made a wrong choice, a broken invariant
// rather than a recoverable condition.
func (d *UnitaryDecomposer) lookUpS3(m Mat) Gate {
	for _, e := range d.s3 {
		if m.Equal(e.mat) {
			return e.gate
		}
	}
	panic("gate: cannot find unitary for input matrix in the S3 database")
}

// Decompose turns an exact unitary into a Clifford+T gate word via
// sde-descent: while the sde of the top-left entry exceeds 3, find which of
// the four H*T^-k*H-style corrections (k in 0..3) reduces it by exactly
// one, put the matching step (H then k T atoms, matrix T^k*H) in front of
// the steps recorded so far, and recurse. Once sde <= 3, the direct S3
// lookup's word goes first, and the result gets a Normalize pass.
func (d *UnitaryDecomposer) Decompose(input Mat) Gate {
	unitary := input
	s := sde(unitary.Get(0, 0).Norm())
	output := NewGate()

	for s > 3 {
		tmp := MatH.Mul(unitary)
		found := false
		for i := 0; i < 4; i++ {
			tmpS := sde(tmp.Get(0, 0).Norm())
			if tmpS == s-1 {
				s = tmpS
				step := NewGate(AtomH)
				for j := 0; j < i; j++ {
					step = step.Append(AtomT)
				}
				output = step.Mul(output)
				unitary = tmp
				found = true
				break
			}
			tmp.MulFromLeft(stepGate)
		}
		if !found {
			panic("gate: sde-descent could not find a reducing step; input was not a valid exact unitary")
		}
	}

	output = d.lookUpS3(unitary).Mul(output)
	return output.Normalize()
}
