package gate

// cliffordEntry pairs a C1 matrix with its canonical (BFS-shortest) gate
// word representative.
type cliffordEntry struct {
	mat  Mat
	gate Gate
}

// cliffordDatabase holds the 192-element C1 = C_T union H*C_T union S*H*C_T
// database that Normalize looks Clifford runs up in, plus the T-move table
// that records how a single T atom commutes leftward through a C_T element
// (built and kept here; Normalize does not use it).
type cliffordDatabase struct {
	entries  []cliffordEntry // len 192; [0,64) is C_T, [64,128) is H*C_T, [128,192) is S*H*C_T
	moveNext []int           // len 64; moveNext[i] = index j such that C_i * T = T * C_j
}

var globalCliffordDB = buildCliffordDatabase()

// buildCliffordDatabase runs a breadth-first search from the identity over
// the generators {S, X, W} to enumerate C_T (the 64-element subgroup of the
// Clifford+phase group generated by S, X and the phase gate W), then
// extends it to the full 192-element C1 database by left-multiplying by H
// and S*H, and finally computes the T-move table.
func buildCliffordDatabase() *cliffordDatabase {
	type item struct {
		mat  Mat
		gate Gate
	}
	cT := []item{{mat: MatI, gate: NewGate()}}
	queue := []item{cT[0]}
	generators := []Atom{AtomS, AtomX, AtomW}

	contains := func(m Mat) bool {
		for _, e := range cT {
			if e.mat.Equal(m) {
				return true
			}
		}
		return false
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, g := range generators {
			next := g.Mat().Mul(cur.mat)
			if contains(next) {
				continue
			}
			entry := item{mat: next, gate: cur.gate.Append(g)}
			cT = append(cT, entry)
			queue = append(queue, entry)
		}
	}

	entries := make([]cliffordEntry, 0, 3*len(cT))
	for _, e := range cT {
		entries = append(entries, cliffordEntry{mat: e.mat, gate: e.gate})
	}
	for _, e := range cT {
		entries = append(entries, cliffordEntry{mat: MatH.Mul(e.mat), gate: e.gate.Append(AtomH)})
	}
	for _, e := range cT {
		sh := MatS.Mul(MatH)
		entries = append(entries, cliffordEntry{
			mat:  sh.Mul(e.mat),
			gate: e.gate.Append(AtomH).Append(AtomS),
		})
	}

	db := &cliffordDatabase{entries: entries}
	db.moveNext = make([]int, len(cT))
	for i, e := range cT {
		moved := MatTDag.Mul(e.mat).Mul(MatT)
		idx := db.searchIndex(moved)
		if idx < 0 {
			panic("gate: T-move table construction failed to find a match in C_T")
		}
		db.moveNext[i] = idx
	}
	return db
}

// searchIndex returns the index of the database entry whose matrix equals
// m, or -1 if none matches.
func (db *cliffordDatabase) searchIndex(m Mat) int {
	for i, e := range db.entries {
		if e.mat.Equal(m) {
			return i
		}
	}
	return -1
}

// lookupCliffordGate returns the canonical gate word for an exact Clifford
// matrix, or ok=false if m is not a C1 element.
func lookupCliffordGate(m Mat) (Gate, bool) {
	idx := globalCliffordDB.searchIndex(m)
	if idx < 0 {
		return Gate{}, false
	}
	return globalCliffordDB.entries[idx].gate, true
}
