package gate

// Normalize respells g: the gate word is split into maximal runs of
// Clifford atoms separated by single T atoms, and each run is replaced by
// its canonical (breadth-first shortest) representative word from the C1
// database. T atoms are neither moved nor merged (the T-move table is not
// consulted), so the result is not the Matsumoto-Amano normal form: it
// never changes the number of T atoms, only how the Clifford parts between
// them are spelled.
func (g Gate) Normalize() Gate {
	var out []Atom
	run := NewGate()
	flushRun := func() {
		if run.Len() == 0 {
			return
		}
		canon, ok := lookupCliffordGate(run.Mat())
		if !ok {
			panic("gate: Normalize found a Clifford-only run that is not in the C1 database")
		}
		out = append(out, canon.Atoms()...)
		run = NewGate()
	}
	for _, a := range g.atoms {
		if a == AtomT {
			flushRun()
			out = append(out, AtomT)
			continue
		}
		run = run.Append(a)
	}
	flushRun()
	return Gate{atoms: out}
}
