package linalg

// sqrt2ConjElem is the subset of ring types that carry a sqrt2-conjugate
// (Adj2), separate from Elem so that matrices over rings without a well
// defined sqrt2-conjugate (none currently, but kept narrow on purpose)
// don't need to implement it.
type sqrt2ConjElem[T any] interface {
	Elem[T]
	Adj2() T
}

// Adj2 returns the entrywise sqrt2-conjugate of m, used to move a grid
// operator from D[sqrt2] into its "starred" dual during the region-solving
// step of the 2D grid problem.
func Adj2[R sqrt2ConjElem[R]](m Matrix[R]) Matrix[R] {
	return New(m.M00.Adj2(), m.M01.Adj2(), m.M10.Adj2(), m.M11.Adj2())
}

// complexConjElem is the subset of ring types that carry a complex
// conjugate (Conj), used for MCD2-valued unitaries.
type complexConjElem[T any] interface {
	Elem[T]
	Conj() T
}

// ConjTranspose returns the Hermitian adjoint (conjugate transpose) of m.
func ConjTranspose[R complexConjElem[R]](m Matrix[R]) Matrix[R] {
	return New(m.M00.Conj(), m.M10.Conj(), m.M01.Conj(), m.M11.Conj())
}
