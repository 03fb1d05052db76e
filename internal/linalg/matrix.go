// Package linalg provides small, fixed 2x2 matrices and 2-vectors generic
// over any of the exact ring types in internal/ring, plus float/complex
// casts used by the approximate geometry layer.
package linalg

// Elem is the minimal algebraic interface a ring element needs to support
// for 2x2 matrix arithmetic: an additive group with multiplication and
// structural equality.
type Elem[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Neg() T
	Equal(T) bool
}

// Matrix is a fixed 2x2 matrix over any ring element type R, stored
// row-major.
type Matrix[R Elem[R]] struct {
	M00, M01, M10, M11 R
}

// New builds a matrix from its four entries.
func New[R Elem[R]](m00, m01, m10, m11 R) Matrix[R] {
	return Matrix[R]{M00: m00, M01: m01, M10: m10, M11: m11}
}

// Get returns entry (i, j) for i, j in {0, 1}.
func (m Matrix[R]) Get(i, j int) R {
	switch {
	case i == 0 && j == 0:
		return m.M00
	case i == 0 && j == 1:
		return m.M01
	case i == 1 && j == 0:
		return m.M10
	default:
		return m.M11
	}
}

// Add returns m + n entrywise.
func (m Matrix[R]) Add(n Matrix[R]) Matrix[R] {
	return New(m.M00.Add(n.M00), m.M01.Add(n.M01), m.M10.Add(n.M10), m.M11.Add(n.M11))
}

// Sub returns m - n entrywise.
func (m Matrix[R]) Sub(n Matrix[R]) Matrix[R] {
	return New(m.M00.Sub(n.M00), m.M01.Sub(n.M01), m.M10.Sub(n.M10), m.M11.Sub(n.M11))
}

// Mul returns the matrix product m*n.
func (m Matrix[R]) Mul(n Matrix[R]) Matrix[R] {
	return New(
		m.M00.Mul(n.M00).Add(m.M01.Mul(n.M10)),
		m.M00.Mul(n.M01).Add(m.M01.Mul(n.M11)),
		m.M10.Mul(n.M00).Add(m.M11.Mul(n.M10)),
		m.M10.Mul(n.M01).Add(m.M11.Mul(n.M11)),
	)
}

// MulFromLeft overwrites m with n*m. This mirrors a step used repeatedly by
// the unitary decomposer's descent loop, where rebuilding the matrix value
// on every trial step would be wasteful.
func (m *Matrix[R]) MulFromLeft(n Matrix[R]) {
	*m = n.Mul(*m)
}

// Det returns the determinant m00*m11 - m01*m10.
func (m Matrix[R]) Det() R {
	return m.M00.Mul(m.M11).Sub(m.M01.Mul(m.M10))
}

// Transpose returns the transpose of m.
func (m Matrix[R]) Transpose() Matrix[R] {
	return New(m.M00, m.M10, m.M01, m.M11)
}

// Equal reports whether m and n are entrywise equal.
func (m Matrix[R]) Equal(n Matrix[R]) bool {
	return m.M00.Equal(n.M00) && m.M01.Equal(n.M01) && m.M10.Equal(n.M10) && m.M11.Equal(n.M11)
}

// Inv returns the inverse of m, valid only when det(m) is a unit equal to
// either "one" or its negation -- which is all that ever arises for the
// grid operators (gridop.Inv) this module inverts. Any other
// determinant indicates a broken invariant upstream and panics rather than
// returning a silently wrong answer.
func (m Matrix[R]) Inv(one R) Matrix[R] {
	det := m.Det()
	negOne := one.Neg()
	var invDet R
	switch {
	case det.Equal(one):
		invDet = one
	case det.Equal(negOne):
		invDet = negOne
	default:
		panic("linalg: Inv called on a matrix whose determinant is not a unit (+-1)")
	}
	adj := New(m.M11, m.M01.Neg(), m.M10.Neg(), m.M00)
	return New(
		invDet.Mul(adj.M00), invDet.Mul(adj.M01),
		invDet.Mul(adj.M10), invDet.Mul(adj.M11),
	)
}
