package linalg

// Vector is a fixed 2-vector over any ring element type R.
type Vector[R Elem[R]] struct {
	X0, X1 R
}

// NewVector builds a vector from its two entries.
func NewVector[R Elem[R]](x0, x1 R) Vector[R] { return Vector[R]{X0: x0, X1: x1} }

// Add returns v + w entrywise.
func (v Vector[R]) Add(w Vector[R]) Vector[R] { return NewVector(v.X0.Add(w.X0), v.X1.Add(w.X1)) }

// Sub returns v - w entrywise.
func (v Vector[R]) Sub(w Vector[R]) Vector[R] { return NewVector(v.X0.Sub(w.X0), v.X1.Sub(w.X1)) }

// Equal reports whether v and w are entrywise equal.
func (v Vector[R]) Equal(w Vector[R]) bool { return v.X0.Equal(w.X0) && v.X1.Equal(w.X1) }

// MulVec returns m*v.
func MulVec[R Elem[R]](m Matrix[R], v Vector[R]) Vector[R] {
	return NewVector(
		m.M00.Mul(v.X0).Add(m.M01.Mul(v.X1)),
		m.M10.Mul(v.X0).Add(m.M11.Mul(v.X1)),
	)
}
