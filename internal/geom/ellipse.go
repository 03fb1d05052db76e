// Package geom implements the bounding ellipses the two-dimensional grid
// problem solver uses to bound its search region (1403.2975, section 5):
// quadratic-form ellipses with unit-determinant shape matrices, their
// bounding boxes, and the exponent/normal-form reparametrization used to
// track how skewed an ellipse is after a grid operator has been applied.
package geom

import "github.com/quantumlang/gridsynth/internal/bigreal"

// Ellipse represents the region (x-center)^T D (x-center) <= 1 for a
// symmetric positive-definite matrix D = [[A, B], [B, Dd]] normalized so
// that det(D) = A*Dd - B^2 = 1.
type Ellipse struct {
	A, B, Dd     bigreal.Real
	CenterX, CenterY bigreal.Real
}

// NewEllipse builds an ellipse from its shape matrix entries and center.
func NewEllipse(a, b, dd, cx, cy bigreal.Real) Ellipse {
	return Ellipse{A: a, B: b, Dd: dd, CenterX: cx, CenterY: cy}
}

// FromCircle returns the unit circle centered at the origin: D = I.
func FromCircle() Ellipse {
	one := bigreal.FromInt64(1)
	zero := bigreal.FromInt64(0)
	return NewEllipse(one, zero, one, zero, zero)
}

// FromRectangle returns the (rotated) ellipse that exactly circumscribes
// the rectangle with the given half-width, half-height and rotation angle
// (radians), centered at (cx, cy). This is how the 2D grid solver turns the
// circular-segment region covering an epsilon-ball around Rz(theta) into an
// ellipse it can run FindGridOperator against.
func FromRectangle(halfWidth, halfHeight, angle, cx, cy bigreal.Real) Ellipse {
	c := angle.Cos()
	s := angle.Sin()
	// Shape matrix of an axis-aligned ellipse with semi-axes (halfWidth,
	// halfHeight), rotated by angle: D = R * diag(1/hw^2, 1/hh^2) * R^T,
	// then rescaled so det(D) = 1.
	invHW2 := bigreal.FromInt64(1).Quo(halfWidth.Mul(halfWidth))
	invHH2 := bigreal.FromInt64(1).Quo(halfHeight.Mul(halfHeight))

	a := c.Mul(c).Mul(invHW2).Add(s.Mul(s).Mul(invHH2))
	dd := s.Mul(s).Mul(invHW2).Add(c.Mul(c).Mul(invHH2))
	b := c.Mul(s).Mul(invHW2.Sub(invHH2))

	det := a.Mul(dd).Sub(b.Mul(b))
	scale := bigreal.FromInt64(1).Quo(det.Sqrt())
	return NewEllipse(a.Mul(scale), b.Mul(scale), dd.Mul(scale), cx, cy)
}

// Det returns A*Dd - B^2, which should equal 1 for a well-formed ellipse.
func (e Ellipse) Det() bigreal.Real { return e.A.Mul(e.Dd).Sub(e.B.Mul(e.B)) }

// BBox is an axis-aligned bounding box.
type BBox struct {
	X0, X1, Y0, Y1 bigreal.Real
}

// CalcBBox returns the tightest axis-aligned box containing e. For
// (x-c)^T D (x-c) <= 1 the half-width along x is sqrt(Dd/det(D)) and the
// half-width along y is sqrt(A/det(D)); since e is normalized to det=1
// these reduce to sqrt(Dd) and sqrt(A).
func (e Ellipse) CalcBBox() BBox {
	hw := e.Dd.Sqrt()
	hh := e.A.Sqrt()
	return BBox{
		X0: e.CenterX.Sub(hw), X1: e.CenterX.Add(hw),
		Y0: e.CenterY.Sub(hh), Y1: e.CenterY.Add(hh),
	}
}

// ExponentFormat is the (e, z) reparametrization of a diagonal shape
// matrix diag(a, d) with a*d = det: e = sqrt(a*d), z = log_lambda(d/e),
// where lambda = 1+sqrt2. This tracks how far an ellipse has been skewed
// by repeated grid-operator steps without losing precision to repeated
// sqrt/log round trips.
type ExponentFormat struct {
	E, Z bigreal.Real
}

// ToExponentFormat converts a diagonal shape matrix (a, d) into exponent
// format.
func ToExponentFormat(a, d bigreal.Real) ExponentFormat {
	e := a.Mul(d).Sqrt()
	lambda := bigreal.FromInt64(1).Add(bigreal.FromInt64(2).Sqrt())
	z := d.Quo(e).Log().Quo(lambda.Log())
	return ExponentFormat{E: e, Z: z}
}

// ToNormalFormat converts exponent format back to diagonal shape matrix
// entries (a, d).
func (ef ExponentFormat) ToNormalFormat() (a, d bigreal.Real) {
	lambda := bigreal.FromInt64(1).Add(bigreal.FromInt64(2).Sqrt())
	ratio := lambda.Pow(ef.Z) // d/e
	d = ef.E.Mul(ratio)
	a = ef.E.Mul(ef.E).Quo(d)
	return a, d
}
