package core

import "gonum.org/v1/gonum/spatial/r3"

// Vec3 is a point or direction in 3-space. It aliases gonum's r3.Vec,
// so the r3 package functions (r3.Add, r3.Sub, r3.Scale, r3.Dot,
// r3.Cross, r3.Norm, r3.Norm2, r3.Unit) apply directly.
type Vec3 = r3.Vec

// Lerp returns the linear interpolation between a (t=0) and b (t=1).
func Lerp(a, b Vec3, t float64) Vec3 {
	return r3.Add(a, r3.Scale(t, r3.Sub(b, a)))
}
