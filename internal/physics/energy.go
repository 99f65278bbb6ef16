package physics

import "gonum.org/v1/gonum/spatial/r2"

// OrbitalEnergy returns the kinetic plus potential energy of b in the
// field of attractor. It is zero when the two coincide.
func OrbitalEnergy(b, attractor *Body) float64 {
	r := b.DistanceTo(attractor)
	if r < Epsilon {
		return 0
	}
	v2 := r2.Norm2(b.Vel)
	return b.Mass * (0.5*v2 - G*attractor.Mass/r)
}

// AngularMomentum returns the z component of b's angular momentum about
// the attractor.
func AngularMomentum(b, attractor *Body) float64 {
	rel := r2.Sub(b.Pos, attractor.Pos)
	return b.Mass * r2.Cross(rel, b.Vel)
}

// TotalEnergy sums OrbitalEnergy over bodies.
func TotalEnergy(bodies []*Body, attractor *Body) float64 {
	total := 0.0
	for _, b := range bodies {
		total += OrbitalEnergy(b, attractor)
	}
	return total
}
