// Package physics provides the bodies and force law of the orbit simulator.
//
// A single immobile attractor pulls every orbiting body with a point-mass
// Newtonian acceleration; orbiting bodies never attract each other:
//
//   - [Body]: a simulated object with position, velocity and a bounded [Trail]
//   - [Acceleration]: gravitational pull of an attractor on a position
//   - [Bounds]: the viewport every position is clamped into after a step
//   - [SolarSystem]: the hard-coded Sun, Earth, Mars and Jupiter
//
// Positions and velocities are [r2.Vec] values from gonum, so each update
// is a plain value assignment rather than an in-place array mutation.
//
// # Energy
//
// Use [OrbitalEnergy] to watch the energy drift of the semi-implicit Euler
// step over long runs:
//
//	sun, bodies := physics.SolarSystem()
//	e := physics.OrbitalEnergy(bodies[0], sun)
package physics
