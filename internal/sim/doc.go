// Package sim owns the simulation state and the loop that advances it.
//
// A [Controller] holds the single mutable [State]. Each tick it applies
// the decoded commands, advances every orbiting body against the fixed
// attractor with the configured [Integrator], maintains trails and hands
// a [Frame] to whoever renders it. Front ends drive Tick directly from
// their own frame loop; headless callers use Run.
package sim
