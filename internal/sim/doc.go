// Package sim drives the bioslurry reactor model forward in time.
//
// The engine integrates four coupled balances with fixed-step explicit
// Euler:
//
//   - aqueous glyphosate: Monod degradation plus sorption exchange
//   - sorbed glyphosate: linear driving-force flux toward K_d equilibrium
//   - AMPA: stoichiometric formation from degradation, first-order decay
//   - biomass: Monod growth minus first-order death
//
// One [Snapshot] is emitted per step boundary, the initial condition
// included, holding the pre-update state together with the process
// rates evaluated at that state. Pools are floored at zero after each
// step so discretization overshoot near depletion cannot go negative.
//
// # Example
//
//	traj, err := sim.Simulate(reactor.Default())
//	if err != nil {
//		...
//	}
//	last := traj[len(traj)-1]
//
// Simulate is pure: identical parameters yield identical trajectories,
// and concurrent calls are safe. For side-by-side scenario runs use
// [RunBatch].
package sim
