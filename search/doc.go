// Package search drives an incremental A* search over a terrain.Grid.
//
// Overview:
//
//   - Controller owns the per-node search state (tentative distance, closed
//     flag, predecessor) in private slices indexed by terrain.NodeID, plus a
//     frontier.Frontier of open cells keyed by distance + heuristic.
//   - The search advances one expansion per Step, so a UI loop can render
//     intermediate state between calls. RunToCompletion loops Step for callers
//     that do not animate.
//   - Renderers read state through value snapshots (Cell, NodeState, Trail);
//     no method hands out mutable references.
//
// State machine:
//
//	Idle ──Setup──▶ Initialized ──Step──▶ Stepping ──Step──▶ Done
//	  ▲                                                       │
//	  └──────────────────────── Reset ◀──────────────────────┘
//
//   - Step from Idle fails with ErrNotInitialized.
//   - Step reports Continuing while expanding, ReachedGoal when the goal is
//     extracted and Exhausted when the frontier drains first. Both terminal
//     outcomes move to Done, where Step keeps returning the same outcome.
//   - Reset (or Setup, SetStart, SetGoal, Regenerate) clears all node state
//     and the frontier.
//
// Relaxation:
//
//	For each unvisited neighbor p of the extracted cell a:
//	    candidate = dist[a] + EdgeCost(a, p)
//	    if candidate < dist[p]: dist[p], prev[p] = candidate, a
//	                            remove p from the frontier, insert with candidate + h(p)
//	A predecessor therefore only changes together with a strictly smaller
//	distance, and the frontier never holds a superseded key.
//
// Errors (sentinel):
//
//   - ErrNilGrid:          New called without a grid.
//   - ErrMissingEndpoints: Setup without both start and goal.
//   - ErrNotInitialized:   Step before Setup.
//   - ErrNoPath:           path requested without a reached goal, or the
//     predecessor chain does not lead back to the start.
//   - terrain.ErrOutOfBounds for identifiers outside the grid.
//
// Thread safety:
//
//   - A Controller is not safe for concurrent use. Drivers that serve
//     several clients give each one its own Controller over its own Grid clone.
package search
