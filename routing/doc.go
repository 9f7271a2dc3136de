/*
Package routing computes optimal paths through a transit network.

The search is a label-correcting variant of Dijkstra. A search state is a
Label keyed by (station, route): where the path stands and which route it
arrived on. Keying by station alone would be wrong, because two paths
standing at the same station on different routes face different transfer
costs for the same onward edge.

# Modes

Each search optimizes one objective:

  - direct:   fewest transfers, ties broken by travel time
  - cheap:    lowest total fare, ties broken by travel time
  - balanced: travel time plus TransferPenalty minutes per transfer

The mode's comparator drives both the frontier extraction order and the
relaxation test. Because they are identical and all edge durations and
fares are non-negative, the first label extracted at the destination is
optimal for its mode.

# Basic Usage

	label, ok := routing.ComputeRoute(g, "A", "C", routing.ModeCheap,
	    routing.Pricing{"X": 2})
	if !ok {
	    // no route
	}
	fmt.Println(label.Elapsed, label.Transfers, label.Cost)

A search has no failure modes beyond "no path": unknown stations behave
like unreachable ones and operators missing from the fare table ride
free.
*/
package routing
