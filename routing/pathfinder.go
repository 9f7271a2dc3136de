package routing

import "github.com/theoremus-urban-solutions/journey-planner/network"

// stateKey identifies a search state. Route is the route of the last edge
// used; it must be part of the key so that paths arriving at the same
// station on different routes are relaxed independently.
type stateKey struct {
	station string
	route   string
}

// ComputeRoute runs one label-correcting search from one station to
// another under the given mode and fare table. It returns the optimal
// label and true, or nil and false when no path exists. An unknown or
// isolated origin yields no path, never an error; the same goes for the
// destination.
//
// Each call owns its frontier and best-label map, so identical inputs
// always produce identical results and searches over a shared graph may
// run concurrently.
func ComputeRoute(g *network.Graph, from, to string, mode Mode, pricing Pricing) (*Label, bool) {
	best := map[stateKey]*Label{}
	frontier := NewFrontier(mode.Better)

	// One seed per distinct route leaving the origin: "standing at the
	// origin, about to board this route". Boarding the first route costs
	// no transfer.
	for _, e := range g.Neighbors(from) {
		key := stateKey{station: from, route: e.RouteID}
		if _, seen := best[key]; seen {
			continue
		}
		seed := &Label{Station: from, Route: e.RouteID}
		best[key] = seed
		frontier.Insert(seed)
	}

	for !frontier.Empty() {
		cur := frontier.ExtractMin()
		if best[stateKey{station: cur.Station, route: cur.Route}] != cur {
			continue // superseded while queued
		}
		if cur.Station == to {
			return cur, true
		}
		for _, e := range g.Neighbors(cur.Station) {
			transfer := cur.Route != "" && e.RouteID != cur.Route
			next := &Label{
				Station:   e.To,
				Route:     e.RouteID,
				Elapsed:   cur.Elapsed + e.Minutes,
				Transfers: cur.Transfers,
				Cost:      cur.Cost + pricing.Fare(e.Operator),
				Path:      extendPath(cur.Path, Step{Edge: e, Transfer: transfer}),
			}
			if transfer {
				next.Transfers++
			}
			key := stateKey{station: e.To, route: e.RouteID}
			if old, ok := best[key]; ok && !mode.Better(next, old) {
				continue
			}
			best[key] = next
			frontier.Insert(next)
		}
	}
	return nil, false
}

// extendPath copies on extension so sibling labels never share a backing
// array.
func extendPath(path []Step, step Step) []Step {
	next := make([]Step, len(path)+1)
	copy(next, path)
	next[len(path)] = step
	return next
}
