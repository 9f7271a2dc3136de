package network

import "sort"

// RouteIndex stores the declared stop sequence and operator of every route.
// The search never touches it; it exists for equivalence lookups and for
// rendering. Immutable after construction.
type RouteIndex struct {
	stations   map[string][]string // route id -> ordered station ids
	operators  map[string]string   // route id -> operator code
	byOperator map[string][]string // operator code -> route ids
}

// BuildRouteIndex indexes route records. When the same route id is declared
// more than once the first declaration wins; loaders report the duplicate.
func BuildRouteIndex(routes []Route) *RouteIndex {
	idx := &RouteIndex{
		stations:   map[string][]string{},
		operators:  map[string]string{},
		byOperator: map[string][]string{},
	}
	for _, r := range routes {
		if _, seen := idx.stations[r.ID]; seen {
			continue
		}
		idx.stations[r.ID] = r.Stations
		idx.operators[r.ID] = r.Operator
		idx.byOperator[r.Operator] = append(idx.byOperator[r.Operator], r.ID)
	}
	for _, ids := range idx.byOperator {
		sort.Strings(ids)
	}
	return idx
}

// RouteStations returns the ordered station sequence of a route, and whether
// the route is known.
func (idx *RouteIndex) RouteStations(routeID string) ([]string, bool) {
	if idx == nil {
		return nil, false
	}
	s, ok := idx.stations[routeID]
	return s, ok
}

// RouteOperator returns the operator code of a route, and whether the route
// is known.
func (idx *RouteIndex) RouteOperator(routeID string) (string, bool) {
	if idx == nil {
		return "", false
	}
	op, ok := idx.operators[routeID]
	return op, ok
}

// RoutesForOperator returns the ids of every route run by the operator,
// sorted.
func (idx *RouteIndex) RoutesForOperator(operator string) []string {
	if idx == nil {
		return nil
	}
	return idx.byOperator[operator]
}

// Routes returns all known route ids, sorted.
func (idx *RouteIndex) Routes() []string {
	if idx == nil {
		return nil
	}
	ids := make([]string, 0, len(idx.stations))
	for id := range idx.stations {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// RouteCount returns the number of known routes.
func (idx *RouteIndex) RouteCount() int {
	if idx == nil {
		return 0
	}
	return len(idx.stations)
}
