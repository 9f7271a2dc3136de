package network

import "sort"

// Edge is one directed connection between two stations, ridden on a single
// route. A bidirectional physical link is represented as two Edge values.
// Minutes is the fixed traversal duration; edges carry no timetable.
type Edge struct {
	From     string // origin station id
	To       string // destination station id
	RouteID  string // route serving this edge
	Operator string // operator code, used for pricing and equivalence
	Minutes  int    // non-negative traversal time
}

// Route is the declared stop sequence of one service. Stations is the
// authoritative ordering used for route-equivalence matching.
type Route struct {
	ID       string
	Operator string
	Stations []string
}

// StationRegistry maps station ids to display names. The routing layers treat
// stations as opaque ids; names exist only for rendering.
type StationRegistry struct {
	names map[string]string
}

// NewStationRegistry creates an empty registry.
func NewStationRegistry() *StationRegistry {
	return &StationRegistry{names: map[string]string{}}
}

// Add records a display name for a station id. An empty name is allowed;
// StationName falls back to the id itself.
func (r *StationRegistry) Add(id, name string) {
	r.names[id] = name
}

// Has reports whether the station id was ever declared.
func (r *StationRegistry) Has(id string) bool {
	_, ok := r.names[id]
	return ok
}

// StationName returns the display name for id, or id itself when no name is
// known.
func (r *StationRegistry) StationName(id string) string {
	if n := r.names[id]; n != "" {
		return n
	}
	return id
}

// IDs returns all declared station ids in sorted order.
func (r *StationRegistry) IDs() []string {
	ids := make([]string, 0, len(r.names))
	for id := range r.names {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of declared stations.
func (r *StationRegistry) Len() int { return len(r.names) }
