package network

import "sort"

// Graph is the directed adjacency index the route search runs on. It is
// built once by a loader and never mutated afterwards, so it is safe to
// share across concurrent searches.
type Graph struct {
	adjacency map[string][]Edge
	stations  map[string]struct{} // every station seen as an endpoint
}

// BuildGraph indexes edge records into a Graph. Records with a negative
// duration are skipped; loaders are expected to have reported them before
// handing records over.
func BuildGraph(edges []Edge) *Graph {
	g := &Graph{
		adjacency: map[string][]Edge{},
		stations:  map[string]struct{}{},
	}
	for _, e := range edges {
		if e.Minutes < 0 {
			continue
		}
		g.adjacency[e.From] = append(g.adjacency[e.From], e)
		g.stations[e.From] = struct{}{}
		g.stations[e.To] = struct{}{}
	}
	return g
}

// Neighbors returns the outgoing edges of a station. Unknown and terminal
// stations yield an empty slice, never an error.
func (g *Graph) Neighbors(station string) []Edge {
	if g == nil {
		return nil
	}
	return g.adjacency[station]
}

// HasStation reports whether the station appears as an endpoint of any edge.
func (g *Graph) HasStation(station string) bool {
	if g == nil {
		return false
	}
	_, ok := g.stations[station]
	return ok
}

// Stations returns every station seen in the graph, sorted.
func (g *Graph) Stations() []string {
	if g == nil {
		return nil
	}
	ids := make([]string, 0, len(g.stations))
	for id := range g.stations {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// StationCount returns the number of distinct stations in the graph.
func (g *Graph) StationCount() int {
	if g == nil {
		return 0
	}
	return len(g.stations)
}

// EdgeCount returns the number of directed edges in the graph.
func (g *Graph) EdgeCount() int {
	if g == nil {
		return 0
	}
	n := 0
	for _, edges := range g.adjacency {
		n += len(edges)
	}
	return n
}
