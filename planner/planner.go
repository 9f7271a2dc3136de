package planner

import (
	"github.com/theoremus-urban-solutions/journey-planner/network"
	"github.com/theoremus-urban-solutions/journey-planner/routing"
)

// Planner coordinates the graph, route index and fare table to produce
// trip plans. It holds no per-request state, so one Planner serves
// concurrent callers over a shared network.
type Planner struct {
	graph    *network.Graph
	routes   *network.RouteIndex
	stations *network.StationRegistry
	pricing  routing.Pricing
}

// New creates a Planner over a loaded network.
func New(net *network.Network, pricing routing.Pricing) *Planner {
	return &Planner{
		graph:    net.Graph,
		routes:   net.Routes,
		stations: net.Stations,
		pricing:  pricing,
	}
}

// ComputeRoute runs a single search and returns the raw optimal label.
func (p *Planner) ComputeRoute(from, to string, mode routing.Mode) (*routing.Label, bool) {
	return routing.ComputeRoute(p.graph, from, to, mode, p.pricing)
}

// PlanMode computes the itinerary for one mode. A mode that finds no
// path yields an itinerary with Found false and no segments.
func (p *Planner) PlanMode(from, to string, mode routing.Mode) Itinerary {
	it := Itinerary{Mode: string(mode)}
	label, found := p.ComputeRoute(from, to, mode)
	if !found {
		return it
	}
	it.Found = true
	it.Transfers = label.Transfers
	it.TotalMinutes = label.Elapsed
	it.TotalFare = label.Cost
	it.Segments = ExtractSegments(label.Path)
	for i := range it.Segments {
		it.Segments[i].AlsoServedBy = FindEquivalentRoutes(it.Segments[i], p.routes)
	}
	return it
}

// PlanModes computes one itinerary per requested mode, in the order
// given.
func (p *Planner) PlanModes(from, to string, modes []routing.Mode) *TripPlan {
	plan := &TripPlan{From: from, To: to}
	for _, mode := range modes {
		plan.Itineraries = append(plan.Itineraries, p.PlanMode(from, to, mode))
	}
	return plan
}

// Plan computes one itinerary per search mode.
func (p *Planner) Plan(from, to string) *TripPlan {
	return p.PlanModes(from, to, routing.Modes())
}

// StationName resolves a station id to its display name for rendering.
func (p *Planner) StationName(id string) string {
	return p.stations.StationName(id)
}
