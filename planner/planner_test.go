package planner_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/journey-planner/network"
	"github.com/theoremus-urban-solutions/journey-planner/planner"
	"github.com/theoremus-urban-solutions/journey-planner/routing"
)

// testNetwork wires the two-operator scenario: operator X runs a stopping
// route A-B-C plus a longer variant of it, operator Y runs a direct A-C
// shuttle.
func testNetwork() *network.Network {
	edges := []network.Edge{
		{From: "A", To: "B", RouteID: "R1", Operator: "X", Minutes: 10},
		{From: "B", To: "C", RouteID: "R1", Operator: "X", Minutes: 10},
		{From: "A", To: "C", RouteID: "R2", Operator: "Y", Minutes: 15},
	}
	routes := []network.Route{
		{ID: "R1", Operator: "X", Stations: []string{"A", "B", "C"}},
		{ID: "R2", Operator: "Y", Stations: []string{"A", "C"}},
		{ID: "R9", Operator: "X", Stations: []string{"A", "B", "C", "D"}},
	}
	stations := network.NewStationRegistry()
	stations.Add("A", "Alpha")
	stations.Add("B", "Bravo")
	stations.Add("C", "Charlie")
	stations.Add("D", "Delta")
	return &network.Network{
		Graph:    network.BuildGraph(edges),
		Routes:   network.BuildRouteIndex(routes),
		Stations: stations,
		Issues:   network.NewDiagnostics(),
	}
}

func TestPlanner_PlanCoversAllModes(t *testing.T) {
	p := planner.New(testNetwork(), routing.Pricing{"X": 1, "Y": 100})
	plan := p.Plan("A", "C")

	require.Equal(t, "A", plan.From)
	require.Equal(t, "C", plan.To)
	require.Len(t, plan.Itineraries, 3)
	require.Equal(t, "direct", plan.Itineraries[0].Mode)
	require.Equal(t, "cheap", plan.Itineraries[1].Mode)
	require.Equal(t, "balanced", plan.Itineraries[2].Mode)

	direct := plan.Itineraries[0]
	require.True(t, direct.Found)
	require.Equal(t, 0, direct.Transfers)
	require.Equal(t, 15, direct.TotalMinutes)
	require.Equal(t, 100, direct.TotalFare)
	require.Len(t, direct.Segments, 1)
	require.Equal(t, "R2", direct.Segments[0].RouteID)
	require.Empty(t, direct.Segments[0].AlsoServedBy)

	cheap := plan.Itineraries[1]
	require.True(t, cheap.Found)
	require.Equal(t, 2, cheap.TotalFare)
	require.Equal(t, 20, cheap.TotalMinutes)
	require.Len(t, cheap.Segments, 1)
	require.Equal(t, "R1", cheap.Segments[0].RouteID)
	require.Equal(t, []string{"A", "B", "C"}, cheap.Segments[0].Stations)
	require.Equal(t, []string{"R9"}, cheap.Segments[0].AlsoServedBy)

	balanced := plan.Itineraries[2]
	require.True(t, balanced.Found)
	require.Equal(t, 15, balanced.TotalMinutes)
	require.Equal(t, 0, balanced.Transfers)
}

func TestPlanner_NoPathItinerary(t *testing.T) {
	p := planner.New(testNetwork(), nil)

	// C has no outgoing edges, so every mode comes back empty-handed.
	plan := p.Plan("C", "A")
	require.Len(t, plan.Itineraries, 3)
	for _, it := range plan.Itineraries {
		require.False(t, it.Found)
		require.Zero(t, it.TotalMinutes)
		require.Zero(t, it.TotalFare)
		require.Zero(t, it.Transfers)
		require.Empty(t, it.Segments)
	}
}

func TestPlanner_PlanModesSubset(t *testing.T) {
	p := planner.New(testNetwork(), routing.Pricing{"X": 1, "Y": 100})
	plan := p.PlanModes("A", "C", []routing.Mode{routing.ModeCheap})

	require.Len(t, plan.Itineraries, 1)
	require.Equal(t, "cheap", plan.Itineraries[0].Mode)
	require.Equal(t, 2, plan.Itineraries[0].TotalFare)
}

func TestPlanner_ComputeRouteDelegates(t *testing.T) {
	p := planner.New(testNetwork(), nil)
	label, found := p.ComputeRoute("A", "C", routing.ModeDirect)
	require.True(t, found)
	require.Equal(t, "C", label.Station)
	require.Equal(t, 0, label.Transfers)
}

func TestPlanner_TransferItinerary(t *testing.T) {
	// Force a transfer: the only way from A to D changes route at C.
	edges := []network.Edge{
		{From: "A", To: "C", RouteID: "R2", Operator: "Y", Minutes: 15},
		{From: "C", To: "D", RouteID: "R7", Operator: "Y", Minutes: 5},
	}
	net := testNetwork()
	net.Graph = network.BuildGraph(edges)
	p := planner.New(net, routing.Pricing{"Y": 3})

	it := p.PlanMode("A", "D", routing.ModeBalanced)
	require.True(t, it.Found)
	require.Equal(t, 1, it.Transfers)
	require.Equal(t, 20, it.TotalMinutes)
	require.Equal(t, 6, it.TotalFare)
	require.Len(t, it.Segments, 2)
	require.Equal(t, it.Segments[0].To, it.Segments[1].From)

	total := 0
	for _, seg := range it.Segments {
		total += seg.Minutes
	}
	require.Equal(t, it.TotalMinutes, total)
}

func TestPlanner_SameInputsSamePlan(t *testing.T) {
	p := planner.New(testNetwork(), routing.Pricing{"X": 1, "Y": 100})
	first := p.Plan("A", "C")
	second := p.Plan("A", "C")
	require.Equal(t, first, second)
}

func TestPlanner_StationName(t *testing.T) {
	p := planner.New(testNetwork(), nil)
	require.Equal(t, "Alpha", p.StationName("A"))
	require.Equal(t, "ZZ", p.StationName("ZZ"), "unknown ids render as themselves")
}
