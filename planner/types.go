package planner

// Segment is one continuous ride on a single route: boarding at From,
// alighting at To, passing through Stations in declared order.
type Segment struct {
	RouteID      string   `json:"route"`
	Operator     string   `json:"operator"`
	From         string   `json:"from"`
	To           string   `json:"to"`
	Stations     []string `json:"stations"`
	Minutes      int      `json:"minutes"`
	AlsoServedBy []string `json:"alsoServedBy,omitempty"`
}

// Stops returns the number of hops ridden within the segment.
func (s Segment) Stops() int {
	if len(s.Stations) < 2 {
		return 0
	}
	return len(s.Stations) - 1
}

// Itinerary is the outcome of one search mode. When no path exists Found
// is false, the totals are zero and Segments is empty.
type Itinerary struct {
	Mode         string    `json:"mode"`
	Found        bool      `json:"found"`
	Transfers    int       `json:"transfers"`
	TotalMinutes int       `json:"totalMinutes"`
	TotalFare    int       `json:"totalFare"`
	Segments     []Segment `json:"segments,omitempty"`
}

// TripPlan bundles the itineraries computed for one origin/destination
// pair.
type TripPlan struct {
	From        string      `json:"from"`
	To          string      `json:"to"`
	Itineraries []Itinerary `json:"itineraries"`
}
