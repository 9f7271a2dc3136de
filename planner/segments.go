package planner

import "github.com/theoremus-urban-solutions/journey-planner/routing"

// ExtractSegments groups a step path into maximal single-route rides. A
// step marked as a transfer closes the current segment and opens a new
// one. An empty path yields nil.
func ExtractSegments(path []routing.Step) []Segment {
	var segments []Segment
	for _, step := range path {
		e := step.Edge
		if len(segments) == 0 || step.Transfer {
			segments = append(segments, Segment{
				RouteID:  e.RouteID,
				Operator: e.Operator,
				From:     e.From,
				To:       e.To,
				Stations: []string{e.From, e.To},
				Minutes:  e.Minutes,
			})
			continue
		}
		last := &segments[len(segments)-1]
		last.To = e.To
		last.Stations = append(last.Stations, e.To)
		last.Minutes += e.Minutes
	}
	return segments
}
