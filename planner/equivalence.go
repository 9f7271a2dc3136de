package planner

import (
	"sort"

	"github.com/theoremus-urban-solutions/journey-planner/network"
)

// FindEquivalentRoutes returns the ids of other routes, run by the same
// operator, whose declared stop sequence contains the segment's stations
// as a contiguous run in the same direction. Candidates missing one of
// the segment's stations simply fail the scan. The result is sorted.
func FindEquivalentRoutes(seg Segment, routes *network.RouteIndex) []string {
	var matches []string
	for _, id := range routes.RoutesForOperator(seg.Operator) {
		if id == seg.RouteID {
			continue
		}
		stations, ok := routes.RouteStations(id)
		if !ok {
			continue
		}
		if containsRun(stations, seg.Stations) {
			matches = append(matches, id)
		}
	}
	sort.Strings(matches)
	return matches
}

// containsRun reports whether haystack contains needle as a contiguous
// subsequence.
func containsRun(haystack, needle []string) bool {
	if len(needle) == 0 || len(needle) > len(haystack) {
		return false
	}
	for start := 0; start+len(needle) <= len(haystack); start++ {
		match := true
		for i, want := range needle {
			if haystack[start+i] != want {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
