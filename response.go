package journeyplanner

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/theoremus-urban-solutions/journey-planner/planner"
)

// PlanResponse is the envelope every itinerary answer travels in.
type PlanResponse struct {
	ResponseID        string            `json:"responseId"`
	ResponseTimestamp string            `json:"responseTimestamp"`
	Plan              *planner.TripPlan `json:"plan"`
}

func NewPlanResponse(plan *planner.TripPlan) *PlanResponse {
	return &PlanResponse{
		ResponseID:        uuid.NewString(),
		ResponseTimestamp: iso8601Now(),
		Plan:              plan,
	}
}

type responseBuilder struct {
	p *planner.Planner
}

func newResponseBuilder(p *planner.Planner) *responseBuilder { return &responseBuilder{p: p} }

func (rb *responseBuilder) BuildJSON(res *PlanResponse) []byte {
	b, _ := json.Marshal(res)
	return b
}

// BuildText renders the plan as human-readable lines, one block per
// mode, resolving station ids to display names.
func (rb *responseBuilder) BuildText(res *PlanResponse) []byte {
	var b strings.Builder
	plan := res.Plan
	fmt.Fprintf(&b, "Journey %s -> %s\n", rb.p.StationName(plan.From), rb.p.StationName(plan.To))
	for _, it := range plan.Itineraries {
		rb.writeItineraryText(&b, it)
	}
	return []byte(b.String())
}

func (rb *responseBuilder) writeItineraryText(b *strings.Builder, it planner.Itinerary) {
	if !it.Found {
		fmt.Fprintf(b, "[%s] no journey found\n", it.Mode)
		return
	}
	fmt.Fprintf(b, "[%s] %d min, %s, fare %d\n",
		it.Mode, it.TotalMinutes, plural(it.Transfers, "transfer"), it.TotalFare)
	for _, seg := range it.Segments {
		rb.writeSegmentText(b, seg)
	}
}

func (rb *responseBuilder) writeSegmentText(b *strings.Builder, seg planner.Segment) {
	fmt.Fprintf(b, "  %s (%s): %s -> %s, %s, %d min",
		seg.RouteID, seg.Operator,
		rb.p.StationName(seg.From), rb.p.StationName(seg.To),
		plural(seg.Stops(), "stop"), seg.Minutes)
	if len(seg.AlsoServedBy) > 0 {
		b.WriteString(" (also: ")
		b.WriteString(strings.Join(seg.AlsoServedBy, ", "))
		b.WriteString(")")
	}
	b.WriteString("\n")
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return strconv.Itoa(n) + " " + unit + "s"
}
