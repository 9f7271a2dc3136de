package network

import (
	"fmt"
	"log"
	"strings"
)

// Issue type constants
const (
	// Edge issues
	IssueUnknownStation   = "unknown_station"
	IssueNegativeDuration = "negative_duration"
	IssueSelfLoop         = "self_loop"
	IssueEdgeNoRoute      = "edge_no_route"

	// Route issues
	IssueDuplicateRoute      = "duplicate_route"
	IssueRouteTooShort       = "route_too_short"
	IssueRouteUnknownStation = "route_unknown_station"
	IssueRouteNoOperator     = "route_no_operator"
	IssueDurationMismatch    = "duration_mismatch"
	IssueEdgeUndeclaredRoute = "edge_undeclared_route"

	// Input issues
	IssueMalformedLine = "malformed_line"
)

// issueInfo holds aggregated information about a specific issue type
type issueInfo struct {
	count    int
	examples []string
}

// Diagnostics collects data issues found while loading a network and outputs
// consolidated summaries instead of one log line per record.
type Diagnostics struct {
	issues map[string]*issueInfo
}

// NewDiagnostics creates a new diagnostics collector
func NewDiagnostics() *Diagnostics {
	return &Diagnostics{
		issues: make(map[string]*issueInfo),
	}
}

// Add records an issue occurrence with an example ID
func (d *Diagnostics) Add(issueType, exampleID string) {
	if d.issues[issueType] == nil {
		d.issues[issueType] = &issueInfo{
			examples: make([]string, 0, 3),
		}
	}

	info := d.issues[issueType]
	info.count++

	// Store up to 3 examples
	if len(info.examples) < 3 {
		info.examples = append(info.examples, exampleID)
	}
}

// Merge folds another collector into this one. Example lists stay capped at 3.
func (d *Diagnostics) Merge(other *Diagnostics) {
	if other == nil {
		return
	}
	for issueType, info := range other.issues {
		if d.issues[issueType] == nil {
			d.issues[issueType] = &issueInfo{
				examples: make([]string, 0, 3),
			}
		}
		dst := d.issues[issueType]
		dst.count += info.count
		for _, ex := range info.examples {
			if len(dst.examples) < 3 {
				dst.examples = append(dst.examples, ex)
			}
		}
	}
}

// Count returns the number of occurrences recorded for an issue type.
func (d *Diagnostics) Count(issueType string) int {
	if d == nil || d.issues[issueType] == nil {
		return 0
	}
	return d.issues[issueType].count
}

// Total returns the number of occurrences recorded across all issue types.
func (d *Diagnostics) Total() int {
	if d == nil {
		return 0
	}
	n := 0
	for _, info := range d.issues {
		n += info.count
	}
	return n
}

// LogAll outputs all collected issues in consolidated format
func (d *Diagnostics) LogAll(source string) {
	if len(d.issues) == 0 {
		return
	}

	for issueType, info := range d.issues {
		message := d.formatIssueMessage(issueType, source, info)
		log.Printf("%s", message)
	}
}

// formatIssueMessage creates a human-readable issue message
func (d *Diagnostics) formatIssueMessage(issueType, source string, info *issueInfo) string {
	var description, action string

	switch issueType {
	case IssueUnknownStation:
		description = "edges referencing undeclared stations"
		action = "Registering the station on first use"
	case IssueNegativeDuration:
		description = "edges with negative travel time"
		action = "Dropping the edge"
	case IssueSelfLoop:
		description = "edges from a station to itself"
		action = "Dropping the edge"
	case IssueEdgeNoRoute:
		description = "edges with no route id"
		action = "Dropping the edge"
	case IssueDuplicateRoute:
		description = "routes declared more than once"
		action = "Keeping the first declaration"
	case IssueRouteTooShort:
		description = "routes with fewer than two stations"
		action = "Indexing the route without derived edges"
	case IssueRouteUnknownStation:
		description = "routes referencing undeclared stations"
		action = "Registering the station on first use"
	case IssueRouteNoOperator:
		description = "routes with no operator code"
		action = "Indexing the route with an empty operator"
	case IssueDurationMismatch:
		description = "routes whose durations do not match their hop count"
		action = "Indexing the route without derived edges"
	case IssueEdgeUndeclaredRoute:
		description = "edges referencing undeclared routes"
		action = "Keeping the edge without sequence data"
	case IssueMalformedLine:
		description = "lines that could not be parsed"
		action = "Skipping the line"
	default:
		description = "unknown issue"
		action = "Continuing with fallback behavior"
	}

	examplesStr := strings.Join(info.examples, ", ")

	return fmt.Sprintf("Network %s has %s (%d occurrences). %s. Examples: %s",
		source, description, info.count, action, examplesStr)
}
