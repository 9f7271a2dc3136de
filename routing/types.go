package routing

import (
	"strings"

	"github.com/theoremus-urban-solutions/journey-planner/network"
)

// TransferPenalty is the minutes-equivalent cost of one transfer in
// balanced mode.
const TransferPenalty = 5

// Mode selects the objective a search optimizes.
type Mode string

const (
	ModeDirect   Mode = "direct"   // fewest transfers
	ModeCheap    Mode = "cheap"    // lowest fare
	ModeBalanced Mode = "balanced" // time/transfer tradeoff
)

// Modes returns all search modes in presentation order.
func Modes() []Mode {
	return []Mode{ModeDirect, ModeCheap, ModeBalanced}
}

// ParseMode normalizes a mode string, reporting whether it names a known
// mode.
func ParseMode(s string) (Mode, bool) {
	switch Mode(strings.TrimSpace(strings.ToLower(s))) {
	case ModeDirect:
		return ModeDirect, true
	case ModeCheap:
		return ModeCheap, true
	case ModeBalanced:
		return ModeBalanced, true
	}
	return "", false
}

// Pricing maps operator codes to the fare charged per edge traversal.
type Pricing map[string]int

// Fare returns the per-edge fare of an operator. Operators missing from
// the table ride free; a negative entry is treated as zero so that
// accumulated cost stays monotonic along any path.
func (p Pricing) Fare(operator string) int {
	if fare := p[operator]; fare > 0 {
		return fare
	}
	return 0
}

// Step is one traversed edge of a path, annotated with whether boarding
// it required changing routes.
type Step struct {
	Edge     network.Edge
	Transfer bool
}

// Label is one search state: the best known way to stand at Station
// having arrived on Route, together with the full edge path that got
// there. Labels are immutable once inserted into the frontier; a better
// path for the same (station, route) pair produces a new Label and the
// old one is discarded as stale.
type Label struct {
	Station   string
	Route     string
	Elapsed   int // minutes ridden
	Transfers int
	Cost      int // accumulated fare
	Path      []Step
}

// balancedScore folds transfers into minutes for the balanced objective.
func (l *Label) balancedScore() int {
	return l.Elapsed + l.Transfers*TransferPenalty
}

// Better reports whether a strictly precedes b under the mode's
// objective. The same order serves as the frontier comparator and as the
// relaxation test; keeping the two identical is what makes the first
// extraction at the destination optimal.
func (m Mode) Better(a, b *Label) bool {
	switch m {
	case ModeDirect:
		if a.Transfers != b.Transfers {
			return a.Transfers < b.Transfers
		}
		return a.Elapsed < b.Elapsed
	case ModeCheap:
		if a.Cost != b.Cost {
			return a.Cost < b.Cost
		}
		return a.Elapsed < b.Elapsed
	default:
		return a.balancedScore() < b.balancedScore()
	}
}
