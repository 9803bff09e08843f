package assistant

import (
	"regexp"

	"github.com/ecosmart/shop/internal/core"
)

const (
	recentQueryCount   = 3
	recentProductCount = 5
)

// Context clue patterns. A single utterance may set several flags; they are
// independent signals, not mutually exclusive.
var (
	previousRefPattern = regexp.MustCompile(`(?i)earlier|before|previous|that|those|compare|vs`)
	followUpPattern    = regexp.MustCompile(`(?i)more|also|another|different|better|cheaper`)
	comparisonPattern  = regexp.MustCompile(`(?i)compare|vs|versus|which is better|difference`)
)

// AnalyzeContext inspects an utterance against a session snapshot and
// produces the per-request context descriptor. Pure function, no side
// effects on the store.
func AnalyzeContext(text string, snap Snapshot) core.ContextDescriptor {
	return core.ContextDescriptor{
		IsPreviousRef:  previousRefPattern.MatchString(text),
		IsFollowUp:     followUpPattern.MatchString(text),
		IsComparison:   comparisonPattern.MatchString(text),
		RecentQueries:  tail(snap.History, recentQueryCount),
		RecentProducts: tail(snap.Products, recentProductCount),
	}
}

// tail returns a copy of the last n elements, or all of them when fewer
// exist. Always non-nil so the descriptor serializes as [] rather than null.
func tail[T any](items []T, n int) []T {
	if len(items) > n {
		items = items[len(items)-n:]
	}
	out := make([]T, len(items))
	copy(out, items)
	return out
}
