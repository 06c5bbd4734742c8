package categorize

import (
	"context"
	"strings"
)

// Heuristic is the local keyword-based categorizer. It is pure and
// deterministic: same input, same annotation, no external calls.
type Heuristic struct{}

var (
	adminKeywords    = []string{"email", "invoice", "schedule", "book", "call"}
	deepKeywords     = []string{"write", "design", "analy", "plan"}
	creativeKeywords = []string{"brainstorm", "sketch", "compose"}
	socialKeywords   = []string{"meet", "coffee", "chat"}

	urgentKeywords  = []string{"today", "urgent", "asap", "now"}
	highEnergyWords = []string{"write", "design", "clean", "gym"}
	lowEnergyWords  = []string{"email", "sort", "file"}
)

// heuristicTips is the fixed nudge list attached to every annotation.
var heuristicTips = []string{
	"Break it into a 10-minute starter step.",
	"Set a 20-minute timer and start.",
	"Pair it with music that matches your energy.",
}

// Categorize applies the keyword rules over the lowercased text. The first
// satisfied branch of each rule wins; overlapping keywords across categories
// are resolved by rule order, not match counts.
func (Heuristic) Categorize(_ context.Context, text, _, energy string) (*Annotation, error) {
	t := strings.ToLower(text)

	var category string
	switch {
	case containsAny(t, adminKeywords):
		category = CategoryAdmin
	case containsAny(t, deepKeywords):
		category = CategoryDeep
	case containsAny(t, creativeKeywords):
		category = CategoryCreative
	case containsAny(t, socialKeywords):
		category = CategorySocial
	default:
		category = CategoryOther
	}

	urgency := 1
	switch {
	case containsAny(t, urgentKeywords):
		urgency = 3
	case strings.Contains(t, "tomorrow"):
		urgency = 2
	}

	required := EnergyMedium
	switch {
	case containsAny(t, highEnergyWords):
		required = EnergyHigh
	case containsAny(t, lowEnergyWords):
		required = EnergyLow
	}

	priority := 50
	switch urgency {
	case 3:
		priority += 10
	case 2:
		priority += 5
	}
	if energy != "" && energy == required {
		priority += 10
	}
	priority = clamp(priority, 0, 100)

	var due string
	switch {
	case strings.Contains(t, "today"):
		due = "today"
	case strings.Contains(t, "tomorrow"):
		due = "tomorrow"
	}

	return &Annotation{
		Category: category,
		Urgency:  urgency,
		Energy:   required,
		Priority: priority,
		Tips:     append([]string(nil), heuristicTips...),
		Due:      due,
	}, nil
}

func containsAny(t string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(t, k) {
			return true
		}
	}
	return false
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
