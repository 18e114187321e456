package report

import (
	"strings"
	"unicode"
)

// AreaKey returns the comparison key for an area name. Names that differ
// only in case, surrounding punctuation, or internal whitespace share a key.
// Qualifiers are significant: "Bedroom" and "Master Bedroom" are distinct.
func AreaKey(area string) string {
	trimmed := strings.TrimFunc(area, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsPunct(r)
	})
	return strings.ToLower(strings.Join(strings.Fields(trimmed), " "))
}

// Normalize returns a copy of r with sentinel fields canonicalized: empty or
// case-variant "not available" values become NotAvailable, and nil lists
// become empty lists.
func Normalize(r FinalReport) FinalReport {
	out := r
	out.ProbableRootCause = sentinel(r.ProbableRootCause)
	out.AdditionalNotes = sentinel(r.AdditionalNotes)

	out.AreaWiseObservations = make([]MergedObservation, len(r.AreaWiseObservations))
	for i, obs := range r.AreaWiseObservations {
		obs.ConflictNotes = sentinel(obs.ConflictNotes)
		out.AreaWiseObservations[i] = obs
	}

	out.RecommendedActions = nonNil(r.RecommendedActions)
	out.MissingUnclearInformation = nonNil(r.MissingUnclearInformation)
	return out
}

// Consolidate folds entries sharing an AreaKey into the first occurrence so
// that each distinct area appears exactly once, preserving first-seen order.
// Issues are joined with a space; conflict notes are joined the same way,
// ignoring NotAvailable entries.
func Consolidate(obs []MergedObservation) []MergedObservation {
	index := make(map[string]int, len(obs))
	out := make([]MergedObservation, 0, len(obs))

	for _, o := range obs {
		key := AreaKey(o.Area)
		i, ok := index[key]
		if !ok {
			index[key] = len(out)
			out = append(out, o)
			continue
		}

		merged := &out[i]
		merged.CombinedIssue = join(merged.CombinedIssue, o.CombinedIssue)
		if o.HasConflict() {
			if merged.HasConflict() {
				merged.ConflictNotes = join(merged.ConflictNotes, o.ConflictNotes)
			} else {
				merged.ConflictNotes = o.ConflictNotes
			}
		}
	}

	return out
}

func sentinel(s string) string {
	if IsNotAvailable(s) {
		return NotAvailable
	}
	return s
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}

func join(a, b string) string {
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)
	switch {
	case a == "":
		return b
	case b == "" || a == b:
		return a
	}
	return a + " " + b
}
