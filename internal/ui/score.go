package ui

import "strings"

// Field weights are strictly ordered so that richer signals (visible text)
// dominate weaker ones (view ID). Actionability bonuses break ties between
// equally-textual matches but never create a match on their own.
const (
	weightText        = 100
	weightDescription = 80
	weightHint        = 60
	weightViewID      = 40

	bonusEditable  = 15
	bonusClickable = 10
	bonusEnabled   = 5
)

// NormalizeQuery trims and lowercases a query for scoring.
func NormalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// Score rates how well a node matches a query. The query must already be
// normalized (trimmed, lowercased) and non-empty. A score of 0 means the node
// did not match; only nodes scoring above 0 are candidates.
func Score(n Node, query string) int {
	a := n.Attrs()

	score := 0
	if fieldContains(a.Text, query) {
		score += weightText
	}
	if fieldContains(a.Description, query) {
		score += weightDescription
	}
	if fieldContains(a.Hint, query) {
		score += weightHint
	}
	if fieldContains(a.ViewID, query) {
		score += weightViewID
	}
	if score == 0 {
		return 0
	}

	if a.Editable {
		score += bonusEditable
	}
	if a.Clickable {
		score += bonusClickable
	}
	if a.Enabled {
		score += bonusEnabled
	}
	return score
}

// fieldContains reports whether a non-blank attribute value contains the
// query, case-insensitively.
func fieldContains(field, query string) bool {
	field = strings.TrimSpace(field)
	if field == "" {
		return false
	}
	return strings.Contains(strings.ToLower(field), query)
}
