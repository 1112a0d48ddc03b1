// Package filters implements the composable query layer applied to the
// entity collections. All constraints are conjunctive: a record is kept iff
// it satisfies every supplied parameter. Absent and empty-string parameters
// impose no constraint; unknown parameters are ignored; results preserve
// collection order and never alias the caller's input into mutation.
package filters

import (
	"strconv"
	"strings"

	"nouhin-backend/models"
)

// MatchExact / MatchPartial are the recognized values of a field's
// companion <field>_matchType parameter.
const (
	MatchExact   = "exact"
	MatchPartial = "partial"
)

// Query is a flat string-valued query, as delivered by the HTTP layer.
type Query map[string]string

// str returns the parameter and whether it constrains anything. The empty
// string deliberately counts as absent; filtering on an explicit empty
// value is not possible.
func (q Query) str(key string) (string, bool) {
	v, ok := q[key]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// matchType returns the match mode for a textual field, defaulting to
// partial.
func (q Query) matchType(field string) string {
	if v, ok := q.str(field + "_matchType"); ok && v == MatchExact {
		return MatchExact
	}
	return MatchPartial
}

// textMatches applies exact (byte-equal) or partial (case-sensitive
// substring) matching.
func textMatches(value, want, mode string) bool {
	if mode == MatchExact {
		return value == want
	}
	return strings.Contains(value, want)
}

// float parses an optional numeric bound. Malformed input is a hard
// validation error rather than a silently passing constraint.
func (q Query) float(key string) (*float64, error) {
	v, ok := q.str(key)
	if !ok {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, &models.ValidationError{Field: key, Reason: "not a number"}
	}
	return &f, nil
}

// int parses an optional integer bound (day-of-month fields).
func (q Query) int(key string) (*int, error) {
	v, ok := q.str(key)
	if !ok {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, &models.ValidationError{Field: key, Reason: "not an integer"}
	}
	return &n, nil
}

// inRange checks inclusive bounds; nil bounds pass.
func inRange(v float64, min, max *float64) bool {
	if min != nil && v < *min {
		return false
	}
	if max != nil && v > *max {
		return false
	}
	return true
}
