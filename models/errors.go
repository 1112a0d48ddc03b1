package models

import "fmt"

// FallbackName is shown wherever a reference fails to resolve at read time.
const FallbackName = "不明"

// NotFoundError reports a delete/update/issue against a missing id.
type NotFoundError struct {
	Entity string
	Id     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.Id)
}

// ReferenceError reports an explicit reference (productId, customerId or a
// customer name) that failed to resolve. The whole operation is aborted; no
// partial mutation is committed.
type ReferenceError struct {
	Field string
	Value string
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s %q does not resolve", e.Field, e.Value)
}

// ValidationError reports malformed caller input, e.g. a numeric filter
// parameter that does not parse.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
