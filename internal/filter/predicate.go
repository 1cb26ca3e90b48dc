// Package filter holds the search/filter predicates shared by every index
// endpoint: free-text search across named fields, enum equality and
// boolean-flag equality, composed with logical AND. Predicates are pure;
// applying one never touches the input collection.
package filter

import (
	"strconv"
	"strings"
)

// DefaultAllSentinel is the criterion value meaning "no filtering"; the
// host can override it through configuration.
const DefaultAllSentinel = "all"

// Predicate reports whether a record matches one active criterion.
type Predicate[T any] func(T) bool

// And composes predicates; a record matches when every predicate matches.
// With no predicates everything matches.
func And[T any](preds ...Predicate[T]) Predicate[T] {
	return func(r T) bool {
		for _, pred := range preds {
			if !pred(r) {
				return false
			}
		}

		return true
	}
}

// Text matches when the criterion is a case-insensitive substring of any of
// the named fields. An empty criterion matches everything.
func Text[T any](criterion string, fields ...func(T) string) Predicate[T] {
	needle := strings.ToLower(strings.TrimSpace(criterion))

	return func(r T) bool {
		if needle == "" {
			return true
		}
		for _, field := range fields {
			if strings.Contains(strings.ToLower(field(r)), needle) {
				return true
			}
		}

		return false
	}
}

// Enum matches on exact (case-insensitive) equality against one
// status/category field. The sentinel criterion matches everything.
func Enum[T any](criterion, sentinel string, field func(T) string) Predicate[T] {
	want := strings.ToLower(strings.TrimSpace(criterion))

	return func(r T) bool {
		if want == "" || want == strings.ToLower(sentinel) {
			return true
		}

		return strings.EqualFold(field(r), want)
	}
}

// Flag matches on boolean-field equality. The sentinel criterion matches
// everything; a criterion that parses as neither boolean nor sentinel is
// treated as inactive rather than silently excluding every record.
func Flag[T any](criterion, sentinel string, field func(T) bool) Predicate[T] {
	trimmed := strings.ToLower(strings.TrimSpace(criterion))

	return func(r T) bool {
		if trimmed == "" || trimmed == strings.ToLower(sentinel) {
			return true
		}
		want, err := strconv.ParseBool(trimmed)
		if err != nil {
			return true
		}

		return field(r) == want
	}
}

// Apply returns the records matching the predicate, preserving input order.
func Apply[T any](records []T, pred Predicate[T]) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if pred(r) {
			out = append(out, r)
		}
	}

	return out
}
