package models

import (
	"fmt"
	"strings"

	"blogapi/internal/domain"
)

const (
	// DefaultPageSize is used when the caller does not request a size.
	DefaultPageSize = 10
	// MaxPageSize caps requested sizes; larger requests are clamped, not rejected.
	MaxPageSize = 50
	// DefaultOrdering is applied when the caller specifies none (newest first).
	DefaultOrdering = "-created_at"
)

// OrderFields is the allow-list of orderable columns for one resource.
type OrderFields []string

// Contains reports whether the field is in the allow-list.
func (f OrderFields) Contains(field string) bool {
	for _, allowed := range f {
		if allowed == field {
			return true
		}
	}
	return false
}

// ListOptions carries the caller-controlled query parameters of a list
// endpoint. A leading '-' on Ordering means descending. Pages are 1-based.
type ListOptions struct {
	Search   string
	Ordering string
	Page     int
	PageSize int
}

// ApplyDefaults normalizes the options in place: empty ordering becomes
// DefaultOrdering, non-positive page/size fall back to their defaults, and
// oversized page sizes are clamped to MaxPageSize.
func (o *ListOptions) ApplyDefaults() {
	if o.Ordering == "" {
		o.Ordering = DefaultOrdering
	}
	if o.Page < 1 {
		o.Page = 1
	}
	if o.PageSize < 1 {
		o.PageSize = DefaultPageSize
	}
	if o.PageSize > MaxPageSize {
		o.PageSize = MaxPageSize
	}
}

// Validate checks the ordering field against the resource's allow-list.
// Must be called after ApplyDefaults.
func (o *ListOptions) Validate(allowed OrderFields) error {
	field, _ := o.OrderColumn()
	if !allowed.Contains(field) {
		return &domain.ValidationError{
			Message: fmt.Sprintf("invalid ordering field %q, allowed: %s", field, strings.Join(allowed, ", ")),
		}
	}
	return nil
}

// OrderColumn splits the ordering expression into its column name and
// direction.
func (o *ListOptions) OrderColumn() (field string, descending bool) {
	if strings.HasPrefix(o.Ordering, "-") {
		return strings.TrimPrefix(o.Ordering, "-"), true
	}
	return o.Ordering, false
}

// Offset converts the 1-based page number into a row offset.
func (o *ListOptions) Offset() int {
	return (o.Page - 1) * o.PageSize
}

// Page is one page of a list response. Count is the total number of
// matching records, not the number returned; a page past the end carries
// an empty Results with the true Count.
type Page[T any] struct {
	Count      int `json:"count"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
	Results    []T `json:"results"`
}

// NewPage assembles a page from a total count and the rows of the
// requested window. Results is never nil.
func NewPage[T any](opts ListOptions, count int, results []T) Page[T] {
	if results == nil {
		results = []T{}
	}
	totalPages := 0
	if count > 0 {
		totalPages = (count + opts.PageSize - 1) / opts.PageSize
	}
	return Page[T]{
		Count:      count,
		Page:       opts.Page,
		PageSize:   opts.PageSize,
		TotalPages: totalPages,
		Results:    results,
	}
}
