package dto

import (
	"strings"
)

const (
	FilterOperatorEq   = "eq"
	FilterOperatorLike = "like"
)

const (
	FilterGroupOperatorAnd = "AND"
	FilterGroupOperatorOr  = "OR"
)

// Fielder exposes the string form of a record's named fields to the filters.
// Unknown fields return the empty string.
type Fielder interface {
	FieldValue(field string) string
}

// Filter is a single predicate on one field. An empty or whitespace-only Value
// places no constraint on the field.
type Filter struct {
	Field    string
	Value    string
	Operator string `validate:"required,oneof=eq like"`
}

// IsEmpty reports whether the filter constrains nothing.
func (f *Filter) IsEmpty() bool {
	return strings.TrimSpace(f.Value) == ""
}

// Match evaluates the filter against record. eq is exact equality, like is a
// case-insensitive substring test. Surrounding whitespace in Value is ignored.
func (f *Filter) Match(record Fielder) bool {
	if f.IsEmpty() {
		return true
	}

	actual := record.FieldValue(f.Field)
	value := strings.TrimSpace(f.Value)

	switch f.Operator {
	case FilterOperatorEq:
		return actual == value
	case FilterOperatorLike:
		return strings.Contains(strings.ToLower(actual), strings.ToLower(value))
	default:
		return false
	}
}

// FilterGroup combines filters and nested groups with AND or OR.
// Filters holds Filter and FilterGroup values; an operator other than OR is treated as AND.
type FilterGroup struct {
	Filters  []any
	Operator string
}

// IsEmpty reports whether no member of the group constrains anything.
func (f *FilterGroup) IsEmpty() bool {
	for _, filter := range f.Filters {
		switch fill := filter.(type) {
		case Filter:
			if !fill.IsEmpty() {
				return false
			}
		case FilterGroup:
			if !fill.IsEmpty() {
				return false
			}
		}
	}

	return true
}

// Match evaluates the group against record. Empty members are skipped, so a
// group with nothing to constrain matches every record.
func (f *FilterGroup) Match(record Fielder) bool {
	if f.IsEmpty() {
		return true
	}

	anyOf := f.Operator == FilterGroupOperatorOr

	for _, filter := range f.Filters {
		var (
			matched bool
			empty   bool
		)

		switch fill := filter.(type) {
		case Filter:
			empty = fill.IsEmpty()
			matched = fill.Match(record)
		case FilterGroup:
			empty = fill.IsEmpty()
			matched = fill.Match(record)
		default:
			continue
		}

		if empty {
			continue
		}

		if anyOf && matched {
			return true
		}

		if !anyOf && !matched {
			return false
		}
	}

	return !anyOf
}
