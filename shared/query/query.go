// Package query filters and pages whole collections in memory.
package query

import (
	"slices"

	"hotel/shared"
	"hotel/shared/dto"
)

// Filter returns the items matched by group, preserving their relative order.
func Filter[T dto.Fielder](items []T, group dto.FilterGroup) []T {
	res := make([]T, 0, len(items))

	for _, item := range items {
		if group.Match(item) {
			res = append(res, item)
		}
	}

	return res
}

// Search builds a case-insensitive substring match of term against any of fields.
func Search(term string, fields ...string) dto.FilterGroup {
	group := dto.FilterGroup{Operator: dto.FilterGroupOperatorOr}

	for _, field := range fields {
		group.Filters = append(group.Filters, dto.Filter{
			Field:    field,
			Value:    term,
			Operator: dto.FilterOperatorLike,
		})
	}

	return group
}

// Equal builds an exact-match filter on field.
func Equal(field, value string) dto.Filter {
	return dto.Filter{
		Field:    field,
		Value:    value,
		Operator: dto.FilterOperatorEq,
	}
}

// All ANDs the search group with every field filter.
func All(search dto.FilterGroup, filters ...dto.Filter) dto.FilterGroup {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters:  []any{search},
	}

	for _, filter := range filters {
		group.Filters = append(group.Filters, filter)
	}

	return group
}

// Paginate slices page (1-based) of size limit out of items. Out of range pages
// yield no items; TotalPage is never below one.
func Paginate[T any](items []T, page, limit int) dto.Page[T] {
	total := len(items)

	res := dto.Page[T]{
		Items:     []T{},
		Page:      page,
		Limit:     limit,
		TotalData: total,
		TotalPage: shared.CalculateTotalPage(total, limit),
	}

	res.HasPrev = page > 1
	res.HasNext = page >= 1 && page < res.TotalPage

	if page < 1 || limit < 1 || page > res.TotalPage {
		return res
	}

	start := (page - 1) * limit
	if start >= total {
		return res
	}

	end := min(start+limit, total)
	res.Items = slices.Clone(items[start:end])

	return res
}
