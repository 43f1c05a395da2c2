package query_test

import (
	"fmt"
	"testing"

	"hotel/shared/dto"
	"hotel/shared/query"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record map[string]string

func (r record) FieldValue(field string) string {
	return r[field]
}

func rooms() []record {
	return []record{
		{"number": "101", "type": "single", "status": "available"},
		{"number": "102", "type": "double", "status": "available"},
		{"number": "201", "type": "suite", "status": "occupied"},
		{"number": "202", "type": "suite", "status": "maintenance"},
	}
}

func numbers(items []record) []string {
	res := make([]string, len(items))
	for i, item := range items {
		res[i] = item["number"]
	}

	return res
}

func TestFilter_IdentityWithoutConstraints(t *testing.T) {
	all := rooms()

	for _, term := range []string{"", "   ", "\t"} {
		got := query.Filter(all, query.All(query.Search(term, "number", "type")))
		assert.Equal(t, all, got)
	}

	assert.Equal(t, all, query.Filter(all, dto.FilterGroup{}))
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name    string
		search  string
		filters []dto.Filter
		want    []string
	}{
		{name: "search by number", search: "10", want: []string{"101", "102"}},
		{name: "search by type is case insensitive", search: "SUI", want: []string{"201", "202"}},
		{name: "status filter", filters: []dto.Filter{query.Equal("status", "available")}, want: []string{"101", "102"}},
		{name: "empty filter value is ignored", filters: []dto.Filter{query.Equal("status", "")}, want: []string{"101", "102", "201", "202"}},
		{name: "filters AND together", filters: []dto.Filter{query.Equal("type", "suite"), query.Equal("status", "occupied")}, want: []string{"201"}},
		{name: "search and filter intersect", search: "20", filters: []dto.Filter{query.Equal("status", "maintenance")}, want: []string{"202"}},
		{name: "eq is exact", filters: []dto.Filter{query.Equal("type", "Suite")}, want: []string{}},
		{name: "no match", search: "penthouse", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			group := query.All(query.Search(tt.search, "number", "type"), tt.filters...)

			assert.Equal(t, tt.want, numbers(query.Filter(rooms(), group)))
		})
	}
}

func TestFilter_GuestSearch(t *testing.T) {
	guests := []record{
		{"name": "John Smith", "email": "john@example.com", "phone": "+1-555-123-4567"},
		{"name": "Emma Johnson", "email": "emma@example.com", "phone": "+1-555-987-6543"},
	}

	for _, term := range []string{"emma", "EMMA", "Emma"} {
		got := query.Filter(guests, query.Search(term, "name", "email", "phone"))

		require.Len(t, got, 1)
		assert.Equal(t, "Emma Johnson", got[0]["name"])
	}

	assert.Len(t, query.Filter(guests, query.Search("987", "name", "email", "phone")), 1)
}

func TestPaginate_ElevenItems(t *testing.T) {
	items := make([]int, 11)
	for i := range items {
		items[i] = i
	}

	page := query.Paginate(items, 3, 5)

	assert.Equal(t, []int{10}, page.Items)
	assert.Equal(t, 3, page.TotalPage)
	assert.Equal(t, 11, page.TotalData)
	assert.True(t, page.HasPrev)
	assert.False(t, page.HasNext)
}

func TestPaginate_PartitionsCollection(t *testing.T) {
	for count := range 23 {
		for size := 1; size <= 7; size++ {
			t.Run(fmt.Sprintf("count=%d/size=%d", count, size), func(t *testing.T) {
				items := make([]int, count)
				for i := range items {
					items[i] = i
				}

				first := query.Paginate(items, 1, size)
				require.GreaterOrEqual(t, first.TotalPage, 1)

				var joined []int
				for p := 1; p <= first.TotalPage; p++ {
					joined = append(joined, query.Paginate(items, p, size).Items...)
				}

				assert.Len(t, joined, count)
				for i, v := range joined {
					assert.Equal(t, i, v)
				}
			})
		}
	}
}

func TestPaginate_EdgeCases(t *testing.T) {
	items := []string{"a", "b", "c"}

	tests := []struct {
		name      string
		items     []string
		page      int
		limit     int
		want      []string
		totalPage int
	}{
		{name: "empty collection", items: nil, page: 1, limit: 5, want: []string{}, totalPage: 1},
		{name: "page past the end", items: items, page: 4, limit: 1, want: []string{}, totalPage: 3},
		{name: "far past the end", items: items, page: 1 << 40, limit: 1 << 30, want: []string{}, totalPage: 1},
		{name: "page zero", items: items, page: 0, limit: 2, want: []string{}, totalPage: 2},
		{name: "negative page", items: items, page: -1, limit: 2, want: []string{}, totalPage: 2},
		{name: "zero limit", items: items, page: 1, limit: 0, want: []string{}, totalPage: 1},
		{name: "partial last page", items: items, page: 2, limit: 2, want: []string{"c"}, totalPage: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := query.Paginate(tt.items, tt.page, tt.limit)

			assert.Equal(t, tt.want, page.Items)
			assert.Equal(t, tt.totalPage, page.TotalPage)
		})
	}
}

func TestPaginate_DoesNotAlias(t *testing.T) {
	items := []string{"a", "b", "c"}

	page := query.Paginate(items, 1, 2)
	page.Items[0] = "z"

	assert.Equal(t, "a", items[0])
}
