package dto

// Page is one slice of a filtered collection plus the metadata a list view needs.
type Page[T any] struct {
	Items     []T  `json:"items"`
	Page      int  `json:"page"`
	Limit     int  `json:"limit"`
	TotalPage int  `json:"total_page"`
	TotalData int  `json:"total_data"`
	HasPrev   bool `json:"has_prev"`
	HasNext   bool `json:"has_next"`
}

// Map converts the items of a page while keeping its metadata.
func Map[T, R any](page Page[T], convert func(T) R) Page[R] {
	items := make([]R, len(page.Items))
	for i, item := range page.Items {
		items[i] = convert(item)
	}

	return Page[R]{
		Items:     items,
		Page:      page.Page,
		Limit:     page.Limit,
		TotalPage: page.TotalPage,
		TotalData: page.TotalData,
		HasPrev:   page.HasPrev,
		HasNext:   page.HasNext,
	}
}
