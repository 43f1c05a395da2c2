package dto

import (
	"net/http"
	"strings"

	"hotel/shared"
	"hotel/shared/constant"
)

type QueryParams struct {
	Page   int    `json:"page"   validate:"omitempty"`
	Limit  int    `json:"limit"  validate:"omitempty"`
	Search string `json:"search" validate:"omitempty"`
}

// FromRequest populates QueryParams from the HTTP request.
// Invalid or non-positive page and limit values are ignored. With defaultRequest set,
// missing values fall back to page 1 and the given page size, or the package default
// when pageSize is not positive.
//
//	q := &dto.QueryParams{}
//	q.FromRequest(req, true, cfg.App.PageSize)
func (q *QueryParams) FromRequest(r *http.Request, defaultRequest bool, pageSize int) {
	queryParams := r.URL.Query()

	if page := queryParams.Get(constant.RequestParamPage); page != "" {
		if pageInt, err := shared.ConvertStringToInt(page); err == nil && pageInt > 0 {
			q.Page = pageInt
		}
	}

	if limit := queryParams.Get(constant.RequestParamLimit); limit != "" {
		if limitInt, err := shared.ConvertStringToInt(limit); err == nil && limitInt > 0 {
			q.Limit = limitInt
		}
	}

	q.Search = strings.TrimSpace(queryParams.Get(constant.RequestParamSearch))

	if defaultRequest {
		if q.Page == 0 {
			q.Page = constant.DefaultValuePage
		}

		if q.Limit == 0 {
			q.Limit = pageSize
		}

		if q.Limit <= 0 {
			q.Limit = constant.DefaultValueLimit
		}
	}
}
