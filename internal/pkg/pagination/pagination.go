// Package pagination holds the page/limit/sort handling shared by every list
// endpoint.
package pagination

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/cmlabs-hris/weekly-payroll-go/internal/pkg/validator"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

type Params struct {
	Page      int    `json:"page"`
	Limit     int    `json:"limit"`
	SortBy    string `json:"sortBy"`
	SortOrder string `json:"sortOrder"` // asc, desc
}

type Meta struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// FromQuery reads page, limit, sortBy and sortOrder from a query string.
// Unparseable numbers are reported as validation errors.
func FromQuery(q url.Values, errs *validator.ValidationErrors) Params {
	p := Params{
		SortBy:    q.Get("sortBy"),
		SortOrder: q.Get("sortOrder"),
	}
	if v := q.Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs.Add("page", "page must be a number")
		}
		p.Page = n
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs.Add("limit", "limit must be a number")
		}
		p.Limit = n
	}
	return p
}

// Normalize fills defaults and validates against the sortable fields of the
// resource. defaultSort must be one of allowedSort.
func (p *Params) Normalize(allowedSort []string, defaultSort string) error {
	var errs validator.ValidationErrors

	if p.Page < 0 {
		errs.Add("page", "page must be a positive number")
	}
	if p.Page == 0 {
		p.Page = DefaultPage
	}

	if p.Limit < 0 {
		errs.Add("limit", "limit must be a positive number")
	}
	if p.Limit == 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		errs.Add("limit", fmt.Sprintf("limit must not exceed %d", MaxLimit))
	}

	if p.SortBy == "" {
		p.SortBy = defaultSort
	} else if !validator.IsInSlice(p.SortBy, allowedSort) {
		errs.Add("sortBy", "sortBy must be one of: "+strings.Join(allowedSort, ", "))
	}

	p.SortOrder = strings.ToLower(p.SortOrder)
	if p.SortOrder == "" {
		p.SortOrder = "desc"
	} else if p.SortOrder != "asc" && p.SortOrder != "desc" {
		errs.Add("sortOrder", "sortOrder must be one of: asc, desc")
	}

	return errs.Err()
}

func (p Params) Offset() int {
	if p.Page <= 0 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// OrderClause maps SortBy onto a whitelisted column expression. Unknown keys
// fall back to fallback so user input never reaches the SQL text.
func (p Params) OrderClause(columns map[string]string, fallback string) string {
	col, ok := columns[p.SortBy]
	if !ok {
		col = fallback
	}
	dir := "DESC"
	if p.SortOrder == "asc" {
		dir = "ASC"
	}
	return col + " " + dir
}

func (p Params) Meta(total int64) Meta {
	return Meta{Page: p.Page, Limit: p.Limit, Total: total}
}
