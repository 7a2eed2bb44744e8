package pagination

import (
	"net/url"
	"testing"

	"github.com/cmlabs-hris/weekly-payroll-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sortable = []string{"date", "created_at"}

func TestNormalize_Defaults(t *testing.T) {
	p := Params{}
	require.NoError(t, p.Normalize(sortable, "date"))

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.Limit)
	assert.Equal(t, "date", p.SortBy)
	assert.Equal(t, "desc", p.SortOrder)
	assert.Equal(t, 0, p.Offset())
}

func TestNormalize_Invalid(t *testing.T) {
	p := Params{Page: -1, Limit: 500, SortBy: "password", SortOrder: "sideways"}
	err := p.Normalize(sortable, "date")

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := verrs.ToMap()
	assert.Contains(t, fields, "page")
	assert.Contains(t, fields, "limit")
	assert.Contains(t, fields, "sortBy")
	assert.Contains(t, fields, "sortOrder")
}

func TestOffsetAndOrder(t *testing.T) {
	p := Params{Page: 3, Limit: 10, SortBy: "created_at", SortOrder: "ASC"}
	require.NoError(t, p.Normalize(sortable, "date"))

	assert.Equal(t, 20, p.Offset())
	cols := map[string]string{"date": "a.date", "created_at": "a.created_at"}
	assert.Equal(t, "a.created_at ASC", p.OrderClause(cols, "a.date"))

	p.SortBy = "unknown"
	assert.Equal(t, "a.date ASC", p.OrderClause(cols, "a.date"))
}

func TestFromQuery(t *testing.T) {
	var errs validator.ValidationErrors
	p := FromQuery(url.Values{"page": {"2"}, "limit": {"x"}, "sortOrder": {"asc"}}, &errs)

	assert.Equal(t, 2, p.Page)
	assert.Equal(t, "asc", p.SortOrder)
	assert.Equal(t, map[string]string{"limit": "limit must be a number"}, errs.ToMap())
	assert.Equal(t, Meta{Page: 2, Limit: 0, Total: 7}, p.Meta(7))
}
