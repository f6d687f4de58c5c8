package strapi

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ListQuery builds the query string for CMS collection endpoints.
type ListQuery struct {
	values url.Values
}

// NewListQuery returns an empty query builder.
func NewListQuery() *ListQuery {
	return &ListQuery{values: url.Values{}}
}

// Populate requests relation expansion; "*" expands everything.
func (q *ListQuery) Populate(relation string) *ListQuery {
	q.values.Set("populate", relation)
	return q
}

// SortAsc orders results by the given field, ascending.
func (q *ListQuery) SortAsc(field string) *ListQuery {
	q.values.Set("sort", field+":asc")
	return q
}

// Eq adds an equality filter. Dots in the field express relation paths, so
// "category.slug" becomes filters[category][slug][$eq]. All filters on a
// query AND-combine.
func (q *ListQuery) Eq(field string, value any) *ListQuery {
	key := "filters"
	for _, part := range strings.Split(field, ".") {
		key += "[" + part + "]"
	}
	key += "[$eq]"

	switch v := value.(type) {
	case bool:
		q.values.Set(key, strconv.FormatBool(v))
	case string:
		q.values.Set(key, v)
	default:
		q.values.Set(key, fmt.Sprint(v))
	}
	return q
}

// Limit caps the number of returned rows.
func (q *ListQuery) Limit(n int) *ListQuery {
	q.values.Set("pagination[limit]", strconv.Itoa(n))
	return q
}

// Values returns the accumulated parameters.
func (q *ListQuery) Values() url.Values {
	if q == nil {
		return nil
	}
	return q.values
}

// Encode renders the query string.
func (q *ListQuery) Encode() string {
	return q.values.Encode()
}
