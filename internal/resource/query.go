package resource

import (
	"encoding/json"
	"net/url"
	"strconv"
)

const (
	DefaultPage        = 1
	DefaultRowsPerPage = 25
	DefaultSortOrder   = "desc"
)

// Query describes one paginated fetch. It is passed by value and never
// mutated after construction; zero fields are filled with defaults at
// serialization time.
type Query struct {
	Page        int
	RowsPerPage int
	SortBy      string
	SortOrder   string
	FreeText    string
	Filters     map[string]any
}

// DefaultQuery returns the defaults used when a caller sets nothing.
func DefaultQuery() Query {
	return Query{
		Page:        DefaultPage,
		RowsPerPage: DefaultRowsPerPage,
		SortOrder:   DefaultSortOrder,
		Filters:     map[string]any{},
	}
}

func (q Query) normalized() Query {
	if q.Page <= 0 {
		q.Page = DefaultPage
	}
	if q.RowsPerPage <= 0 {
		q.RowsPerPage = DefaultRowsPerPage
	}
	if q.SortOrder != "asc" && q.SortOrder != "desc" {
		q.SortOrder = DefaultSortOrder
	}
	if q.Filters == nil {
		q.Filters = map[string]any{}
	}
	return q
}

// values encodes the query-string parameters the core API expects. Filters
// travel as one JSON-serialized parameter; sortBy is omitted when unset.
func (q Query) values() (url.Values, error) {
	q = q.normalized()
	filters, err := json.Marshal(q.Filters)
	if err != nil {
		return nil, err
	}
	v := url.Values{}
	v.Set("page", strconv.Itoa(q.Page))
	v.Set("rowsPerPage", strconv.Itoa(q.RowsPerPage))
	if q.SortBy != "" {
		v.Set("sortBy", q.SortBy)
	}
	v.Set("sortOrder", q.SortOrder)
	v.Set("query", q.FreeText)
	v.Set("filters", string(filters))
	return v, nil
}

// Meta describes the full collection behind one page.
type Meta struct {
	Total       int `json:"total"`
	Page        int `json:"page"`
	RowsPerPage int `json:"rowsPerPage"`
}

// Page is one page of items plus collection metadata. It is produced fresh
// on every fetch and replaced wholesale by callers, never merged.
type Page[T any] struct {
	Items []T  `json:"data"`
	Meta  Meta `json:"metaData"`
}
