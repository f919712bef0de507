package upstream

import (
	"net/url"
	"strconv"
)

// Query is the wire contract of every list endpoint: offset/limit plus an
// optional free-text search. Page numbers are a view concern; offset is
// derived as (page-1)*limit.
type Query struct {
	Offset int
	Limit  int
	Search string
}

// PageQuery derives a Query from a 1-based page number.
func PageQuery(page, pageSize int, search string) Query {
	if page < 1 {
		page = 1
	}
	return Query{
		Offset: (page - 1) * pageSize,
		Limit:  pageSize,
		Search: search,
	}
}

// Values encodes the query for the upstream. Fields pass through verbatim;
// the server interprets search semantics per entity.
func (q Query) Values() url.Values {
	v := url.Values{}
	v.Set("offset", strconv.Itoa(q.Offset))
	v.Set("limit", strconv.Itoa(q.Limit))
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	return v
}
