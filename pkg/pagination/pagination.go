package pagination

import (
	"math"
	"net/url"
	"strconv"

	"github.com/JaimeStill/admin-console/pkg/query"
)

// PageRequest is a request for one page with optional search and sort.
type PageRequest struct {
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
	Search   *string           `json:"search,omitempty"`
	Sort     []query.SortField `json:"sort,omitempty"`
}

// MaxOffset bounds Offset so an oversized page cannot overflow it.
const MaxOffset = math.MaxInt32

// Normalize clamps page and page size into the configured bounds. Page is
// capped so that Offset never exceeds MaxOffset.
func (r *PageRequest) Normalize(cfg Config) {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.PageSize < 1 {
		r.PageSize = cfg.DefaultPageSize
	}
	if r.PageSize > cfg.MaxPageSize {
		r.PageSize = cfg.MaxPageSize
	}
	if r.PageSize < 1 {
		r.PageSize = 1
	}
	if maxPage := MaxOffset/r.PageSize + 1; r.Page > maxPage {
		r.Page = maxPage
	}
}

// Offset is the number of records skipped before this page.
func (r *PageRequest) Offset() int {
	return (r.Page - 1) * r.PageSize
}

// PageRequestFromQuery reads page, page_size, search and sort
// ("name,-created_at") from the query string and normalizes the result.
func PageRequestFromQuery(values url.Values, cfg Config) PageRequest {
	page, _ := strconv.Atoi(values.Get("page"))
	pageSize, _ := strconv.Atoi(values.Get("page_size"))

	var search *string
	if s := values.Get("search"); s != "" {
		search = &s
	}

	req := PageRequest{
		Page:     page,
		PageSize: pageSize,
		Search:   search,
		Sort:     query.ParseSortFields(values.Get("sort")),
	}

	req.Normalize(cfg)
	return req
}

// PageResult is the paginated list shape returned to clients: {items, total, page, page_size}.
type PageResult[T any] struct {
	Items    []T `json:"items"`
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// NewPageResult builds a PageResult. A nil slice becomes an empty list.
func NewPageResult[T any](items []T, total, page, pageSize int) PageResult[T] {
	if items == nil {
		items = []T{}
	}
	return PageResult[T]{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
}
