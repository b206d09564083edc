package httpx

import (
	"context"
	"net/http"
	"net/url"
	"sort"
)

// ListPage is the JSON envelope for listed resources.
type ListPage[T any] struct {
	Items    []T `json:"items"`
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
	Total    int `json:"total"`
}

// ListFetcher fetches the full collection. The backend listings carry no
// query support, so filtering, sorting and paging happen in the gateway over
// the fetched slice, the way the admin screens always did it.
type ListFetcher[T any] func(ctx context.Context) ([]T, error)

// ItemFilter reports whether an item matches the request's filter params.
type ItemFilter[T any] func(item T, q url.Values) bool

// ItemLess orders two items under the given sort field. A nil or unknown
// field keeps the backend's order.
type ItemLess[T any] func(a, b T, field string) bool

// ListHandlerOpts configures the generic list handler.
type ListHandlerOpts[T any] struct {
	Fetch        ListFetcher[T]
	Filter       ItemFilter[T]
	Less         ItemLess[T]
	ErrorMessage string
}

// HandleList fetches, filters, sorts and pages a collection, then writes the
// JSON page envelope.
func HandleList[T any](w http.ResponseWriter, r *http.Request, opts ListHandlerOpts[T]) {
	items, err := opts.Fetch(r.Context())
	if err != nil {
		WriteBackendError(w, err, opts.ErrorMessage)
		return
	}

	q := r.URL.Query()
	if opts.Filter != nil {
		filtered := items[:0:0]
		for _, it := range items {
			if opts.Filter(it, q) {
				filtered = append(filtered, it)
			}
		}
		items = filtered
	}

	if opts.Less != nil {
		field, dir := ParseSortParam(q, "sort", "dir")
		if field != "" {
			sort.SliceStable(items, func(i, j int) bool {
				if dir == SortDirDesc {
					return opts.Less(items[j], items[i], field)
				}
				return opts.Less(items[i], items[j], field)
			})
		}
	}

	page, pageSize := getPageParams(q)
	total := len(items)
	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	paged := items[start:end]
	if paged == nil {
		paged = []T{}
	}
	WriteJSON(w, http.StatusOK, ListPage[T]{
		Items:    paged,
		Page:     page,
		PageSize: pageSize,
		Total:    total,
	})
}
