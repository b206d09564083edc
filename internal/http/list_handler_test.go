package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type listItem struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

func listFixture(items []listItem, err error) ListHandlerOpts[listItem] {
	return ListHandlerOpts[listItem]{
		Fetch: func(ctx context.Context) ([]listItem, error) { return items, err },
		Filter: func(it listItem, q url.Values) bool {
			min := q.Get("min")
			return min == "" || it.Score >= 50
		},
		Less: func(a, b listItem, field string) bool {
			if field == "score" {
				return a.Score < b.Score
			}
			return false
		},
		ErrorMessage: "Unable to list",
	}
}

func doList(t *testing.T, opts ListHandlerOpts[listItem], query string) (*httptest.ResponseRecorder, ListPage[listItem]) {
	t.Helper()
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/things"+query, nil)
	HandleList(w, r, opts)

	var page ListPage[listItem]
	if w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	}
	return w, page
}

func TestHandleListDefaults(t *testing.T) {
	items := []listItem{{"a", 10}, {"b", 90}, {"c", 50}}
	w, page := doList(t, listFixture(items, nil), "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 10, page.PageSize)
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, items, page.Items)
}

func TestHandleListFilters(t *testing.T) {
	items := []listItem{{"a", 10}, {"b", 90}, {"c", 50}}
	_, page := doList(t, listFixture(items, nil), "?min=50")

	assert.Equal(t, 2, page.Total)
	assert.Equal(t, []listItem{{"b", 90}, {"c", 50}}, page.Items)
}

func TestHandleListSorts(t *testing.T) {
	items := []listItem{{"a", 10}, {"b", 90}, {"c", 50}}

	_, page := doList(t, listFixture(items, nil), "?sort=score")
	assert.Equal(t, []listItem{{"a", 10}, {"c", 50}, {"b", 90}}, page.Items)

	_, page = doList(t, listFixture(items, nil), "?sort=score:desc")
	assert.Equal(t, []listItem{{"b", 90}, {"c", 50}, {"a", 10}}, page.Items)
}

func TestHandleListPages(t *testing.T) {
	items := make([]listItem, 0, 25)
	for i := 0; i < 25; i++ {
		items = append(items, listItem{Name: "x", Score: i})
	}

	_, page := doList(t, listFixture(items, nil), "?page=3&page_size=10")
	assert.Equal(t, 25, page.Total)
	assert.Equal(t, 3, page.Page)
	assert.Len(t, page.Items, 5)
	assert.Equal(t, 20, page.Items[0].Score)
}

func TestHandleListPastEndIsEmptyNotNull(t *testing.T) {
	items := []listItem{{"a", 10}}
	w, page := doList(t, listFixture(items, nil), "?page=9")

	assert.Equal(t, 1, page.Total)
	assert.Empty(t, page.Items)
	assert.Contains(t, w.Body.String(), `"items":[]`)
}

func TestHandleListFetchFailure(t *testing.T) {
	w, _ := doList(t, listFixture(nil, errors.New("backend down")), "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "backend down")
}
