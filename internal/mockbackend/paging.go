package mockbackend

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/PSchristopher/phoenix-admin/client"
)

const defaultPageSize = 10

func newID() string { return uuid.NewString() }

// pageParams reads page and the given size key, clamping to sane values.
func pageParams(r *http.Request, sizeKey string) (page, size int) {
	q := r.URL.Query()
	page, _ = strconv.Atoi(q.Get("page"))
	size, _ = strconv.Atoi(q.Get(sizeKey))
	if page < 1 {
		page = 1
	}
	if size < 1 || size > 100 {
		size = defaultPageSize
	}
	return page, size
}

// paginate slices items for page and reports the window bounds.
func paginate[T any](items []T, page, size int) []T {
	start := (page - 1) * size
	if start >= len(items) {
		return []T{}
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

func totalPages(total, size int) int {
	if total == 0 {
		return 0
	}
	return (total + size - 1) / size
}

// listPagination is the page/perPage family used by orders, products and users.
func listPagination(total, page, size int) *client.Pagination {
	return &client.Pagination{Page: page, PerPage: size, Total: total, TotalPages: totalPages(total, size)}
}

// vendorPagination is the currentPage family used by the vendor list.
func vendorPagination(total, page, size int) *client.Pagination {
	pages := totalPages(total, size)
	return &client.Pagination{
		CurrentPage:  page,
		TotalPages:   pages,
		TotalItems:   total,
		ItemsPerPage: size,
		HasNextPage:  page < pages,
		HasPrevPage:  page > 1,
	}
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func matchesAny(needle string, fields ...string) bool {
	if needle == "" {
		return true
	}
	for _, f := range fields {
		if containsFold(f, needle) {
			return true
		}
	}
	return false
}
