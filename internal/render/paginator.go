package render

import "strings"

// DefaultPageSize is the book-mode page length in words when the user has no
// stored setting.
const DefaultPageSize = 250

// Paginate splits content on whitespace into word-count-bounded pages. Page i
// holds words [i*pageSize, (i+1)*pageSize). Empty content yields exactly one
// empty page so book mode always has something to show.
func Paginate(content string, pageSize int) []string {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	words := strings.Fields(content)
	if len(words) == 0 {
		return []string{""}
	}
	pages := make([]string, 0, (len(words)+pageSize-1)/pageSize)
	for start := 0; start < len(words); start += pageSize {
		end := min(start+pageSize, len(words))
		pages = append(pages, strings.Join(words[start:end], " "))
	}
	return pages
}

// PageCount returns the number of pages Paginate would produce.
func PageCount(content string, pageSize int) int {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	n := len(strings.Fields(content))
	if n == 0 {
		return 1
	}
	return (n + pageSize - 1) / pageSize
}

// ClampPage keeps a 0-indexed page inside [0, total). Navigating past either
// end is a no-op, never an error.
func ClampPage(page, total int) int {
	if total < 1 {
		total = 1
	}
	if page < 0 {
		return 0
	}
	if page >= total {
		return total - 1
	}
	return page
}

// Spread returns the two-up book view at the given page: the current page,
// the facing page, and whether a facing page exists.
func Spread(pages []string, page int) (left, right string, hasRight bool) {
	if len(pages) == 0 {
		return "", "", false
	}
	page = ClampPage(page, len(pages))
	left = pages[page]
	if page+1 < len(pages) {
		return left, pages[page+1], true
	}
	return left, "", false
}
