package render

import (
	"fmt"
	"strings"
	"testing"
)

func wordsOfLength(n int) string {
	words := make([]string, n)
	for i := range words {
		words[i] = fmt.Sprintf("w%d", i)
	}
	return strings.Join(words, " ")
}

func TestPaginate_ExactMultiple(t *testing.T) {
	const pageSize = 50
	content := wordsOfLength(2 * pageSize)

	pages := Paginate(content, pageSize)
	if len(pages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(pages))
	}
	for i, page := range pages {
		if got := len(strings.Fields(page)); got != pageSize {
			t.Fatalf("expected page %d to hold %d words, got %d", i, pageSize, got)
		}
	}
	// No words lost or duplicated across the boundary.
	rejoined := strings.Fields(pages[0] + " " + pages[1])
	original := strings.Fields(content)
	if len(rejoined) != len(original) {
		t.Fatalf("expected %d words after rejoin, got %d", len(original), len(rejoined))
	}
	for i := range original {
		if rejoined[i] != original[i] {
			t.Fatalf("word %d mismatch: %q vs %q", i, rejoined[i], original[i])
		}
	}
}

func TestPaginate_ShortContent(t *testing.T) {
	pages := Paginate("just a few words", 250)
	if len(pages) != 1 {
		t.Fatalf("expected a single page, got %d", len(pages))
	}
	if pages[0] != "just a few words" {
		t.Fatalf("unexpected page content %q", pages[0])
	}
}

func TestPaginate_EmptyContent(t *testing.T) {
	pages := Paginate("", 250)
	if len(pages) != 1 {
		t.Fatalf("expected exactly one page, got %d", len(pages))
	}
	if pages[0] != "" {
		t.Fatalf("expected the single page to be empty, got %q", pages[0])
	}
}

func TestPageCount(t *testing.T) {
	tests := []struct {
		words    int
		pageSize int
		want     int
	}{
		{0, 100, 1},
		{1, 100, 1},
		{100, 100, 1},
		{101, 100, 2},
		{200, 100, 2},
		{201, 100, 3},
	}
	for _, tt := range tests {
		if got := PageCount(wordsOfLength(tt.words), tt.pageSize); got != tt.want {
			t.Fatalf("PageCount(%d words, %d) = %d, want %d", tt.words, tt.pageSize, got, tt.want)
		}
	}
}

func TestClampPage(t *testing.T) {
	tests := []struct {
		page, total, want int
	}{
		{0, 3, 0},
		{2, 3, 2},
		{3, 3, 2},  // past the end clamps to last
		{-1, 3, 0}, // before the start clamps to first
		{5, 1, 0},
		{0, 0, 0},
	}
	for _, tt := range tests {
		if got := ClampPage(tt.page, tt.total); got != tt.want {
			t.Fatalf("ClampPage(%d, %d) = %d, want %d", tt.page, tt.total, got, tt.want)
		}
	}
}

func TestSpread(t *testing.T) {
	pages := []string{"one", "two", "three"}

	left, right, hasRight := Spread(pages, 0)
	if left != "one" || right != "two" || !hasRight {
		t.Fatalf("unexpected spread at 0: %q %q %v", left, right, hasRight)
	}

	left, right, hasRight = Spread(pages, 2)
	if left != "three" || hasRight {
		t.Fatalf("expected last page alone, got %q %q %v", left, right, hasRight)
	}

	// Out of range is clamped, not an error.
	left, _, _ = Spread(pages, 99)
	if left != "three" {
		t.Fatalf("expected clamp to last page, got %q", left)
	}

	left, right, hasRight = Spread([]string{""}, 0)
	if left != "" || hasRight {
		t.Fatalf("expected single empty page with next disabled, got %q %q %v", left, right, hasRight)
	}
}
