package dashboard

import (
	"sort"
	"time"
)

// PageSize is the fixed number of cards per dashboard page.
const PageSize = 5

// pager holds the full fetched collection for one tab plus its page
// cursor. It is rebuilt wholesale on every fetch; pages are computed
// slices, never copies kept in sync.
type pager[T any] struct {
	items []T
	page  int
}

// Reset replaces the content and moves the cursor back to page 1.
func (p *pager[T]) Reset(items []T) {
	p.items = items
	p.page = 1
}

// Len is the number of held items.
func (p *pager[T]) Len() int {
	return len(p.items)
}

// Current is the tracked current page. It only changes through Reset
// and successful Navigate calls.
func (p *pager[T]) Current() int {
	if p.page == 0 {
		return 1
	}
	return p.page
}

// TotalPages is ceil(len/PageSize); zero for an empty collection.
func (p *pager[T]) TotalPages() int {
	return (len(p.items) + PageSize - 1) / PageSize
}

// Slice returns the items of the given 1-based page, clamped to the
// available length. Pages beyond the content come back empty.
func (p *pager[T]) Slice(page int) []T {
	start := (page - 1) * PageSize
	if page < 1 || start >= len(p.items) {
		return nil
	}
	end := start + PageSize
	if end > len(p.items) {
		end = len(p.items)
	}
	return p.items[start:end]
}

// Navigate moves the cursor to target and reports whether it moved.
// Targets outside [1, TotalPages] are ignored without error.
func (p *pager[T]) Navigate(target int) bool {
	if target < 1 || target > p.TotalPages() {
		return false
	}
	p.page = target
	return true
}

// sortNewestFirst orders items by their event timestamp, most recent
// first. A missing timestamp sorts as zero, i.e. oldest. The sort is
// stable so entries with equal timestamps keep their fetch order.
func sortNewestFirst[T any](items []T, eventTime func(T) time.Time) {
	sort.SliceStable(items, func(i, j int) bool {
		return eventTime(items[i]).After(eventTime(items[j]))
	})
}
