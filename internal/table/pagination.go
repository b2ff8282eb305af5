package table

import "github.com/musicmindsdev/music-minds-admin-sub000/internal/models"

// PaginationModel tracks the current position within a fetched result set and
// computes the visible page-number window.
type PaginationModel struct {
	Current    int
	PageSize   int
	TotalCount int
	TotalPages int
}

// NewPaginationModel starts at page 1 with the given page size.
func NewPaginationModel(pageSize int) PaginationModel {
	if pageSize < 1 {
		pageSize = models.DefaultPageSize
	}
	return PaginationModel{Current: 1, PageSize: pageSize}
}

// Apply updates counts from a fetched page and clamps the current page into
// the new bounds.
func (p *PaginationModel) Apply(totalCount, totalPages int) {
	if totalCount < 0 {
		totalCount = 0
	}
	p.TotalCount = totalCount
	if totalPages > 0 {
		p.TotalPages = totalPages
	} else {
		p.TotalPages = PageCount(totalCount, p.PageSize)
	}
	if p.Current > p.TotalPages && p.TotalPages > 0 {
		p.Current = p.TotalPages
	}
	if p.Current < 1 {
		p.Current = 1
	}
}

// GoTo moves to page n. Out-of-range targets are a silent no-op; the return
// value reports whether the page actually changed.
func (p *PaginationModel) GoTo(n int) bool {
	if n < 1 || n > p.TotalPages || n == p.Current {
		return false
	}
	p.Current = n
	return true
}

// SetPageSize changes the page size and resets to page 1.
func (p *PaginationModel) SetPageSize(size int) {
	if size < 1 {
		return
	}
	p.PageSize = size
	p.Current = 1
	p.TotalPages = PageCount(p.TotalCount, size)
}

// Reset returns to page 1, keeping the page size.
func (p *PaginationModel) Reset() {
	p.Current = 1
}

// Window returns a sliding window of page numbers centered on the current
// page, clamped to [1, TotalPages], always min(TotalPages, size) long.
func (p *PaginationModel) Window(size int) []int {
	if size < 1 {
		size = models.DefaultWindowSize
	}
	if p.TotalPages < 1 {
		return nil
	}
	if size > p.TotalPages {
		size = p.TotalPages
	}

	start := p.Current - size/2
	if start < 1 {
		start = 1
	}
	if start+size-1 > p.TotalPages {
		start = p.TotalPages - size + 1
	}

	window := make([]int, size)
	for i := range window {
		window[i] = start + i
	}
	return window
}

// PageCount is ceil(totalCount/pageSize) with zero for empty sets.
func PageCount(totalCount, pageSize int) int {
	if totalCount <= 0 || pageSize < 1 {
		return 0
	}
	return (totalCount + pageSize - 1) / pageSize
}
