package table

import "sort"

// SelectionModel tracks row ids checked for bulk action. Selection is
// page-scoped: syncing to a page with a different id set clears it, so a
// selection can never reference rows that are no longer on screen.
type SelectionModel struct {
	selected map[string]struct{}
	pageIDs  []string
}

// NewSelectionModel starts empty with no page loaded.
func NewSelectionModel() SelectionModel {
	return SelectionModel{selected: make(map[string]struct{})}
}

// SyncPage records the id set of the freshly fetched page. If it differs
// from the previous one the selection is cleared.
func (s *SelectionModel) SyncPage(ids []string) {
	if !equalIDs(s.pageIDs, ids) {
		s.selected = make(map[string]struct{})
	}
	s.pageIDs = append([]string(nil), ids...)
}

// Select toggles one row. Ids not on the current page are ignored.
func (s *SelectionModel) Select(id string, checked bool) {
	if !s.onPage(id) {
		return
	}
	if checked {
		s.selected[id] = struct{}{}
	} else {
		delete(s.selected, id)
	}
}

// SelectAll checks or unchecks every row of the current page.
func (s *SelectionModel) SelectAll(checked bool) {
	s.selected = make(map[string]struct{})
	if !checked {
		return
	}
	for _, id := range s.pageIDs {
		s.selected[id] = struct{}{}
	}
}

// AllSelected is true iff every row of a non-empty page is selected.
func (s *SelectionModel) AllSelected() bool {
	return len(s.pageIDs) > 0 && len(s.selected) == len(s.pageIDs)
}

// IsSelected reports whether a row is checked.
func (s *SelectionModel) IsSelected(id string) bool {
	_, ok := s.selected[id]
	return ok
}

// Count returns the selection size.
func (s *SelectionModel) Count() int {
	return len(s.selected)
}

// IDs returns the selected ids sorted for stable downstream dispatch.
func (s *SelectionModel) IDs() []string {
	ids := make([]string, 0, len(s.selected))
	for id := range s.selected {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Clear drops the selection without touching the page id set.
func (s *SelectionModel) Clear() {
	s.selected = make(map[string]struct{})
}

func (s *SelectionModel) onPage(id string) bool {
	for _, pageID := range s.pageIDs {
		if pageID == id {
			return true
		}
	}
	return false
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
