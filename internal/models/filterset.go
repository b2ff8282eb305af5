package models

import (
	"strings"
	"time"
)

// StatusFlag is one toggle in a status filter family. Order of flags is the
// declaration order of the entity's statuses; it decides the order statuses
// appear in the outgoing query.
type StatusFlag struct {
	Name   string
	Active bool
}

// FilterSet is the current combination of filter dimensions for one table.
// An inactive dimension contributes nothing to the outgoing query.
type FilterSet struct {
	Statuses []StatusFlag `json:"statuses,omitempty"`
	Search   string       `json:"search,omitempty"`
	Category string       `json:"category,omitempty"`
	DateFrom time.Time    `json:"date_from,omitempty"`
	DateTo   time.Time    `json:"date_to,omitempty"`
}

// NewFilterSet prepares an all-inactive filter set for the given status family.
func NewFilterSet(statuses ...string) FilterSet {
	flags := make([]StatusFlag, 0, len(statuses))
	for _, s := range statuses {
		flags = append(flags, StatusFlag{Name: s})
	}
	return FilterSet{Statuses: flags}
}

// SetStatus toggles one status flag. With exclusive set, all sibling flags
// are zeroed first so the family behaves as a single-select group.
func (f *FilterSet) SetStatus(name string, active, exclusive bool) {
	for i := range f.Statuses {
		if exclusive && f.Statuses[i].Name != name {
			f.Statuses[i].Active = false
		}
		if f.Statuses[i].Name == name {
			f.Statuses[i].Active = active
		}
	}
}

// ActiveStatuses returns the active status names in declaration order.
func (f *FilterSet) ActiveStatuses() []string {
	var active []string
	for _, flag := range f.Statuses {
		if flag.Active {
			active = append(active, flag.Name)
		}
	}
	return active
}

// StatusParam renders the status dimension as a comma-separated value,
// empty when the dimension is inactive.
func (f *FilterSet) StatusParam() string {
	return strings.Join(f.ActiveStatuses(), ",")
}

// SetDateRange sets the date range dimension. Zero values deactivate a bound.
func (f *FilterSet) SetDateRange(from, to time.Time) {
	f.DateFrom = from
	f.DateTo = to
}

// Reset deactivates every dimension while keeping the status family intact.
func (f *FilterSet) Reset() {
	for i := range f.Statuses {
		f.Statuses[i].Active = false
	}
	f.Search = ""
	f.Category = ""
	f.DateFrom = time.Time{}
	f.DateTo = time.Time{}
}

// IsZero reports whether no dimension is active.
func (f *FilterSet) IsZero() bool {
	if f.Search != "" || f.Category != "" {
		return false
	}
	if !f.DateFrom.IsZero() || !f.DateTo.IsZero() {
		return false
	}
	for _, flag := range f.Statuses {
		if flag.Active {
			return false
		}
	}
	return true
}
