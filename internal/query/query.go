// Package query translates in-memory filter state into the canonical request
// parameters the admin API expects. Building is pure: same filters in, same
// params out, no side effects.
package query

import (
	"net/url"
	"strconv"
	"time"

	"github.com/musicmindsdev/music-minds-admin-sub000/internal/models"
)

// Build renders the active filter dimensions plus pagination into query
// parameters. Inactive dimensions emit no key at all, so an empty filter set
// yields only page and limit.
func Build(filters models.FilterSet, page, pageSize int) url.Values {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = models.DefaultPageSize
	}

	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("limit", strconv.Itoa(pageSize))

	if status := filters.StatusParam(); status != "" {
		params.Set("status", status)
	}
	if filters.Search != "" {
		params.Set("search", filters.Search)
	}
	if filters.Category != "" {
		params.Set("category", filters.Category)
	}
	if !filters.DateFrom.IsZero() {
		params.Set("fromDate", StartOfDay(filters.DateFrom).Format(time.RFC3339))
	}
	if !filters.DateTo.IsZero() {
		params.Set("toDate", EndOfDay(filters.DateTo).Format(time.RFC3339))
	}

	return params
}

// StartOfDay normalizes a range-from bound to 00:00:00 UTC of its date.
func StartOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// EndOfDay normalizes a range-to bound to 23:59:59 UTC of its date.
func EndOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, time.UTC)
}
