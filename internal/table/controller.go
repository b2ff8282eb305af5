// Package table implements the generic data-table engine the admin console
// instantiates once per entity: filter state feeding a query builder, a
// guarded fetch cycle, pagination math and page-scoped bulk selection.
package table

import (
	"context"
	"errors"
	"net/url"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/musicmindsdev/music-minds-admin-sub000/internal/client"
	"github.com/musicmindsdev/music-minds-admin-sub000/internal/domain"
	"github.com/musicmindsdev/music-minds-admin-sub000/internal/entities"
	"github.com/musicmindsdev/music-minds-admin-sub000/internal/events"
	"github.com/musicmindsdev/music-minds-admin-sub000/internal/metrics"
	"github.com/musicmindsdev/music-minds-admin-sub000/internal/models"
	"github.com/musicmindsdev/music-minds-admin-sub000/internal/query"
)

// State is the fetch lifecycle of a table.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateReady
	StateFailed
)

// Controller drives one entity table. All methods are safe for concurrent
// use; a monotonically increasing fetch token guarantees a slow response can
// never overwrite a newer one.
type Controller struct {
	entity  entities.Config
	fetcher domain.Fetcher
	logger  *zerolog.Logger
	events  domain.EventPublisher

	onAuthExpired func()

	fetchSeq atomic.Uint64

	mu         sync.Mutex
	state      State
	page       *models.Page
	errMsg     string
	filters    models.FilterSet
	pagination PaginationModel
	selection  SelectionModel
	lastQuery  url.Values
}

// NewController prepares an idle table for one entity.
func NewController(entity entities.Config, fetcher domain.Fetcher, pageSize int, logger *zerolog.Logger) *Controller {
	return &Controller{
		entity:     entity,
		fetcher:    fetcher,
		logger:     logger,
		filters:    models.NewFilterSet(entity.Statuses...),
		pagination: NewPaginationModel(pageSize),
		selection:  NewSelectionModel(),
	}
}

// SetAuthExpiredHook registers the login-boundary redirect fired on a 401.
func (c *Controller) SetAuthExpiredHook(hook func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onAuthExpired = hook
}

// SetEventPublisher wires the engine event bus.
func (c *Controller) SetEventPublisher(pub domain.EventPublisher) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = pub
}

// Refresh fetches the current page with the current filters.
func (c *Controller) Refresh(ctx context.Context) error {
	c.mu.Lock()
	q := query.Build(c.filters, c.pagination.Current, c.pagination.PageSize)
	c.lastQuery = q
	c.mu.Unlock()
	return c.fetch(ctx, q)
}

// Retry re-issues the last query after a failure.
func (c *Controller) Retry(ctx context.Context) error {
	c.mu.Lock()
	q := c.lastQuery
	c.mu.Unlock()
	if q == nil {
		return c.Refresh(ctx)
	}
	return c.fetch(ctx, q)
}

// GoToPage navigates to page n and refetches. Out-of-range targets are a
// silent no-op, mirroring the clamp-don't-complain behavior of the UI.
func (c *Controller) GoToPage(ctx context.Context, n int) error {
	c.mu.Lock()
	moved := c.pagination.GoTo(n)
	c.mu.Unlock()
	if !moved {
		return nil
	}
	return c.Refresh(ctx)
}

// SetPageSize changes the page size, resets to page 1 and refetches.
func (c *Controller) SetPageSize(ctx context.Context, size int) error {
	c.mu.Lock()
	c.pagination.SetPageSize(size)
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// SetSearch updates the free-text dimension. Search is resolved server-side
// only; the engine never re-filters fetched rows.
func (c *Controller) SetSearch(ctx context.Context, term string) error {
	return c.updateFilters(ctx, func(f *models.FilterSet) { f.Search = term })
}

// SetStatus toggles a status flag, single-select when the entity's status
// family is declared exclusive.
func (c *Controller) SetStatus(ctx context.Context, status string, active bool) error {
	return c.updateFilters(ctx, func(f *models.FilterSet) {
		f.SetStatus(status, active, c.entity.ExclusiveStatus)
	})
}

// SetCategory updates the type/category dimension; empty deactivates it.
func (c *Controller) SetCategory(ctx context.Context, category string) error {
	return c.updateFilters(ctx, func(f *models.FilterSet) { f.Category = category })
}

// SetDateRange updates the date range dimension; zero bounds deactivate.
func (c *Controller) SetDateRange(ctx context.Context, from, to time.Time) error {
	return c.updateFilters(ctx, func(f *models.FilterSet) { f.SetDateRange(from, to) })
}

// ClearFilters deactivates every dimension and refetches from page 1.
func (c *Controller) ClearFilters(ctx context.Context) error {
	return c.updateFilters(ctx, func(f *models.FilterSet) { f.Reset() })
}

// ApplyView replaces the filter set with a saved preset and refetches.
func (c *Controller) ApplyView(ctx context.Context, view *models.View) error {
	return c.updateFilters(ctx, func(f *models.FilterSet) { *f = view.Filters })
}

// Any filter change resets pagination to page 1.
func (c *Controller) updateFilters(ctx context.Context, mutate func(*models.FilterSet)) error {
	c.mu.Lock()
	mutate(&c.filters)
	c.pagination.Reset()
	c.mu.Unlock()
	return c.Refresh(ctx)
}

func (c *Controller) fetch(ctx context.Context, q url.Values) error {
	token := c.fetchSeq.Add(1)

	c.mu.Lock()
	// Loading blanks the table; there is no stale-while-revalidate.
	c.state = StateLoading
	c.page = nil
	c.errMsg = ""
	c.mu.Unlock()

	page, err := c.fetcher.FetchPage(ctx, domain.ListRequest{
		Path:       c.entity.Path,
		ArrayField: c.entity.ArrayField,
		Query:      q,
	})

	c.mu.Lock()
	defer c.mu.Unlock()

	if token != c.fetchSeq.Load() {
		// A newer fetch started while this one was in flight; its result
		// owns the table now.
		return nil
	}

	if err != nil {
		c.applyError(err)
		return err
	}

	c.state = StateReady
	c.page = page
	c.pagination.Apply(page.TotalCount, page.PageCount)
	c.selection.SyncPage(page.IDs())
	metrics.IncFetch(c.entity.Name, "success")
	c.publish(events.EventFetchCompleted, events.FetchPayload{
		Entity: c.entity.Name,
		Rows:   len(page.Items),
		Total:  page.TotalCount,
	})
	return nil
}

func (c *Controller) applyError(err error) {
	c.state = StateFailed
	c.page = nil
	c.selection.SyncPage(nil)
	metrics.IncFetch(c.entity.Name, "error")

	if errors.Is(err, client.ErrUnauthorized) {
		// Session-terminal: hand off to the login boundary, render nothing.
		c.errMsg = ""
		if c.onAuthExpired != nil {
			c.onAuthExpired()
		}
		return
	}

	c.errMsg = err.Error()
	if c.logger != nil {
		c.logger.Error().Err(err).Str("entity", c.entity.Name).Msg("table fetch failed")
	}
}

func (c *Controller) publish(eventType string, payload any) {
	if c.events == nil {
		return
	}
	if err := c.events.PublishJSON(eventType, payload); err != nil && c.logger != nil {
		c.logger.Error().Err(err).Str("event_type", eventType).Msg("publish event error")
	}
}

// State returns the fetch lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Rows returns the current page's records; empty while loading or failed.
func (c *Controller) Rows() []models.Record {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.page == nil {
		return nil
	}
	return append([]models.Record(nil), c.page.Items...)
}

// ErrorMessage is the user-visible failure text, empty outside StateFailed.
func (c *Controller) ErrorMessage() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errMsg
}

// Filters returns a copy of the current filter set.
func (c *Controller) Filters() models.FilterSet {
	c.mu.Lock()
	defer c.mu.Unlock()
	f := c.filters
	f.Statuses = append([]models.StatusFlag(nil), c.filters.Statuses...)
	return f
}

// Pagination returns a snapshot of the pagination model.
func (c *Controller) Pagination() PaginationModel {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pagination
}

// Select toggles one row in the bulk selection.
func (c *Controller) Select(id string, checked bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selection.Select(id, checked)
}

// SelectAll checks or unchecks every visible row.
func (c *Controller) SelectAll(checked bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selection.SelectAll(checked)
}

// SelectedIDs returns the checked row ids sorted.
func (c *Controller) SelectedIDs() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selection.IDs()
}

// AllSelected reports whether every row of a non-empty page is checked.
func (c *Controller) AllSelected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selection.AllSelected()
}

// SelectionCount returns the bulk selection size.
func (c *Controller) SelectionCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selection.Count()
}

// Entity exposes the table's entity configuration.
func (c *Controller) Entity() entities.Config {
	return c.entity
}
