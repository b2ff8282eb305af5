package table

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/musicmindsdev/music-minds-admin-sub000/internal/client"
	"github.com/musicmindsdev/music-minds-admin-sub000/internal/domain"
	"github.com/musicmindsdev/music-minds-admin-sub000/internal/entities"
	"github.com/musicmindsdev/music-minds-admin-sub000/internal/models"
)

type stubFetcher struct {
	mu       sync.Mutex
	requests []domain.ListRequest
	respond  func(req domain.ListRequest) (*models.Page, error)
}

func (f *stubFetcher) FetchPage(ctx context.Context, req domain.ListRequest) (*models.Page, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	respond := f.respond
	f.mu.Unlock()
	return respond(req)
}

func (f *stubFetcher) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func (f *stubFetcher) lastRequest() domain.ListRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[len(f.requests)-1]
}

func pageOf(ids ...string) *models.Page {
	items := make([]models.Record, 0, len(ids))
	for _, id := range ids {
		items = append(items, models.Record{"id": id, "status": models.StatusPending})
	}
	return &models.Page{Items: items, TotalCount: len(items), PageCount: 1}
}

func testEntity(t *testing.T) entities.Config {
	t.Helper()
	cfg, err := entities.Get("reviews")
	require.NoError(t, err)
	return cfg
}

func TestRefreshSuccess(t *testing.T) {
	fetcher := &stubFetcher{respond: func(domain.ListRequest) (*models.Page, error) {
		return &models.Page{
			Items:      []models.Record{{"id": "r1"}, {"id": "r2"}},
			TotalCount: 95,
			PageCount:  10,
		}, nil
	}}
	c := NewController(testEntity(t), fetcher, 10, nil)

	require.NoError(t, c.Refresh(context.Background()))

	assert.Equal(t, StateReady, c.State())
	assert.Len(t, c.Rows(), 2)
	assert.Equal(t, 95, c.Pagination().TotalCount)
	assert.Equal(t, 10, c.Pagination().TotalPages)
	assert.Equal(t, "/api/reviews", fetcher.lastRequest().Path)
	assert.Equal(t, "reviews", fetcher.lastRequest().ArrayField)
}

func TestRefreshErrorClearsRows(t *testing.T) {
	fail := false
	fetcher := &stubFetcher{respond: func(domain.ListRequest) (*models.Page, error) {
		if fail {
			return nil, &client.APIError{StatusCode: http.StatusInternalServerError, Message: "boom"}
		}
		return pageOf("a", "b"), nil
	}}
	c := NewController(testEntity(t), fetcher, 10, nil)

	require.NoError(t, c.Refresh(context.Background()))
	require.Len(t, c.Rows(), 2)

	fail = true
	err := c.Refresh(context.Background())
	require.Error(t, err)

	// No last-known-good fallback: the table blanks and shows the error.
	assert.Equal(t, StateFailed, c.State())
	assert.Empty(t, c.Rows())
	assert.Contains(t, c.ErrorMessage(), "boom")

	fail = false
	require.NoError(t, c.Retry(context.Background()))
	assert.Equal(t, StateReady, c.State())
	assert.Empty(t, c.ErrorMessage())
}

func TestUnauthorizedFiresHookAndRendersNothing(t *testing.T) {
	fetcher := &stubFetcher{respond: func(domain.ListRequest) (*models.Page, error) {
		return nil, client.ErrUnauthorized
	}}
	c := NewController(testEntity(t), fetcher, 10, nil)

	redirected := false
	c.SetAuthExpiredHook(func() { redirected = true })

	err := c.Refresh(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, client.ErrUnauthorized))
	assert.True(t, redirected)
	assert.Empty(t, c.Rows())
	assert.Empty(t, c.ErrorMessage(), "401 shows no in-table error")
}

func TestFilterChangeResetsPageAndSelection(t *testing.T) {
	fetcher := &stubFetcher{respond: func(req domain.ListRequest) (*models.Page, error) {
		if req.Query.Get("page") == "2" {
			p := pageOf("c", "d")
			p.TotalCount = 40
			p.PageCount = 4
			return p, nil
		}
		p := pageOf("a", "b")
		p.TotalCount = 40
		p.PageCount = 4
		return p, nil
	}}
	c := NewController(testEntity(t), fetcher, 10, nil)

	require.NoError(t, c.Refresh(context.Background()))
	require.NoError(t, c.GoToPage(context.Background(), 2))
	c.SelectAll(true)
	assert.Equal(t, 2, c.SelectionCount())

	require.NoError(t, c.SetSearch(context.Background(), "sax"))

	assert.Equal(t, 1, c.Pagination().Current)
	assert.Equal(t, "sax", fetcher.lastRequest().Query.Get("search"))
	assert.Equal(t, 0, c.SelectionCount(), "selection clears when the id set changes")
}

func TestGoToPageOutOfRangeIssuesNoFetch(t *testing.T) {
	fetcher := &stubFetcher{respond: func(domain.ListRequest) (*models.Page, error) {
		p := pageOf("a")
		p.TotalCount = 95
		p.PageCount = 10
		return p, nil
	}}
	c := NewController(testEntity(t), fetcher, 10, nil)
	require.NoError(t, c.Refresh(context.Background()))
	before := fetcher.calls()

	require.NoError(t, c.GoToPage(context.Background(), 0))
	require.NoError(t, c.GoToPage(context.Background(), 11))

	assert.Equal(t, before, fetcher.calls())
	assert.Equal(t, 1, c.Pagination().Current)
}

func TestExclusiveStatusFamily(t *testing.T) {
	cfg, err := entities.Get("announcements")
	require.NoError(t, err)
	fetcher := &stubFetcher{respond: func(domain.ListRequest) (*models.Page, error) {
		return pageOf(), nil
	}}
	c := NewController(cfg, fetcher, 10, nil)

	require.NoError(t, c.SetStatus(context.Background(), models.StatusDraft, true))
	require.NoError(t, c.SetStatus(context.Background(), models.StatusPublished, true))

	assert.Equal(t, "PUBLISHED", fetcher.lastRequest().Query.Get("status"),
		"exclusive family keeps only the most recent toggle")
}

func TestStaleResponseDiscarded(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	fetcher := &stubFetcher{}
	fetcher.respond = func(req domain.ListRequest) (*models.Page, error) {
		if req.Query.Get("search") == "slow" {
			close(started)
			<-release
			return pageOf("stale"), nil
		}
		return pageOf("fresh"), nil
	}
	c := NewController(testEntity(t), fetcher, 10, nil)

	done := make(chan error, 1)
	go func() {
		done <- c.SetSearch(context.Background(), "slow")
	}()
	<-started

	// A newer fetch completes while the first is still in flight.
	require.NoError(t, c.SetSearch(context.Background(), "fast"))
	require.Equal(t, []string{"fresh"}, rowIDs(c.Rows()))

	close(release)
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("slow fetch never returned")
	}

	// The slow response arrived last but must not overwrite the newer page.
	assert.Equal(t, []string{"fresh"}, rowIDs(c.Rows()))
	assert.Equal(t, StateReady, c.State())
}

func rowIDs(rows []models.Record) []string {
	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID())
	}
	return ids
}
