package export

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/musicmindsdev/music-minds-admin-sub000/internal/domain"
	"github.com/musicmindsdev/music-minds-admin-sub000/internal/entities"
	"github.com/musicmindsdev/music-minds-admin-sub000/internal/models"
)

type stubFetcher struct {
	lastRequest domain.ListRequest
	page        *models.Page
	err         error
}

func (s *stubFetcher) FetchPage(ctx context.Context, req domain.ListRequest) (*models.Page, error) {
	s.lastRequest = req
	if s.err != nil {
		return nil, s.err
	}
	return s.page, nil
}

func settlementsEntity(t *testing.T) entities.Config {
	t.Helper()
	cfg, err := entities.Get("settlements")
	require.NoError(t, err)
	return cfg
}

func TestFetchAllUsesOversizedLimit(t *testing.T) {
	fetcher := &stubFetcher{page: &models.Page{Items: []models.Record{{"id": "s1"}}}}
	c := NewCoordinator(fetcher, t.TempDir(), nil)

	filters := models.NewFilterSet(models.StatusApproved)
	filters.SetDateRange(
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
	)

	rows, err := c.FetchAll(context.Background(), settlementsEntity(t), filters)
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	q := fetcher.lastRequest.Query
	assert.Equal(t, "10000", q.Get("limit"), "export ignores the table page size")
	assert.Equal(t, "1", q.Get("page"))
	assert.Equal(t, "2025-01-01T00:00:00Z", q.Get("fromDate"))
	assert.Equal(t, "2025-01-31T23:59:59Z", q.Get("toDate"))
}

func TestExportWritesWorkbook(t *testing.T) {
	fetcher := &stubFetcher{page: &models.Page{Items: []models.Record{
		{"id": "s1", "providerName": "Blue Note Studio", "amount": float64(1200), "status": "APPROVED", "requestedAt": "2025-01-05T10:00:00Z"},
		{"id": "s2", "providerName": "Muddy Waters", "amount": 85.5, "status": "PENDING"},
	}}}
	dir := t.TempDir()
	c := NewCoordinator(fetcher, dir, nil)

	path, err := c.Export(context.Background(), settlementsEntity(t), models.NewFilterSet(), nil)
	require.NoError(t, err)
	require.FileExists(t, path)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Settlements")
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus two data rows")

	assert.Equal(t, []string{"ID", "Provider", "Amount", "Status", "Requested"}, rows[0])
	assert.Equal(t, "s1", rows[1][0])
	assert.Equal(t, "Blue Note Studio", rows[1][1])
	assert.Equal(t, "1200", rows[1][2])
	assert.Equal(t, "05.01.2025 10:00", rows[1][4])
	assert.Equal(t, "85.5", rows[2][2])
}

func TestExportFieldSelection(t *testing.T) {
	fetcher := &stubFetcher{page: &models.Page{Items: []models.Record{
		{"id": "s1", "amount": float64(10), "status": "PENDING"},
	}}}
	c := NewCoordinator(fetcher, t.TempDir(), nil)

	fields := []entities.FieldOption{
		{Label: "Amount", Value: "amount"},
		{Label: "Status", Value: "status"},
	}
	path, err := c.Export(context.Background(), settlementsEntity(t), models.NewFilterSet(), fields)
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Settlements")
	require.NoError(t, err)
	assert.Equal(t, []string{"Amount", "Status"}, rows[0])
}

func TestExportPropagatesFetchError(t *testing.T) {
	fetcher := &stubFetcher{err: errors.New("api down")}
	c := NewCoordinator(fetcher, t.TempDir(), nil)

	_, err := c.Export(context.Background(), settlementsEntity(t), models.NewFilterSet(), nil)
	assert.ErrorContains(t, err, "api down")
}
