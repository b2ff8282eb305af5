package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/musicmindsdev/music-minds-admin-sub000/internal/models"
)

func TestBuildEmptyFilterSet(t *testing.T) {
	filters := models.NewFilterSet(models.StatusPublished, models.StatusDraft)

	params := Build(filters, 1, 10)

	assert.Equal(t, "page=1&limit=10", "page="+params.Get("page")+"&limit="+params.Get("limit"))
	assert.Len(t, params, 2, "inactive dimensions must not emit keys")
}

func TestBuildSingleStatus(t *testing.T) {
	filters := models.NewFilterSet(models.StatusPublished, models.StatusDraft)
	filters.SetStatus(models.StatusPublished, true, false)

	params := Build(filters, 1, 10)

	assert.Equal(t, "limit=10&page=1&status=PUBLISHED", params.Encode())
}

func TestBuildMultiStatusCommaJoined(t *testing.T) {
	filters := models.NewFilterSet(models.StatusApproved, models.StatusRejected)
	filters.SetStatus(models.StatusRejected, true, false)
	filters.SetStatus(models.StatusApproved, true, false)

	params := Build(filters, 2, 25)

	assert.Equal(t, "APPROVED,REJECTED", params.Get("status"))
	assert.Equal(t, "2", params.Get("page"))
	assert.Equal(t, "25", params.Get("limit"))
}

func TestBuildDateNormalization(t *testing.T) {
	filters := models.NewFilterSet()
	from := time.Date(2025, 1, 1, 14, 22, 3, 0, time.UTC)
	to := time.Date(2025, 1, 31, 6, 0, 0, 0, time.UTC)
	filters.SetDateRange(from, to)

	params := Build(filters, 1, 10)

	assert.Equal(t, "2025-01-01T00:00:00Z", params.Get("fromDate"))
	assert.Equal(t, "2025-01-31T23:59:59Z", params.Get("toDate"))
}

func TestBuildSearchAndCategory(t *testing.T) {
	filters := models.NewFilterSet()
	filters.Search = "jazz studio"
	filters.Category = "EQUIPMENT"

	params := Build(filters, 1, 10)

	assert.Equal(t, "jazz studio", params.Get("search"))
	assert.Equal(t, "EQUIPMENT", params.Get("category"))
}

func TestBuildDeterministic(t *testing.T) {
	filters := models.NewFilterSet(models.StatusPending, models.StatusApproved)
	filters.SetStatus(models.StatusPending, true, false)
	filters.Search = "nina"
	filters.SetDateRange(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), time.Time{})

	first := Build(filters, 3, 50).Encode()
	second := Build(filters, 3, 50).Encode()

	assert.Equal(t, first, second)
}

func TestBuildClampsBadPagination(t *testing.T) {
	filters := models.NewFilterSet()

	params := Build(filters, 0, -5)

	assert.Equal(t, "1", params.Get("page"))
	assert.Equal(t, "10", params.Get("limit"))
}
