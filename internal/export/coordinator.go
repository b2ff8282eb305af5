// Package export gathers a filtered, unpaginated row set and writes it to an
// Excel workbook with the caller's field selection.
package export

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/musicmindsdev/music-minds-admin-sub000/internal/domain"
	"github.com/musicmindsdev/music-minds-admin-sub000/internal/entities"
	"github.com/musicmindsdev/music-minds-admin-sub000/internal/events"
	"github.com/musicmindsdev/music-minds-admin-sub000/internal/metrics"
	"github.com/musicmindsdev/music-minds-admin-sub000/internal/models"
	"github.com/musicmindsdev/music-minds-admin-sub000/internal/query"
)

// Coordinator runs the fetch-all-then-write export flow.
type Coordinator struct {
	fetcher domain.Fetcher
	dir     string
	logger  *zerolog.Logger
	events  domain.EventPublisher
}

// NewCoordinator builds a coordinator writing files under dir.
func NewCoordinator(fetcher domain.Fetcher, dir string, logger *zerolog.Logger) *Coordinator {
	return &Coordinator{fetcher: fetcher, dir: dir, logger: logger}
}

// SetEventPublisher wires the engine event bus.
func (c *Coordinator) SetEventPublisher(pub domain.EventPublisher) {
	c.events = pub
}

// FetchAll retrieves the complete filtered row set using the oversized page
// limit, ignoring whatever page size the table is currently on.
func (c *Coordinator) FetchAll(ctx context.Context, entity entities.Config, filters models.FilterSet) ([]models.Record, error) {
	q := query.Build(filters, 1, models.ExportFetchLimit)

	page, err := c.fetcher.FetchPage(ctx, domain.ListRequest{
		Path:       entity.Path,
		ArrayField: entity.ArrayField,
		Query:      q,
	})
	if err != nil {
		return nil, fmt.Errorf("fetch all for export: %w", err)
	}
	return page.Items, nil
}

// Export fetches the filtered rows and writes them as a workbook using the
// selected fields. Empty fields means every export field of the entity.
func (c *Coordinator) Export(ctx context.Context, entity entities.Config, filters models.FilterSet, fields []entities.FieldOption) (string, error) {
	rows, err := c.FetchAll(ctx, entity, filters)
	if err != nil {
		return "", err
	}

	if len(fields) == 0 {
		fields = entity.ExportFields
	}

	path, err := writeWorkbook(c.dir, entity, rows, fields, time.Now())
	if err != nil {
		return "", err
	}

	metrics.IncExport(entity.Name)
	if c.logger != nil {
		c.logger.Info().Str("entity", entity.Name).Int("rows", len(rows)).Str("file_path", path).Msg("export created")
	}
	if c.events != nil {
		_ = c.events.PublishJSON(events.EventExportCompleted, events.ExportPayload{
			Entity: entity.Name,
			Rows:   len(rows),
			Path:   path,
		})
	}

	return path, nil
}
