package views

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/musicmindsdev/music-minds-admin-sub000/internal/domain"
	"github.com/musicmindsdev/music-minds-admin-sub000/internal/models"
)

// recoveryInterval is how long a failed primary stays benched before the
// wrapper probes it again.
const recoveryInterval = time.Minute

// FailoverViewRepository reads and writes through the primary store and
// falls back to the secondary when the primary errors, probing for recovery
// periodically.
type FailoverViewRepository struct {
	primary  domain.ViewRepository
	fallback domain.ViewRepository
	logger   *zerolog.Logger
	isDown   atomic.Bool
	downedAt atomic.Int64
}

func NewFailoverViewRepository(primary, fallback domain.ViewRepository, logger *zerolog.Logger) *FailoverViewRepository {
	return &FailoverViewRepository{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

func (r *FailoverViewRepository) markDown(err error) {
	r.isDown.Store(true)
	r.downedAt.Store(time.Now().UnixNano())
	if r.logger != nil {
		r.logger.Error().Err(err).Msg("primary view store failed, falling back to memory")
	}
}

func (r *FailoverViewRepository) primaryUsable() bool {
	if !r.isDown.Load() {
		return true
	}
	// Give the primary another chance after the bench interval.
	if time.Since(time.Unix(0, r.downedAt.Load())) > recoveryInterval {
		r.downedAt.Store(time.Now().UnixNano())
		return true
	}
	return false
}

func (r *FailoverViewRepository) recovered() {
	r.isDown.Store(false)
}

func (r *FailoverViewRepository) SaveView(ctx context.Context, view *models.View) error {
	if r.primaryUsable() {
		if err := r.primary.SaveView(ctx, view); err == nil {
			r.recovered()
			return nil
		} else {
			r.markDown(err)
		}
	}
	return r.fallback.SaveView(ctx, view)
}

func (r *FailoverViewRepository) GetView(ctx context.Context, entity, name string) (*models.View, error) {
	if r.primaryUsable() {
		if view, err := r.primary.GetView(ctx, entity, name); err == nil {
			r.recovered()
			return view, nil
		} else {
			r.markDown(err)
		}
	}
	return r.fallback.GetView(ctx, entity, name)
}

func (r *FailoverViewRepository) ListViews(ctx context.Context, entity string) ([]*models.View, error) {
	if r.primaryUsable() {
		if views, err := r.primary.ListViews(ctx, entity); err == nil {
			r.recovered()
			return views, nil
		} else {
			r.markDown(err)
		}
	}
	return r.fallback.ListViews(ctx, entity)
}

func (r *FailoverViewRepository) DeleteView(ctx context.Context, entity, name string) error {
	if r.primaryUsable() {
		if err := r.primary.DeleteView(ctx, entity, name); err == nil {
			r.recovered()
			return nil
		} else {
			r.markDown(err)
		}
	}
	return r.fallback.DeleteView(ctx, entity, name)
}
