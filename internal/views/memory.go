package views

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/musicmindsdev/music-minds-admin-sub000/internal/models"
)

// MemoryViewRepository keeps presets for the lifetime of the process. It
// backs the failover wrapper when redis is absent or unhealthy.
type MemoryViewRepository struct {
	mu    sync.RWMutex
	views map[string]*models.View
}

func NewMemoryViewRepository() *MemoryViewRepository {
	return &MemoryViewRepository{views: make(map[string]*models.View)}
}

func (r *MemoryViewRepository) SaveView(ctx context.Context, view *models.View) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if view.CreatedAt.IsZero() {
		view.CreatedAt = time.Now()
	}
	copied := *view
	r.views[viewKey(view.Entity, view.Name)] = &copied
	return nil
}

func (r *MemoryViewRepository) GetView(ctx context.Context, entity, name string) (*models.View, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	view, ok := r.views[viewKey(entity, name)]
	if !ok {
		return nil, nil
	}
	copied := *view
	return &copied, nil
}

func (r *MemoryViewRepository) ListViews(ctx context.Context, entity string) ([]*models.View, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var views []*models.View
	for _, view := range r.views {
		if view.Entity == entity {
			copied := *view
			views = append(views, &copied)
		}
	}
	sort.Slice(views, func(i, j int) bool { return views[i].Name < views[j].Name })
	return views, nil
}

func (r *MemoryViewRepository) DeleteView(ctx context.Context, entity, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.views, viewKey(entity, name))
	return nil
}
