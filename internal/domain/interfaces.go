package domain

import (
	"context"
	"net/url"

	"github.com/musicmindsdev/music-minds-admin-sub000/internal/models"
)

// ListRequest describes one list fetch against the admin API.
type ListRequest struct {
	// Path is the entity collection path, e.g. "/api/bookings".
	Path string
	// ArrayField is the entity-named array key some responses use instead of
	// a generic envelope, e.g. "announcements".
	ArrayField string
	// Query carries the built filter/pagination parameters.
	Query url.Values
}

// Fetcher retrieves one page of records, normalizing whatever response shape
// the API happens to return.
type Fetcher interface {
	FetchPage(ctx context.Context, req ListRequest) (*models.Page, error)
}

// ActionClient issues a single mutating request against the admin API.
type ActionClient interface {
	Do(ctx context.Context, method, path string, body any) (models.Record, error)
}

// ViewRepository stores named filter presets per entity.
type ViewRepository interface {
	SaveView(ctx context.Context, view *models.View) error
	GetView(ctx context.Context, entity, name string) (*models.View, error)
	ListViews(ctx context.Context, entity string) ([]*models.View, error)
	DeleteView(ctx context.Context, entity, name string) error
}

// EventPublisher fans engine events out to in-process subscribers.
type EventPublisher interface {
	PublishJSON(eventType string, payload any) error
}
