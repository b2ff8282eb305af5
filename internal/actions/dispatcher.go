// Package actions issues state-transition requests against the admin API.
// Transitions are server-authoritative: the dispatcher only requests them
// and reports outcomes; callers refetch to observe the resulting state.
package actions

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/musicmindsdev/music-minds-admin-sub000/internal/domain"
	"github.com/musicmindsdev/music-minds-admin-sub000/internal/entities"
	"github.com/musicmindsdev/music-minds-admin-sub000/internal/events"
	"github.com/musicmindsdev/music-minds-admin-sub000/internal/metrics"
	"github.com/musicmindsdev/music-minds-admin-sub000/internal/models"
)

// Dispatcher fires mutating requests against one or many records. Bulk
// dispatch is best-effort and bounded-parallel: every id is attempted, and
// the result reports each id as succeeded or failed instead of aborting on
// the first error.
type Dispatcher struct {
	client  domain.ActionClient
	retry   RetryPolicy
	workers int
	logger  *zerolog.Logger
	events  domain.EventPublisher
}

// NewDispatcher builds a dispatcher with sane defaults.
func NewDispatcher(client domain.ActionClient, retry RetryPolicy, workers int, logger *zerolog.Logger) *Dispatcher {
	if retry.MaxAttempts <= 0 {
		retry = DefaultRetryPolicy()
	}
	if workers <= 0 {
		workers = models.DefaultBulkWorkers
	}
	return &Dispatcher{
		client:  client,
		retry:   retry,
		workers: workers,
		logger:  logger,
	}
}

// SetEventPublisher wires the engine event bus.
func (d *Dispatcher) SetEventPublisher(pub domain.EventPublisher) {
	d.events = pub
}

// Dispatch runs one action against every id and reports per-id outcomes.
func (d *Dispatcher) Dispatch(ctx context.Context, entity entities.Config, action string, ids []string) (models.BulkResult, error) {
	result := models.BulkResult{Action: action}

	spec, err := entity.Action(action)
	if err != nil {
		return result, err
	}
	if len(ids) == 0 {
		return result, errors.New("no target ids")
	}

	workers := d.workers
	if workers > len(ids) {
		workers = len(ids)
	}

	jobs := make(chan string)
	outcomes := make(chan models.ActionResult, len(ids))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for id := range jobs {
				outcomes <- d.dispatchOne(ctx, entity, action, spec, id)
			}
		}()
	}

	for _, id := range ids {
		jobs <- id
	}
	close(jobs)
	wg.Wait()
	close(outcomes)

	failures := make(map[string]error, len(ids))
	succeeded := make(map[string]bool, len(ids))
	for outcome := range outcomes {
		if outcome.Success {
			succeeded[outcome.ID] = true
		} else {
			failures[outcome.ID] = errors.New(outcome.Error)
		}
	}

	// Report in the caller's id order.
	for _, id := range ids {
		if succeeded[id] {
			result.Succeeded = append(result.Succeeded, id)
		} else if err, ok := failures[id]; ok {
			result.Failed = append(result.Failed, models.ActionFailure{ID: id, Err: err})
		}
	}

	d.publish(events.EventBulkCompleted, events.BulkPayload{
		Entity:    entity.Name,
		Action:    action,
		Succeeded: len(result.Succeeded),
		Failed:    len(result.Failed),
	})

	return result, nil
}

func (d *Dispatcher) dispatchOne(ctx context.Context, entity entities.Config, action string, spec entities.ActionSpec, id string) models.ActionResult {
	path := entity.ActionPath(id, spec)

	var lastErr error
	for attempt := 1; attempt <= d.retry.MaxAttempts; attempt++ {
		_, err := d.client.Do(ctx, spec.Method, path, nil)
		if err == nil {
			metrics.IncAction(entity.Name, action, "success")
			d.publish(events.EventActionDispatch, events.ActionPayload{
				Entity: entity.Name, Action: action, ID: id, Success: true,
			})
			return models.ActionResult{ID: id, Success: true}
		}

		lastErr = err
		if !retryable(err) {
			break
		}
		if attempt < d.retry.MaxAttempts {
			if d.logger != nil {
				d.logger.Warn().Err(err).
					Str("entity", entity.Name).Str("action", action).Str("id", id).
					Int("attempt", attempt).Msg("action retry")
			}
			if err := d.retry.Sleep(ctx, attempt); err != nil {
				lastErr = err
				break
			}
		}
	}

	metrics.IncAction(entity.Name, action, "error")
	d.publish(events.EventActionDispatch, events.ActionPayload{
		Entity: entity.Name, Action: action, ID: id, Error: lastErr.Error(),
	})
	if d.logger != nil {
		d.logger.Error().Err(lastErr).
			Str("entity", entity.Name).Str("action", action).Str("id", id).
			Msg("action failed")
	}
	return models.ActionResult{ID: id, Error: lastErr.Error()}
}

func (d *Dispatcher) publish(eventType string, payload any) {
	if d.events == nil {
		return
	}
	if err := d.events.PublishJSON(eventType, payload); err != nil && d.logger != nil {
		d.logger.Error().Err(err).Str("event_type", eventType).Msg("publish event error")
	}
}
