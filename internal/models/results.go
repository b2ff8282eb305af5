package models

import "time"

// ActionResult is the outcome of one state-transition request.
type ActionResult struct {
	ID      string
	Success bool
	Error   string
}

// ActionFailure names one id a bulk dispatch could not mutate.
type ActionFailure struct {
	ID  string
	Err error
}

// BulkResult reports every id of a bulk dispatch, succeeded or failed.
// Unlike the sequential abort-on-first-error loop it replaces, every id is
// always attempted.
type BulkResult struct {
	Action    string
	Succeeded []string
	Failed    []ActionFailure
}

// Ok reports whether the whole batch succeeded.
func (r BulkResult) Ok() bool {
	return len(r.Failed) == 0
}

// View is a named, reusable filter preset for one entity table.
type View struct {
	Entity    string    `json:"entity"`
	Name      string    `json:"name"`
	Filters   FilterSet `json:"filters"`
	CreatedAt time.Time `json:"created_at"`
}
