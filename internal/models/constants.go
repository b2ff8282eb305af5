package models

import "time"

const (
	// DefaultPageSize is the table page size when config is silent.
	DefaultPageSize = 10

	// DefaultWindowSize is the number of page buttons in the pagination window.
	DefaultWindowSize = 5

	// ExportFetchLimit is the oversized page limit used by fetch-all-for-export
	// requests to retrieve an unpaginated superset.
	ExportFetchLimit = 10000

	// DefaultRequestTimeout bounds one API round trip.
	DefaultRequestTimeout = 30 * time.Second

	// DefaultBulkWorkers caps concurrent requests during a bulk dispatch.
	DefaultBulkWorkers = 4
)

// Shared status vocabulary. Individual entities use subsets of these.
const (
	StatusDraft     = "DRAFT"
	StatusPublished = "PUBLISHED"
	StatusArchived  = "ARCHIVED"
	StatusPending   = "PENDING"
	StatusApproved  = "APPROVED"
	StatusRejected  = "REJECTED"
	StatusScheduled = "SCHEDULED"
	StatusSending   = "SENDING"
	StatusSent      = "SENT"
	StatusFailed    = "FAILED"
	StatusCancelled = "CANCELLED"
	StatusActive    = "ACTIVE"
	StatusSuspended = "SUSPENDED"
	StatusCompleted = "COMPLETED"
	StatusDisputed  = "DISPUTED"
	StatusFlagged   = "FLAGGED"
)
