package models

import (
	"fmt"
	"time"
)

// Record is one row of an entity table as returned by the admin API.
// Attribute sets vary per entity, so rows are kept as decoded JSON objects
// and read through typed accessors.
type Record map[string]any

// ID returns the record identifier. The API is inconsistent about the key
// name, so the usual candidates are probed in order.
func (r Record) ID() string {
	for _, key := range []string{"id", "_id", "uuid"} {
		if v, ok := r[key]; ok {
			switch id := v.(type) {
			case string:
				return id
			case float64:
				return fmt.Sprintf("%.0f", id)
			}
		}
	}
	return ""
}

// Status returns the record's status field, empty if absent.
func (r Record) Status() string {
	s, _ := r["status"].(string)
	return s
}

// String returns a string attribute, converting scalars when needed.
func (r Record) String(key string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case float64:
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val))
		}
		return fmt.Sprintf("%g", val)
	case bool:
		if val {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprintf("%v", val)
	}
}

// Time parses a timestamp attribute (RFC3339 or date-only), zero on failure.
func (r Record) Time(key string) time.Time {
	raw, _ := r[key].(string)
	if raw == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t
	}
	return time.Time{}
}

// Page is the result of one list fetch: a bounded slice of records plus
// server-side count metadata.
type Page struct {
	Items      []Record
	TotalCount int
	PageCount  int
}

// IDs returns the identifiers of the page's rows in order.
func (p *Page) IDs() []string {
	if p == nil {
		return nil
	}
	ids := make([]string, 0, len(p.Items))
	for _, item := range p.Items {
		ids = append(ids, item.ID())
	}
	return ids
}
