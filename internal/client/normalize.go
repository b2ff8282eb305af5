package client

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/musicmindsdev/music-minds-admin-sub000/internal/models"
)

// normalizePage folds the API's inconsistent list envelopes into one Page.
// Observed shapes: {data, meta}, {items, total, pages}, a bare array, and an
// entity-named array field like {"announcements": [...]}. The probe order is
// named field, then data, then items, then the bare array, then the first
// array-valued property found by introspection.
func normalizePage(raw []byte, arrayField string, pageSize int) (*models.Page, error) {
	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("decode list response: %w", err)
	}

	switch body := decoded.(type) {
	case []any:
		items := toRecords(body)
		return &models.Page{
			Items:      items,
			TotalCount: len(items),
			PageCount:  derivePageCount(len(items), pageSize),
		}, nil
	case map[string]any:
		items, ok := probeArray(body, arrayField)
		if !ok {
			return nil, fmt.Errorf("no array field found in list response")
		}

		total, totalKnown := probeTotal(body)
		if !totalKnown {
			total = len(items)
		}
		pages, pagesKnown := probePages(body)
		if !pagesKnown {
			pages = derivePageCount(total, pageSize)
		}

		return &models.Page{Items: items, TotalCount: total, PageCount: pages}, nil
	default:
		return nil, fmt.Errorf("unexpected list response shape")
	}
}

func probeArray(body map[string]any, arrayField string) ([]models.Record, bool) {
	for _, key := range []string{arrayField, "data", "items"} {
		if key == "" {
			continue
		}
		if arr, ok := body[key].([]any); ok {
			return toRecords(arr), true
		}
	}

	// Last resort: first array-valued property, keys visited in sorted order
	// so the probe stays deterministic.
	keys := make([]string, 0, len(body))
	for k := range body {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if arr, ok := body[k].([]any); ok {
			return toRecords(arr), true
		}
	}

	return nil, false
}

func probeTotal(body map[string]any) (int, bool) {
	if meta, ok := body["meta"].(map[string]any); ok {
		if n, ok := asInt(meta["total"]); ok {
			return n, true
		}
	}
	if n, ok := asInt(body["total"]); ok {
		return n, true
	}
	if n, ok := asInt(body["totalCount"]); ok {
		return n, true
	}
	return 0, false
}

func probePages(body map[string]any) (int, bool) {
	if meta, ok := body["meta"].(map[string]any); ok {
		if n, ok := asInt(meta["pages"]); ok {
			return n, true
		}
	}
	if n, ok := asInt(body["pages"]); ok {
		return n, true
	}
	return 0, false
}

func toRecords(arr []any) []models.Record {
	records := make([]models.Record, 0, len(arr))
	for _, item := range arr {
		if obj, ok := item.(map[string]any); ok {
			records = append(records, models.Record(obj))
		}
	}
	return records
}

func asInt(v any) (int, bool) {
	n, ok := v.(float64)
	if !ok {
		return 0, false
	}
	return int(n), true
}

func derivePageCount(total, pageSize int) int {
	if pageSize < 1 {
		pageSize = models.DefaultPageSize
	}
	if total <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}
