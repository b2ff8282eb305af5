package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/musicmindsdev/music-minds-admin-sub000/internal/entities"
	"github.com/musicmindsdev/music-minds-admin-sub000/internal/models"
)

// Filter flag values shared by list, export and views save.
var (
	flagStatuses []string
	flagSearch   string
	flagCategory string
	flagFrom     string
	flagTo       string
)

func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&flagStatuses, "status", nil, "status filter, repeatable (e.g. --status PUBLISHED --status DRAFT)")
	cmd.Flags().StringVar(&flagSearch, "search", "", "free-text search term (resolved server-side)")
	cmd.Flags().StringVar(&flagCategory, "category", "", "category/type filter")
	cmd.Flags().StringVar(&flagFrom, "from", "", "date range start, YYYY-MM-DD")
	cmd.Flags().StringVar(&flagTo, "to", "", "date range end, YYYY-MM-DD")
}

// buildFilters assembles a filter set from the flag values, validating
// statuses against the entity's vocabulary.
func buildFilters(entity entities.Config) (models.FilterSet, error) {
	filters := models.NewFilterSet(entity.Statuses...)

	for _, raw := range flagStatuses {
		status := strings.ToUpper(strings.TrimSpace(raw))
		if !statusKnown(entity, status) {
			return filters, fmt.Errorf("entity %s has no status %q (valid: %s)",
				entity.Name, raw, strings.Join(entity.Statuses, ", "))
		}
		filters.SetStatus(status, true, entity.ExclusiveStatus)
	}

	filters.Search = strings.TrimSpace(flagSearch)
	filters.Category = strings.TrimSpace(flagCategory)

	from, to, err := parseDateRange(flagFrom, flagTo)
	if err != nil {
		return filters, err
	}
	filters.SetDateRange(from, to)

	return filters, nil
}

func statusKnown(entity entities.Config, status string) bool {
	for _, s := range entity.Statuses {
		if s == status {
			return true
		}
	}
	return false
}

func parseDateRange(fromRaw, toRaw string) (time.Time, time.Time, error) {
	var from, to time.Time
	var err error
	if fromRaw != "" {
		if from, err = time.Parse("2006-01-02", fromRaw); err != nil {
			return from, to, fmt.Errorf("invalid --from %q (expected YYYY-MM-DD)", fromRaw)
		}
	}
	if toRaw != "" {
		if to, err = time.Parse("2006-01-02", toRaw); err != nil {
			return from, to, fmt.Errorf("invalid --to %q (expected YYYY-MM-DD)", toRaw)
		}
	}
	return from, to, nil
}
