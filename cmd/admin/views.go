package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/musicmindsdev/music-minds-admin-sub000/internal/entities"
	"github.com/musicmindsdev/music-minds-admin-sub000/internal/events"
	"github.com/musicmindsdev/music-minds-admin-sub000/internal/models"
)

var viewsCmd = &cobra.Command{
	Use:   "views",
	Short: "Manage saved filter views",
}

var viewsSaveCmd = &cobra.Command{
	Use:   "save <entity> <name>",
	Short: "Save the given filters as a named view",
	Long: `Save stores a named filter preset for an entity table.

Example:
  admin views save reviews flagged --status FLAGGED
  admin views save bookings this-month --from 2026-08-01 --to 2026-08-31`,
	Args: cobra.ExactArgs(2),
	RunE: runViewsSave,
}

var viewsListCmd = &cobra.Command{
	Use:   "list <entity>",
	Short: "List saved views of an entity",
	Args:  cobra.ExactArgs(1),
	RunE:  runViewsList,
}

var viewsDeleteCmd = &cobra.Command{
	Use:   "delete <entity> <name>",
	Short: "Delete a saved view",
	Args:  cobra.ExactArgs(2),
	RunE:  runViewsDelete,
}

var viewsUseCmd = &cobra.Command{
	Use:   "use <entity> <name>",
	Short: "List records using a saved view's filters",
	Args:  cobra.ExactArgs(2),
	RunE:  runViewsUse,
}

func init() {
	addFilterFlags(viewsSaveCmd)
	viewsUseCmd.Flags().IntVar(&flagPage, "page", 1, "page number")
	viewsUseCmd.Flags().IntVar(&flagPageSize, "page-size", 0, "rows per page (default from config)")

	viewsCmd.AddCommand(viewsSaveCmd)
	viewsCmd.AddCommand(viewsListCmd)
	viewsCmd.AddCommand(viewsDeleteCmd)
	viewsCmd.AddCommand(viewsUseCmd)
}

func runViewsSave(cmd *cobra.Command, args []string) error {
	entity, err := entities.Get(args[0])
	if err != nil {
		return err
	}

	filters, err := buildFilters(entity)
	if err != nil {
		return err
	}
	if filters.IsZero() {
		return fmt.Errorf("refusing to save an empty view; set at least one filter")
	}

	repo, cleanup := app.viewRepository(cmd.Context())
	defer cleanup()

	view := &models.View{Entity: entity.Name, Name: args[1], Filters: filters}
	if err := repo.SaveView(cmd.Context(), view); err != nil {
		return fmt.Errorf("save view: %w", err)
	}

	_ = app.bus.PublishJSON(events.EventViewSaved, view)
	cmd.Printf("saved view %s/%s\n", entity.Name, view.Name)
	return nil
}

func runViewsList(cmd *cobra.Command, args []string) error {
	entity, err := entities.Get(args[0])
	if err != nil {
		return err
	}

	repo, cleanup := app.viewRepository(cmd.Context())
	defer cleanup()

	list, err := repo.ListViews(cmd.Context(), entity.Name)
	if err != nil {
		return fmt.Errorf("list views: %w", err)
	}

	if flagJSON {
		output, err := json.MarshalIndent(list, "", "  ")
		if err != nil {
			return err
		}
		cmd.Println(string(output))
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tFILTERS\tCREATED")
	for _, view := range list {
		fmt.Fprintf(w, "%s\t%s\t%s\n", view.Name, describeFilters(view.Filters), view.CreatedAt.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}

func runViewsDelete(cmd *cobra.Command, args []string) error {
	entity, err := entities.Get(args[0])
	if err != nil {
		return err
	}

	repo, cleanup := app.viewRepository(cmd.Context())
	defer cleanup()

	if err := repo.DeleteView(cmd.Context(), entity.Name, args[1]); err != nil {
		return fmt.Errorf("delete view: %w", err)
	}
	cmd.Printf("deleted view %s/%s\n", entity.Name, args[1])
	return nil
}

func runViewsUse(cmd *cobra.Command, args []string) error {
	entity, err := entities.Get(args[0])
	if err != nil {
		return err
	}

	repo, cleanup := app.viewRepository(cmd.Context())
	defer cleanup()

	view, err := repo.GetView(cmd.Context(), entity.Name, args[1])
	if err != nil {
		return fmt.Errorf("get view: %w", err)
	}
	if view == nil {
		return fmt.Errorf("no saved view %s/%s", entity.Name, args[1])
	}

	return runListing(cmd, entity, view.Filters, flagPage)
}

// describeFilters renders the active dimensions of a filter set in one line.
func describeFilters(filters models.FilterSet) string {
	var parts []string
	if statuses := filters.ActiveStatuses(); len(statuses) > 0 {
		parts = append(parts, "status="+strings.Join(statuses, ","))
	}
	if filters.Search != "" {
		parts = append(parts, "search="+filters.Search)
	}
	if filters.Category != "" {
		parts = append(parts, "category="+filters.Category)
	}
	if !filters.DateFrom.IsZero() || !filters.DateTo.IsZero() {
		parts = append(parts, fmt.Sprintf("dates=%s..%s",
			shortDate(filters.DateFrom), shortDate(filters.DateTo)))
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " ")
}

func shortDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}
