package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/musicmindsdev/music-minds-admin-sub000/internal/actions"
	"github.com/musicmindsdev/music-minds-admin-sub000/internal/entities"
	"github.com/musicmindsdev/music-minds-admin-sub000/internal/models"
)

var flagWorkers int

var actCmd = &cobra.Command{
	Use:   "act <entity> <action> <id...>",
	Short: "Run an action against one or more records",
	Long: `Act dispatches a state transition against every given record id.

Bulk dispatch is best-effort: every id is attempted and reported
individually, so one failure never aborts the rest of the batch.

Example:
  admin act reviews approve rev_123
  admin act articles publish art_1 art_2 art_3`,
	Args: cobra.MinimumNArgs(3),
	RunE: runAct,
}

func init() {
	actCmd.Flags().IntVar(&flagWorkers, "workers", 0, "parallel dispatch workers (default from config)")
}

func runAct(cmd *cobra.Command, args []string) error {
	entity, err := entities.Get(args[0])
	if err != nil {
		return err
	}

	action := args[1]
	if _, err := entity.Action(action); err != nil {
		return fmt.Errorf("%w (valid: %s)", err, strings.Join(entity.ActionNames(), ", "))
	}
	ids := args[2:]

	workers := flagWorkers
	if workers <= 0 {
		workers = app.cfg.Table.BulkWorkers
	}

	dispatcher := actions.NewDispatcher(app.api, actions.DefaultRetryPolicy(), workers, app.logger)
	dispatcher.SetEventPublisher(app.bus)

	result, err := dispatcher.Dispatch(cmd.Context(), entity, action, ids)
	if err != nil {
		return err
	}

	if flagJSON {
		output, err := json.MarshalIndent(bulkReport(result.Action, result.Succeeded, result.Failed), "", "  ")
		if err != nil {
			return err
		}
		cmd.Println(string(output))
	} else {
		for _, id := range result.Succeeded {
			cmd.Printf("ok\t%s\n", id)
		}
		for _, failure := range result.Failed {
			cmd.Printf("failed\t%s\t%v\n", failure.ID, failure.Err)
		}
	}

	if !result.Ok() {
		return fmt.Errorf("%s: %d of %d failed", action, len(result.Failed), len(ids))
	}
	return nil
}

type bulkReportEntry struct {
	ID    string `json:"id"`
	Error string `json:"error,omitempty"`
}

type bulkReportDoc struct {
	Action    string            `json:"action"`
	Succeeded []string          `json:"succeeded"`
	Failed    []bulkReportEntry `json:"failed"`
}

func bulkReport(action string, succeeded []string, failed []models.ActionFailure) bulkReportDoc {
	doc := bulkReportDoc{Action: action, Succeeded: succeeded, Failed: []bulkReportEntry{}}
	for _, f := range failed {
		doc.Failed = append(doc.Failed, bulkReportEntry{ID: f.ID, Error: f.Err.Error()})
	}
	return doc
}
