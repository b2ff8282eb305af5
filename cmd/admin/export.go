package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/musicmindsdev/music-minds-admin-sub000/internal/entities"
	"github.com/musicmindsdev/music-minds-admin-sub000/internal/export"
)

var flagFields []string

var exportCmd = &cobra.Command{
	Use:   "export <entity>",
	Short: "Export the filtered table to an Excel workbook",
	Long: `Export fetches the complete filtered row set (not just the current
page) and writes it to a timestamped .xlsx file under the configured
exports directory.

Example:
  admin export transactions --status COMPLETED --from 2026-08-01
  admin export users --fields id,email,status`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	addFilterFlags(exportCmd)
	exportCmd.Flags().StringSliceVar(&flagFields, "fields", nil, "export columns by attribute name (default: all entity fields)")
}

func runExport(cmd *cobra.Command, args []string) error {
	entity, err := entities.Get(args[0])
	if err != nil {
		return err
	}

	filters, err := buildFilters(entity)
	if err != nil {
		return err
	}

	fields, err := resolveFields(entity, flagFields)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(app.cfg.Exports.Path, 0o755); err != nil {
		return fmt.Errorf("create exports directory: %w", err)
	}

	coordinator := export.NewCoordinator(app.api, app.cfg.Exports.Path, app.logger)
	coordinator.SetEventPublisher(app.bus)

	path, err := coordinator.Export(cmd.Context(), entity, filters, fields)
	if err != nil {
		return err
	}

	cmd.Println(path)
	return nil
}

// resolveFields maps attribute names to the entity's export field options.
func resolveFields(entity entities.Config, names []string) ([]entities.FieldOption, error) {
	if len(names) == 0 {
		return nil, nil
	}

	byValue := make(map[string]entities.FieldOption, len(entity.ExportFields))
	valid := make([]string, 0, len(entity.ExportFields))
	for _, field := range entity.ExportFields {
		byValue[field.Value] = field
		valid = append(valid, field.Value)
	}

	fields := make([]entities.FieldOption, 0, len(names))
	for _, name := range names {
		field, ok := byValue[strings.TrimSpace(name)]
		if !ok {
			return nil, fmt.Errorf("entity %s has no export field %q (valid: %s)",
				entity.Name, name, strings.Join(valid, ", "))
		}
		fields = append(fields, field)
	}
	return fields, nil
}
