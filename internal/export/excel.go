package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/musicmindsdev/music-minds-admin-sub000/internal/entities"
	"github.com/musicmindsdev/music-minds-admin-sub000/internal/models"
)

// writeWorkbook renders rows into an .xlsx file named after the entity and
// timestamp, one column per selected field.
func writeWorkbook(dir string, entity entities.Config, rows []models.Record, fields []entities.FieldOption, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := entity.Title
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return "", fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font: &excelize.Font{Bold: true},
	})

	for col, field := range fields {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		_ = f.SetCellValue(sheetName, cell, field.Label)
		_ = f.SetCellStyle(sheetName, cell, cell, headerStyle)

		name, _ := excelize.ColumnNumberToName(col + 1)
		_ = f.SetColWidth(sheetName, name, name, 20)
	}

	for i, row := range rows {
		for col, field := range fields {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			_ = f.SetCellValue(sheetName, cell, cellValue(row, field.Value))
		}
	}

	_ = f.DeleteSheet("Sheet1")

	fileName := fmt.Sprintf("%s_export_%s.xlsx", entity.Name, now.Format("2006-01-02_15-04-05"))
	path := filepath.Join(dir, fileName)
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("save workbook: %w", err)
	}

	return path, nil
}

// cellValue renders one attribute, formatting timestamps for readability.
func cellValue(row models.Record, field string) string {
	if t := row.Time(field); !t.IsZero() {
		return t.Format("02.01.2006 15:04")
	}
	return row.String(field)
}
