package ui

import (
	"fmt"
	"net/http"

	"github.com/xuri/excelize/v2"

	"mentormatch/domain/mentorship"
	"mentormatch/present"
)

// BuildGoalsWorkbook renders a goal list into a spreadsheet report.
func BuildGoalsWorkbook(goals []mentorship.Goal) (*excelize.File, error) {
	f := excelize.NewFile()
	const sheet = "Goals"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	headers := []string{"Title", "Category", "Target Date", "Progress %", "Description"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for rowIdx, row := range present.GoalRows(goals) {
		values := []interface{}{row.Title, row.CategoryLabel, row.TargetDate, row.ProgressPercent, row.Description}
		for colIdx, v := range values {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}
	return f, nil
}

// handleGoalsExport downloads the loaded goal list as an xlsx report.
func (a *App) handleGoalsExport(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.userID(w, r)
	if !ok {
		return
	}
	view := a.set(userID).Goals
	view.EnsureLoaded(r.Context())

	workbook, err := BuildGoalsWorkbook(view.Goals())
	if err != nil {
		a.log.Error("goal export failed for %s: %v", userID, err)
		http.Error(w, "export failed", http.StatusInternalServerError)
		return
	}
	defer workbook.Close()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="goals.xlsx"`)
	if err := workbook.Write(w); err != nil {
		a.log.Error("goal export write failed for %s: %v", userID, err)
	}
}
