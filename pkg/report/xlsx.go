package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"cropsense/entities"
)

// ScheduleWorkbook renders a farming schedule as a single-sheet workbook for
// download. Dates are written as plain ISO strings so the sheet stays
// timezone-neutral.
func ScheduleWorkbook(s *entities.FarmingSchedule) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Schedule"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	rows := [][]any{
		{"Crop", string(s.CropType)},
		{"Location", s.LocationID},
		{"Optimal planting date", s.OptimalPlantingDate.Format("2006-01-02")},
		{"Target harvest date", s.TargetHarvestDate.Format("2006-01-02")},
		{"Total growing days", s.TotalGrowingDays},
		{},
		{"Stage", "Start", "End", "Days"},
	}
	for _, w := range s.GrowthTimeline {
		rows = append(rows, []any{
			string(w.Stage),
			w.StartDate.Format("2006-01-02"),
			w.EndDate.Format("2006-01-02"),
			w.DurationDays,
		})
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	return f, nil
}
