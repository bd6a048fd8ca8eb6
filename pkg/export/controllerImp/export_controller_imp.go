package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"

	recrepo "pestplan/pkg/recommend/repository"
	schedrepo "pestplan/pkg/schedule/repository"
)

type ExportCtrl struct {
	recs  recrepo.RecommendRepository
	tasks schedrepo.ScheduleRepository
}

func New(recs recrepo.RecommendRepository, tasks schedrepo.ScheduleRepository) *ExportCtrl {
	return &ExportCtrl{recs: recs, tasks: tasks}
}

// Export streams the full treatment history as an xlsx workbook, one row
// per treatment task joined with its recommendation's crop.
func (h *ExportCtrl) Export(c echo.Context) error {
	tasks, err := h.tasks.ListAll()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"status": "fail", "error": err.Error()})
	}
	recs, err := h.recs.List(0)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"status": "fail", "error": err.Error()})
	}
	plantByRec := make(map[uint]string, len(recs))
	for _, r := range recs {
		plantByRec[r.RecommendationID] = r.PlantName
	}

	f := excelize.NewFile()
	const sheet = "Treatments"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Task ID", "Recommendation ID", "Plant", "Pesticide", "Scheduled Date", "Timing", "Notes", "Completed"}
	for i, hd := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, hd)
	}
	for r, t := range tasks {
		vals := []any{
			t.TaskID, t.RecommendationID, plantByRec[t.RecommendationID],
			t.PesticideName, t.ScheduledDate.Format("2006-01-02"),
			t.Timing, t.Notes, t.Completed,
		}
		for i, v := range vals {
			cell, _ := excelize.CoordinatesToCellName(i+1, r+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="treatments.xlsx"`)
	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().WriteHeader(http.StatusOK)
	return f.Write(c.Response())
}
