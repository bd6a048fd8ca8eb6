package controllerImp

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"pestplan/database"
	"pestplan/entities"
	recRepoImp "pestplan/pkg/recommend/repositoryImp"
	schedRepoImp "pestplan/pkg/schedule/repositoryImp"
)

func TestExportWorkbook(t *testing.T) {
	db := database.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	recs := recRepoImp.New(db)
	tasks := schedRepoImp.New(db)

	rec := &entities.Recommendation{PlantName: "Tomato", PredictedClass: "Early Blight"}
	require.NoError(t, recs.Create(rec))
	date, _ := time.Parse("2006-01-02", "2026-08-31")
	require.NoError(t, tasks.BulkInsert([]entities.TreatmentTask{
		{RecommendationID: rec.RecommendationID, PesticideName: "Mancozeb", ScheduledDate: date, Timing: "Day 0"},
		{RecommendationID: rec.RecommendationID, PesticideName: "Azoxystrobin", ScheduledDate: date.AddDate(0, 0, 7), Timing: "Day 7"},
	}))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/recommendations/export", nil)
	w := httptest.NewRecorder()
	require.NoError(t, New(recs, tasks).Export(e.NewContext(req, w)))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get(echo.HeaderContentDisposition), "treatments.xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Treatments")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Pesticide", rows[0][3])
	assert.Equal(t, "Mancozeb", rows[1][3])
	assert.Equal(t, "Tomato", rows[1][2])
	assert.Equal(t, "2026-09-07", rows[2][4])
}
