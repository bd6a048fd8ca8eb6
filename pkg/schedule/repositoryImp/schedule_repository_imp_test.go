package repositoryImp

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pestplan/database"
	"pestplan/entities"
)

func day(s string) time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return d
}

func TestScheduleRepository(t *testing.T) {
	db := database.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	repo := New(db)

	tasks := []entities.TreatmentTask{
		{RecommendationID: 1, PesticideName: "Mancozeb", ScheduledDate: day("2026-09-07"), Timing: "Day 7"},
		{RecommendationID: 1, PesticideName: "Azoxystrobin", ScheduledDate: day("2026-08-31"), Timing: "Day 0"},
		{RecommendationID: 2, PesticideName: "Copper oxychloride", ScheduledDate: day("2026-08-31")},
	}
	require.NoError(t, repo.BulkInsert(tasks))

	out, err := repo.ListByRecommendation(1)
	require.NoError(t, err)
	require.Len(t, out, 2)
	// ordered by scheduled_date
	assert.Equal(t, "Azoxystrobin", out[0].PesticideName)
	assert.Equal(t, "Mancozeb", out[1].PesticideName)
	assert.False(t, out[0].Completed)

	all, err := repo.ListAll()
	require.NoError(t, err)
	assert.Len(t, all, 3)

	require.NoError(t, repo.PatchCompleted(out[0].TaskID, true))
	out, err = repo.ListByRecommendation(1)
	require.NoError(t, err)
	assert.True(t, out[0].Completed)

	require.NoError(t, repo.PatchCompleted(out[0].TaskID, false))
	out, err = repo.ListByRecommendation(1)
	require.NoError(t, err)
	assert.False(t, out[0].Completed)
}
