package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exd-tools/surveil-admin/internal/models"
)

func sampleDataset() Dataset {
	assignments := []models.Assignment{
		{ID: 1, TeacherCode: 1001, SessionID: 5, RoomCode: "B203",
			ExamDate: "13/05/2025", StartTime: "08:30", EndTime: "10:00",
			GradeCode: "PR", SessionLabel: "Session Janvier 2025"},
		{ID: 2, TeacherCode: 1002, SessionID: 5, RoomCode: "A102",
			ExamDate: "13/05/2025", StartTime: "10:15", EndTime: "11:45",
			GradeCode: "MC", SessionLabel: "Session Janvier 2025"},
	}
	dir := models.NewTeacherDirectory([]models.Teacher{
		{Code: 1001, LastName: "Ben Ahmed", FirstName: "Mohamed"},
		{Code: 1002, LastName: "Trabelsi", FirstName: "Leila"},
	})
	return AssignmentsDataset(assignments, dir)
}

func TestCSVExporter_RenderWithBOM(t *testing.T) {
	data := sampleDataset()

	out, err := NewCSVExporter().Render(data)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(out, []byte{0xEF, 0xBB, 0xBF}))
	text := string(out)
	assert.Contains(t, text, "Date,Début,Fin,Salle,Enseignant,Grade,Session")
	assert.Contains(t, text, "Ben Ahmed Mohamed")
	assert.Contains(t, text, "B203")
	assert.Equal(t, 3, strings.Count(text, "\n"))
}

func TestCSVExporter_PlainHasNoBOM(t *testing.T) {
	out, err := NewPlainCSVExporter().Render(sampleDataset())
	require.NoError(t, err)
	assert.False(t, bytes.HasPrefix(out, []byte{0xEF, 0xBB, 0xBF}))
}

func TestCSVExporter_RequiresHeaders(t *testing.T) {
	_, err := NewCSVExporter().Render(Dataset{})
	assert.Error(t, err)
}

func TestPDFExporter_Render(t *testing.T) {
	out, err := NewPDFExporter().Render(sampleDataset(), "Affectations Session Janvier 2025")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestPDFExporter_RequiresHeaders(t *testing.T) {
	_, err := NewPDFExporter().Render(Dataset{}, "x")
	assert.Error(t, err)
}

func TestJSONExporter_Render(t *testing.T) {
	out, err := NewJSONExporter().Render(map[string]int{"nb_affectations": 8})
	require.NoError(t, err)
	assert.Contains(t, string(out), `"nb_affectations": 8`)
	assert.True(t, bytes.HasSuffix(out, []byte("\n")))
}

func TestQuotasDataset(t *testing.T) {
	dir := models.NewTeacherDirectory([]models.Teacher{
		{Code: 1001, LastName: "Ben Ahmed", FirstName: "Mohamed"},
	})
	data := QuotasDataset([]models.TeacherQuota{
		{TeacherCode: 1001, GradeCode: "PR", GradeQuota: 2, Realised: 1, DiffGrade: 1},
	}, dir)

	require.Len(t, data.Rows, 1)
	assert.Equal(t, "Ben Ahmed Mohamed", data.Rows[0]["Enseignant"])
	assert.Equal(t, "2", data.Rows[0]["Quota"])
	assert.Equal(t, "1", data.Rows[0]["Écart"])
}

func TestStatisticsDataset(t *testing.T) {
	data := StatisticsDataset(models.SessionStatistics{
		Slots: []models.SlotCoverage{
			{SlotID: 1, ExamDate: "13/05/2025", StartTime: "08:30", EndTime: "10:00", SupervisorCount: 2},
		},
	})

	require.Len(t, data.Rows, 1)
	assert.Equal(t, "-", data.Rows[0]["Salle"])
	assert.Equal(t, "2", data.Rows[0]["Surveillants"])
}
