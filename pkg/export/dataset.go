// Package export renders surveillance data into the local file formats the
// tool writes next to the backend's own generated documents.
package export

import (
	"fmt"
	"strconv"

	"github.com/exd-tools/surveil-admin/internal/models"
)

// Dataset defines tabular export content.
type Dataset struct {
	Headers []string
	Rows    []map[string]string
}

// AssignmentsDataset flattens an assignment list, resolving teacher display
// names through the directory.
func AssignmentsDataset(assignments []models.Assignment, dir models.TeacherDirectory) Dataset {
	headers := []string{"Date", "Début", "Fin", "Salle", "Enseignant", "Grade", "Session"}
	rows := make([]map[string]string, 0, len(assignments))
	for _, a := range assignments {
		rows = append(rows, map[string]string{
			"Date":       a.ExamDate,
			"Début":      a.StartTime,
			"Fin":        a.EndTime,
			"Salle":      a.RoomLabel(),
			"Enseignant": dir.NameOf(a.TeacherCode),
			"Grade":      a.GradeCode,
			"Session":    a.SessionLabel,
		})
	}
	return Dataset{Headers: headers, Rows: rows}
}

// QuotasDataset flattens per-teacher quota accounting.
func QuotasDataset(quotas []models.TeacherQuota, dir models.TeacherDirectory) Dataset {
	headers := []string{"Enseignant", "Grade", "Quota", "Réalisé", "Écart"}
	rows := make([]map[string]string, 0, len(quotas))
	for _, q := range quotas {
		rows = append(rows, map[string]string{
			"Enseignant": dir.NameOf(q.TeacherCode),
			"Grade":      q.GradeCode,
			"Quota":      strconv.Itoa(q.GradeQuota),
			"Réalisé":    strconv.Itoa(q.Realised),
			"Écart":      strconv.Itoa(q.DiffGrade),
		})
	}
	return Dataset{Headers: headers, Rows: rows}
}

// StatisticsDataset flattens per-slot coverage of a session.
func StatisticsDataset(stats models.SessionStatistics) Dataset {
	headers := []string{"Date", "Début", "Fin", "Salle", "Surveillants"}
	rows := make([]map[string]string, 0, len(stats.Slots))
	for _, cov := range stats.Slots {
		room := cov.RoomCode
		if room == "" {
			room = "-"
		}
		rows = append(rows, map[string]string{
			"Date":         cov.ExamDate,
			"Début":        cov.StartTime,
			"Fin":          cov.EndTime,
			"Salle":        room,
			"Surveillants": fmt.Sprintf("%d", cov.SupervisorCount),
		})
	}
	return Dataset{Headers: headers, Rows: rows}
}
