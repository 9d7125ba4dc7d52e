package models

// SessionStatistics aggregates assignment counts for one session.
type SessionStatistics struct {
	SessionID       int            `json:"id_session"`
	AssignmentCount int            `json:"total_affectations"`
	TeacherCount    int            `json:"nb_enseignants"`
	ByGrade         []GradeLoad    `json:"par_grade,omitempty"`
	Slots           []SlotCoverage `json:"creneaux,omitempty"`
}

// GradeLoad is the per-grade slice of a session's assignments.
type GradeLoad struct {
	GradeCode       string `json:"grade_code_ens"`
	Quota           int    `json:"quota"`
	AssignmentCount int    `json:"nb_affectations"`
	TeacherCount    int    `json:"nb_enseignants"`
}

// SlotCoverage reports how many proctors cover one slot.
type SlotCoverage struct {
	SlotID          int64  `json:"creneau_id"`
	ExamDate        string `json:"dateExam"`
	StartTime       string `json:"h_debut"`
	EndTime         string `json:"h_fin"`
	RoomCode        string `json:"cod_salle,omitempty"`
	SupervisorCount int    `json:"nb_surveillants"`
}

// TeacherWorkload summarises one teacher's assignments and hours.
type TeacherWorkload struct {
	Assignments []Assignment `json:"affectations"`
	TotalHours  float64      `json:"total_heures"`
	Count       int          `json:"count"`
}
