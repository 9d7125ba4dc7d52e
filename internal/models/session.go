package models

// Session represents an academic examination session.
type Session struct {
	ID           int    `json:"id_session"`
	Label        string `json:"libelle_session" validate:"required"`
	StartDate    string `json:"date_debut,omitempty"`
	EndDate      string `json:"date_fin,omitempty"`
	AcademicYear string `json:"AU,omitempty"`
	Semester     string `json:"Semestre,omitempty"`
	Type         string `json:"type_session,omitempty"`
}

// SessionDataCheck summarises whether a session carries enough data to run
// the optimizer (slots, participating teachers, voeux).
type SessionDataCheck struct {
	SessionID    int  `json:"id_session"`
	HasSlots     bool `json:"has_creneaux"`
	HasTeachers  bool `json:"has_enseignants"`
	HasVoeux     bool `json:"has_voeux"`
	SlotCount    int  `json:"nb_creneaux"`
	TeacherCount int  `json:"nb_enseignants"`
	VoeuCount    int  `json:"nb_voeux"`
}
