package models

// TimeSlot represents a créneau: one exam occupying a room for a half-open
// time interval [h_debut, h_fin) on a given date.
type TimeSlot struct {
	ID              int64  `json:"creneau_id"`
	SessionID       int    `json:"id_session" validate:"required"`
	ExamDate        string `json:"dateExam" validate:"required"`
	StartTime       string `json:"h_debut" validate:"required"`
	EndTime         string `json:"h_fin" validate:"required"`
	ExamType        string `json:"type_ex,omitempty"`
	Semester        string `json:"semestre,omitempty"`
	ResponsibleCode *int   `json:"enseignant,omitempty"`
	RoomCode        string `json:"cod_salle,omitempty"`
}

// Overlaps reports whether two slots on the same date share any time.
func (s TimeSlot) Overlaps(o TimeSlot) bool {
	if s.ExamDate != o.ExamDate {
		return false
	}
	return s.StartTime < o.EndTime && s.EndTime > o.StartTime
}

// TimeSlotFilter captures the list endpoint's query parameters.
type TimeSlotFilter struct {
	SessionID int
	ExamDate  string
}

// TimeSlotStats is the per-session créneau statistics read model.
type TimeSlotStats struct {
	SessionID  int            `json:"id_session"`
	SlotCount  int            `json:"nb_creneaux"`
	DayCount   int            `json:"nb_jours"`
	RoomCount  int            `json:"nb_salles"`
	ExamsByDay map[string]int `json:"par_jour,omitempty"`
}

// RoomSlotCount mirrors salle_par_creneau: how many rooms run in parallel
// for a (session, date, start) slot.
type RoomSlotCount struct {
	SessionID int    `json:"id_session"`
	ExamDate  string `json:"dateExam"`
	StartTime string `json:"h_debut"`
	RoomCount int    `json:"nb_salle"`
}
