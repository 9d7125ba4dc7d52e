package models

import "fmt"

// Assignment is one teacher's obligation to proctor one exam slot in one
// room. Field names follow the backend wire contract.
type Assignment struct {
	ID              int64  `json:"affectation_id"`
	TeacherCode     int    `json:"code_smartex_ens"`
	SlotID          int64  `json:"creneau_id"`
	SessionID       int    `json:"id_session"`
	Day             int    `json:"jour,omitempty"`
	Seance          string `json:"seance,omitempty"`
	ExamDate        string `json:"date_examen"`
	StartTime       string `json:"h_debut"`
	EndTime         string `json:"h_fin"`
	RoomCode        string `json:"cod_salle,omitempty"`
	Position        string `json:"position,omitempty"`
	ResponsibleCode *int   `json:"enseignant,omitempty"`

	// Joined display fields returned by the list endpoint.
	LastName     string `json:"nom_ens,omitempty"`
	FirstName    string `json:"prenom_ens,omitempty"`
	Email        string `json:"email_ens,omitempty"`
	GradeCode    string `json:"grade_code_ens,omitempty"`
	SessionLabel string `json:"libelle_session,omitempty"`
}

// SameSlot reports whether two assignments cover the identical room and time
// slot: room, date, start and end must all be equal.
func (a Assignment) SameSlot(b Assignment) bool {
	return a.RoomCode == b.RoomCode &&
		a.ExamDate == b.ExamDate &&
		a.StartTime == b.StartTime &&
		a.EndTime == b.EndTime
}

// SlotLabel renders the slot for display, e.g. "13/05/2025 08:30-10:00".
func (a Assignment) SlotLabel() string {
	return fmt.Sprintf("%s %s-%s", a.ExamDate, a.StartTime, a.EndTime)
}

// RoomLabel renders the room, or a dash when the slot has no room attached.
func (a Assignment) RoomLabel() string {
	if a.RoomCode == "" {
		return "-"
	}
	return a.RoomCode
}

// AssignmentFilter captures the query parameters of the list endpoint.
type AssignmentFilter struct {
	SessionID   int
	TeacherCode int
	SlotID      int64
}

// AssignmentGroupBy enumerates the grouping modes of the assignment list.
type AssignmentGroupBy string

const (
	GroupByDay     AssignmentGroupBy = "jour"
	GroupByTeacher AssignmentGroupBy = "enseignant"
	GroupByRoom    AssignmentGroupBy = "salle"
)

// SwapRequest is the payload of the exchange endpoint.
type SwapRequest struct {
	AssignmentID1 int64 `json:"affectation_id_1" validate:"required"`
	AssignmentID2 int64 `json:"affectation_id_2" validate:"required"`
}
