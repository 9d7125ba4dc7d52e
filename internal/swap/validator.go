package swap

import (
	"fmt"

	"github.com/exd-tools/surveil-admin/internal/models"
)

// Reason identifies why an exchange was rejected.
type Reason string

const (
	ReasonMissingData  Reason = "MISSING_DATA"
	ReasonSelfSwap     Reason = "SELF_SWAP"
	ReasonSameTeacher  Reason = "SAME_TEACHER"
	ReasonCrossSession Reason = "CROSS_SESSION"
	ReasonSameSlot     Reason = "SAME_SLOT"
)

// Result is the verdict of Validator.Validate. Zero value is invalid with no
// reason; use Valid() or a rejection constructor.
type Result struct {
	OK     bool
	Reason Reason
	Detail string
}

// Valid returns the accepting result.
func Valid() Result {
	return Result{OK: true}
}

func rejected(reason Reason, detail string) Result {
	return Result{Reason: reason, Detail: detail}
}

// Validator decides whether two assignments may exchange their teachers.
// It is pure: no I/O, no mutation, safe to call once per drag-over event.
type Validator struct {
	directory models.TeacherDirectory
}

// NewValidator builds a validator. The directory is only used to resolve
// teacher names in rejection messages and may be nil.
func NewValidator(directory models.TeacherDirectory) *Validator {
	return &Validator{directory: directory}
}

// Validate applies the exchange rules in order; the first failing rule wins.
// Equality is value equality on the wire identifiers.
func (v *Validator) Validate(a, b *models.Assignment) Result {
	if a == nil || b == nil {
		return rejected(ReasonMissingData, "données manquantes")
	}
	if a.ID == b.ID {
		return rejected(ReasonSelfSwap, "impossible de permuter une affectation avec elle-même")
	}
	if a.TeacherCode == b.TeacherCode {
		return rejected(ReasonSameTeacher, fmt.Sprintf("même enseignant: %s", v.teacherName(a)))
	}
	if a.SessionID != b.SessionID {
		return rejected(ReasonCrossSession, "les affectations ne sont pas dans la même session")
	}
	if a.SameSlot(*b) {
		return rejected(ReasonSameSlot, fmt.Sprintf(
			"même salle (%s) et même créneau (%s %s-%s)",
			a.RoomLabel(), a.ExamDate, a.StartTime, a.EndTime,
		))
	}
	return Valid()
}

func (v *Validator) teacherName(a *models.Assignment) string {
	if v.directory != nil {
		if _, ok := v.directory[a.TeacherCode]; ok {
			return v.directory.NameOf(a.TeacherCode)
		}
	}
	if name := (models.Teacher{Code: a.TeacherCode, LastName: a.LastName, FirstName: a.FirstName}).FullName(); name != "" {
		return name
	}
	return fmt.Sprintf("Prof %d", a.TeacherCode)
}
