package models

import (
	"bytes"
	"fmt"
	"strings"
)

// Teacher represents an enseignant record.
type Teacher struct {
	Code       int     `json:"code_smartex_ens" validate:"required"`
	LastName   string  `json:"nom_ens" validate:"required"`
	FirstName  string  `json:"prenom_ens"`
	Email      string  `json:"email_ens,omitempty"`
	GradeCode  string  `json:"grade_code_ens"`
	Supervises IntBool `json:"participe_surveillance"`
}

// FullName renders "NOM Prénom", falling back to the smartex code when the
// directory has no name for the teacher.
func (t Teacher) FullName() string {
	name := strings.TrimSpace(t.LastName + " " + t.FirstName)
	if name == "" {
		return fmt.Sprintf("Prof %d", t.Code)
	}
	return name
}

// Initials returns the avatar initials used by list renderings.
func (t Teacher) Initials() string {
	var b strings.Builder
	if t.FirstName != "" {
		b.WriteString(strings.ToUpper(t.FirstName[:1]))
	}
	if t.LastName != "" {
		b.WriteString(strings.ToUpper(t.LastName[:1]))
	}
	return b.String()
}

// TeacherDirectory resolves teacher codes to display names.
type TeacherDirectory map[int]Teacher

// NewTeacherDirectory indexes teachers by smartex code.
func NewTeacherDirectory(teachers []Teacher) TeacherDirectory {
	dir := make(TeacherDirectory, len(teachers))
	for _, t := range teachers {
		dir[t.Code] = t
	}
	return dir
}

// NameOf returns the display name for a code, "Prof <code>" when unknown.
func (d TeacherDirectory) NameOf(code int) string {
	if t, ok := d[code]; ok {
		return t.FullName()
	}
	return fmt.Sprintf("Prof %d", code)
}

// IntBool is a bool that tolerates the backend's SQLite 0/1 encoding in both
// directions, mirroring the boolean conversion the original client performs.
type IntBool bool

// MarshalJSON encodes the flag as 0/1 for the backend.
func (b IntBool) MarshalJSON() ([]byte, error) {
	if b {
		return []byte("1"), nil
	}
	return []byte("0"), nil
}

// UnmarshalJSON accepts 0/1, true/false and quoted variants.
func (b *IntBool) UnmarshalJSON(data []byte) error {
	v := string(bytes.Trim(bytes.TrimSpace(data), `"`))
	switch v {
	case "1", "true":
		*b = true
	case "0", "false", "null", "":
		*b = false
	default:
		return fmt.Errorf("invalid boolean value %q", v)
	}
	return nil
}
