package swap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exd-tools/surveil-admin/internal/models"
)

func assignment(id int64, teacher, session int, room, date, start, end string) *models.Assignment {
	return &models.Assignment{
		ID:          id,
		TeacherCode: teacher,
		SessionID:   session,
		RoomCode:    room,
		ExamDate:    date,
		StartTime:   start,
		EndTime:     end,
	}
}

func TestValidator_Validate(t *testing.T) {
	v := NewValidator(nil)

	a := assignment(1, 10, 5, "B203", "13/05/2025", "08:30", "10:00")

	tests := []struct {
		name   string
		a, b   *models.Assignment
		ok     bool
		reason Reason
	}{
		{
			name:   "valid pair with different rooms",
			a:      a,
			b:      assignment(2, 20, 5, "A102", "13/05/2025", "08:30", "10:00"),
			ok:     true,
		},
		{
			name:   "missing first",
			a:      nil,
			b:      a,
			reason: ReasonMissingData,
		},
		{
			name:   "missing second",
			a:      a,
			b:      nil,
			reason: ReasonMissingData,
		},
		{
			name:   "same assignment id",
			a:      a,
			b:      assignment(1, 20, 5, "A102", "13/05/2025", "08:30", "10:00"),
			reason: ReasonSelfSwap,
		},
		{
			name:   "same teacher different slots",
			a:      a,
			b:      assignment(2, 10, 5, "A102", "13/05/2025", "08:30", "10:00"),
			reason: ReasonSameTeacher,
		},
		{
			name:   "different sessions",
			a:      a,
			b:      assignment(2, 20, 6, "A102", "14/05/2025", "10:15", "11:45"),
			reason: ReasonCrossSession,
		},
		{
			name:   "identical slot and room",
			a:      a,
			b:      assignment(2, 20, 5, "B203", "13/05/2025", "08:30", "10:00"),
			reason: ReasonSameSlot,
		},
		{
			name:   "same room different date",
			a:      a,
			b:      assignment(2, 20, 5, "B203", "14/05/2025", "08:30", "10:00"),
			ok:     true,
		},
		{
			name:   "same time no rooms",
			a:      assignment(1, 10, 5, "", "13/05/2025", "08:30", "10:00"),
			b:      assignment(2, 20, 5, "", "13/05/2025", "08:30", "10:00"),
			reason: ReasonSameSlot,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := v.Validate(tt.a, tt.b)
			assert.Equal(t, tt.ok, res.OK)
			assert.Equal(t, tt.reason, res.Reason)
			if !tt.ok {
				assert.NotEmpty(t, res.Detail)
			}
		})
	}
}

func TestValidator_SelfCheck(t *testing.T) {
	v := NewValidator(nil)
	a := assignment(7, 10, 5, "B203", "13/05/2025", "08:30", "10:00")

	res := v.Validate(a, a)
	require.False(t, res.OK)
	assert.Equal(t, ReasonSelfSwap, res.Reason)
}

func TestValidator_Symmetry(t *testing.T) {
	v := NewValidator(nil)

	pairs := []struct {
		a, b *models.Assignment
	}{
		{assignment(1, 10, 5, "B203", "13/05/2025", "08:30", "10:00"), assignment(2, 20, 5, "A102", "13/05/2025", "08:30", "10:00")},
		{assignment(1, 10, 5, "B203", "13/05/2025", "08:30", "10:00"), assignment(2, 10, 5, "A102", "13/05/2025", "08:30", "10:00")},
		{assignment(1, 10, 5, "B203", "13/05/2025", "08:30", "10:00"), assignment(2, 20, 6, "A102", "13/05/2025", "08:30", "10:00")},
		{assignment(1, 10, 5, "B203", "13/05/2025", "08:30", "10:00"), assignment(2, 20, 5, "B203", "13/05/2025", "08:30", "10:00")},
	}

	for _, p := range pairs {
		fwd := v.Validate(p.a, p.b)
		rev := v.Validate(p.b, p.a)
		assert.Equal(t, fwd.OK, rev.OK)
		assert.Equal(t, fwd.Reason, rev.Reason)
	}
}

func TestValidator_SameTeacherMessageUsesDirectory(t *testing.T) {
	dir := models.NewTeacherDirectory([]models.Teacher{
		{Code: 10, LastName: "Ben Ahmed", FirstName: "Mohamed"},
	})
	v := NewValidator(dir)

	a := assignment(1, 10, 5, "B203", "13/05/2025", "08:30", "10:00")
	b := assignment(2, 10, 5, "A102", "13/05/2025", "08:30", "10:00")

	res := v.Validate(a, b)
	require.Equal(t, ReasonSameTeacher, res.Reason)
	assert.Contains(t, res.Detail, "Ben Ahmed Mohamed")
}

func TestValidator_SameTeacherFallbackName(t *testing.T) {
	v := NewValidator(nil)

	a := assignment(1, 42, 5, "B203", "13/05/2025", "08:30", "10:00")
	b := assignment(2, 42, 5, "A102", "13/05/2025", "08:30", "10:00")

	res := v.Validate(a, b)
	require.Equal(t, ReasonSameTeacher, res.Reason)
	assert.Contains(t, res.Detail, "Prof 42")
}
