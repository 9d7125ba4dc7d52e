package stub

import "github.com/exd-tools/surveil-admin/internal/models"

// SeedDemo loads a small but realistic dataset: one winter session over two
// exam days with two parallel rooms per half-day, and a teacher directory
// spanning the grade scale.
func SeedDemo(s *Store) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[5] = models.Session{
		ID: 5, Label: "Session Janvier 2025",
		StartDate: "13/05/2025", EndDate: "14/05/2025",
		AcademicYear: "2024-2025", Semester: "S1", Type: "principale",
	}
	s.sessions[6] = models.Session{
		ID: 6, Label: "Session Juin 2025",
		StartDate: "16/06/2025", EndDate: "20/06/2025",
		AcademicYear: "2024-2025", Semester: "S2", Type: "principale",
	}

	for _, g := range []models.Grade{
		{Code: "PR", Label: "Professeur", Quota: 2},
		{Code: "MC", Label: "Maître de conférences", Quota: 3},
		{Code: "MA", Label: "Maître assistant", Quota: 4},
		{Code: "AS", Label: "Assistant", Quota: 5},
	} {
		s.grades[g.Code] = g
	}

	for _, t := range []models.Teacher{
		{Code: 1001, LastName: "Ben Ahmed", FirstName: "Mohamed", Email: "mohamed.benahmed@univ.tn", GradeCode: "PR", Supervises: true},
		{Code: 1002, LastName: "Trabelsi", FirstName: "Leila", Email: "leila.trabelsi@univ.tn", GradeCode: "MC", Supervises: true},
		{Code: 1003, LastName: "Gharbi", FirstName: "Sami", Email: "sami.gharbi@univ.tn", GradeCode: "MA", Supervises: true},
		{Code: 1004, LastName: "Mansouri", FirstName: "Amina", Email: "amina.mansouri@univ.tn", GradeCode: "AS", Supervises: true},
		{Code: 1005, LastName: "Jlassi", FirstName: "Karim", Email: "karim.jlassi@univ.tn", GradeCode: "MA", Supervises: true},
		{Code: 1006, LastName: "Bouzid", FirstName: "Nadia", Email: "nadia.bouzid@univ.tn", GradeCode: "MC", Supervises: false},
	} {
		s.teachers[t.Code] = t
	}

	slotID := int64(1)
	addSlot := func(date, start, end, room string) {
		s.slots[slotID] = models.TimeSlot{
			ID: slotID, SessionID: 5,
			ExamDate: date, StartTime: start, EndTime: end,
			RoomCode: room, ExamType: "écrit", Semester: "S1",
		}
		slotID++
	}
	for _, date := range []string{"13/05/2025", "14/05/2025"} {
		for _, span := range [][2]string{{"08:30", "10:00"}, {"10:15", "11:45"}} {
			for _, room := range []string{"A102", "B203"} {
				addSlot(date, span[0], span[1], room)
			}
		}
	}
	s.nextSlot = slotID

	for _, v := range []models.Voeu{
		{ID: 1, TeacherCode: 1002, SessionID: 5, Day: 1, Seance: "S1"},
		{ID: 2, TeacherCode: 1004, SessionID: 5, Day: 2, Seance: "S2"},
	} {
		s.voeux[v.ID] = v
		s.nextVoeu = v.ID + 1
	}

	addAssignment := func(teacherCode int, slot int64) {
		sl := s.slots[slot]
		s.assignments[s.nextAssign] = &models.Assignment{
			ID:          s.nextAssign,
			TeacherCode: teacherCode,
			SlotID:      slot,
			SessionID:   sl.SessionID,
			ExamDate:    sl.ExamDate,
			StartTime:   sl.StartTime,
			EndTime:     sl.EndTime,
			RoomCode:    sl.RoomCode,
		}
		s.nextAssign++
	}
	supervising := []int{1001, 1002, 1003, 1004, 1005}
	for i := int64(1); i < slotID; i++ {
		addAssignment(supervising[int(i-1)%len(supervising)], i)
	}

	for i, code := range supervising {
		t := s.teachers[code]
		realised := 0
		for _, a := range s.assignments {
			if a.TeacherCode == code {
				realised++
			}
		}
		quota := s.grades[t.GradeCode].Quota
		s.quotas = append(s.quotas, models.TeacherQuota{
			ID:            int64(i + 1),
			TeacherCode:   code,
			SessionID:     5,
			GradeCode:     t.GradeCode,
			GradeQuota:    quota,
			Realised:      realised,
			MajorityQuota: quota,
			DiffGrade:     quota - realised,
			DiffMajority:  quota - realised,
		})
	}
}
