// Package stub is a self-contained in-memory rendition of the scheduling
// backend, wire-compatible with the subset of its API this tool consumes.
// It backs local development and the integration tests of the swap workflow.
package stub

import (
	"fmt"
	"sort"
	"sync"

	"github.com/exd-tools/surveil-admin/internal/models"
	appErrors "github.com/exd-tools/surveil-admin/pkg/errors"
)

// Store holds the backend state. All access goes through its methods; reads
// return copies so handlers never leak internal slices.
type Store struct {
	mu          sync.RWMutex
	sessions    map[int]models.Session
	teachers    map[int]models.Teacher
	grades      map[string]models.Grade
	slots       map[int64]models.TimeSlot
	assignments map[int64]*models.Assignment
	voeux       map[int64]models.Voeu
	quotas      []models.TeacherQuota
	nextAssign  int64
	nextVoeu    int64
	nextSlot    int64
}

// NewStore builds an empty store.
func NewStore() *Store {
	return &Store{
		sessions:    make(map[int]models.Session),
		teachers:    make(map[int]models.Teacher),
		grades:      make(map[string]models.Grade),
		slots:       make(map[int64]models.TimeSlot),
		assignments: make(map[int64]*models.Assignment),
		voeux:       make(map[int64]models.Voeu),
		nextAssign:  1,
		nextVoeu:    1,
		nextSlot:    1,
	}
}

// SaveSession upserts a session, assigning an id to new rows.
func (s *Store) SaveSession(sess models.Session) models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess.ID == 0 {
		for id := range s.sessions {
			if id >= sess.ID {
				sess.ID = id + 1
			}
		}
		if sess.ID == 0 {
			sess.ID = 1
		}
	}
	s.sessions[sess.ID] = sess
	return sess
}

// DeleteSession removes one session. Its slots, voeux and assignments go
// with it, as the backend cascades.
func (s *Store) DeleteSession(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return false
	}
	delete(s.sessions, id)
	for slotID, slot := range s.slots {
		if slot.SessionID == id {
			delete(s.slots, slotID)
		}
	}
	for voeuID, v := range s.voeux {
		if v.SessionID == id {
			delete(s.voeux, voeuID)
		}
	}
	for aID, a := range s.assignments {
		if a.SessionID == id {
			delete(s.assignments, aID)
		}
	}
	return true
}

// SaveTeacher upserts a teacher record.
func (s *Store) SaveTeacher(t models.Teacher) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.teachers[t.Code] = t
}

// DeleteTeacher removes one teacher.
func (s *Store) DeleteTeacher(code int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.teachers[code]; !ok {
		return false
	}
	delete(s.teachers, code)
	return true
}

// DeleteAllTeachers empties the directory. Returns the count.
func (s *Store) DeleteAllTeachers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.teachers)
	s.teachers = make(map[int]models.Teacher)
	return n
}

// UpdateGrade changes the quota of one grade.
func (s *Store) UpdateGrade(code string, quota int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.grades[code]
	if !ok {
		return false
	}
	g.Quota = quota
	s.grades[code] = g
	return true
}

// AddSlot inserts a créneau, assigning an id to new rows.
func (s *Store) AddSlot(slot models.TimeSlot) models.TimeSlot {
	s.mu.Lock()
	defer s.mu.Unlock()
	if slot.ID == 0 {
		slot.ID = s.nextSlot
	}
	if slot.ID >= s.nextSlot {
		s.nextSlot = slot.ID + 1
	}
	s.slots[slot.ID] = slot
	return slot
}

// UpdateSlot overwrites a créneau.
func (s *Store) UpdateSlot(slot models.TimeSlot) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.slots[slot.ID]; !ok {
		return false
	}
	s.slots[slot.ID] = slot
	return true
}

// DeleteSlot removes a créneau and its assignments.
func (s *Store) DeleteSlot(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.slots[id]; !ok {
		return false
	}
	delete(s.slots, id)
	for aID, a := range s.assignments {
		if a.SlotID == id {
			delete(s.assignments, aID)
		}
	}
	return true
}

// DeleteSessionSlots removes every créneau of one session. Returns the count.
func (s *Store) DeleteSessionSlots(sessionID int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id, slot := range s.slots {
		if slot.SessionID == sessionID {
			delete(s.slots, id)
			n++
		}
	}
	return n
}

// DeleteAllSlots removes every créneau. Returns the count.
func (s *Store) DeleteAllSlots() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.slots)
	s.slots = make(map[int64]models.TimeSlot)
	return n
}

// AddVoeu inserts a preference, assigning an id to new rows.
func (s *Store) AddVoeu(v models.Voeu) models.Voeu {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v.ID == 0 {
		v.ID = s.nextVoeu
	}
	if v.ID >= s.nextVoeu {
		s.nextVoeu = v.ID + 1
	}
	s.voeux[v.ID] = v
	return v
}

// DeleteVoeu removes one preference.
func (s *Store) DeleteVoeu(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.voeux[id]; !ok {
		return false
	}
	delete(s.voeux, id)
	return true
}

// DeleteSessionVoeux removes every preference of one session. Returns the count.
func (s *Store) DeleteSessionVoeux(sessionID int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id, v := range s.voeux {
		if v.SessionID == sessionID {
			delete(s.voeux, id)
			n++
		}
	}
	return n
}

// DeleteAllVoeux removes every preference. Returns the count.
func (s *Store) DeleteAllVoeux() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.voeux)
	s.voeux = make(map[int64]models.Voeu)
	return n
}

// Sessions lists all sessions ordered by id.
func (s *Store) Sessions() []models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		out = append(out, sess)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Session fetches one session.
func (s *Store) Session(id int) (models.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

// Teachers lists the directory ordered by code.
func (s *Store) Teachers() []models.Teacher {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Teacher, 0, len(s.teachers))
	for _, t := range s.teachers {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// SupervisingTeachers lists only teachers participating in surveillance.
func (s *Store) SupervisingTeachers() []models.Teacher {
	all := s.Teachers()
	out := make([]models.Teacher, 0, len(all))
	for _, t := range all {
		if t.Supervises {
			out = append(out, t)
		}
	}
	return out
}

// Teacher fetches one teacher by code.
func (s *Store) Teacher(code int) (models.Teacher, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.teachers[code]
	return t, ok
}

// Grades lists all grades ordered by code.
func (s *Store) Grades() []models.Grade {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Grade, 0, len(s.grades))
	for _, g := range s.grades {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// Slots lists créneaux matching the filter, ordered by date then start.
func (s *Store) Slots(filter models.TimeSlotFilter) []models.TimeSlot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.TimeSlot, 0, len(s.slots))
	for _, slot := range s.slots {
		if filter.SessionID > 0 && slot.SessionID != filter.SessionID {
			continue
		}
		if filter.ExamDate != "" && slot.ExamDate != filter.ExamDate {
			continue
		}
		out = append(out, slot)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ExamDate != out[j].ExamDate {
			return out[i].ExamDate < out[j].ExamDate
		}
		if out[i].StartTime != out[j].StartTime {
			return out[i].StartTime < out[j].StartTime
		}
		return out[i].RoomCode < out[j].RoomCode
	})
	return out
}

// RoomCounts aggregates how many rooms run in parallel per (date, start)
// slot of a session.
func (s *Store) RoomCounts(sessionID int) []models.RoomSlotCount {
	slots := s.Slots(models.TimeSlotFilter{SessionID: sessionID})
	type key struct{ date, start string }
	counts := make(map[key]int)
	for _, slot := range slots {
		counts[key{slot.ExamDate, slot.StartTime}]++
	}
	out := make([]models.RoomSlotCount, 0, len(counts))
	for k, n := range counts {
		out = append(out, models.RoomSlotCount{
			SessionID: sessionID,
			ExamDate:  k.date,
			StartTime: k.start,
			RoomCount: n,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ExamDate != out[j].ExamDate {
			return out[i].ExamDate < out[j].ExamDate
		}
		return out[i].StartTime < out[j].StartTime
	})
	return out
}

// Voeux lists preferences matching the filter.
func (s *Store) Voeux(filter models.VoeuFilter) []models.Voeu {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Voeu, 0, len(s.voeux))
	for _, v := range s.voeux {
		if filter.TeacherCode > 0 && v.TeacherCode != filter.TeacherCode {
			continue
		}
		if filter.SessionID > 0 && v.SessionID != filter.SessionID {
			continue
		}
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// TeacherQuotas lists quota rows, optionally scoped to one session.
func (s *Store) TeacherQuotas(sessionID int) []models.TeacherQuota {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.TeacherQuota, 0, len(s.quotas))
	for _, q := range s.quotas {
		if sessionID > 0 && q.SessionID != sessionID {
			continue
		}
		out = append(out, q)
	}
	return out
}

// AdjustTeacherQuota sets the adjusted quota on every quota row of one
// teacher.
func (s *Store) AdjustTeacherQuota(teacherCode, adjusted int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	found := false
	for i := range s.quotas {
		if s.quotas[i].TeacherCode == teacherCode {
			v := adjusted
			s.quotas[i].AdjustedQuota = &v
			found = true
		}
	}
	return found
}

// ResetQuotas zeroes the realised counters, scoped to one session when
// sessionID is positive.
func (s *Store) ResetQuotas(sessionID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.quotas {
		if sessionID > 0 && s.quotas[i].SessionID != sessionID {
			continue
		}
		q := &s.quotas[i]
		q.Realised = 0
		q.DiffGrade = q.GradeQuota
		q.DiffMajority = q.MajorityQuota
	}
}

// DeleteSessionQuotas drops the quota rows of one session. Returns the count.
func (s *Store) DeleteSessionQuotas(sessionID int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.quotas[:0]
	n := 0
	for _, q := range s.quotas {
		if q.SessionID == sessionID {
			n++
			continue
		}
		kept = append(kept, q)
	}
	s.quotas = kept
	return n
}

// Assignments lists assignments matching the filter with display fields
// joined in, ordered by date, start time then teacher name.
func (s *Store) Assignments(filter models.AssignmentFilter) []models.Assignment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Assignment, 0, len(s.assignments))
	for _, a := range s.assignments {
		if filter.SessionID > 0 && a.SessionID != filter.SessionID {
			continue
		}
		if filter.TeacherCode > 0 && a.TeacherCode != filter.TeacherCode {
			continue
		}
		if filter.SlotID > 0 && a.SlotID != filter.SlotID {
			continue
		}
		out = append(out, s.joined(*a))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ExamDate != out[j].ExamDate {
			return out[i].ExamDate < out[j].ExamDate
		}
		if out[i].StartTime != out[j].StartTime {
			return out[i].StartTime < out[j].StartTime
		}
		return out[i].LastName < out[j].LastName
	})
	return out
}

func (s *Store) joined(a models.Assignment) models.Assignment {
	if t, ok := s.teachers[a.TeacherCode]; ok {
		a.LastName = t.LastName
		a.FirstName = t.FirstName
		a.Email = t.Email
		a.GradeCode = t.GradeCode
	}
	if sess, ok := s.sessions[a.SessionID]; ok {
		a.SessionLabel = sess.Label
	}
	return a
}

// AddAssignment inserts an assignment row, denormalising the slot fields the
// way the real schema does.
func (s *Store) AddAssignment(teacherCode int, slotID int64) (models.Assignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	slot, ok := s.slots[slotID]
	if !ok {
		return models.Assignment{}, appErrors.ErrNotFound.Clone("Créneau non trouvé")
	}
	a := &models.Assignment{
		ID:          s.nextAssign,
		TeacherCode: teacherCode,
		SlotID:      slotID,
		SessionID:   slot.SessionID,
		ExamDate:    slot.ExamDate,
		StartTime:   slot.StartTime,
		EndTime:     slot.EndTime,
		RoomCode:    slot.RoomCode,
	}
	s.nextAssign++
	s.assignments[a.ID] = a
	return *a, nil
}

// DeleteAllAssignments drops every assignment row. Returns the count.
func (s *Store) DeleteAllAssignments() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.assignments)
	s.assignments = make(map[int64]*models.Assignment)
	return n
}

// Swap exchanges the teachers of two assignments, applying the full check
// chain of the real backend in the same order and with the same messages.
func (s *Store) Swap(id1, id2 int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a1, ok1 := s.assignments[id1]
	a2, ok2 := s.assignments[id2]
	if !ok1 || !ok2 {
		return appErrors.ErrNotFound.Clone("Affectation(s) non trouvée(s).")
	}
	if a1.TeacherCode == a2.TeacherCode {
		return appErrors.ErrSwapRefused.Clone("Impossible de permuter : les deux affectations concernent le même enseignant.")
	}
	if a1.SessionID != a2.SessionID {
		return appErrors.ErrSwapRefused.Clone("Impossible de permuter : les deux affectations ne sont pas dans la même session.")
	}
	if a1.SameSlot(*a2) {
		return appErrors.ErrSwapRefused.Clone("Impossible de permuter : même salle et même créneau.")
	}
	for _, a := range []*models.Assignment{a1, a2} {
		t, ok := s.teachers[a.TeacherCode]
		if !ok || !bool(t.Supervises) {
			return appErrors.ErrSwapRefused.Clone(
				fmt.Sprintf("L'enseignant %d ne participe pas à la surveillance.", a.TeacherCode))
		}
	}
	if s.hasConflict(a1.TeacherCode, *a2, id1, id2) {
		return appErrors.ErrConflict.Clone("Conflit d'horaire pour le premier enseignant.")
	}
	if s.hasConflict(a2.TeacherCode, *a1, id1, id2) {
		return appErrors.ErrConflict.Clone("Conflit d'horaire pour le second enseignant.")
	}

	a1.TeacherCode, a2.TeacherCode = a2.TeacherCode, a1.TeacherCode
	return nil
}

// hasConflict reports whether the teacher already proctors a slot
// overlapping the target slot, ignoring the two rows being exchanged.
func (s *Store) hasConflict(teacherCode int, target models.Assignment, exclude1, exclude2 int64) bool {
	for id, a := range s.assignments {
		if id == exclude1 || id == exclude2 {
			continue
		}
		if a.TeacherCode != teacherCode || a.ExamDate != target.ExamDate {
			continue
		}
		if a.StartTime < target.EndTime && a.EndTime > target.StartTime {
			return true
		}
	}
	return false
}

// CheckData reports whether a session carries the inputs the optimizer
// needs.
func (s *Store) CheckData(sessionID int) models.SessionDataCheck {
	s.mu.RLock()
	defer s.mu.RUnlock()
	check := models.SessionDataCheck{SessionID: sessionID}
	for _, slot := range s.slots {
		if slot.SessionID == sessionID {
			check.SlotCount++
		}
	}
	for _, t := range s.teachers {
		if t.Supervises {
			check.TeacherCount++
		}
	}
	for _, v := range s.voeux {
		if v.SessionID == sessionID {
			check.VoeuCount++
		}
	}
	check.HasSlots = check.SlotCount > 0
	check.HasTeachers = check.TeacherCount > 0
	check.HasVoeux = check.VoeuCount > 0
	return check
}

// Statistics aggregates assignment counts for one session.
func (s *Store) Statistics(sessionID int) models.SessionStatistics {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := models.SessionStatistics{SessionID: sessionID}
	teachers := make(map[int]struct{})
	byGrade := make(map[string]*models.GradeLoad)
	gradeTeachers := make(map[string]map[int]struct{})
	bySlot := make(map[int64]*models.SlotCoverage)

	for _, a := range s.assignments {
		if a.SessionID != sessionID {
			continue
		}
		stats.AssignmentCount++
		teachers[a.TeacherCode] = struct{}{}

		grade := ""
		if t, ok := s.teachers[a.TeacherCode]; ok {
			grade = t.GradeCode
		}
		gl, ok := byGrade[grade]
		if !ok {
			gl = &models.GradeLoad{GradeCode: grade}
			if g, found := s.grades[grade]; found {
				gl.Quota = g.Quota
			}
			byGrade[grade] = gl
			gradeTeachers[grade] = make(map[int]struct{})
		}
		gl.AssignmentCount++
		gradeTeachers[grade][a.TeacherCode] = struct{}{}

		cov, ok := bySlot[a.SlotID]
		if !ok {
			cov = &models.SlotCoverage{
				SlotID:    a.SlotID,
				ExamDate:  a.ExamDate,
				StartTime: a.StartTime,
				EndTime:   a.EndTime,
				RoomCode:  a.RoomCode,
			}
			bySlot[a.SlotID] = cov
		}
		cov.SupervisorCount++
	}

	stats.TeacherCount = len(teachers)
	for grade, gl := range byGrade {
		gl.TeacherCount = len(gradeTeachers[grade])
		stats.ByGrade = append(stats.ByGrade, *gl)
	}
	sort.Slice(stats.ByGrade, func(i, j int) bool {
		return stats.ByGrade[i].GradeCode < stats.ByGrade[j].GradeCode
	})
	for _, cov := range bySlot {
		stats.Slots = append(stats.Slots, *cov)
	}
	sort.Slice(stats.Slots, func(i, j int) bool {
		return stats.Slots[i].SlotID < stats.Slots[j].SlotID
	})
	return stats
}

// Optimize naively round-robins supervising teachers over the session's
// slots. The real solver is an external service; this stand-in only gives
// the workflow something to exchange.
func (s *Store) Optimize(req models.OptimizationRequest) models.OptimizationResult {
	if req.Clear {
		s.mu.Lock()
		for id, a := range s.assignments {
			if a.SessionID == req.SessionID {
				delete(s.assignments, id)
			}
		}
		s.mu.Unlock()
	}

	slots := s.Slots(models.TimeSlotFilter{SessionID: req.SessionID})
	teachers := s.SupervisingTeachers()
	if len(slots) == 0 || len(teachers) == 0 {
		return models.OptimizationResult{
			SessionID: req.SessionID,
			Message:   "Données insuffisantes pour lancer l'optimisation.",
		}
	}

	count := 0
	if req.Save {
		for i, slot := range slots {
			t := teachers[i%len(teachers)]
			if _, err := s.AddAssignment(t.Code, slot.ID); err == nil {
				count++
			}
		}
	}
	return models.OptimizationResult{
		Success:         true,
		Message:         "Optimisation terminée.",
		SessionID:       req.SessionID,
		AssignmentCount: count,
	}
}

// Status reports whether a session already has assignments.
func (s *Store) Status(sessionID int) models.OptimizationStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := models.OptimizationStatus{SessionID: sessionID}
	for _, a := range s.assignments {
		if a.SessionID == sessionID {
			st.AssignmentCount++
		}
	}
	st.HasAssignments = st.AssignmentCount > 0
	return st
}
