package stub

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/exd-tools/surveil-admin/internal/models"
	"github.com/exd-tools/surveil-admin/pkg/logger"
	"github.com/exd-tools/surveil-admin/pkg/middleware/requestid"
	"github.com/exd-tools/surveil-admin/pkg/response"
)

// Server exposes the store over the backend's HTTP contract.
type Server struct {
	store  *Store
	logger *zap.Logger
	engine *gin.Engine
}

// NewServer wires the routes. logger may be nil.
func NewServer(store *Store, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(requestid.Middleware())
	engine.Use(logger.GinMiddleware(log))

	s := &Server{store: store, logger: log, engine: engine}
	s.routes()
	return s
}

// Engine returns the underlying router, used by tests and by Run.
func (s *Server) Engine() *gin.Engine { return s.engine }

// Run serves until the listener fails.
func (s *Server) Run(addr string) error {
	s.logger.Info("stub backend listening", zap.String("addr", addr))
	return s.engine.Run(addr)
}

func (s *Server) routes() {
	api := s.engine.Group("/api")

	api.GET("/sessions", s.listSessions)
	api.POST("/sessions", s.createSession)
	api.GET("/sessions/:id", s.getSession)
	api.PUT("/sessions/:id", s.updateSession)
	api.DELETE("/sessions/:id", s.deleteSession)
	api.DELETE("/sessions/all", s.deleteAllSessions)
	api.GET("/sessions/:id/check-data", s.checkSessionData)

	api.GET("/enseignants", s.listTeachers)
	api.POST("/enseignants", s.createTeacher)
	api.GET("/enseignants/surveillance", s.listSupervisingTeachers)
	api.GET("/enseignants/:code", s.getTeacher)
	api.PUT("/enseignants/:code", s.updateTeacher)
	api.DELETE("/enseignants/:code", s.deleteTeacher)
	api.DELETE("/enseignants/all", s.deleteAllTeachers)

	api.GET("/grades", s.listGrades)
	api.PUT("/grades/:code", s.updateGrade)

	api.GET("/creneaux", s.listSlots)
	api.POST("/creneaux", s.createSlot)
	api.POST("/creneaux/batch", s.createSlotBatch)
	api.PUT("/creneaux/:id", s.updateSlot)
	api.DELETE("/creneaux/:id", s.deleteSlot)
	api.DELETE("/creneaux/all", s.deleteAllSlots)
	api.DELETE("/creneaux/session/:id", s.deleteSessionSlots)
	api.GET("/creneaux/session/:id/statistiques", s.slotStatistics)

	api.GET("/salles-par-creneau/session/:id", s.listRoomCounts)

	api.GET("/voeux", s.listVoeux)
	api.POST("/voeux", s.createVoeu)
	api.DELETE("/voeux/:id", s.deleteVoeu)
	api.DELETE("/voeux/all", s.deleteAllVoeux)
	api.DELETE("/voeux/session/:id", s.deleteSessionVoeux)
	api.GET("/voeux/enseignant/:code/session/:id", s.listTeacherVoeux)

	api.GET("/quota-enseignants", s.listTeacherQuotas)
	api.PUT("/quota-enseignants/enseignant/:code", s.updateTeacherQuota)
	api.PUT("/quota-enseignants/reset/session/:id", s.resetQuotas)
	api.PUT("/quota-enseignants/reset/all", s.resetAllQuotas)
	api.DELETE("/quota-enseignants/session/:id", s.deleteSessionQuotas)

	api.GET("/affectations", s.listAssignments)
	api.POST("/affectations/permuter", s.swapAssignments)
	api.DELETE("/affectations/delete-all", s.deleteAllAssignments)

	api.POST("/optimize/run", s.runOptimization)
	api.GET("/optimize/status/:id", s.optimizationStatus)

	api.GET("/statistics/session/:id", s.sessionStatistics)
	api.GET("/statistics/sessions", s.allSessionStatistics)
}

func intParam(c *gin.Context, name string) (int, bool) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil {
		response.BadRequest(c, "paramètre invalide: "+name)
		return 0, false
	}
	return v, true
}

func (s *Server) listSessions(c *gin.Context) {
	response.OK(c, s.store.Sessions())
}

func (s *Server) getSession(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	sess, found := s.store.Session(id)
	if !found {
		response.NotFound(c, "Session non trouvée")
		return
	}
	response.OK(c, sess)
}

func (s *Server) checkSessionData(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	if _, found := s.store.Session(id); !found {
		response.NotFound(c, "Session non trouvée")
		return
	}
	response.OK(c, s.store.CheckData(id))
}

func (s *Server) listTeachers(c *gin.Context) {
	response.OK(c, s.store.Teachers())
}

func (s *Server) listSupervisingTeachers(c *gin.Context) {
	response.OK(c, s.store.SupervisingTeachers())
}

func (s *Server) getTeacher(c *gin.Context) {
	code, ok := intParam(c, "code")
	if !ok {
		return
	}
	t, found := s.store.Teacher(code)
	if !found {
		response.NotFound(c, "Enseignant non trouvé")
		return
	}
	response.OK(c, t)
}

func (s *Server) listGrades(c *gin.Context) {
	response.OK(c, s.store.Grades())
}

func (s *Server) listSlots(c *gin.Context) {
	filter := models.TimeSlotFilter{ExamDate: c.Query("dateExam")}
	if v := c.Query("id_session"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(c, "paramètre invalide: id_session")
			return
		}
		filter.SessionID = id
	}
	response.OK(c, s.store.Slots(filter))
}

func (s *Server) slotStatistics(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	slots := s.store.Slots(models.TimeSlotFilter{SessionID: id})
	stats := models.TimeSlotStats{
		SessionID:  id,
		SlotCount:  len(slots),
		ExamsByDay: make(map[string]int),
	}
	rooms := make(map[string]struct{})
	for _, slot := range slots {
		stats.ExamsByDay[slot.ExamDate]++
		if slot.RoomCode != "" {
			rooms[slot.RoomCode] = struct{}{}
		}
	}
	stats.DayCount = len(stats.ExamsByDay)
	stats.RoomCount = len(rooms)
	response.OK(c, stats)
}

func (s *Server) listRoomCounts(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	response.OK(c, s.store.RoomCounts(id))
}

func (s *Server) listVoeux(c *gin.Context) {
	var filter models.VoeuFilter
	if v := c.Query("code_smartex_ens"); v != "" {
		filter.TeacherCode, _ = strconv.Atoi(v)
	}
	if v := c.Query("id_session"); v != "" {
		filter.SessionID, _ = strconv.Atoi(v)
	}
	response.OK(c, s.store.Voeux(filter))
}

func (s *Server) listTeacherVoeux(c *gin.Context) {
	code, ok := intParam(c, "code")
	if !ok {
		return
	}
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	response.OK(c, s.store.Voeux(models.VoeuFilter{TeacherCode: code, SessionID: id}))
}

func (s *Server) listTeacherQuotas(c *gin.Context) {
	sessionID := 0
	if v := c.Query("id_session"); v != "" {
		sessionID, _ = strconv.Atoi(v)
	}
	response.OK(c, s.store.TeacherQuotas(sessionID))
}

func (s *Server) updateTeacherQuota(c *gin.Context) {
	code, ok := intParam(c, "code")
	if !ok {
		return
	}
	var body struct {
		Adjusted int `json:"quota_ajuste"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "quota_ajuste requis")
		return
	}
	if !s.store.AdjustTeacherQuota(code, body.Adjusted) {
		response.NotFound(c, "Quota enseignant non trouvé")
		return
	}
	response.Message(c, "Quota ajusté.")
}

func (s *Server) resetQuotas(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	s.store.ResetQuotas(id)
	response.Message(c, "Quotas réinitialisés.")
}

func (s *Server) resetAllQuotas(c *gin.Context) {
	s.store.ResetQuotas(0)
	response.Message(c, "Quotas réinitialisés.")
}

func (s *Server) deleteSessionQuotas(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	s.store.DeleteSessionQuotas(id)
	response.Message(c, "Quotas supprimés.")
}

func (s *Server) createSession(c *gin.Context) {
	var sess models.Session
	if err := c.ShouldBindJSON(&sess); err != nil || sess.Label == "" {
		response.BadRequest(c, "libelle_session requis")
		return
	}
	response.Created(c, s.store.SaveSession(sess))
}

func (s *Server) updateSession(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	if _, found := s.store.Session(id); !found {
		response.NotFound(c, "Session non trouvée")
		return
	}
	var sess models.Session
	if err := c.ShouldBindJSON(&sess); err != nil || sess.Label == "" {
		response.BadRequest(c, "libelle_session requis")
		return
	}
	sess.ID = id
	response.OK(c, s.store.SaveSession(sess))
}

func (s *Server) deleteSession(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	if !s.store.DeleteSession(id) {
		response.NotFound(c, "Session non trouvée")
		return
	}
	response.Message(c, "Session supprimée.")
}

func (s *Server) deleteAllSessions(c *gin.Context) {
	for _, sess := range s.store.Sessions() {
		s.store.DeleteSession(sess.ID)
	}
	response.Message(c, "Sessions supprimées.")
}

func (s *Server) createTeacher(c *gin.Context) {
	var t models.Teacher
	if err := c.ShouldBindJSON(&t); err != nil || t.Code == 0 || t.LastName == "" {
		response.BadRequest(c, "code_smartex_ens et nom_ens sont requis")
		return
	}
	if _, exists := s.store.Teacher(t.Code); exists {
		response.Conflict(c, "Un enseignant avec ce code existe déjà.")
		return
	}
	s.store.SaveTeacher(t)
	response.Created(c, t)
}

func (s *Server) updateTeacher(c *gin.Context) {
	code, ok := intParam(c, "code")
	if !ok {
		return
	}
	if _, found := s.store.Teacher(code); !found {
		response.NotFound(c, "Enseignant non trouvé")
		return
	}
	var t models.Teacher
	if err := c.ShouldBindJSON(&t); err != nil || t.LastName == "" {
		response.BadRequest(c, "nom_ens requis")
		return
	}
	t.Code = code
	s.store.SaveTeacher(t)
	response.OK(c, t)
}

func (s *Server) deleteTeacher(c *gin.Context) {
	code, ok := intParam(c, "code")
	if !ok {
		return
	}
	if !s.store.DeleteTeacher(code) {
		response.NotFound(c, "Enseignant non trouvé")
		return
	}
	response.Message(c, "Enseignant supprimé.")
}

func (s *Server) deleteAllTeachers(c *gin.Context) {
	n := s.store.DeleteAllTeachers()
	response.OK(c, gin.H{"message": "Enseignants supprimés.", "count": n})
}

func (s *Server) updateGrade(c *gin.Context) {
	var body struct {
		Quota int `json:"quota"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "quota requis")
		return
	}
	if !s.store.UpdateGrade(c.Param("code"), body.Quota) {
		response.NotFound(c, "Grade non trouvé")
		return
	}
	response.Message(c, "Quota mis à jour.")
}

func (s *Server) createSlot(c *gin.Context) {
	var slot models.TimeSlot
	if err := c.ShouldBindJSON(&slot); err != nil || slot.SessionID == 0 || slot.ExamDate == "" {
		response.BadRequest(c, "id_session, dateExam, h_debut et h_fin sont requis")
		return
	}
	response.Created(c, s.store.AddSlot(slot))
}

func (s *Server) createSlotBatch(c *gin.Context) {
	var slots []models.TimeSlot
	if err := c.ShouldBindJSON(&slots); err != nil || len(slots) == 0 {
		response.BadRequest(c, "liste de créneaux requise")
		return
	}
	out := make([]models.TimeSlot, 0, len(slots))
	for _, slot := range slots {
		if slot.SessionID == 0 || slot.ExamDate == "" {
			response.BadRequest(c, "id_session, dateExam, h_debut et h_fin sont requis")
			return
		}
		out = append(out, s.store.AddSlot(slot))
	}
	response.Created(c, out)
}

func (s *Server) updateSlot(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	var slot models.TimeSlot
	if err := c.ShouldBindJSON(&slot); err != nil || slot.SessionID == 0 || slot.ExamDate == "" {
		response.BadRequest(c, "id_session, dateExam, h_debut et h_fin sont requis")
		return
	}
	slot.ID = int64(id)
	if !s.store.UpdateSlot(slot) {
		response.NotFound(c, "Créneau non trouvé")
		return
	}
	response.OK(c, slot)
}

func (s *Server) deleteSlot(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	if !s.store.DeleteSlot(int64(id)) {
		response.NotFound(c, "Créneau non trouvé")
		return
	}
	response.Message(c, "Créneau supprimé.")
}

func (s *Server) deleteAllSlots(c *gin.Context) {
	n := s.store.DeleteAllSlots()
	response.OK(c, gin.H{"message": "Créneaux supprimés.", "count": n})
}

func (s *Server) deleteSessionSlots(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	n := s.store.DeleteSessionSlots(id)
	response.OK(c, gin.H{"message": "Créneaux supprimés.", "count": n})
}

func (s *Server) createVoeu(c *gin.Context) {
	var v models.Voeu
	if err := c.ShouldBindJSON(&v); err != nil || v.TeacherCode == 0 || v.SessionID == 0 {
		response.BadRequest(c, "code_smartex_ens et id_session sont requis")
		return
	}
	response.Created(c, s.store.AddVoeu(v))
}

func (s *Server) deleteVoeu(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	if !s.store.DeleteVoeu(int64(id)) {
		response.NotFound(c, "Vœu non trouvé")
		return
	}
	response.Message(c, "Vœu supprimé.")
}

func (s *Server) deleteAllVoeux(c *gin.Context) {
	n := s.store.DeleteAllVoeux()
	response.OK(c, gin.H{"message": "Vœux supprimés.", "count": n})
}

func (s *Server) deleteSessionVoeux(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	n := s.store.DeleteSessionVoeux(id)
	response.OK(c, gin.H{"message": "Vœux supprimés.", "count": n})
}

func (s *Server) listAssignments(c *gin.Context) {
	var filter models.AssignmentFilter
	if v := c.Query("id_session"); v != "" {
		filter.SessionID, _ = strconv.Atoi(v)
	}
	if v := c.Query("code_smartex_ens"); v != "" {
		filter.TeacherCode, _ = strconv.Atoi(v)
	}
	if v := c.Query("creneau_id"); v != "" {
		filter.SlotID, _ = strconv.ParseInt(v, 10, 64)
	}
	response.OK(c, s.store.Assignments(filter))
}

func (s *Server) swapAssignments(c *gin.Context) {
	var req models.SwapRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.AssignmentID1 == 0 || req.AssignmentID2 == 0 {
		response.BadRequest(c, "Les deux IDs d'affectation sont requis.")
		return
	}
	if err := s.store.Swap(req.AssignmentID1, req.AssignmentID2); err != nil {
		response.FromError(c, err)
		return
	}
	response.Message(c, "Permutation effectuée avec succès.")
}

func (s *Server) deleteAllAssignments(c *gin.Context) {
	n := s.store.DeleteAllAssignments()
	response.OK(c, gin.H{"message": "Affectations supprimées.", "count": n})
}

func (s *Server) runOptimization(c *gin.Context) {
	var req models.OptimizationRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.SessionID == 0 {
		response.BadRequest(c, "session_id requis")
		return
	}
	if _, found := s.store.Session(req.SessionID); !found {
		response.NotFound(c, "Session non trouvée")
		return
	}
	response.OK(c, s.store.Optimize(req))
}

func (s *Server) optimizationStatus(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	response.OK(c, s.store.Status(id))
}

func (s *Server) sessionStatistics(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	if _, found := s.store.Session(id); !found {
		response.NotFound(c, "Session non trouvée")
		return
	}
	response.OK(c, s.store.Statistics(id))
}

func (s *Server) allSessionStatistics(c *gin.Context) {
	var out []models.SessionStatistics
	for _, sess := range s.store.Sessions() {
		out = append(out, s.store.Statistics(sess.ID))
	}
	response.OK(c, out)
}
