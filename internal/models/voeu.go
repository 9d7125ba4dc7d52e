package models

// Voeu is a teacher-submitted non-availability preference for a day/period.
// The optimizer consumes them server-side; the client only manages them.
type Voeu struct {
	ID          int64  `json:"voeu_id"`
	TeacherCode int    `json:"code_smartex_ens" validate:"required"`
	SessionID   int    `json:"id_session" validate:"required"`
	Day         int    `json:"jour"`
	Seance      string `json:"seance"`
}

// VoeuFilter captures the list endpoint's query parameters.
type VoeuFilter struct {
	TeacherCode int
	SessionID   int
}

// VoeuImportResult reports the outcome of a server-side voeux import.
type VoeuImportResult struct {
	Success  bool     `json:"success"`
	Inserted int      `json:"inserted"`
	Errors   []string `json:"errors,omitempty"`
}
