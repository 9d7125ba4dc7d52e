package models

// Grade is a teacher rank with its surveillance quota.
type Grade struct {
	Code  string `json:"code_grade"`
	Label string `json:"grade"`
	Quota int    `json:"quota"`
}

// TeacherQuota tracks per-session quota accounting for one teacher, as
// maintained by the optimizer.
type TeacherQuota struct {
	ID               int64  `json:"id"`
	TeacherCode      int    `json:"code_smartex_ens"`
	SessionID        int    `json:"id_session"`
	GradeCode        string `json:"grade_code_ens"`
	GradeQuota       int    `json:"quota_grade"`
	Realised         int    `json:"quota_realise"`
	MajorityQuota    int    `json:"quota_majoritaire"`
	DiffGrade        int    `json:"diff_quota_grade"`
	DiffMajority     int    `json:"diff_quota_majoritaire"`
	AdjustedQuota    *int   `json:"quota_ajuste,omitempty"`
	AdjustedMajority *int   `json:"quota_ajuste_maj,omitempty"`
}
