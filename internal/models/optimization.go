package models

// OptimizationRequest parameterises a solver run. The solver itself is an
// opaque external service; this is only its request contract.
type OptimizationRequest struct {
	SessionID     int  `json:"session_id" validate:"required"`
	Save          bool `json:"save"`
	Clear         bool `json:"clear"`
	GenerateFiles bool `json:"generate_files"`
	GenerateStats bool `json:"generate_stats"`
}

// DefaultOptimizationRequest mirrors the defaults of the original client.
func DefaultOptimizationRequest(sessionID int) OptimizationRequest {
	return OptimizationRequest{
		SessionID:     sessionID,
		Save:          true,
		Clear:         true,
		GenerateFiles: true,
		GenerateStats: true,
	}
}

// OptimizationResult is the solver's reported outcome.
type OptimizationResult struct {
	Success         bool    `json:"success"`
	Message         string  `json:"message,omitempty"`
	SessionID       int     `json:"session_id"`
	AssignmentCount int     `json:"nb_affectations"`
	Objective       float64 `json:"objective,omitempty"`
	DurationSeconds float64 `json:"duration_seconds,omitempty"`
}

// OptimizationStatus reports whether assignments exist for a session.
type OptimizationStatus struct {
	SessionID       int  `json:"session_id"`
	HasAssignments  bool `json:"has_affectations"`
	AssignmentCount int  `json:"nb_affectations"`
}
