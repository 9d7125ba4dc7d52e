package client

import (
	"context"
	"fmt"

	"github.com/exd-tools/surveil-admin/internal/models"
)

// RunOptimization triggers a solver run. The solver is opaque; only its
// request and result contracts are known here.
func (c *Client) RunOptimization(ctx context.Context, req models.OptimizationRequest) (*models.OptimizationResult, error) {
	if err := c.validateRequest(req, "session_id requis"); err != nil {
		return nil, err
	}
	var out models.OptimizationResult
	if err := c.post(ctx, "/api/optimize/run", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// OptimizationStatus reports whether a session already has assignments.
func (c *Client) OptimizationStatus(ctx context.Context, sessionID int) (*models.OptimizationStatus, error) {
	var out models.OptimizationStatus
	if err := c.get(ctx, fmt.Sprintf("/api/optimize/status/%d", sessionID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TeacherWorkload returns one teacher's assignments and hour total within a
// session.
func (c *Client) TeacherWorkload(ctx context.Context, sessionID int) (map[string]models.TeacherWorkload, error) {
	var out map[string]models.TeacherWorkload
	if err := c.get(ctx, fmt.Sprintf("/api/optimize/workload/%d", sessionID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
