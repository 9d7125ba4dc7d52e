package client

import (
	"context"
	"fmt"

	"github.com/exd-tools/surveil-admin/internal/models"
)

// SessionStatistics returns assignment statistics for one session.
func (c *Client) SessionStatistics(ctx context.Context, sessionID int) (*models.SessionStatistics, error) {
	var out models.SessionStatistics
	if err := c.get(ctx, fmt.Sprintf("/api/statistics/session/%d", sessionID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AllSessionStatistics returns statistics across every session.
func (c *Client) AllSessionStatistics(ctx context.Context) ([]models.SessionStatistics, error) {
	var out []models.SessionStatistics
	if err := c.get(ctx, "/api/statistics/sessions", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
