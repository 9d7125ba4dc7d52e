package client

import (
	"context"
	"fmt"

	"github.com/exd-tools/surveil-admin/internal/models"
)

// ListSessions returns all exam sessions.
func (c *Client) ListSessions(ctx context.Context) ([]models.Session, error) {
	var out []models.Session
	if err := c.get(ctx, "/api/sessions", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetSession fetches one session by id.
func (c *Client) GetSession(ctx context.Context, id int) (*models.Session, error) {
	var out models.Session
	if err := c.get(ctx, fmt.Sprintf("/api/sessions/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateSession inserts one exam session.
func (c *Client) CreateSession(ctx context.Context, s models.Session) error {
	if err := c.validateRequest(s, "libelle_session requis"); err != nil {
		return err
	}
	return c.post(ctx, "/api/sessions", s, nil)
}

// UpdateSession overwrites one exam session.
func (c *Client) UpdateSession(ctx context.Context, s models.Session) error {
	if err := c.validateRequest(s, "libelle_session requis"); err != nil {
		return err
	}
	return c.put(ctx, fmt.Sprintf("/api/sessions/%d", s.ID), s, nil)
}

// DeleteSession removes one session.
func (c *Client) DeleteSession(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/api/sessions/%d", id), nil)
}

// DeleteAllSessions removes every session.
func (c *Client) DeleteAllSessions(ctx context.Context) error {
	return c.delete(ctx, "/api/sessions/all", nil)
}

// CheckSessionData asks the backend whether the session has the slots,
// teachers and voeux the optimizer needs.
func (c *Client) CheckSessionData(ctx context.Context, id int) (*models.SessionDataCheck, error) {
	var out models.SessionDataCheck
	if err := c.get(ctx, fmt.Sprintf("/api/sessions/%d/check-data", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
