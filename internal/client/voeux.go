package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/exd-tools/surveil-admin/internal/models"
)

// ListVoeux returns teacher preferences, optionally filtered.
func (c *Client) ListVoeux(ctx context.Context, filter models.VoeuFilter) ([]models.Voeu, error) {
	q := url.Values{}
	if filter.TeacherCode > 0 {
		q.Set("code_smartex_ens", strconv.Itoa(filter.TeacherCode))
	}
	if filter.SessionID > 0 {
		q.Set("id_session", strconv.Itoa(filter.SessionID))
	}
	var out []models.Voeu
	if err := c.get(ctx, "/api/voeux", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateVoeu inserts one preference.
func (c *Client) CreateVoeu(ctx context.Context, v models.Voeu) error {
	if err := c.validateRequest(v, "code_smartex_ens et id_session sont requis"); err != nil {
		return err
	}
	return c.post(ctx, "/api/voeux", v, nil)
}

// DeleteVoeu removes one preference.
func (c *Client) DeleteVoeu(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/voeux/%d", id), nil)
}

// DeleteSessionVoeux removes every preference of one session.
func (c *Client) DeleteSessionVoeux(ctx context.Context, sessionID int) error {
	return c.delete(ctx, fmt.Sprintf("/api/voeux/session/%d", sessionID), nil)
}

// DeleteAllVoeux removes every preference.
func (c *Client) DeleteAllVoeux(ctx context.Context) error {
	return c.delete(ctx, "/api/voeux/all", nil)
}

// ListTeacherVoeux returns one teacher's preferences within a session.
func (c *Client) ListTeacherVoeux(ctx context.Context, teacherCode, sessionID int) ([]models.Voeu, error) {
	path := fmt.Sprintf("/api/voeux/enseignant/%d/session/%d", teacherCode, sessionID)
	var out []models.Voeu
	if err := c.get(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
