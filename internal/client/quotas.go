package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/exd-tools/surveil-admin/internal/models"
)

// ListGrades returns all teacher grades with their surveillance quotas.
func (c *Client) ListGrades(ctx context.Context) ([]models.Grade, error) {
	var out []models.Grade
	if err := c.get(ctx, "/api/grades", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListTeacherQuotas returns per-teacher quota accounting, optionally scoped
// to one session.
func (c *Client) ListTeacherQuotas(ctx context.Context, sessionID int) ([]models.TeacherQuota, error) {
	q := url.Values{}
	if sessionID > 0 {
		q.Set("id_session", strconv.Itoa(sessionID))
	}
	var out []models.TeacherQuota
	if err := c.get(ctx, "/api/quota-enseignants", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateGradeQuota changes the surveillance quota of one grade.
func (c *Client) UpdateGradeQuota(ctx context.Context, code string, quota int) error {
	body := map[string]int{"quota": quota}
	return c.put(ctx, "/api/grades/"+code, body, nil)
}

// UpdateTeacherQuota sets the adjusted quota of one teacher.
func (c *Client) UpdateTeacherQuota(ctx context.Context, teacherCode, adjusted int) error {
	body := map[string]int{"quota_ajuste": adjusted}
	return c.put(ctx, fmt.Sprintf("/api/quota-enseignants/enseignant/%d", teacherCode), body, nil)
}

// ResetSessionQuotas zeroes the realised quota counters of one session.
func (c *Client) ResetSessionQuotas(ctx context.Context, sessionID int) error {
	return c.put(ctx, fmt.Sprintf("/api/quota-enseignants/reset/session/%d", sessionID), nil, nil)
}

// ResetAllQuotas zeroes the realised quota counters across every session.
func (c *Client) ResetAllQuotas(ctx context.Context) error {
	return c.put(ctx, "/api/quota-enseignants/reset/all", nil, nil)
}

// DeleteSessionQuotas drops the quota rows of one session.
func (c *Client) DeleteSessionQuotas(ctx context.Context, sessionID int) error {
	return c.delete(ctx, fmt.Sprintf("/api/quota-enseignants/session/%d", sessionID), nil)
}
