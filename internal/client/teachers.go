package client

import (
	"context"
	"fmt"

	"github.com/exd-tools/surveil-admin/internal/models"
)

// ListTeachers returns the full teacher directory.
func (c *Client) ListTeachers(ctx context.Context) ([]models.Teacher, error) {
	var out []models.Teacher
	if err := c.get(ctx, "/api/enseignants", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListSupervisingTeachers returns only teachers participating in
// surveillance.
func (c *Client) ListSupervisingTeachers(ctx context.Context) ([]models.Teacher, error) {
	var out []models.Teacher
	if err := c.get(ctx, "/api/enseignants/surveillance", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetTeacher fetches one teacher by smartex code.
func (c *Client) GetTeacher(ctx context.Context, code int) (*models.Teacher, error) {
	var out models.Teacher
	if err := c.get(ctx, fmt.Sprintf("/api/enseignants/%d", code), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateTeacher inserts one teacher record.
func (c *Client) CreateTeacher(ctx context.Context, t models.Teacher) error {
	if err := c.validateRequest(t, "code_smartex_ens et nom_ens sont requis"); err != nil {
		return err
	}
	return c.post(ctx, "/api/enseignants", t, nil)
}

// UpdateTeacher overwrites one teacher record.
func (c *Client) UpdateTeacher(ctx context.Context, t models.Teacher) error {
	if err := c.validateRequest(t, "code_smartex_ens et nom_ens sont requis"); err != nil {
		return err
	}
	return c.put(ctx, fmt.Sprintf("/api/enseignants/%d", t.Code), t, nil)
}

// DeleteTeacher removes one teacher by smartex code.
func (c *Client) DeleteTeacher(ctx context.Context, code int) error {
	return c.delete(ctx, fmt.Sprintf("/api/enseignants/%d", code), nil)
}

// DeleteAllTeachers empties the teacher directory.
func (c *Client) DeleteAllTeachers(ctx context.Context) error {
	return c.delete(ctx, "/api/enseignants/all", nil)
}

// TeacherDirectory fetches all teachers and indexes them by code.
func (c *Client) TeacherDirectory(ctx context.Context) (models.TeacherDirectory, error) {
	teachers, err := c.ListTeachers(ctx)
	if err != nil {
		return nil, err
	}
	return models.NewTeacherDirectory(teachers), nil
}
