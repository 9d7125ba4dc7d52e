package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/exd-tools/surveil-admin/internal/models"
)

// ListTimeSlots returns créneaux, optionally filtered.
func (c *Client) ListTimeSlots(ctx context.Context, filter models.TimeSlotFilter) ([]models.TimeSlot, error) {
	q := url.Values{}
	if filter.SessionID > 0 {
		q.Set("id_session", strconv.Itoa(filter.SessionID))
	}
	if filter.ExamDate != "" {
		q.Set("dateExam", filter.ExamDate)
	}
	var out []models.TimeSlot
	if err := c.get(ctx, "/api/creneaux", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateTimeSlot inserts one créneau.
func (c *Client) CreateTimeSlot(ctx context.Context, slot models.TimeSlot) error {
	if err := c.validateRequest(slot, "id_session, dateExam, h_debut et h_fin sont requis"); err != nil {
		return err
	}
	return c.post(ctx, "/api/creneaux", slot, nil)
}

// CreateTimeSlots inserts a batch of créneaux in one call.
func (c *Client) CreateTimeSlots(ctx context.Context, slots []models.TimeSlot) error {
	for _, slot := range slots {
		if err := c.validateRequest(slot, "id_session, dateExam, h_debut et h_fin sont requis"); err != nil {
			return err
		}
	}
	return c.post(ctx, "/api/creneaux/batch", slots, nil)
}

// UpdateTimeSlot overwrites one créneau.
func (c *Client) UpdateTimeSlot(ctx context.Context, slot models.TimeSlot) error {
	if err := c.validateRequest(slot, "id_session, dateExam, h_debut et h_fin sont requis"); err != nil {
		return err
	}
	return c.put(ctx, fmt.Sprintf("/api/creneaux/%d", slot.ID), slot, nil)
}

// DeleteTimeSlot removes one créneau.
func (c *Client) DeleteTimeSlot(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/creneaux/%d", id), nil)
}

// DeleteSessionTimeSlots removes every créneau of one session.
func (c *Client) DeleteSessionTimeSlots(ctx context.Context, sessionID int) error {
	return c.delete(ctx, fmt.Sprintf("/api/creneaux/session/%d", sessionID), nil)
}

// DeleteAllTimeSlots removes every créneau.
func (c *Client) DeleteAllTimeSlots(ctx context.Context) error {
	return c.delete(ctx, "/api/creneaux/all", nil)
}

// TimeSlotStatistics returns the per-session créneau statistics.
func (c *Client) TimeSlotStatistics(ctx context.Context, sessionID int) (*models.TimeSlotStats, error) {
	var out models.TimeSlotStats
	if err := c.get(ctx, fmt.Sprintf("/api/creneaux/session/%d/statistiques", sessionID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListRoomSlotCounts returns how many rooms run in parallel per slot of a
// session.
func (c *Client) ListRoomSlotCounts(ctx context.Context, sessionID int) ([]models.RoomSlotCount, error) {
	var out []models.RoomSlotCount
	if err := c.get(ctx, fmt.Sprintf("/api/salles-par-creneau/session/%d", sessionID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
