package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/exd-tools/surveil-admin/internal/models"
)

// ListAssignments returns assignments matching the filter. The list is the
// single source of truth for the swap workflow; it is refetched wholesale
// after every committed exchange.
func (c *Client) ListAssignments(ctx context.Context, filter models.AssignmentFilter) ([]models.Assignment, error) {
	q := url.Values{}
	if filter.SessionID > 0 {
		q.Set("id_session", strconv.Itoa(filter.SessionID))
	}
	if filter.TeacherCode > 0 {
		q.Set("code_smartex_ens", strconv.Itoa(filter.TeacherCode))
	}
	if filter.SlotID > 0 {
		q.Set("creneau_id", strconv.FormatInt(filter.SlotID, 10))
	}
	var out []models.Assignment
	if err := c.get(ctx, "/api/affectations", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SwapAssignments exchanges the teachers of two assignments. The call is
// atomic server-side: either both rows change or neither does. A rejection
// carries the backend's reason verbatim.
func (c *Client) SwapAssignments(ctx context.Context, idA, idB int64) error {
	body := models.SwapRequest{AssignmentID1: idA, AssignmentID2: idB}
	if err := c.validateRequest(body, "Les deux IDs d'affectation sont requis."); err != nil {
		return err
	}
	return c.post(ctx, "/api/affectations/permuter", body, nil)
}

// DeleteAllAssignments removes every assignment, across all sessions.
func (c *Client) DeleteAllAssignments(ctx context.Context) error {
	return c.delete(ctx, "/api/affectations/delete-all", nil)
}
