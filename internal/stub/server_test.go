package stub

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exd-tools/surveil-admin/internal/client"
	"github.com/exd-tools/surveil-admin/internal/models"
	"github.com/exd-tools/surveil-admin/internal/swap"
	"github.com/exd-tools/surveil-admin/pkg/config"
	appErrors "github.com/exd-tools/surveil-admin/pkg/errors"
)

func newSeededClient(t *testing.T) *client.Client {
	t.Helper()
	store := NewStore()
	SeedDemo(store)
	srv := httptest.NewServer(NewServer(store, nil).Engine())
	t.Cleanup(srv.Close)
	return client.New(config.APIConfig{BaseURL: srv.URL, Timeout: 5 * time.Second}, nil)
}

func TestServer_ListAssignmentsJoinsDisplayFields(t *testing.T) {
	c := newSeededClient(t)

	list, err := c.ListAssignments(context.Background(), models.AssignmentFilter{SessionID: 5})
	require.NoError(t, err)
	require.NotEmpty(t, list)

	for _, a := range list {
		assert.NotEmpty(t, a.LastName)
		assert.NotEmpty(t, a.SessionLabel)
		assert.NotEmpty(t, a.ExamDate)
		assert.NotEmpty(t, a.RoomCode)
	}
}

func TestServer_SwapHappyPath(t *testing.T) {
	c := newSeededClient(t)
	ctx := context.Background()

	// Teachers 1004 and 1005 each carry a single duty in the seed, so the
	// exchange cannot trip the overlap check.
	a := soleAssignmentOf(t, c, 1004)
	b := soleAssignmentOf(t, c, 1005)

	require.NoError(t, c.SwapAssignments(ctx, a.ID, b.ID))

	after, err := c.ListAssignments(ctx, models.AssignmentFilter{SessionID: 5})
	require.NoError(t, err)
	byID := make(map[int64]models.Assignment)
	for _, x := range after {
		byID[x.ID] = x
	}

	// Teachers exchanged, slots untouched.
	assert.Equal(t, b.TeacherCode, byID[a.ID].TeacherCode)
	assert.Equal(t, a.TeacherCode, byID[b.ID].TeacherCode)
	assert.Equal(t, a.RoomCode, byID[a.ID].RoomCode)
	assert.Equal(t, a.ExamDate, byID[a.ID].ExamDate)
	assert.Equal(t, b.RoomCode, byID[b.ID].RoomCode)
}

func TestServer_SwapRejections(t *testing.T) {
	c := newSeededClient(t)
	ctx := context.Background()

	list, err := c.ListAssignments(ctx, models.AssignmentFilter{SessionID: 5})
	require.NoError(t, err)
	require.NotEmpty(t, list)

	t.Run("unknown assignment", func(t *testing.T) {
		err := c.SwapAssignments(ctx, list[0].ID, 99999)
		require.Error(t, err)
		assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
	})

	t.Run("same teacher", func(t *testing.T) {
		var a, b *models.Assignment
		for i := range list {
			for j := range list {
				if i != j && list[i].TeacherCode == list[j].TeacherCode {
					a, b = &list[i], &list[j]
				}
			}
		}
		require.NotNil(t, a)
		err := c.SwapAssignments(ctx, a.ID, b.ID)
		require.Error(t, err)
		assert.Contains(t, appErrors.FromError(err).Message, "même enseignant")
	})

	t.Run("missing ids", func(t *testing.T) {
		err := c.SwapAssignments(ctx, 0, list[0].ID)
		require.Error(t, err)
		assert.Contains(t, appErrors.FromError(err).Message, "requis")
	})
}

func TestServer_SwapConflictDetection(t *testing.T) {
	c := newSeededClient(t)
	ctx := context.Background()

	// In the seed, teacher 1001 proctors 13/05 08:30 and 14/05 08:30.
	// Handing 1001 the 14/05 08:30 duty of teacher 1005 would overlap the
	// duty 1001 keeps on that morning, so the server must refuse.
	list, err := c.ListAssignments(ctx, models.AssignmentFilter{SessionID: 5, TeacherCode: 1001})
	require.NoError(t, err)
	var source *models.Assignment
	for i := range list {
		if list[i].ExamDate == "13/05/2025" {
			source = &list[i]
		}
	}
	require.NotNil(t, source)

	target := soleAssignmentOf(t, c, 1005)
	require.Equal(t, "14/05/2025", target.ExamDate)
	require.Equal(t, "08:30", target.StartTime)

	err = c.SwapAssignments(ctx, source.ID, target.ID)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErr.Code)
	assert.Contains(t, appErr.Message, "Conflit d'horaire")
}

// soleAssignmentOf fetches the single seeded assignment of a teacher.
func soleAssignmentOf(t *testing.T, c *client.Client, teacherCode int) *models.Assignment {
	t.Helper()
	list, err := c.ListAssignments(context.Background(), models.AssignmentFilter{SessionID: 5, TeacherCode: teacherCode})
	require.NoError(t, err)
	require.Len(t, list, 1)
	return &list[0]
}

func TestServer_CheckDataAndStatus(t *testing.T) {
	c := newSeededClient(t)
	ctx := context.Background()

	check, err := c.CheckSessionData(ctx, 5)
	require.NoError(t, err)
	assert.True(t, check.HasSlots)
	assert.True(t, check.HasTeachers)
	assert.True(t, check.HasVoeux)

	status, err := c.OptimizationStatus(ctx, 5)
	require.NoError(t, err)
	assert.True(t, status.HasAssignments)
	assert.Equal(t, 8, status.AssignmentCount)
}

func TestServer_OptimizeRebuildsAssignments(t *testing.T) {
	c := newSeededClient(t)
	ctx := context.Background()

	require.NoError(t, c.DeleteAllAssignments(ctx))
	status, err := c.OptimizationStatus(ctx, 5)
	require.NoError(t, err)
	assert.False(t, status.HasAssignments)

	res, err := c.RunOptimization(ctx, models.DefaultOptimizationRequest(5))
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, 8, res.AssignmentCount)
}

func TestServer_Statistics(t *testing.T) {
	c := newSeededClient(t)

	stats, err := c.SessionStatistics(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, 5, stats.SessionID)
	assert.Equal(t, 8, stats.AssignmentCount)
	assert.NotEmpty(t, stats.ByGrade)
	assert.Len(t, stats.Slots, 8)
}

func TestEndToEnd_SwapSessionAgainstStub(t *testing.T) {
	c := newSeededClient(t)
	ctx := context.Background()

	dir, err := c.TeacherDirectory(ctx)
	require.NoError(t, err)

	toasts := swap.NewToastPresenter(time.Minute)
	sess := swap.NewSession(5, swap.NewValidator(dir), c, toasts, nil, nil)
	require.NoError(t, sess.Refresh(ctx))
	require.NotEmpty(t, sess.Assignments())

	list := sess.Assignments()
	var a, b *models.Assignment
	for i := range list {
		switch list[i].TeacherCode {
		case 1004:
			a = &list[i]
		case 1005:
			b = &list[i]
		}
	}
	require.NotNil(t, a)
	require.NotNil(t, b)

	_, err = sess.Click(a)
	require.NoError(t, err)
	_, err = sess.Click(b)
	require.NoError(t, err)
	require.Equal(t, swap.StatePendingConfirm, sess.State())

	require.NoError(t, sess.Confirm(ctx))
	assert.Equal(t, swap.StateIdle, sess.State())

	after, ok := sess.Find(a.ID)
	require.True(t, ok)
	assert.Equal(t, b.TeacherCode, after.TeacherCode)

	_, showing := toasts.Current()
	assert.False(t, showing)
}
