package swap

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exd-tools/surveil-admin/internal/models"
	appErrors "github.com/exd-tools/surveil-admin/pkg/errors"
)

type stubExchanger struct {
	swapErr   error
	listErr   error
	list      []models.Assignment
	swapCalls [][2]int64
	listCalls int
}

func (s *stubExchanger) SwapAssignments(_ context.Context, idA, idB int64) error {
	s.swapCalls = append(s.swapCalls, [2]int64{idA, idB})
	if s.swapErr != nil {
		return s.swapErr
	}
	// Mirror the backend: exchange the teacher codes of the two rows.
	var a, b *models.Assignment
	for i := range s.list {
		switch s.list[i].ID {
		case idA:
			a = &s.list[i]
		case idB:
			b = &s.list[i]
		}
	}
	if a != nil && b != nil {
		a.TeacherCode, b.TeacherCode = b.TeacherCode, a.TeacherCode
	}
	return nil
}

func (s *stubExchanger) ListAssignments(_ context.Context, _ models.AssignmentFilter) ([]models.Assignment, error) {
	s.listCalls++
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]models.Assignment, len(s.list))
	copy(out, s.list)
	return out, nil
}

type stubNotifier struct {
	messages []string
}

func (n *stubNotifier) Show(msg string) {
	n.messages = append(n.messages, msg)
}

type stubScroller struct {
	stops int
}

func (s *stubScroller) Stop() { s.stops++ }

func fixtureList() []models.Assignment {
	return []models.Assignment{
		*assignment(1, 10, 5, "B203", "13/05/2025", "08:30", "10:00"),
		*assignment(2, 20, 5, "A102", "13/05/2025", "08:30", "10:00"),
		*assignment(3, 20, 5, "C301", "14/05/2025", "10:15", "11:45"),
		*assignment(4, 10, 5, "A102", "14/05/2025", "10:15", "11:45"),
	}
}

func newTestSession(ex *stubExchanger) (*Session, *stubNotifier, *stubScroller) {
	notifier := &stubNotifier{}
	scroller := &stubScroller{}
	sess := NewSession(5, NewValidator(nil), ex, notifier, scroller, nil)
	return sess, notifier, scroller
}

func TestSession_DragDropCommit(t *testing.T) {
	ex := &stubExchanger{list: fixtureList()}
	sess, _, scroller := newTestSession(ex)
	require.NoError(t, sess.Refresh(context.Background()))

	a, ok := sess.Find(1)
	require.True(t, ok)
	b, ok := sess.Find(2)
	require.True(t, ok)

	require.NoError(t, sess.BeginDrag(a))
	assert.Equal(t, StateDragArmed, sess.State())

	hint := sess.DragHint(b)
	assert.True(t, hint.OK)

	res, err := sess.Drop(b)
	require.NoError(t, err)
	assert.True(t, res.OK)
	assert.Equal(t, StatePendingConfirm, sess.State())
	assert.Equal(t, 1, scroller.stops)

	require.NoError(t, sess.Confirm(context.Background()))
	assert.Equal(t, StateIdle, sess.State())
	assert.Nil(t, sess.Source())
	assert.Nil(t, sess.Target())

	require.Len(t, ex.swapCalls, 1)
	assert.Equal(t, [2]int64{1, 2}, ex.swapCalls[0])

	// List was refetched and reflects the exchange.
	swapped, ok := sess.Find(1)
	require.True(t, ok)
	assert.Equal(t, 20, swapped.TeacherCode)
	other, ok := sess.Find(2)
	require.True(t, ok)
	assert.Equal(t, 10, other.TeacherCode)
}

func TestSession_SnapshotSurvivesListRefresh(t *testing.T) {
	ex := &stubExchanger{list: fixtureList()}
	sess, _, _ := newTestSession(ex)
	require.NoError(t, sess.Refresh(context.Background()))

	a, _ := sess.Find(1)
	b, _ := sess.Find(2)
	require.NoError(t, sess.BeginDrag(a))
	_, err := sess.Drop(b)
	require.NoError(t, err)

	// A background refresh reorders the backing list while the
	// confirmation is open; the snapshots must not change.
	ex.list = []models.Assignment{
		*assignment(9, 99, 5, "Z999", "20/05/2025", "14:00", "15:30"),
	}
	require.NoError(t, sess.Refresh(context.Background()))

	require.NotNil(t, sess.Source())
	require.NotNil(t, sess.Target())
	assert.Equal(t, int64(1), sess.Source().ID)
	assert.Equal(t, int64(2), sess.Target().ID)
	assert.Equal(t, 10, sess.Source().TeacherCode)
}

func TestSession_DropInvalidResetsAndNotifies(t *testing.T) {
	ex := &stubExchanger{list: fixtureList()}
	sess, notifier, scroller := newTestSession(ex)
	require.NoError(t, sess.Refresh(context.Background()))

	a, _ := sess.Find(2)
	b, _ := sess.Find(3) // same teacher as 2
	require.NoError(t, sess.BeginDrag(a))

	res, err := sess.Drop(b)
	require.ErrorIs(t, err, ErrSwapRejected)
	assert.Equal(t, ReasonSameTeacher, res.Reason)
	assert.Equal(t, StateIdle, sess.State())
	assert.Nil(t, sess.Source())
	require.Len(t, notifier.messages, 1)
	assert.Contains(t, notifier.messages[0], "même enseignant")
	assert.Equal(t, 1, scroller.stops)
	assert.Empty(t, ex.swapCalls)
}

func TestSession_CancelDragStopsScroll(t *testing.T) {
	ex := &stubExchanger{list: fixtureList()}
	sess, _, scroller := newTestSession(ex)
	require.NoError(t, sess.Refresh(context.Background()))

	a, _ := sess.Find(1)
	require.NoError(t, sess.BeginDrag(a))
	sess.CancelDrag()

	assert.Equal(t, StateIdle, sess.State())
	assert.Equal(t, 1, scroller.stops)
}

func TestSession_ClickToggle(t *testing.T) {
	ex := &stubExchanger{list: fixtureList()}
	sess, _, _ := newTestSession(ex)
	require.NoError(t, sess.Refresh(context.Background()))

	a, _ := sess.Find(1)

	_, err := sess.Click(a)
	require.NoError(t, err)
	assert.Equal(t, StateClickArmed, sess.State())

	_, err = sess.Click(a)
	require.NoError(t, err)
	assert.Equal(t, StateIdle, sess.State())
	assert.Nil(t, sess.Source())
}

func TestSession_ClickPairToConfirm(t *testing.T) {
	ex := &stubExchanger{list: fixtureList()}
	sess, _, _ := newTestSession(ex)
	require.NoError(t, sess.Refresh(context.Background()))

	a, _ := sess.Find(1)
	b, _ := sess.Find(2)

	_, err := sess.Click(a)
	require.NoError(t, err)
	res, err := sess.Click(b)
	require.NoError(t, err)
	assert.True(t, res.OK)
	assert.Equal(t, StatePendingConfirm, sess.State())

	sess.Cancel()
	assert.Equal(t, StateIdle, sess.State())
	assert.Nil(t, sess.Source())
	assert.Nil(t, sess.Target())
	assert.Empty(t, ex.swapCalls)
}

func TestSession_ClickInvalidPair(t *testing.T) {
	ex := &stubExchanger{list: fixtureList()}
	sess, notifier, _ := newTestSession(ex)
	require.NoError(t, sess.Refresh(context.Background()))

	a, _ := sess.Find(2)
	b, _ := sess.Find(3)

	_, err := sess.Click(a)
	require.NoError(t, err)
	res, err := sess.Click(b)
	require.ErrorIs(t, err, ErrSwapRejected)
	assert.Equal(t, ReasonSameTeacher, res.Reason)
	assert.Equal(t, StateIdle, sess.State())
	require.Len(t, notifier.messages, 1)
}

func TestSession_CommitFailureSurfacesServerMessage(t *testing.T) {
	ex := &stubExchanger{
		list:    fixtureList(),
		swapErr: appErrors.ErrConflict.Clone("Conflit: l'enseignant a déjà une affectation sur ce créneau"),
	}
	sess, notifier, _ := newTestSession(ex)
	require.NoError(t, sess.Refresh(context.Background()))

	a, _ := sess.Find(1)
	b, _ := sess.Find(2)
	_, err := sess.Click(a)
	require.NoError(t, err)
	_, err = sess.Click(b)
	require.NoError(t, err)

	listCallsBefore := ex.listCalls
	err = sess.Confirm(context.Background())
	require.Error(t, err)
	assert.Equal(t, StateIdle, sess.State())
	assert.Nil(t, sess.Source())
	require.Len(t, notifier.messages, 1)
	assert.Contains(t, notifier.messages[0], "Conflit")
	// No refetch on failure: the list stays as last fetched.
	assert.Equal(t, listCallsBefore, ex.listCalls)
}

func TestSession_ConfirmOnlyFromPendingConfirm(t *testing.T) {
	ex := &stubExchanger{list: fixtureList()}
	sess, _, _ := newTestSession(ex)
	require.NoError(t, sess.Refresh(context.Background()))

	err := sess.Confirm(context.Background())
	assert.ErrorIs(t, err, ErrBadTransition)

	a, _ := sess.Find(1)
	require.NoError(t, sess.BeginDrag(a))
	err = sess.Confirm(context.Background())
	assert.ErrorIs(t, err, ErrBadTransition)
	assert.Empty(t, ex.swapCalls)
}

func TestSession_BeginDragRequiresIdle(t *testing.T) {
	ex := &stubExchanger{list: fixtureList()}
	sess, _, _ := newTestSession(ex)
	require.NoError(t, sess.Refresh(context.Background()))

	a, _ := sess.Find(1)
	b, _ := sess.Find(2)
	_, err := sess.Click(a)
	require.NoError(t, err)

	assert.ErrorIs(t, sess.BeginDrag(b), ErrBadTransition)
}
