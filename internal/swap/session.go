package swap

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/exd-tools/surveil-admin/internal/models"
	appErrors "github.com/exd-tools/surveil-admin/pkg/errors"
)

// State enumerates the interaction states of a swap session.
type State int

const (
	StateIdle State = iota
	StateDragArmed
	StateClickArmed
	StatePendingConfirm
	StateCommitting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragArmed:
		return "drag_armed"
	case StateClickArmed:
		return "click_armed"
	case StatePendingConfirm:
		return "pending_confirm"
	case StateCommitting:
		return "committing"
	default:
		return "unknown"
	}
}

// Exchanger is the backend surface the session commits through.
type Exchanger interface {
	SwapAssignments(ctx context.Context, idA, idB int64) error
	ListAssignments(ctx context.Context, filter models.AssignmentFilter) ([]models.Assignment, error)
}

// Notifier receives transient user-facing messages. *ToastPresenter
// satisfies it.
type Notifier interface {
	Show(msg string)
}

// Canceller is a drag-scoped resource released on every drag exit path.
// *EdgeScroller satisfies it.
type Canceller interface {
	Stop()
}

var (
	// ErrBadTransition is returned when an event is not legal in the
	// current state.
	ErrBadTransition = errors.New("transition not allowed in current state")
	// ErrSwapRejected is returned when validation refuses the pair.
	ErrSwapRejected = errors.New("swap rejected")
)

// Session coordinates the two exchange interaction modes, drag-and-drop and
// click-to-select, funnelling both into validate, confirm, commit. It keeps
// the last fetched assignment list as the single source of truth and never
// mutates it locally; a successful commit is followed by a wholesale refetch.
//
// Session is meant to be driven from a single goroutine, mirroring a UI
// event loop. Its collaborators handle their own synchronisation.
type Session struct {
	validator *Validator
	exchanger Exchanger
	notifier  Notifier
	scroller  Canceller
	logger    *zap.Logger

	sessionID int
	state     State
	source    *models.Assignment
	target    *models.Assignment
	list      []models.Assignment
}

// NewSession builds a swap session for one exam session's assignment list.
// notifier and scroller may be nil; logger defaults to a no-op.
func NewSession(sessionID int, validator *Validator, exchanger Exchanger, notifier Notifier, scroller Canceller, logger *zap.Logger) *Session {
	if validator == nil {
		validator = NewValidator(nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		validator: validator,
		exchanger: exchanger,
		notifier:  notifier,
		scroller:  scroller,
		logger:    logger,
		sessionID: sessionID,
		state:     StateIdle,
	}
}

// State returns the current interaction state.
func (s *Session) State() State { return s.state }

// Source returns the snapshot of the first selected assignment, if any.
func (s *Session) Source() *models.Assignment { return s.source }

// Target returns the snapshot of the second assignment once the session is
// pending confirmation.
func (s *Session) Target() *models.Assignment { return s.target }

// Assignments returns the last fetched list.
func (s *Session) Assignments() []models.Assignment { return s.list }

// Refresh replaces the assignment list from the backend.
func (s *Session) Refresh(ctx context.Context) error {
	list, err := s.exchanger.ListAssignments(ctx, models.AssignmentFilter{SessionID: s.sessionID})
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrUnavailable.Code, appErrors.ErrUnavailable.Status, "échec du rechargement des affectations")
	}
	s.list = list
	return nil
}

// Find locates an assignment by id in the current list.
func (s *Session) Find(id int64) (*models.Assignment, bool) {
	for i := range s.list {
		if s.list[i].ID == id {
			return &s.list[i], true
		}
	}
	return nil, false
}

// BeginDrag arms the drag mode with the given assignment as source.
func (s *Session) BeginDrag(source *models.Assignment) error {
	if s.state != StateIdle || source == nil {
		return ErrBadTransition
	}
	s.state = StateDragArmed
	s.source = snapshot(source)
	s.logger.Debug("drag armed", zap.Int64("affectation_id", source.ID))
	return nil
}

// DragHint evaluates a candidate drop target without changing state. The
// verdict drives cosmetic highlighting only; Drop re-validates.
func (s *Session) DragHint(candidate *models.Assignment) Result {
	if s.state != StateDragArmed {
		return rejected(ReasonMissingData, "données manquantes")
	}
	return s.validator.Validate(s.source, candidate)
}

// Drop resolves a drag on the given target. An invalid pair surfaces its
// reason and resets to idle; a valid pair snapshots both assignments and
// moves to pending confirmation. The drag's scroll loop stops either way.
func (s *Session) Drop(target *models.Assignment) (Result, error) {
	if s.state != StateDragArmed {
		return Result{}, ErrBadTransition
	}
	s.stopScroll()
	return s.arm(target)
}

// CancelDrag aborts the drag without a drop.
func (s *Session) CancelDrag() {
	if s.state != StateDragArmed {
		return
	}
	s.stopScroll()
	s.reset()
}

// Click handles click-to-select mode. The first click arms the selection, a
// second click on the same assignment toggles it off, and a click on a
// different one resolves the pair like a drop.
func (s *Session) Click(a *models.Assignment) (Result, error) {
	switch s.state {
	case StateIdle:
		if a == nil {
			return Result{}, ErrBadTransition
		}
		s.state = StateClickArmed
		s.source = snapshot(a)
		s.logger.Debug("click armed", zap.Int64("affectation_id", a.ID))
		return Valid(), nil
	case StateClickArmed:
		if a != nil && a.ID == s.source.ID {
			s.reset()
			return Valid(), nil
		}
		return s.arm(a)
	default:
		return Result{}, ErrBadTransition
	}
}

// arm runs validation on (source, target) from an armed state and either
// resets to idle with a toast or snapshots into pending confirmation.
func (s *Session) arm(target *models.Assignment) (Result, error) {
	res := s.validator.Validate(s.source, target)
	if !res.OK {
		s.notify(res.Detail)
		s.logger.Debug("swap rejected",
			zap.String("reason", string(res.Reason)),
			zap.String("detail", res.Detail))
		s.reset()
		return res, ErrSwapRejected
	}
	s.target = snapshot(target)
	s.state = StatePendingConfirm
	return res, nil
}

// Cancel discards a pending confirmation.
func (s *Session) Cancel() {
	if s.state != StatePendingConfirm {
		return
	}
	s.reset()
}

// Confirm commits the pending exchange. The committing state excludes
// re-entrant confirms; there is no cancellation once the call has started.
// Both outcomes end in idle, and only a successful commit refetches the list.
func (s *Session) Confirm(ctx context.Context) error {
	if s.state != StatePendingConfirm {
		return ErrBadTransition
	}
	src, tgt := s.source, s.target
	s.state = StateCommitting

	if err := s.exchanger.SwapAssignments(ctx, src.ID, tgt.ID); err != nil {
		msg := appErrors.FromError(err).Message
		if msg == "" {
			msg = "la permutation a échoué"
		}
		s.notify(msg)
		s.logger.Warn("swap commit failed",
			zap.Int64("affectation_id_1", src.ID),
			zap.Int64("affectation_id_2", tgt.ID),
			zap.Error(err))
		s.reset()
		return err
	}

	s.logger.Info("swap committed",
		zap.Int64("affectation_id_1", src.ID),
		zap.Int64("affectation_id_2", tgt.ID))

	err := s.Refresh(ctx)
	s.reset()
	if err != nil {
		s.notify(fmt.Sprintf("permutation effectuée, mais le rechargement a échoué: %v", err))
		return err
	}
	return nil
}

func (s *Session) reset() {
	s.state = StateIdle
	s.source = nil
	s.target = nil
}

func (s *Session) notify(msg string) {
	if s.notifier != nil && msg != "" {
		s.notifier.Show(msg)
	}
}

func (s *Session) stopScroll() {
	if s.scroller != nil {
		s.scroller.Stop()
	}
}

// snapshot copies an assignment so the confirmation stage never reads a live
// list element that a concurrent refresh could reorder or drop.
func snapshot(a *models.Assignment) *models.Assignment {
	if a == nil {
		return nil
	}
	cp := *a
	if a.ResponsibleCode != nil {
		rc := *a.ResponsibleCode
		cp.ResponsibleCode = &rc
	}
	return &cp
}
