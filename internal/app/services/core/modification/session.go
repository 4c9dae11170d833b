package modification

import (
	"booking-service/internal/app/contracts"
	"booking-service/internal/app/models"
	"booking-service/internal/pkg/exceptions"
	"booking-service/internal/pkg/utils"
	"context"
	"sync"

	"go.uber.org/zap"
)

// Session wraps one State value with the side effects the reducer itself must
// not perform: the network calls to search, extension-check, update and
// cancel. Each call is awaited before the machine advances; the epoch
// captured at dispatch time makes a late response to an abandoned session a
// no-op instead of a corruption.
type Session struct {
	ID string

	mu    sync.Mutex
	state State

	BookingService   contracts.BookingUsecase
	ExtensionService contracts.ExtensionUsecase
	Log              *zap.Logger
}

func NewSession(
	bookingService contracts.BookingUsecase,
	extensionService contracts.ExtensionUsecase,
	logger *zap.Logger,
) *Session {
	return &Session{
		ID:               utils.GenerateSessionID(),
		state:            NewState(),
		BookingService:   bookingService,
		ExtensionService: extensionService,
		Log:              logger,
	}
}

// State returns a snapshot of the current machine value.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch applies one pure action and returns the resulting state.
func (s *Session) Dispatch(action Action) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Reduce(s.state, action)
	return s.state
}

// dispatchIfCurrent applies the action only when the machine is still in the
// epoch captured when the async work started.
func (s *Session) dispatchIfCurrent(epoch int, action Action) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Epoch != epoch {
		s.Log.Debug("discarding stale state machine completion",
			zap.Int("captured_epoch", epoch),
			zap.Int("current_epoch", s.state.Epoch),
		)
		return s.state
	}
	s.state = Reduce(s.state, action)
	return s.state
}

// Search runs the full search round trip: loading, the network call, then
// results or not-found or an error back on the search form.
func (s *Session) Search(ctx context.Context, form models.SearchForm, token, remoteIP string) State {
	next := s.Dispatch(SubmitSearch{Form: form})
	if next.Name != StateLoading {
		return next
	}
	epoch := next.Epoch

	records, err := s.BookingService.SearchBookings(ctx, form, token, remoteIP)
	if err != nil {
		return s.dispatchIfCurrent(epoch, SearchFailed{Kind: exceptions.KindOf(err)})
	}
	return s.dispatchIfCurrent(epoch, SearchLoaded{Records: records})
}

// CheckExtension asks the negotiator about the session's selected procedure
// and renders the verdict inline on the edit-procedure step.
func (s *Session) CheckExtension(ctx context.Context) State {
	current := s.State()
	if current.Name != StateEditProcedure || current.Session == nil || current.DurationDiff() <= 0 {
		return current
	}
	epoch := current.Epoch

	result, err := s.ExtensionService.CheckExtension(ctx, current.Session.OriginalBooking, current.Session.SelectedProcedure)
	if err != nil {
		// A transport failure is not a verdict; stay on the step with a
		// generic retry.
		s.Log.Warn("extension check failed", zap.Error(err))
		return s.State()
	}
	return s.dispatchIfCurrent(epoch, ExtensionChecked{Result: *result})
}

// ConfirmSameTime applies a same-or-shorter procedure swap on the original
// slot, going straight to a terminal state.
func (s *Session) ConfirmSameTime(ctx context.Context) State {
	next := s.Dispatch(ConfirmSameTime{})
	if !next.InFlight || next.Session == nil {
		return next
	}
	epoch := next.Epoch
	session := *next.Session

	_, err := s.BookingService.UpdateBookingProcedure(ctx, session.OriginalBooking, session.SelectedProcedure.ID)
	if err != nil {
		return s.dispatchIfCurrent(epoch, MutationFailed{Flow: FlowProcedure, Kind: exceptions.KindOf(err)})
	}
	return s.dispatchIfCurrent(epoch, MutationSucceeded{Flow: FlowProcedure})
}

// ConfirmTimeChange applies the pending slot, choosing the pure time update
// or the combined procedure+time update by comparing the session's procedure
// against the original booking's.
func (s *Session) ConfirmTimeChange(ctx context.Context) State {
	next := s.Dispatch(ConfirmTimeChange{})
	if !next.InFlight || next.Session == nil || next.Session.NewSlot == nil {
		return next
	}
	epoch := next.Epoch
	session := *next.Session

	var err error
	flow := FlowTime
	if session.ProcedureChanged() {
		_, err = s.BookingService.UpdateBookingCombined(ctx, session.OriginalBooking, contracts.CombinedPatch{
			ProcedureID: session.SelectedProcedure.ID,
			Slot:        session.NewSlot,
		})
	} else {
		_, err = s.BookingService.UpdateBookingTime(ctx, session.OriginalBooking, *session.NewSlot)
	}
	if err != nil {
		return s.dispatchIfCurrent(epoch, MutationFailed{Flow: flow, Kind: exceptions.KindOf(err)})
	}
	return s.dispatchIfCurrent(epoch, MutationSucceeded{Flow: flow})
}

// ConfirmCancel deletes the selected booking.
func (s *Session) ConfirmCancel(ctx context.Context) State {
	next := s.Dispatch(ConfirmCancellation{})
	if !next.InFlight || next.Selected == nil {
		return next
	}
	epoch := next.Epoch
	booking := *next.Selected

	if err := s.BookingService.CancelBooking(ctx, booking); err != nil {
		return s.dispatchIfCurrent(epoch, MutationFailed{Flow: FlowCancel, Kind: exceptions.KindOf(err)})
	}
	return s.dispatchIfCurrent(epoch, MutationSucceeded{Flow: FlowCancel})
}
