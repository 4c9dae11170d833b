// Package modification drives the find/modify/cancel flow as a reducer over
// a closed set of actions. It is consumed by an embedding client UI that owns
// the panels and dispatch loop; the HTTP routers expose the individual
// operations directly and do not construct a Session.
package modification

import (
	"booking-service/internal/app/models"
	"booking-service/internal/pkg/exceptions"
)

// StateName identifies one step of the modification flow.
type StateName string

const (
	StateSearch            StateName = "search"
	StateLoading           StateName = "loading"
	StateResults           StateName = "results"
	StateNotFound          StateName = "not-found"
	StateEditSelection     StateName = "edit-selection"
	StateEditProcedure     StateName = "edit-procedure"
	StateDirectTimeChange  StateName = "direct-time-change"
	StateConfirmTimeChange StateName = "confirm-time-change"
	StateConfirmCancel     StateName = "confirm-cancel"

	StateTimeChangeSuccess      StateName = "time-change-success"
	StateTimeChangeError        StateName = "time-change-error"
	StateProcedureChangeSuccess StateName = "procedure-change-success"
	StateProcedureChangeError   StateName = "procedure-change-error"
	StateCancelSuccess          StateName = "cancel-success"
	StateCancelError            StateName = "cancel-error"
)

// State is the whole machine as one value. Reduce never mutates its input.
//
// Epoch increments whenever in-flight async work must be discarded (a new
// search, a back navigation, a reset). Completions carrying a stale epoch are
// dropped by the session before they ever reach the reducer.
type State struct {
	Name      StateName
	Form      models.SearchForm
	Results   []models.BookingRecord
	Selected  *models.BookingRecord
	Session   *models.TimeChangeSession
	Extension *models.ExtensionCheckResult
	ErrorKind exceptions.Kind
	InFlight  bool
	Epoch     int
}

// NewState returns the machine at its initial blank search step.
func NewState() State {
	return State{Name: StateSearch}
}

// IsTerminal reports whether the state is a success or error endpoint.
func (s State) IsTerminal() bool {
	switch s.Name {
	case StateTimeChangeSuccess, StateTimeChangeError,
		StateProcedureChangeSuccess, StateProcedureChangeError,
		StateCancelSuccess, StateCancelError:
		return true
	}
	return false
}

// DurationDiff is the minute difference between the session's selected
// procedure and the original booking. Zero when no session exists.
func (s State) DurationDiff() int {
	if s.Session == nil {
		return 0
	}
	return s.Session.SelectedProcedure.DurationMinutes - s.Session.OriginalBooking.DurationMinutes()
}

// Reduce is the machine's only transition function. Unexpected actions for
// the current state leave it unchanged; there is no error path for "button
// that should not have been clickable".
func Reduce(state State, action Action) State {
	switch a := action.(type) {
	case SubmitSearch:
		if state.Name == StateLoading || state.InFlight {
			return state
		}
		next := NewState()
		next.Name = StateLoading
		next.Form = a.Form
		next.Epoch = state.Epoch + 1
		return next

	case SearchLoaded:
		if state.Name != StateLoading {
			return state
		}
		next := state
		next.InFlight = false
		next.ErrorKind = ""
		next.Results = a.Records
		if len(a.Records) == 0 {
			next.Name = StateNotFound
			return next
		}
		next.Name = StateResults
		return next

	case SearchFailed:
		if state.Name != StateLoading {
			return state
		}
		next := state
		next.Name = StateSearch
		next.InFlight = false
		next.ErrorKind = a.Kind
		return next

	case SelectBooking:
		if state.Name != StateResults {
			return state
		}
		for i := range state.Results {
			if state.Results[i].EventID == a.EventID {
				next := state
				selected := state.Results[i]
				next.Selected = &selected
				next.Name = StateEditSelection
				next.ErrorKind = ""
				return next
			}
		}
		return state

	case ChooseChangeProcedure:
		if state.Name != StateEditSelection || state.Selected == nil || !state.Selected.CanModify {
			return state
		}
		next := state
		next.Name = StateEditProcedure
		next.Session = newSession(*state.Selected)
		next.Extension = nil
		return next

	case ChooseChangeTime:
		if state.Name != StateEditSelection || state.Selected == nil || !state.Selected.CanModify {
			return state
		}
		next := state
		next.Name = StateDirectTimeChange
		next.Session = newSession(*state.Selected)
		next.Extension = nil
		return next

	case ChooseCancel:
		if state.Name != StateEditSelection || state.Selected == nil || !state.Selected.CanCancel {
			return state
		}
		next := state
		next.Name = StateConfirmCancel
		return next

	case SelectProcedure:
		if state.Name != StateEditProcedure || state.Session == nil {
			return state
		}
		next := state
		session := *state.Session
		session.SelectedProcedure = a.Procedure
		session.NewSlot = nil
		next.Session = &session
		next.Extension = nil
		return next

	case ExtensionChecked:
		if state.Name != StateEditProcedure {
			return state
		}
		next := state
		result := a.Result
		next.Extension = &result
		next.InFlight = false
		return next

	case RequestNewTime:
		if state.Name != StateEditProcedure || state.Session == nil {
			return state
		}
		next := state
		next.Name = StateDirectTimeChange
		next.Extension = nil
		return next

	case PickSlot:
		if (state.Name != StateDirectTimeChange && state.Name != StateEditProcedure) || state.Session == nil {
			return state
		}
		next := state
		session := *state.Session
		slot := a.Slot
		session.NewSlot = &slot
		next.Session = &session
		next.Name = StateConfirmTimeChange
		return next

	case ConfirmSameTime:
		// Only meaningful for a same-or-shorter procedure swap; a longer one
		// must go through the extension check instead.
		if state.Name != StateEditProcedure || state.Session == nil || state.DurationDiff() > 0 || state.InFlight {
			return state
		}
		next := state
		next.InFlight = true
		return next

	case ConfirmTimeChange:
		if state.Name != StateConfirmTimeChange || state.Session == nil || state.Session.NewSlot == nil || state.InFlight {
			return state
		}
		next := state
		next.InFlight = true
		return next

	case ConfirmCancellation:
		if state.Name != StateConfirmCancel || state.InFlight {
			return state
		}
		next := state
		next.InFlight = true
		return next

	case MutationSucceeded:
		if !state.InFlight {
			return state
		}
		next := state
		next.InFlight = false
		next.Session = nil
		next.Extension = nil
		next.Selected = nil
		next.ErrorKind = ""
		next.Epoch = state.Epoch + 1
		switch a.Flow {
		case FlowTime:
			next.Name = StateTimeChangeSuccess
		case FlowProcedure:
			next.Name = StateProcedureChangeSuccess
		case FlowCancel:
			next.Name = StateCancelSuccess
		}
		return next

	case MutationFailed:
		if !state.InFlight {
			return state
		}
		// Results and the selected booking survive so the client can retry
		// without re-searching.
		next := state
		next.InFlight = false
		next.Session = nil
		next.Extension = nil
		next.ErrorKind = a.Kind
		next.Epoch = state.Epoch + 1
		switch a.Flow {
		case FlowTime:
			next.Name = StateTimeChangeError
		case FlowProcedure:
			next.Name = StateProcedureChangeError
		case FlowCancel:
			next.Name = StateCancelError
		}
		return next

	case Back:
		return reduceBack(state)

	case Reset:
		next := NewState()
		next.Epoch = state.Epoch + 1
		return next
	}

	return state
}

func reduceBack(state State) State {
	next := state
	next.InFlight = false
	next.ErrorKind = ""
	switch state.Name {
	case StateEditProcedure, StateDirectTimeChange, StateConfirmTimeChange, StateConfirmCancel:
		next.Name = StateEditSelection
		next.Session = nil
		next.Extension = nil
		next.Epoch = state.Epoch + 1
	case StateEditSelection:
		next.Name = StateResults
		next.Selected = nil
	case StateResults, StateNotFound:
		next.Name = StateSearch
		next.Results = nil
	default:
		if state.IsTerminal() {
			if len(state.Results) > 0 {
				next.Name = StateResults
			} else {
				next.Name = StateSearch
			}
		}
	}
	return next
}

// newSession seeds the session with the booking's current procedure, so "no
// procedure change" is the procedure equalling the original rather than a
// separate null case.
func newSession(booking models.BookingRecord) *models.TimeChangeSession {
	return &models.TimeChangeSession{
		OriginalBooking: booking,
		SelectedProcedure: models.Procedure{
			ID:              booking.ProcedureID,
			Name:            booking.ProcedureName,
			DurationMinutes: booking.DurationMinutes(),
			Price:           booking.Price,
		},
	}
}
