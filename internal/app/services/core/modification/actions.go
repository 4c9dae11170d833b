package modification

import (
	"booking-service/internal/app/models"
	"booking-service/internal/pkg/exceptions"
)

// Action is the closed set of messages the reducer understands. Anything the
// surrounding delivery layer wants to happen goes through one of these.
type Action interface {
	isAction()
}

// FlowKind tags which mutation a terminal state belongs to.
type FlowKind string

const (
	FlowTime      FlowKind = "time"
	FlowProcedure FlowKind = "procedure"
	FlowCancel    FlowKind = "cancel"
)

// SubmitSearch starts a fresh search, discarding any session in progress.
type SubmitSearch struct {
	Form models.SearchForm
}

// SearchLoaded delivers the matcher's results for an in-flight search.
type SearchLoaded struct {
	Records []models.BookingRecord
}

// SearchFailed delivers a search transport failure.
type SearchFailed struct {
	Kind exceptions.Kind
}

// SelectBooking picks one record out of the current results.
type SelectBooking struct {
	EventID string
}

// ChooseChangeProcedure enters the procedure-change flow for the selection.
type ChooseChangeProcedure struct{}

// ChooseChangeTime enters the direct time-change flow for the selection.
type ChooseChangeTime struct{}

// ChooseCancel enters the cancel confirmation for the selection.
type ChooseCancel struct{}

// SelectProcedure records the newly chosen procedure inside the session.
type SelectProcedure struct {
	Procedure models.Procedure
}

// ExtensionChecked delivers the negotiator's verdict, rendered inline.
type ExtensionChecked struct {
	Result models.ExtensionCheckResult
}

// RequestNewTime abandons the inline suggestion and asks for a free pick.
type RequestNewTime struct{}

// PickSlot records the chosen slot and moves to the confirmation step.
type PickSlot struct {
	Slot models.Slot
}

// ConfirmSameTime applies a same-or-shorter procedure change on the original
// time, skipping the confirmation step entirely.
type ConfirmSameTime struct{}

// ConfirmTimeChange fires the pending time (or combined) update.
type ConfirmTimeChange struct{}

// ConfirmCancellation fires the pending cancel.
type ConfirmCancellation struct{}

// MutationSucceeded delivers a successful terminal outcome.
type MutationSucceeded struct {
	Flow   FlowKind
	Record *models.BookingRecord
}

// MutationFailed delivers a failed terminal outcome.
type MutationFailed struct {
	Flow FlowKind
	Kind exceptions.Kind
}

// Back leaves the current step without applying anything.
type Back struct{}

// Reset discards everything and returns to a blank search.
type Reset struct{}

func (SubmitSearch) isAction()          {}
func (SearchLoaded) isAction()          {}
func (SearchFailed) isAction()          {}
func (SelectBooking) isAction()         {}
func (ChooseChangeProcedure) isAction() {}
func (ChooseChangeTime) isAction()      {}
func (ChooseCancel) isAction()          {}
func (SelectProcedure) isAction()       {}
func (ExtensionChecked) isAction()      {}
func (RequestNewTime) isAction()        {}
func (PickSlot) isAction()              {}
func (ConfirmSameTime) isAction()       {}
func (ConfirmTimeChange) isAction()     {}
func (ConfirmCancellation) isAction()   {}
func (MutationSucceeded) isAction()     {}
func (MutationFailed) isAction()        {}
func (Back) isAction()                  {}
func (Reset) isAction()                 {}
