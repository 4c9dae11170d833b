package models

// TimeChangeSession is the transient record of an in-progress time or
// procedure modification, held only by the active state machine instance.
// "No procedure change" is represented by SelectedProcedure equalling the
// original booking's procedure, never by a nil case; that keeps the
// time-only and combined flows on one state machine.
type TimeChangeSession struct {
	ID                string
	OriginalBooking   BookingRecord
	SelectedProcedure Procedure
	NewSlot           *Slot
}

// ProcedureChanged reports whether confirming this session needs the combined
// procedure+time payload rather than the pure time update.
func (s TimeChangeSession) ProcedureChanged() bool {
	return s.SelectedProcedure.Name != s.OriginalBooking.ProcedureName
}

// SearchForm is what a client submits to locate their own bookings.
type SearchForm struct {
	FullName string
	Phone    string
	Email    string
}
