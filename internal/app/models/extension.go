package models

// ExtensionStatus is the outcome of checking whether an existing booking can
// absorb a longer procedure.
type ExtensionStatus string

const (
	// ExtensionCanExtend means the booking simply grows forward in place.
	ExtensionCanExtend ExtensionStatus = "can_extend"
	// ExtensionCanShiftBack means the whole window moves earlier to fit.
	ExtensionCanShiftBack ExtensionStatus = "can_shift_back"
	// ExtensionNoAvailability means neither works; alternatives are offered.
	ExtensionNoAvailability ExtensionStatus = "no_availability"
)

// ExtensionCheckResult is the transient output of the extension check.
// SuggestedStartISO/EndISO are set only for can_shift_back; AlternativeSlots
// only for no_availability (possibly empty, meaning "contact staff").
type ExtensionCheckResult struct {
	Status            ExtensionStatus `json:"status"`
	SuggestedStartISO string          `json:"suggestedStartISO,omitempty"`
	SuggestedEndISO   string          `json:"suggestedEndISO,omitempty"`
	ShiftMinutes      int             `json:"shiftMinutes,omitempty"`
	AlternativeSlots  []Slot          `json:"alternativeSlots,omitempty"`
}
