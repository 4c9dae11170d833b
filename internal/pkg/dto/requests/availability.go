package requests

// SlotsRequest is bound from query parameters on the slots endpoint.
// ProcedureID may be absent; no procedure means no day is open, so the
// endpoint answers with an empty list rather than a validation error.
type SlotsRequest struct {
	Date        string `json:"date" validate:"required,date_only"`
	ProcedureID string `json:"procedureId" validate:"omitempty"`
}

// DaysRequest asks which dates in [from, until] have at least one free slot.
// An absent ProcedureID yields false for every date, same as SlotsRequest.
type DaysRequest struct {
	From        string `json:"from" validate:"required,date_only"`
	Until       string `json:"until" validate:"required,date_only"`
	ProcedureID string `json:"procedureId" validate:"omitempty"`
}
