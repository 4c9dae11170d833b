package requests

// SearchBookingsRequest is the identity form a client submits to find their
// own bookings. Email is the only optional field.
type SearchBookingsRequest struct {
	FullName string `json:"fullName" validate:"required,min=2,max=120"`
	Phone    string `json:"phone" validate:"required,min=9,max=20"`
	Email    string `json:"email" validate:"omitempty,email"`
	Token    string `json:"token"`
}

type CreateBookingRequest struct {
	FirstName   string `json:"firstName" validate:"required,min=2,max=60"`
	LastName    string `json:"lastName" validate:"required,min=2,max=60"`
	Phone       string `json:"phone" validate:"required,min=9,max=20"`
	Email       string `json:"email" validate:"omitempty,email"`
	ProcedureID string `json:"procedureId" validate:"required"`
	StartISO    string `json:"startISO" validate:"required"`
	Token       string `json:"token"`
}

// IdentityProof re-asserts ownership on every mutation. The record itself is
// re-fetched from the calendar; nothing from a previous search is trusted.
type IdentityProof struct {
	FullName string `json:"fullName" validate:"required,min=2,max=120"`
	Phone    string `json:"phone" validate:"required,min=9,max=20"`
	Email    string `json:"email" validate:"omitempty,email"`
}

type UpdateBookingTimeRequest struct {
	IdentityProof
	StartISO string `json:"startISO" validate:"required"`
}

type UpdateBookingProcedureRequest struct {
	IdentityProof
	ProcedureID string `json:"procedureId" validate:"required"`
}

// UpdateBookingCombinedRequest changes the procedure, the time, or both in a
// single calendar write.
type UpdateBookingCombinedRequest struct {
	IdentityProof
	ProcedureID string `json:"procedureId" validate:"omitempty"`
	StartISO    string `json:"startISO" validate:"omitempty"`
}

type CancelBookingRequest struct {
	IdentityProof
}

type ExtensionCheckRequest struct {
	IdentityProof
	ProcedureID string `json:"procedureId" validate:"required"`
}
