package responses

import "booking-service/internal/app/models"

type BookingResponse struct {
	EventID       string  `json:"eventId"`
	FirstName     string  `json:"firstName"`
	LastName      string  `json:"lastName"`
	Phone         string  `json:"phone"`
	Email         string  `json:"email,omitempty"`
	ProcedureID   string  `json:"procedureId,omitempty"`
	ProcedureName string  `json:"procedureName"`
	StartISO      string  `json:"startISO"`
	EndISO        string  `json:"endISO"`
	Price         float64 `json:"price"`
	CanModify     bool    `json:"canModify"`
	CanCancel     bool    `json:"canCancel"`
}

func NewBookingResponse(record models.BookingRecord) BookingResponse {
	return BookingResponse{
		EventID:       record.EventID,
		FirstName:     record.FirstName,
		LastName:      record.LastName,
		Phone:         record.Phone,
		Email:         record.Email,
		ProcedureID:   record.ProcedureID,
		ProcedureName: record.ProcedureName,
		StartISO:      record.StartTime.Format(iso8601Layout),
		EndISO:        record.EndTime.Format(iso8601Layout),
		Price:         record.Price,
		CanModify:     record.CanModify,
		CanCancel:     record.CanCancel,
	}
}

func NewBookingResponses(records []models.BookingRecord) []BookingResponse {
	out := make([]BookingResponse, 0, len(records))
	for _, record := range records {
		out = append(out, NewBookingResponse(record))
	}
	return out
}
