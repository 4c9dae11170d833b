package responses

import "booking-service/internal/app/models"

type SlotsResponse struct {
	Date  string        `json:"date"`
	Slots []models.Slot `json:"slots"`
}

type DaysResponse struct {
	Days map[string]bool `json:"days"`
}

type ProcedureResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
}

func NewProcedureResponses(procedures []models.Procedure) []ProcedureResponse {
	out := make([]ProcedureResponse, 0, len(procedures))
	for _, procedure := range procedures {
		out = append(out, ProcedureResponse{
			ID:              procedure.ID,
			Name:            procedure.Name,
			DurationMinutes: procedure.DurationMinutes,
			Price:           procedure.Price,
		})
	}
	return out
}
