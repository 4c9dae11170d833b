package routers

import (
	"booking-service/internal/app/delivery/http/controllers"
	"booking-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAvailabilityRoutes(router chi.Router, _ *middlewares.Middlewares, availabilityController *controllers.AvailabilityController) {
	router.Get("/slots", availabilityController.SlotsForDay)
	router.Get("/days", availabilityController.DaysWithAvailability)
}

func attachProcedureRoutes(router chi.Router, _ *middlewares.Middlewares, procedureController *controllers.ProcedureController) {
	router.Get("/", procedureController.ListProcedures)
}
