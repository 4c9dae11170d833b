package routers

import (
	"booking-service/internal/app/delivery/http/controllers"
	"booking-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachBookingRoutes(router chi.Router, middlewares *middlewares.Middlewares, bookingController *controllers.BookingController) {
	mutationLimit := middlewares.MutationRateLimit()

	router.Post("/search", bookingController.SearchBookings)
	router.With(mutationLimit).Post("/", bookingController.CreateBooking)
	router.Post("/{bookingID}/extension-check", bookingController.CheckExtension)
	router.With(mutationLimit).Patch("/{bookingID}/time", bookingController.UpdateBookingTime)
	router.With(mutationLimit).Patch("/{bookingID}/procedure", bookingController.UpdateBookingProcedure)
	router.With(mutationLimit).Patch("/{bookingID}", bookingController.UpdateBookingCombined)
	router.With(mutationLimit).Delete("/{bookingID}", bookingController.CancelBooking)
}
