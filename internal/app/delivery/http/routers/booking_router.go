package routers

import (
	"padel-service/internal/app/delivery/http/controllers"
	"padel-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachBookingRoutes(router chi.Router, _ *middlewares.Middlewares, bookingController *controllers.BookingController, paymentController *controllers.PaymentController) {
	router.Post("/", bookingController.Create)
	router.Get("/", bookingController.FindByClub)
	router.Post("/cancel-series/{seriesId}", bookingController.CancelSeries)
	router.Get("/{bookingId}", bookingController.FindOne)
	router.Patch("/{bookingId}", bookingController.Update)
	router.Put("/{bookingId}/drag-drop", bookingController.DragDrop)
	router.Delete("/{bookingId}", bookingController.Remove)
	router.Post("/{bookingId}/cancel-occurrence", bookingController.CancelOccurrence)
	router.Get("/{bookingId}/payments", paymentController.FindByBooking)
}
