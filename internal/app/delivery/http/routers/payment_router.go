package routers

import (
	"padel-service/internal/app/delivery/http/controllers"
	"padel-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachPaymentRoutes(router chi.Router, _ *middlewares.Middlewares, paymentController *controllers.PaymentController) {
	router.Post("/", paymentController.Record)
	router.Get("/", paymentController.FindByClub)
	router.Delete("/{paymentId}", paymentController.Remove)
}
