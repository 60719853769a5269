package routers

import (
	"padel-service/internal/app/delivery/http/controllers"
	"padel-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachClosedDateRoutes(router chi.Router, _ *middlewares.Middlewares, closedDateController *controllers.ClosedDateController) {
	router.Post("/", closedDateController.Create)
	router.Get("/", closedDateController.FindAll)
	router.Get("/check", closedDateController.Check)
	router.Get("/{closedDateId}", closedDateController.FindOne)
	router.Delete("/{closedDateId}", closedDateController.Remove)
}
