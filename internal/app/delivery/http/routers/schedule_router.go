package routers

import (
	"padel-service/internal/app/delivery/http/controllers"
	"padel-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachScheduleRoutes(router chi.Router, _ *middlewares.Middlewares, scheduleController *controllers.ScheduleController) {
	router.Get("/day", scheduleController.Day)
	router.Get("/week", scheduleController.Week)
	router.Post("/export", scheduleController.Export)
}
