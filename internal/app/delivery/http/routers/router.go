package routers

import (
	"padel-service/internal/app/config"
	"padel-service/internal/app/delivery/http/controllers"
	"padel-service/internal/app/delivery/http/middlewares"
	"padel-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

type Controllers struct {
	Auth       *controllers.AuthController
	Booking    *controllers.BookingController
	Schedule   *controllers.ScheduleController
	Payment    *controllers.PaymentController
	ClosedDate *controllers.ClosedDateController
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	ctrls *Controllers,
) {
	allowedOrigins := internalConfig.App.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	corsOptions := cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			constvars.MethodGet,
			constvars.MethodHead,
			constvars.MethodPost,
			constvars.MethodPut,
			constvars.MethodPatch,
			constvars.MethodDelete,
			constvars.MethodOptions,
		},
		AllowedHeaders:   []string{constvars.HeaderAccept, constvars.HeaderAuthorization, constvars.HeaderContentType, constvars.HeaderXRequestID},
		ExposedHeaders:   []string{constvars.HeaderXRequestID, constvars.HeaderXTraceID},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Tracing)
	router.Use(middlewares.Logging)
	router.Use(middlewares.RateLimitByIP())
	router.Use(middlewares.ErrorHandler)

	router.Route(internalConfig.BasePath(), func(r chi.Router) {
		r.Route("/"+constvars.ResourceAuth, func(r chi.Router) {
			attachAuthRoutes(r, middlewares, ctrls.Auth)
		})

		r.Route("/"+constvars.ResourceClubs+"/{"+constvars.URLParamClubID+"}", func(r chi.Router) {
			r.Use(middlewares.Authenticate, middlewares.RequireClubAccess, middlewares.Authorize)

			r.Route("/"+constvars.ResourceBookings, func(r chi.Router) {
				attachBookingRoutes(r, middlewares, ctrls.Booking, ctrls.Payment)
			})

			r.Route("/"+constvars.ResourceSchedule, func(r chi.Router) {
				attachScheduleRoutes(r, middlewares, ctrls.Schedule)
			})

			r.Route("/"+constvars.ResourcePayments, func(r chi.Router) {
				attachPaymentRoutes(r, middlewares, ctrls.Payment)
			})

			r.Route("/"+constvars.ResourceClosedDates, func(r chi.Router) {
				attachClosedDateRoutes(r, middlewares, ctrls.ClosedDate)
			})
		})
	})
}
