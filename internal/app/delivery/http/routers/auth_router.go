package routers

import (
	"padel-service/internal/app/delivery/http/controllers"
	"padel-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *controllers.AuthController) {
	router.Use(middlewares.AuthRateLimit())
	router.Post("/login", authController.Login)
	router.Post("/customer/otp", authController.SendCustomerOTP)
	router.Post("/customer/otp/verify", authController.VerifyCustomerOTP)
}
