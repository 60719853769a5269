package middlewares

import (
	"padel-service/internal/app/config"
	"padel-service/internal/app/contracts"

	"github.com/casbin/casbin/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const tracerName = "padel-service/http"

type Middlewares struct {
	Log            *zap.Logger
	AuthUsecase    contracts.AuthUsecase
	Enforcer       *casbin.Enforcer
	InternalConfig *config.InternalConfig
	Tracer         trace.Tracer
}

func NewMiddlewares(logger *zap.Logger, authUsecase contracts.AuthUsecase, enforcer *casbin.Enforcer, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:            logger,
		AuthUsecase:    authUsecase,
		Enforcer:       enforcer,
		InternalConfig: internalConfig,
		Tracer:         otel.Tracer(tracerName),
	}
}
