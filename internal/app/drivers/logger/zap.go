package logger

import (
	"log"
	"padel-service/internal/app/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewZapLogger builds the JSON service logger. Production writes to the
// configured files as well as the standard streams and samples repeated lines.
func NewZapLogger(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig) *zap.Logger {
	level, err := zapcore.ParseLevel(driverConfig.Logger.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	encoding := zap.NewProductionEncoderConfig()
	encoding.TimeKey = "time"
	encoding.EncodeTime = zapcore.ISO8601TimeEncoder
	encoding.EncodeDuration = zapcore.StringDurationEncoder

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Encoding:         "json",
		EncoderConfig:    encoding,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
		InitialFields: map[string]interface{}{
			"service":  driverConfig.Tracing.ServiceName,
			"version":  internalConfig.App.Version,
			"timezone": internalConfig.App.Timezone,
		},
	}

	if internalConfig.App.Env == "production" {
		cfg.OutputPaths = append(cfg.OutputPaths, driverConfig.Logger.OutputFileName)
		cfg.ErrorOutputPaths = append(cfg.ErrorOutputPaths, driverConfig.Logger.OutputErrorFileName)
		cfg.Sampling = &zap.SamplingConfig{Initial: 100, Thereafter: 100}
	} else {
		cfg.Development = true
	}

	zapLogger, err := cfg.Build(zap.AddStacktrace(zapcore.ErrorLevel))
	if err != nil {
		log.Fatalf("Error while initializing zap logger: %v", err)
	}
	return zapLogger
}
