package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Postgres Postgres
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
		Minio    Minio
		Tracing  Tracing
	}
	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}
	Postgres struct {
		Host     string
		Port     string
		DbName   string
		Username string
		Password string
		SSLMode  string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
		DB       int
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Minio struct {
		Port     string
		Host     string
		Username string
		Password string
		UseSSL   bool
	}
	Tracing struct {
		// Endpoint is the OTLP gRPC collector address. Tracing is disabled when empty.
		Endpoint    string
		ServiceName string
	}
)
