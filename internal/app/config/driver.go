package config

type (
	DriverConfig struct {
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
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
)

// Enabled reports whether a Redis host is configured. Without one the app
// runs without a cache.
func (r Redis) Enabled() bool {
	return r.Host != ""
}

func (r RabbitMQ) Enabled() bool {
	return r.Host != ""
}
