package config

import (
	"cosmek-web/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", ""),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", ""),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", "8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1.0"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "Pacific/Guam"),
			AllowedOrigins:             utils.GetEnvString("APP_ALLOWED_ORIGINS", "*"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUESTS", 100),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			MaxTimeRequestsPerSeconds:  utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 60),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 1),
			RequestTimeoutInSeconds:    utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 15),
			RedirectDelayInSeconds:     utils.GetEnvInt("APP_REDIRECT_DELAY_IN_SECONDS", 2),
		},
		SalonAPI: AppSalonAPI{
			BaseUrl:              utils.GetEnvString("SALON_API_BASE_URL", "http://localhost:3000"),
			HTTPTimeoutInSeconds: utils.GetEnvInt("SALON_API_HTTP_TIMEOUT_IN_SECONDS", 10),
			MaxRequestsPerSecond: utils.GetEnvInt("SALON_API_MAX_REQUESTS_PER_SECOND", 0),
			ThrottleBurst:        utils.GetEnvInt("SALON_API_THROTTLE_BURST", 5),
		},
		Booking: AppBooking{
			DefaultDurationInMinutes:  utils.GetEnvInt("BOOKING_DEFAULT_DURATION_IN_MINUTES", 60),
			AllowedDurationsInMinutes: utils.GetEnvIntList("BOOKING_ALLOWED_DURATIONS_IN_MINUTES", []int{60}),
		},
		Theme: AppTheme{
			Default:    utils.GetEnvString("THEME_DEFAULT", "light"),
			CookieName: utils.GetEnvString("THEME_COOKIE_NAME", "cosmek_theme"),
		},
		Cache: AppCache{
			StylistListTTLInSeconds: utils.GetEnvInt("CACHE_STYLIST_LIST_TTL_IN_SECONDS", 60),
		},
		Notification: AppNotification{
			Enabled: utils.GetEnvBool("NOTIFICATION_ENABLED", false),
			Queue:   utils.GetEnvString("NOTIFICATION_QUEUE", "cosmek.booking_events"),
		},
	}
}
