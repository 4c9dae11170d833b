package config

import (
	"booking-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		RabbitMQ: RabbitMQ{
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
		SMTP: SMTP{
			Host:        utils.GetEnvString("SMTP_HOST", "smtp_host"),
			Username:    utils.GetEnvString("SMTP_USERNAME", ""),
			Password:    utils.GetEnvString("SMTP_PASSWORD", ""),
			EmailSender: utils.GetEnvString("SMTP_EMAIL_SENDER", ""),
			Port:        utils.GetEnvInt("SMTP_PORT", 2525),
		},
		Logger: Logger{
			Driver:              utils.GetEnvString("LOGGER_DRIVER", "zap"),
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                       utils.GetEnvString("APP_ENV", "development"),
			Port:                      utils.GetEnvString("APP_PORT", ":8080"),
			Version:                   utils.GetEnvString("APP_VERSION", "v1"),
			Address:                   utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                  utils.GetEnvString("APP_TIMEZONE", "Europe/Warsaw"),
			EndpointPrefix:            utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			NotificationQueue:         utils.GetEnvString("APP_RABBITMQ_NOTIFICATION_QUEUE", "booking-notifications"),
			MaxRequests:               utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeout:           utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			MutationRequestsPerMinute: utils.GetEnvInt("APP_MUTATION_REQUESTS_PER_MINUTE", 10),
		},
		Calendar: Calendar{
			BaseUrl:              utils.GetEnvString("CALENDAR_BASE_URL", "http://localhost:5556/calendar"),
			ApiKey:               utils.GetEnvString("CALENDAR_API_KEY", ""),
			MaxRequestsPerSecond: utils.GetEnvInt("CALENDAR_MAX_REQUESTS_PER_SECOND", 10),
		},
		Sheet: Sheet{
			BaseUrl: utils.GetEnvString("SHEET_BASE_URL", "http://localhost:5557/sheet"),
			ApiKey:  utils.GetEnvString("SHEET_API_KEY", ""),
		},
		Verification: Verification{
			BaseUrl: utils.GetEnvString("VERIFICATION_BASE_URL", "https://challenges.cloudflare.com/turnstile/v0"),
			Secret:  utils.GetEnvString("VERIFICATION_SECRET", ""),
		},
		Booking: Booking{
			SlotStepMinutes:       utils.GetEnvInt("BOOKING_SLOT_STEP_MINUTES", 30),
			ShiftStepMinutes:      utils.GetEnvInt("BOOKING_SHIFT_STEP_MINUTES", 15),
			AlternativeSlotLimit:  utils.GetEnvInt("BOOKING_ALTERNATIVE_SLOT_LIMIT", 6),
			AlternativeWindowDays: utils.GetEnvInt("BOOKING_ALTERNATIVE_WINDOW_DAYS", 3),
			SearchWindowDays:      utils.GetEnvInt("BOOKING_SEARCH_WINDOW_DAYS", 90),
		},
	}
}
