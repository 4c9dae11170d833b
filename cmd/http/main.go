package main

import (
	"booking-service/internal/app/config"
	"booking-service/internal/app/delivery/http/controllers"
	"booking-service/internal/app/delivery/http/middlewares"
	"booking-service/internal/app/delivery/http/routers"
	"booking-service/internal/app/drivers/database"
	"booking-service/internal/app/drivers/logger"
	"booking-service/internal/app/drivers/mailer"
	"booking-service/internal/app/drivers/messaging"
	"booking-service/internal/app/services/calendar"
	"booking-service/internal/app/services/core/availability"
	"booking-service/internal/app/services/core/bookings"
	"booking-service/internal/app/services/core/extension"
	"booking-service/internal/app/services/core/matcher"
	"booking-service/internal/app/services/core/procedures"
	"booking-service/internal/app/services/core/schedule"
	"booking-service/internal/app/services/shared/notifications"
	redisRepo "booking-service/internal/app/services/shared/redis"
	"booking-service/internal/app/services/shared/verification"
	"booking-service/internal/app/services/sheet"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	logger.InitLogrus(internalConfig, driverConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Logger:         zapLogger,
		RabbitMQ:       rabbitMQ,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapTheApp(&bootstrap, location)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	zapLogger.Info("Waiting for pending requests to finish before shutting down")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(bootstrap *config.Bootstrap, location *time.Location) {
	zapLogger := bootstrap.Logger
	internalConfig := bootstrap.InternalConfig

	// Shared infrastructure
	redisRepository := redisRepo.NewRedisRepository(bootstrap.Redis)
	calendarClient := calendar.NewCalendarClient(internalConfig.Calendar)
	sheetClient := sheet.NewSheetClient(internalConfig.Sheet)
	tokenVerifier := verification.NewTurnstileVerifier(internalConfig.Verification)

	// Notifications
	publisher, err := notifications.NewPublisher(bootstrap.RabbitMQ, internalConfig.App.NotificationQueue, zapLogger)
	if err != nil {
		log.Fatalf("Failed to set up notification publisher: %v", err)
	}
	smtpClient := mailer.NewSMTPClient(bootstrap.DriverConfig)
	mailerWorker := notifications.NewMailerWorker(bootstrap.RabbitMQ, smtpClient, internalConfig.App.NotificationQueue, zapLogger)
	stopMailer, err := mailerWorker.Start(context.Background())
	if err != nil {
		log.Fatalf("Failed to start mailer worker: %v", err)
	}
	bootstrap.MailerStop = stopMailer

	// Core services
	scheduleResolver := schedule.NewScheduleResolver(sheetClient, redisRepository, internalConfig, zapLogger)
	procedureUsecase := procedures.NewProcedureUsecase(sheetClient, zapLogger)
	availabilityUsecase := availability.NewAvailabilityUsecase(
		calendarClient, scheduleResolver, procedureUsecase, redisRepository, internalConfig, location, zapLogger,
	)
	extensionUsecase := extension.NewExtensionUsecase(
		calendarClient, scheduleResolver, availabilityUsecase, internalConfig, location, zapLogger,
	)
	bookingMatcher := matcher.NewBookingMatcher()
	bookingUsecase := bookings.NewBookingUsecase(
		calendarClient, bookingMatcher, procedureUsecase, redisRepository,
		tokenVerifier, publisher, internalConfig, location, zapLogger,
	)

	// Delivery
	middlewareInstance := &middlewares.Middlewares{
		Log:            zapLogger,
		InternalConfig: internalConfig,
	}
	bookingController := controllers.NewBookingController(bookingUsecase, extensionUsecase, procedureUsecase, zapLogger)
	availabilityController := controllers.NewAvailabilityController(availabilityUsecase, location, zapLogger)
	procedureController := controllers.NewProcedureController(procedureUsecase, zapLogger)

	routers.SetupRoutes(
		bootstrap.Router,
		internalConfig,
		middlewareInstance,
		bookingController,
		availabilityController,
		procedureController,
	)

	zapLogger.Info("Application bootstrapped",
		zap.String("timezone", internalConfig.App.Timezone),
		zap.String("port", internalConfig.App.Port),
	)
}
