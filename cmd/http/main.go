package main

import (
	"context"
	"cosmek-web/internal/app/config"
	"cosmek-web/internal/app/contracts"
	"cosmek-web/internal/app/delivery/http/controllers"
	"cosmek-web/internal/app/delivery/http/middlewares"
	"cosmek-web/internal/app/delivery/http/routers"
	"cosmek-web/internal/app/delivery/http/views"
	"cosmek-web/internal/app/drivers/database"
	"cosmek-web/internal/app/drivers/logger"
	"cosmek-web/internal/app/drivers/messaging"
	"cosmek-web/internal/app/services/core/appointments"
	"cosmek-web/internal/app/services/core/availability"
	"cosmek-web/internal/app/services/core/booking"
	"cosmek-web/internal/app/services/core/stylists"
	"cosmek-web/internal/app/services/salon_api"
	appointmentClients "cosmek-web/internal/app/services/salon_api/appointments"
	customerClients "cosmek-web/internal/app/services/salon_api/customers"
	stylistClients "cosmek-web/internal/app/services/salon_api/stylists"
	"cosmek-web/internal/app/services/shared/notifier"
	"cosmek-web/internal/app/services/shared/redis"
	"cosmek-web/internal/app/services/shared/theme"
	"fmt"
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

	zapLogger, err := logger.NewZapLogger(driverConfig, internalConfig)
	if err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		// Guam has no daylight saving, a fixed zone is exact
		zapLogger.Warn("Error loading location, falling back to a fixed +10:00 zone",
			zap.String("timezone", internalConfig.App.Timezone),
			zap.Error(err),
		)
		location = time.FixedZone(internalConfig.App.Timezone, 10*60*60)
	}
	time.Local = location

	bootstrap := config.Bootstrap{
		Router:         chi.NewRouter(),
		Logger:         zapLogger,
		Location:       location,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	if driverConfig.Redis.Enabled() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		bootstrap.Redis, err = database.NewRedisClient(ctx, driverConfig)
		cancel()
		if err != nil {
			zapLogger.Warn("Error connecting to Redis, running without cache", zap.Error(err))
		} else {
			zapLogger.Info("Successfully connected to Redis")
		}
	}

	if internalConfig.Notification.Enabled && driverConfig.RabbitMQ.Enabled() {
		bootstrap.RabbitMQ, err = messaging.NewRabbitMQ(driverConfig)
		if err != nil {
			zapLogger.Warn("Error connecting to RabbitMQ, booking events are disabled", zap.Error(err))
		} else {
			zapLogger.Info("Successfully connected to RabbitMQ")
		}
	}

	err = bootstrapingTheApp(&bootstrap)
	if err != nil {
		zapLogger.Fatal("Error bootstraping the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:              fmt.Sprintf(":%s", internalConfig.App.Port),
		Handler:           bootstrap.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zapLogger.Info("Server started", zap.String("address", server.Addr))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	zapLogger.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Error closing drivers: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	internalConfig := bootstrap.InternalConfig
	log := bootstrap.Logger

	// Views
	renderer, err := views.NewRenderer(internalConfig.App.RedirectDelayInSeconds)
	if err != nil {
		return err
	}

	// Redis
	var redisRepository contracts.RedisRepository
	if bootstrap.Redis != nil {
		redisRepository = redis.NewRedisRepository(bootstrap.Redis)
	}

	// Notifier
	publisher := notifier.NewNoopPublisher(log)
	if bootstrap.RabbitMQ != nil {
		channel, err := bootstrap.RabbitMQ.Channel()
		if err != nil {
			return err
		}
		publisher, err = notifier.NewAMQPPublisher(channel, internalConfig.Notification.Queue, log)
		if err != nil {
			return err
		}
	}

	// Salon API
	transport := salon_api.NewTransport(internalConfig.SalonAPI, log)
	stylistClient := stylistClients.NewStylistClient(transport)
	customerClient := customerClients.NewCustomerClient(transport)
	appointmentClient := appointmentClients.NewAppointmentClient(transport)

	// Usecases
	slotFinder := availability.NewSlotFinder(stylistClient, bootstrap.Location, log)
	stylistUsecase := stylists.NewStylistUsecase(
		stylistClient,
		appointmentClient,
		redisRepository,
		time.Duration(internalConfig.Cache.StylistListTTLInSeconds)*time.Second,
		bootstrap.Location,
		log,
	)
	appointmentUsecase := appointments.NewAppointmentUsecase(appointmentClient, slotFinder, publisher, bootstrap.Location, log)
	bookingUsecase := booking.NewBookingUsecase(
		stylistUsecase,
		customerClient,
		appointmentClient,
		slotFinder,
		publisher,
		internalConfig.Booking.DefaultDurationInMinutes,
		internalConfig.Booking.AllowedDurationsInMinutes,
		bootstrap.Location,
		log,
	)

	// Middlewares
	themeStore := theme.NewThemeStore()
	if err := theme.Configure(themeStore, internalConfig.Theme.Default); err != nil {
		log.Warn("Invalid THEME_DEFAULT, using light theme", zap.Error(err))
	}
	middlewares := middlewares.NewMiddlewares(log, internalConfig, themeStore, renderer)

	routers.SetupRoutes(bootstrap.Router, internalConfig, middlewares, &routers.Controllers{
		Page:        controllers.NewPageController(log, renderer),
		Stylist:     controllers.NewStylistController(log, renderer, internalConfig, stylistUsecase),
		Appointment: controllers.NewAppointmentController(log, renderer, internalConfig, appointmentUsecase),
		Booking:     controllers.NewBookingController(log, renderer, internalConfig, bookingUsecase),
		Theme:       controllers.NewThemeController(log, internalConfig),
		Health:      controllers.NewHealthController(),
	})
	return nil
}
