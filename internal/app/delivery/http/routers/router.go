package routers

import (
	"cosmek-web/internal/app/config"
	"cosmek-web/internal/app/delivery/http/controllers"
	"cosmek-web/internal/app/delivery/http/middlewares"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

type Controllers struct {
	Page        *controllers.PageController
	Stylist     *controllers.StylistController
	Appointment *controllers.AppointmentController
	Booking     *controllers.BookingController
	Theme       *controllers.ThemeController
	Health      *controllers.HealthController
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	ctrls *Controllers,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   allowedOrigins(internalConfig.App.AllowedOrigins),
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID", "X-Requested-With"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	window := time.Duration(internalConfig.App.MaxTimeRequestsPerSeconds) * time.Second
	if window <= 0 {
		window = time.Second
	}
	router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, window))

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.BodyLimit)
	router.Use(middlewares.Theme)

	router.NotFound(ctrls.Page.NotFound)

	router.Get("/healthz", ctrls.Health.Healthz)
	router.Post("/theme/toggle", ctrls.Theme.Toggle)

	attachPageRoutes(router, ctrls.Page)

	router.Route("/stylists", func(r chi.Router) {
		attachStylistRoutes(r, ctrls.Stylist)
	})

	router.Route("/appointments", func(r chi.Router) {
		attachAppointmentRoutes(r, ctrls.Appointment)
	})

	router.Route("/book-appointment", func(r chi.Router) {
		attachBookingRoutes(r, ctrls.Booking)
	})
}

func allowedOrigins(raw string) []string {
	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
