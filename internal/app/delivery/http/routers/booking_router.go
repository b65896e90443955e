package routers

import (
	"cosmek-web/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachBookingRoutes(router chi.Router, bookingController *controllers.BookingController) {
	router.Get("/", bookingController.Form)
	router.Post("/", bookingController.Book)
	router.Post("/check", bookingController.Check)
	router.Get("/slots", bookingController.Slots)
	router.Get("/{stylist_id}", bookingController.Form)
}
