package routers

import (
	"cosmek-web/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachStylistRoutes(router chi.Router, stylistController *controllers.StylistController) {
	router.Get("/", stylistController.List)
	router.Post("/", stylistController.Create)
	router.Get("/new", stylistController.New)
	router.Get("/{stylist_id}", stylistController.Detail)
}
