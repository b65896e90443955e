package routers

import (
	"cosmek-web/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, appointmentController *controllers.AppointmentController) {
	router.Get("/", appointmentController.List)
	router.Post("/{appointment_id}/cancel", appointmentController.Cancel)
	router.Get("/{appointment_id}/reschedule", appointmentController.RescheduleForm)
	router.Post("/{appointment_id}/reschedule", appointmentController.Reschedule)
}
