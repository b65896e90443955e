package contracts

import (
	"context"
	"cosmek-web/internal/pkg/dto/requests"
	"cosmek-web/internal/pkg/dto/responses"
)

type StylistClient interface {
	FindAll(ctx context.Context) ([]responses.Stylist, error)
	FindByID(ctx context.Context, stylistID int) (*responses.Stylist, error)
	Create(ctx context.Context, request *requests.CreateStylist) (*responses.Stylist, error)
	FindAvailability(ctx context.Context, request *requests.FindAvailability) (*responses.Availability, error)
}

type CustomerClient interface {
	FindAll(ctx context.Context) ([]responses.Customer, error)
	FindByID(ctx context.Context, customerID int) (*responses.Customer, error)
	Create(ctx context.Context, request *requests.CreateCustomer) (*responses.Customer, error)
}

type AppointmentClient interface {
	FindAll(ctx context.Context) ([]responses.Appointment, error)
	FindByID(ctx context.Context, appointmentID int) (*responses.Appointment, error)
	Create(ctx context.Context, request *requests.CreateAppointment) (*responses.Appointment, error)
	Cancel(ctx context.Context, appointmentID int) (*responses.CancelAppointment, error)
	Reschedule(ctx context.Context, appointmentID int, request *requests.RescheduleAppointment) (*responses.Appointment, error)
}
