package contracts

import (
	"context"
	"cosmek-web/internal/pkg/dto/requests"
	"cosmek-web/internal/pkg/dto/responses"
)

type StylistUsecase interface {
	ListStylists(ctx context.Context) ([]responses.Stylist, error)
	GetStylistProfile(ctx context.Context, stylistID int) (*responses.StylistProfile, error)
	CreateStylist(ctx context.Context, request *requests.CreateStylist) (*responses.Stylist, error)
}

type AppointmentUsecase interface {
	ListAppointments(ctx context.Context, filter string) (*responses.AppointmentList, error)
	CancelAppointment(ctx context.Context, appointmentID int) (*responses.AppointmentCard, error)
	GetRescheduleForm(ctx context.Context, appointmentID int, date string) (*responses.RescheduleForm, error)
	RescheduleAppointment(ctx context.Context, appointmentID int, request *requests.RescheduleAppointmentForm) (*responses.AppointmentCard, error)
}

type BookingUsecase interface {
	LoadBookingForm(ctx context.Context, query *requests.BookingFormQuery) (*responses.BookingForm, error)
	LoadSlots(ctx context.Context, query *requests.BookingFormQuery) (*responses.SlotSelection, error)
	BookAppointment(ctx context.Context, request *requests.BookAppointment) (*responses.AppointmentCard, error)
}
