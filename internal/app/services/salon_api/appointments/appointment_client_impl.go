package appointments

import (
	"context"
	"cosmek-web/internal/app/contracts"
	"cosmek-web/internal/app/services/salon_api"
	"cosmek-web/internal/pkg/constvars"
	"cosmek-web/internal/pkg/dto/requests"
	"cosmek-web/internal/pkg/dto/responses"
	"fmt"
)

type appointmentClient struct {
	transport *salon_api.Transport
}

func NewAppointmentClient(transport *salon_api.Transport) contracts.AppointmentClient {
	return &appointmentClient{transport: transport}
}

func (c *appointmentClient) path(appointmentID int, action string) string {
	return fmt.Sprintf("%s/%d%s", constvars.ResourceAppointments, appointmentID, action)
}

func (c *appointmentClient) FindAll(ctx context.Context) ([]responses.Appointment, error) {
	var appointments []responses.Appointment
	err := c.transport.Do(ctx, salon_api.Call{
		Method:         constvars.MethodGet,
		Path:           constvars.ResourceAppointments,
		Out:            &appointments,
		FailureMessage: constvars.ErrClientLoadAppointments,
	})
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (c *appointmentClient) FindByID(ctx context.Context, appointmentID int) (*responses.Appointment, error) {
	appointment := new(responses.Appointment)
	err := c.transport.Do(ctx, salon_api.Call{
		Method:         constvars.MethodGet,
		Path:           c.path(appointmentID, ""),
		Out:            appointment,
		FailureMessage: constvars.ErrClientLoadAppointment,
	})
	if err != nil {
		return nil, err
	}
	return appointment, nil
}

func (c *appointmentClient) Create(ctx context.Context, request *requests.CreateAppointment) (*responses.Appointment, error) {
	appointment := new(responses.Appointment)
	err := c.transport.Do(ctx, salon_api.Call{
		Method:         constvars.MethodPost,
		Path:           constvars.ResourceAppointments,
		Body:           request,
		Out:            appointment,
		FailureMessage: constvars.ErrClientBookAppointment,
	})
	if err != nil {
		return nil, err
	}
	return appointment, nil
}

func (c *appointmentClient) Cancel(ctx context.Context, appointmentID int) (*responses.CancelAppointment, error) {
	result := new(responses.CancelAppointment)
	err := c.transport.Do(ctx, salon_api.Call{
		Method:         constvars.MethodPost,
		Path:           c.path(appointmentID, constvars.ActionCancel),
		Out:            result,
		FailureMessage: constvars.ErrClientCancelAppointment,
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *appointmentClient) Reschedule(ctx context.Context, appointmentID int, request *requests.RescheduleAppointment) (*responses.Appointment, error) {
	appointment := new(responses.Appointment)
	err := c.transport.Do(ctx, salon_api.Call{
		Method:         constvars.MethodPost,
		Path:           c.path(appointmentID, constvars.ActionReschedule),
		Body:           request,
		Out:            appointment,
		FailureMessage: constvars.ErrClientRescheduleAppointment,
	})
	if err != nil {
		return nil, err
	}
	return appointment, nil
}
