package appointments

import (
	"context"
	"cosmek-web/internal/app/contracts"
	"cosmek-web/internal/app/models"
	"cosmek-web/internal/app/services/core/availability"
	"cosmek-web/internal/pkg/constvars"
	"cosmek-web/internal/pkg/dto/requests"
	"cosmek-web/internal/pkg/dto/responses"
	"cosmek-web/internal/pkg/exceptions"
	"cosmek-web/internal/pkg/utils"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentClient contracts.AppointmentClient
	SlotFinder        *availability.SlotFinder
	Publisher         contracts.BookingEventPublisher
	Location          *time.Location
	Log               *zap.Logger
}

func NewAppointmentUsecase(
	appointmentClient contracts.AppointmentClient,
	slotFinder *availability.SlotFinder,
	publisher contracts.BookingEventPublisher,
	location *time.Location,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	return &appointmentUsecase{
		AppointmentClient: appointmentClient,
		SlotFinder:        slotFinder,
		Publisher:         publisher,
		Location:          location,
		Log:               logger,
	}
}

// NormalizeFilter maps anything outside the status enumeration to "all".
func NormalizeFilter(filter string) string {
	if models.AppointmentStatus(filter).IsValid() {
		return filter
	}
	return constvars.AppointmentFilterAll
}

func buildFilters(active string) []responses.AppointmentFilter {
	filters := []responses.AppointmentFilter{{
		Value:  constvars.AppointmentFilterAll,
		Label:  "All",
		Active: active == constvars.AppointmentFilterAll,
	}}
	for _, status := range models.AppointmentStatuses {
		filters = append(filters, responses.AppointmentFilter{
			Value:  string(status),
			Label:  status.Label(),
			Active: active == string(status),
		})
	}
	return filters
}

func (uc *appointmentUsecase) ListAppointments(ctx context.Context, filter string) (*responses.AppointmentList, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	filter = NormalizeFilter(filter)
	uc.Log.Info("appointmentUsecase.ListAppointments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFilterKey, filter),
	)

	appointments, err := uc.AppointmentClient.FindAll(ctx)
	if err != nil {
		uc.Log.Error("appointmentUsecase.ListAppointments error fetching appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	list := &responses.AppointmentList{
		Filter:       filter,
		Filters:      buildFilters(filter),
		Appointments: []responses.AppointmentCard{},
	}
	for _, appointment := range appointments {
		if filter != constvars.AppointmentFilterAll && appointment.Status != filter {
			continue
		}
		list.Appointments = append(list.Appointments, utils.BuildAppointmentCard(appointment, uc.Location))
	}

	if len(list.Appointments) == 0 {
		if filter == constvars.AppointmentFilterAll {
			list.EmptyMessage = constvars.EmptyAppointmentsAll
			list.ShowBookCTA = true
		} else {
			list.EmptyMessage = fmt.Sprintf(constvars.EmptyAppointmentsFiltered, filter)
		}
	}

	uc.Log.Info("appointmentUsecase.ListAppointments succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(list.Appointments)),
	)
	return list, nil
}

// canMove reports whether an appointment in status may become next. A
// reschedule keeps the scheduled status and needs an active appointment.
func canMove(status, next models.AppointmentStatus) bool {
	if next == models.AppointmentStatusScheduled {
		return status.IsActive()
	}
	return status.CanTransitionTo(next)
}

// findActive fetches the appointment and refuses anything that can no longer
// move to next.
func (uc *appointmentUsecase) findActive(ctx context.Context, appointmentID int, next models.AppointmentStatus, clientMessage string) (*responses.Appointment, error) {
	appointment, err := uc.AppointmentClient.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, exceptions.BuildNewCustomError(err, exceptions.StatusCode(err), clientMessage, constvars.ErrDevServerProcess)
	}

	if !canMove(models.AppointmentStatus(appointment.Status), next) {
		return nil, exceptions.ErrStatusTransition(appointment.Status, string(next))
	}
	return appointment, nil
}

func (uc *appointmentUsecase) CancelAppointment(ctx context.Context, appointmentID int) (*responses.AppointmentCard, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.CancelAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	appointment, err := uc.findActive(ctx, appointmentID, models.AppointmentStatusCancelled, constvars.ErrClientCancelAppointment)
	if err != nil {
		uc.Log.Error("appointmentUsecase.CancelAppointment error fetching appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if _, err := uc.AppointmentClient.Cancel(ctx, appointmentID); err != nil {
		uc.Log.Error("appointmentUsecase.CancelAppointment error cancelling appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.BuildNewCustomError(err, exceptions.StatusCode(err), constvars.ErrClientCancelAppointment, constvars.ErrDevServerProcess)
	}

	// the backend only acknowledges; the new status is reflected locally
	appointment.Status = constvars.AppointmentStatusCancelled
	uc.publish(ctx, constvars.BookingEventCancelled, appointment)

	card := utils.BuildAppointmentCard(*appointment, uc.Location)
	uc.Log.Info("appointmentUsecase.CancelAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return &card, nil
}

func (uc *appointmentUsecase) GetRescheduleForm(ctx context.Context, appointmentID int, date string) (*responses.RescheduleForm, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.GetRescheduleForm called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingDateKey, date),
	)

	appointment, err := uc.findActive(ctx, appointmentID, models.AppointmentStatusScheduled, constvars.ErrClientLoadAppointment)
	if err != nil {
		uc.Log.Error("appointmentUsecase.GetRescheduleForm error fetching appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	form := &responses.RescheduleForm{
		Appointment: utils.BuildAppointmentCard(*appointment, uc.Location),
		MinDate:     utils.Today(uc.Location),
		Selection:   uc.SlotFinder.Find(ctx, appointment.Stylist.ID, date, appointment.Duration),
	}
	return form, nil
}

func (uc *appointmentUsecase) RescheduleAppointment(ctx context.Context, appointmentID int, request *requests.RescheduleAppointmentForm) (*responses.AppointmentCard, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.RescheduleAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	newTime, err := utils.BuildSalonTimestamp(request.Date, request.Time, uc.Location)
	if err != nil {
		return nil, exceptions.ErrCannotParseTime(err)
	}

	appointment, err := uc.findActive(ctx, appointmentID, models.AppointmentStatusScheduled, constvars.ErrClientRescheduleAppointment)
	if err != nil {
		uc.Log.Error("appointmentUsecase.RescheduleAppointment error fetching appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	updated, err := uc.AppointmentClient.Reschedule(ctx, appointmentID, &requests.RescheduleAppointment{NewTime: newTime})
	if err != nil {
		uc.Log.Error("appointmentUsecase.RescheduleAppointment error rescheduling appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	// some backends answer with a bare acknowledgement
	if updated.ID == 0 {
		appointment.Time = newTime
		updated = appointment
	}
	uc.publish(ctx, constvars.BookingEventRescheduled, updated)

	card := utils.BuildAppointmentCard(*updated, uc.Location)
	uc.Log.Info("appointmentUsecase.RescheduleAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return &card, nil
}

// publish never fails the caller; a lost notification is only logged.
func (uc *appointmentUsecase) publish(ctx context.Context, eventType string, appointment *responses.Appointment) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	err := uc.Publisher.Publish(ctx, &models.BookingEvent{
		Type:          eventType,
		AppointmentID: appointment.ID,
		StylistID:     appointment.Stylist.ID,
		StylistName:   appointment.Stylist.Name,
		CustomerName:  appointment.Customer.Name,
		CustomerEmail: appointment.Customer.Email,
		Time:          appointment.Time,
		Duration:      appointment.Duration,
		OccurredAt:    time.Now(),
	})
	if err != nil {
		uc.Log.Warn("appointmentUsecase.publish error publishing booking event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEventTypeKey, eventType),
			zap.Error(err),
		)
	}
}
