package booking

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
	"errors"
	"time"

	"go.uber.org/zap"
)

type bookingUsecase struct {
	StylistUsecase    contracts.StylistUsecase
	CustomerClient    contracts.CustomerClient
	AppointmentClient contracts.AppointmentClient
	SlotFinder        *availability.SlotFinder
	Publisher         contracts.BookingEventPublisher
	DefaultDuration   int
	AllowedDurations  []int
	Location          *time.Location
	Log               *zap.Logger
}

func NewBookingUsecase(
	stylistUsecase contracts.StylistUsecase,
	customerClient contracts.CustomerClient,
	appointmentClient contracts.AppointmentClient,
	slotFinder *availability.SlotFinder,
	publisher contracts.BookingEventPublisher,
	defaultDuration int,
	allowedDurations []int,
	location *time.Location,
	logger *zap.Logger,
) contracts.BookingUsecase {
	if defaultDuration <= 0 {
		defaultDuration = constvars.DefaultAppointmentDurationInMinutes
	}
	if len(allowedDurations) == 0 {
		allowedDurations = []int{defaultDuration}
	}
	return &bookingUsecase{
		StylistUsecase:    stylistUsecase,
		CustomerClient:    customerClient,
		AppointmentClient: appointmentClient,
		SlotFinder:        slotFinder,
		Publisher:         publisher,
		DefaultDuration:   defaultDuration,
		AllowedDurations:  allowedDurations,
		Location:          location,
		Log:               logger,
	}
}

func (uc *bookingUsecase) isAllowedDuration(duration int) bool {
	for _, allowed := range uc.AllowedDurations {
		if allowed == duration {
			return true
		}
	}
	return false
}

// normalize fills in the default duration and drops a duration that is not
// offered.
func (uc *bookingUsecase) normalize(query *requests.BookingFormQuery) requests.BookingFormQuery {
	normalized := *query
	if !uc.isAllowedDuration(normalized.Duration) {
		normalized.Duration = uc.DefaultDuration
	}
	return normalized
}

func (uc *bookingUsecase) LoadBookingForm(ctx context.Context, query *requests.BookingFormQuery) (*responses.BookingForm, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	normalized := uc.normalize(query)
	uc.Log.Info("bookingUsecase.LoadBookingForm called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingStylistIDKey, normalized.StylistID),
		zap.String(constvars.LoggingDateKey, normalized.Date),
	)

	stylists, err := uc.StylistUsecase.ListStylists(ctx)
	if err != nil {
		return nil, exceptions.BuildNewCustomError(err, exceptions.StatusCode(err), constvars.ErrClientLoadStylists, constvars.ErrDevServerProcess)
	}

	form := &responses.BookingForm{
		Stylists:          stylists,
		SelectedStylistID: normalized.StylistID,
		MinDate:           utils.Today(uc.Location),
		Durations:         make([]responses.DurationOption, 0, len(uc.AllowedDurations)),
		Selection:         uc.SlotFinder.Find(ctx, normalized.StylistID, normalized.Date, normalized.Duration),
	}
	for _, duration := range uc.AllowedDurations {
		form.Durations = append(form.Durations, responses.DurationOption{
			Minutes:  duration,
			Selected: duration == normalized.Duration,
		})
	}
	return form, nil
}

// LoadSlots accepts any positive duration. The offered durations only bind
// BookAppointment; a rescheduled appointment keeps its own length.
func (uc *bookingUsecase) LoadSlots(ctx context.Context, query *requests.BookingFormQuery) (*responses.SlotSelection, error) {
	normalized := *query
	if normalized.Duration <= 0 {
		normalized.Duration = uc.DefaultDuration
	}
	selection := uc.SlotFinder.Find(ctx, normalized.StylistID, normalized.Date, normalized.Duration)
	return &selection, nil
}

// BookAppointment creates the customer and then the appointment. The two calls
// are not atomic; a failed appointment leaves the customer record behind.
func (uc *bookingUsecase) BookAppointment(ctx context.Context, request *requests.BookAppointment) (*responses.AppointmentCard, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.BookAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingStylistIDKey, request.StylistID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	if !uc.isAllowedDuration(request.Duration) {
		return nil, exceptions.ErrClientCustomMessage(errors.New(constvars.ErrClientDurationNotOffered))
	}

	appointmentTime, err := utils.BuildSalonTimestamp(request.Date, request.Time, uc.Location)
	if err != nil {
		return nil, exceptions.ErrCannotParseTime(err)
	}

	customer, err := uc.CustomerClient.Create(ctx, &requests.CreateCustomer{
		Name:  request.Name,
		Email: request.Email,
		Phone: request.Phone,
	})
	if err != nil {
		uc.Log.Error("bookingUsecase.BookAppointment error creating customer",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	appointment, err := uc.AppointmentClient.Create(ctx, &requests.CreateAppointment{
		Time:       appointmentTime,
		Duration:   request.Duration,
		CustomerID: customer.ID,
		StylistID:  request.StylistID,
		Status:     constvars.AppointmentStatusScheduled,
	})
	if err != nil {
		uc.Log.Error("bookingUsecase.BookAppointment error creating appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStylistIDKey, request.StylistID),
			zap.Error(err),
		)
		return nil, err
	}

	if appointment.Customer.ID == 0 {
		appointment.Customer = *customer
	}
	if appointment.Time == "" {
		appointment.Time = appointmentTime
		appointment.Duration = request.Duration
		appointment.Status = constvars.AppointmentStatusScheduled
	}

	err = uc.Publisher.Publish(ctx, &models.BookingEvent{
		Type:          constvars.BookingEventBooked,
		AppointmentID: appointment.ID,
		StylistID:     request.StylistID,
		StylistName:   appointment.Stylist.Name,
		CustomerName:  customer.Name,
		CustomerEmail: customer.Email,
		Time:          appointmentTime,
		Duration:      request.Duration,
		OccurredAt:    time.Now(),
	})
	if err != nil {
		uc.Log.Warn("bookingUsecase.BookAppointment error publishing booking event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	card := utils.BuildAppointmentCard(*appointment, uc.Location)
	uc.Log.Info("bookingUsecase.BookAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentIDKey, appointment.ID),
	)
	return &card, nil
}
