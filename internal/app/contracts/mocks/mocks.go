// Package mocks holds testify mocks of the contracts interfaces.
package mocks

import (
	"context"
	"cosmek-web/internal/app/models"
	"cosmek-web/internal/pkg/dto/requests"
	"cosmek-web/internal/pkg/dto/responses"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockStylistClient struct {
	mock.Mock
}

func (m *MockStylistClient) FindAll(ctx context.Context) ([]responses.Stylist, error) {
	args := m.Called(ctx)
	stylists, _ := args.Get(0).([]responses.Stylist)
	return stylists, args.Error(1)
}

func (m *MockStylistClient) FindByID(ctx context.Context, stylistID int) (*responses.Stylist, error) {
	args := m.Called(ctx, stylistID)
	stylist, _ := args.Get(0).(*responses.Stylist)
	return stylist, args.Error(1)
}

func (m *MockStylistClient) Create(ctx context.Context, request *requests.CreateStylist) (*responses.Stylist, error) {
	args := m.Called(ctx, request)
	stylist, _ := args.Get(0).(*responses.Stylist)
	return stylist, args.Error(1)
}

func (m *MockStylistClient) FindAvailability(ctx context.Context, request *requests.FindAvailability) (*responses.Availability, error) {
	args := m.Called(ctx, request)
	availability, _ := args.Get(0).(*responses.Availability)
	return availability, args.Error(1)
}

type MockCustomerClient struct {
	mock.Mock
}

func (m *MockCustomerClient) FindAll(ctx context.Context) ([]responses.Customer, error) {
	args := m.Called(ctx)
	customers, _ := args.Get(0).([]responses.Customer)
	return customers, args.Error(1)
}

func (m *MockCustomerClient) FindByID(ctx context.Context, customerID int) (*responses.Customer, error) {
	args := m.Called(ctx, customerID)
	customer, _ := args.Get(0).(*responses.Customer)
	return customer, args.Error(1)
}

func (m *MockCustomerClient) Create(ctx context.Context, request *requests.CreateCustomer) (*responses.Customer, error) {
	args := m.Called(ctx, request)
	customer, _ := args.Get(0).(*responses.Customer)
	return customer, args.Error(1)
}

type MockAppointmentClient struct {
	mock.Mock
}

func (m *MockAppointmentClient) FindAll(ctx context.Context) ([]responses.Appointment, error) {
	args := m.Called(ctx)
	appointments, _ := args.Get(0).([]responses.Appointment)
	return appointments, args.Error(1)
}

func (m *MockAppointmentClient) FindByID(ctx context.Context, appointmentID int) (*responses.Appointment, error) {
	args := m.Called(ctx, appointmentID)
	appointment, _ := args.Get(0).(*responses.Appointment)
	return appointment, args.Error(1)
}

func (m *MockAppointmentClient) Create(ctx context.Context, request *requests.CreateAppointment) (*responses.Appointment, error) {
	args := m.Called(ctx, request)
	appointment, _ := args.Get(0).(*responses.Appointment)
	return appointment, args.Error(1)
}

func (m *MockAppointmentClient) Cancel(ctx context.Context, appointmentID int) (*responses.CancelAppointment, error) {
	args := m.Called(ctx, appointmentID)
	result, _ := args.Get(0).(*responses.CancelAppointment)
	return result, args.Error(1)
}

func (m *MockAppointmentClient) Reschedule(ctx context.Context, appointmentID int, request *requests.RescheduleAppointment) (*responses.Appointment, error) {
	args := m.Called(ctx, appointmentID, request)
	appointment, _ := args.Get(0).(*responses.Appointment)
	return appointment, args.Error(1)
}

type MockStylistUsecase struct {
	mock.Mock
}

func (m *MockStylistUsecase) ListStylists(ctx context.Context) ([]responses.Stylist, error) {
	args := m.Called(ctx)
	stylists, _ := args.Get(0).([]responses.Stylist)
	return stylists, args.Error(1)
}

func (m *MockStylistUsecase) GetStylistProfile(ctx context.Context, stylistID int) (*responses.StylistProfile, error) {
	args := m.Called(ctx, stylistID)
	profile, _ := args.Get(0).(*responses.StylistProfile)
	return profile, args.Error(1)
}

func (m *MockStylistUsecase) CreateStylist(ctx context.Context, request *requests.CreateStylist) (*responses.Stylist, error) {
	args := m.Called(ctx, request)
	stylist, _ := args.Get(0).(*responses.Stylist)
	return stylist, args.Error(1)
}

type MockAppointmentUsecase struct {
	mock.Mock
}

func (m *MockAppointmentUsecase) ListAppointments(ctx context.Context, filter string) (*responses.AppointmentList, error) {
	args := m.Called(ctx, filter)
	list, _ := args.Get(0).(*responses.AppointmentList)
	return list, args.Error(1)
}

func (m *MockAppointmentUsecase) CancelAppointment(ctx context.Context, appointmentID int) (*responses.AppointmentCard, error) {
	args := m.Called(ctx, appointmentID)
	card, _ := args.Get(0).(*responses.AppointmentCard)
	return card, args.Error(1)
}

func (m *MockAppointmentUsecase) GetRescheduleForm(ctx context.Context, appointmentID int, date string) (*responses.RescheduleForm, error) {
	args := m.Called(ctx, appointmentID, date)
	form, _ := args.Get(0).(*responses.RescheduleForm)
	return form, args.Error(1)
}

func (m *MockAppointmentUsecase) RescheduleAppointment(ctx context.Context, appointmentID int, request *requests.RescheduleAppointmentForm) (*responses.AppointmentCard, error) {
	args := m.Called(ctx, appointmentID, request)
	card, _ := args.Get(0).(*responses.AppointmentCard)
	return card, args.Error(1)
}

type MockBookingUsecase struct {
	mock.Mock
}

func (m *MockBookingUsecase) LoadBookingForm(ctx context.Context, query *requests.BookingFormQuery) (*responses.BookingForm, error) {
	args := m.Called(ctx, query)
	form, _ := args.Get(0).(*responses.BookingForm)
	return form, args.Error(1)
}

func (m *MockBookingUsecase) LoadSlots(ctx context.Context, query *requests.BookingFormQuery) (*responses.SlotSelection, error) {
	args := m.Called(ctx, query)
	selection, _ := args.Get(0).(*responses.SlotSelection)
	return selection, args.Error(1)
}

func (m *MockBookingUsecase) BookAppointment(ctx context.Context, request *requests.BookAppointment) (*responses.AppointmentCard, error) {
	args := m.Called(ctx, request)
	card, _ := args.Get(0).(*responses.AppointmentCard)
	return card, args.Error(1)
}

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return m.Called(ctx, key, value, exp).Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

type MockBookingEventPublisher struct {
	mock.Mock
}

func (m *MockBookingEventPublisher) Publish(ctx context.Context, event *models.BookingEvent) error {
	return m.Called(ctx, event).Error(0)
}
