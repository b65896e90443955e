package controllers

import (
	"context"
	"cosmek-web/internal/app/config"
	"cosmek-web/internal/app/contracts/mocks"
	"cosmek-web/internal/app/delivery/http/views"
	"cosmek-web/internal/app/models"
	"cosmek-web/internal/pkg/constvars"
	"cosmek-web/internal/pkg/dto/requests"
	"cosmek-web/internal/pkg/dto/responses"
	"cosmek-web/internal/pkg/exceptions"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testDeps struct {
	router      *chi.Mux
	stylists    *mocks.MockStylistUsecase
	appointment *mocks.MockAppointmentUsecase
	booking     *mocks.MockBookingUsecase
}

func newTestDeps(t *testing.T) *testDeps {
	t.Helper()
	renderer, err := views.NewRenderer(2)
	require.NoError(t, err)

	internalConfig := &config.InternalConfig{
		App:   config.App{RequestTimeoutInSeconds: 5},
		Theme: config.AppTheme{CookieName: "cosmek_theme"},
	}
	log := zap.NewNop()

	deps := &testDeps{
		router:      chi.NewRouter(),
		stylists:    new(mocks.MockStylistUsecase),
		appointment: new(mocks.MockAppointmentUsecase),
		booking:     new(mocks.MockBookingUsecase),
	}

	pageController := NewPageController(log, renderer)
	stylistController := NewStylistController(log, renderer, internalConfig, deps.stylists)
	appointmentController := NewAppointmentController(log, renderer, internalConfig, deps.appointment)
	bookingController := NewBookingController(log, renderer, internalConfig, deps.booking)
	themeController := NewThemeController(log, internalConfig)

	r := deps.router
	r.NotFound(pageController.NotFound)
	r.Get("/", pageController.Home)
	r.Get("/about", pageController.About)
	r.Get("/healthz", NewHealthController().Healthz)
	r.Post("/theme/toggle", themeController.Toggle)
	r.Get("/stylists", stylistController.List)
	r.Post("/stylists", stylistController.Create)
	r.Get("/stylists/new", stylistController.New)
	r.Get("/stylists/{stylist_id}", stylistController.Detail)
	r.Get("/appointments", appointmentController.List)
	r.Post("/appointments/{appointment_id}/cancel", appointmentController.Cancel)
	r.Get("/appointments/{appointment_id}/reschedule", appointmentController.RescheduleForm)
	r.Post("/appointments/{appointment_id}/reschedule", appointmentController.Reschedule)
	r.Get("/book-appointment", bookingController.Form)
	r.Post("/book-appointment", bookingController.Book)
	r.Post("/book-appointment/check", bookingController.Check)
	r.Get("/book-appointment/slots", bookingController.Slots)
	r.Get("/book-appointment/{stylist_id}", bookingController.Form)

	return deps
}

func (d *testDeps) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	d.router.ServeHTTP(rec, req)
	return rec
}

func postForm(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationForm)
	return req
}

func testCard(status string) *responses.AppointmentCard {
	return &responses.AppointmentCard{
		Appointment: responses.Appointment{
			ID:       5,
			Duration: 60,
			Status:   status,
			Customer: responses.Customer{ID: 2, Name: "Jane Doe"},
			Stylist:  responses.Stylist{ID: 1, Name: "Meagan"},
		},
		StatusLabel: models.AppointmentStatus(status).Label(),
		DisplayDate: "Jun 1, 2025",
		DisplayTime: "10:00 AM - 11:00 AM",
		Active:      status == constvars.AppointmentStatusScheduled,
	}
}

func testBookingForm() *responses.BookingForm {
	return &responses.BookingForm{
		Stylists:  []responses.Stylist{{ID: 1, Name: "Meagan"}},
		MinDate:   "2025-06-01",
		Durations: []responses.DurationOption{{Minutes: 60, Selected: true}},
		Selection: responses.SlotSelection{Placeholder: constvars.SlotPlaceholderSelectFirst, Disabled: true},
	}
}

func TestPageController_HomeAboutNotFound(t *testing.T) {
	deps := newTestDeps(t)

	rec := deps.do(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Book Appointment")

	rec = deps.do(httptest.NewRequest(http.MethodGet, "/about", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Our Story")

	rec = deps.do(httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), constvars.ErrClientPageNotFound)
}

func TestHealthController_Healthz(t *testing.T) {
	deps := newTestDeps(t)

	rec := deps.do(httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
	assert.Contains(t, rec.Body.String(), constvars.HealthyMessage)
}

func TestThemeController_Toggle(t *testing.T) {
	deps := newTestDeps(t)

	req := postForm("/theme/toggle", url.Values{"return_to": {"/stylists"}})
	req = req.WithContext(context.WithValue(req.Context(), constvars.CONTEXT_THEME_KEY, models.ThemeLight))
	rec := deps.do(req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/stylists", rec.Header().Get(constvars.HeaderLocation))
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "cosmek_theme", cookies[0].Name)
	assert.Equal(t, constvars.ThemeDark, cookies[0].Value)
}

func TestThemeController_ToggleRejectsForeignReturn(t *testing.T) {
	deps := newTestDeps(t)

	rec := deps.do(postForm("/theme/toggle", url.Values{"return_to": {"https://evil.example"}}))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get(constvars.HeaderLocation))
}

func malformedForm(target string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader("return_to=%zz"))
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationForm)
	return req
}

func TestThemeController_ToggleMalformedForm(t *testing.T) {
	deps := newTestDeps(t)

	rec := deps.do(malformedForm("/theme/toggle"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, rec.Result().Cookies())
}

func TestStylistController_List(t *testing.T) {
	deps := newTestDeps(t)
	deps.stylists.On("ListStylists", mock.Anything).Return([]responses.Stylist{{ID: 1, Name: "Meagan", Email: "meagan@example.com"}}, nil)

	rec := deps.do(httptest.NewRequest(http.MethodGet, "/stylists", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "meagan@example.com")
	deps.stylists.AssertExpectations(t)
}

func TestStylistController_ListFailure(t *testing.T) {
	deps := newTestDeps(t)
	deps.stylists.On("ListStylists", mock.Anything).
		Return(nil, exceptions.ErrSendHTTPRequest(errors.New("connection refused"), constvars.ErrClientLoadStylists))

	rec := deps.do(httptest.NewRequest(http.MethodGet, "/stylists", nil))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), constvars.ErrClientLoadStylists)
}

func TestStylistController_CreateSuccess(t *testing.T) {
	deps := newTestDeps(t)
	deps.stylists.On("CreateStylist", mock.Anything, &requests.CreateStylist{Name: "Meagan", Email: "meagan@example.com"}).
		Return(&responses.Stylist{ID: 9, Name: "Meagan", Email: "meagan@example.com"}, nil)

	rec := deps.do(postForm("/stylists", url.Values{"name": {" Meagan "}, "email": {"meagan@example.com"}}))

	body := rec.Body.String()
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body, constvars.CreateStylistSuccessMessage)
	assert.Contains(t, body, `content="2;url=/stylists"`)
	deps.stylists.AssertExpectations(t)
}

func TestStylistController_CreateShowsBackendMessage(t *testing.T) {
	deps := newTestDeps(t)
	deps.stylists.On("CreateStylist", mock.Anything, mock.Anything).
		Return(nil, exceptions.ErrSalonAPIRequest(nil, http.StatusUnprocessableEntity, "Email has already been taken", "POST", "/stylists"))

	rec := deps.do(postForm("/stylists", url.Values{"name": {"Meagan"}, "email": {"meagan@example.com"}}))

	body := rec.Body.String()
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, body, "Email has already been taken")
	assert.Contains(t, body, `value="meagan@example.com"`)
}

func TestStylistController_Detail(t *testing.T) {
	deps := newTestDeps(t)
	deps.stylists.On("GetStylistProfile", mock.Anything, 1).Return(&responses.StylistProfile{
		Stylist:  responses.Stylist{ID: 1, Name: "Meagan", Email: "meagan@example.com"},
		Upcoming: []responses.AppointmentCard{},
		Past:     []responses.AppointmentCard{*testCard(constvars.AppointmentStatusCompleted)},
	}, nil)

	rec := deps.do(httptest.NewRequest(http.MethodGet, "/stylists/1", nil))

	body := rec.Body.String()
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body, constvars.EmptyUpcomingAppointments)
	assert.Contains(t, body, "Past Appointments")
	assert.Contains(t, body, `href="/book-appointment/1"`)
}

func TestStylistController_DetailNotFound(t *testing.T) {
	deps := newTestDeps(t)
	deps.stylists.On("GetStylistProfile", mock.Anything, 42).
		Return(nil, exceptions.ErrSalonAPIRequest(nil, http.StatusNotFound, constvars.ErrClientLoadStylistDetails, "GET", "/stylists/42"))

	rec := deps.do(httptest.NewRequest(http.MethodGet, "/stylists/42", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), constvars.ErrClientStylistNotFound)
}

func TestStylistController_DetailInvalidID(t *testing.T) {
	deps := newTestDeps(t)

	rec := deps.do(httptest.NewRequest(http.MethodGet, "/stylists/abc", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	deps.stylists.AssertNotCalled(t, "GetStylistProfile", mock.Anything, mock.Anything)
}

func TestAppointmentController_ListEmpty(t *testing.T) {
	deps := newTestDeps(t)
	deps.appointment.On("ListAppointments", mock.Anything, "cancelled").Return(&responses.AppointmentList{
		Filter:       "cancelled",
		Filters:      []responses.AppointmentFilter{{Value: "all", Label: "All"}, {Value: "cancelled", Label: "Cancelled", Active: true}},
		Appointments: []responses.AppointmentCard{},
		EmptyMessage: "No cancelled appointments found.",
	}, nil)

	rec := deps.do(httptest.NewRequest(http.MethodGet, "/appointments?status=cancelled", nil))

	body := rec.Body.String()
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body, "No cancelled appointments found.")
	assert.Contains(t, body, `class="active">Cancelled`)
}

func TestAppointmentController_CancelFragment(t *testing.T) {
	deps := newTestDeps(t)
	deps.appointment.On("CancelAppointment", mock.Anything, 5).Return(testCard(constvars.AppointmentStatusCancelled), nil)

	req := postForm("/appointments/5/cancel", url.Values{"return_to": {"/appointments?status=all"}})
	req.Header.Set(constvars.HeaderXRequestedWith, constvars.HeaderValueFetch)
	rec := deps.do(req)

	body := rec.Body.String()
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(body), `<div class="card cancelled"`))
	assert.NotContains(t, body, "<html")
}

func TestAppointmentController_CancelRedirects(t *testing.T) {
	deps := newTestDeps(t)
	deps.appointment.On("CancelAppointment", mock.Anything, 5).Return(testCard(constvars.AppointmentStatusCancelled), nil)

	rec := deps.do(postForm("/appointments/5/cancel", url.Values{"return_to": {"/stylists/1"}}))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/stylists/1", rec.Header().Get(constvars.HeaderLocation))
}

func TestAppointmentController_CancelMalformedForm(t *testing.T) {
	deps := newTestDeps(t)

	req := malformedForm("/appointments/5/cancel")
	req.Header.Set(constvars.HeaderXRequestedWith, constvars.HeaderValueFetch)
	rec := deps.do(req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), constvars.ErrClientCannotProcessRequest)
	deps.appointment.AssertNotCalled(t, "CancelAppointment", mock.Anything, mock.Anything)
}

func TestAppointmentController_CancelConflict(t *testing.T) {
	deps := newTestDeps(t)
	deps.appointment.On("CancelAppointment", mock.Anything, 5).
		Return(nil, exceptions.ErrStatusTransition(constvars.AppointmentStatusCompleted, constvars.AppointmentStatusCancelled))

	req := postForm("/appointments/5/cancel", url.Values{})
	req.Header.Set(constvars.HeaderXRequestedWith, constvars.HeaderValueFetch)
	rec := deps.do(req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), constvars.ErrClientAppointmentNotActive)
}

func TestAppointmentController_RescheduleForm(t *testing.T) {
	deps := newTestDeps(t)
	deps.appointment.On("GetRescheduleForm", mock.Anything, 5, "2025-06-02").Return(&responses.RescheduleForm{
		Appointment: *testCard(constvars.AppointmentStatusScheduled),
		MinDate:     "2025-06-01",
		Selection: responses.SlotSelection{
			StylistID:   1,
			Date:        "2025-06-02",
			Duration:    60,
			Slots:       []responses.TimeSlot{{Value: "14:00", Label: "2:00 PM"}},
			Placeholder: constvars.SlotPlaceholderChoose,
		},
	}, nil)

	rec := deps.do(httptest.NewRequest(http.MethodGet, "/appointments/5/reschedule?date=2025-06-02&time=14:00", nil))

	body := rec.Body.String()
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body, `<option value="14:00" selected>2:00 PM</option>`)
	assert.Contains(t, body, `action="/appointments/5/reschedule"`)
}

func TestAppointmentController_RescheduleSuccess(t *testing.T) {
	deps := newTestDeps(t)
	deps.appointment.On("RescheduleAppointment", mock.Anything, 5, &requests.RescheduleAppointmentForm{Date: "2025-06-02", Time: "14:00"}).
		Return(testCard(constvars.AppointmentStatusScheduled), nil)

	rec := deps.do(postForm("/appointments/5/reschedule", url.Values{"date": {"2025-06-02"}, "time": {"14:00"}}))

	body := rec.Body.String()
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body, constvars.RescheduleAppointmentSuccessMessage)
	assert.Contains(t, body, `url=/appointments`)
}

func TestBookingController_FormPreselectsStylist(t *testing.T) {
	deps := newTestDeps(t)
	form := testBookingForm()
	form.SelectedStylistID = 1
	deps.booking.On("LoadBookingForm", mock.Anything, &requests.BookingFormQuery{StylistID: 1}).Return(form, nil)

	rec := deps.do(httptest.NewRequest(http.MethodGet, "/book-appointment/1", nil))

	body := rec.Body.String()
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body, `<option value="1" selected>Meagan</option>`)
	assert.Contains(t, body, constvars.SlotPlaceholderSelectFirst)
	deps.booking.AssertExpectations(t)
}

func TestBookingController_FormFailure(t *testing.T) {
	deps := newTestDeps(t)
	deps.booking.On("LoadBookingForm", mock.Anything, mock.Anything).
		Return(nil, exceptions.BuildNewCustomError(nil, http.StatusBadGateway, constvars.ErrClientLoadStylists, constvars.ErrDevServerProcess))

	rec := deps.do(httptest.NewRequest(http.MethodGet, "/book-appointment", nil))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), constvars.ErrClientLoadStylists)
}

func TestBookingController_CheckKeepsCustomerDetailsInBody(t *testing.T) {
	deps := newTestDeps(t)
	deps.booking.On("LoadBookingForm", mock.Anything, &requests.BookingFormQuery{StylistID: 1, Date: "2025-06-02", Duration: 60}).
		Return(testBookingForm(), nil)

	rec := deps.do(postForm("/book-appointment/check", url.Values{
		"name":       {"Jane Doe"},
		"email":      {"jane@example.com"},
		"phone":      {"+1 671 555 0100"},
		"stylist_id": {"1"},
		"date":       {"2025-06-02"},
		"duration":   {"60"},
	}))

	body := rec.Body.String()
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body, `value="Jane Doe"`)
	assert.Contains(t, body, `formaction="/book-appointment/check" formmethod="post"`)
	assert.NotContains(t, body, `formmethod="get"`)
	deps.booking.AssertExpectations(t)
}

func TestBookingController_Slots(t *testing.T) {
	deps := newTestDeps(t)
	deps.booking.On("LoadSlots", mock.Anything, &requests.BookingFormQuery{StylistID: 1, Date: "2025-06-02", Duration: 60}).
		Return(&responses.SlotSelection{
			StylistID:   1,
			Date:        "2025-06-02",
			Duration:    60,
			Slots:       []responses.TimeSlot{{Value: "09:00", Label: "9:00 AM"}},
			Placeholder: constvars.SlotPlaceholderChoose,
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/book-appointment/slots?stylist_id=1&date=2025-06-02&duration=60", nil)
	req.Header.Set(constvars.HeaderXRequestedWith, constvars.HeaderValueFetch)
	rec := deps.do(req)

	body := rec.Body.String()
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body, `data-key="1|2025-06-02|60"`)
	assert.Contains(t, body, `<option value="09:00">9:00 AM</option>`)
	assert.NotContains(t, body, "<html")
}

func TestBookingController_BookSuccess(t *testing.T) {
	deps := newTestDeps(t)
	expected := &requests.BookAppointment{
		Name:      "Jane Doe",
		Email:     "jane@example.com",
		Phone:     "671-555-0100",
		StylistID: 1,
		Date:      "2025-06-02",
		Time:      "10:00",
		Duration:  60,
	}
	deps.booking.On("BookAppointment", mock.Anything, expected).Return(testCard(constvars.AppointmentStatusScheduled), nil)

	rec := deps.do(postForm("/book-appointment", url.Values{
		"name":       {"Jane Doe"},
		"email":      {"jane@example.com"},
		"phone":      {"671-555-0100"},
		"stylist_id": {"1"},
		"date":       {"2025-06-02"},
		"time":       {"10:00"},
		"duration":   {"60"},
	}))

	body := rec.Body.String()
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body, constvars.BookAppointmentSuccessMessage)
	assert.Contains(t, body, `content="2;url=/appointments"`)
	deps.booking.AssertExpectations(t)
}

func TestBookingController_BookFailureKeepsForm(t *testing.T) {
	deps := newTestDeps(t)
	deps.booking.On("BookAppointment", mock.Anything, mock.Anything).
		Return(nil, exceptions.ErrSalonAPIRequest(nil, http.StatusUnprocessableEntity, "Time slot is not available", "POST", "/appointments"))
	deps.booking.On("LoadBookingForm", mock.Anything, &requests.BookingFormQuery{StylistID: 1, Date: "2025-06-02", Duration: 60}).
		Return(testBookingForm(), nil)

	rec := deps.do(postForm("/book-appointment", url.Values{
		"name":       {"Jane Doe"},
		"email":      {"jane@example.com"},
		"phone":      {"671-555-0100"},
		"stylist_id": {"1"},
		"date":       {"2025-06-02"},
		"time":       {"10:00"},
		"duration":   {"60"},
	}))

	body := rec.Body.String()
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, body, "Time slot is not available")
	assert.Contains(t, body, `value="Jane Doe"`)
	assert.Contains(t, body, `id="booking-form"`)
}
