package views

import (
	"context"
	"cosmek-web/internal/app/models"
	"cosmek-web/internal/pkg/constvars"
	"cosmek-web/internal/pkg/dto/responses"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	renderer, err := NewRenderer(2)
	require.NoError(t, err)
	return renderer
}

func scheduledCard() responses.AppointmentCard {
	return responses.AppointmentCard{
		Appointment: responses.Appointment{
			ID:       7,
			Duration: 60,
			Status:   constvars.AppointmentStatusScheduled,
			Customer: responses.Customer{Name: "Jane Doe"},
			Stylist:  responses.Stylist{ID: 1, Name: "Meagan"},
		},
		StatusLabel: "Scheduled",
		DisplayDate: "Jun 1, 2025",
		DisplayTime: "10:00 AM - 11:00 AM",
		Active:      true,
	}
}

func TestNewRenderer_ParsesEveryPage(t *testing.T) {
	renderer := newTestRenderer(t)
	for _, name := range pageNames {
		assert.Contains(t, renderer.pages, name)
	}
}

func TestNewPage_ReadsThemeFromContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/appointments?status=cancelled", nil)
	req = req.WithContext(context.WithValue(req.Context(), constvars.CONTEXT_THEME_KEY, models.ThemeDark))

	page := NewPage(req, "Appointments")

	assert.Equal(t, models.ThemeDark, page.Theme)
	assert.Equal(t, "/appointments", page.CurrentPath)
	assert.Equal(t, "/appointments?status=cancelled", page.ReturnTo)
}

func TestNewPage_DefaultsToLightTheme(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, models.ThemeLight, NewPage(req, "").Theme)
}

func TestRenderPage_Stylists(t *testing.T) {
	renderer := newTestRenderer(t)
	req := httptest.NewRequest(http.MethodGet, "/stylists", nil)
	page := NewPage(req, "Stylists")
	page.Data = []responses.Stylist{{ID: 3, Name: "Meagan", Email: "meagan@example.com"}}

	rec := httptest.NewRecorder()
	err := renderer.RenderPage(rec, http.StatusOK, PageStylists, page)
	require.NoError(t, err)

	body := rec.Body.String()
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, constvars.MIMETextHTMLCharsetUTF8, rec.Header().Get(constvars.HeaderContentType))
	assert.Contains(t, body, "Meagan")
	assert.Contains(t, body, `href="/stylists/3"`)
	assert.Contains(t, body, `href="/book-appointment/3"`)
	assert.Contains(t, body, constvars.AppName)
	assert.NotContains(t, body, "No stylists found")
}

func TestRenderPage_StylistsEmptyState(t *testing.T) {
	renderer := newTestRenderer(t)
	page := NewPage(httptest.NewRequest(http.MethodGet, "/stylists", nil), "Stylists")
	page.Data = []responses.Stylist{}

	rec := httptest.NewRecorder()
	require.NoError(t, renderer.RenderPage(rec, http.StatusOK, PageStylists, page))

	assert.Contains(t, rec.Body.String(), "No stylists found")
}

func TestRenderPage_ErrorHidesContent(t *testing.T) {
	renderer := newTestRenderer(t)
	page := NewPage(httptest.NewRequest(http.MethodGet, "/stylists", nil), "Stylists")
	page.Error = constvars.ErrClientLoadStylists

	rec := httptest.NewRecorder()
	require.NoError(t, renderer.RenderPage(rec, http.StatusBadGateway, PageStylists, page))

	body := rec.Body.String()
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, body, constvars.ErrClientLoadStylists)
	assert.NotContains(t, body, "No stylists found")
}

func TestRenderPage_RedirectMeta(t *testing.T) {
	renderer := newTestRenderer(t)
	page := NewPage(httptest.NewRequest(http.MethodPost, "/stylists", nil), "Add Stylist")
	page.Success = constvars.CreateStylistSuccessMessage
	page.RedirectURL = "/stylists"

	rec := httptest.NewRecorder()
	require.NoError(t, renderer.RenderPage(rec, http.StatusOK, PageStylistNew, page))

	body := rec.Body.String()
	assert.Contains(t, body, `content="2;url=/stylists"`)
	assert.Contains(t, body, constvars.CreateStylistSuccessMessage)
	assert.NotContains(t, body, "<form method=\"post\" action=\"/stylists\"")
}

func TestRenderPage_DarkTheme(t *testing.T) {
	renderer := newTestRenderer(t)
	page := &Page{Theme: models.ThemeDark, CurrentPath: "/about", ReturnTo: "/about"}

	rec := httptest.NewRecorder()
	require.NoError(t, renderer.RenderPage(rec, http.StatusOK, PageAbout, page))

	body := rec.Body.String()
	assert.Contains(t, body, `data-theme="dark"`)
	assert.Contains(t, body, "Light mode")
	assert.Contains(t, body, `<a href="/about" class="active">About</a>`)
}

func TestRenderPage_BookingFormKeepsInput(t *testing.T) {
	renderer := newTestRenderer(t)
	page := NewPage(httptest.NewRequest(http.MethodPost, "/book-appointment", nil), "Book")
	page.Error = "Email must be a valid email"
	page.Form = url.Values{"name": {"Jane Doe"}, "email": {"jane"}}
	page.Data = &responses.BookingForm{
		Stylists:          []responses.Stylist{{ID: 1, Name: "Meagan"}, {ID: 2, Name: "Kim"}},
		SelectedStylistID: 2,
		MinDate:           "2025-06-01",
		Durations:         []responses.DurationOption{{Minutes: 60, Selected: true}},
		Selection: responses.SlotSelection{
			StylistID:   2,
			Date:        "2025-06-02",
			Duration:    60,
			Slots:       []responses.TimeSlot{{Value: "10:00", Label: "10:00 AM"}},
			Placeholder: constvars.SlotPlaceholderChoose,
			Selected:    "10:00",
		},
	}

	rec := httptest.NewRecorder()
	require.NoError(t, renderer.RenderPage(rec, http.StatusUnprocessableEntity, PageBook, page))

	body := rec.Body.String()
	assert.Contains(t, body, `value="Jane Doe"`)
	assert.Contains(t, body, `<option value="2" selected>Kim</option>`)
	assert.Contains(t, body, `<option value="10:00" selected>10:00 AM</option>`)
	assert.Contains(t, body, `data-key="2|2025-06-02|60"`)
	assert.Contains(t, body, `getElementById("booking-form")`)
}

func TestRenderPage_UnknownPage(t *testing.T) {
	renderer := newTestRenderer(t)
	err := renderer.RenderPage(httptest.NewRecorder(), http.StatusOK, "missing", &Page{})
	assert.Error(t, err)
}

func TestRenderFragment_AppointmentCard(t *testing.T) {
	renderer := newTestRenderer(t)

	rec := httptest.NewRecorder()
	err := renderer.RenderFragment(rec, http.StatusOK, FragmentAppointmentCard, CardView{Card: scheduledCard(), ReturnTo: "/appointments"})
	require.NoError(t, err)

	body := rec.Body.String()
	assert.Contains(t, body, "Appointment with Meagan")
	assert.Contains(t, body, "10:00 AM - 11:00 AM (60 mins)")
	assert.Contains(t, body, `action="/appointments/7/cancel"`)
	assert.Contains(t, body, `value="/appointments"`)
}

func TestRenderFragment_CancelledCardHasNoActions(t *testing.T) {
	renderer := newTestRenderer(t)
	card := scheduledCard()
	card.Status = constvars.AppointmentStatusCancelled
	card.StatusLabel = "Cancelled"
	card.Active = false

	rec := httptest.NewRecorder()
	require.NoError(t, renderer.RenderFragment(rec, http.StatusOK, FragmentAppointmentCard, CardView{Card: card}))

	body := rec.Body.String()
	assert.Contains(t, body, `class="card cancelled"`)
	assert.NotContains(t, body, "Reschedule")
}

func TestRenderFragment_DisabledSlotSelect(t *testing.T) {
	renderer := newTestRenderer(t)
	selection := responses.SlotSelection{Placeholder: constvars.SlotPlaceholderSelectFirst, Disabled: true}

	rec := httptest.NewRecorder()
	require.NoError(t, renderer.RenderFragment(rec, http.StatusOK, FragmentSlotSelect, selection))

	body := rec.Body.String()
	assert.Contains(t, body, " disabled")
	assert.Contains(t, body, constvars.SlotPlaceholderSelectFirst)
}

func TestIsActive(t *testing.T) {
	assert.True(t, isActive("/", "/"))
	assert.False(t, isActive("/stylists", "/"))
	assert.True(t, isActive("/stylists/3", "/stylists"))
	assert.False(t, isActive("/stylistsx", "/stylists"))
}

func TestRenderPage_AppointmentsGridCarriesFilter(t *testing.T) {
	renderer := newTestRenderer(t)
	page := NewPage(httptest.NewRequest(http.MethodGet, "/appointments?status=scheduled", nil), "Appointments")
	page.Data = &responses.AppointmentList{
		Filter:       constvars.AppointmentStatusScheduled,
		Appointments: []responses.AppointmentCard{scheduledCard()},
		EmptyMessage: "No scheduled appointments found.",
	}

	rec := httptest.NewRecorder()
	require.NoError(t, renderer.RenderPage(rec, http.StatusOK, PageAppointments, page))

	body := rec.Body.String()
	assert.Contains(t, body, `data-statuses="scheduled" data-empty="No scheduled appointments found."`)
	assert.Contains(t, body, `data-status="scheduled"`)
}

func TestRenderPage_AppointmentsGridAcceptsAnyStatusForAll(t *testing.T) {
	renderer := newTestRenderer(t)
	page := NewPage(httptest.NewRequest(http.MethodGet, "/appointments", nil), "Appointments")
	page.Data = &responses.AppointmentList{
		Filter:       "all",
		Appointments: []responses.AppointmentCard{scheduledCard()},
	}

	rec := httptest.NewRecorder()
	require.NoError(t, renderer.RenderPage(rec, http.StatusOK, PageAppointments, page))

	assert.Contains(t, rec.Body.String(), `data-statuses=""`)
}

func TestRenderPage_StylistDetailUpcomingMovesToPast(t *testing.T) {
	renderer := newTestRenderer(t)
	page := NewPage(httptest.NewRequest(http.MethodGet, "/stylists/1", nil), "Meagan")
	page.Data = &responses.StylistProfile{
		Stylist:  responses.Stylist{ID: 1, Name: "Meagan"},
		Upcoming: []responses.AppointmentCard{scheduledCard()},
		Past:     []responses.AppointmentCard{},
	}

	rec := httptest.NewRecorder()
	require.NoError(t, renderer.RenderPage(rec, http.StatusOK, PageStylistDetail, page))

	body := rec.Body.String()
	assert.Contains(t, body, `data-statuses="scheduled"`)
	assert.Contains(t, body, `data-moves-to="past-appointments"`)
	assert.Contains(t, body, `<section id="past-section" hidden>`)
	assert.Contains(t, body, `id="past-appointments" data-statuses="completed cancelled"`)
	assert.Contains(t, body, `card.remove()`)
}
