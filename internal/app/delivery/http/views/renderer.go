package views

import (
	"bytes"
	"cosmek-web/internal/app/models"
	"cosmek-web/internal/pkg/constvars"
	"cosmek-web/internal/pkg/dto/responses"
	"cosmek-web/internal/pkg/exceptions"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strings"
	"time"
)

//go:embed templates
var templateFS embed.FS

const (
	PageHome          = "home"
	PageAbout         = "about"
	PageStylists      = "stylists"
	PageStylistNew    = "stylist_new"
	PageStylistDetail = "stylist_detail"
	PageAppointments  = "appointments"
	PageBook          = "book"
	PageReschedule    = "reschedule"
	PageError         = "error"
)

const (
	FragmentAppointmentCard = "appointment_card"
	FragmentSlotSelect      = "slot_select"
)

var pageNames = []string{
	PageHome,
	PageAbout,
	PageStylists,
	PageStylistNew,
	PageStylistDetail,
	PageAppointments,
	PageBook,
	PageReschedule,
	PageError,
}

// Page is the data every full page is rendered with. Data holds the page
// specific payload.
type Page struct {
	Title         string
	AppName       string
	Theme         models.Theme
	CurrentPath   string
	ReturnTo      string
	Error         string
	Success       string
	RedirectURL   string
	RedirectDelay int
	Year          int
	Form          url.Values
	Data          interface{}
}

// CardView is the data of the appointment_card template.
type CardView struct {
	Card     responses.AppointmentCard
	ReturnTo string
}

type Renderer struct {
	pages         map[string]*template.Template
	fragments     *template.Template
	redirectDelay int
}

func NewRenderer(redirectDelayInSeconds int) (*Renderer, error) {
	renderer := &Renderer{
		pages:         make(map[string]*template.Template, len(pageNames)),
		redirectDelay: redirectDelayInSeconds,
	}

	for _, name := range pageNames {
		tmpl, err := template.New(name).Funcs(templateFuncs()).ParseFS(
			templateFS,
			"templates/layout.html",
			"templates/partials/*.html",
			fmt.Sprintf("templates/pages/%s.html", name),
		)
		if err != nil {
			return nil, err
		}
		renderer.pages[name] = tmpl
	}

	fragments, err := template.New("fragments").Funcs(templateFuncs()).ParseFS(templateFS, "templates/partials/*.html")
	if err != nil {
		return nil, err
	}
	renderer.fragments = fragments

	return renderer, nil
}

// NewPage prepares a page for the current request, theme included.
func NewPage(r *http.Request, title string) *Page {
	theme, ok := r.Context().Value(constvars.CONTEXT_THEME_KEY).(models.Theme)
	if !ok {
		theme = models.ThemeLight
	}
	return &Page{
		Title:       title,
		Theme:       theme,
		CurrentPath: r.URL.Path,
		ReturnTo:    r.URL.RequestURI(),
	}
}

// RenderPage writes a full page. Nothing is written when the template fails.
func (rd *Renderer) RenderPage(w http.ResponseWriter, code int, name string, page *Page) error {
	tmpl, ok := rd.pages[name]
	if !ok {
		return exceptions.ErrRenderTemplate(fmt.Errorf("unknown page %q", name), name)
	}

	page.AppName = constvars.AppName
	page.Year = time.Now().Year()
	if page.RedirectURL != "" && page.RedirectDelay == 0 {
		page.RedirectDelay = rd.redirectDelay
	}

	var buf bytes.Buffer
	err := tmpl.ExecuteTemplate(&buf, "layout", page)
	if err != nil {
		return exceptions.ErrRenderTemplate(err, name)
	}
	return write(w, code, &buf)
}

// RenderFragment writes a single partial, used by in-page requests.
func (rd *Renderer) RenderFragment(w http.ResponseWriter, code int, name string, data interface{}) error {
	var buf bytes.Buffer
	err := rd.fragments.ExecuteTemplate(&buf, name, data)
	if err != nil {
		return exceptions.ErrRenderTemplate(err, name)
	}
	return write(w, code, &buf)
}

func write(w http.ResponseWriter, code int, buf *bytes.Buffer) error {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMETextHTMLCharsetUTF8)
	w.Header().Set(constvars.HeaderXContentTypeOpt, "nosniff")
	w.WriteHeader(code)
	_, err := buf.WriteTo(w)
	return err
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"isActive": isActive,
		"cardView": func(card responses.AppointmentCard, returnTo string) CardView {
			return CardView{Card: card, ReturnTo: returnTo}
		},
		"emptyStylists": func() string { return constvars.EmptyStylists },
		"emptyUpcoming": func() string { return constvars.EmptyUpcomingAppointments },
	}
}

func isActive(current, path string) bool {
	if path == "/" {
		return current == "/"
	}
	return current == path || strings.HasPrefix(current, path+"/")
}
