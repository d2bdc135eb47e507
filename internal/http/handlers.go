package http

import (
	"bytes"
	"net/http"

	applog "foodlog/internal/log"
	"foodlog/internal/navigation"
	"foodlog/internal/services"
)

// pageData is the template model for a full page.
type pageData struct {
	services.View
	Pages      []navigation.Page
	IsCalendar bool
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if resp := RequireGET(r); resp != nil {
		resp.Write(w)
		return
	}

	view, err := s.session.View(r.Context())
	if err != nil {
		s.fail(w, r, "Failed to build view", err)
		return
	}

	s.render(w, r, "index", pageData{
		View:       view,
		Pages:      navigation.Pages(),
		IsCalendar: view.Page == navigation.Calendar,
	})
}

func (s *Server) handleOpenMenu(w http.ResponseWriter, r *http.Request) {
	if resp := RequirePOST(r); resp != nil {
		resp.Write(w)
		return
	}
	s.session.OpenMenu()
	NewHTMXResponse().Redirect(r, "/").Write(w)
}

func (s *Server) handleCloseMenu(w http.ResponseWriter, r *http.Request) {
	if resp := RequirePOST(r); resp != nil {
		resp.Write(w)
		return
	}
	s.session.CloseMenu()
	NewHTMXResponse().Redirect(r, "/").Write(w)
}

func (s *Server) handleNavigate(w http.ResponseWriter, r *http.Request) {
	if resp := RequirePOST(r); resp != nil {
		resp.Write(w)
		return
	}
	p := NewRequestBodyParser(w, r)
	if err := p.Parse(); err != nil {
		ParseError(err).Write(w)
		return
	}

	page, err := navigation.ParsePage(p.Get("page"))
	if err != nil {
		BadRequestError(err.Error()).Write(w)
		return
	}
	if err := s.session.Navigate(page); err != nil {
		BadRequestError(err.Error()).Write(w)
		return
	}

	applog.FromContext(r.Context()).DebugContext(r.Context(), "Navigated",
		applog.FieldOperation, applog.OpNavigate,
		applog.FieldPage, page.String())

	NewHTMXResponse().
		TriggerPageChanged(page.String()).
		Redirect(r, "/").
		Write(w)
}

// stagedResponse is returned to non-htmx clients after a staging event.
type stagedResponse struct {
	Value    string `json:"value"`
	Accepted bool   `json:"accepted"`
}

func (s *Server) handleStageFood(w http.ResponseWriter, r *http.Request) {
	if resp := RequirePOST(r); resp != nil {
		resp.Write(w)
		return
	}
	p := NewRequestBodyParser(w, r)
	if err := p.Parse(); err != nil {
		ParseError(err).Write(w)
		return
	}

	text, _ := p.First("value", "food")
	staged := s.session.SetFood(text)

	if isHTMX(r) {
		NewHTMXResponse().Status(http.StatusNoContent).Write(w)
		return
	}
	writeJSON(w, http.StatusOK, stagedResponse{Value: staged, Accepted: true})
}

// handleStageCalories proposes a new calorie text. A value containing a
// non-digit is dropped silently and the previous value is returned.
func (s *Server) handleStageCalories(w http.ResponseWriter, r *http.Request) {
	if resp := RequirePOST(r); resp != nil {
		resp.Write(w)
		return
	}
	p := NewRequestBodyParser(w, r)
	if err := p.Parse(); err != nil {
		ParseError(err).Write(w)
		return
	}

	text, _ := p.First("value", "calories")
	staged, ok := s.session.SetCalories(text)

	if isHTMX(r) {
		s.render(w, r, "calories-input", pageData{View: services.View{Calories: staged}})
		return
	}
	writeJSON(w, http.StatusOK, stagedResponse{Value: staged, Accepted: ok})
}

// handleSubmit commits the staged fields. A plain form post carries the
// field values too; they are staged first, exactly like keystrokes.
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if resp := RequirePOST(r); resp != nil {
		resp.Write(w)
		return
	}
	p := NewRequestBodyParser(w, r)
	if err := p.Parse(); err != nil {
		ParseError(err).Write(w)
		return
	}
	if p.Has("food") {
		s.session.SetFood(p.Get("food"))
	}
	if p.Has("calories") {
		s.session.SetCalories(p.Get("calories"))
	}

	submitted, err := s.session.Submit(r.Context())
	if err != nil {
		s.fail(w, r, "Failed to submit entry", err)
		return
	}

	resp := NewHTMXResponse()
	if submitted {
		resp.TriggerEntryLogged(s.session.Service().Today().String()).TriggerFormReset()
	}
	resp.Redirect(r, "/").Write(w)
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, name string, data any) {
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, name, data); err != nil {
		s.fail(w, r, "Failed to render template", err)
		return
	}
	NewHTMXResponse().BodyHTML(buf.String()).Write(w)
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, msg string, err error) {
	applog.NewStructuredLogger(applog.FromContext(r.Context())).
		LogError(r.Context(), msg, err, applog.ComponentHTTP, applog.OpRender, nil)
	InternalServerError("Something went wrong").Write(w)
}
