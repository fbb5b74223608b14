// Package http provides the HTTP layer of the flight search console: the
// server-rendered page, its JSON API and the mapping of domain errors to
// responses.
package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/flight-search/flight-search-console/internal/adapter/http/middleware"
	"github.com/flight-search/flight-search-console/internal/adapter/http/response"
	"github.com/flight-search/flight-search-console/internal/domain"
	"github.com/flight-search/flight-search-console/internal/usecase"
)

// DefaultSessionCookie names the cookie carrying the console session ID.
const DefaultSessionCookie = "flight_search_session"

// HandlerConfig contains configuration options for the handler.
type HandlerConfig struct {
	// Location is the zone form dates are read in (default: UTC)
	Location *time.Location

	// CookieName names the session cookie (default: DefaultSessionCookie)
	CookieName string

	// SecureCookie marks the session cookie Secure
	SecureCookie bool
}

// ConsoleHandler handles the console page and the JSON API.
type ConsoleHandler struct {
	useCase  usecase.FlightSearchUseCase
	sessions *usecase.SessionStore
	location *time.Location
	cookie   string
	secure   bool
}

// NewConsoleHandler creates a ConsoleHandler. The use case serves the
// stateless JSON search; sessions serve the page.
func NewConsoleHandler(uc usecase.FlightSearchUseCase, sessions *usecase.SessionStore, cfg HandlerConfig) *ConsoleHandler {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.CookieName == "" {
		cfg.CookieName = DefaultSessionCookie
	}
	return &ConsoleHandler{
		useCase:  uc,
		sessions: sessions,
		location: cfg.Location,
		cookie:   cfg.CookieName,
		secure:   cfg.SecureCookie,
	}
}

// Page handles GET /
// It renders the form and the results of the caller's session, or an empty
// form when the caller has none yet.
func (h *ConsoleHandler) Page(c echo.Context) error {
	session, ok := h.lookup(c)
	if !ok {
		return h.render(c, http.StatusOK, h.useCase.Variant(), domain.NewSearchState(), nil)
	}
	return h.render(c, http.StatusOK, session.Variant(), session.State(), nil)
}

// Submit handles POST /search
// It stores the submitted form in the session, runs one search and renders
// the page. A failed search keeps the previous results and shows no error;
// only input errors are shown.
func (h *ConsoleHandler) Submit(c echo.Context) error {
	session := h.session(c)

	variant := session.Variant()

	var form ConsoleForm
	if err := c.Bind(&form); err != nil {
		return h.render(c, http.StatusBadRequest, variant, session.State(), nil)
	}

	transition, errs := form.Transition(variant, h.location)
	state := session.Apply(transition)
	if errs.HasErrors() {
		return h.render(c, http.StatusBadRequest, variant, state, errs)
	}

	state, err := session.Search(c.Request().Context())
	switch {
	case err == nil:
		return h.render(c, http.StatusOK, variant, state, nil)
	case domain.IsInvalidRequest(err):
		errs = &ValidationErrors{}
		errs.Add(string(domain.FilterMaxPrice), "Max price must be a number")
		return h.render(c, http.StatusBadRequest, variant, state, errs)
	case domain.IsSearchInProgress(err):
		return h.render(c, http.StatusConflict, variant, state, nil)
	default:
		return h.render(c, http.StatusOK, variant, state, nil)
	}
}

// SearchFlights handles GET /api/v1/flights/search
//
// @Summary Search for flights
// @Description Runs one search against the remote endpoint and returns the normalized records. Parameters mirror the remote endpoint; an absent parameter means the filter is off.
// @Tags flights
// @Produce json
// @Param startDate query string false "First day, YYYY-MM-DD"
// @Param endDate query string false "Last day, YYYY-MM-DD"
// @Param origin query string false "Origin filter"
// @Param destination query string false "Destination filter"
// @Param airline query string false "Airline filter (extended variant)"
// @Param scale query bool false "Only itineraries with a stopover (extended variant)"
// @Param maxPrice query number false "Maximum price (basic variant)"
// @Success 200 {object} SwaggerSearchResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 502 {object} response.ErrorDetail "Remote search failed"
// @Failure 504 {object} response.ErrorDetail "Remote search timed out"
// @Router /api/v1/flights/search [get]
func (h *ConsoleHandler) SearchFlights(c echo.Context) error {
	form, err := ParseSearchParams(c.QueryParams()).ToForm(h.location)
	if err != nil {
		return h.handleValidationError(c, err)
	}

	flights, err := h.useCase.Search(c.Request().Context(), form)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.SearchResults(c, ToSearchResponse(flights, h.useCase.Variant()))
}

// SessionState handles GET /api/v1/session
//
// @Summary Get the console session
// @Description Returns the caller's session: form, results, loading flag and the kind of the last failure. A caller without a session gets an empty snapshot with no id; no session is created.
// @Tags session
// @Produce json
// @Success 200 {object} SwaggerSessionResponse
// @Router /api/v1/session [get]
func (h *ConsoleHandler) SessionState(c echo.Context) error {
	session, ok := h.lookup(c)
	if !ok {
		return response.OK(c, ToSessionResponse("", h.useCase.Variant(), domain.NewSearchState(), h.location))
	}
	return response.OK(c, ToSessionResponse(session.ID(), session.Variant(), session.State(), h.location))
}

// Health handles GET /health
//
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} response.HealthResponse
// @Router /health [get]
func (h *ConsoleHandler) Health(c echo.Context) error {
	return response.Health(c)
}

// lookup returns the session named by the request cookie without creating
// one. Read-only routes use it and never add to the store.
func (h *ConsoleHandler) lookup(c echo.Context) (*usecase.Session, bool) {
	cookie, err := c.Cookie(h.cookie)
	if err != nil || cookie.Value == "" {
		return nil, false
	}
	session, ok := h.sessions.Get(cookie.Value)
	if ok {
		middleware.SetSessionID(c, session.ID())
	}
	return session, ok
}

// session returns the caller's session, creating it and setting the cookie
// when the request carries none or an expired one.
func (h *ConsoleHandler) session(c echo.Context) *usecase.Session {
	var id string
	if cookie, err := c.Cookie(h.cookie); err == nil {
		id = cookie.Value
	}

	session, created := h.sessions.GetOrCreate(id)
	if created {
		c.SetCookie(&http.Cookie{
			Name:     h.cookie,
			Value:    session.ID(),
			Path:     "/",
			HttpOnly: true,
			Secure:   h.secure,
			SameSite: http.SameSiteLaxMode,
		})
	}
	middleware.SetSessionID(c, session.ID())
	return session
}

func (h *ConsoleHandler) render(c echo.Context, status int, variant domain.Variant, state domain.SearchState, errs *ValidationErrors) error {
	return c.Render(status, ConsoleTemplate, ToPageView(variant, state, h.location, errs))
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *ConsoleHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to HTTP responses. Deadlines are checked
// before *domain.SearchError since the client wraps them as transport errors.
func (h *ConsoleHandler) handleError(c echo.Context, err error) error {
	var searchErr *domain.SearchError
	switch {
	case domain.IsInvalidRequest(err):
		return response.ValidationErrorWithMessage(c, err.Error())
	case domain.IsSearchInProgress(err):
		return response.SearchInProgress(c)
	case errors.Is(err, context.DeadlineExceeded):
		return response.GatewayTimeout(c)
	case errors.Is(err, context.Canceled):
		return response.RequestCancelled(c)
	case errors.As(err, &searchErr):
		return response.BadGateway(c, string(searchErr.Kind))
	default:
		return response.InternalServerError(c)
	}
}
