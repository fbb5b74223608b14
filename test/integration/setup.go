// Package integration provides helpers and integration tests for the flight
// search console. The tests run the real client, use case, session store and
// HTTP layer against a fake remote search endpoint.
package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	httpAdapter "github.com/flight-search/flight-search-console/internal/adapter/http"
	"github.com/flight-search/flight-search-console/internal/adapter/http/middleware"
	"github.com/flight-search/flight-search-console/internal/adapter/searchapi"
	"github.com/flight-search/flight-search-console/internal/domain"
	"github.com/flight-search/flight-search-console/internal/infrastructure/metrics"
	"github.com/flight-search/flight-search-console/internal/usecase"
	"github.com/flight-search/flight-search-console/test/mock"
)

// Options tweaks the assembled server.
type Options struct {
	Variant     domain.Variant
	Timeout     time.Duration
	MaxAttempts int
	Location    *time.Location
}

// TestServer wraps an Echo instance wired to a fake upstream.
type TestServer struct {
	Echo     *echo.Echo
	Upstream *mock.Upstream
	Sessions *usecase.SessionStore
	UseCase  usecase.FlightSearchUseCase
	Metrics  *metrics.Metrics
}

// NewTestServer starts upstream and assembles the console the way main does.
// The upstream is closed when the test ends.
func NewTestServer(t *testing.T, upstream *mock.Upstream, opts Options) *TestServer {
	t.Helper()

	upstream.Start()
	t.Cleanup(upstream.Close)

	log := zerolog.Nop()
	m := metrics.New()

	client := searchapi.NewClient(searchapi.Config{
		Endpoint: upstream.URL(),
		Timeout:  opts.Timeout,
		Metrics:  m,
		Logger:   log,
	})

	uc := usecase.NewFlightSearchUseCase(client, &usecase.Config{
		Variant:     opts.Variant,
		Location:    opts.Location,
		MaxAttempts: opts.MaxAttempts,
		Logger:      &log,
	})

	sessions := usecase.NewSessionStore(uc, usecase.SessionStoreConfig{
		Logger:       log,
		OnSizeChange: m.SetSessions,
	})

	renderer, err := httpAdapter.NewTemplateRenderer()
	if err != nil {
		t.Fatalf("load templates: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer

	middleware.Setup(e, log, m)
	httpAdapter.RegisterRoutes(e, httpAdapter.NewConsoleHandler(uc, sessions, httpAdapter.HandlerConfig{
		Location: opts.Location,
	}))
	e.GET("/metrics", echo.WrapHandler(m.Handler()))

	return &TestServer{
		Echo:     e,
		Upstream: upstream,
		Sessions: sessions,
		UseCase:  uc,
		Metrics:  m,
	}
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
	Cookies []*http.Cookie
}

func (ts *TestServer) do(req *http.Request) Response {
	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, req)
	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
		Cookies: rec.Result().Cookies(),
	}
}

// Search calls the JSON search endpoint with the given query parameters.
func (ts *TestServer) Search(params url.Values) Response {
	path := "/api/v1/flights/search"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}
	return ts.do(httptest.NewRequest(http.MethodGet, path, nil))
}

// Page renders the console page for the session in cookie, if any.
func (ts *TestServer) Page(cookie *http.Cookie) Response {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	addCookie(req, cookie)
	return ts.do(req)
}

// Submit posts the console form for the session in cookie, if any.
func (ts *TestServer) Submit(form url.Values, cookie *http.Cookie) Response {
	req := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	addCookie(req, cookie)
	return ts.do(req)
}

// Session fetches the JSON snapshot of the session in cookie, if any.
func (ts *TestServer) Session(cookie *http.Cookie) Response {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/session", nil)
	addCookie(req, cookie)
	return ts.do(req)
}

// NewSessionCookie creates a session in the store and returns a cookie
// naming it, as if an earlier submit had set it.
func (ts *TestServer) NewSessionCookie() *http.Cookie {
	session, _ := ts.Sessions.GetOrCreate("")
	return &http.Cookie{Name: httpAdapter.DefaultSessionCookie, Value: session.ID()}
}

// MetricsText scrapes the metrics endpoint.
func (ts *TestServer) MetricsText() string {
	return string(ts.do(httptest.NewRequest(http.MethodGet, "/metrics", nil)).Body)
}

func addCookie(req *http.Request, cookie *http.Cookie) {
	if cookie != nil {
		req.AddCookie(&http.Cookie{Name: cookie.Name, Value: cookie.Value})
	}
}

// SessionCookie returns the session cookie set by the response, or nil.
func (r Response) SessionCookie() *http.Cookie {
	for _, c := range r.Cookies {
		if c.Name == httpAdapter.DefaultSessionCookie {
			return c
		}
	}
	return nil
}

// ParseSearchResponse parses the response body as a SearchResponse.
func (r Response) ParseSearchResponse() (*httpAdapter.SearchResponse, error) {
	var resp httpAdapter.SearchResponse
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseSessionResponse parses the response body as a SessionResponse.
func (r Response) ParseSessionResponse() (*httpAdapter.SessionResponse, error) {
	var resp httpAdapter.SessionResponse
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseError parses the response body to extract error information.
func (r Response) ParseError() (map[string]interface{}, error) {
	var errResp map[string]interface{}
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return errResp, nil
}
