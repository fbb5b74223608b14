// Package mock provides test doubles for the flight search console.
// Upstream stands in for the remote search endpoint in integration tests
// and can be configured to answer slowly, fail, or return any body.
package mock

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"time"

	"github.com/flight-search/flight-search-console/internal/domain"
)

// SearchPath is the path Upstream serves searches on.
const SearchPath = "/api/flights/search"

// Upstream is a configurable fake of the remote flight search endpoint.
type Upstream struct {
	mu        sync.Mutex
	status    int
	body      []byte
	delay      time.Duration
	failFirst  int
	failStatus int
	queries    []url.Values

	server *httptest.Server
}

// NewUpstream creates an upstream that answers every search with an empty
// JSON array. Call Start to begin serving.
func NewUpstream() *Upstream {
	return &Upstream{
		status: http.StatusOK,
		body:   []byte("[]"),
	}
}

// WithRecords configures the upstream to answer with the given records.
func (u *Upstream) WithRecords(records []domain.FlightRecord) *Upstream {
	body, err := json.Marshal(records)
	if err != nil {
		panic("marshal records: " + err.Error())
	}
	return u.WithBody(http.StatusOK, body)
}

// WithBody configures the upstream to answer with a raw status and body.
func (u *Upstream) WithBody(status int, body []byte) *Upstream {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.status = status
	u.body = body
	return u
}

// WithDelay configures the upstream to wait before answering.
func (u *Upstream) WithDelay(d time.Duration) *Upstream {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.delay = d
	return u
}

// DropConnections makes the next n requests fail at the transport level by
// closing the connection without a response.
func (u *Upstream) DropConnections(n int) *Upstream {
	return u.FailRequests(n, 0)
}

// FailRequests makes the next n requests answer with status and an empty
// body. A zero status drops the connection instead.
func (u *Upstream) FailRequests(n, status int) *Upstream {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.failFirst = n
	u.failStatus = status
	return u
}

// Start begins serving and returns the upstream for chaining.
func (u *Upstream) Start() *Upstream {
	mux := http.NewServeMux()
	mux.HandleFunc(SearchPath, u.handleSearch)
	u.server = httptest.NewServer(mux)
	return u
}

// Close stops the server.
func (u *Upstream) Close() {
	if u.server != nil {
		u.server.Close()
	}
}

// URL returns the full search endpoint URL.
func (u *Upstream) URL() string {
	return u.server.URL + SearchPath
}

// CallCount returns how many search requests arrived, dropped ones included.
func (u *Upstream) CallCount() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.queries)
}

// Queries returns the query parameters of every request, in arrival order.
func (u *Upstream) Queries() []url.Values {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := make([]url.Values, len(u.queries))
	copy(out, u.queries)
	return out
}

// LastQuery returns the query parameters of the most recent request, or
// nil if none arrived.
func (u *Upstream) LastQuery() url.Values {
	u.mu.Lock()
	defer u.mu.Unlock()
	if len(u.queries) == 0 {
		return nil
	}
	return u.queries[len(u.queries)-1]
}

func (u *Upstream) handleSearch(w http.ResponseWriter, r *http.Request) {
	u.mu.Lock()
	u.queries = append(u.queries, r.URL.Query())
	fail := u.failFirst > 0
	if fail {
		u.failFirst--
	}
	status, body, delay, failStatus := u.status, u.body, u.delay, u.failStatus
	u.mu.Unlock()

	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if fail && failStatus != 0 {
		w.WriteHeader(failStatus)
		return
	}

	if fail {
		if hj, ok := w.(http.Hijacker); ok {
			if conn, _, err := hj.Hijack(); err == nil {
				conn.Close()
				return
			}
		}
		panic(http.ErrAbortHandler)
	}

	if delay > 0 {
		select {
		case <-r.Context().Done():
			return
		case <-time.After(delay):
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
