package integration

import (
	"context"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-search/flight-search-console/internal/domain"
	"github.com/flight-search/flight-search-console/test/mock"
	"github.com/flight-search/flight-search-console/test/testutil"
)

func extendedForm() domain.SearchForm {
	return domain.SearchForm{Filters: domain.Filters{Enabled: domain.FilterSet{}}}
}

// TestFlightSearch_Success tests the use case against the real client.
func TestFlightSearch_Success(t *testing.T) {
	ts := NewTestServer(t, mock.NewUpstream().WithRecords(mock.SampleRecords(4)), Options{})

	flights, err := ts.UseCase.Search(context.Background(), extendedForm())

	require.NoError(t, err)
	require.Len(t, flights, 4)
	for i, f := range flights {
		want := domain.StopoverNo
		if i%2 == 0 {
			want = domain.StopoverYes
		}
		assert.Equal(t, want, f.Scale, "flight %d", i)
	}
	assert.Equal(t, "JFK", flights[0].Origin)
	assert.Equal(t, "CGK", flights[1].Origin, "endpoint order is kept")
}

// TestFlightSearch_RetriesTransportFailures tests that dropped connections
// are retried when more than one attempt is configured.
func TestFlightSearch_RetriesTransportFailures(t *testing.T) {
	upstream := mock.NewUpstream().WithRecords(mock.SampleRecords(1)).DropConnections(2)
	ts := NewTestServer(t, upstream, Options{MaxAttempts: 3})

	flights, err := ts.UseCase.Search(context.Background(), extendedForm())

	require.NoError(t, err)
	assert.Len(t, flights, 1)
	assert.Equal(t, 3, upstream.CallCount())
}

// TestFlightSearch_SingleAttemptByDefault tests that a transport failure is
// reported immediately without retries configured.
func TestFlightSearch_SingleAttemptByDefault(t *testing.T) {
	upstream := mock.NewUpstream().DropConnections(1)
	ts := NewTestServer(t, upstream, Options{})

	_, err := ts.UseCase.Search(context.Background(), extendedForm())

	require.Error(t, err)
	assert.Equal(t, domain.ErrorKindTransport, domain.KindOf(err))
	assert.Equal(t, 1, upstream.CallCount())
}

// TestFlightSearch_StatusErrorsAreNotRetried tests that only transport
// failures are retried.
func TestFlightSearch_StatusErrorsAreNotRetried(t *testing.T) {
	upstream := mock.NewUpstream().WithBody(http.StatusBadGateway, []byte("upstream down"))
	ts := NewTestServer(t, upstream, Options{MaxAttempts: 3})

	_, err := ts.UseCase.Search(context.Background(), extendedForm())

	var searchErr *domain.SearchError
	require.ErrorAs(t, err, &searchErr)
	assert.Equal(t, domain.ErrorKindStatus, searchErr.Kind)
	assert.Equal(t, http.StatusBadGateway, searchErr.StatusCode)
	assert.Contains(t, err.Error(), "upstream down")
	assert.Equal(t, 1, upstream.CallCount())
}

// TestFlightSearch_NullBody tests that a null body is a decode failure.
func TestFlightSearch_NullBody(t *testing.T) {
	ts := NewTestServer(t, mock.NewUpstream().WithBody(http.StatusOK, []byte("null")), Options{})

	_, err := ts.UseCase.Search(context.Background(), extendedForm())

	assert.Equal(t, domain.ErrorKindDecode, domain.KindOf(err))
}

// TestFlightSearch_Timeout tests that a configured timeout turns a slow
// endpoint into a transport failure.
func TestFlightSearch_Timeout(t *testing.T) {
	upstream := mock.NewUpstream().WithDelay(2 * time.Second)
	ts := NewTestServer(t, upstream, Options{Timeout: 50 * time.Millisecond})

	start := time.Now()
	_, err := ts.UseCase.Search(context.Background(), extendedForm())

	assert.Equal(t, domain.ErrorKindTransport, domain.KindOf(err))
	assert.Less(t, time.Since(start), time.Second)
}

// TestFlightSearch_ContextCancellation tests that a cancelled caller context
// stops the use case before the endpoint is called.
func TestFlightSearch_ContextCancellation(t *testing.T) {
	upstream := mock.NewUpstream()
	ts := NewTestServer(t, upstream, Options{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ts.UseCase.Search(ctx, extendedForm())

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, upstream.CallCount())
}

// TestFlightSearch_SessionIgnoresCallerCancellation tests that a session
// search runs to completion even if the request that started it is gone.
func TestFlightSearch_SessionIgnoresCallerCancellation(t *testing.T) {
	upstream := mock.NewUpstream().WithRecords(mock.SampleRecords(2))
	ts := NewTestServer(t, upstream, Options{})

	session, _ := ts.Sessions.GetOrCreate("")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	state, err := session.Search(ctx)

	require.NoError(t, err)
	assert.Len(t, state.Flights, 2)
	assert.False(t, state.Loading)
	assert.Equal(t, 1, upstream.CallCount())
}

// TestFlightSearch_DatesUseConfiguredZone tests that dates are truncated to
// calendar days in the configured zone.
func TestFlightSearch_DatesUseConfiguredZone(t *testing.T) {
	jakarta, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)

	upstream := mock.NewUpstream()
	ts := NewTestServer(t, upstream, Options{Location: jakarta})

	// 20:00 UTC is already the next day in Jakarta
	start := time.Date(2024, 6, 1, 20, 0, 0, 0, time.UTC)
	form := extendedForm()
	form.DateRange.Start = &start
	form.DateRange.End = testutil.DatePtr(t, "2024-06-10")

	_, err = ts.UseCase.Search(context.Background(), form)

	require.NoError(t, err)
	assert.Equal(t, url.Values{
		"startDate": {"2024-06-02"},
		"endDate":   {"2024-06-10"},
		"scale":     {"false"},
	}, upstream.LastQuery())
}

// TestFlightSearch_EmptyResults tests that an empty array is a success.
func TestFlightSearch_EmptyResults(t *testing.T) {
	ts := NewTestServer(t, mock.NewUpstream(), Options{})

	flights, err := ts.UseCase.Search(context.Background(), extendedForm())

	require.NoError(t, err)
	assert.NotNil(t, flights)
	assert.Empty(t, flights)
}
