package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEcho() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorDetail {
	t.Helper()
	var detail ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	return detail
}

func TestHealth(t *testing.T) {
	c, rec := setupEcho()

	require.NoError(t, Health(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestErrorResponses(t *testing.T) {
	tests := []struct {
		name        string
		write       func(echo.Context) error
		wantStatus  int
		wantCode    string
		wantMessage string
		wantKind    string
	}{
		{"invalid request", InvalidRequest, http.StatusBadRequest, CodeInvalidRequest, MsgInvalidRequest, ""},
		{"validation message", func(c echo.Context) error { return ValidationErrorWithMessage(c, "maxPrice is not a number") },
			http.StatusBadRequest, CodeValidationError, "maxPrice is not a number", ""},
		{"search in progress", SearchInProgress, http.StatusConflict, CodeSearchInProgress, MsgSearchInProgress, ""},
		{"bad gateway", func(c echo.Context) error { return BadGateway(c, "transport") },
			http.StatusBadGateway, CodeBadGateway, MsgUpstreamFailed, "transport"},
		{"gateway timeout", GatewayTimeout, http.StatusGatewayTimeout, CodeTimeout, MsgTimeout, ""},
		{"request cancelled", RequestCancelled, http.StatusGatewayTimeout, CodeTimeout, MsgRequestCancelled, ""},
		{"internal", InternalServerError, http.StatusInternalServerError, CodeInternalError, MsgInternalError, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := setupEcho()

			require.NoError(t, tt.write(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			detail := decodeError(t, rec)
			assert.Equal(t, tt.wantCode, detail.Code)
			assert.Equal(t, tt.wantMessage, detail.Message)
			assert.Equal(t, tt.wantKind, detail.Kind)
		})
	}
}

func TestValidationError_Details(t *testing.T) {
	c, rec := setupEcho()

	require.NoError(t, ValidationError(c, map[string]string{"startDate": "startDate must be YYYY-MM-DD"}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	detail := decodeError(t, rec)
	assert.Equal(t, CodeValidationError, detail.Code)
	assert.Equal(t, "startDate must be YYYY-MM-DD", detail.Details["startDate"])
}

func TestBadGateway_OmitsEmptyKind(t *testing.T) {
	c, rec := setupEcho()

	require.NoError(t, BadGateway(c, ""))

	assert.NotContains(t, rec.Body.String(), `"kind"`)
}

func TestSearchResults(t *testing.T) {
	c, rec := setupEcho()

	require.NoError(t, SearchResults(c, map[string]int{"total": 0}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"total":0}`, rec.Body.String())
}
