// filepath: internal/api/handlers/main_test.go
package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"people/internal/services/mocks"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)

func TestMain(m *testing.M) {
	now = func() time.Time { return fixedNow }
	m.Run()
}

// setupPersonHandlerTestAPI serves the handler routes backed by mocks.
func setupPersonHandlerTestAPI(t *testing.T) (*httptest.Server, *mocks.MockPersonService, *mocks.MockInfoService, func()) {
	t.Helper()
	mockPerson := new(mocks.MockPersonService)
	mockInfo := new(mocks.MockInfoService)

	h := NewHandlers(mockInfo, mockPerson)
	r := mux.NewRouter()
	h.RegisterRoutes(r)

	server := httptest.NewServer(r)
	return server, mockPerson, mockInfo, server.Close
}

func doRequest(t *testing.T, method, url, body string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeError(t *testing.T, resp *http.Response) ErrorResponse {
	t.Helper()
	var body ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func assertErrorBody(t *testing.T, resp *http.Response, code int, message string) {
	t.Helper()
	assert.Equal(t, code, resp.StatusCode)
	body := decodeError(t, resp)
	assert.Equal(t, code, body.Status)
	assert.Equal(t, statusName(code), body.HTTPStatus)
	assert.Equal(t, message, body.Message)
	assert.Equal(t, "09-03-2024 14:05:07", body.Timestamp)
}
