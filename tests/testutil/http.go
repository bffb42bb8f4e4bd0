package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// APIClient sends JSON requests to an in-process handler, optionally
// carrying a bearer token.
type APIClient struct {
	Handler http.Handler
	Token   string
}

// NewAPIClient creates a client without credentials.
func NewAPIClient(h http.Handler) *APIClient {
	return &APIClient{Handler: h}
}

// WithToken returns a copy of the client that sends token.
func (c *APIClient) WithToken(token string) *APIClient {
	return &APIClient{Handler: c.Handler, Token: token}
}

// Do performs a request; a non-nil body is encoded as JSON.
func (c *APIClient) Do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		reader = ToJSONReader(t, body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	rec := httptest.NewRecorder()
	c.Handler.ServeHTTP(rec, req)
	return rec
}

// Get performs a GET request.
func (c *APIClient) Get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	return c.Do(t, http.MethodGet, path, nil)
}

// Post performs a POST request with a JSON body.
func (c *APIClient) Post(t *testing.T, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	return c.Do(t, http.MethodPost, path, body)
}

// Put performs a PUT request with a JSON body.
func (c *APIClient) Put(t *testing.T, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	return c.Do(t, http.MethodPut, path, body)
}

// Patch performs a PATCH request with a JSON body.
func (c *APIClient) Patch(t *testing.T, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	return c.Do(t, http.MethodPatch, path, body)
}

// Delete performs a DELETE request.
func (c *APIClient) Delete(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	return c.Do(t, http.MethodDelete, path, nil)
}

// DecodeJSON parses the recorded body into T.
func DecodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var result T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result), "Failed to parse JSON response: %s", rec.Body.String())
	return result
}

// RequireStatus fails the test when the response status differs, printing the body.
func RequireStatus(t *testing.T, rec *httptest.ResponseRecorder, expected int) {
	t.Helper()
	require.Equal(t, expected, rec.Code, "Unexpected status code, body: %s", rec.Body.String())
}

// AssertErrorResponse asserts an error response with the given status and code.
func AssertErrorResponse(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) {
	t.Helper()

	assert.Equal(t, status, rec.Code, "Unexpected status code, body: %s", rec.Body.String())
	body := DecodeJSON[map[string]any](t, rec)
	assert.Equal(t, code, body["code"], "Unexpected error code")
	assert.NotEmpty(t, body["message"], "Expected an error message")
}

// ToJSONReader converts a value to a JSON io.Reader.
func ToJSONReader(t *testing.T, v any) io.Reader {
	t.Helper()

	data, err := json.Marshal(v)
	require.NoError(t, err, "Failed to marshal to JSON")
	return bytes.NewReader(data)
}
