package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// Request describes an HTTP call made against a gin engine in tests.
type Request struct {
	Method string
	Path   string
	Body   any // marshalled to JSON when non-nil
	Token  string
}

// Do performs the request against the engine and returns the recorder.
func Do(t *testing.T, engine *gin.Engine, req Request) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		require.NoError(t, err)
		body = bytes.NewReader(payload)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, body)
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if req.Token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.Token)
	}

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httpReq)
	return rec
}

// Envelope mirrors the API response wrapper with the data payload left
// as raw JSON for the caller to decode.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Meta *struct {
		Total      int64 `json:"total"`
		Page       int   `json:"page"`
		PageSize   int   `json:"page_size"`
		TotalPages int   `json:"total_pages"`
	} `json:"meta"`
}

// DecodeEnvelope asserts the response status and unwraps the envelope.
func DecodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder, wantStatus int) Envelope {
	t.Helper()

	require.Equal(t, wantStatus, rec.Code, "unexpected status, body: %s", rec.Body.String())

	var env Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

// DecodeData asserts the status, requires success=true, and decodes the
// data payload into out.
func DecodeData(t *testing.T, rec *httptest.ResponseRecorder, wantStatus int, out any) {
	t.Helper()

	env := DecodeEnvelope(t, rec, wantStatus)
	require.True(t, env.Success, "expected success response, body: %s", rec.Body.String())
	require.NoError(t, json.Unmarshal(env.Data, out))
}

// RequireErrorCode asserts the status and the error code in the envelope.
func RequireErrorCode(t *testing.T, rec *httptest.ResponseRecorder, wantStatus int, wantCode string) {
	t.Helper()

	env := DecodeEnvelope(t, rec, wantStatus)
	require.False(t, env.Success)
	require.NotNil(t, env.Error)
	require.Equal(t, wantCode, env.Error.Code)
}
