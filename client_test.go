package bhexpress

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvToken, "")
	t.Setenv(EnvBaseURL, "")
}

func TestNew_MissingToken(t *testing.T) {
	clearEnv(t)

	_, err := New()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingToken))
	assert.Equal(t, "[BHExpress] The environment variable must be set: BHEXPRESS_API_TOKEN.", err.Error())
}

func TestNew_Defaults(t *testing.T) {
	clearEnv(t)

	c, err := New(WithToken(" abc "))
	require.NoError(t, err)

	assert.Equal(t, DefaultBaseURL, c.BaseURL())
	assert.Equal(t, DefaultVersion, c.Version())
	assert.True(t, c.RaiseForStatus())
	assert.Equal(t, "Token abc", c.Headers()["Authorization"])
	assert.Equal(t, "https://bhexpress.cl/api/v1/dte", c.URL("/dte"))
}

func TestNew_FromEnvironment(t *testing.T) {
	t.Setenv(EnvToken, "env-token")
	t.Setenv(EnvBaseURL, "https://sandbox.bhexpress.cl/")

	c, err := New()
	require.NoError(t, err)

	assert.Equal(t, "Token env-token", c.Headers()["Authorization"])
	assert.Equal(t, "https://sandbox.bhexpress.cl/api/v1/dte", c.URL("/dte"))
}

func TestNew_DotEnvAndConfigFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("BHEXPRESS_API_TOKEN=dotenv-token\n"), 0o600))
	cfgFile := filepath.Join(dir, "bhexpress.json")
	require.NoError(t, os.WriteFile(cfgFile, []byte(`{"api_url": "https://file.example.com", "api_version": "v2"}`), 0o600))

	c, err := New(WithDotEnv(envFile), WithConfigFile(cfgFile))
	require.NoError(t, err)

	assert.Equal(t, "Token dotenv-token", c.Headers()["Authorization"])
	assert.Equal(t, "https://file.example.com/api/v2/boletas", c.URL("/boletas"))
}

func TestNew_UnreadableConfigFile(t *testing.T) {
	clearEnv(t)

	_, err := New(WithToken("t"), WithConfigFile(filepath.Join(t.TempDir(), "missing.yaml")))
	assert.ErrorIs(t, err, ErrConfig)
}

func TestClient_RoundTrip(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Token abc", r.Header.Get("Authorization"))

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/v1/dte":
			_, _ = w.Write([]byte(`[{"folio": 1}]`))
		case r.Method == http.MethodPost && r.URL.Path == "/api/v1/dte":
			body, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"folio": 2}`, string(body))
			_, _ = w.Write([]byte(`{"folio": 2}`))
		case r.Method == http.MethodPut && r.URL.Path == "/api/v1/dte/2":
			body, _ := io.ReadAll(r.Body)
			assert.Equal(t, `{"anulada":true}`, string(body))
			_, _ = w.Write([]byte(`{"folio": 2, "anulada": true}`))
		case r.Method == http.MethodDelete && r.URL.Path == "/api/v1/dte/2":
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message": "not found"}`))
		}
	}))
	defer server.Close()

	clearEnv(t)
	c, err := New(WithToken("abc"), WithBaseURL(server.URL))
	require.NoError(t, err)
	ctx := context.Background()

	resp, err := c.Get(ctx, "/dte", nil)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"folio": 1}]`, resp.Text())

	resp, err = c.Post(ctx, "/dte", map[string]int{"folio": 2}, nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"folio": 2}`, resp.Text())

	_, err = c.Put(ctx, "/dte/2", `{"anulada":true}`, nil)
	require.NoError(t, err)

	// 204 is an error unless raise-for-status is off.
	_, err = c.Delete(ctx, "/dte/2", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrHTTP)

	_, err = c.Get(ctx, "/missing", nil)
	e, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, "HTTP Error: not found", e.Message)
	assert.Equal(t, http.StatusNotFound, e.StatusCode)
}

func TestClient_NoRaiseForStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message": "not found"}`))
	}))
	defer server.Close()

	clearEnv(t)
	c, err := New(WithToken("abc"), WithBaseURL(server.URL), WithRaiseForStatus(false))
	require.NoError(t, err)

	resp, err := c.Get(context.Background(), "/dte", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, `{"message": "not found"}`, resp.Text())
}

type stubTransport struct {
	req *Request
	err error
}

func (s *stubTransport) Do(_ context.Context, req *Request) (*Response, error) {
	s.req = req
	if s.err != nil {
		return nil, s.err
	}
	return &Response{StatusCode: http.StatusOK, Status: "200 OK"}, nil
}

func TestClient_CustomTransport(t *testing.T) {
	clearEnv(t)
	tr := &stubTransport{}
	c, err := New(WithToken("abc"), WithTransport(tr))
	require.NoError(t, err)

	_, err = c.Post(context.Background(), "/dte", []byte("raw"), map[string]string{"Content-Type": "text/plain"})
	require.NoError(t, err)

	assert.Equal(t, "https://bhexpress.cl/api/v1/dte", tr.req.URL)
	assert.Equal(t, "text/plain", tr.req.Header["Content-Type"])
	assert.Equal(t, "application/json", tr.req.Header["Accept"])
	assert.Equal(t, []byte("raw"), tr.req.Body)

	tr.err = &TransportError{Kind: TransportConnection, Err: errors.New("dial tcp: refused")}
	_, err = c.Get(context.Background(), "/dte", nil)
	assert.ErrorIs(t, err, ErrConnection)
	assert.Equal(t, "[BHExpress] Connection error: dial tcp: refused", err.Error())
}

func TestClient_ConnectionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := server.URL
	server.Close()

	clearEnv(t)
	c, err := New(WithToken("abc"), WithBaseURL(addr))
	require.NoError(t, err)

	_, err = c.Get(context.Background(), "/dte", nil)
	require.Error(t, err)
	e, ok := AsError(err)
	require.True(t, ok)
	assert.Regexp(t, `^Connection error:`, e.Message)
}

func TestClient_Logging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	clearEnv(t)

	tr := &stubTransport{}
	c, err := New(WithToken("secret-token"), WithTransport(tr), WithLogger(zap.New(core)))
	require.NoError(t, err)

	_, err = c.Get(context.Background(), "/dte", nil)
	require.NoError(t, err)

	tr.err = errors.New("boom")
	_, err = c.Get(context.Background(), "/dte", nil)
	assert.ErrorIs(t, err, ErrRequest)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	for _, entry := range entries {
		for _, field := range entry.Context {
			assert.NotContains(t, field.String, "secret-token")
		}
	}
}
