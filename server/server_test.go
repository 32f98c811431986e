package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibpath/vibot/pkg/config"
	"github.com/vibpath/vibot/pkg/domain"
	"github.com/vibpath/vibot/pkg/line"
	"github.com/vibpath/vibot/server/mocks"
)

const testSecret = "test-channel-secret"

func testServer(t *testing.T) (*Server, *mocks.ConfigProviderMock, *mocks.PreferencesMock, *mocks.EventHandlerMock) {
	t.Helper()

	cfg := &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) { return ":8080", 30 * time.Second },
		GetLineConfigFunc: func() config.LineConfig {
			return config.LineConfig{ChannelSecret: testSecret, ChannelToken: "test-token"}
		},
		GetStaticDirFunc: func() string { return "" },
	}
	prefs := &mocks.PreferencesMock{
		EnabledFunc: func(ctx context.Context, userID string) bool { return true },
		SetFunc:     func(ctx context.Context, userID string, enabled bool) error { return nil },
		DeleteFunc:  func(ctx context.Context, userID string) (int64, error) { return 1, nil },
		ListFunc:    func(ctx context.Context) ([]domain.Preference, error) { return nil, nil },
	}
	events := &mocks.EventHandlerMock{
		HandleEventFunc: func(ctx context.Context, ev line.Event) error { return nil },
	}

	srv := New(cfg, prefs, events, "test", false)
	return srv, cfg, prefs, events
}

func TestServer_New(t *testing.T) {
	srv, _, _, _ := testServer(t)
	assert.NotNil(t, srv)
	assert.Equal(t, "test", srv.version)
	assert.False(t, srv.debug)
	assert.NotNil(t, srv.router)
}

func TestServer_Run(t *testing.T) {
	// find free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	err = listener.Close()
	require.NoError(t, err)

	srv, cfg, _, _ := testServer(t)
	cfg.GetServerConfigFunc = func() (string, time.Duration) {
		return fmt.Sprintf("127.0.0.1:%d", port), 30 * time.Second
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// start server in background
	go func() {
		_ = srv.Run(ctx)
	}()

	// wait for server to start
	time.Sleep(100 * time.Millisecond)

	// ping through the middleware chain
	resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/ping", port))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "pong", string(body))

	// health endpoint through the real server
	healthResp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/health", port))
	require.NoError(t, err)
	defer healthResp.Body.Close()
	assert.Equal(t, http.StatusOK, healthResp.StatusCode)

	// shutdown server
	cancel()
	time.Sleep(100 * time.Millisecond)
}

func TestServer_healthHandler(t *testing.T) {
	srv, _, _, _ := testServer(t)

	req := httptest.NewRequest("GET", "/health", http.NoBody)
	w := httptest.NewRecorder()

	srv.healthHandler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var health map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &health)
	require.NoError(t, err)
	assert.Equal(t, "healthy", health["status"])
	assert.Equal(t, "vibot", health["service"])
	assert.Equal(t, "test", health["version"])
}

func TestServer_rootHandler(t *testing.T) {
	srv, _, _, _ := testServer(t)

	req := httptest.NewRequest("GET", "/", http.NoBody)
	w := httptest.NewRecorder()

	srv.rootHandler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var status map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &status)
	require.NoError(t, err)
	assert.Equal(t, "active", status["status"])
	assert.Equal(t, "vibot", status["service"])
}

func TestServer_staticFiles(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "logo.png"), []byte("png-bytes"), 0o600)
	require.NoError(t, err)

	srv, cfg, _, _ := testServer(t)
	cfg.GetStaticDirFunc = func() string { return dir }
	// routes are wired at construction time, rebuild with the static dir set
	srv = New(cfg, srv.prefs, srv.events, "test", false)

	req := httptest.NewRequest("GET", "/static/logo.png", http.NoBody)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "png-bytes", w.Body.String())

	// missing file
	req = httptest.NewRequest("GET", "/static/absent.png", http.NoBody)
	w = httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServer_staticDisabled(t *testing.T) {
	srv, _, _, _ := testServer(t)

	req := httptest.NewRequest("GET", "/static/logo.png", http.NoBody)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRenderJSON(t *testing.T) {
	data := map[string]string{
		"message": "test",
		"status":  "ok",
	}

	req := httptest.NewRequest("GET", "/test", http.NoBody)
	w := httptest.NewRecorder()

	renderJSON(w, req, http.StatusOK, data)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var result map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &result)
	require.NoError(t, err)
	assert.Equal(t, data, result)
}

func TestRenderSuccess(t *testing.T) {
	req := httptest.NewRequest("GET", "/test", http.NoBody)
	w := httptest.NewRecorder()

	renderSuccess(w, req, http.StatusOK, map[string]interface{}{"userId": "user-1"})

	var result map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &result)
	require.NoError(t, err)
	assert.Equal(t, "success", result["status"])

	data, ok := result["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "user-1", data["userId"])
}

func TestRenderError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedMsg  string
	}{
		{
			name:         "generic error",
			err:          errors.New("something went wrong"),
			expectedCode: http.StatusInternalServerError,
			expectedMsg:  "something went wrong",
		},
		{
			name:         "nil error",
			err:          nil,
			expectedCode: http.StatusInternalServerError,
			expectedMsg:  "unknown error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/test", http.NoBody)
			w := httptest.NewRecorder()

			renderError(w, req, tt.err, tt.expectedCode)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

			var result map[string]string
			err := json.Unmarshal(w.Body.Bytes(), &result)
			require.NoError(t, err)
			assert.Equal(t, "error", result["status"])
			assert.Equal(t, tt.expectedMsg, result["error"])
		})
	}
}
