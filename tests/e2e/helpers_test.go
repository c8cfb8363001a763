//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/partsdesk-backend/internal/adapter/bolt"
	"github.com/heartmarshall/partsdesk-backend/internal/adapter/partsapi"
	"github.com/heartmarshall/partsdesk-backend/internal/adapter/postgres"
	noterepo "github.com/heartmarshall/partsdesk-backend/internal/adapter/postgres/note"
	orderrepo "github.com/heartmarshall/partsdesk-backend/internal/adapter/postgres/order"
	"github.com/heartmarshall/partsdesk-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/partsdesk-backend/internal/auth"
	"github.com/heartmarshall/partsdesk-backend/internal/config"
	"github.com/heartmarshall/partsdesk-backend/internal/domain"
	"github.com/heartmarshall/partsdesk-backend/internal/service/catalog"
	"github.com/heartmarshall/partsdesk-backend/internal/service/notes"
	"github.com/heartmarshall/partsdesk-backend/internal/service/order"
	"github.com/heartmarshall/partsdesk-backend/internal/service/problempart"
	"github.com/heartmarshall/partsdesk-backend/internal/transport/middleware"
	"github.com/heartmarshall/partsdesk-backend/internal/transport/rest"
)

const (
	testSecret = "e2e-secret-that-is-at-least-32-characters"
	testIssuer = "partsdesk"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL      string
	Client   *http.Client
	Pool     *pgxpool.Pool
	Events   *recordingPublisher
	Upstream *fakePartsAPI
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// recordingPublisher stands in for Kafka and keeps every event.
type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.Event
}

func (p *recordingPublisher) Publish(_ context.Context, ev domain.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	return nil
}

func (p *recordingPublisher) Types() []domain.EventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]domain.EventType, len(p.events))
	for i, ev := range p.events {
		out[i] = ev.Type
	}
	return out
}

// fakePartsAPI is an in-memory parts API: order updates are echoed back,
// problematic parts are stored by id and years come from a fixed table.
type fakePartsAPI struct {
	mu    sync.Mutex
	parts map[string]map[string]any
}

func (f *fakePartsAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	reply := func(status int, v any) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(v)
	}

	switch {
	case r.Method == http.MethodPut && strings.HasPrefix(r.URL.Path, "/orders/"):
		var o domain.Order
		_ = json.NewDecoder(r.Body).Decode(&o)
		o.UpdatedAt = time.Now().UTC()
		reply(http.StatusOK, o)

	case r.Method == http.MethodGet && r.URL.Path == "/products/years":
		reply(http.StatusOK, []any{2019, "2018"})

	case r.Method == http.MethodPost && r.URL.Path == "/problematic-parts":
		rec := map[string]any{}
		_ = json.NewDecoder(r.Body).Decode(&rec)
		id := uuid.NewString()
		rec["id"] = id
		f.parts[id] = rec
		reply(http.StatusCreated, rec)

	case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/problematic-parts/order/"):
		orderID := strings.TrimPrefix(r.URL.Path, "/problematic-parts/order/")
		out := []map[string]any{}
		for _, rec := range f.parts {
			if rec["orderId"] == orderID {
				out = append(out, rec)
			}
		}
		reply(http.StatusOK, out)

	default:
		reply(http.StatusNotFound, map[string]string{"message": "not found"})
	}
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper) and a fake parts API.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	fake := &fakePartsAPI{parts: map[string]map[string]any{}}
	upstreamSrv := httptest.NewServer(fake)
	t.Cleanup(upstreamSrv.Close)

	upstream := partsapi.NewClient(config.UpstreamConfig{
		BaseURL: upstreamSrv.URL,
		Timeout: 5 * time.Second,
	}, logger)

	drafts, err := bolt.Open(config.DraftsConfig{
		Path:        filepath.Join(t.TempDir(), "drafts.db"),
		OpenTimeout: time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = drafts.Close() })

	events := &recordingPublisher{}

	orderSvc := order.NewService(logger, orderrepo.New(pool), postgres.NewTxManager(pool), upstream, events, 10000)
	noteSvc := notes.NewService(logger, noterepo.New(pool), drafts, events)
	partSvc := problempart.NewService(logger, upstream, events)
	catalogSvc := catalog.NewService(logger, upstream, true)

	reg := prometheus.NewRegistry()
	api := middleware.Auth(auth.NewValidator(testSecret, testIssuer))

	mux := rest.NewRouter(rest.Handlers{
		Health:       rest.NewHealthHandler(pool, orderSvc.Snapshot(), "e2e"),
		Orders:       rest.NewOrderHandler(orderSvc, logger),
		Notes:        rest.NewNoteHandler(noteSvc, logger),
		ProblemParts: rest.NewProblemPartHandler(partSvc, logger),
		Catalog:      rest.NewCatalogHandler(catalogSvc, logger),
		Cards:        rest.NewCardHandler(logger),
		Metrics:      promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
	}, middleware.NewHTTPMetrics(reg), api)

	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
	)(mux)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:      srv.URL,
		Client:   srv.Client(),
		Pool:     pool,
		Events:   events,
		Upstream: fake,
	}
}

// operatorToken signs an access token for a random operator.
func operatorToken(t *testing.T, name string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":  uuid.NewString(),
		"name": name,
		"iss":  testIssuer,
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

// do sends a JSON request and returns the status and raw body.
func (ts *testServer) do(t *testing.T, method, path, token string, body any) (int, []byte) {
	t.Helper()

	var rd io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, ts.URL+path, rd)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

// doJSON is do plus decoding the response into out.
func (ts *testServer) doJSON(t *testing.T, method, path, token string, body, out any) int {
	t.Helper()
	status, raw := ts.do(t, method, path, token, body)
	if out != nil && len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, out), "body: %s", raw)
	}
	return status
}
