// v0
// internal/httpapi/handlers_test.go
package httpapi

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rohithdvg2005-eng/solar-microgrid/internal/alerts"
	"github.com/rohithdvg2005-eng/solar-microgrid/internal/engine"
	"github.com/rohithdvg2005-eng/solar-microgrid/internal/session"
	"github.com/rohithdvg2005-eng/solar-microgrid/internal/simclock"
	"github.com/rohithdvg2005-eng/solar-microgrid/internal/telemetry"
)

func newTestServer(t *testing.T) (*Server, *simclock.MockClock) {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	clk := simclock.NewMockClock(time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC))
	p := telemetry.Params{
		Seed:   42,
		Length: 100,
		Step:   5 * time.Minute,
		Start:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	sessions := session.NewManager(clk)
	srv := &Server{
		Log:      log,
		Engine:   engine.New(log, p, clk, sessions.Start()),
		Sessions: sessions,
		Limiter:  session.NewLimiter(time.Minute),
	}
	return srv, clk
}

func login(t *testing.T, srv *Server) string {
	t.Helper()
	body := strings.NewReader(`{"phoneNumber":"5551234","otp":"123456"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", body)
	rr := httptest.NewRecorder()
	srv.NewRouter().ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rr.Code, rr.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	return resp.Token
}

func get(t *testing.T, srv *Server, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	srv.NewRouter().ServeHTTP(rr, req)
	return rr
}

func TestHealthIsOpen(t *testing.T) {
	srv, _ := newTestServer(t)
	rr := get(t, srv, "/health", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

func TestOTPStub(t *testing.T) {
	srv, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/otp", strings.NewReader(`{"phoneNumber":"5551234"}`))
	rr := httptest.NewRecorder()
	srv.NewRouter().ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var resp map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["demoOtp"] != "123456" {
		t.Fatalf("expected demo OTP in response, got %+v", resp)
	}
}

func TestLoginRejectsWrongOTP(t *testing.T) {
	srv, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{"phoneNumber":"5551234","otp":"999999"}`))
	rr := httptest.NewRecorder()
	srv.NewRouter().ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}

func TestSnapshotRequiresAuth(t *testing.T) {
	srv, _ := newTestServer(t)
	if rr := get(t, srv, "/api/v1/snapshot", ""); rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rr.Code)
	}
	if rr := get(t, srv, "/api/v1/snapshot", "not-a-token"); rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with bogus token, got %d", rr.Code)
	}
}

func TestSnapshotReturnsCurrentSample(t *testing.T) {
	srv, clk := newTestServer(t)
	token := login(t, srv)
	clk.Advance(10 * time.Second)

	rr := get(t, srv, "/api/v1/snapshot", token)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var snap struct {
		Index  int `json:"index"`
		Alerts []alerts.Alert
	}
	if err := json.NewDecoder(rr.Body).Decode(&snap); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if snap.Index != 2 {
		t.Fatalf("expected index 2 after 10s, got %d", snap.Index)
	}
	if len(snap.Alerts) == 0 {
		t.Fatal("snapshot must always carry at least one alert")
	}
}

func TestPredictionEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)
	token := login(t, srv)

	rr := get(t, srv, "/api/v1/prediction", token)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var p struct {
		EnergyDeficitWatt float64  `json:"energyDeficitWatt"`
		Recommendations   []string `json:"recommendations"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.EnergyDeficitWatt < 0 {
		t.Fatalf("deficit must be non-negative, got %f", p.EnergyDeficitWatt)
	}
}

func TestSeriesWindowDefaultsAndClamps(t *testing.T) {
	srv, _ := newTestServer(t)
	token := login(t, srv)

	rr := get(t, srv, "/api/v1/series", token)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var resp struct {
		Window int `json:"window"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	// Default 288 caps at the 100-sample test series.
	if resp.Window != 100 {
		t.Fatalf("expected window capped at 100, got %d", resp.Window)
	}

	if rr := get(t, srv, "/api/v1/series?window=0", token); rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for window=0, got %d", rr.Code)
	}
	if rr := get(t, srv, "/api/v1/series?window=abc", token); rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric window, got %d", rr.Code)
	}
}

func TestAlertsSuppressionFilter(t *testing.T) {
	srv, _ := newTestServer(t)
	token := login(t, srv)

	first := get(t, srv, "/api/v1/alerts?suppressed=true", token)
	if first.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", first.Code)
	}
	var a1 []alerts.Alert
	if err := json.NewDecoder(first.Body).Decode(&a1); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(a1) == 0 {
		t.Fatal("first fetch should show all alerts")
	}

	// Same step, same rules: everything was just shown, so the filtered view is empty.
	second := get(t, srv, "/api/v1/alerts?suppressed=true", token)
	var a2 []alerts.Alert
	if err := json.NewDecoder(second.Body).Decode(&a2); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(a2) != 0 {
		t.Fatalf("expected suppressed repeat to be empty, got %d alerts", len(a2))
	}

	// The unfiltered view is untouched by suppression.
	third := get(t, srv, "/api/v1/alerts", token)
	var a3 []alerts.Alert
	if err := json.NewDecoder(third.Body).Decode(&a3); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(a3) == 0 {
		t.Fatal("unfiltered alerts must stay unsuppressed")
	}
}

func TestLogout(t *testing.T) {
	srv, _ := newTestServer(t)
	token := login(t, srv)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	srv.NewRouter().ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("logout failed: %d", rr.Code)
	}

	if rr := get(t, srv, "/api/v1/snapshot", token); rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", rr.Code)
	}
}
