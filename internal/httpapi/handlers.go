// v1
// internal/httpapi/handlers.go
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/rohithdvg2005-eng/solar-microgrid/internal/engine"
	"github.com/rohithdvg2005-eng/solar-microgrid/internal/session"
	"github.com/rohithdvg2005-eng/solar-microgrid/internal/telemetry"
)

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Log.Error("encode response failed", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}

// requireAuth resolves the bearer token and rejects unauthenticated requests.
func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if token == "" || token == r.Header.Get("Authorization") {
			s.writeError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}
		if _, ok := s.Sessions.Authenticate(token); !ok {
			s.writeError(w, http.StatusUnauthorized, "invalid session token")
			return
		}
		next(w, r)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

type otpRequest struct {
	PhoneNumber string `json:"phoneNumber"`
}

func (s *Server) handleOTP(w http.ResponseWriter, r *http.Request) {
	var req otpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	otp, err := s.Sessions.RequestOTP(req.PhoneNumber)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	// Demo stub: the code is returned in-band instead of being sent anywhere.
	s.writeJSON(w, http.StatusOK, map[string]string{
		"message": "OTP sent to " + req.PhoneNumber,
		"demoOtp": otp,
	})
}

type loginRequest struct {
	PhoneNumber string `json:"phoneNumber"`
	OTP         string `json:"otp"`
}

type loginResponse struct {
	Token    string           `json:"token"`
	Operator session.Operator `json:"operator"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	token, op, err := s.Sessions.Login(req.PhoneNumber, req.OTP)
	if err != nil {
		status := http.StatusUnauthorized
		if errors.Is(err, session.ErrMissingPhone) {
			status = http.StatusBadRequest
		}
		s.writeError(w, status, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, loginResponse{Token: token, Operator: op})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	s.Sessions.Logout(token)
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

func (s *Server) handleSnapshot(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.Engine.Snapshot())
}

// handleAlerts serves the current alert list. With ?suppressed=true repeats of a
// rule within the configured interval are filtered out for display.
func (s *Server) handleAlerts(w http.ResponseWriter, r *http.Request) {
	snap := s.Engine.Snapshot()
	out := snap.Alerts
	if r.URL.Query().Get("suppressed") == "true" {
		out = s.Limiter.Filter(out, snap.Evaluated)
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handlePrediction(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.Engine.Snapshot().Prediction)
}

type seriesResponse struct {
	Index   int                       `json:"index"`
	Window  int                       `json:"window"`
	Energy  []telemetry.EnergySample  `json:"energy"`
	Weather []telemetry.WeatherSample `json:"weather"`
}

// handleSeries serves the trailing chart window, default 288 samples, capped at
// the series length.
func (s *Server) handleSeries(w http.ResponseWriter, r *http.Request) {
	window := engine.ChartWindow
	if v := r.URL.Query().Get("window"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			s.writeError(w, http.StatusBadRequest, "window must be a positive integer")
			return
		}
		window = n
	}
	if n := s.Engine.Series().Len(); window > n {
		window = n
	}
	energy, weather := s.Engine.RecentWindow(window)
	s.writeJSON(w, http.StatusOK, seriesResponse{
		Index:   s.Engine.CurrentIndex(),
		Window:  window,
		Energy:  energy,
		Weather: weather,
	})
}
