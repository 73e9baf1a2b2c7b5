// v0
// internal/session/session.go

// Package session owns the operator-facing state around the pure engine: the
// fixed-code OTP login stub, bearer-token sessions, and the session start time
// that drives the simulation clock.
package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rohithdvg2005-eng/solar-microgrid/internal/simclock"
)

// demoOTP is the fixed demo code. This is a stub, not authentication.
const demoOTP = "123456"

var (
	ErrInvalidOTP   = errors.New("session: invalid OTP")
	ErrMissingPhone = errors.New("session: phone number required")
)

// Operator is the profile minted at login.
type Operator struct {
	ID          int    `json:"id"`
	PhoneNumber string `json:"phoneNumber"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
}

// Manager tracks logged-in operators and the process session start time.
type Manager struct {
	clk   simclock.Clock
	start time.Time

	mu     sync.RWMutex
	tokens map[string]Operator
	seq    int
}

func NewManager(clk simclock.Clock) *Manager {
	return &Manager{
		clk:    clk,
		start:  clk.Now(),
		tokens: make(map[string]Operator),
	}
}

// Start is the session start the simulation clock measures elapsed time from.
func (m *Manager) Start() time.Time { return m.start }

// RequestOTP returns the demo code for any non-empty phone number.
func (m *Manager) RequestOTP(phone string) (string, error) {
	if phone == "" {
		return "", ErrMissingPhone
	}
	return demoOTP, nil
}

// Login verifies the OTP, mints a bearer token and the operator profile.
func (m *Manager) Login(phone, otp string) (string, Operator, error) {
	if phone == "" {
		return "", Operator{}, ErrMissingPhone
	}
	if otp != demoOTP {
		return "", Operator{}, ErrInvalidOTP
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	op := Operator{
		ID:          m.seq,
		PhoneNumber: phone,
		Name:        fmt.Sprintf("Operator %d", m.seq),
		Email:       fmt.Sprintf("operator%d@microgrid.com", m.seq),
		Role:        "operator",
	}
	token := uuid.NewString()
	m.tokens[token] = op
	return token, op, nil
}

// Authenticate resolves a bearer token to its operator.
func (m *Manager) Authenticate(token string) (Operator, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	op, ok := m.tokens[token]
	return op, ok
}

// Logout invalidates a token. Unknown tokens are a no-op.
func (m *Manager) Logout(token string) {
	m.mu.Lock()
	delete(m.tokens, token)
	m.mu.Unlock()
}
