// Package session models the in-memory signed-in user.
package session

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/jask/vidcash/internal/catalog"
)

// Role selects which dashboard a session lands on.
type Role string

const (
	Viewer   Role = "viewer"
	YouTuber Role = "youtuber"
)

// ErrUnknownRole is returned by ParseRole.
var ErrUnknownRole = errors.New("unknown role")

// ParseRole accepts "viewer" or "youtuber", case-insensitively.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case Viewer:
		return Viewer, nil
	case YouTuber:
		return YouTuber, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
}

// Session is the signed-in user. Balance is whole PKR.
type Session struct {
	ID               string
	DisplayName      string
	Email            string
	Role             Role
	Tier             catalog.Tier
	ReferralCount    int
	Balance          int64
	WithdrawalStatus string
	ReferralCode     string
}

const (
	simulatedName     = "Alex Doe"
	simulatedEmail    = "alex.doe@example.com"
	simulatedReferral = "alex123"
)

// Simulated builds the fixed demo session used in place of a real login.
// A non-empty email replaces the demo address.
func Simulated(role Role, email string) Session {
	email = strings.TrimSpace(email)
	if email == "" {
		email = simulatedEmail
	}
	return Session{
		ID:               uuid.NewString(),
		DisplayName:      simulatedName,
		Email:            email,
		Role:             role,
		Tier:             catalog.Gold,
		ReferralCount:    23,
		Balance:          12500,
		WithdrawalStatus: "Eligible in 5 days",
		ReferralCode:     simulatedReferral,
	}
}

// EligibleStatus is the withdrawal status that unlocks withdrawals.
const EligibleStatus = "Eligible"

// CanWithdraw reports whether the session may request a withdrawal.
func (s Session) CanWithdraw() bool { return s.WithdrawalStatus == EligibleStatus }

// Holder keeps at most one current session.
type Holder struct {
	mu      sync.RWMutex
	current *Session
}

// Begin replaces any current session with s.
func (h *Holder) Begin(s Session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.current = &s
}

// End discards the current session.
func (h *Holder) End() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.current = nil
}

// Current returns a copy of the session, if one is active.
func (h *Holder) Current() (Session, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.current == nil {
		return Session{}, false
	}
	return *h.current, true
}
