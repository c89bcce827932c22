package domain

import (
	"sync"
	"time"
)

// Session holds the booking state of one user between requests.
// It is created by the collaborator layer at session start and passed explicitly
// into booking attempts and payment commits. Safe for concurrent use.
type Session struct {
	ID string

	mu       sync.Mutex
	pending  *PendingBooking
	receipt  *Receipt
	lastSeen time.Time
}

// NewSession creates an empty session
func NewSession(id string, now time.Time) *Session {
	return &Session{ID: id, lastSeen: now}
}

// Pending returns the current pending booking or nil
func (s *Session) Pending() *PendingBooking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// SetPending replaces the pending booking
func (s *Session) SetPending(p *PendingBooking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = p
}

// DiscardPending drops the pending booking, returns true if there was one
func (s *Session) DiscardPending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	had := s.pending != nil
	s.pending = nil
	return had
}

// TakePending removes and returns the pending booking.
// Two concurrent payment confirmations cannot both obtain the same booking.
func (s *Session) TakePending() *PendingBooking {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.pending
	s.pending = nil
	return p
}

// RestorePending puts back a booking taken by TakePending unless a newer one was set meanwhile
func (s *Session) RestorePending(p *PendingBooking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending == nil {
		s.pending = p
	}
}

// StoreReceipt records the receipt of the last successful payment
func (s *Session) StoreReceipt(r *Receipt) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.receipt = r
}

// TakeReceipt returns the last receipt once and clears it
func (s *Session) TakeReceipt() *Receipt {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.receipt
	s.receipt = nil
	return r
}

// Touch marks the session as used at the given time
func (s *Session) Touch(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = now
}

// IdleSince returns how long the session has not been used
func (s *Session) IdleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}
