package payment

import (
	"sync"
	"time"
)

// Link is the payload a gateway returns once a payment code can be paid.
type Link struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
}

// State is a point-in-time copy of a LinkSession.
type State struct {
	IsActive  bool   `json:"is_active"`
	Code      string `json:"code,omitempty"`
	Link      *Link  `json:"link,omitempty"`
	IsChecked bool   `json:"is_checked"`
}

// IsProcessing reports whether a link check is still outstanding.
func (s State) IsProcessing() bool {
	return s.IsActive && !s.IsChecked
}

// LinkSession tracks one payment-link check. The zero value is idle and
// ready to use. Each operation is a single critical section.
type LinkSession struct {
	mu    sync.Mutex
	state State
	// gen changes on every Start and Complete; polls hold the value they
	// were armed with.
	gen uint64
}

func NewLinkSession() *LinkSession {
	return &LinkSession{}
}

// Start arms the session for code. Starting while active re-arms it and the
// previous code is forgotten. An empty code leaves the session untouched.
func (s *LinkSession) Start(code string) {
	s.arm(code)
}

// SetLink records the result of the check. Late callbacks arriving after
// Complete find the session inactive and are dropped.
func (s *LinkSession) SetLink(link *Link) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.state.IsActive {
		return
	}
	s.state.Link = link
	s.state.IsChecked = true
}

// Complete resets the session to idle.
func (s *LinkSession) Complete() {
	s.reset()
}

func (s *LinkSession) IsProcessing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.IsProcessing()
}

func (s *LinkSession) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.state
	if out.Link != nil {
		link := *out.Link
		out.Link = &link
	}
	return out
}

// arm is Start returning the generation the caller owns. Zero means nothing
// was armed.
func (s *LinkSession) arm(code string) uint64 {
	if code == "" {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.state = State{IsActive: true, Code: code}
	return s.gen
}

// reset is Complete reporting whether the session was active.
func (s *LinkSession) reset() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	wasActive := s.state.IsActive
	s.gen++
	s.state = State{}
	return wasActive
}

// setLinkFor is SetLink guarded by the generation the caller was armed
// with, so a superseded poll cannot mark a newer arming as checked.
func (s *LinkSession) setLinkFor(gen uint64, link *Link) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.state.IsActive || s.gen != gen {
		return false
	}
	s.state.Link = link
	s.state.IsChecked = true
	return true
}

// completeFor resets the session only if it still holds generation gen.
func (s *LinkSession) completeFor(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.state.IsActive || s.gen != gen {
		return false
	}
	s.gen++
	s.state = State{}
	return true
}
