// Package navigation carries out the navigation intents attached to replies.
// The router only describes where to go; a Scheduler decides when.
package navigation

import (
	"errors"
	"sync"
	"time"

	"fitlife-assistant/internal/domain"
)

var ErrClosed = errors.New("navigation: scheduler closed")

// Scheduler holds at most one pending navigation. Scheduling a new intent
// replaces the previous one, so only the latest can fire.
type Scheduler struct {
	mu     sync.Mutex
	timer  *time.Timer
	gen    uint64
	closed bool
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Schedule arranges for navigate to be called with intent.Path once the
// intent's delay has elapsed. A nil intent only cancels what is pending.
func (s *Scheduler) Schedule(intent *domain.NavigationIntent, navigate func(path string)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	s.stopLocked()
	if intent == nil || intent.Path == "" || navigate == nil {
		return nil
	}

	gen := s.gen
	path := intent.Path
	s.timer = time.AfterFunc(max(intent.Delay, 0), func() {
		s.mu.Lock()
		if s.closed || s.gen != gen {
			s.mu.Unlock()
			return
		}
		s.timer = nil
		s.mu.Unlock()
		navigate(path)
	})
	return nil
}

// Pending reports whether a navigation is waiting to fire.
func (s *Scheduler) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timer != nil
}

func (s *Scheduler) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

// Close cancels the pending navigation and rejects further schedules.
func (s *Scheduler) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
	s.closed = true
}

func (s *Scheduler) stopLocked() {
	// bump the generation so a timer that already fired but is still
	// waiting for the lock sees it has been superseded
	s.gen++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
