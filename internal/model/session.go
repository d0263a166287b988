package model

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// WidgetSession is one live chat-widget connection. Visitors are anonymous,
// so sessions are keyed by a generated session ID rather than a user account.
type WidgetSession struct {
	SessionID     string
	Conn          *websocket.Conn
	ClientIP      string
	LastHeartbeat time.Time
	MissedBeats   int
	mu            sync.Mutex
}

// UpdateHeartbeat records a heartbeat from the widget.
func (s *WidgetSession) UpdateHeartbeat() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.LastHeartbeat = time.Now()
	s.MissedBeats = 0
}

// IncrementMissedBeats bumps the missed-heartbeat counter.
func (s *WidgetSession) IncrementMissedBeats() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.MissedBeats++
}

// ShouldBeCleaned reports whether the connection is considered dead.
func (s *WidgetSession) ShouldBeCleaned() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.MissedBeats >= 3
}

// WriteMessage writes a JSON message to the widget. Gorilla connections allow
// only one concurrent writer, so writes go through the session lock.
func (s *WidgetSession) WriteMessage(message interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Conn.WriteJSON(message)
}
