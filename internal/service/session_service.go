package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/brightlabs/sciencebot-go/internal/model"
	"go.uber.org/zap"
)

var ErrSessionOffline = fmt.Errorf("widget session is not connected")

// SessionService tracks live chat-widget connections. Visitors are anonymous,
// so everything is keyed by the generated session id.
type SessionService struct {
	sessions map[string]*model.WidgetSession
	mu       sync.RWMutex
	logger   *zap.Logger
}

// NewSessionService creates the registry and starts the heartbeat sweeper.
func NewSessionService(logger *zap.Logger) *SessionService {
	s := &SessionService{
		sessions: make(map[string]*model.WidgetSession),
		logger:   logger,
	}

	go s.heartbeatChecker()

	return s
}

// Register adds a widget connection to the registry.
func (s *SessionService) Register(session *model.WidgetSession) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.SessionID] = session

	s.logger.Info("widget session registered",
		zap.String("sessionId", session.SessionID),
		zap.String("clientIp", session.ClientIP))
}

// Send writes a JSON message to the session's widget.
func (s *SessionService) Send(sessionID string, message interface{}) error {
	s.mu.RLock()
	session, ok := s.sessions[sessionID]
	s.mu.RUnlock()

	if !ok {
		return ErrSessionOffline
	}

	if err := session.WriteMessage(message); err != nil {
		s.logger.Error("sending to widget failed",
			zap.String("sessionId", sessionID),
			zap.Error(err))
		go s.Remove(sessionID)
		return err
	}

	return nil
}

// UpdateHeartbeat records a heartbeat for the session.
func (s *SessionService) UpdateHeartbeat(sessionID string) bool {
	s.mu.RLock()
	session, ok := s.sessions[sessionID]
	s.mu.RUnlock()

	if !ok {
		return false
	}

	session.UpdateHeartbeat()
	return true
}

// Remove drops a session from the registry.
func (s *SessionService) Remove(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; ok {
		delete(s.sessions, sessionID)
		s.logger.Info("widget session removed", zap.String("sessionId", sessionID))
	}
}

// OnlineCount returns the number of connected widgets.
func (s *SessionService) OnlineCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// heartbeatChecker closes connections that stop sending heartbeats.
func (s *SessionService) heartbeatChecker() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		s.mu.Lock()

		now := time.Now()
		for sessionID, session := range s.sessions {
			if now.Sub(session.LastHeartbeat) <= 60*time.Second {
				continue
			}

			session.IncrementMissedBeats()

			if session.ShouldBeCleaned() {
				s.logger.Info("cleaning dead widget session",
					zap.String("sessionId", sessionID),
					zap.Int("missedBeats", session.MissedBeats))

				session.Conn.Close()
				delete(s.sessions, sessionID)
			} else {
				s.logger.Warn("widget heartbeat missed",
					zap.String("sessionId", sessionID),
					zap.Int("missedBeats", session.MissedBeats))
			}
		}

		s.mu.Unlock()
	}
}
