package bot

import (
	"context"
	"sync"

	"twentyone/internal/game"
)

// Session is one running match bound to a chat.
type Session struct {
	chatID  int64
	ctx     context.Context
	cancel  context.CancelFunc
	answers chan string
	done    chan struct{}
}

func newSession(parent context.Context, chatID int64) *Session {
	ctx, cancel := context.WithCancel(parent)
	return &Session{
		chatID:  chatID,
		ctx:     ctx,
		cancel:  cancel,
		answers: make(chan string),
		done:    make(chan struct{}),
	}
}

// Feed hands an answer to the match if it is waiting for one. Answers that
// arrive while no question is open are dropped.
func (s *Session) Feed(answer string) bool {
	select {
	case s.answers <- answer:
		return true
	default:
		return false
	}
}

func (s *Session) Stop() {
	s.cancel()
}

// Done is closed once the match goroutine has returned.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// chatPrompter asks questions in the chat and waits for Feed.
type chatPrompter struct {
	h       *Handler
	session *Session
}

func (p *chatPrompter) Ask(ctx context.Context, q game.Question) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	text := q.Text
	if q.Retry && q.Kind != game.AskName {
		text = "🤔 " + text
	}
	if kb, ok := keyboardFor(q.Kind); ok {
		p.h.sendWithKeyboard(p.session.chatID, text, kb)
	} else {
		p.h.send(p.session.chatID, text)
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case a := <-p.session.answers:
		return a, nil
	}
}

// Manager tracks the running sessions by chat.
type Manager struct {
	sessions map[int64]*Session
	mu       sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		sessions: make(map[int64]*Session),
	}
}

func (m *Manager) Get(chatID int64) *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessions[chatID]
}

// Add registers s unless the chat already has a session.
func (m *Manager) Add(s *Session) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[s.chatID]; ok {
		return false
	}
	m.sessions[s.chatID] = s
	return true
}

// Delete removes s, leaving a newer session for the same chat alone.
func (m *Manager) Delete(s *Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sessions[s.chatID] == s {
		delete(m.sessions, s.chatID)
	}
}

// StopAll cancels every session, for shutdown.
func (m *Manager) StopAll() {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, s := range m.sessions {
		s.Stop()
	}
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
