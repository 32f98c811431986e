package agent

import (
	"sync"
	"time"

	"github.com/sashabaranov/go-openai"
)

// sessionStore keeps a bounded per-user conversation history so the model can
// resolve follow-up questions. Sessions idle past the TTL are dropped.
type sessionStore struct {
	maxHistory int
	ttl        time.Duration

	mu       sync.Mutex
	sessions map[string]*session

	nowFn func() time.Time // replaced in tests
}

type session struct {
	messages []openai.ChatCompletionMessage
	lastSeen time.Time
}

func newSessionStore(maxHistory int, ttl time.Duration) *sessionStore {
	return &sessionStore{
		maxHistory: maxHistory,
		ttl:        ttl,
		sessions:   make(map[string]*session),
		nowFn:      time.Now,
	}
}

// history returns a copy of the user's conversation so far, dropping the
// session first if it sat idle past the TTL
func (s *sessionStore) history(userID string) []openai.ChatCompletionMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[userID]
	if !ok {
		return nil
	}
	if s.expired(sess) {
		delete(s.sessions, userID)
		return nil
	}

	out := make([]openai.ChatCompletionMessage, len(sess.messages))
	copy(out, sess.messages)
	return out
}

// append records one user/assistant exchange, trims the history to the
// configured bound and sweeps other idle sessions
func (s *sessionStore) append(userID, userText, assistantText string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, sess := range s.sessions {
		if id != userID && s.expired(sess) {
			delete(s.sessions, id)
		}
	}

	sess, ok := s.sessions[userID]
	if !ok || s.expired(sess) {
		sess = &session{}
		s.sessions[userID] = sess
	}

	sess.messages = append(sess.messages,
		openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: userText},
		openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: assistantText},
	)
	if s.maxHistory > 0 && len(sess.messages) > s.maxHistory {
		sess.messages = sess.messages[len(sess.messages)-s.maxHistory:]
	}
	sess.lastSeen = s.nowFn()
}

func (s *sessionStore) expired(sess *session) bool {
	return s.ttl > 0 && s.nowFn().Sub(sess.lastSeen) > s.ttl
}
