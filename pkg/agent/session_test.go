package agent

import (
	"testing"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStore_AppendAndHistory(t *testing.T) {
	s := newSessionStore(20, time.Minute)
	s.append("u1", "question", "answer")

	history := s.history("u1")
	require.Len(t, history, 2)
	assert.Equal(t, openai.ChatMessageRoleUser, history[0].Role)
	assert.Equal(t, "question", history[0].Content)
	assert.Equal(t, openai.ChatMessageRoleAssistant, history[1].Role)
	assert.Equal(t, "answer", history[1].Content)

	assert.Nil(t, s.history("u2"))
}

func TestSessionStore_BoundedHistory(t *testing.T) {
	s := newSessionStore(4, time.Minute)
	s.append("u1", "q1", "a1")
	s.append("u1", "q2", "a2")
	s.append("u1", "q3", "a3")

	history := s.history("u1")
	require.Len(t, history, 4)
	assert.Equal(t, "q2", history[0].Content)
	assert.Equal(t, "a3", history[3].Content)
}

func TestSessionStore_IdleEviction(t *testing.T) {
	now := time.Now()
	s := newSessionStore(20, 10*time.Minute)
	s.nowFn = func() time.Time { return now }

	s.append("u1", "q1", "a1")
	require.Len(t, s.history("u1"), 2)

	// within the TTL the session survives
	now = now.Add(10 * time.Minute)
	require.Len(t, s.history("u1"), 2)

	now = now.Add(time.Second)
	assert.Nil(t, s.history("u1"))
	assert.Empty(t, s.sessions)
}

func TestSessionStore_AppendSweepsIdleSessions(t *testing.T) {
	now := time.Now()
	s := newSessionStore(20, 10*time.Minute)
	s.nowFn = func() time.Time { return now }

	s.append("idle", "q", "a")
	now = now.Add(11 * time.Minute)
	s.append("active", "q", "a")

	_, idleKept := s.sessions["idle"]
	assert.False(t, idleKept)
	require.Len(t, s.history("active"), 2)
}

func TestSessionStore_ExpiredSessionRestartsOnAppend(t *testing.T) {
	now := time.Now()
	s := newSessionStore(20, 10*time.Minute)
	s.nowFn = func() time.Time { return now }

	s.append("u1", "old question", "old answer")
	now = now.Add(11 * time.Minute)
	s.append("u1", "new question", "new answer")

	history := s.history("u1")
	require.Len(t, history, 2)
	assert.Equal(t, "new question", history[0].Content)
}

func TestSessionStore_ZeroTTLNeverExpires(t *testing.T) {
	now := time.Now()
	s := newSessionStore(20, 0)
	s.nowFn = func() time.Time { return now }

	s.append("u1", "q", "a")
	now = now.Add(24 * time.Hour)
	assert.Len(t, s.history("u1"), 2)
}

func TestSessionStore_HistoryReturnsCopy(t *testing.T) {
	s := newSessionStore(20, time.Minute)
	s.append("u1", "q", "a")

	history := s.history("u1")
	history[0].Content = "mutated"

	assert.Equal(t, "q", s.history("u1")[0].Content)
}
