package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sherlockhq/leakengine/internal/models"
)

func TestResponseCacheHitAndExpiry(t *testing.T) {
	c := NewResponseCache[[]string](5 * time.Minute)
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	key := Key("channels", "org-1", 90)
	_, ok := c.Get(key)
	assert.False(t, ok)

	c.Set(key, []string{"a", "b"})
	got, ok := c.Get(key)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, got)

	now = now.Add(6 * time.Minute)
	_, ok = c.Get(key)
	assert.False(t, ok)
}

func TestResponseCacheKeysAreScoped(t *testing.T) {
	c := NewResponseCache[int](time.Minute)
	c.Set(Key("channels", "org-1", 90), 1)

	_, ok := c.Get(Key("channels", "org-1", 30))
	assert.False(t, ok)
	_, ok = c.Get(Key("leaks", "org-1", 90))
	assert.False(t, ok)
}

func TestConversationStore(t *testing.T) {
	s := NewConversationStore()

	assert.Empty(t, s.History("missing"))

	s.Append("sess-1", nil)
	assert.Empty(t, s.History("sess-1"))

	s.Append("sess-1", &models.Message{Role: models.RoleAssistant, Content: "first"})
	s.Append("sess-1", &models.Message{Role: models.RoleAssistant, Content: "second"})
	s.Append("sess-2", &models.Message{Role: models.RoleAssistant, Content: "other"})

	got := s.History("sess-1")
	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].Content)
	assert.Equal(t, "second", got[1].Content)
	assert.Len(t, s.History("sess-2"), 1)

	// History returns a copy; mutating it must not touch the log.
	got[0].Content = "mutated"
	assert.Equal(t, "first", s.History("sess-1")[0].Content)
}
