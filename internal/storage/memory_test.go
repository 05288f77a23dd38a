package storage

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySessionStore(t *testing.T) {
	t.Run("get on an unknown channel reports no session", func(t *testing.T) {
		store := NewMemorySessionStore()

		session, ok := store.Get("C1")
		assert.False(t, ok)
		assert.Nil(t, session)
	})

	t.Run("start then get returns the session", func(t *testing.T) {
		store := NewMemorySessionStore()
		store.Start("C1", "sess-1")

		session, ok := store.Get("C1")
		require.True(t, ok)
		assert.Equal(t, "C1", session.ChannelID)
		assert.Equal(t, "sess-1", session.SessionID)
		assert.False(t, session.StartedAt.IsZero())
	})

	t.Run("sessions are isolated per channel", func(t *testing.T) {
		store := NewMemorySessionStore()
		store.Start("C1", "sess-1")
		store.Start("C2", "sess-2")

		first, ok := store.Get("C1")
		require.True(t, ok)
		second, ok := store.Get("C2")
		require.True(t, ok)

		assert.Equal(t, "sess-1", first.SessionID)
		assert.Equal(t, "sess-2", second.SessionID)

		store.End("C1")
		_, ok = store.Get("C1")
		assert.False(t, ok)
		_, ok = store.Get("C2")
		assert.True(t, ok, "ending one channel must not touch another")
	})

	t.Run("start supersedes an existing session", func(t *testing.T) {
		store := NewMemorySessionStore()
		store.Start("C1", "sess-old")
		store.Start("C1", "sess-new")

		session, ok := store.Get("C1")
		require.True(t, ok)
		assert.Equal(t, "sess-new", session.SessionID)
	})

	t.Run("end removes the session", func(t *testing.T) {
		store := NewMemorySessionStore()
		store.Start("C1", "sess-1")
		store.End("C1")

		_, ok := store.Get("C1")
		assert.False(t, ok)
	})

	t.Run("end on an unknown channel is a no-op", func(t *testing.T) {
		store := NewMemorySessionStore()

		// Must not panic
		store.End("C-missing")
	})

	t.Run("get returns a copy", func(t *testing.T) {
		store := NewMemorySessionStore()
		store.Start("C1", "sess-1")

		session, ok := store.Get("C1")
		require.True(t, ok)
		session.SessionID = "tampered"

		fresh, ok := store.Get("C1")
		require.True(t, ok)
		assert.Equal(t, "sess-1", fresh.SessionID)
	})

	t.Run("active lists every open session", func(t *testing.T) {
		store := NewMemorySessionStore()
		store.Start("C1", "sess-1")
		store.Start("C2", "sess-2")
		store.Start("C3", "sess-3")
		store.End("C2")

		active := store.Active()
		assert.Len(t, active, 2)
	})
}

func TestMemorySessionStoreConcurrent(t *testing.T) {
	store := NewMemorySessionStore()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			channel := fmt.Sprintf("C%d", id)
			store.Start(channel, fmt.Sprintf("sess-%d", id))
			store.Get(channel)
			if id%2 == 0 {
				store.End(channel)
			}
		}(i)
	}
	wg.Wait()

	assert.Len(t, store.Active(), 10)
}
