package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/prawat/portfolio/internal/contact"
)

func newTestRegistry(ttl time.Duration) *Registry {
	return NewRegistry(ttl, 60, 2, func() *contact.Form {
		return contact.NewForm(nil, contact.WithResetDelay(0))
	}, nil)
}

func TestGetCreatesAndReuses(t *testing.T) {
	r := newTestRegistry(time.Minute)

	s, created := r.Get("")
	require.True(t, created)
	require.NotEmpty(t, s.ID)

	again, created := r.Get(s.ID)
	require.False(t, created)
	require.Same(t, s, again)

	other, created := r.Get("not-a-uuid")
	require.True(t, created)
	require.NotEqual(t, s.ID, other.ID)
	require.Equal(t, 2, r.Len())
}

func TestSweepClosesIdleSessions(t *testing.T) {
	r := newTestRegistry(time.Minute)
	now := time.Now()
	r.now = func() time.Time { return now }

	idle, _ := r.Get("")
	now = now.Add(45 * time.Second)
	fresh, _ := r.Get("")

	now = now.Add(30 * time.Second)
	require.Equal(t, 1, r.Sweep())

	_, ok := r.Lookup(idle.ID)
	require.False(t, ok)
	_, ok = r.Lookup(fresh.ID)
	require.True(t, ok)

	idle.Form.SetField("name", "A")
	idle.Form.SetField("email", "a@x.com")
	idle.Form.SetField("message", "hi")
	_, err := idle.Form.Submit(context.Background())
	require.ErrorIs(t, err, contact.ErrClosed)
}

func TestAllowLimitsBursts(t *testing.T) {
	r := newTestRegistry(time.Minute)
	s, _ := r.Get("")
	require.True(t, s.Allow())
	require.True(t, s.Allow())
	require.False(t, s.Allow())
}

func TestRunClosesEverythingOnShutdown(t *testing.T) {
	r := newTestRegistry(time.Hour)
	r.Get("")
	r.Get("")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		r.Run(ctx)
		close(done)
	}()
	cancel()
	<-done
	require.Zero(t, r.Len())
}
