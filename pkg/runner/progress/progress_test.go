package progress

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"tableflip.dev/iyilik/pkg/app"
	"tableflip.dev/iyilik/pkg/commands/options"
	"tableflip.dev/iyilik/pkg/identity"
	"tableflip.dev/iyilik/pkg/journal"
	"tableflip.dev/iyilik/pkg/store"
)

func init() {
	color.NoColor = true
}

type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newService(t *testing.T, kv store.Store) *app.Service {
	t.Helper()
	svc := &app.Service{
		Journal:  journal.New(kv),
		Identity: identity.New(kv, nil),
	}
	_, err := svc.Login(context.Background(), app.Credentials{Username: "deniz", Password: "abc"})
	require.NoError(t, err)
	return svc
}

func mood(i int) *int { return &i }

func TestProgressOnce(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	svc := newService(t, kv)
	_, err := svc.NewEntry(ctx, app.NewEntryInput{Mood: mood(4), Energy: 8, SmallWin: "ran"})
	require.NoError(t, err)

	var buf bytes.Buffer
	p := Progress{Output: &options.OutputOptions{Out: &buf}, Service: svc}
	require.NoError(t, p.Do(ctx))

	out := buf.String()
	assert.Contains(t, out, "Progress")
	assert.Contains(t, out, "1 day")
	assert.Contains(t, out, "8.0/10")
}

func TestProgressWatchNeedsWatcher(t *testing.T) {
	kv := store.NewMemory()
	svc := newService(t, kv)

	var buf bytes.Buffer
	p := Progress{Watch: true, Store: kv, Output: &options.OutputOptions{Out: &buf}, Service: svc}
	err := p.Do(context.Background())
	assert.ErrorIs(t, err, store.ErrWatchUnsupported)
	assert.Contains(t, buf.String(), "Progress")
}

func TestProgressWatchRerenders(t *testing.T) {
	defer goleak.VerifyNone(t)

	kv, err := store.NewDiskv(t.TempDir())
	require.NoError(t, err)
	defer kv.Close()
	svc := newService(t, kv)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out := &lockedBuffer{}
	p := Progress{Watch: true, Store: kv, Output: &options.OutputOptions{Out: out}, Service: svc}
	done := make(chan error, 1)
	go func() { done <- p.Do(ctx) }()

	// The watcher starts after the first render, so keep writing until a
	// change is picked up.
	deadline := time.Now().Add(3 * time.Second)
	for !strings.Contains(out.String(), "updated") {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for a rerender, got:\n%s", out.String())
		}
		_, err := svc.NewEntry(ctx, app.NewEntryInput{Mood: mood(3), Energy: 6, SmallWin: "walked"})
		require.NoError(t, err)
		time.Sleep(100 * time.Millisecond)
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}
