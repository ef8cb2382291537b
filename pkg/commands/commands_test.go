package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tableflip.dev/iyilik/pkg/app"
	"tableflip.dev/iyilik/pkg/commands/options"
	"tableflip.dev/iyilik/pkg/entry"
	"tableflip.dev/iyilik/pkg/store"
)

func init() {
	color.NoColor = true
}

func run(t *testing.T, kv store.Store, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	err := Execute(context.Background(), args, WithStore(kv), WithOutput(&buf), WithLogger(zap.NewNop()))
	return buf.String(), err
}

func login(t *testing.T, kv store.Store) {
	t.Helper()
	out, err := run(t, kv, "login", "-u", "deniz", "-p", "abc")
	require.NoError(t, err)
	assert.Contains(t, out, "logged in as deniz")
}

func TestGatedCommandsNeedSession(t *testing.T) {
	kv := store.NewMemory()

	for _, args := range [][]string{
		{"list"},
		{"add", "-m", "good", "-w", "walk"},
		{"progress"},
		{"dashboard"},
		{"today"},
		{"logout"},
	} {
		_, err := run(t, kv, args...)
		assert.ErrorIs(t, err, app.ErrAnonymous, "%v", args)
	}

	// Public commands still work.
	out, err := run(t, kv, "key")
	require.NoError(t, err)
	assert.Contains(t, out, "great")
}

func TestLoginValidation(t *testing.T) {
	kv := store.NewMemory()

	_, err := run(t, kv, "login", "-u", "deniz", "-p", "ab")
	require.ErrorIs(t, err, app.ErrInvalid)
	assert.Contains(t, err.Error(), "at least 3 characters")

	_, err = run(t, kv, "list")
	assert.ErrorIs(t, err, app.ErrAnonymous)
}

func TestWhoAmI(t *testing.T) {
	kv := store.NewMemory()

	out, err := run(t, kv, "whoami")
	assert.ErrorIs(t, err, app.ErrAnonymous)
	assert.Contains(t, out, "not logged in")

	out, err = run(t, kv, "whoami", "--json")
	require.Error(t, err)
	assert.True(t, options.Reported(err))
	assert.Contains(t, out, `"state": "anonymous"`)

	login(t, kv)
	out, err = run(t, kv, "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "deniz")

	_, err = run(t, kv, "logout")
	require.NoError(t, err)
	_, err = run(t, kv, "whoami")
	assert.ErrorIs(t, err, app.ErrAnonymous)
}

func TestEntryLifecycle(t *testing.T) {
	kv := store.NewMemory()
	login(t, kv)

	out, err := run(t, kv, "add", "--json", "-m", "good", "-e", "6.6", "-w", "  went for a walk ")
	require.NoError(t, err)
	var added entry.Entry
	require.NoError(t, json.Unmarshal([]byte(out), &added))
	assert.NotEmpty(t, added.ID)
	assert.Equal(t, int(entry.Good), added.MoodIndex)
	assert.Equal(t, 7, added.EnergyLevel)
	assert.Equal(t, "went for a walk", added.SmallWin)

	out, err = run(t, kv, "list", "--json")
	require.NoError(t, err)
	var listed []entry.Entry
	require.NoError(t, json.Unmarshal([]byte(out), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, added.ID, listed[0].ID)

	out, err = run(t, kv, "show", added.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "went for a walk")

	out, err = run(t, kv, "today", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, added.ID)

	out, err = run(t, kv, "progress", "--json", "--window", "1w")
	require.NoError(t, err)
	var report struct {
		Entries   int    `json:"entries"`
		Streak    int    `json:"streak"`
		MoodLabel string `json:"moodLabel"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 1, report.Entries)
	assert.Equal(t, 1, report.Streak)
	assert.Equal(t, "good", report.MoodLabel)

	out, err = run(t, kv, "delete", added.ID, "missing")
	require.NoError(t, err)
	assert.Contains(t, out, "deleted "+added.ID)
	assert.Contains(t, out, "no entry missing, nothing to delete")

	_, err = run(t, kv, "show", added.ID)
	assert.Error(t, err)
}

func TestAddValidation(t *testing.T) {
	kv := store.NewMemory()
	login(t, kv)

	_, err := run(t, kv, "add", "-w", "walk")
	require.ErrorIs(t, err, app.ErrInvalid)
	assert.Contains(t, err.Error(), "please pick a mood")

	_, err = run(t, kv, "add", "-m", "ecstatic", "-w", "walk")
	assert.Error(t, err)

	_, err = run(t, kv, "add", "-m", "good", "-e", "11", "-w", "walk")
	require.ErrorIs(t, err, app.ErrInvalid)
	assert.Contains(t, err.Error(), "energy must be between 1 and 10")
}

func TestJSONErrors(t *testing.T) {
	kv := store.NewMemory()
	login(t, kv)

	out, err := run(t, kv, "add", "--json", "-m", "good")
	require.Error(t, err)
	assert.True(t, options.Reported(err))
	assert.True(t, errors.Is(err, app.ErrInvalid))

	var body map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	assert.Contains(t, body["error"], "what was today's small win?")
}

func TestDemoSeedsEntries(t *testing.T) {
	kv := store.NewMemory()
	login(t, kv)

	_, err := run(t, kv, "demo", "--days", "5", "--seed", "7")
	require.NoError(t, err)

	out, err := run(t, kv, "progress", "--json")
	require.NoError(t, err)
	var report struct {
		Entries int `json:"entries"`
		Streak  int `json:"streak"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 5, report.Entries)
	assert.Equal(t, 5, report.Streak)
}

func TestExecuteClosesStoreWhenCommandFails(t *testing.T) {
	var buf bytes.Buffer
	e := newEnv(WithOutput(&buf), WithLogger(zap.NewNop()))

	// Nobody is logged in to the fresh store, so the gate fails.
	err := e.execute(context.Background(), []string{"--ephemeral", "list"})
	require.ErrorIs(t, err, app.ErrAnonymous)

	require.NotNil(t, e.kv)
	_, _, err = e.kv.Get(context.Background(), "iyilik_user")
	assert.ErrorIs(t, err, store.ErrClosed)
}

func TestExecuteKeepsInjectedStoreOpen(t *testing.T) {
	kv := store.NewMemory()
	_, err := run(t, kv, "list")
	require.ErrorIs(t, err, app.ErrAnonymous)

	_, _, err = kv.Get(context.Background(), "iyilik_user")
	assert.NoError(t, err)
}
