package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/iyilik/pkg/identity"
	"tableflip.dev/iyilik/pkg/journal"
	"tableflip.dev/iyilik/pkg/store"
	"tableflip.dev/iyilik/pkg/timeutil"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newService(t *testing.T) (*Service, *clock) {
	t.Helper()
	kv := store.NewMemory()
	c := &clock{t: time.Date(2026, 10, 19, 9, 30, 0, 0, time.Local)}
	return &Service{
		Journal:  journal.New(kv, journal.WithClock(c.now)),
		Identity: identity.New(kv, nil),
	}, c
}

func intPtr(i int) *int { return &i }

func fields(t *testing.T, err error) map[string]string {
	t.Helper()
	require.ErrorIs(t, err, ErrInvalid)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	return verr.Fields
}

func TestLoginValidation(t *testing.T) {
	tests := []struct {
		name  string
		creds Credentials
		field string
		msg   string
	}{
		{"missing username", Credentials{Username: "", Password: "secret"}, "Username", "please enter a username"},
		{"blank username", Credentials{Username: "   ", Password: "secret"}, "Username", "please enter a username"},
		{"blank password", Credentials{Username: "deniz", Password: "   "}, "Password", "please enter a password"},
		{"short password", Credentials{Username: "deniz", Password: "ab"}, "Password", "password must be at least 3 characters"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newService(t)
			_, err := svc.Login(context.Background(), tt.creds)
			assert.Equal(t, tt.msg, fields(t, err)[tt.field])

			sess, err := svc.Session(context.Background())
			require.NoError(t, err)
			assert.False(t, sess.Identified(), "nothing saved on failure")
		})
	}
}

func TestLoginLogout(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	_, err := svc.RequireSession(ctx)
	assert.ErrorIs(t, err, ErrAnonymous)

	sess, err := svc.Login(ctx, Credentials{Username: " deniz ", Password: "abc"})
	require.NoError(t, err)
	assert.Equal(t, "deniz", sess.Username)

	sess, err = svc.RequireSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, identity.Identified, sess.State())

	require.NoError(t, svc.Logout(ctx))
	_, err = svc.RequireSession(ctx)
	assert.ErrorIs(t, err, ErrAnonymous)
}

func TestNewEntryValidation(t *testing.T) {
	tests := []struct {
		name  string
		in    NewEntryInput
		field string
		msg   string
	}{
		{"no mood", NewEntryInput{Energy: 5, SmallWin: "walked"}, "Mood", "please pick a mood"},
		{"mood out of range", NewEntryInput{Mood: intPtr(5), Energy: 5, SmallWin: "walked"}, "Mood", "mood must be between 0 and 4"},
		{"energy too low", NewEntryInput{Mood: intPtr(2), Energy: 0, SmallWin: "walked"}, "Energy", "energy must be between 1 and 10"},
		{"energy rounds below 1", NewEntryInput{Mood: intPtr(2), Energy: 0.4, SmallWin: "walked"}, "Energy", "energy must be between 1 and 10"},
		{"energy rounds above 10", NewEntryInput{Mood: intPtr(2), Energy: 10.5, SmallWin: "walked"}, "Energy", "energy must be between 1 and 10"},
		{"blank win", NewEntryInput{Mood: intPtr(2), Energy: 5, SmallWin: " \t"}, "SmallWin", "what was today's small win?"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newService(t)
			_, err := svc.NewEntry(context.Background(), tt.in)
			assert.Equal(t, tt.msg, fields(t, err)[tt.field])

			all, err := svc.Entries(context.Background())
			require.NoError(t, err)
			assert.Empty(t, all)
		})
	}
}

func TestNewEntryNormalisesInput(t *testing.T) {
	ctx := context.Background()
	svc, c := newService(t)

	e, err := svc.NewEntry(ctx, NewEntryInput{Mood: intPtr(0), Energy: 6.6, SmallWin: "  called mum ", Notes: " tired \n"})
	require.NoError(t, err)
	assert.Equal(t, 0, e.MoodIndex, "very bad is a valid pick")
	assert.Equal(t, 7, e.EnergyLevel)
	assert.Equal(t, "called mum", e.SmallWin)
	assert.Equal(t, "tired", e.Notes)
	assert.Equal(t, timeutil.FormatDate(c.t), e.Date)
	assert.Equal(t, c.t.UnixMilli(), e.CreatedAt)
	assert.NotEmpty(t, e.ID)

	got, ok, err := svc.Entry(ctx, e.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, e, got)

	require.NoError(t, svc.Delete(ctx, e.ID))
	require.NoError(t, svc.Delete(ctx, e.ID), "second delete is a no-op")
	_, ok, err = svc.Entry(ctx, e.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNewEntryRoundsEnergyBeforeChecking(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	for in, want := range map[float64]int{0.6: 1, 1: 1, 5.5: 6, 10.4: 10} {
		e, err := svc.NewEntry(ctx, NewEntryInput{Mood: intPtr(2), Energy: in, SmallWin: "walked"})
		require.NoError(t, err, "energy %v", in)
		assert.Equal(t, want, e.EnergyLevel, "energy %v", in)
	}
}

func TestDashboard(t *testing.T) {
	ctx := context.Background()
	svc, c := newService(t)

	_, err := svc.Dashboard(ctx)
	assert.ErrorIs(t, err, ErrAnonymous)

	_, err = svc.Login(ctx, Credentials{Username: "deniz", Password: "abc"})
	require.NoError(t, err)

	d, err := svc.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, "deniz", d.Session.Username)
	assert.Equal(t, "Good morning", d.Greeting)
	assert.Nil(t, d.Today)
	assert.Equal(t, 0, d.Entries)

	c.t = c.t.AddDate(0, 0, -1)
	_, err = svc.NewEntry(ctx, NewEntryInput{Mood: intPtr(3), Energy: 5, SmallWin: "yesterday"})
	require.NoError(t, err)
	c.t = c.t.AddDate(0, 0, 1).Add(9 * time.Hour)
	e, err := svc.NewEntry(ctx, NewEntryInput{Mood: intPtr(4), Energy: 8, SmallWin: "today"})
	require.NoError(t, err)

	d, err = svc.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Good evening", d.Greeting)
	require.NotNil(t, d.Today)
	assert.Equal(t, e.ID, d.Today.ID)
	assert.Equal(t, 2, d.Entries)
}

func TestGreeting(t *testing.T) {
	at := func(h int) time.Time { return time.Date(2026, 10, 19, h, 0, 0, 0, time.Local) }
	assert.Equal(t, "Good morning", Greeting(at(0)))
	assert.Equal(t, "Good morning", Greeting(at(11)))
	assert.Equal(t, "Good afternoon", Greeting(at(12)))
	assert.Equal(t, "Good afternoon", Greeting(at(17)))
	assert.Equal(t, "Good evening", Greeting(at(18)))
}

func TestProgressWindow(t *testing.T) {
	ctx := context.Background()
	svc, c := newService(t)
	start := c.t

	for i, mood := range []int{1, 2, 4} {
		c.t = start.AddDate(0, 0, -10+i*5) // 10, 5 and 0 days ago
		_, err := svc.NewEntry(ctx, NewEntryInput{Mood: intPtr(mood), Energy: float64(3 + i*3), SmallWin: "win"})
		require.NoError(t, err)
	}
	c.t = start

	all, err := svc.Progress(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, all.Entries)
	assert.True(t, all.Since.IsZero())
	assert.Equal(t, 6.0, all.AverageEnergy)
	assert.Equal(t, 1, all.Streak)

	week, err := svc.Progress(ctx, 7*24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 2, week.Entries)
	assert.Equal(t, start.Add(-7*24*time.Hour), week.Since)
	assert.Equal(t, 7.5, week.AverageEnergy)
	assert.Equal(t, "good", week.MoodLabel)
}

func TestUnconfiguredService(t *testing.T) {
	var svc Service
	_, err := svc.Entries(context.Background())
	assert.ErrorIs(t, err, errNoJournal)
}
