package service

import (
	"testing"

	"anonpairbot/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLifecycleFixture(users ...*core.User) (*Lifecycle, *fakeUserStore, *fakeSessionStore, *fakeTransport, *Registry) {
	us := newFakeUserStore(users...)
	ss := newFakeSessionStore()
	ft := &fakeTransport{}
	reg := NewRegistry()
	lc := NewLifecycle(us, ss, reg, ft, testTranslator(), testLogger())
	return lc, us, ss, ft, reg
}

func TestEndRemovesSessionAndNotifiesBothParties(t *testing.T) {
	a := completeUser(100, "en")
	b := completeUser(200, "ar")
	lc, _, ss, ft, reg := newLifecycleFixture(a, b)

	created, err := ss.Create(100, 200)
	require.NoError(t, err)
	reg.SetCursor(100, core.StateInSession)
	reg.SetCursor(200, core.StateInSession)

	ended, err := lc.End(b)
	require.NoError(t, err)
	assert.Equal(t, created.ID, ended.ID)
	assert.Zero(t, ss.count())

	assert.Equal(t, []string{"chat_ended"}, ft.textsFor(200))
	assert.Equal(t, []string{"partner_left"}, ft.textsFor(100))

	stA, _ := reg.Cursor(100)
	stB, _ := reg.Cursor(200)
	assert.Equal(t, core.StateProfileComplete, stA)
	assert.Equal(t, core.StateProfileComplete, stB)
}

func TestEndIsIdempotent(t *testing.T) {
	a := completeUser(100, "en")
	b := completeUser(200, "en")
	lc, _, ss, ft, _ := newLifecycleFixture(a, b)

	_, err := ss.Create(100, 200)
	require.NoError(t, err)

	first, err := lc.End(a)
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := lc.End(a)
	assert.ErrorIs(t, err, core.ErrNotInSession)
	assert.Nil(t, second)
	assert.Contains(t, ft.textsFor(100), "not_in_session")
}

func TestEndWithoutSessionReportsNotInSession(t *testing.T) {
	a := completeUser(100, "en")
	lc, _, _, ft, _ := newLifecycleFixture(a)

	_, err := lc.End(a)
	assert.ErrorIs(t, err, core.ErrNotInSession)
	assert.Equal(t, []string{"not_in_session"}, ft.textsFor(100))
}

func TestEndFreesBothForRematching(t *testing.T) {
	a := completeUser(100, "en")
	b := completeUser(200, "en")
	us := newFakeUserStore(a, b)
	ss := newFakeSessionStore()
	ft := &fakeTransport{}
	reg := NewRegistry()
	lc := NewLifecycle(us, ss, reg, ft, testTranslator(), testLogger())
	mm := NewMatchmaker(us, ss, reg, ft, testTranslator(), testLogger())

	_, err := mm.FindPartner(a)
	require.NoError(t, err)

	_, err = lc.End(a)
	require.NoError(t, err)

	// Termination is the only path back to eligibility; a new request may
	// pair the same two users again.
	session, err := mm.FindPartner(a)
	require.NoError(t, err)
	assert.Equal(t, int64(200), session.OtherOf(100))
}
