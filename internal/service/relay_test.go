package service

import (
	"fmt"
	"testing"

	"anonpairbot/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testModChannel int64 = -1001

func newRelayFixture() (*Relay, *fakeSessionStore, *fakeTransport) {
	ss := newFakeSessionStore()
	ft := &fakeTransport{}
	rl := NewRelay(ss, ft, testTranslator(), testModChannel, testLogger())
	return rl, ss, ft
}

func textContent(text string, ref core.MessageRef) core.Content {
	return core.Content{Kind: core.ContentText, Text: text, Ref: ref}
}

func TestRelayDeliversTextOnceAndMirrorsAnnotated(t *testing.T) {
	rl, ss, ft := newRelayFixture()
	_, err := ss.Create(100, 200)
	require.NoError(t, err)

	sender := completeUser(100, "en")
	err = rl.Relay(sender, textContent("hi", core.MessageRef{ChatID: 100, MessageID: 7}))
	require.NoError(t, err)

	assert.Equal(t, []string{"hi"}, ft.textsFor(200))
	assert.Equal(t, []string{fmt.Sprintf("User:%d → Partner:%d: %s", 100, 200, "hi")}, ft.textsFor(testModChannel))
	assert.Empty(t, ft.forwards)
}

func TestRelayPreservesMediaCategoryAndCaption(t *testing.T) {
	rl, ss, ft := newRelayFixture()
	_, err := ss.Create(100, 200)
	require.NoError(t, err)

	content := core.Content{
		Kind:    core.ContentPhoto,
		FileID:  "file-1",
		Caption: "look",
		Ref:     core.MessageRef{ChatID: 100, MessageID: 9},
	}
	err = rl.Relay(completeUser(100, "en"), content)
	require.NoError(t, err)

	require.Len(t, ft.contents, 1)
	assert.Equal(t, int64(200), ft.contents[0].ChatID)
	assert.Equal(t, core.ContentPhoto, ft.contents[0].Content.Kind)
	assert.Equal(t, "look", ft.contents[0].Content.Caption)

	// Non-text traffic is mirrored as a forwarded copy of the original.
	require.Len(t, ft.forwards, 1)
	assert.Equal(t, forwarded{ToChatID: testModChannel, FromChatID: 100, MessageID: 9}, ft.forwards[0])
}

func TestRelayForwardsPollsToThePartner(t *testing.T) {
	rl, ss, ft := newRelayFixture()
	_, err := ss.Create(100, 200)
	require.NoError(t, err)

	content := core.Content{Kind: core.ContentPoll, Ref: core.MessageRef{ChatID: 100, MessageID: 3}}
	require.NoError(t, rl.Relay(completeUser(100, "en"), content))

	require.Len(t, ft.forwards, 2)
	assert.Equal(t, forwarded{ToChatID: 200, FromChatID: 100, MessageID: 3}, ft.forwards[0])
	assert.Equal(t, forwarded{ToChatID: testModChannel, FromChatID: 100, MessageID: 3}, ft.forwards[1])
}

func TestRelayDropsUnknownKindsFromPartnerButStillMirrors(t *testing.T) {
	rl, ss, ft := newRelayFixture()
	_, err := ss.Create(100, 200)
	require.NoError(t, err)

	content := core.Content{Kind: core.ContentUnknown, Ref: core.MessageRef{ChatID: 100, MessageID: 4}}
	require.NoError(t, rl.Relay(completeUser(100, "en"), content))

	assert.Empty(t, ft.textsFor(200))
	assert.Empty(t, ft.contents)
	require.Len(t, ft.forwards, 1)
	assert.Equal(t, testModChannel, ft.forwards[0].ToChatID)
}

func TestRelayWithoutSessionNotifiesSenderOnly(t *testing.T) {
	rl, _, ft := newRelayFixture()

	err := rl.Relay(completeUser(100, "en"), textContent("hi", core.MessageRef{ChatID: 100, MessageID: 1}))
	assert.ErrorIs(t, err, core.ErrNotInSession)
	assert.Equal(t, []string{"not_in_session"}, ft.textsFor(100))
	assert.Empty(t, ft.textsFor(testModChannel))
	assert.Empty(t, ft.forwards)
}
