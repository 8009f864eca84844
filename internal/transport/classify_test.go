package transport

import (
	"testing"

	"anonpairbot/internal/core"
	"anonpairbot/pkg/telegram"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inbound() *telegram.Message {
	return &telegram.Message{
		MessageID: 42,
		Chat:      &telegram.Chat{ID: 100},
	}
}

func TestClassifyKeepsTheMessageRef(t *testing.T) {
	msg := inbound()
	msg.Text = "hi"

	c, ok := Classify(msg)
	require.True(t, ok)
	assert.Equal(t, core.MessageRef{ChatID: 100, MessageID: 42}, c.Ref)
	assert.Equal(t, core.ContentText, c.Kind)
	assert.Equal(t, "hi", c.Text)
}

func TestClassifyPicksTheLargestPhoto(t *testing.T) {
	msg := inbound()
	msg.Caption = "look"
	msg.Photo = []telegram.PhotoSize{
		{FileID: "small", FileSize: 100},
		{FileID: "medium", FileSize: 5000},
		{FileID: "large", FileSize: 90000},
	}

	c, ok := Classify(msg)
	require.True(t, ok)
	assert.Equal(t, core.ContentPhoto, c.Kind)
	assert.Equal(t, "large", c.FileID)
	assert.Equal(t, "look", c.Caption)
}

func TestClassifyAnimationBeatsItsDocumentShadow(t *testing.T) {
	msg := inbound()
	msg.Animation = &telegram.Animation{FileID: "anim-1"}
	msg.Document = &telegram.Document{FileID: "doc-1"}

	c, ok := Classify(msg)
	require.True(t, ok)
	assert.Equal(t, core.ContentAnimation, c.Kind)
	assert.Equal(t, "anim-1", c.FileID)
}

func TestClassifyVenueBeatsItsLocationShadow(t *testing.T) {
	msg := inbound()
	msg.Venue = &telegram.Venue{
		Location: telegram.Location{Latitude: 1.5, Longitude: 2.5},
		Title:    "Cafe",
		Address:  "Main St 1",
	}
	msg.Location = &telegram.Location{Latitude: 1.5, Longitude: 2.5}

	c, ok := Classify(msg)
	require.True(t, ok)
	assert.Equal(t, core.ContentVenue, c.Kind)
	require.NotNil(t, c.Venue)
	assert.Equal(t, "Cafe", c.Venue.Title)
	assert.Equal(t, 1.5, c.Venue.Location.Latitude)
	assert.Nil(t, c.Location)
}

func TestClassifyMediaKinds(t *testing.T) {
	cases := []struct {
		name string
		set  func(*telegram.Message)
		kind core.ContentKind
	}{
		{"audio", func(m *telegram.Message) { m.Audio = &telegram.Audio{FileID: "f"} }, core.ContentAudio},
		{"video", func(m *telegram.Message) { m.Video = &telegram.Video{FileID: "f"} }, core.ContentVideo},
		{"document", func(m *telegram.Message) { m.Document = &telegram.Document{FileID: "f"} }, core.ContentDocument},
		{"voice", func(m *telegram.Message) { m.Voice = &telegram.Voice{FileID: "f"} }, core.ContentVoice},
		{"sticker", func(m *telegram.Message) { m.Sticker = &telegram.Sticker{FileID: "f"} }, core.ContentSticker},
		{"video note", func(m *telegram.Message) { m.VideoNote = &telegram.VideoNote{FileID: "f"} }, core.ContentVideoNote},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			msg := inbound()
			tc.set(msg)

			c, ok := Classify(msg)
			require.True(t, ok)
			assert.Equal(t, tc.kind, c.Kind)
			assert.Equal(t, "f", c.FileID)
		})
	}
}

func TestClassifyContact(t *testing.T) {
	msg := inbound()
	msg.Contact = &telegram.Contact{PhoneNumber: "+620000", FirstName: "A", LastName: "B"}

	c, ok := Classify(msg)
	require.True(t, ok)
	assert.Equal(t, core.ContentContact, c.Kind)
	require.NotNil(t, c.Contact)
	assert.Equal(t, "+620000", c.Contact.PhoneNumber)
}

func TestClassifyPollCarriesOnlyTheRef(t *testing.T) {
	msg := inbound()
	msg.Poll = &telegram.Poll{ID: "p1", Question: "?"}

	c, ok := Classify(msg)
	require.True(t, ok)
	assert.Equal(t, core.ContentPoll, c.Kind)
	assert.Empty(t, c.FileID)
}

func TestClassifyRejectsUnsupportedMessages(t *testing.T) {
	c, ok := Classify(inbound()) // e.g. a dice or service message

	assert.False(t, ok)
	assert.Equal(t, core.ContentUnknown, c.Kind)
	assert.Equal(t, core.MessageRef{ChatID: 100, MessageID: 42}, c.Ref)
}
