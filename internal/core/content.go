package core

// ContentKind tags one relayable message category. The set matches the
// Telegram message types the relay understands; anything else is dropped
// from the partner-facing relay.
type ContentKind string

const (
	ContentText      ContentKind = "text"
	ContentPhoto     ContentKind = "photo"
	ContentAudio     ContentKind = "audio"
	ContentVideo     ContentKind = "video"
	ContentDocument  ContentKind = "document"
	ContentVoice     ContentKind = "voice"
	ContentSticker   ContentKind = "sticker"
	ContentAnimation ContentKind = "animation"
	ContentVideoNote ContentKind = "video_note"
	ContentContact   ContentKind = "contact"
	ContentLocation  ContentKind = "location"
	ContentPoll      ContentKind = "poll"
	ContentVenue     ContentKind = "venue"
	ContentUnknown   ContentKind = ""
)

// Relayable reports whether the kind can be delivered to a partner at all.
func (k ContentKind) Relayable() bool {
	switch k {
	case ContentText, ContentPhoto, ContentAudio, ContentVideo, ContentDocument,
		ContentVoice, ContentSticker, ContentAnimation, ContentVideoNote,
		ContentContact, ContentLocation, ContentPoll, ContentVenue:
		return true
	}
	return false
}

// MessageRef points back at the original inbound message, for forwarding.
type MessageRef struct {
	ChatID    int64
	MessageID int
}

type Contact struct {
	PhoneNumber string
	FirstName   string
	LastName    string
}

type Location struct {
	Latitude  float64
	Longitude float64
}

type Venue struct {
	Location Location
	Title    string
	Address  string
}

// Content is the tagged union handed to the relay. Exactly the fields that
// the Kind calls for are set; Ref is always set.
type Content struct {
	Kind    ContentKind
	Text    string
	FileID  string
	Caption string

	Contact  *Contact
	Location *Location
	Venue    *Venue

	Ref MessageRef
}
