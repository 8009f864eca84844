package transport

import (
	"anonpairbot/internal/core"
	"anonpairbot/pkg/telegram"
)

// Classify maps an inbound message onto the content union. The second
// return is false for categories the relay does not understand.
func Classify(msg *telegram.Message) (core.Content, bool) {
	c := core.Content{
		Caption: msg.Caption,
		Ref: core.MessageRef{
			ChatID:    msg.Chat.ID,
			MessageID: msg.MessageID,
		},
	}

	switch {
	case msg.Text != "":
		c.Kind = core.ContentText
		c.Text = msg.Text

	case len(msg.Photo) > 0:
		c.Kind = core.ContentPhoto
		// The last size is the largest.
		c.FileID = msg.Photo[len(msg.Photo)-1].FileID

	case msg.Audio != nil:
		c.Kind = core.ContentAudio
		c.FileID = msg.Audio.FileID

	case msg.Video != nil:
		c.Kind = core.ContentVideo
		c.FileID = msg.Video.FileID

	// Animations arrive with the document field set as well; check them
	// before documents.
	case msg.Animation != nil:
		c.Kind = core.ContentAnimation
		c.FileID = msg.Animation.FileID

	case msg.Document != nil:
		c.Kind = core.ContentDocument
		c.FileID = msg.Document.FileID

	case msg.Voice != nil:
		c.Kind = core.ContentVoice
		c.FileID = msg.Voice.FileID

	case msg.Sticker != nil:
		c.Kind = core.ContentSticker
		c.FileID = msg.Sticker.FileID

	case msg.VideoNote != nil:
		c.Kind = core.ContentVideoNote
		c.FileID = msg.VideoNote.FileID

	case msg.Contact != nil:
		c.Kind = core.ContentContact
		c.Contact = &core.Contact{
			PhoneNumber: msg.Contact.PhoneNumber,
			FirstName:   msg.Contact.FirstName,
			LastName:    msg.Contact.LastName,
		}

	// Venue messages also carry a location; check them first.
	case msg.Venue != nil:
		c.Kind = core.ContentVenue
		c.Venue = &core.Venue{
			Location: core.Location{
				Latitude:  msg.Venue.Location.Latitude,
				Longitude: msg.Venue.Location.Longitude,
			},
			Title:   msg.Venue.Title,
			Address: msg.Venue.Address,
		}

	case msg.Location != nil:
		c.Kind = core.ContentLocation
		c.Location = &core.Location{
			Latitude:  msg.Location.Latitude,
			Longitude: msg.Location.Longitude,
		}

	case msg.Poll != nil:
		c.Kind = core.ContentPoll

	default:
		return core.Content{Kind: core.ContentUnknown, Ref: c.Ref}, false
	}

	return c, true
}
