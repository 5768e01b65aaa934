package boostagram

import (
	stderrors "errors"
	"fmt"

	coreerrors "github.com/Moooover/blip-10/core/errors"
)

var ErrValidation = stderrors.New("boostagram validation failed")

// Builder assembles a Boostagram field by field. Intermediate states are not
// validated; Build enforces that at least one anchor field is set.
type Builder struct {
	boostagram Boostagram
}

func NewBuilder() *Builder {
	return &Builder{}
}

// BuilderFrom seeds a builder with a copy of an existing record.
func BuilderFrom(seed Boostagram) *Builder {
	return &Builder{boostagram: seed.Clone()}
}

// Build returns a copy of the assembled record, so the builder can keep
// being used afterwards.
func (b *Builder) Build() (Boostagram, error) {
	if !b.boostagram.HasAnchor() {
		return Boostagram{}, coreerrors.Terminal(
			fmt.Errorf("%w: either podcast, feed id, url or guid must be set", ErrValidation),
			coreerrors.CategoryValidation,
			"anchor_missing",
			"set at least one of podcast, feed id, url or guid",
		)
	}
	return b.boostagram.Clone(), nil
}

func (b *Builder) Podcast(podcast string) *Builder {
	b.boostagram.Podcast = &podcast
	return b
}

func (b *Builder) PodcastOpt(podcast *string) *Builder {
	b.boostagram.Podcast = clonePtr(podcast)
	return b
}

func (b *Builder) FeedID(feedID uint64) *Builder {
	b.boostagram.FeedID = &feedID
	return b
}

func (b *Builder) FeedIDOpt(feedID *uint64) *Builder {
	b.boostagram.FeedID = clonePtr(feedID)
	return b
}

func (b *Builder) URL(url string) *Builder {
	b.boostagram.URL = &url
	return b
}

func (b *Builder) URLOpt(url *string) *Builder {
	b.boostagram.URL = clonePtr(url)
	return b
}

func (b *Builder) GUID(guid string) *Builder {
	b.boostagram.GUID = &guid
	return b
}

func (b *Builder) GUIDOpt(guid *string) *Builder {
	b.boostagram.GUID = clonePtr(guid)
	return b
}

func (b *Builder) Episode(episode string) *Builder {
	b.boostagram.Episode = &episode
	return b
}

func (b *Builder) EpisodeOpt(episode *string) *Builder {
	b.boostagram.Episode = clonePtr(episode)
	return b
}

func (b *Builder) ItemID(itemID uint64) *Builder {
	b.boostagram.ItemID = &itemID
	return b
}

func (b *Builder) ItemIDOpt(itemID *uint64) *Builder {
	b.boostagram.ItemID = clonePtr(itemID)
	return b
}

func (b *Builder) EpisodeGUID(episodeGUID string) *Builder {
	b.boostagram.EpisodeGUID = &episodeGUID
	return b
}

func (b *Builder) EpisodeGUIDOpt(episodeGUID *string) *Builder {
	b.boostagram.EpisodeGUID = clonePtr(episodeGUID)
	return b
}

func (b *Builder) Time(time string) *Builder {
	b.boostagram.Time = &time
	return b
}

func (b *Builder) TimeOpt(time *string) *Builder {
	b.boostagram.Time = clonePtr(time)
	return b
}

func (b *Builder) TS(ts uint64) *Builder {
	b.boostagram.TS = &ts
	return b
}

func (b *Builder) TSOpt(ts *uint64) *Builder {
	b.boostagram.TS = clonePtr(ts)
	return b
}

func (b *Builder) Action(action Action) *Builder {
	b.boostagram.Action = &action
	return b
}

func (b *Builder) ActionOpt(action *Action) *Builder {
	b.boostagram.Action = clonePtr(action)
	return b
}

func (b *Builder) AppName(appName string) *Builder {
	b.boostagram.AppName = &appName
	return b
}

func (b *Builder) AppNameOpt(appName *string) *Builder {
	b.boostagram.AppName = clonePtr(appName)
	return b
}

func (b *Builder) AppVersion(appVersion string) *Builder {
	b.boostagram.AppVersion = &appVersion
	return b
}

func (b *Builder) AppVersionOpt(appVersion *string) *Builder {
	b.boostagram.AppVersion = clonePtr(appVersion)
	return b
}

func (b *Builder) BoostLink(boostLink string) *Builder {
	b.boostagram.BoostLink = &boostLink
	return b
}

func (b *Builder) BoostLinkOpt(boostLink *string) *Builder {
	b.boostagram.BoostLink = clonePtr(boostLink)
	return b
}

func (b *Builder) Message(message string) *Builder {
	b.boostagram.Message = &message
	return b
}

func (b *Builder) MessageOpt(message *string) *Builder {
	b.boostagram.Message = clonePtr(message)
	return b
}

func (b *Builder) Name(name string) *Builder {
	b.boostagram.Name = &name
	return b
}

func (b *Builder) NameOpt(name *string) *Builder {
	b.boostagram.Name = clonePtr(name)
	return b
}

func (b *Builder) Pubkey(pubkey string) *Builder {
	b.boostagram.Pubkey = &pubkey
	return b
}

func (b *Builder) PubkeyOpt(pubkey *string) *Builder {
	b.boostagram.Pubkey = clonePtr(pubkey)
	return b
}

func (b *Builder) SecondsBack(secondsBack uint64) *Builder {
	b.boostagram.SecondsBack = &secondsBack
	return b
}

func (b *Builder) SecondsBackOpt(secondsBack *uint64) *Builder {
	b.boostagram.SecondsBack = clonePtr(secondsBack)
	return b
}

func (b *Builder) SenderKey(senderKey string) *Builder {
	b.boostagram.SenderKey = &senderKey
	return b
}

func (b *Builder) SenderKeyOpt(senderKey *string) *Builder {
	b.boostagram.SenderKey = clonePtr(senderKey)
	return b
}

func (b *Builder) SenderName(senderName string) *Builder {
	b.boostagram.SenderName = &senderName
	return b
}

func (b *Builder) SenderNameOpt(senderName *string) *Builder {
	b.boostagram.SenderName = clonePtr(senderName)
	return b
}

func (b *Builder) SenderID(senderID string) *Builder {
	b.boostagram.SenderID = &senderID
	return b
}

func (b *Builder) SenderIDOpt(senderID *string) *Builder {
	b.boostagram.SenderID = clonePtr(senderID)
	return b
}

func (b *Builder) SigFields(sigFields string) *Builder {
	b.boostagram.SigFields = &sigFields
	return b
}

func (b *Builder) SigFieldsOpt(sigFields *string) *Builder {
	b.boostagram.SigFields = clonePtr(sigFields)
	return b
}

func (b *Builder) Signature(signature string) *Builder {
	b.boostagram.Signature = &signature
	return b
}

func (b *Builder) SignatureOpt(signature *string) *Builder {
	b.boostagram.Signature = clonePtr(signature)
	return b
}

func (b *Builder) Speed(speed string) *Builder {
	b.boostagram.Speed = &speed
	return b
}

func (b *Builder) SpeedOpt(speed *string) *Builder {
	b.boostagram.Speed = clonePtr(speed)
	return b
}

func (b *Builder) UUID(uuid string) *Builder {
	b.boostagram.UUID = &uuid
	return b
}

func (b *Builder) UUIDOpt(uuid *string) *Builder {
	b.boostagram.UUID = clonePtr(uuid)
	return b
}

func (b *Builder) ValueMsat(valueMsat uint64) *Builder {
	b.boostagram.ValueMsat = &valueMsat
	return b
}

func (b *Builder) ValueMsatOpt(valueMsat *uint64) *Builder {
	b.boostagram.ValueMsat = clonePtr(valueMsat)
	return b
}

func (b *Builder) ValueMsatTotal(valueMsatTotal uint64) *Builder {
	b.boostagram.ValueMsatTotal = &valueMsatTotal
	return b
}

func (b *Builder) ValueMsatTotalOpt(valueMsatTotal *uint64) *Builder {
	b.boostagram.ValueMsatTotal = clonePtr(valueMsatTotal)
	return b
}

func (b *Builder) ReplyAddress(replyAddress string) *Builder {
	b.boostagram.ReplyAddress = &replyAddress
	return b
}

func (b *Builder) ReplyAddressOpt(replyAddress *string) *Builder {
	b.boostagram.ReplyAddress = clonePtr(replyAddress)
	return b
}

func (b *Builder) ReplyCustomKey(replyCustomKey uint64) *Builder {
	b.boostagram.ReplyCustomKey = &replyCustomKey
	return b
}

func (b *Builder) ReplyCustomKeyOpt(replyCustomKey *uint64) *Builder {
	b.boostagram.ReplyCustomKey = clonePtr(replyCustomKey)
	return b
}

func (b *Builder) ReplyCustomValue(replyCustomValue string) *Builder {
	b.boostagram.ReplyCustomValue = &replyCustomValue
	return b
}

func (b *Builder) ReplyCustomValueOpt(replyCustomValue *string) *Builder {
	b.boostagram.ReplyCustomValue = clonePtr(replyCustomValue)
	return b
}
