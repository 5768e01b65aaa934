// Package boostagram encodes, decodes and builds the metadata record attached
// to value-for-value payments.
package boostagram

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"unicode/utf8"

	coreerrors "github.com/Moooover/blip-10/core/errors"
)

var ErrDecode = stderrors.New("boostagram decode failed")

// Boostagram is the payment metadata record. Every field is optional and nil
// means absent. Absent fields are omitted from both wire forms.
type Boostagram struct {
	Podcast     *string `json:"podcast,omitempty"`
	FeedID      *uint64 `json:"feedID,omitempty"`
	URL         *string `json:"url,omitempty"`
	GUID        *string `json:"guid,omitempty"`
	Episode     *string `json:"episode,omitempty"`
	ItemID      *uint64 `json:"itemID,omitempty"`
	EpisodeGUID *string `json:"episode_guid,omitempty"`
	Time        *string `json:"time,omitempty"`
	TS          *uint64 `json:"ts,omitempty"`
	Action      *Action `json:"action,omitempty"`
	AppName     *string `json:"app_name,omitempty"`
	AppVersion  *string `json:"app_version,omitempty"`
	BoostLink   *string `json:"boost_link,omitempty"`
	Message     *string `json:"message,omitempty"`
	Name        *string `json:"name,omitempty"`
	SenderName  *string `json:"sender_name,omitempty"`
	SenderID    *string `json:"sender_id,omitempty"`
	Signature   *string `json:"signature,omitempty"`
	UUID        *string `json:"uuid,omitempty"`

	// Earlier schema generations.
	Pubkey      *string `json:"pubkey,omitempty"`
	SecondsBack *uint64 `json:"seconds_back,omitempty"`
	SenderKey   *string `json:"sender_key,omitempty"`
	SigFields   *string `json:"sig_fields,omitempty"`
	Speed       *string `json:"speed,omitempty"`
	ValueMsat   *uint64 `json:"value_msat,omitempty"`

	ValueMsatTotal *uint64 `json:"value_msat_total,omitempty"`

	ReplyAddress     *string `json:"reply_address,omitempty"`
	ReplyCustomKey   *uint64 `json:"reply_custom_key,omitempty"`
	ReplyCustomValue *string `json:"reply_custom_value,omitempty"`
}

// lenientUint64 decodes to absent instead of failing when the wire value is
// not an unsigned integer. Producers have been seen sending itemID as text.
type lenientUint64 struct {
	value *uint64
}

func (l *lenientUint64) UnmarshalJSON(data []byte) error {
	l.value = nil
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	var value uint64
	if err := json.Unmarshal(data, &value); err != nil {
		return nil
	}
	l.value = &value
	return nil
}

// wireNames lists the json name of every Boostagram field, in field order.
var wireNames = sync.OnceValue(func() []string {
	boostagramType := reflect.TypeFor[Boostagram]()
	names := make([]string, boostagramType.NumField())
	for index := range names {
		names[index], _, _ = strings.Cut(boostagramType.Field(index).Tag.Get("json"), ",")
	}
	return names
})

// UnmarshalJSON matches member names exactly. Members whose name differs from
// a field name, even only by case, are ignored.
func (b *Boostagram) UnmarshalJSON(data []byte) error {
	if !utf8.Valid(data) {
		return fmt.Errorf("invalid utf-8 in json text")
	}
	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return err
	}
	var decoded Boostagram
	fields := reflect.ValueOf(&decoded).Elem()
	for index, name := range wireNames() {
		raw, present := members[name]
		if !present {
			continue
		}
		if name == "itemID" {
			var itemID lenientUint64
			_ = itemID.UnmarshalJSON(raw)
			decoded.ItemID = itemID.value
			continue
		}
		if err := json.Unmarshal(raw, fields.Field(index).Addr().Interface()); err != nil {
			return fmt.Errorf("field %s: %w", name, unwrapTypeError(err))
		}
	}
	*b = decoded
	return nil
}

// unwrapTypeError drops the Go type path encoding/json puts in type errors.
func unwrapTypeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if stderrors.As(err, &typeErr) {
		return fmt.Errorf("cannot decode %s as %s", typeErr.Value, typeErr.Type)
	}
	return err
}

// FromBase64 decodes the compact wire form: standard padded base64 of the
// JSON form.
func FromBase64(text string) (Boostagram, error) {
	raw, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return Boostagram{}, decodeError(fmt.Errorf("base64: %w", err))
	}
	return FromJSONBytes(raw)
}

func FromJSON(text string) (Boostagram, error) {
	return FromJSONBytes([]byte(text))
}

func FromJSONBytes(data []byte) (Boostagram, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return Boostagram{}, decodeError(fmt.Errorf("expected a json object"))
	}
	var decoded Boostagram
	if err := json.Unmarshal(trimmed, &decoded); err != nil {
		return Boostagram{}, decodeError(err)
	}
	return decoded, nil
}

// ToJSON returns the structured text form. Marshaling a record of optional
// scalars cannot fail, so a failure panics.
func (b Boostagram) ToJSON() []byte {
	encoded, err := json.Marshal(b)
	if err != nil {
		panic(fmt.Sprintf("marshal boostagram: %v", err))
	}
	return encoded
}

func (b Boostagram) ToBase64() string {
	return base64.StdEncoding.EncodeToString(b.ToJSON())
}

// HasAnchor reports whether podcast, feed id, url or guid is present.
func (b Boostagram) HasAnchor() bool {
	return b.Podcast != nil || b.FeedID != nil || b.URL != nil || b.GUID != nil
}

// Clone returns a deep copy that shares no pointers with b.
func (b Boostagram) Clone() Boostagram {
	return Boostagram{
		Podcast:          clonePtr(b.Podcast),
		FeedID:           clonePtr(b.FeedID),
		URL:              clonePtr(b.URL),
		GUID:             clonePtr(b.GUID),
		Episode:          clonePtr(b.Episode),
		ItemID:           clonePtr(b.ItemID),
		EpisodeGUID:      clonePtr(b.EpisodeGUID),
		Time:             clonePtr(b.Time),
		TS:               clonePtr(b.TS),
		Action:           clonePtr(b.Action),
		AppName:          clonePtr(b.AppName),
		AppVersion:       clonePtr(b.AppVersion),
		BoostLink:        clonePtr(b.BoostLink),
		Message:          clonePtr(b.Message),
		Name:             clonePtr(b.Name),
		SenderName:       clonePtr(b.SenderName),
		SenderID:         clonePtr(b.SenderID),
		Signature:        clonePtr(b.Signature),
		UUID:             clonePtr(b.UUID),
		Pubkey:           clonePtr(b.Pubkey),
		SecondsBack:      clonePtr(b.SecondsBack),
		SenderKey:        clonePtr(b.SenderKey),
		SigFields:        clonePtr(b.SigFields),
		Speed:            clonePtr(b.Speed),
		ValueMsat:        clonePtr(b.ValueMsat),
		ValueMsatTotal:   clonePtr(b.ValueMsatTotal),
		ReplyAddress:     clonePtr(b.ReplyAddress),
		ReplyCustomKey:   clonePtr(b.ReplyCustomKey),
		ReplyCustomValue: clonePtr(b.ReplyCustomValue),
	}
}

func clonePtr[T any](value *T) *T {
	if value == nil {
		return nil
	}
	copied := *value
	return &copied
}

func decodeError(cause error) error {
	return coreerrors.Terminal(
		fmt.Errorf("%w: %w", ErrDecode, cause),
		coreerrors.CategoryDecode,
		"decode_failed",
		"check the payload is padded base64 of a json object with correctly typed fields",
	)
}
