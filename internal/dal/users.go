package dal

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
)

const (
	AttrTgID               = "tgId"
	AttrDigestSubscription = "digestSubscription"

	usersKey       = "users"
	legacyUsersKey = "subscribers"
)

var ErrImmutableAttribute = errors.New("attribute cannot be changed")

type (
	// Attributes is a set of shallow attribute changes applied by Upsert.
	// Every named attribute is replaced as a whole.
	Attributes map[string]any

	// Subscriber is a single recipient record. Attributes the bot does not
	// interpret are kept as raw JSON so they survive read-modify-write cycles.
	// The stored tgId is kept as written, number or numeric string; TgID is
	// its chat id value.
	Subscriber struct {
		TgID  int64
		rawID json.RawMessage
		valid bool
		attrs map[string]json.RawMessage
	}

	// Users is the whole persisted document.
	Users struct {
		Users []Subscriber
		extra map[string]json.RawMessage
	}
)

func NewSubscriber(tgID int64) Subscriber {
	return Subscriber{TgID: tgID, valid: true, attrs: map[string]json.RawMessage{}}
}

// Addressable reports whether tgId holds a chat id messages can be sent to.
func (s Subscriber) Addressable() bool {
	return s.valid
}

// DigestSubscription reports the opt-in flag. Absent or non-boolean values mean false.
func (s Subscriber) DigestSubscription() bool {
	raw, ok := s.attrs[AttrDigestSubscription]
	if !ok {
		return false
	}
	var res bool
	if err := json.Unmarshal(raw, &res); err != nil {
		return false
	}
	return res
}

func (s Subscriber) Attr(key string) (json.RawMessage, bool) {
	if key == AttrTgID {
		return s.id(), true
	}
	raw, ok := s.attrs[key]
	return raw, ok
}

// Apply merges changes on top of the existing attributes.
func (s *Subscriber) Apply(changes Attributes) error {
	if _, ok := changes[AttrTgID]; ok {
		return fmt.Errorf("%s: %w", AttrTgID, ErrImmutableAttribute)
	}

	// marshal everything first so a bad value leaves the subscriber untouched
	encoded := make(map[string]json.RawMessage, len(changes))
	for key, value := range changes {
		raw, err := marshalRaw(value)
		if err != nil {
			return fmt.Errorf("marshal attribute %q: %w", key, err)
		}
		encoded[key] = raw
	}

	attrs := maps.Clone(s.attrs)
	if attrs == nil {
		attrs = make(map[string]json.RawMessage, len(encoded))
	}
	maps.Copy(attrs, encoded)
	s.attrs = attrs

	return nil
}

func (s Subscriber) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	writeMember(&buf, AttrTgID, s.id())

	for _, key := range slices.Sorted(maps.Keys(s.attrs)) {
		buf.WriteByte(',')
		writeMember(&buf, key, s.attrs[key])
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (s *Subscriber) UnmarshalJSON(data []byte) error {
	var attrs map[string]json.RawMessage
	if err := json.Unmarshal(data, &attrs); err != nil {
		return fmt.Errorf("decode user: %w", err)
	}
	if attrs == nil {
		return errors.New("user must be an object")
	}

	rawID, ok := attrs[AttrTgID]
	if !ok {
		return fmt.Errorf("user without %s", AttrTgID)
	}
	delete(attrs, AttrTgID)

	s.TgID, s.valid = parseID(rawID)
	s.rawID = rawID
	s.attrs = attrs
	return nil
}

func (s Subscriber) id() json.RawMessage {
	if s.rawID != nil {
		return s.rawID
	}
	raw, _ := marshalRaw(s.TgID)
	return raw
}

// parseID accepts an integer or a string holding an integer.
func parseID(raw json.RawMessage) (int64, bool) {
	var v any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return 0, false
	}

	var text string
	switch id := v.(type) {
	case json.Number:
		text = id.String()
	case string:
		text = strings.TrimSpace(id)
	default:
		return 0, false
	}

	res, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, false
	}
	return res, true
}

// Find returns the index of the subscriber with the given id or -1.
// Records whose tgId is not a chat id never match.
func (u Users) Find(tgID int64) int {
	return slices.IndexFunc(u.Users, func(s Subscriber) bool {
		return s.valid && s.TgID == tgID
	})
}

// DigestSubscribers returns addressable subscribers with digestSubscription == true in document order.
func (u Users) DigestSubscribers() []Subscriber {
	res := make([]Subscriber, 0, len(u.Users))
	for _, s := range u.Users {
		if s.valid && s.DigestSubscription() {
			res = append(res, s)
		}
	}
	return res
}

// Unaddressable returns records whose tgId is not a chat id.
func (u Users) Unaddressable() []Subscriber {
	var res []Subscriber
	for _, s := range u.Users {
		if !s.valid {
			res = append(res, s)
		}
	}
	return res
}

func (u Users) MarshalJSON() ([]byte, error) {
	users := u.Users
	if users == nil {
		users = []Subscriber{}
	}
	rawUsers, err := marshalRaw(users)
	if err != nil {
		return nil, fmt.Errorf("marshal users: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	writeMember(&buf, usersKey, rawUsers)
	for _, key := range slices.Sorted(maps.Keys(u.extra)) {
		buf.WriteByte(',')
		writeMember(&buf, key, u.extra[key])
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

func (u *Users) UnmarshalJSON(data []byte) error {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decode document: %w", err)
	}
	if doc == nil {
		return errors.New("document must be an object")
	}

	key := usersKey
	if _, ok := doc[usersKey]; !ok {
		if _, legacy := doc[legacyUsersKey]; legacy {
			key = legacyUsersKey
		}
	}

	var users []Subscriber
	if raw, ok := doc[key]; ok {
		if err := json.Unmarshal(raw, &users); err != nil {
			return fmt.Errorf("decode %s: %w", key, err)
		}
	}
	delete(doc, key)

	seen := make(map[int64]struct{}, len(users))
	for _, s := range users {
		if !s.valid {
			continue
		}
		if _, dup := seen[s.TgID]; dup {
			return fmt.Errorf("duplicate user %d", s.TgID)
		}
		seen[s.TgID] = struct{}{}
	}

	u.Users = users
	u.extra = doc
	return nil
}

func marshalRaw(v any) (json.RawMessage, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err //nolint:wrapcheck // callers wrap
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func writeMember(buf *bytes.Buffer, key string, value json.RawMessage) {
	k, _ := marshalRaw(key)
	buf.Write(k)
	buf.WriteByte(':')
	buf.Write(value)
}
