package dal

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
)

var (
	// ErrNotFound is returned by Storage.Read when nothing has been persisted yet.
	ErrNotFound = errors.New("document not found")
	// ErrCorruptStore means the persisted document exists but cannot be decoded.
	ErrCorruptStore = errors.New("corrupt users document")
)

// Storage persists the users document as a whole.
type Storage interface {
	Read() ([]byte, error)
	Write(data []byte) error
}

// Store is the subscriber store. Every call loads the document fresh and
// mutating calls write it back in full. There is no locking around Upsert:
// two concurrent writers can lose an update.
type Store struct {
	storage Storage

	log *slog.Logger
}

func NewStore(storage Storage, log *slog.Logger) *Store {
	return &Store{
		storage: storage,
		log:     log.With("component", "dal").With("store", "users"),
	}
}

func (s *Store) Load() (Users, error) {
	data, err := s.storage.Read()
	if errors.Is(err, ErrNotFound) {
		s.log.Debug("users document not found, starting empty")
		return Users{}, nil
	}
	if err != nil {
		return Users{}, fmt.Errorf("read users document: %w", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return Users{}, nil
	}

	var res Users
	if err := json.Unmarshal(data, &res); err != nil {
		return Users{}, fmt.Errorf("%w: %w", ErrCorruptStore, err)
	}

	return res, nil
}

func (s *Store) Save(users Users) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(users); err != nil {
		return fmt.Errorf("marshal users document: %w", err)
	}

	if err := s.storage.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write users document: %w", err)
	}

	return nil
}

func (s *Store) Get(tgID int64) (Subscriber, bool, error) {
	users, err := s.Load()
	if err != nil {
		return Subscriber{}, false, err
	}

	i := users.Find(tgID)
	if i < 0 {
		return Subscriber{}, false, nil
	}

	return users.Users[i], true, nil
}

// DigestSubscribers returns the current snapshot of subscribers opted in to the digest.
func (s *Store) DigestSubscribers() ([]Subscriber, error) {
	users, err := s.Load()
	if err != nil {
		return nil, err
	}

	for _, sub := range users.Unaddressable() {
		raw, _ := sub.Attr(AttrTgID)
		s.log.Warn("skipping user with unusable tgId", "tgId", string(raw))
	}
	return users.DigestSubscribers(), nil
}

// Upsert finds or creates the subscriber with tgID, applies changes and saves the document.
// The returned subscriber reflects the state that was written.
func (s *Store) Upsert(tgID int64, changes Attributes) (Subscriber, error) {
	users, err := s.Load()
	if err != nil {
		return Subscriber{}, err
	}

	i := users.Find(tgID)
	var sub Subscriber
	if i < 0 {
		sub = NewSubscriber(tgID)
	} else {
		sub = users.Users[i]
	}

	if err := sub.Apply(changes); err != nil {
		return Subscriber{}, fmt.Errorf("apply changes for tgID=%d: %w", tgID, err)
	}

	if i < 0 {
		users.Users = append(users.Users, sub)
		s.log.Debug("new subscriber", "chatID", tgID)
	} else {
		users.Users[i] = sub
	}

	if err := s.Save(users); err != nil {
		return Subscriber{}, err
	}

	return sub, nil
}
