package service

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/EgorLesNet/ispanskie-msk-bot-ver/internal/dal"
)

//go:generate mockgen -package mocks -destination mocks/subscriptions.go . SubscribersStore

type SubscribersStore interface {
	Get(tgID int64) (dal.Subscriber, bool, error)
	Upsert(tgID int64, changes dal.Attributes) (dal.Subscriber, error)
}

type Subscriptions struct {
	store SubscribersStore

	log *slog.Logger
	mx  *sync.Mutex
}

func NewSubscriptions(store SubscribersStore, log *slog.Logger) *Subscriptions {
	return &Subscriptions{
		store: store,
		log:   log.With("component", "service").With("service", "subscriptions"),
		mx:    &sync.Mutex{},
	}
}

// IsSubscribed never creates a record; an unknown user is not subscribed.
func (s *Subscriptions) IsSubscribed(chatID int64) (bool, error) {
	sub, exists, err := s.store.Get(chatID)
	if err != nil {
		return false, fmt.Errorf("get subscriber: %w", err)
	}
	if !exists {
		return false, nil
	}
	return sub.DigestSubscription(), nil
}

// Subscribe enables the digest and returns the state read back from the stored record.
func (s *Subscriptions) Subscribe(chatID int64) (bool, error) {
	return s.setDigest(chatID, true)
}

// Unsubscribe disables the digest. The record itself is kept.
func (s *Subscriptions) Unsubscribe(chatID int64) (bool, error) {
	return s.setDigest(chatID, false)
}

func (s *Subscriptions) setDigest(chatID int64, enabled bool) (bool, error) {
	s.mx.Lock()
	defer s.mx.Unlock()

	sub, err := s.store.Upsert(chatID, dal.Attributes{dal.AttrDigestSubscription: enabled})
	if err != nil {
		return false, fmt.Errorf("upsert subscriber: %w", err)
	}

	s.log.Debug("digest subscription updated", "chatID", chatID, "digestSubscription", sub.DigestSubscription())
	return sub.DigestSubscription(), nil
}
