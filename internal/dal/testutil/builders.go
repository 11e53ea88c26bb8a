package testutil

import (
	"fmt"

	"github.com/EgorLesNet/ispanskie-msk-bot-ver/internal/dal"
)

// SubscriberBuilder provides fluent API for building test subscribers
type SubscriberBuilder struct {
	tgID    int64
	changes dal.Attributes
}

func NewSubscriber(tgID int64) *SubscriberBuilder {
	return &SubscriberBuilder{
		tgID:    tgID,
		changes: dal.Attributes{},
	}
}

func (b *SubscriberBuilder) WithDigest(subscribed bool) *SubscriberBuilder {
	b.changes[dal.AttrDigestSubscription] = subscribed
	return b
}

// WithAttr sets an attribute the bot does not interpret
func (b *SubscriberBuilder) WithAttr(key string, value any) *SubscriberBuilder {
	b.changes[key] = value
	return b
}

func (b *SubscriberBuilder) Build() dal.Subscriber {
	res := dal.NewSubscriber(b.tgID)
	if err := res.Apply(b.changes); err != nil {
		panic(fmt.Errorf("build subscriber %d: %w", b.tgID, err))
	}
	return res
}

func NewUsers(subscribers ...dal.Subscriber) dal.Users {
	return dal.Users{Users: subscribers}
}
