package model

import "time"

const (
	SubscriptionStatusSubscribed   = "subscribed"
	SubscriptionStatusUnsubscribed = "unsubscribed"
)

type EmailSubscription struct {
	ID        string
	Email     string
	Timestamp time.Time
	Status    string
}
