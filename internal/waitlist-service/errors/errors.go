package apperrors

import "errors"

var (
	ErrSubscriptionNotFound = errors.New("subscription not found")
)
