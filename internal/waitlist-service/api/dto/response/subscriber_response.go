package response

import "time"

type SubscriberResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Timestamp time.Time `json:"timestamp"`
	Status    string    `json:"status"`
}
