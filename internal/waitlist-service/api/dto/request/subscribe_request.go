package request

type SubscribeRequest struct {
	Email string `json:"email" binding:"required,email" validate:"required,email"`
}
