package request

type StatusCheckRequest struct {
	ClientName string `json:"client_name" binding:"required" validate:"required"`
}
