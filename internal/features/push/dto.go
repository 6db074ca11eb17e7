package push

import (
	"github.com/google/uuid"
)

type RegisterDeviceTokenRequestDTO struct {
	Token    string `json:"token"    binding:"required,min=1,max=4096"`
	Platform string `json:"platform" binding:"required,oneof=ios android"`
}

type ListDeviceTokensResponseDTO struct {
	Tokens []*DeviceToken `json:"tokens"`
}

// PushMessage is the queued payload a worker relays to the push gateway.
type PushMessage struct {
	UserID  uuid.UUID `json:"userId"`
	Title   string    `json:"title"`
	Body    string    `json:"body"`
	Token   string    `json:"token"`
	Payload any       `json:"payload,omitempty"`
}
