package model

import (
	"time"

	"github.com/google/uuid"
)

type Photo struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	StoragePath string    `json:"storage_path"`
	PublicURL   string    `json:"public_url"`
	EventName   string    `json:"event_name"`
	UserName    string    `json:"user_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
