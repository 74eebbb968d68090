package entity

import (
	"time"

	"github.com/google/uuid"
)

// ContactMessage is a message submitted through the storefront contact form.
type ContactMessage struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}
