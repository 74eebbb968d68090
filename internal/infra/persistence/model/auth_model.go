package model

import (
	"time"

	"github.com/google/uuid"
)

// AuthenticationModel mirrors the 'user_authentications' table. UUID columns track provider credentials.
type AuthenticationModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index"`
	Provider       string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_auth_provider_provider_user_id"`
	ProviderUserID string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_auth_provider_provider_user_id"`
	PasswordHash   string    `gorm:"type:varchar(255)"`
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (AuthenticationModel) TableName() string {
	return "user_authentications"
}

// RefreshTokenModel mirrors the 'refresh_tokens' table. Only the SHA-256 of the token is stored.
type RefreshTokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	TokenHash string    `gorm:"type:varchar(255);unique;not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}
