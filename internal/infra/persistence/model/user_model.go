// Package model holds the GORM persistence models. They mirror the database tables and
// are exported so the GORM Gen tool can build type-safe queries from them.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email     string         `gorm:"type:varchar(255);unique;not null"`
	Name      string         `gorm:"type:varchar(100)"`
	Roles     pq.StringArray `gorm:"type:text[];not null;default:'{customer}'"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Authentications []AuthenticationModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	RefreshTokens   []RefreshTokenModel   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
