package models

import (
	"time"
)

// RefreshToken is a stored refresh credential. Tokens are rotated on use:
// redeeming one revokes it and writes a replacement row, so a replayed token
// no longer matches an active record.
type RefreshToken struct {
	BaseModel
	UserID    string    `gorm:"size:36;index" json:"userId"`
	Token     string    `gorm:"type:text;not null" json:"-"`
	ExpiresAt time.Time `json:"expiresAt"`
	IsRevoked bool      `gorm:"default:false" json:"isRevoked"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
