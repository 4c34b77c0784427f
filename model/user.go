package model

import "time"

type User struct {
	ID   string `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null" json:"name"`
	// Uniqueness is enforced by the index, not just the pre-insert
	// check in the register handler
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Role         Role   `gorm:"not null;default:user" json:"role"`
	AvatarURL    string `json:"avatar_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Albums []Album `gorm:"foreignKey:OwnerID" json:"-"`
}
