package model

import "time"

type Album struct {
	ID          string      `gorm:"primaryKey" json:"id"`
	Title       string      `gorm:"not null" json:"title"`
	Description string      `json:"description,omitempty"`
	CoverURL    string      `json:"cover_url,omitempty"`
	OwnerID     string      `gorm:"index" json:"owner_id"`
	Tags        StringSlice `gorm:"type:text" json:"tags"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Only filled in by the album detail endpoint
	Photos []Photo `gorm:"foreignKey:AlbumID" json:"photos,omitempty"`
}
