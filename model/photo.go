package model

import "time"

type Photo struct {
	ID          string `gorm:"primaryKey" json:"id"`
	AlbumID     string `gorm:"index;not null" json:"album_id"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`

	// Stable public path under the storage root, e.g.
	// /uploads/<albumID>/<generated>.jpg. The physical location is
	// always derived from this, never stored separately.
	FileURL string `gorm:"not null" json:"file_url"`

	// Original file name before it was turned into a generated
	// storage key. Display only, also used as the zip entry name
	FileName string `json:"file_name"`

	// Measured from the written file, never trusted from the client
	FileSize int64 `json:"file_size"`

	// Recorded by clients that know them, the server never decodes
	// image data
	Width  int `json:"width,omitempty"`
	Height int `json:"height,omitempty"`

	Downloadable bool `gorm:"default:true" json:"downloadable"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
