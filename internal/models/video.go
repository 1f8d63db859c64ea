// Package models contains data structures for the application's domain models.
package models

import "time"

// Video represents an uploaded video owned by exactly one user.
type Video struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	OwnerID     uint    `gorm:"not null;index" json:"owner_id"`
	Owner       User    `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Title       string  `gorm:"not null" json:"title"`
	Description string  `gorm:"type:text" json:"description"`
	VideoFile   string  `gorm:"not null" json:"video_file"`
	Thumbnail   string  `json:"thumbnail"`
	Duration    float64 `json:"duration"`
	Views       int64   `gorm:"not null;default:0" json:"views"`
	IsPublished bool    `gorm:"not null;default:true" json:"is_published"`
	// LikesCount is not persisted; computed at query time
	LikesCount int64     `gorm:"->" json:"likes_count"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ChannelVideo is the public projection of a published video returned by
// the channel video listing.
type ChannelVideo struct {
	ID          uint      `json:"id"`
	VideoFile   string    `json:"video_file"`
	Thumbnail   string    `json:"thumbnail"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Views       int64     `json:"views"`
	Duration    float64   `json:"duration"`
	CreatedAt   time.Time `json:"created_at"`
}
