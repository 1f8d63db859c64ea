// Package models contains data structures for the application's domain models.
package models

import "time"

// Comment represents a comment left on a video.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	VideoID   uint      `gorm:"not null;index" json:"video_id"`
	Video     Video     `gorm:"foreignKey:VideoID" json:"-"`
	OwnerID   uint      `gorm:"not null;index" json:"owner_id"`
	Owner     User      `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CommentFeedItem is a comment joined with its owner's public profile,
// as returned by the paginated video comment feed.
type CommentFeedItem struct {
	ID            uint      `json:"id"`
	VideoID       uint      `json:"video_id"`
	Content       string    `json:"content"`
	OwnerID       uint      `json:"owner_id"`
	OwnerUsername string    `json:"owner_username"`
	OwnerAvatar   string    `json:"owner_avatar"`
	CreatedAt     time.Time `json:"created_at"`
}
