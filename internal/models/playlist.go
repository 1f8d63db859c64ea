// Package models contains data structures for the application's domain models.
package models

import "time"

// Playlist is a user-owned, ordered collection of videos.
type Playlist struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	OwnerID     uint      `gorm:"not null;index" json:"owner_id"`
	Owner       User      `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	// Videos is populated on detail reads, ordered by membership position.
	Videos    []Video   `gorm:"-" json:"videos,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PlaylistVideo is a membership row linking a playlist to a video.
// The unique index makes membership a set; Position preserves insertion
// order for listing.
type PlaylistVideo struct {
	ID         uint `gorm:"primaryKey" json:"-"`
	PlaylistID uint `gorm:"not null;uniqueIndex:idx_playlist_video" json:"playlist_id"`
	VideoID    uint `gorm:"not null;uniqueIndex:idx_playlist_video" json:"video_id"`
	Position   int  `gorm:"not null" json:"position"`
}

// TableName specifies the table name for GORM
func (PlaylistVideo) TableName() string {
	return "playlist_videos"
}
