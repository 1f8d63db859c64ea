// Package models contains data structures for the application's domain models.
package models

import "time"

// LikeTargetKind discriminates what a like points at.
type LikeTargetKind string

const (
	// LikeTargetVideo marks a like on a video.
	LikeTargetVideo LikeTargetKind = "video"
	// LikeTargetComment marks a like on a comment.
	LikeTargetComment LikeTargetKind = "comment"
	// LikeTargetTweet marks a like on a tweet.
	LikeTargetTweet LikeTargetKind = "tweet"
)

// Valid reports whether k is one of the known target kinds.
func (k LikeTargetKind) Valid() bool {
	switch k {
	case LikeTargetVideo, LikeTargetComment, LikeTargetTweet:
		return true
	}
	return false
}

// Like records that a user liked a target. Presence of the row means
// "liked"; there is no soft state. The composite unique index is the
// uniqueness invariant: at most one row per (liked_by, kind, target).
type Like struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	LikedByID  uint           `gorm:"column:liked_by;not null;uniqueIndex:idx_like_pair" json:"liked_by"`
	TargetKind LikeTargetKind `gorm:"type:varchar(16);not null;uniqueIndex:idx_like_pair" json:"target_kind"`
	TargetID   uint           `gorm:"not null;uniqueIndex:idx_like_pair" json:"target_id"`
	CreatedAt  time.Time      `json:"created_at"`
}
