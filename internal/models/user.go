// Package models contains data structures for the application's domain models.
package models

import "time"

// User represents a registered channel/viewer account. Accounts are created
// by the identity service; this backend only ever reads them.
type User struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Username   string    `gorm:"uniqueIndex;not null" json:"username"`
	Email      string    `gorm:"uniqueIndex;not null" json:"email"`
	Avatar     string    `json:"avatar"`
	CoverImage string    `json:"cover_image"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// PublicUser is the minimal profile projection exposed on rosters and
// enriched listings. It deliberately excludes anything beyond id,
// username and email.
type PublicUser struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
