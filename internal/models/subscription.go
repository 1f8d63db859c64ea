// Package models contains data structures for the application's domain models.
package models

import "time"

// Subscription records that a user follows a channel. At most one row
// exists per (subscriber, channel) pair, enforced by the composite
// unique index. Self-subscription is rejected before any write.
type Subscription struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	SubscriberID uint      `gorm:"not null;uniqueIndex:idx_sub_pair" json:"subscriber_id"`
	Subscriber   User      `gorm:"foreignKey:SubscriberID" json:"subscriber,omitempty"`
	ChannelID    uint      `gorm:"not null;uniqueIndex:idx_sub_pair" json:"channel_id"`
	Channel      User      `gorm:"foreignKey:ChannelID" json:"channel,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
