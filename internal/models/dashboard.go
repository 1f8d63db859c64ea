// Package models contains data structures for the application's domain models.
package models

// ChannelStats is the flat projection returned by the channel dashboard.
// Every counter may legitimately be zero.
type ChannelStats struct {
	Username         string `json:"username"`
	Avatar           string `json:"avatar"`
	CoverImage       string `json:"coverImage"`
	TotalVideos      int64  `json:"totalVideos"`
	TotalSubscribers int64  `json:"totalSubscribers"`
	TotalViews       int64  `json:"totalViews"`
	TotalLikes       int64  `json:"totalLikes"`
	TotalTweets      int64  `json:"totalTweets"`
	TotalComments    int64  `json:"totalComments"`
}
