package service

import (
	"context"
	"io"

	"viewtube/internal/media"
	"viewtube/internal/models"

	"gorm.io/gorm"
)

// Stubs for the repository and media interfaces. Each test overrides
// only the functions it cares about; the noop constructors supply inert
// defaults for the rest.

type engagementRepoStub struct {
	toggleLikeFn         func(context.Context, uint, models.LikeTargetKind, uint) (bool, error)
	toggleSubscriptionFn func(context.Context, uint, uint) (bool, error)
	isLikedFn            func(context.Context, uint, models.LikeTargetKind, uint) (bool, error)
	isSubscribedFn       func(context.Context, uint, uint) (bool, error)
	countLikesFn         func(context.Context, models.LikeTargetKind, uint) (int64, error)
	countSubscribersFn   func(context.Context, uint) (int64, error)
}

func (s *engagementRepoStub) ToggleLike(ctx context.Context, userID uint, kind models.LikeTargetKind, targetID uint) (bool, error) {
	return s.toggleLikeFn(ctx, userID, kind, targetID)
}
func (s *engagementRepoStub) ToggleSubscription(ctx context.Context, subscriberID, channelID uint) (bool, error) {
	return s.toggleSubscriptionFn(ctx, subscriberID, channelID)
}
func (s *engagementRepoStub) IsLiked(ctx context.Context, userID uint, kind models.LikeTargetKind, targetID uint) (bool, error) {
	return s.isLikedFn(ctx, userID, kind, targetID)
}
func (s *engagementRepoStub) IsSubscribed(ctx context.Context, subscriberID, channelID uint) (bool, error) {
	return s.isSubscribedFn(ctx, subscriberID, channelID)
}
func (s *engagementRepoStub) CountLikes(ctx context.Context, kind models.LikeTargetKind, targetID uint) (int64, error) {
	return s.countLikesFn(ctx, kind, targetID)
}
func (s *engagementRepoStub) CountSubscribers(ctx context.Context, channelID uint) (int64, error) {
	return s.countSubscribersFn(ctx, channelID)
}

func noopEngagementRepo() *engagementRepoStub {
	return &engagementRepoStub{
		toggleLikeFn: func(_ context.Context, _ uint, _ models.LikeTargetKind, _ uint) (bool, error) {
			return true, nil
		},
		toggleSubscriptionFn: func(_ context.Context, _, _ uint) (bool, error) { return true, nil },
		isLikedFn: func(_ context.Context, _ uint, _ models.LikeTargetKind, _ uint) (bool, error) {
			return false, nil
		},
		isSubscribedFn:     func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
		countLikesFn:       func(_ context.Context, _ models.LikeTargetKind, _ uint) (int64, error) { return 0, nil },
		countSubscribersFn: func(_ context.Context, _ uint) (int64, error) { return 0, nil },
	}
}

type videoRepoStub struct {
	createFn               func(context.Context, *models.Video) error
	getByIDFn              func(context.Context, uint) (*models.Video, error)
	updateFn               func(context.Context, *models.Video) error
	deleteFn               func(context.Context, uint) error
	existsFn               func(context.Context, uint) (bool, error)
	setPublishedFn         func(context.Context, uint, bool) error
	listPublishedByOwnerFn func(context.Context, uint) ([]models.ChannelVideo, error)
}

func (s *videoRepoStub) Create(ctx context.Context, video *models.Video) error {
	return s.createFn(ctx, video)
}
func (s *videoRepoStub) GetByID(ctx context.Context, id uint) (*models.Video, error) {
	return s.getByIDFn(ctx, id)
}
func (s *videoRepoStub) Update(ctx context.Context, video *models.Video) error {
	return s.updateFn(ctx, video)
}
func (s *videoRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *videoRepoStub) Exists(ctx context.Context, id uint) (bool, error) {
	return s.existsFn(ctx, id)
}
func (s *videoRepoStub) SetPublished(ctx context.Context, id uint, published bool) error {
	return s.setPublishedFn(ctx, id, published)
}
func (s *videoRepoStub) ListPublishedByOwner(ctx context.Context, ownerID uint) ([]models.ChannelVideo, error) {
	return s.listPublishedByOwnerFn(ctx, ownerID)
}

func noopVideoRepo() *videoRepoStub {
	return &videoRepoStub{
		createFn:               func(_ context.Context, _ *models.Video) error { return nil },
		getByIDFn:              func(_ context.Context, _ uint) (*models.Video, error) { return &models.Video{}, nil },
		updateFn:               func(_ context.Context, _ *models.Video) error { return nil },
		deleteFn:               func(_ context.Context, _ uint) error { return nil },
		existsFn:               func(_ context.Context, _ uint) (bool, error) { return true, nil },
		setPublishedFn:         func(_ context.Context, _ uint, _ bool) error { return nil },
		listPublishedByOwnerFn: func(_ context.Context, _ uint) ([]models.ChannelVideo, error) { return nil, nil },
	}
}

type commentRepoStub struct {
	createFn          func(context.Context, *models.Comment) error
	getByIDFn         func(context.Context, uint) (*models.Comment, error)
	updateFn          func(context.Context, *models.Comment) error
	deleteFn          func(context.Context, uint) error
	existsFn          func(context.Context, uint) (bool, error)
	listByVideoPageFn func(context.Context, uint, int, int) ([]models.CommentFeedItem, error)
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) Update(ctx context.Context, comment *models.Comment) error {
	return s.updateFn(ctx, comment)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *commentRepoStub) Exists(ctx context.Context, id uint) (bool, error) {
	return s.existsFn(ctx, id)
}
func (s *commentRepoStub) ListByVideoPage(ctx context.Context, videoID uint, limit, offset int) ([]models.CommentFeedItem, error) {
	return s.listByVideoPageFn(ctx, videoID, limit, offset)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:  func(_ context.Context, _ *models.Comment) error { return nil },
		getByIDFn: func(_ context.Context, _ uint) (*models.Comment, error) { return &models.Comment{}, nil },
		updateFn:  func(_ context.Context, _ *models.Comment) error { return nil },
		deleteFn:  func(_ context.Context, _ uint) error { return nil },
		existsFn:  func(_ context.Context, _ uint) (bool, error) { return true, nil },
		listByVideoPageFn: func(_ context.Context, _ uint, _, _ int) ([]models.CommentFeedItem, error) {
			return nil, nil
		},
	}
}

type tweetRepoStub struct {
	createFn      func(context.Context, *models.Tweet) error
	getByIDFn     func(context.Context, uint) (*models.Tweet, error)
	listByOwnerFn func(context.Context, uint) ([]models.Tweet, error)
	updateFn      func(context.Context, *models.Tweet) error
	deleteFn      func(context.Context, uint) error
	existsFn      func(context.Context, uint) (bool, error)
}

func (s *tweetRepoStub) Create(ctx context.Context, tweet *models.Tweet) error {
	return s.createFn(ctx, tweet)
}
func (s *tweetRepoStub) GetByID(ctx context.Context, id uint) (*models.Tweet, error) {
	return s.getByIDFn(ctx, id)
}
func (s *tweetRepoStub) ListByOwner(ctx context.Context, ownerID uint) ([]models.Tweet, error) {
	return s.listByOwnerFn(ctx, ownerID)
}
func (s *tweetRepoStub) Update(ctx context.Context, tweet *models.Tweet) error {
	return s.updateFn(ctx, tweet)
}
func (s *tweetRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *tweetRepoStub) Exists(ctx context.Context, id uint) (bool, error) {
	return s.existsFn(ctx, id)
}

func noopTweetRepo() *tweetRepoStub {
	return &tweetRepoStub{
		createFn:      func(_ context.Context, _ *models.Tweet) error { return nil },
		getByIDFn:     func(_ context.Context, _ uint) (*models.Tweet, error) { return &models.Tweet{}, nil },
		listByOwnerFn: func(_ context.Context, _ uint) ([]models.Tweet, error) { return nil, nil },
		updateFn:      func(_ context.Context, _ *models.Tweet) error { return nil },
		deleteFn:      func(_ context.Context, _ uint) error { return nil },
		existsFn:      func(_ context.Context, _ uint) (bool, error) { return true, nil },
	}
}

type userRepoStub struct {
	getByIDFn func(context.Context, uint) (*models.User, error)
	existsFn  func(context.Context, uint) (bool, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) Exists(ctx context.Context, id uint) (bool, error) {
	return s.existsFn(ctx, id)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn: func(_ context.Context, _ uint) (*models.User, error) { return &models.User{}, nil },
		existsFn:  func(_ context.Context, _ uint) (bool, error) { return true, nil },
	}
}

type playlistRepoStub struct {
	createFn             func(context.Context, *models.Playlist) error
	getByIDFn            func(context.Context, uint) (*models.Playlist, error)
	listByOwnerFn        func(context.Context, uint) ([]models.Playlist, error)
	updateFn             func(context.Context, *models.Playlist) error
	deleteFn             func(context.Context, uint) error
	addVideoFn           func(context.Context, uint, uint) error
	removeVideoFn        func(context.Context, uint, uint) error
	removeVideoFromAllFn func(context.Context, *gorm.DB, uint) error
}

func (s *playlistRepoStub) Create(ctx context.Context, playlist *models.Playlist) error {
	return s.createFn(ctx, playlist)
}
func (s *playlistRepoStub) GetByID(ctx context.Context, id uint) (*models.Playlist, error) {
	return s.getByIDFn(ctx, id)
}
func (s *playlistRepoStub) ListByOwner(ctx context.Context, ownerID uint) ([]models.Playlist, error) {
	return s.listByOwnerFn(ctx, ownerID)
}
func (s *playlistRepoStub) Update(ctx context.Context, playlist *models.Playlist) error {
	return s.updateFn(ctx, playlist)
}
func (s *playlistRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *playlistRepoStub) AddVideo(ctx context.Context, playlistID, videoID uint) error {
	return s.addVideoFn(ctx, playlistID, videoID)
}
func (s *playlistRepoStub) RemoveVideo(ctx context.Context, playlistID, videoID uint) error {
	return s.removeVideoFn(ctx, playlistID, videoID)
}
func (s *playlistRepoStub) RemoveVideoFromAll(ctx context.Context, tx *gorm.DB, videoID uint) error {
	return s.removeVideoFromAllFn(ctx, tx, videoID)
}

func noopPlaylistRepo() *playlistRepoStub {
	return &playlistRepoStub{
		createFn:             func(_ context.Context, _ *models.Playlist) error { return nil },
		getByIDFn:            func(_ context.Context, _ uint) (*models.Playlist, error) { return &models.Playlist{}, nil },
		listByOwnerFn:        func(_ context.Context, _ uint) ([]models.Playlist, error) { return nil, nil },
		updateFn:             func(_ context.Context, _ *models.Playlist) error { return nil },
		deleteFn:             func(_ context.Context, _ uint) error { return nil },
		addVideoFn:           func(_ context.Context, _, _ uint) error { return nil },
		removeVideoFn:        func(_ context.Context, _, _ uint) error { return nil },
		removeVideoFromAllFn: func(_ context.Context, _ *gorm.DB, _ uint) error { return nil },
	}
}

type statsRepoStub struct {
	channelStatsFn       func(context.Context, uint) (*models.ChannelStats, error)
	channelSubscribersFn func(context.Context, uint) ([]models.PublicUser, error)
	subscribedChannelsFn func(context.Context, uint) ([]models.PublicUser, error)
}

func (s *statsRepoStub) ChannelStats(ctx context.Context, userID uint) (*models.ChannelStats, error) {
	return s.channelStatsFn(ctx, userID)
}
func (s *statsRepoStub) ChannelSubscribers(ctx context.Context, channelID uint) ([]models.PublicUser, error) {
	return s.channelSubscribersFn(ctx, channelID)
}
func (s *statsRepoStub) SubscribedChannels(ctx context.Context, subscriberID uint) ([]models.PublicUser, error) {
	return s.subscribedChannelsFn(ctx, subscriberID)
}

func noopStatsRepo() *statsRepoStub {
	return &statsRepoStub{
		channelStatsFn:       func(_ context.Context, _ uint) (*models.ChannelStats, error) { return &models.ChannelStats{}, nil },
		channelSubscribersFn: func(_ context.Context, _ uint) ([]models.PublicUser, error) { return nil, nil },
		subscribedChannelsFn: func(_ context.Context, _ uint) ([]models.PublicUser, error) { return nil, nil },
	}
}

type mediaStoreStub struct {
	uploadFn func(context.Context, io.Reader, int64, string, string) (media.Object, error)
	removeFn func(context.Context, string) error
}

func (s *mediaStoreStub) Upload(ctx context.Context, r io.Reader, size int64, contentType, category string) (media.Object, error) {
	return s.uploadFn(ctx, r, size, contentType, category)
}
func (s *mediaStoreStub) Remove(ctx context.Context, key string) error {
	return s.removeFn(ctx, key)
}

func noopMediaStore() *mediaStoreStub {
	return &mediaStoreStub{
		uploadFn: func(_ context.Context, _ io.Reader, _ int64, _, category string) (media.Object, error) {
			return media.Object{Key: category + "/stub", URL: "http://localhost/" + category + "/stub"}, nil
		},
		removeFn: func(_ context.Context, _ string) error { return nil },
	}
}
