package constants

const (
	DataFormate = "2006-01-02 15:04:05"

	// pagination defaults shared by every listing query
	DefaultPageNum  = 1
	DefaultPageSize = 10
	MaxPageSize     = 100

	// comment content limits
	MaxCommentLength = 500
	MinCommentLength = 1

	MaxTweetLength = 280

	// playlist metadata limits
	MaxPlaylistNameLength        = 128
	MaxPlaylistDescriptionLength = 1024

	// like target kinds, exactly one per edge
	LikeTargetVideo   = "video"
	LikeTargetComment = "comment"
	LikeTargetTweet   = "tweet"

	// number of videos returned by the suggestion sampler
	SuggestedVideoCount = 10

	// monthly subscriber stats window
	MonthlyStatsBuckets = 6

	TrendingVideoDefaultLimit = 10
	TopChannelDefaultLimit    = 10

	// key under which the authenticated user id is stored in JWT claims and
	// the request context
	IdentityKey = "user_id"
)

const (
	UserTableName          = "users"
	UserBlockTableName     = "user_blocks"
	VideoTableName         = "videos"
	CommentTableName       = "comments"
	LikeTableName          = "likes"
	SubscriptionTableName  = "subscriptions"
	VideoViewTableName     = "video_views"
	TweetTableName         = "tweets"
	PlaylistTableName      = "playlists"
	PlaylistVideoTableName = "playlist_videos"
)
