package redis

const (
	// KeyPrefixUserSummary is the prefix for cached user summaries
	KeyPrefixUserSummary = "bookhive:summary:user:"
	// KeyPrefixBookSummary is the prefix for cached book summaries
	KeyPrefixBookSummary = "bookhive:summary:book:"
	// KeyPrefixRefresh is the prefix for refresh tokens
	KeyPrefixRefresh = "bookhive:refresh:"
)

// UserSummaryKey returns the Redis key for a cached user summary
func UserSummaryKey(id string) string {
	return KeyPrefixUserSummary + id
}

// BookSummaryKey returns the Redis key for a cached book summary
func BookSummaryKey(id string) string {
	return KeyPrefixBookSummary + id
}

// RefreshKey returns the Redis key for a user's refresh token
func RefreshKey(userID string) string {
	return KeyPrefixRefresh + userID
}
