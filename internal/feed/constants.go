package feed

// Feed size limits
const (
	DefaultFeedLimit = 30
	MaxFeedLimit     = 100
)

// Error context messages for wrapped errors
const (
	ErrContextFailedToReadLogs = "failed to read upgrade logs"
)
