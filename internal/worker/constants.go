package worker

import "time"

// DefaultPurgeInterval is how often expired sessions are swept.
const DefaultPurgeInterval = 1 * time.Hour

// Log messages
const (
	LogMsgSessionsPurged     = "Expired sessions purged"
	LogMsgSessionPurgeFailed = "Session purge failed"
)
