package hunt

// GoldSpreadPercent is the uniform spread applied around the base gold
// reward, in percent of the base.
const GoldSpreadPercent = 10

// Log messages
const (
	LogMsgHuntStarted   = "Hunt started"
	LogMsgHuntResolved  = "Hunt resolved"
	LogMsgHuntAbandoned = "Hunt abandoned"
)

// Error context messages for wrapped errors
const (
	ErrContextFailedToBeginTx      = "failed to begin transaction"
	ErrContextFailedToUpdatePlayer = "failed to update player"
	ErrContextFailedToInsertLog    = "failed to insert hunting log"
	ErrContextFailedToCommitTx     = "failed to commit hunt transaction"
)
