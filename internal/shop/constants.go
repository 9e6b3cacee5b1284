package shop

// Log messages
const (
	LogMsgProductClaimed = "Product claimed"
)

// Error context messages for wrapped errors
const (
	ErrContextFailedToBeginTx      = "failed to begin transaction"
	ErrContextFailedToUpdatePlayer = "failed to update player"
	ErrContextFailedToCommitTx     = "failed to commit shop transaction"
)
