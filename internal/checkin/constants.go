package checkin

// Reward parameters. The base reward is uniform over the inclusive range;
// the 5th and 7th streak claims add a flat bonus on top.
const (
	BaseRewardMin = 50000
	BaseRewardMax = 100000

	BonusStreakDayFive  = 5
	BonusRewardDayFive  = 300000
	BonusRewardDaySeven = 700000
)

// Log messages
const (
	LogMsgCheckinResolved = "Check-in resolved"
)

// Error context messages for wrapped errors
const (
	ErrContextFailedToBeginTx      = "failed to begin transaction"
	ErrContextFailedToUpdatePlayer = "failed to update player"
	ErrContextFailedToInsertLog    = "failed to insert checkin log"
	ErrContextFailedToCommitTx     = "failed to commit checkin transaction"
)
