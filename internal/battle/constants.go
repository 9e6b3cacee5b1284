package battle

// MaxOpponentPool bounds how many candidates are pulled for matchmaking.
const MaxOpponentPool = 50

// WinRewardMultiplier scales the defender's current-level upgrade cost
// into the winner's gold reward.
const WinRewardMultiplier = 2

// Leaderboard size limits
const (
	DefaultRankingLimit = 20
	MaxRankingLimit     = 100
)

// Log messages
const (
	LogMsgBattleResolved = "Battle resolved"
)

// Error context messages for wrapped errors
const (
	ErrContextFailedToBeginTx       = "failed to begin transaction"
	ErrContextFailedToListOpponents = "failed to list opponents"
	ErrContextFailedToListRankings  = "failed to list rankings"
	ErrContextFailedToGetRank       = "failed to get player rank"
	ErrContextFailedToUpdatePlayer  = "failed to update player"
	ErrContextFailedToInsertLog     = "failed to insert battle log"
	ErrContextFailedToCommitTx      = "failed to commit battle transaction"
)
