package player

// Log messages
const (
	LogMsgPlayerRegistered = "Player registered"
	LogMsgNicknameSet      = "Nickname set"
)

// Error context messages for wrapped errors
const (
	ErrContextFailedToCreatePlayer  = "failed to create player"
	ErrContextFailedToCreateSession = "failed to create session"
	ErrContextFailedToCheckNickname = "failed to check nickname"
	ErrContextFailedToUpdatePlayer  = "failed to update player"
)
