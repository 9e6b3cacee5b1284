package bootstrap

// Shutdown log messages
const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgSessionPurgerFailed  = "Session purge worker shutdown failed"
)
