package upgrade

// Sell payout parameters. A sale pays 2x the current level's upgrade cost
// scaled by a uniform factor in [SellFactorMin, SellFactorMax).
const (
	SellBaseMultiplier = 2
	SellFactorMin      = 0.8
	SellFactorMax      = 1.2
)

// Log messages
const (
	LogMsgUpgradeResolved = "Upgrade resolved"
	LogMsgWeaponSold      = "Weapon sold"
)

// Error context messages for wrapped errors
const (
	ErrContextFailedToBeginTx      = "failed to begin transaction"
	ErrContextFailedToUpdatePlayer = "failed to update player"
	ErrContextFailedToInsertLog    = "failed to insert upgrade log"
	ErrContextFailedToCommitTx     = "failed to commit upgrade transaction"
)
