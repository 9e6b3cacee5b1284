package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgPlayerNotFound = "player not found"
	ErrMsgUnauthorized   = "not authenticated"

	// Upgrade errors
	ErrMsgMaxLevelReached      = "weapon is already at the maximum level"
	ErrMsgInsufficientGold     = "insufficient gold"
	ErrMsgProtectionIneligible = "protection token cannot be used at this level"
	ErrMsgProtectionDepleted   = "no protection tokens of that tier left"
	ErrMsgCannotSellBaseWeapon = "a +0 weapon cannot be sold"

	// Hunt errors
	ErrMsgAlreadyHunting = "a hunt is already in progress"
	ErrMsgNotHunting     = "no hunt in progress"
	ErrMsgHuntNotDone    = "the hunt has not finished yet"

	// Battle errors
	ErrMsgNoTickets   = "no battle tickets left"
	ErrMsgNoOpponents = "no opponent available"

	// Check-in errors
	ErrMsgCheckinCooldown = "check-in is on cooldown"

	// Nickname errors
	ErrMsgNicknameTaken   = "nickname is already in use"
	ErrMsgNicknameInvalid = "nickname must be 1-6 Hangul, latin or digit characters"

	// Shop errors
	ErrMsgProductNotFound  = "no such product"
	ErrMsgAlreadyPurchased = "product was already claimed"

	// Persistence errors
	ErrMsgDatabaseError = "database error"
	ErrMsgTxClosed      = "tx is closed"
)

// Common domain errors
// These errors should be used consistently across all layers of the
// application. Wrap with fmt.Errorf("%w: ...", domain.ErrXxx) for context.
var (
	ErrPlayerNotFound = errors.New(ErrMsgPlayerNotFound)
	ErrUnauthorized   = errors.New(ErrMsgUnauthorized)

	ErrMaxLevelReached      = errors.New(ErrMsgMaxLevelReached)
	ErrInsufficientGold     = errors.New(ErrMsgInsufficientGold)
	ErrProtectionIneligible = errors.New(ErrMsgProtectionIneligible)
	ErrProtectionDepleted   = errors.New(ErrMsgProtectionDepleted)
	ErrCannotSellBaseWeapon = errors.New(ErrMsgCannotSellBaseWeapon)

	ErrAlreadyHunting = errors.New(ErrMsgAlreadyHunting)
	ErrNotHunting     = errors.New(ErrMsgNotHunting)
	ErrHuntNotDone    = errors.New(ErrMsgHuntNotDone)

	ErrNoTickets   = errors.New(ErrMsgNoTickets)
	ErrNoOpponents = errors.New(ErrMsgNoOpponents)

	ErrCheckinCooldown = errors.New(ErrMsgCheckinCooldown)

	ErrNicknameTaken   = errors.New(ErrMsgNicknameTaken)
	ErrNicknameInvalid = errors.New(ErrMsgNicknameInvalid)

	ErrProductNotFound  = errors.New(ErrMsgProductNotFound)
	ErrAlreadyPurchased = errors.New(ErrMsgAlreadyPurchased)

	ErrDatabaseError = errors.New(ErrMsgDatabaseError)
)
