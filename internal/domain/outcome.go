package domain

import "time"

// UpgradeOutcome is the resolved result of one upgrade attempt.
type UpgradeOutcome string

const (
	OutcomeSuccess  UpgradeOutcome = "SUCCESS"
	OutcomeMaintain UpgradeOutcome = "MAINTAIN"
	OutcomeDestroy  UpgradeOutcome = "DESTROY"
)

// LogAction distinguishes upgrade-log rows.
type LogAction string

const (
	ActionUpgrade LogAction = "UPGRADE"
	ActionSell    LogAction = "SELL"
)

// BattleOutcome is the resolved result of one battle.
type BattleOutcome string

const (
	BattleWin  BattleOutcome = "WIN"
	BattleLose BattleOutcome = "LOSE"
)

// HuntReward is the category a hunt resolution landed on.
type HuntReward string

const (
	HuntGold           HuntReward = "GOLD"
	HuntKey            HuntReward = "KEY"
	HuntProtectionLow  HuntReward = "PROTECTION_LOW"
	HuntProtectionMid  HuntReward = "PROTECTION_MID"
	HuntProtectionHigh HuntReward = "PROTECTION_HIGH"
)

// UpgradeLog is one append-only audit row for an upgrade or sell action.
// The weapon fields snapshot the weapon as it was before the mutation so
// the feed can render what was upgraded, sold or destroyed.
type UpgradeLog struct {
	ID             string          `json:"id"`
	PlayerID       string          `json:"player_id"`
	Nickname       *string         `json:"nickname,omitempty"`
	Action         LogAction       `json:"action"`
	WeaponType     WeaponType      `json:"weapon_type"`
	WeaponConcept  string          `json:"weapon_concept"`
	WeaponName     string          `json:"weapon_name"`
	WeaponDesc     string          `json:"weapon_description,omitempty"`
	FromLevel      int             `json:"from_level"`
	ToLevel        *int            `json:"to_level,omitempty"`
	Result         *UpgradeOutcome `json:"result,omitempty"`
	GoldChange     int64           `json:"gold_change"`
	UsedProtection ProtectionTier  `json:"used_protection,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

// BattleLog is one append-only audit row for a battle, including the
// opponent snapshot taken at match time.
type BattleLog struct {
	ID                  string        `json:"id"`
	PlayerID            string        `json:"player_id"`
	MyWeaponType        WeaponType    `json:"my_weapon_type"`
	MyWeaponConcept     string        `json:"my_weapon_concept"`
	MyWeaponLevel       int           `json:"my_weapon_level"`
	MyWeaponName        string        `json:"my_weapon_name"`
	OpponentID          string        `json:"opponent_id"`
	OpponentWeaponType  WeaponType    `json:"opponent_weapon_type"`
	OpponentConcept     string        `json:"opponent_weapon_concept"`
	OpponentWeaponLevel int           `json:"opponent_weapon_level"`
	OpponentWeaponName  string        `json:"opponent_weapon_name"`
	WinRate             int           `json:"win_rate"`
	MatchupBonus        int           `json:"matchup_bonus"`
	Result              BattleOutcome `json:"result"`
	GoldEarned          int64         `json:"gold_earned"`
	BattleMessage       string        `json:"battle_message"`
	CreatedAt           time.Time     `json:"created_at"`
}

// CheckinLog is one append-only audit row for a daily check-in.
type CheckinLog struct {
	ID         string    `json:"id"`
	PlayerID   string    `json:"player_id"`
	RewardGold int64     `json:"reward_gold"`
	StreakDay  int       `json:"streak_day"`
	CreatedAt  time.Time `json:"created_at"`
}

// HuntingLog is one append-only audit row for a resolved hunt.
type HuntingLog struct {
	ID           string     `json:"id"`
	PlayerID     string     `json:"player_id"`
	HuntingLevel int        `json:"hunting_level"`
	RewardType   HuntReward `json:"reward_type"`
	RewardAmount int64      `json:"reward_amount"`
	CreatedAt    time.Time  `json:"created_at"`
}
