package domain

import "time"

// Gameplay limits and starting values.
const (
	MaxWeaponLevel  = 20
	MaxHuntingLevel = 20
	MinHuntingLevel = 1

	MaxBattleTickets  = 10
	TicketRegenHours  = 2
	StartingGold      = 10000
	StartingTickets   = 10
	KeysPerLevelUp    = 3
	MaxCheckinStreak  = 7
	CheckinCooldown   = 4 * time.Hour
	HuntDuration      = 5 * time.Second
	MaxNicknameLength = 6
)

// ProtectionTier is the grade of a destroy-countermeasure token.
type ProtectionTier string

const (
	ProtectionNone ProtectionTier = ""
	ProtectionLow  ProtectionTier = "low"
	ProtectionMid  ProtectionTier = "mid"
	ProtectionHigh ProtectionTier = "high"
)

// UsableAt reports whether a token of this tier may be selected at the
// given weapon level. Low tokens work only at +10 and below, mid at +15
// and below, high only at +15 and above.
func (p ProtectionTier) UsableAt(level int) bool {
	switch p {
	case ProtectionLow:
		return level <= 10
	case ProtectionMid:
		return level <= 15
	case ProtectionHigh:
		return level >= 15
	}
	return false
}

// Player is the single authoritative state row for one account.
// Every reward-resolving operation reads this row, applies one
// transition and writes it back together with an audit log entry.
type Player struct {
	ID       string  `json:"id"`
	Nickname *string `json:"nickname,omitempty"`

	Weapon Weapon `json:"weapon"`
	Gold   int64  `json:"gold"`

	// Check-in progress
	LastCheckinAt    *time.Time `json:"last_checkin_at,omitempty"`
	CheckinStreakDay int        `json:"checkin_streak_day"`
	TodayCheckinGold int64      `json:"today_checkin_gold"`
	TodayCheckinDate string     `json:"today_checkin_date,omitempty"` // YYYY-MM-DD in KST

	// Battle resources
	BattleTickets     int        `json:"battle_tickets"`
	LastTicketRegenAt *time.Time `json:"last_ticket_regen_at,omitempty"`
	TotalWins         int        `json:"total_wins"`
	TotalLosses       int        `json:"total_losses"`

	// Destroy countermeasure tokens
	ProtectionLow  int `json:"protection_low"`
	ProtectionMid  int `json:"protection_mid"`
	ProtectionHigh int `json:"protection_high"`

	// One-time shop claims
	PurchasedGoldSmall  bool `json:"purchased_gold_small"`
	PurchasedGoldMedium bool `json:"purchased_gold_medium"`
	PurchasedGoldLarge  bool `json:"purchased_gold_large"`
	PurchasedProtLow    bool `json:"purchased_prot_low"`
	PurchasedProtMid    bool `json:"purchased_prot_mid"`
	PurchasedProtHigh   bool `json:"purchased_prot_high"`

	// Lifetime upgrade statistics
	TotalUpgrades        int `json:"total_upgrades"`
	TotalSuccesses       int `json:"total_successes"`
	TotalMaintains       int `json:"total_maintains"`
	TotalDestroys        int `json:"total_destroys"`
	CurrentSuccessStreak int `json:"current_success_streak"`
	MaxSuccessStreak     int `json:"max_success_streak"`

	// Per-type best levels and destroy counts
	BestSwordLevel  int `json:"best_sword_level"`
	BestBowLevel    int `json:"best_bow_level"`
	BestStaffLevel  int `json:"best_staff_level"`
	BestShieldLevel int `json:"best_shield_level"`
	BestClubLevel   int `json:"best_club_level"`

	SwordDestroyCount  int `json:"sword_destroy_count"`
	BowDestroyCount    int `json:"bow_destroy_count"`
	StaffDestroyCount  int `json:"staff_destroy_count"`
	ShieldDestroyCount int `json:"shield_destroy_count"`
	ClubDestroyCount   int `json:"club_destroy_count"`

	// Hunting ground progress
	HuntingLevel     int        `json:"hunting_level"`
	HuntingKeys      int        `json:"hunting_keys"`
	IsHunting        bool       `json:"is_hunting"`
	HuntingStartedAt *time.Time `json:"hunting_started_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// BestLevel returns the recorded best level for the given weapon type.
func (p *Player) BestLevel(t WeaponType) int {
	switch t {
	case WeaponSword:
		return p.BestSwordLevel
	case WeaponBow:
		return p.BestBowLevel
	case WeaponStaff:
		return p.BestStaffLevel
	case WeaponShield:
		return p.BestShieldLevel
	case WeaponClub:
		return p.BestClubLevel
	}
	return 0
}

// SetBestLevel updates the recorded best level for the given weapon type.
func (p *Player) SetBestLevel(t WeaponType, level int) {
	switch t {
	case WeaponSword:
		p.BestSwordLevel = level
	case WeaponBow:
		p.BestBowLevel = level
	case WeaponStaff:
		p.BestStaffLevel = level
	case WeaponShield:
		p.BestShieldLevel = level
	case WeaponClub:
		p.BestClubLevel = level
	}
}

// AddDestroyCount increments the per-type destroy tally.
func (p *Player) AddDestroyCount(t WeaponType) {
	switch t {
	case WeaponSword:
		p.SwordDestroyCount++
	case WeaponBow:
		p.BowDestroyCount++
	case WeaponStaff:
		p.StaffDestroyCount++
	case WeaponShield:
		p.ShieldDestroyCount++
	case WeaponClub:
		p.ClubDestroyCount++
	}
}

// ProtectionCount returns the inventory count for a token tier.
func (p *Player) ProtectionCount(tier ProtectionTier) int {
	switch tier {
	case ProtectionLow:
		return p.ProtectionLow
	case ProtectionMid:
		return p.ProtectionMid
	case ProtectionHigh:
		return p.ProtectionHigh
	}
	return 0
}

// ConsumeProtection decrements the inventory count for a token tier.
func (p *Player) ConsumeProtection(tier ProtectionTier) {
	switch tier {
	case ProtectionLow:
		p.ProtectionLow--
	case ProtectionMid:
		p.ProtectionMid--
	case ProtectionHigh:
		p.ProtectionHigh--
	}
}

// DisplayName returns the nickname, or the anonymous placeholder when
// the player has not set one yet.
func (p *Player) DisplayName() string {
	if p.Nickname != nil && *p.Nickname != "" {
		return *p.Nickname
	}
	return AnonymousName
}

// AnonymousName is shown for players without a nickname.
const AnonymousName = "익명"
