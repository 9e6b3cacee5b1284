package gamedata

import "github.com/dokkaebistudio/kanghwa-server/internal/domain"

// MatchupBonusPoints is the win-rate swing of a favorable or unfavorable
// weapon matchup, in percentage points.
const MatchupBonusPoints = 12

// Win rate bounds.
const (
	MinWinRate = 5
	MaxWinRate = 95
)

// Matchup describes which types a weapon beats and loses to. Each type
// is strong against exactly two others and weak against the remaining
// two, rock-paper-scissors style over five types.
type Matchup struct {
	Strong []domain.WeaponType
	Weak   []domain.WeaponType
}

// Matchups is the fixed weapon-type adjacency table.
var Matchups = map[domain.WeaponType]Matchup{
	domain.WeaponSword: {
		Strong: []domain.WeaponType{domain.WeaponBow, domain.WeaponStaff},
		Weak:   []domain.WeaponType{domain.WeaponClub, domain.WeaponShield},
	},
	domain.WeaponClub: {
		Strong: []domain.WeaponType{domain.WeaponSword, domain.WeaponShield},
		Weak:   []domain.WeaponType{domain.WeaponBow, domain.WeaponStaff},
	},
	domain.WeaponBow: {
		Strong: []domain.WeaponType{domain.WeaponClub, domain.WeaponShield},
		Weak:   []domain.WeaponType{domain.WeaponSword, domain.WeaponStaff},
	},
	domain.WeaponShield: {
		Strong: []domain.WeaponType{domain.WeaponSword, domain.WeaponStaff},
		Weak:   []domain.WeaponType{domain.WeaponClub, domain.WeaponBow},
	},
	domain.WeaponStaff: {
		Strong: []domain.WeaponType{domain.WeaponClub, domain.WeaponBow},
		Weak:   []domain.WeaponType{domain.WeaponSword, domain.WeaponShield},
	},
}

// MatchupBonus returns +12 when mine is strong against enemy, -12 when
// weak, 0 otherwise (mirror or unknown matchup).
func MatchupBonus(mine, enemy domain.WeaponType) int {
	matchup, ok := Matchups[mine]
	if !ok {
		return 0
	}
	for _, t := range matchup.Strong {
		if t == enemy {
			return MatchupBonusPoints
		}
	}
	for _, t := range matchup.Weak {
		if t == enemy {
			return -MatchupBonusPoints
		}
	}
	return 0
}

// WinRate computes the final battle win probability in percentage
// points: 50 plus 20 per level of advantage, clamped to [5,95], then
// the matchup bonus, clamped again.
func WinRate(attackerLevel, defenderLevel, matchupBonus int) int {
	base := clampRate(50 + 20*(attackerLevel-defenderLevel))
	return clampRate(base + matchupBonus)
}

func clampRate(rate int) int {
	if rate < MinWinRate {
		return MinWinRate
	}
	if rate > MaxWinRate {
		return MaxWinRate
	}
	return rate
}
