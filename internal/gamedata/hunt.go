package gamedata

import (
	"math"

	"github.com/dokkaebistudio/kanghwa-server/internal/domain"
)

// Hunt reward split in percentage points. Keys drop at 10% up to level
// 10 and 5% above it; protection tokens hold a flat 5% and gold takes
// the rest.
const huntProtectionChance = 5

// HuntKeyChance returns the key drop chance for a hunting level.
func HuntKeyChance(level int) int {
	if level <= 10 {
		return 10
	}
	return 5
}

// HuntProtectionChance returns the flat protection drop chance.
func HuntProtectionChance(level int) int {
	return huntProtectionChance
}

// HuntGoldChance returns the gold chance, the remainder of the split.
func HuntGoldChance(level int) int {
	return 100 - HuntKeyChance(level) - HuntProtectionChance(level)
}

// ProtectionDrop is one entry of a protection sub-table: a token grade
// and its relative weight within the protection category.
type ProtectionDrop struct {
	Reward domain.HuntReward
	Weight int
}

// ProtectionDropTable returns the protection sub-table for a hunting
// level bracket. Each bracket exposes different grades; the weights sum
// to the flat protection chance.
func ProtectionDropTable(level int) []ProtectionDrop {
	switch {
	case level >= 1 && level <= 5:
		return []ProtectionDrop{
			{Reward: domain.HuntProtectionLow, Weight: 5},
		}
	case level >= 6 && level <= 10:
		return []ProtectionDrop{
			{Reward: domain.HuntProtectionLow, Weight: 3},
			{Reward: domain.HuntProtectionMid, Weight: 2},
		}
	case level >= 11 && level <= 15:
		return []ProtectionDrop{
			{Reward: domain.HuntProtectionLow, Weight: 2},
			{Reward: domain.HuntProtectionMid, Weight: 2},
			{Reward: domain.HuntProtectionHigh, Weight: 1},
		}
	default: // 16-20
		return []ProtectionDrop{
			{Reward: domain.HuntProtectionMid, Weight: 3},
			{Reward: domain.HuntProtectionHigh, Weight: 2},
		}
	}
}

// ResolveProtectionDrop picks a token grade from the bracket sub-table
// given a roll in [0, totalWeight). A roll past the accumulated total
// (floating point roundoff) falls back to the first entry.
func ResolveProtectionDrop(level int, roll float64) domain.HuntReward {
	table := ProtectionDropTable(level)
	for _, drop := range table {
		if roll < float64(drop.Weight) {
			return drop.Reward
		}
		roll -= float64(drop.Weight)
	}
	return table[0].Reward
}

// HuntGoldBase is the center of the gold reward at a hunting level: an
// exponential curve from 1,000 at level 1 to 100,000 at level 20.
func HuntGoldBase(level int) int64 {
	return int64(math.Floor(1000 * math.Pow(100, float64(level-1)/19)))
}
