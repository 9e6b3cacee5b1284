package gamedata

import "github.com/dokkaebistudio/kanghwa-server/internal/domain"

// OutcomeRow holds the success/maintain/destroy weights for one weapon
// level, in percentage points summing to 100.
type OutcomeRow struct {
	Success  int
	Maintain int
	Destroy  int
}

// Resolve maps a uniform roll in [0,100) to an outcome by walking the
// weights in listed order. If the weights sum to less than 100 (a data
// bug), any roll past the accumulated total falls back to the last kind.
func (r OutcomeRow) Resolve(roll float64) domain.UpgradeOutcome {
	if roll < float64(r.Success) {
		return domain.OutcomeSuccess
	}
	if roll < float64(r.Success+r.Maintain) {
		return domain.OutcomeMaintain
	}
	return domain.OutcomeDestroy
}

// UpgradeChances is the hand-tuned outcome table keyed by current weapon
// level. The values are authoritative as listed; the rows for levels
// 17-20 intentionally break the earlier progression.
var UpgradeChances = [domain.MaxWeaponLevel + 1]OutcomeRow{
	0:  {Success: 90, Maintain: 10, Destroy: 0},
	1:  {Success: 81, Maintain: 14, Destroy: 5},
	2:  {Success: 77, Maintain: 18, Destroy: 5},
	3:  {Success: 72, Maintain: 23, Destroy: 5},
	4:  {Success: 68, Maintain: 27, Destroy: 5},
	5:  {Success: 63, Maintain: 32, Destroy: 5},
	6:  {Success: 59, Maintain: 36, Destroy: 5},
	7:  {Success: 54, Maintain: 39, Destroy: 7},
	8:  {Success: 50, Maintain: 40, Destroy: 10},
	9:  {Success: 45, Maintain: 42, Destroy: 13},
	10: {Success: 32, Maintain: 50, Destroy: 18},
	11: {Success: 29, Maintain: 52, Destroy: 19},
	12: {Success: 26, Maintain: 54, Destroy: 20},
	13: {Success: 23, Maintain: 56, Destroy: 21},
	14: {Success: 21, Maintain: 57, Destroy: 22},
	15: {Success: 18, Maintain: 59, Destroy: 23},
	16: {Success: 15, Maintain: 61, Destroy: 24},
	17: {Success: 10, Maintain: 70, Destroy: 20},
	18: {Success: 7, Maintain: 73, Destroy: 20},
	19: {Success: 5, Maintain: 75, Destroy: 20},
	20: {Success: 3, Maintain: 77, Destroy: 20},
}

// UpgradeCosts is the gold cost of attempting an upgrade from each
// level. Level 20 cannot be upgraded further, hence 0.
var UpgradeCosts = [domain.MaxWeaponLevel + 1]int64{
	0:  100,
	1:  200,
	2:  400,
	3:  800,
	4:  1600,
	5:  3200,
	6:  6000,
	7:  10000,
	8:  16000,
	9:  25000,
	10: 40000,
	11: 65000,
	12: 105000,
	13: 170000,
	14: 270000,
	15: 430000,
	16: 700000,
	17: 1100000,
	18: 1700000,
	19: 2600000,
	20: 0,
}

// UpgradeCost returns the attempt cost at a weapon level, 0 for levels
// outside the table.
func UpgradeCost(level int) int64 {
	if level < 0 || level > domain.MaxWeaponLevel {
		return 0
	}
	return UpgradeCosts[level]
}
