package gamedata

import (
	"fmt"

	"github.com/dokkaebistudio/kanghwa-server/internal/domain"
)

// Validate checks every static table for internal consistency. It is
// run once at startup so a bad table edit fails the deploy instead of
// silently skewing outcomes.
func Validate() error {
	for level, row := range UpgradeChances {
		if sum := row.Success + row.Maintain + row.Destroy; sum != 100 {
			return fmt.Errorf("upgrade chances for level %d sum to %d, want 100", level, sum)
		}
		if row.Success < 0 || row.Maintain < 0 || row.Destroy < 0 {
			return fmt.Errorf("upgrade chances for level %d contain a negative weight", level)
		}
	}

	for level := domain.MinHuntingLevel; level <= domain.MaxHuntingLevel; level++ {
		if sum := HuntGoldChance(level) + HuntKeyChance(level) + HuntProtectionChance(level); sum != 100 {
			return fmt.Errorf("hunt reward split for level %d sums to %d, want 100", level, sum)
		}
		table := ProtectionDropTable(level)
		if len(table) == 0 {
			return fmt.Errorf("empty protection drop table for level %d", level)
		}
		total := 0
		for _, drop := range table {
			if drop.Weight <= 0 {
				return fmt.Errorf("non-positive protection weight at level %d", level)
			}
			total += drop.Weight
		}
		if total != HuntProtectionChance(level) {
			return fmt.Errorf("protection sub-table for level %d sums to %d, want %d",
				level, total, HuntProtectionChance(level))
		}
	}

	for _, t := range domain.WeaponTypes {
		matchup, ok := Matchups[t]
		if !ok {
			return fmt.Errorf("missing matchup entry for weapon type %s", t)
		}
		if len(matchup.Strong) != 2 || len(matchup.Weak) != 2 {
			return fmt.Errorf("matchup for %s must list 2 strong and 2 weak types", t)
		}
		for _, enemy := range matchup.Strong {
			if MatchupBonus(enemy, t) != -MatchupBonusPoints {
				return fmt.Errorf("matchup %s vs %s is not antisymmetric", t, enemy)
			}
		}
		if concepts := ConceptsByWeapon[t]; len(concepts) != 10 {
			return fmt.Errorf("weapon type %s has %d concepts, want 10", t, len(ConceptsByWeapon[t]))
		}
	}

	return nil
}
