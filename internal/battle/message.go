package battle

import (
	"fmt"
	"regexp"

	"github.com/dokkaebistudio/kanghwa-server/internal/domain"
	"github.com/dokkaebistudio/kanghwa-server/internal/gamedata"
)

// weaponLevelPrefix matches a "+N강 " prefix on a weapon display name so
// it is not duplicated when the level is rendered again.
var weaponLevelPrefix = regexp.MustCompile(`^\+\d+강\s*`)

// displayWeapon renders a weapon as "+N강 name".
func displayWeapon(name string, level int) string {
	return fmt.Sprintf("+%d강 %s", level, weaponLevelPrefix.ReplaceAllString(name, ""))
}

// buildBattleMessage narrates the battle from the attacker's point of
// view, using the matchup verb table. Mirror matchups fall back to a
// neutral line.
func buildBattleMessage(myName, myWeapon string, myLevel int, oppName, oppWeapon string, oppLevel int, myType, oppType domain.WeaponType, won bool) string {
	mine := displayWeapon(myWeapon, myLevel)
	theirs := displayWeapon(oppWeapon, oppLevel)

	msg, ok := gamedata.BattleMessageFor(myType, oppType)
	if !ok {
		if won {
			return fmt.Sprintf("**%s**의 [%s]가 **%s**의 [%s]를 제압했습니다!", myName, mine, oppName, theirs)
		}
		return fmt.Sprintf("**%s**의 [%s]가 **%s**의 [%s]를 제압하지 못했습니다...", myName, mine, oppName, theirs)
	}

	if won {
		return fmt.Sprintf("**%s**의 [%s]가 **%s**의 [%s]를 %s!", myName, mine, oppName, theirs, msg.WinAction)
	}
	return fmt.Sprintf("**%s**의 [%s]가 **%s**의 [%s]를 %s 못했습니다...", myName, mine, oppName, theirs, msg.LoseAction)
}
