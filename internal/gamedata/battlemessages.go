package gamedata

import "github.com/dokkaebistudio/kanghwa-server/internal/domain"

// BattleMessage holds the verb phrases used to narrate a battle between
// two weapon types, from the attacker's point of view.
type BattleMessage struct {
	WinAction  string // used when the attacker won
	LoseAction string // used when the attacker lost; rendered "... 못했습니다"
}

type battleMessageKey struct {
	Mine  domain.WeaponType
	Enemy domain.WeaponType
}

// battleMessages narrates each directed matchup.
var battleMessages = map[battleMessageKey]BattleMessage{
	// Favorable matchups
	{domain.WeaponSword, domain.WeaponBow}:    {WinAction: "재빠르게 베어버렸습니다", LoseAction: "화살 사거리 안으로 파고들지"},
	{domain.WeaponSword, domain.WeaponStaff}:  {WinAction: "마법을 끊어내버렸습니다", LoseAction: "주문을 끊어내지"},
	{domain.WeaponClub, domain.WeaponSword}:   {WinAction: "정면으로 쳐내버렸습니다", LoseAction: "검의 칼날을 뚫지"},
	{domain.WeaponClub, domain.WeaponShield}:  {WinAction: "부숴버렸습니다", LoseAction: "벽을 넘지"},
	{domain.WeaponBow, domain.WeaponClub}:     {WinAction: "거리에서 꿰뚫어버렸습니다", LoseAction: "거리를 유지하지"},
	{domain.WeaponBow, domain.WeaponShield}:   {WinAction: "빈틈을 정확히 꿰뚫어버렸습니다", LoseAction: "방패의 빈틈을 찾지"},
	{domain.WeaponShield, domain.WeaponSword}: {WinAction: "공격을 막아내고 밀어붙였습니다", LoseAction: "방패를 뚫지"},
	{domain.WeaponShield, domain.WeaponStaff}: {WinAction: "마법을 튕겨내버렸습니다", LoseAction: "마법을 막아내지"},
	{domain.WeaponStaff, domain.WeaponClub}:   {WinAction: "속박 마법으로 묶어버렸습니다", LoseAction: "속박을 걸지"},
	{domain.WeaponStaff, domain.WeaponBow}:    {WinAction: "바람으로 궤도를 틀어버렸습니다", LoseAction: "화살의 궤도를 흐트러뜨리지"},
	// Unfavorable matchups
	{domain.WeaponBow, domain.WeaponSword}:    {WinAction: "거리를 유지하며 명중시켰습니다", LoseAction: "거리를 벌리지"},
	{domain.WeaponStaff, domain.WeaponSword}:  {WinAction: "주문으로 제압했습니다", LoseAction: "검을 막아내지"},
	{domain.WeaponSword, domain.WeaponClub}:   {WinAction: "빠르게 베어냈습니다", LoseAction: "묵직한 일격을 피하지"},
	{domain.WeaponShield, domain.WeaponClub}:  {WinAction: "버텨냈습니다", LoseAction: "충격을 버티지"},
	{domain.WeaponClub, domain.WeaponBow}:     {WinAction: "거리를 좁혀 내려쳤습니다", LoseAction: "화살을 피하지"},
	{domain.WeaponShield, domain.WeaponBow}:   {WinAction: "화살을 튕겨냈습니다", LoseAction: "빈틈을 막지"},
	{domain.WeaponSword, domain.WeaponShield}: {WinAction: "방어를 뚫었습니다", LoseAction: "방패를 넘지"},
	{domain.WeaponStaff, domain.WeaponShield}: {WinAction: "마법으로 압도했습니다", LoseAction: "마법을 통과시키지"},
	{domain.WeaponClub, domain.WeaponStaff}:   {WinAction: "마법 전에 내려쳤습니다", LoseAction: "마법을 뚫지"},
	{domain.WeaponBow, domain.WeaponStaff}:    {WinAction: "주문 전에 명중시켰습니다", LoseAction: "마법을 피하지"},
}

// BattleMessageFor returns the narration phrases for a directed
// matchup. ok is false for mirror matchups, which use a neutral line.
func BattleMessageFor(mine, enemy domain.WeaponType) (BattleMessage, bool) {
	msg, ok := battleMessages[battleMessageKey{Mine: mine, Enemy: enemy}]
	return msg, ok
}
