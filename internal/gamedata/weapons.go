package gamedata

import "github.com/dokkaebistudio/kanghwa-server/internal/domain"

// ConceptsByWeapon lists the ten flavor concepts of each weapon type.
// Matches the weapon_descriptions reference data.
var ConceptsByWeapon = map[domain.WeaponType][]string{
	domain.WeaponSword:  {"그림자", "피", "저주", "시간", "왕권", "광기", "성전", "배신", "절단", "종말"},
	domain.WeaponBow:    {"사냥", "관통", "예언", "암살", "추적", "저격", "절멸", "운명", "삭제", "종말"},
	domain.WeaponStaff:  {"마력", "금단", "혼돈", "차원", "원소", "사령", "진리", "왜곡", "초월", "창조"},
	domain.WeaponShield: {"수호", "불굴", "반격", "요새", "심판", "지배", "침묵", "압도", "절대", "불멸"},
	domain.WeaponClub:   {"야만", "뼈", "대지", "분노", "파괴", "굶주림", "원시", "압살", "학살", "종말"},
}

// ConceptsFor returns the concept list for a weapon type, defaulting to
// the sword list for unknown types.
func ConceptsFor(t domain.WeaponType) []string {
	if concepts, ok := ConceptsByWeapon[t]; ok {
		return concepts
	}
	return ConceptsByWeapon[domain.WeaponSword]
}

// FallbackWeaponName is the display name used when no descriptor row
// exists for a (type, concept, level) triple.
func FallbackWeaponName(t domain.WeaponType, concept string) string {
	return concept + " " + string(t)
}
