package domain

// WeaponType identifies one of the five weapon classes.
// Values are the Korean display names, matching the weapon_descriptions
// reference data and the log tables.
type WeaponType string

const (
	WeaponSword  WeaponType = "칼"
	WeaponBow    WeaponType = "활"
	WeaponStaff  WeaponType = "지팡이"
	WeaponShield WeaponType = "방패"
	WeaponClub   WeaponType = "몽둥이"
)

// WeaponTypes lists every weapon type in a fixed order. Random re-rolls
// index into this slice.
var WeaponTypes = []WeaponType{WeaponSword, WeaponBow, WeaponStaff, WeaponShield, WeaponClub}

// IsValid reports whether t is one of the five known weapon types.
func (t WeaponType) IsValid() bool {
	switch t {
	case WeaponSword, WeaponBow, WeaponStaff, WeaponShield, WeaponClub:
		return true
	}
	return false
}

// Weapon is the equipped weapon of a player: a type, a concept (flavor
// line within the type) and an upgrade level 0-20.
type Weapon struct {
	Type    WeaponType `json:"type"`
	Concept string     `json:"concept"`
	Level   int        `json:"level"`
}

// WeaponDescriptor is one row of the weapon_descriptions reference table:
// the display name and flavor text for a (type, concept, level) triple.
type WeaponDescriptor struct {
	Type        WeaponType `json:"weapon_type"`
	Concept     string     `json:"concept"`
	Level       int        `json:"level"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
}
