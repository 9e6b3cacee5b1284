package repository

import (
	"context"

	"github.com/dokkaebistudio/kanghwa-server/internal/domain"
)

// Weapon defines the interface for weapon descriptor lookups. Descriptors
// carry the flavor name and description for a (type, concept, level)
// combination; the table is content, not player state.
type Weapon interface {
	GetDescriptor(ctx context.Context, weaponType domain.WeaponType, concept string, level int) (*domain.WeaponDescriptor, error)
}
