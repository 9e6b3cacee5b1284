package weaponinfo

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/dokkaebistudio/kanghwa-server/internal/domain"
	"github.com/dokkaebistudio/kanghwa-server/internal/gamedata"
	"github.com/dokkaebistudio/kanghwa-server/internal/logger"
	"github.com/dokkaebistudio/kanghwa-server/internal/repository"
)

const (
	// DescriptorCacheSize bounds the in-memory descriptor cache. The full
	// descriptor table is 5 types x 10 concepts x 21 levels.
	DescriptorCacheSize = 2048
	// DescriptorCacheTTL keeps entries fresh enough that content edits in
	// the database show up without a restart.
	DescriptorCacheTTL = 10 * time.Minute
)

// Service resolves display names and descriptions for weapons. Lookups hit
// an in-memory LRU first because the same few descriptors are rendered on
// every profile, feed and battle response.
type Service interface {
	Describe(ctx context.Context, weapon domain.Weapon) domain.WeaponDescriptor
}

type service struct {
	repo  repository.Weapon
	cache *expirable.LRU[string, domain.WeaponDescriptor]
}

// NewService creates a new weaponinfo service
func NewService(repo repository.Weapon) Service {
	return &service{
		repo:  repo,
		cache: expirable.NewLRU[string, domain.WeaponDescriptor](DescriptorCacheSize, nil, DescriptorCacheTTL),
	}
}

// Describe returns the descriptor for a weapon. Missing rows and lookup
// failures fall back to a generated "concept type" name so rendering never
// blocks on content.
func (s *service) Describe(ctx context.Context, weapon domain.Weapon) domain.WeaponDescriptor {
	key := cacheKey(weapon)
	if d, ok := s.cache.Get(key); ok {
		return d
	}

	d := domain.WeaponDescriptor{
		Type:    weapon.Type,
		Concept: weapon.Concept,
		Level:   weapon.Level,
		Name:    gamedata.FallbackWeaponName(weapon.Type, weapon.Concept),
	}

	if s.repo != nil {
		row, err := s.repo.GetDescriptor(ctx, weapon.Type, weapon.Concept, weapon.Level)
		if err != nil {
			logger.FromContext(ctx).Warn("Failed to load weapon descriptor", "error", err,
				"weapon_type", weapon.Type, "concept", weapon.Concept, "level", weapon.Level)
			// Do not cache failures; the next lookup retries the database.
			return d
		}
		if row != nil {
			d = *row
		}
	}

	s.cache.Add(key, d)
	return d
}

func cacheKey(weapon domain.Weapon) string {
	return fmt.Sprintf("%s|%s|%d", weapon.Type, weapon.Concept, weapon.Level)
}
