package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dokkaebistudio/kanghwa-server/internal/domain"
)

// WeaponRepository implements the weapon descriptor repository for PostgreSQL
type WeaponRepository struct {
	db *pgxpool.Pool
}

// NewWeaponRepository creates a new WeaponRepository
func NewWeaponRepository(db *pgxpool.Pool) *WeaponRepository {
	return &WeaponRepository{db: db}
}

// GetDescriptor looks up the flavor name and description for a weapon.
// Returns nil without error when no row exists; callers fall back to a
// generated name.
func (r *WeaponRepository) GetDescriptor(ctx context.Context, weaponType domain.WeaponType, concept string, level int) (*domain.WeaponDescriptor, error) {
	query := `
		SELECT weapon_type, concept, level, name, description
		FROM weapon_descriptions
		WHERE weapon_type = $1 AND concept = $2 AND level = $3
	`
	var d domain.WeaponDescriptor
	err := r.db.QueryRow(ctx, query, weaponType, concept, level).Scan(
		&d.Type, &d.Concept, &d.Level, &d.Name, &d.Description,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get weapon descriptor: %w", err)
	}
	return &d, nil
}
