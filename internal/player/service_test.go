package player

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dokkaebistudio/kanghwa-server/internal/domain"
	"github.com/dokkaebistudio/kanghwa-server/internal/gamedata"
	"github.com/dokkaebistudio/kanghwa-server/internal/session"
	"github.com/dokkaebistudio/kanghwa-server/internal/weaponinfo"
)

func newTestService(repo *FakeRepository) *service {
	sessions := session.NewService(session.NewFakeRepository())
	return NewService(repo, sessions, weaponinfo.NewService(nil)).(*service)
}

func TestRegister(t *testing.T) {
	repo := NewFakeRepository()
	svc := newTestService(repo)
	// Force the first type and first concept.
	svc.randInt = func(min, max int) int { return min }

	result, err := svc.Register(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.WeaponSword, result.Player.Weapon.Type)
	assert.Equal(t, 0, result.Player.Weapon.Level)
	assert.NotEmpty(t, result.Player.Weapon.Concept)
	assert.Equal(t, int64(domain.StartingGold), result.Player.Gold)
	assert.Equal(t, domain.StartingTickets, result.Player.BattleTickets)
	assert.Equal(t, domain.MinHuntingLevel, result.Player.HuntingLevel)
	assert.NotEmpty(t, result.Session.Token)
	assert.Equal(t, result.Player.ID, result.Session.PlayerID)
}

func TestRegister_RandomWeaponWithinTables(t *testing.T) {
	repo := NewFakeRepository()
	svc := newTestService(repo)

	for i := 0; i < 50; i++ {
		result, err := svc.Register(context.Background())
		require.NoError(t, err)
		assert.True(t, result.Player.Weapon.Type.IsValid())
		assert.Contains(t, gamedata.ConceptsFor(result.Player.Weapon.Type), result.Player.Weapon.Concept)
	}
}

func TestGetProfile(t *testing.T) {
	repo := NewFakeRepository()
	id := repo.AddPlayer(domain.Player{
		Weapon: domain.Weapon{Type: domain.WeaponBow, Concept: "바람", Level: 3},
		Gold:   5000,
	})
	svc := newTestService(repo)

	profile, err := svc.GetProfile(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, "바람 활", profile.WeaponName)
	assert.Equal(t, int64(800), profile.NextUpgradeCost)
	assert.Equal(t, 72, profile.SuccessChance)
	assert.Equal(t, 23, profile.MaintainChance)
	assert.Equal(t, 5, profile.DestroyChance)
}

func TestGetProfile_MaxLevelHasNoUpgradeCost(t *testing.T) {
	repo := NewFakeRepository()
	id := repo.AddPlayer(domain.Player{
		Weapon: domain.Weapon{Type: domain.WeaponSword, Concept: "불꽃", Level: domain.MaxWeaponLevel},
	})
	svc := newTestService(repo)

	profile, err := svc.GetProfile(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, int64(0), profile.NextUpgradeCost)
	assert.Equal(t, 0, profile.SuccessChance)
}

func TestGetProfile_UnknownPlayer(t *testing.T) {
	svc := newTestService(NewFakeRepository())

	_, err := svc.GetProfile(context.Background(), "nope")

	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
}

func TestSetNickname(t *testing.T) {
	repo := NewFakeRepository()
	id := repo.AddPlayer(domain.Player{Weapon: domain.Weapon{Type: domain.WeaponSword, Concept: "불꽃"}})
	svc := newTestService(repo)

	player, err := svc.SetNickname(context.Background(), id, "용사123")

	require.NoError(t, err)
	require.NotNil(t, player.Nickname)
	assert.Equal(t, "용사123", *player.Nickname)
	assert.Equal(t, "용사123", repo.Player(id).DisplayName())
}

func TestSetNickname_TrimsWhitespace(t *testing.T) {
	repo := NewFakeRepository()
	id := repo.AddPlayer(domain.Player{Weapon: domain.Weapon{Type: domain.WeaponSword, Concept: "불꽃"}})
	svc := newTestService(repo)

	player, err := svc.SetNickname(context.Background(), id, "  검왕  ")

	require.NoError(t, err)
	assert.Equal(t, "검왕", *player.Nickname)
}

func TestSetNickname_Validation(t *testing.T) {
	repo := NewFakeRepository()
	id := repo.AddPlayer(domain.Player{Weapon: domain.Weapon{Type: domain.WeaponSword, Concept: "불꽃"}})
	svc := newTestService(repo)

	tests := []struct {
		name     string
		nickname string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"too long", "일이삼사오육칠"},
		{"too long latin", strings.Repeat("a", 7)},
		{"special characters", "hero!"},
		{"inner space", "용 사"},
		{"jamo only", "ㅋㅋㅋ"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SetNickname(context.Background(), id, tt.nickname)
			assert.ErrorIs(t, err, domain.ErrNicknameInvalid)
		})
	}
}

func TestSetNickname_SixCharLimitCountsRunes(t *testing.T) {
	repo := NewFakeRepository()
	id := repo.AddPlayer(domain.Player{Weapon: domain.Weapon{Type: domain.WeaponSword, Concept: "불꽃"}})
	svc := newTestService(repo)

	_, err := svc.SetNickname(context.Background(), id, "일이삼사오육")

	assert.NoError(t, err, "6 Hangul syllables are within the limit")
}

func TestSetNickname_Taken(t *testing.T) {
	repo := NewFakeRepository()
	first := repo.AddPlayer(domain.Player{Weapon: domain.Weapon{Type: domain.WeaponSword, Concept: "불꽃"}})
	second := repo.AddPlayer(domain.Player{Weapon: domain.Weapon{Type: domain.WeaponBow, Concept: "바람"}})
	svc := newTestService(repo)

	_, err := svc.SetNickname(context.Background(), first, "중복")
	require.NoError(t, err)

	_, err = svc.SetNickname(context.Background(), second, "중복")
	assert.ErrorIs(t, err, domain.ErrNicknameTaken)
}

func TestSetNickname_ReclaimOwnNickname(t *testing.T) {
	repo := NewFakeRepository()
	id := repo.AddPlayer(domain.Player{Weapon: domain.Weapon{Type: domain.WeaponSword, Concept: "불꽃"}})
	svc := newTestService(repo)

	_, err := svc.SetNickname(context.Background(), id, "본인")
	require.NoError(t, err)

	_, err = svc.SetNickname(context.Background(), id, "본인")
	assert.NoError(t, err, "setting your own current nickname is not a conflict")
}
