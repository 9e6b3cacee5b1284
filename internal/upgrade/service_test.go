package upgrade

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dokkaebistudio/kanghwa-server/internal/domain"
	"github.com/dokkaebistudio/kanghwa-server/internal/player"
	"github.com/dokkaebistudio/kanghwa-server/internal/weaponinfo"
)

func newTestService(repo *player.FakeRepository) *service {
	return NewService(repo, weaponinfo.NewService(nil)).(*service)
}

func seedPlayer(repo *player.FakeRepository, p domain.Player) string {
	if p.Weapon.Type == "" {
		p.Weapon = domain.Weapon{Type: domain.WeaponSword, Concept: "불꽃", Level: p.Weapon.Level}
	}
	return repo.AddPlayer(p)
}

func TestAttemptUpgrade_Success(t *testing.T) {
	repo := player.NewFakeRepository()
	id := seedPlayer(repo, domain.Player{Gold: 10000})
	svc := newTestService(repo)
	svc.rollPercent = func() float64 { return 50 } // within the 90% success band at +0

	result, err := svc.AttemptUpgrade(context.Background(), id, domain.ProtectionNone)

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeSuccess, result.Outcome)
	assert.Equal(t, 0, result.FromLevel)
	assert.Equal(t, 1, result.ToLevel)
	assert.Equal(t, int64(100), result.GoldSpent)

	stored := repo.Player(id)
	assert.Equal(t, 1, stored.Weapon.Level)
	assert.Equal(t, int64(9900), stored.Gold)
	assert.Equal(t, 1, stored.TotalUpgrades)
	assert.Equal(t, 1, stored.TotalSuccesses)
	assert.Equal(t, 1, stored.CurrentSuccessStreak)
	assert.Equal(t, 1, stored.BestSwordLevel)

	require.Len(t, repo.UpgradeLogs, 1)
	logRow := repo.UpgradeLogs[0]
	assert.Equal(t, domain.ActionUpgrade, logRow.Action)
	assert.Equal(t, 0, logRow.FromLevel)
	require.NotNil(t, logRow.ToLevel)
	assert.Equal(t, 1, *logRow.ToLevel)
	assert.Equal(t, int64(-100), logRow.GoldChange)
	assert.Equal(t, 1, repo.Commits)
}

func TestAttemptUpgrade_Maintain(t *testing.T) {
	repo := player.NewFakeRepository()
	id := seedPlayer(repo, domain.Player{Gold: 10000, Weapon: domain.Weapon{Level: 5}, CurrentSuccessStreak: 3})
	svc := newTestService(repo)
	svc.rollPercent = func() float64 { return 70 } // 63 success / 32 maintain at +5

	result, err := svc.AttemptUpgrade(context.Background(), id, domain.ProtectionNone)

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeMaintain, result.Outcome)
	assert.Equal(t, 5, result.ToLevel)

	stored := repo.Player(id)
	assert.Equal(t, 5, stored.Weapon.Level)
	assert.Equal(t, 0, stored.CurrentSuccessStreak, "maintain breaks the streak")
	assert.Equal(t, 1, stored.TotalMaintains)
}

func TestAttemptUpgrade_Destroy(t *testing.T) {
	repo := player.NewFakeRepository()
	id := seedPlayer(repo, domain.Player{Gold: 1000000, Weapon: domain.Weapon{Level: 12}})
	svc := newTestService(repo)
	svc.rollPercent = func() float64 { return 99 } // 26/54/20 at +12, lands in destroy
	svc.randInt = func(min, max int) int { return min }

	result, err := svc.AttemptUpgrade(context.Background(), id, domain.ProtectionNone)

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeDestroy, result.Outcome)
	assert.True(t, result.Destroyed)
	assert.Equal(t, 0, result.ToLevel)

	stored := repo.Player(id)
	assert.Equal(t, 0, stored.Weapon.Level)
	assert.True(t, stored.Weapon.Type.IsValid(), "destroyed weapon is replaced with a fresh one")
	assert.Equal(t, 1, stored.TotalDestroys)
	assert.Equal(t, 1, stored.SwordDestroyCount, "the destroyed type gets the tally")
}

func TestAttemptUpgrade_HighProtectionSavesWeapon(t *testing.T) {
	repo := player.NewFakeRepository()
	id := seedPlayer(repo, domain.Player{Gold: 1000000, Weapon: domain.Weapon{Level: 16}, ProtectionHigh: 1})
	svc := newTestService(repo)
	svc.rollPercent = func() float64 { return 95 } // destroy band at +16 (15/61/24)

	result, err := svc.AttemptUpgrade(context.Background(), id, domain.ProtectionHigh)

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeMaintain, result.Outcome)
	assert.Equal(t, domain.ProtectionHigh, result.UsedProtection)
	assert.False(t, result.Destroyed)
	assert.Equal(t, 15, result.ToLevel, "high protection steps the level down by one")

	stored := repo.Player(id)
	assert.Equal(t, 15, stored.Weapon.Level)
	assert.Equal(t, 0, stored.ProtectionHigh, "the token is consumed")
	assert.Equal(t, 1, stored.TotalMaintains)
	assert.Equal(t, 0, stored.TotalDestroys)

	require.Len(t, repo.UpgradeLogs, 1)
	assert.Equal(t, domain.ProtectionHigh, repo.UpgradeLogs[0].UsedProtection)
}

func TestAttemptUpgrade_LowProtectionKeepsLevel(t *testing.T) {
	repo := player.NewFakeRepository()
	id := seedPlayer(repo, domain.Player{Gold: 100000, Weapon: domain.Weapon{Level: 8}, ProtectionLow: 2})
	svc := newTestService(repo)
	svc.rollPercent = func() float64 { return 95 } // destroy band at +8 (50/40/10)

	result, err := svc.AttemptUpgrade(context.Background(), id, domain.ProtectionLow)

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeMaintain, result.Outcome)
	assert.Equal(t, 8, result.ToLevel, "low protection keeps the current level")
	assert.Equal(t, 1, repo.Player(id).ProtectionLow)
}

func TestAttemptUpgrade_ProtectionNotConsumedWithoutDestroy(t *testing.T) {
	repo := player.NewFakeRepository()
	id := seedPlayer(repo, domain.Player{Gold: 10000, Weapon: domain.Weapon{Level: 3}, ProtectionLow: 1})
	svc := newTestService(repo)
	svc.rollPercent = func() float64 { return 10 } // success band

	result, err := svc.AttemptUpgrade(context.Background(), id, domain.ProtectionLow)

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeSuccess, result.Outcome)
	assert.Equal(t, domain.ProtectionNone, result.UsedProtection)
	assert.Equal(t, 1, repo.Player(id).ProtectionLow, "token survives a non-destroy roll")
}

func TestAttemptUpgrade_ProtectionEligibility(t *testing.T) {
	tests := []struct {
		name  string
		level int
		tier  domain.ProtectionTier
	}{
		{"low above +10", 11, domain.ProtectionLow},
		{"mid above +15", 16, domain.ProtectionMid},
		{"high below +15", 14, domain.ProtectionHigh},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := player.NewFakeRepository()
			id := seedPlayer(repo, domain.Player{
				Gold:   10000000,
				Weapon: domain.Weapon{Level: tt.level},
				ProtectionLow: 5, ProtectionMid: 5, ProtectionHigh: 5,
			})
			svc := newTestService(repo)

			_, err := svc.AttemptUpgrade(context.Background(), id, tt.tier)

			assert.ErrorIs(t, err, domain.ErrProtectionIneligible)
			assert.Empty(t, repo.UpgradeLogs, "a rejected attempt writes nothing")
		})
	}
}

func TestAttemptUpgrade_ProtectionDepleted(t *testing.T) {
	repo := player.NewFakeRepository()
	id := seedPlayer(repo, domain.Player{Gold: 10000, Weapon: domain.Weapon{Level: 5}})
	svc := newTestService(repo)

	_, err := svc.AttemptUpgrade(context.Background(), id, domain.ProtectionLow)

	assert.ErrorIs(t, err, domain.ErrProtectionDepleted)
}

func TestAttemptUpgrade_InsufficientGold(t *testing.T) {
	repo := player.NewFakeRepository()
	id := seedPlayer(repo, domain.Player{Gold: 99})
	svc := newTestService(repo)

	_, err := svc.AttemptUpgrade(context.Background(), id, domain.ProtectionNone)

	assert.ErrorIs(t, err, domain.ErrInsufficientGold)
	assert.Equal(t, int64(99), repo.Player(id).Gold, "no gold is spent on a rejected attempt")
}

func TestAttemptUpgrade_MaxLevel(t *testing.T) {
	repo := player.NewFakeRepository()
	id := seedPlayer(repo, domain.Player{Gold: 10000000, Weapon: domain.Weapon{Level: domain.MaxWeaponLevel}})
	svc := newTestService(repo)

	_, err := svc.AttemptUpgrade(context.Background(), id, domain.ProtectionNone)

	assert.ErrorIs(t, err, domain.ErrMaxLevelReached)
}

func TestAttemptUpgrade_MaxStreakTracked(t *testing.T) {
	repo := player.NewFakeRepository()
	id := seedPlayer(repo, domain.Player{Gold: 100000, CurrentSuccessStreak: 4, MaxSuccessStreak: 4})
	svc := newTestService(repo)
	svc.rollPercent = func() float64 { return 0 }

	_, err := svc.AttemptUpgrade(context.Background(), id, domain.ProtectionNone)

	require.NoError(t, err)
	stored := repo.Player(id)
	assert.Equal(t, 5, stored.CurrentSuccessStreak)
	assert.Equal(t, 5, stored.MaxSuccessStreak)
}

func TestSellWeapon(t *testing.T) {
	repo := player.NewFakeRepository()
	id := seedPlayer(repo, domain.Player{Gold: 0, Weapon: domain.Weapon{Level: 5}})
	svc := newTestService(repo)
	svc.randFloat = func() float64 { return 0.5 } // factor exactly 1.0
	svc.randInt = func(min, max int) int { return min }

	result, err := svc.SellWeapon(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, 5, result.SoldLevel)
	assert.Equal(t, int64(6400), result.Payout, "2x the +5 cost of 3200 at factor 1.0")

	stored := repo.Player(id)
	assert.Equal(t, int64(6400), stored.Gold)
	assert.Equal(t, 0, stored.Weapon.Level, "a fresh +0 weapon replaces the sold one")

	require.Len(t, repo.UpgradeLogs, 1)
	logRow := repo.UpgradeLogs[0]
	assert.Equal(t, domain.ActionSell, logRow.Action)
	assert.Equal(t, int64(6400), logRow.GoldChange)
	assert.Nil(t, logRow.ToLevel)
	assert.Nil(t, logRow.Result)
}

func TestSellWeapon_PayoutBounds(t *testing.T) {
	for _, factor := range []float64{0, 0.999999} {
		repo := player.NewFakeRepository()
		id := seedPlayer(repo, domain.Player{Weapon: domain.Weapon{Level: 10}})
		svc := newTestService(repo)
		svc.randFloat = func() float64 { return factor }

		result, err := svc.SellWeapon(context.Background(), id)

		require.NoError(t, err)
		base := int64(2 * 40000) // 2x the +10 cost
		assert.GreaterOrEqual(t, result.Payout, int64(float64(base)*0.8))
		assert.Less(t, result.Payout, int64(float64(base)*1.2)+1)
	}
}

func TestSellWeapon_BaseWeaponRejected(t *testing.T) {
	repo := player.NewFakeRepository()
	id := seedPlayer(repo, domain.Player{Gold: 500, Weapon: domain.Weapon{Level: 0}})
	svc := newTestService(repo)

	_, err := svc.SellWeapon(context.Background(), id)

	assert.ErrorIs(t, err, domain.ErrCannotSellBaseWeapon)
	assert.Empty(t, repo.UpgradeLogs)
}

func TestAttemptUpgrade_UnknownPlayer(t *testing.T) {
	svc := newTestService(player.NewFakeRepository())

	_, err := svc.AttemptUpgrade(context.Background(), "missing", domain.ProtectionNone)

	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
}
