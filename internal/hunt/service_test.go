package hunt

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dokkaebistudio/kanghwa-server/internal/domain"
	"github.com/dokkaebistudio/kanghwa-server/internal/player"
)

func newTestService(repo *player.FakeRepository) *service {
	return NewService(repo).(*service)
}

func seedHunter(repo *player.FakeRepository, p domain.Player) string {
	if p.Weapon.Type == "" {
		p.Weapon = domain.Weapon{Type: domain.WeaponSword, Concept: "불꽃"}
	}
	if p.HuntingLevel == 0 {
		p.HuntingLevel = domain.MinHuntingLevel
	}
	return repo.AddPlayer(p)
}

func seedHunting(repo *player.FakeRepository, p domain.Player, startedAgo time.Duration) string {
	started := time.Now().Add(-startedAgo)
	p.IsHunting = true
	p.HuntingStartedAt = &started
	return seedHunter(repo, p)
}

func TestStart(t *testing.T) {
	repo := player.NewFakeRepository()
	id := seedHunter(repo, domain.Player{HuntingLevel: 4})
	svc := newTestService(repo)

	result, err := svc.Start(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, 4, result.HuntingLevel)
	assert.Equal(t, domain.HuntDuration, result.Duration)

	stored := repo.Player(id)
	assert.True(t, stored.IsHunting)
	require.NotNil(t, stored.HuntingStartedAt)
}

func TestStart_StillRunning(t *testing.T) {
	repo := player.NewFakeRepository()
	id := seedHunting(repo, domain.Player{}, time.Second)
	svc := newTestService(repo)

	_, err := svc.Start(context.Background(), id)

	assert.ErrorIs(t, err, domain.ErrAlreadyHunting)

	var inProgress *InProgressError
	require.ErrorAs(t, err, &inProgress)
	assert.Greater(t, inProgress.Remaining, time.Duration(0))
	assert.LessOrEqual(t, inProgress.Remaining, domain.HuntDuration)
}

func TestStart_RestartAfterDurationElapsed(t *testing.T) {
	repo := player.NewFakeRepository()
	id := seedHunting(repo, domain.Player{}, time.Minute)
	svc := newTestService(repo)
	previous := *repo.Player(id).HuntingStartedAt

	result, err := svc.Start(context.Background(), id)

	require.NoError(t, err, "a finished but unresolved hunt does not block a restart")

	stored := repo.Player(id)
	assert.True(t, stored.IsHunting)
	require.NotNil(t, stored.HuntingStartedAt)
	assert.True(t, stored.HuntingStartedAt.After(previous), "the timer resets")
	assert.Equal(t, *stored.HuntingStartedAt, result.StartedAt)
	assert.Empty(t, repo.HuntingLogs, "the forfeited hunt pays nothing")
}

func TestResolve_TooEarly(t *testing.T) {
	repo := player.NewFakeRepository()
	id := seedHunting(repo, domain.Player{}, 2*time.Second)
	svc := newTestService(repo)

	_, err := svc.Resolve(context.Background(), id)

	assert.ErrorIs(t, err, domain.ErrHuntNotDone)
	assert.True(t, repo.Player(id).IsHunting, "the hunt stays in flight")
}

func TestResolve_NotHunting(t *testing.T) {
	repo := player.NewFakeRepository()
	id := seedHunter(repo, domain.Player{})
	svc := newTestService(repo)

	_, err := svc.Resolve(context.Background(), id)

	assert.ErrorIs(t, err, domain.ErrNotHunting)
}

func TestResolve_GoldReward(t *testing.T) {
	repo := player.NewFakeRepository()
	id := seedHunting(repo, domain.Player{Gold: 100, HuntingLevel: 1}, 10*time.Second)
	svc := newTestService(repo)
	svc.rollPercent = func() float64 { return 10 } // gold band (85% at level 1)

	result, err := svc.Resolve(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, domain.HuntGold, result.RewardType)
	// Level 1 base is 1000, spread is +-10%.
	assert.GreaterOrEqual(t, result.GoldEarned, int64(900))
	assert.LessOrEqual(t, result.GoldEarned, int64(1100))

	stored := repo.Player(id)
	assert.Equal(t, int64(100)+result.GoldEarned, stored.Gold)
	assert.False(t, stored.IsHunting)
	assert.Nil(t, stored.HuntingStartedAt)

	require.Len(t, repo.HuntingLogs, 1)
	assert.Equal(t, domain.HuntGold, repo.HuntingLogs[0].RewardType)
	assert.Equal(t, 1, repo.HuntingLogs[0].HuntingLevel)
}

func TestResolve_KeyReward(t *testing.T) {
	repo := player.NewFakeRepository()
	id := seedHunting(repo, domain.Player{HuntingLevel: 1}, 10*time.Second)
	svc := newTestService(repo)
	svc.rollPercent = func() float64 { return 90 } // key band at level 1 (85..95)

	result, err := svc.Resolve(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, domain.HuntKey, result.RewardType)
	assert.Equal(t, 1, result.KeysHeld)
	assert.False(t, result.LevelUp)
}

func TestResolve_ThirdKeyLevelsUp(t *testing.T) {
	repo := player.NewFakeRepository()
	id := seedHunting(repo, domain.Player{HuntingLevel: 7, HuntingKeys: 2}, 10*time.Second)
	svc := newTestService(repo)
	svc.rollPercent = func() float64 { return 91 } // key band at level 7 (85..95)

	result, err := svc.Resolve(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, domain.HuntKey, result.RewardType)
	assert.True(t, result.LevelUp)
	assert.Equal(t, 0, result.KeysHeld, "keys reset on level up")
	assert.Equal(t, 8, result.NewHuntingLevel)
}

func TestResolve_KeysCapWithoutLevelUpAtMax(t *testing.T) {
	repo := player.NewFakeRepository()
	id := seedHunting(repo, domain.Player{HuntingLevel: domain.MaxHuntingLevel, HuntingKeys: 2}, 10*time.Second)
	svc := newTestService(repo)
	svc.rollPercent = func() float64 { return 92 } // key band at level 20 (90..95)

	result, err := svc.Resolve(context.Background(), id)

	require.NoError(t, err)
	assert.False(t, result.LevelUp)
	assert.Equal(t, 3, result.KeysHeld, "keys accumulate at the level cap")
	assert.Equal(t, domain.MaxHuntingLevel, result.NewHuntingLevel)
}

func TestResolve_ProtectionReward(t *testing.T) {
	repo := player.NewFakeRepository()
	id := seedHunting(repo, domain.Player{HuntingLevel: 3}, 10*time.Second)
	svc := newTestService(repo)
	svc.rollPercent = func() float64 { return 97 } // protection band at level 3 (95..100)

	result, err := svc.Resolve(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, domain.HuntProtectionLow, result.RewardType, "levels 1-5 drop low tokens only")
	assert.Equal(t, 1, repo.Player(id).ProtectionLow)
}

func TestResolve_HighBracketProtection(t *testing.T) {
	repo := player.NewFakeRepository()
	id := seedHunting(repo, domain.Player{HuntingLevel: 18}, 10*time.Second)
	svc := newTestService(repo)
	svc.rollPercent = func() float64 { return 99.5 } // tail of the protection band

	result, err := svc.Resolve(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, domain.HuntProtectionHigh, result.RewardType,
		"levels 16-20 drop mid then high; the tail of the band is high")
	assert.Equal(t, 1, repo.Player(id).ProtectionHigh)
}

func TestAbandon(t *testing.T) {
	repo := player.NewFakeRepository()
	id := seedHunting(repo, domain.Player{}, time.Second)
	svc := newTestService(repo)

	require.NoError(t, svc.Abandon(context.Background(), id))

	stored := repo.Player(id)
	assert.False(t, stored.IsHunting)
	assert.Empty(t, repo.HuntingLogs, "abandoning writes no reward log")
}

func TestAbandon_NotHunting(t *testing.T) {
	repo := player.NewFakeRepository()
	id := seedHunter(repo, domain.Player{})
	svc := newTestService(repo)

	assert.ErrorIs(t, svc.Abandon(context.Background(), id), domain.ErrNotHunting)
}
