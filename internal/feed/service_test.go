package feed

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dokkaebistudio/kanghwa-server/internal/domain"
)

type stubLogs struct {
	rows      []domain.UpgradeLog
	err       error
	lastLimit int
}

func (s *stubLogs) RecentUpgradeLogs(_ context.Context, limit int) ([]domain.UpgradeLog, error) {
	s.lastLimit = limit
	if s.err != nil {
		return nil, s.err
	}
	if limit < len(s.rows) {
		return s.rows[:limit], nil
	}
	return s.rows, nil
}

func (s *stubLogs) RecentBattleLogs(context.Context, string, int) ([]domain.BattleLog, error) {
	return nil, nil
}

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }

func outcomePtr(o domain.UpgradeOutcome) *domain.UpgradeOutcome { return &o }

func TestRecentActivity_RendersOutcomes(t *testing.T) {
	now := time.Now()
	logs := &stubLogs{rows: []domain.UpgradeLog{
		{
			ID:         "log-1",
			Nickname:   strPtr("강화왕"),
			Action:     domain.ActionUpgrade,
			WeaponType: domain.WeaponSword,
			WeaponName: "불꽃 칼",
			FromLevel:  7,
			ToLevel:    intPtr(8),
			Result:     outcomePtr(domain.OutcomeSuccess),
			CreatedAt:  now,
		},
		{
			ID:         "log-2",
			Action:     domain.ActionUpgrade,
			WeaponType: domain.WeaponBow,
			WeaponName: "바람 활",
			FromLevel:  15,
			Result:     outcomePtr(domain.OutcomeDestroy),
			CreatedAt:  now.Add(-time.Minute),
		},
		{
			ID:         "log-3",
			Nickname:   strPtr("상인"),
			Action:     domain.ActionSell,
			WeaponType: domain.WeaponStaff,
			WeaponName: "번개 지팡이",
			FromLevel:  5,
			GoldChange: 6400,
			CreatedAt:  now.Add(-2 * time.Minute),
		},
	}}
	svc := NewService(logs)

	entries, err := svc.RecentActivity(context.Background(), 10)

	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "강화왕", entries[0].Player)
	assert.Contains(t, entries[0].Message, "+7강 불꽃 칼")
	assert.Contains(t, entries[0].Message, "성공")
	assert.Contains(t, entries[0].Message, "+8강 달성")

	assert.Equal(t, domain.AnonymousName, entries[1].Player, "rows without a nickname render as anonymous")
	assert.Contains(t, entries[1].Message, "+15강 바람 활")
	assert.Contains(t, entries[1].Message, "파괴")

	assert.Contains(t, entries[2].Message, "6400골드")
	assert.Contains(t, entries[2].Message, "판매")
}

func TestRecentActivity_MaintainMessage(t *testing.T) {
	logs := &stubLogs{rows: []domain.UpgradeLog{{
		ID:         "log-1",
		Action:     domain.ActionUpgrade,
		WeaponName: "대나무 몽둥이",
		FromLevel:  3,
		ToLevel:    intPtr(3),
		Result:     outcomePtr(domain.OutcomeMaintain),
	}}}
	svc := NewService(logs)

	entries, err := svc.RecentActivity(context.Background(), 10)

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Message, "무기는 무사합니다")
}

func TestRecentActivity_LimitClamping(t *testing.T) {
	logs := &stubLogs{}
	svc := NewService(logs)

	_, err := svc.RecentActivity(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultFeedLimit, logs.lastLimit)

	_, err = svc.RecentActivity(context.Background(), 5000)
	require.NoError(t, err)
	assert.Equal(t, MaxFeedLimit, logs.lastLimit)
}

func TestRecentActivity_RepositoryError(t *testing.T) {
	logs := &stubLogs{err: errors.New("boom")}
	svc := NewService(logs)

	_, err := svc.RecentActivity(context.Background(), 10)

	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrContextFailedToReadLogs)
}
