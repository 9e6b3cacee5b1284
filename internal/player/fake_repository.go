package player

import (
	"context"
	"fmt"
	"time"

	"github.com/dokkaebistudio/kanghwa-server/internal/domain"
	"github.com/dokkaebistudio/kanghwa-server/internal/repository"
)

// FakeRepository is a stateful in-memory implementation of
// repository.Player for testing. It lives in the player package so the
// upgrade, hunt, battle, checkin and shop services can share it without
// import cycles.
type FakeRepository struct {
	players map[string]*domain.Player
	nextID  int

	// Appended audit rows, visible to assertions.
	UpgradeLogs []domain.UpgradeLog
	BattleLogs  []domain.BattleLog
	CheckinLogs []domain.CheckinLog
	HuntingLogs []domain.HuntingLog

	// Commits counts committed transactions.
	Commits int
}

// NewFakeRepository creates a new FakeRepository
func NewFakeRepository() *FakeRepository {
	return &FakeRepository{players: make(map[string]*domain.Player)}
}

// AddPlayer seeds a player and returns its ID
func (f *FakeRepository) AddPlayer(player domain.Player) string {
	if player.ID == "" {
		f.nextID++
		player.ID = fmt.Sprintf("player-%d", f.nextID)
	}
	if player.CreatedAt.IsZero() {
		player.CreatedAt = time.Now()
	}
	f.players[player.ID] = &player
	return player.ID
}

// Player returns the stored state for assertions
func (f *FakeRepository) Player(playerID string) *domain.Player {
	return f.players[playerID]
}

func (f *FakeRepository) CreatePlayer(ctx context.Context, player *domain.Player) error {
	f.nextID++
	player.ID = fmt.Sprintf("player-%d", f.nextID)
	player.CreatedAt = time.Now()
	copied := *player
	f.players[player.ID] = &copied
	return nil
}

func (f *FakeRepository) GetPlayerByID(ctx context.Context, playerID string) (*domain.Player, error) {
	p, ok := f.players[playerID]
	if !ok {
		return nil, domain.ErrPlayerNotFound
	}
	copied := *p
	return &copied, nil
}

func (f *FakeRepository) GetPlayerByNickname(ctx context.Context, nickname string) (*domain.Player, error) {
	for _, p := range f.players {
		if p.Nickname != nil && *p.Nickname == nickname {
			copied := *p
			return &copied, nil
		}
	}
	return nil, domain.ErrPlayerNotFound
}

func (f *FakeRepository) UpdatePlayer(ctx context.Context, player domain.Player) error {
	if _, ok := f.players[player.ID]; !ok {
		return domain.ErrPlayerNotFound
	}
	f.players[player.ID] = &player
	return nil
}

func (f *FakeRepository) ListOpponents(ctx context.Context, excludePlayerID string, limit int) ([]domain.Player, error) {
	var out []domain.Player
	for _, p := range f.players {
		if p.ID == excludePlayerID {
			continue
		}
		out = append(out, *p)
		if len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (f *FakeRepository) Rankings(ctx context.Context, limit int) ([]domain.Player, error) {
	players, err := f.ListOpponents(ctx, "", limit)
	if err != nil {
		return nil, err
	}
	// Insertion sort is plenty for test-sized data.
	for i := 1; i < len(players); i++ {
		for j := i; j > 0 && rankedAbove(players[j], players[j-1]); j-- {
			players[j], players[j-1] = players[j-1], players[j]
		}
	}
	return players, nil
}

func rankedAbove(a, b domain.Player) bool {
	if a.Weapon.Level != b.Weapon.Level {
		return a.Weapon.Level > b.Weapon.Level
	}
	return a.TotalWins > b.TotalWins
}

func (f *FakeRepository) Rank(ctx context.Context, playerID string) (int, error) {
	me, ok := f.players[playerID]
	if !ok {
		return 0, domain.ErrPlayerNotFound
	}
	rank := 1
	for _, p := range f.players {
		if p.ID != playerID && rankedAbove(*p, *me) {
			rank++
		}
	}
	return rank, nil
}

func (f *FakeRepository) BeginTx(ctx context.Context) (repository.PlayerTx, error) {
	return &FakeTx{repo: f}, nil
}

// FakeTx applies writes straight through to the FakeRepository. Rollback is
// a no-op, which is fine for the happy and validation paths the service
// tests exercise.
type FakeTx struct {
	repo      *FakeRepository
	committed bool
}

func (t *FakeTx) Commit(ctx context.Context) error {
	t.committed = true
	t.repo.Commits++
	return nil
}

func (t *FakeTx) Rollback(ctx context.Context) error {
	if t.committed {
		return fmt.Errorf("%s", domain.ErrMsgTxClosed)
	}
	return nil
}

func (t *FakeTx) GetPlayerForUpdate(ctx context.Context, playerID string) (*domain.Player, error) {
	return t.repo.GetPlayerByID(ctx, playerID)
}

func (t *FakeTx) UpdatePlayer(ctx context.Context, player domain.Player) error {
	return t.repo.UpdatePlayer(ctx, player)
}

func (t *FakeTx) InsertUpgradeLog(ctx context.Context, log domain.UpgradeLog) error {
	log.CreatedAt = time.Now()
	t.repo.UpgradeLogs = append(t.repo.UpgradeLogs, log)
	return nil
}

func (t *FakeTx) InsertBattleLog(ctx context.Context, log domain.BattleLog) error {
	log.CreatedAt = time.Now()
	t.repo.BattleLogs = append(t.repo.BattleLogs, log)
	return nil
}

func (t *FakeTx) InsertCheckinLog(ctx context.Context, log domain.CheckinLog) error {
	log.CreatedAt = time.Now()
	t.repo.CheckinLogs = append(t.repo.CheckinLogs, log)
	return nil
}

func (t *FakeTx) InsertHuntingLog(ctx context.Context, log domain.HuntingLog) error {
	log.CreatedAt = time.Now()
	t.repo.HuntingLogs = append(t.repo.HuntingLogs, log)
	return nil
}
