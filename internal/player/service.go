package player

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/dokkaebistudio/kanghwa-server/internal/domain"
	"github.com/dokkaebistudio/kanghwa-server/internal/gamedata"
	"github.com/dokkaebistudio/kanghwa-server/internal/logger"
	"github.com/dokkaebistudio/kanghwa-server/internal/repository"
	"github.com/dokkaebistudio/kanghwa-server/internal/session"
	"github.com/dokkaebistudio/kanghwa-server/internal/utils"
	"github.com/dokkaebistudio/kanghwa-server/internal/weaponinfo"
)

// nicknamePattern allows Hangul syllables, latin letters and digits only.
var nicknamePattern = regexp.MustCompile(`^[가-힣a-zA-Z0-9]+$`)

// RegisterResult is a freshly created account plus its first session token.
type RegisterResult struct {
	Player  domain.Player  `json:"player"`
	Session domain.Session `json:"session"`
}

// Profile is the player state decorated with presentation data.
type Profile struct {
	Player            domain.Player `json:"player"`
	WeaponName        string        `json:"weapon_name"`
	WeaponDescription string        `json:"weapon_description,omitempty"`
	NextUpgradeCost   int64         `json:"next_upgrade_cost"`
	SuccessChance     int           `json:"success_chance"`
	MaintainChance    int           `json:"maintain_chance"`
	DestroyChance     int           `json:"destroy_chance"`
}

// Service defines the interface for account operations
type Service interface {
	Register(ctx context.Context) (*RegisterResult, error)
	GetProfile(ctx context.Context, playerID string) (*Profile, error)
	SetNickname(ctx context.Context, playerID, nickname string) (*domain.Player, error)
}

type service struct {
	repo       repository.Player
	sessions   session.Service
	weaponInfo weaponinfo.Service

	// randInt is swapped in tests for deterministic weapon rolls.
	randInt func(min, max int) int
}

// NewService creates a new player service
func NewService(repo repository.Player, sessions session.Service, weaponInfo weaponinfo.Service) Service {
	return &service{
		repo:       repo,
		sessions:   sessions,
		weaponInfo: weaponInfo,
		randInt:    utils.RandomInt,
	}
}

// Register creates a fresh account with a random +0 weapon and issues its
// session token. There is no password; the token is the identity.
func (s *service) Register(ctx context.Context) (*RegisterResult, error) {
	log := logger.FromContext(ctx)

	weaponType := domain.WeaponTypes[s.randInt(0, len(domain.WeaponTypes)-1)]
	concepts := gamedata.ConceptsFor(weaponType)
	concept := concepts[s.randInt(0, len(concepts)-1)]

	player := domain.Player{
		Weapon:        domain.Weapon{Type: weaponType, Concept: concept, Level: 0},
		Gold:          domain.StartingGold,
		BattleTickets: domain.StartingTickets,
		HuntingLevel:  domain.MinHuntingLevel,
	}

	if err := s.repo.CreatePlayer(ctx, &player); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCreatePlayer, err)
	}

	sess, err := s.sessions.Create(ctx, player.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCreateSession, err)
	}

	log.Info(LogMsgPlayerRegistered, "player_id", player.ID,
		"weapon_type", weaponType, "weapon_concept", concept)

	return &RegisterResult{Player: player, Session: *sess}, nil
}

// GetProfile returns the player state plus the rendered weapon name, the
// next upgrade cost and the outcome chances at the current level.
func (s *service) GetProfile(ctx context.Context, playerID string) (*Profile, error) {
	player, err := s.repo.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, err
	}

	descriptor := s.weaponInfo.Describe(ctx, player.Weapon)

	profile := &Profile{
		Player:            *player,
		WeaponName:        descriptor.Name,
		WeaponDescription: descriptor.Description,
	}

	if player.Weapon.Level < domain.MaxWeaponLevel {
		profile.NextUpgradeCost = gamedata.UpgradeCost(player.Weapon.Level)
		row := gamedata.UpgradeChances[player.Weapon.Level]
		profile.SuccessChance = row.Success
		profile.MaintainChance = row.Maintain
		profile.DestroyChance = row.Destroy
	}

	return profile, nil
}

// SetNickname validates and claims a nickname for the player. Nicknames are
// unique across all players and at most 6 characters of Hangul, latin
// letters or digits.
func (s *service) SetNickname(ctx context.Context, playerID, nickname string) (*domain.Player, error) {
	nickname = strings.TrimSpace(nickname)
	if err := validateNickname(nickname); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetPlayerByNickname(ctx, nickname)
	if err != nil && !errors.Is(err, domain.ErrPlayerNotFound) {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCheckNickname, err)
	}
	if existing != nil && existing.ID != playerID {
		return nil, domain.ErrNicknameTaken
	}

	player, err := s.repo.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, err
	}

	player.Nickname = &nickname
	if err := s.repo.UpdatePlayer(ctx, *player); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToUpdatePlayer, err)
	}

	logger.FromContext(ctx).Info(LogMsgNicknameSet, "player_id", playerID, "nickname", nickname)
	return player, nil
}

func validateNickname(nickname string) error {
	if nickname == "" || utf8.RuneCountInString(nickname) > domain.MaxNicknameLength {
		return domain.ErrNicknameInvalid
	}
	if !nicknamePattern.MatchString(nickname) {
		return domain.ErrNicknameInvalid
	}
	return nil
}
