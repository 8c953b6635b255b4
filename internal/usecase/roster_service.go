package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/clubdesk/internal/domain/player"
	"github.com/riskibarqy/clubdesk/internal/domain/team"
	idgen "github.com/riskibarqy/clubdesk/internal/platform/id"
)

// RosterService serves the roster screen: listing a team's players and
// creating new ones. Created players carry a server-assigned id; the
// stored copy is returned so clients can append it as-is.
type RosterService struct {
	teamRepo   team.Repository
	playerRepo player.Repository
	ids        idgen.Generator
	now        func() time.Time
}

func NewRosterService(teamRepo team.Repository, playerRepo player.Repository, ids idgen.Generator) *RosterService {
	return &RosterService{
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		ids:        ids,
		now:        time.Now,
	}
}

func (s *RosterService) ListPlayersByTeam(ctx context.Context, teamID string) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.ListPlayersByTeam")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return nil, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	_, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	players, err := s.playerRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list players by team: %w", err)
	}

	return players, nil
}

// CreatePlayerInput carries the client-editable roster form fields.
type CreatePlayerInput struct {
	FirstName    string
	LastName     string
	Email        string
	Position     player.Position
	JerseyNumber int
	Status       player.Status
	DateOfBirth  *time.Time
	Nationality  string
}

func (s *RosterService) CreatePlayer(ctx context.Context, teamID string, in CreatePlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.CreatePlayer")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return player.Player{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	_, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	draft := player.Player{
		TeamID:       teamID,
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		Email:        strings.TrimSpace(in.Email),
		Position:     in.Position,
		JerseyNumber: in.JerseyNumber,
		Status:       in.Status,
		DateOfBirth:  in.DateOfBirth,
		Nationality:  strings.TrimSpace(in.Nationality),
	}
	if draft.Status == "" {
		draft.Status = player.StatusActive
	}
	if err := draft.ValidateDraft(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	playerID, err := s.ids.NewID("pl")
	if err != nil {
		return player.Player{}, fmt.Errorf("generate player id: %w", err)
	}
	draft.ID = playerID
	draft.CreatedAt = s.now().UTC()

	if err := s.playerRepo.Create(ctx, draft); err != nil {
		return player.Player{}, fmt.Errorf("create player: %w", err)
	}

	return draft, nil
}
