package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/clubdesk/internal/domain/player"
	"github.com/riskibarqy/clubdesk/internal/domain/team"
	"github.com/riskibarqy/clubdesk/internal/platform/logging"
)

func TestRosterImportService_Import(t *testing.T) {
	ctx := context.Background()
	teamRepo := newFakeTeamRepo(team.Team{ID: "club-atletico", Name: "Atlético", Short: "ATL"})

	t.Run("creates valid rows and reports invalid ones", func(t *testing.T) {
		playerRepo := &fakePlayerRepo{}
		roster := NewRosterService(teamRepo, playerRepo, &sequenceIDGen{})
		service := NewRosterImportService(roster, logging.NewNop())

		rows := []CreatePlayerInput{
			validCreateInput(),
			{FirstName: "Bad", LastName: "Row", Position: "striker", JerseyNumber: 7},
			{FirstName: "Iker", LastName: "Ruiz", Email: "iker@club.example", Position: player.PositionGoalkeeper, JerseyNumber: 1},
		}

		result, err := service.Import(ctx, RosterImportInput{
			TeamID:     "club-atletico",
			Rows:       rows,
			MaxWorkers: 2,
		})
		if err != nil {
			t.Fatalf("import: %v", err)
		}

		if result.Total != 3 || result.Created != 2 || result.Failed != 1 {
			t.Fatalf("unexpected result counts: %+v", result)
		}
		if len(result.Errors) != 1 || result.Errors[0].Row != 1 {
			t.Fatalf("unexpected failures: %+v", result.Errors)
		}

		stored, err := playerRepo.ListByTeam(ctx, "club-atletico")
		if err != nil {
			t.Fatalf("list stored players: %v", err)
		}
		if len(stored) != 2 {
			t.Fatalf("unexpected stored count: %d", len(stored))
		}
	})

	t.Run("rejects empty input", func(t *testing.T) {
		roster := NewRosterService(teamRepo, &fakePlayerRepo{}, &sequenceIDGen{})
		service := NewRosterImportService(roster, logging.NewNop())

		if _, err := service.Import(ctx, RosterImportInput{TeamID: "club-atletico"}); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for empty rows, got %v", err)
		}
		if _, err := service.Import(ctx, RosterImportInput{Rows: []CreatePlayerInput{validCreateInput()}}); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for missing team, got %v", err)
		}
	})

	t.Run("caps workers at row count", func(t *testing.T) {
		playerRepo := &fakePlayerRepo{}
		roster := NewRosterService(teamRepo, playerRepo, &sequenceIDGen{})
		service := NewRosterImportService(roster, logging.NewNop())

		result, err := service.Import(ctx, RosterImportInput{
			TeamID:     "club-atletico",
			Rows:       []CreatePlayerInput{validCreateInput()},
			MaxWorkers: 64,
		})
		if err != nil {
			t.Fatalf("import: %v", err)
		}
		if result.Created != 1 {
			t.Fatalf("unexpected created count: %d", result.Created)
		}
	})
}
