package memory

import (
	"context"
	"testing"

	"github.com/riskibarqy/clubdesk/internal/domain/player"
)

func TestPlayerRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("list is scoped to the team", func(t *testing.T) {
		repo := NewPlayerRepository(SeedPlayers())

		got, err := repo.ListByTeam(ctx, TeamIDAtletico)
		if err != nil {
			t.Fatalf("list players: %v", err)
		}
		if len(got) != 4 {
			t.Fatalf("unexpected player count: got=%d want=4", len(got))
		}
		for _, p := range got {
			if p.TeamID != TeamIDAtletico {
				t.Fatalf("player from wrong team: %+v", p)
			}
		}
	})

	t.Run("create appends in arrival order", func(t *testing.T) {
		repo := NewPlayerRepository(nil)

		first := player.Player{ID: "pl-1", TeamID: TeamIDAtletico, FirstName: "Fernando", LastName: "Torres"}
		second := player.Player{ID: "pl-2", TeamID: TeamIDAtletico, FirstName: "Pablo", LastName: "Sánchez"}
		if err := repo.Create(ctx, first); err != nil {
			t.Fatalf("create first: %v", err)
		}
		if err := repo.Create(ctx, second); err != nil {
			t.Fatalf("create second: %v", err)
		}

		got, err := repo.ListByTeam(ctx, TeamIDAtletico)
		if err != nil {
			t.Fatalf("list players: %v", err)
		}
		if len(got) != 2 || got[0].ID != "pl-1" || got[1].ID != "pl-2" {
			t.Fatalf("unexpected order: %+v", got)
		}
	})

	t.Run("unknown team lists empty", func(t *testing.T) {
		repo := NewPlayerRepository(SeedPlayers())

		got, err := repo.ListByTeam(ctx, "club-ghost")
		if err != nil {
			t.Fatalf("list players: %v", err)
		}
		if len(got) != 0 {
			t.Fatalf("expected empty roster, got %+v", got)
		}
	})
}

func TestTeamRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewTeamRepository(SeedTeams())

	got, ok, err := repo.GetByID(ctx, TeamIDAtletico)
	if err != nil {
		t.Fatalf("get team: %v", err)
	}
	if !ok || got.Short != "ATL" {
		t.Fatalf("unexpected team: ok=%v team=%+v", ok, got)
	}

	if _, ok, err = repo.GetByID(ctx, "club-ghost"); err != nil || ok {
		t.Fatalf("expected miss without error, got ok=%v err=%v", ok, err)
	}

	teams, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	if len(teams) != 2 {
		t.Fatalf("unexpected team count: %d", len(teams))
	}
}
