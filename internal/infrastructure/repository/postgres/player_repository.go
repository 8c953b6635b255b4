package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/clubdesk/internal/domain/player"
	qb "github.com/riskibarqy/clubdesk/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

var playerSelectColumns = []string{
	"id",
	"public_id",
	"team_public_id",
	"first_name",
	"last_name",
	"email",
	"position",
	"jersey_number",
	"status",
	"date_of_birth",
	"nationality",
	"created_at",
	"deleted_at",
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, teamID string) ([]player.Player, error) {
	query, args, err := qb.Select(playerSelectColumns...).From("players").
		Where(
			qb.Eq("team_public_id", teamID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players by team query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players by team: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, player.Player{
			ID:           row.PublicID,
			TeamID:       row.TeamID,
			FirstName:    row.FirstName,
			LastName:     row.LastName,
			Email:        row.Email,
			Position:     player.Position(row.Position),
			JerseyNumber: row.JerseyNumber,
			Status:       player.Status(row.Status),
			DateOfBirth:  nullTimeToPtr(row.DateOfBirth),
			Nationality:  row.Nationality,
			CreatedAt:    row.CreatedAt,
		})
	}

	return out, nil
}

func (r *PlayerRepository) Create(ctx context.Context, p player.Player) error {
	query, args, err := qb.InsertModel("players", playerInsertModel{
		PublicID:     p.ID,
		TeamID:       p.TeamID,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Email:        p.Email,
		Position:     string(p.Position),
		JerseyNumber: p.JerseyNumber,
		Status:       string(p.Status),
		DateOfBirth:  ptrToNullTime(p.DateOfBirth),
		Nationality:  p.Nationality,
		CreatedAt:    p.CreatedAt,
	}, "")
	if err != nil {
		return fmt.Errorf("build insert player query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert player: %w", err)
	}

	return nil
}
