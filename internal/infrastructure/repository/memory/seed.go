package memory

import (
	"time"

	"github.com/riskibarqy/clubdesk/internal/domain/player"
	"github.com/riskibarqy/clubdesk/internal/domain/team"
)

const (
	TeamIDAtletico = "club-atletico"
	TeamIDNorte    = "club-norte"
)

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: TeamIDAtletico, Name: "Atlético Ciudad", Short: "ATL"},
		{ID: TeamIDNorte, Name: "Deportivo Norte", Short: "NOR"},
	}
}

func SeedPlayers() []player.Player {
	seededAt := time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC)
	return []player.Player{
		{ID: "pl-seed-0001", TeamID: TeamIDAtletico, FirstName: "Fernando", LastName: "Torres", Email: "fernando.torres@clubdesk.example", Position: player.PositionForward, JerseyNumber: 9, Status: player.StatusActive, Nationality: "ES", CreatedAt: seededAt},
		{ID: "pl-seed-0002", TeamID: TeamIDAtletico, FirstName: "Pablo", LastName: "Sánchez", Email: "pablo.sanchez@clubdesk.example", Position: player.PositionMidfielder, JerseyNumber: 8, Status: player.StatusActive, Nationality: "ES", CreatedAt: seededAt},
		{ID: "pl-seed-0003", TeamID: TeamIDAtletico, FirstName: "Luca", LastName: "Moretti", Email: "luca.moretti@clubdesk.example", Position: player.PositionDefender, JerseyNumber: 4, Status: player.StatusInjured, Nationality: "IT", CreatedAt: seededAt},
		{ID: "pl-seed-0004", TeamID: TeamIDAtletico, FirstName: "Iker", LastName: "Ruiz", Email: "iker.ruiz@clubdesk.example", Position: player.PositionGoalkeeper, JerseyNumber: 1, Status: player.StatusActive, Nationality: "ES", CreatedAt: seededAt},
		{ID: "pl-seed-0005", TeamID: TeamIDNorte, FirstName: "Mateo", LastName: "Vidal", Email: "mateo.vidal@clubdesk.example", Position: player.PositionForward, JerseyNumber: 11, Status: player.StatusActive, Nationality: "AR", CreatedAt: seededAt},
		{ID: "pl-seed-0006", TeamID: TeamIDNorte, FirstName: "Bruno", LastName: "Costa", Email: "bruno.costa@clubdesk.example", Position: player.PositionMidfielder, JerseyNumber: 6, Status: player.StatusSuspended, Nationality: "BR", CreatedAt: seededAt},
		{ID: "pl-seed-0007", TeamID: TeamIDNorte, FirstName: "Jonas", LastName: "Weber", Email: "jonas.weber@clubdesk.example", Position: player.PositionDefender, JerseyNumber: 3, Status: player.StatusActive, Nationality: "DE", CreatedAt: seededAt},
	}
}
