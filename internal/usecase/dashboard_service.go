package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/sourcegraph/conc/pool"

	"github.com/riskibarqy/clubdesk/internal/domain/player"
	"github.com/riskibarqy/clubdesk/internal/domain/team"
)

// CardStat is one label/value pair shown on a management card, in order.
type CardStat struct {
	Label string
	Value string
}

// DashboardCard is the data behind one management card on the dashboard.
// Color is one of the five card themes; a Path starting with "#" is an
// in-page anchor rather than a navigation target.
type DashboardCard struct {
	Title       string
	Description string
	Icon        string
	Color       string
	Path        string
	Stats       []CardStat
}

type DashboardService struct {
	teamRepo   team.Repository
	playerRepo player.Repository
}

func NewDashboardService(teamRepo team.Repository, playerRepo player.Repository) *DashboardService {
	return &DashboardService{
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
	}
}

// Cards assembles the management cards for one team's dashboard. The team
// lookup and the roster read run concurrently.
func (s *DashboardService) Cards(ctx context.Context, teamID string) ([]DashboardCard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.Cards")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return nil, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	var (
		current team.Team
		players []player.Player
	)

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		found, exists, err := s.teamRepo.GetByID(ctx, teamID)
		if err != nil {
			return fmt.Errorf("get team: %w", err)
		}
		if !exists {
			return fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
		}
		current = found
		return nil
	})
	p.Go(func(ctx context.Context) error {
		listed, err := s.playerRepo.ListByTeam(ctx, teamID)
		if err != nil {
			return fmt.Errorf("list players for dashboard: %w", err)
		}
		players = listed
		return nil
	})
	if err := p.Wait(); err != nil {
		return nil, err
	}

	byStatus := make(map[player.Status]int, len(player.AllStatuses))
	byPosition := make(map[player.Position]int, len(player.AllPositions))
	for _, pl := range players {
		byStatus[pl.Status]++
		byPosition[pl.Position]++
	}

	return []DashboardCard{
		{
			Title:       "Squad",
			Description: fmt.Sprintf("Roster overview for %s", current.Name),
			Icon:        "users",
			Color:       "blue",
			Path:        "/roster",
			Stats: []CardStat{
				{Label: "Players", Value: strconv.Itoa(len(players))},
				{Label: "Active", Value: strconv.Itoa(byStatus[player.StatusActive])},
			},
		},
		{
			Title:       "Positions",
			Description: "Coverage across field roles",
			Icon:        "layout",
			Color:       "green",
			Path:        "#position-breakdown",
			Stats: []CardStat{
				{Label: "Forwards", Value: strconv.Itoa(byPosition[player.PositionForward])},
				{Label: "Midfielders", Value: strconv.Itoa(byPosition[player.PositionMidfielder])},
				{Label: "Defenders", Value: strconv.Itoa(byPosition[player.PositionDefender])},
				{Label: "Goalkeepers", Value: strconv.Itoa(byPosition[player.PositionGoalkeeper])},
			},
		},
		{
			Title:       "Availability",
			Description: "Players unavailable for selection",
			Icon:        "heart-pulse",
			Color:       "orange",
			Path:        "/roster/availability",
			Stats: []CardStat{
				{Label: "Injured", Value: strconv.Itoa(byStatus[player.StatusInjured])},
				{Label: "Suspended", Value: strconv.Itoa(byStatus[player.StatusSuspended])},
				{Label: "Inactive", Value: strconv.Itoa(byStatus[player.StatusInactive])},
			},
		},
	}, nil
}
