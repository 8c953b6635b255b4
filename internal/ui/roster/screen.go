// Package roster drives the team roster screen: loading the player
// list, collecting the add-player form, and submitting new players
// through a directory client.
package roster

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/clubdesk/internal/domain/player"
	"github.com/riskibarqy/clubdesk/internal/platform/logging"
	"github.com/riskibarqy/clubdesk/internal/ui/state"
	"github.com/riskibarqy/clubdesk/internal/usecase"
)

// PlayerDirectory is the remote roster API surface the screen needs.
type PlayerDirectory interface {
	ListPlayers(ctx context.Context, teamID string) ([]player.Player, error)
	CreatePlayer(ctx context.Context, teamID string, in usecase.CreatePlayerInput) (player.Player, error)
}

// Screen binds a store to a directory client for one team. The team id
// is fixed at construction; nothing is read from ambient session state.
type Screen struct {
	teamID    string
	directory PlayerDirectory
	store     *state.Store
	logger    *logging.Logger
}

func NewScreen(teamID string, directory PlayerDirectory, store *state.Store, logger *logging.Logger) *Screen {
	if logger == nil {
		logger = logging.Default()
	}
	return &Screen{
		teamID:    teamID,
		directory: directory,
		store:     store,
		logger:    logger,
	}
}

func (s *Screen) Store() *state.Store {
	return s.store
}

// Load fetches the roster with a single list call and dispatches the
// outcome. A failed load leaves the previous players on screen.
func (s *Screen) Load(ctx context.Context) error {
	s.store.Dispatch(state.LoadStarted{})

	players, err := s.directory.ListPlayers(ctx, s.teamID)
	if err != nil {
		s.logger.WarnContext(ctx, "roster load failed", "team_id", s.teamID, "error", err)
		s.store.Dispatch(state.LoadFailed{Err: err.Error()})
		return err
	}

	s.store.Dispatch(state.LoadSucceeded{Players: players})
	return nil
}

func (s *Screen) ToggleForm() {
	s.store.Dispatch(state.FormToggled{})
}

func (s *Screen) SetField(field, value string) {
	s.store.Dispatch(state.FieldChanged{Field: field, Value: value})
}

// Submit sends the current form as one create call. While a submit is
// in flight further submits are rejected, so double-activating the
// save control cannot create two players.
func (s *Screen) Submit(ctx context.Context) error {
	snapshot := s.store.State()
	if snapshot.Submitting {
		return fmt.Errorf("%w: a submit is already in flight", usecase.ErrInvalidInput)
	}

	input, err := buildCreateInput(snapshot.Form)
	if err != nil {
		s.store.Dispatch(state.SubmitFailed{Err: err.Error()})
		return err
	}

	s.store.Dispatch(state.SubmitStarted{})

	created, err := s.directory.CreatePlayer(ctx, s.teamID, input)
	if err != nil {
		s.logger.WarnContext(ctx, "roster submit failed", "team_id", s.teamID, "error", err)
		s.store.Dispatch(state.SubmitFailed{Err: err.Error()})
		return err
	}

	// Append the server copy, not the local draft. The server assigns
	// the id and fills defaulted fields.
	s.store.Dispatch(state.SubmitSucceeded{Created: created})
	return nil
}

func buildCreateInput(form state.PlayerForm) (usecase.CreatePlayerInput, error) {
	jersey := 0
	if value := strings.TrimSpace(form.JerseyNumber); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return usecase.CreatePlayerInput{}, fmt.Errorf("%w: jersey number must be numeric", usecase.ErrInvalidInput)
		}
		jersey = parsed
	}

	var dob *time.Time
	if value := strings.TrimSpace(form.DateOfBirth); value != "" {
		parsed, err := time.Parse("2006-01-02", value)
		if err != nil {
			return usecase.CreatePlayerInput{}, fmt.Errorf("%w: date of birth must be YYYY-MM-DD", usecase.ErrInvalidInput)
		}
		dob = &parsed
	}

	return usecase.CreatePlayerInput{
		FirstName:    form.FirstName,
		LastName:     form.LastName,
		Email:        form.Email,
		Position:     player.Position(strings.TrimSpace(form.Position)),
		JerseyNumber: jersey,
		DateOfBirth:  dob,
		Nationality:  form.Nationality,
	}, nil
}

// Row is one rendered roster line.
type Row struct {
	ID       string
	Name     string
	Position string
	Jersey   int
	Status   string
}

// Rows projects the current players into display rows, preserving
// server order.
func (s *Screen) Rows() []Row {
	snapshot := s.store.State()
	out := make([]Row, 0, len(snapshot.Players))
	for _, p := range snapshot.Players {
		out = append(out, Row{
			ID:       p.ID,
			Name:     p.FullName(),
			Position: string(p.Position),
			Jersey:   p.JerseyNumber,
			Status:   string(p.Status),
		})
	}
	return out
}
