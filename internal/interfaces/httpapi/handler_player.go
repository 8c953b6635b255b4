package httpapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/riskibarqy/clubdesk/internal/domain/player"
	"github.com/riskibarqy/clubdesk/internal/usecase"
)

func (h *Handler) ListTeamPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamPlayers")
	defer span.End()

	teamID := r.PathValue("teamID")
	players, err := h.rosterService.ListPlayersByTeam(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(ctx, p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreateTeamPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTeamPlayer")
	defer span.End()

	teamID := strings.TrimSpace(r.PathValue("teamID"))
	h.createPlayer(w, r.WithContext(ctx), teamID)
}

func (h *Handler) ListMyRosterPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMyRosterPlayers")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	players, err := h.rosterService.ListPlayersByTeam(ctx, principal.TeamID)
	if err != nil {
		h.logger.WarnContext(ctx, "list my roster failed", "team_id", principal.TeamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(ctx, p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) AddPlayerToMyRoster(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddPlayerToMyRoster")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	h.createPlayer(w, r.WithContext(ctx), principal.TeamID)
}

func (h *Handler) createPlayer(w http.ResponseWriter, r *http.Request, teamID string) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.createPlayer")
	defer span.End()

	var req createPlayerRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	var dob *time.Time
	if strings.TrimSpace(req.DateOfBirth) != "" {
		parsed, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: dateOfBirth must be YYYY-MM-DD", usecase.ErrInvalidInput))
			return
		}
		dob = &parsed
	}

	created, err := h.rosterService.CreatePlayer(ctx, teamID, usecase.CreatePlayerInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Position:     player.Position(req.Position),
		JerseyNumber: req.JerseyNumber,
		Status:       player.Status(req.Status),
		DateOfBirth:  dob,
		Nationality:  req.Nationality,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create player failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, playerToDTO(ctx, created))
}

type createPlayerRequest struct {
	FirstName    string `json:"firstName" validate:"required,max=100"`
	LastName     string `json:"lastName" validate:"required,max=100"`
	Email        string `json:"email" validate:"omitempty,email"`
	Position     string `json:"position" validate:"required"`
	JerseyNumber int    `json:"jerseyNumber" validate:"required,min=1,max=99"`
	Status       string `json:"status"`
	DateOfBirth  string `json:"dateOfBirth"`
	Nationality  string `json:"nationality" validate:"max=100"`
}
