package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/clubdesk/internal/domain/player"
	"github.com/riskibarqy/clubdesk/internal/platform/logging"
	"github.com/riskibarqy/clubdesk/internal/usecase"
)

type Handler struct {
	rosterService    *usecase.RosterService
	dashboardService *usecase.DashboardService
	importService    *usecase.RosterImportService
	logger           *logging.Logger
	validator        *validator.Validate
}

func NewHandler(
	rosterService *usecase.RosterService,
	dashboardService *usecase.DashboardService,
	importService *usecase.RosterImportService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		rosterService:    rosterService,
		dashboardService: dashboardService,
		importService:    importService,
		logger:           logger,
		validator:        validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type playerDTO struct {
	ID           string `json:"id"`
	TeamID       string `json:"teamId"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	FullName     string `json:"fullName"`
	Email        string `json:"email,omitempty"`
	Position     string `json:"position"`
	JerseyNumber int    `json:"jerseyNumber"`
	Status       string `json:"status"`
	DateOfBirth  string `json:"dateOfBirth,omitempty"`
	Nationality  string `json:"nationality,omitempty"`
	CreatedAt    string `json:"createdAt"`
}

func playerToDTO(ctx context.Context, v player.Player) playerDTO {
	ctx, span := startSpan(ctx, "httpapi.playerToDTO")
	defer span.End()

	dob := ""
	if v.DateOfBirth != nil {
		dob = v.DateOfBirth.UTC().Format("2006-01-02")
	}

	return playerDTO{
		ID:           v.ID,
		TeamID:       v.TeamID,
		FirstName:    v.FirstName,
		LastName:     v.LastName,
		FullName:     v.FullName(),
		Email:        v.Email,
		Position:     string(v.Position),
		JerseyNumber: v.JerseyNumber,
		Status:       string(v.Status),
		DateOfBirth:  dob,
		Nationality:  v.Nationality,
		CreatedAt:    v.CreatedAt.UTC().Format(time.RFC3339),
	}
}
