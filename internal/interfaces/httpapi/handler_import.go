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

func (h *Handler) RunRosterImportJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunRosterImportJob")
	defer span.End()

	var req rosterImportRequest
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

	rows := make([]usecase.CreatePlayerInput, 0, len(req.Players))
	for _, row := range req.Players {
		var dob *time.Time
		if strings.TrimSpace(row.DateOfBirth) != "" {
			parsed, err := time.Parse("2006-01-02", row.DateOfBirth)
			if err != nil {
				writeError(ctx, w, fmt.Errorf("%w: dateOfBirth must be YYYY-MM-DD", usecase.ErrInvalidInput))
				return
			}
			dob = &parsed
		}
		rows = append(rows, usecase.CreatePlayerInput{
			FirstName:    row.FirstName,
			LastName:     row.LastName,
			Email:        row.Email,
			Position:     player.Position(row.Position),
			JerseyNumber: row.JerseyNumber,
			Status:       player.Status(row.Status),
			DateOfBirth:  dob,
			Nationality:  row.Nationality,
		})
	}

	result, err := h.importService.Import(ctx, usecase.RosterImportInput{
		TeamID:     req.TeamID,
		Rows:       rows,
		MaxWorkers: req.MaxWorkers,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "roster import job failed", "team_id", req.TeamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

type rosterImportRequest struct {
	TeamID     string                `json:"teamId" validate:"required"`
	Players    []createPlayerRequest `json:"players" validate:"required,min=1,dive"`
	MaxWorkers int                   `json:"maxWorkers" validate:"min=0,max=32"`
}
