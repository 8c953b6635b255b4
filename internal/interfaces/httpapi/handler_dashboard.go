package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/clubdesk/internal/usecase"
)

func (h *Handler) GetDashboardCards(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDashboardCards")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	cards, err := h.dashboardService.Cards(ctx, principal.TeamID)
	if err != nil {
		h.logger.WarnContext(ctx, "build dashboard cards failed", "team_id", principal.TeamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]cardDTO, 0, len(cards))
	for _, card := range cards {
		items = append(items, cardToDTO(ctx, card))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

type cardDTO struct {
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Icon        string        `json:"icon,omitempty"`
	Color       string        `json:"color"`
	Path        string        `json:"path"`
	Stats       []cardStatDTO `json:"stats"`
}

type cardStatDTO struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

func cardToDTO(ctx context.Context, v usecase.DashboardCard) cardDTO {
	ctx, span := startSpan(ctx, "httpapi.cardToDTO")
	defer span.End()

	stats := make([]cardStatDTO, 0, len(v.Stats))
	for _, stat := range v.Stats {
		stats = append(stats, cardStatDTO{Label: stat.Label, Value: stat.Value})
	}

	return cardDTO{
		Title:       v.Title,
		Description: v.Description,
		Icon:        v.Icon,
		Color:       string(v.Color),
		Path:        v.Path,
		Stats:       stats,
	}
}
