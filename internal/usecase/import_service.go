package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/clubdesk/internal/platform/logging"
)

const defaultImportWorkers = 4

// RosterImportInput is a bulk create request, typically a season kickoff
// roster upload. Rows are independent; one bad row does not abort the rest.
type RosterImportInput struct {
	TeamID     string
	Rows       []CreatePlayerInput
	MaxWorkers int
}

type RosterImportResult struct {
	Total   int                   `json:"total"`
	Created int                   `json:"created"`
	Failed  int                   `json:"failed"`
	Errors  []RosterImportFailure `json:"errors,omitempty"`
}

type RosterImportFailure struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

type RosterImportService struct {
	roster *RosterService
	logger *logging.Logger
}

func NewRosterImportService(roster *RosterService, logger *logging.Logger) *RosterImportService {
	if logger == nil {
		logger = logging.Default()
	}
	return &RosterImportService{
		roster: roster,
		logger: logger,
	}
}

func (s *RosterImportService) Import(ctx context.Context, in RosterImportInput) (RosterImportResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterImportService.Import")
	defer span.End()

	teamID := strings.TrimSpace(in.TeamID)
	if teamID == "" {
		return RosterImportResult{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	if len(in.Rows) == 0 {
		return RosterImportResult{}, fmt.Errorf("%w: import rows are required", ErrInvalidInput)
	}

	workers := in.MaxWorkers
	if workers < 1 {
		workers = defaultImportWorkers
	}
	if workers > len(in.Rows) {
		workers = len(in.Rows)
	}

	workerPool, err := ants.NewPool(workers)
	if err != nil {
		return RosterImportResult{}, fmt.Errorf("create import worker pool: %w", err)
	}
	defer workerPool.Release()

	var (
		mu       sync.Mutex
		created  int
		failures []RosterImportFailure
		wg       sync.WaitGroup
	)

	record := func(row int, rowErr error) {
		mu.Lock()
		defer mu.Unlock()
		if rowErr == nil {
			created++
			return
		}
		failures = append(failures, RosterImportFailure{
			Row:     row,
			Message: rowErr.Error(),
		})
	}

	for i := range in.Rows {
		row := i
		input := in.Rows[i]
		wg.Add(1)
		submitErr := workerPool.Submit(func() {
			defer wg.Done()
			_, createErr := s.roster.CreatePlayer(ctx, teamID, input)
			record(row, createErr)
		})
		if submitErr != nil {
			wg.Done()
			record(row, fmt.Errorf("submit import row: %w", submitErr))
		}
	}
	wg.Wait()

	sort.Slice(failures, func(i, j int) bool { return failures[i].Row < failures[j].Row })

	result := RosterImportResult{
		Total:   len(in.Rows),
		Created: created,
		Failed:  len(failures),
		Errors:  failures,
	}

	s.logger.InfoContext(ctx, "roster import finished",
		"team_id", teamID,
		"total", result.Total,
		"created", result.Created,
		"failed", result.Failed,
	)

	return result, nil
}
