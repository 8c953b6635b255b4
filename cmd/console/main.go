// Command console is a terminal roster client. It talks to the API
// through the rosterhub client and renders the roster screen through
// the store/reducer pipeline used by the UI layer.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/riskibarqy/clubdesk/external/rosterhub"
	"github.com/riskibarqy/clubdesk/internal/config"
	"github.com/riskibarqy/clubdesk/internal/platform/logging"
	"github.com/riskibarqy/clubdesk/internal/platform/resilience"
	"github.com/riskibarqy/clubdesk/internal/ui/roster"
	"github.com/riskibarqy/clubdesk/internal/ui/state"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewJSON(logging.LevelWarn)
	logging.SetDefault(logger)

	client := rosterhub.NewClient(rosterhub.ClientConfig{
		HTTPClient: &http.Client{Timeout: cfg.RosterHubTimeout},
		BaseURL:    cfg.RosterHubBaseURL,
		Token:      cfg.RosterHubToken,
		Timeout:    cfg.RosterHubTimeout,
		MaxRetries: cfg.RosterHubMaxRetries,
		Logger:     logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.RosterHubCircuitEnabled,
			FailureThreshold: cfg.RosterHubCircuitFailureCount,
			OpenTimeout:      cfg.RosterHubCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.RosterHubCircuitHalfOpenMaxReq,
		},
	})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch os.Args[1] {
	case "list":
		err = runList(ctx, client, os.Args[2:])
	case "add":
		err = runAdd(ctx, client, os.Args[2:])
	default:
		printUsage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func newScreen(teamID string, client *rosterhub.Client) *roster.Screen {
	store := state.NewStore(state.State{})
	store.Subscribe(func(s state.State) {
		if s.Loading || s.Submitting {
			return
		}
		if s.LoadErr != "" {
			fmt.Fprintf(os.Stderr, "load error: %s\n", s.LoadErr)
		}
		if s.SubmitErr != "" {
			fmt.Fprintf(os.Stderr, "submit error: %s\n", s.SubmitErr)
		}
	})
	return roster.NewScreen(teamID, client, store, logging.Default())
}

func runList(ctx context.Context, client *rosterhub.Client, args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	teamID := fs.String("team", "", "team id to list players for")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *teamID == "" {
		return fmt.Errorf("-team is required")
	}

	screen := newScreen(*teamID, client)
	if err := screen.Load(ctx); err != nil {
		return fmt.Errorf("load roster: %w", err)
	}

	printRows(screen.Rows())
	return nil
}

func runAdd(ctx context.Context, client *rosterhub.Client, args []string) error {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	teamID := fs.String("team", "", "team id to add the player to")
	first := fs.String("first", "", "first name")
	last := fs.String("last", "", "last name")
	email := fs.String("email", "", "email (optional)")
	position := fs.String("position", "", "position: forward, midfielder, defender, goalkeeper")
	jersey := fs.Int("jersey", 0, "jersey number 1-99")
	dob := fs.String("dob", "", "date of birth YYYY-MM-DD (optional)")
	nationality := fs.String("nationality", "", "nationality (optional)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *teamID == "" {
		return fmt.Errorf("-team is required")
	}

	screen := newScreen(*teamID, client)
	if err := screen.Load(ctx); err != nil {
		return fmt.Errorf("load roster: %w", err)
	}

	screen.ToggleForm()
	screen.SetField(state.FieldFirstName, *first)
	screen.SetField(state.FieldLastName, *last)
	screen.SetField(state.FieldEmail, *email)
	screen.SetField(state.FieldPosition, *position)
	screen.SetField(state.FieldJerseyNumber, strconv.Itoa(*jersey))
	screen.SetField(state.FieldDateOfBirth, *dob)
	screen.SetField(state.FieldNationality, *nationality)

	if err := screen.Submit(ctx); err != nil {
		return fmt.Errorf("add player: %w", err)
	}

	printRows(screen.Rows())
	return nil
}

func printRows(rows []roster.Row) {
	if len(rows) == 0 {
		fmt.Println("no players")
		return
	}
	for _, row := range rows {
		fmt.Printf("%-14s #%-3d %-12s %-10s %s\n", row.ID, row.Jersey, row.Position, row.Status, row.Name)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "usage: console <list|add> [flags]")
	fmt.Fprintln(os.Stderr, "examples:")
	fmt.Fprintln(os.Stderr, "  console list -team club-atletico")
	fmt.Fprintln(os.Stderr, "  console add -team club-atletico -first New -last Player -position defender -jersey 5")
}
