package player

import (
	"fmt"
	"strings"
	"time"
)

// Position represents the field role categories used on the roster screen.
type Position string

const (
	PositionForward    Position = "forward"
	PositionMidfielder Position = "midfielder"
	PositionDefender   Position = "defender"
	PositionGoalkeeper Position = "goalkeeper"
)

var AllPositions = map[Position]struct{}{
	PositionForward:    {},
	PositionMidfielder: {},
	PositionDefender:   {},
	PositionGoalkeeper: {},
}

// Status is the availability state of a roster entry.
type Status string

const (
	StatusActive    Status = "active"
	StatusInactive  Status = "inactive"
	StatusInjured   Status = "injured"
	StatusSuspended Status = "suspended"
)

var AllStatuses = map[Status]struct{}{
	StatusActive:    {},
	StatusInactive:  {},
	StatusInjured:   {},
	StatusSuspended: {},
}

// Player is one roster entry of a team. The server-side copy is
// authoritative; clients only ever append records returned by the API.
type Player struct {
	ID           string
	TeamID       string
	FirstName    string
	LastName     string
	Email        string
	Position     Position
	JerseyNumber int
	Status       Status
	DateOfBirth  *time.Time
	Nationality  string
	CreatedAt    time.Time
}

// FullName concatenates first and last name the way the roster screen
// displays players.
func (p Player) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.TeamID == "" {
		return fmt.Errorf("player team id is required")
	}
	return p.ValidateDraft()
}

// ValidateDraft checks the client-editable fields only. The id is assigned
// server-side, so create drafts are validated without one.
func (p Player) ValidateDraft() error {
	if strings.TrimSpace(p.FirstName) == "" {
		return fmt.Errorf("player first name is required")
	}
	if strings.TrimSpace(p.LastName) == "" {
		return fmt.Errorf("player last name is required")
	}
	if _, ok := AllPositions[p.Position]; !ok {
		return fmt.Errorf("invalid player position: %s", p.Position)
	}
	// Jersey numbers are not unique within a team; only the range is checked.
	if p.JerseyNumber < 1 || p.JerseyNumber > 99 {
		return fmt.Errorf("player jersey number must be between 1 and 99")
	}
	if p.Status != "" {
		if _, ok := AllStatuses[p.Status]; !ok {
			return fmt.Errorf("invalid player status: %s", p.Status)
		}
	}
	return nil
}
