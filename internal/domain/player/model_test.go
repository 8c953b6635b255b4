package player

import (
	"testing"
	"time"
)

func validDraft() Player {
	dob := time.Date(1984, time.March, 20, 0, 0, 0, 0, time.UTC)
	return Player{
		TeamID:       "club-atletico",
		FirstName:    "Fernando",
		LastName:     "Torres",
		Email:        "fernando@club.example",
		Position:     PositionForward,
		JerseyNumber: 9,
		Status:       StatusActive,
		DateOfBirth:  &dob,
		Nationality:  "Spain",
	}
}

func TestValidateDraft(t *testing.T) {
	t.Run("accepts complete draft", func(t *testing.T) {
		if err := validDraft().ValidateDraft(); err != nil {
			t.Fatalf("validate draft: %v", err)
		}
	})

	t.Run("accepts empty status as unset", func(t *testing.T) {
		p := validDraft()
		p.Status = ""
		if err := p.ValidateDraft(); err != nil {
			t.Fatalf("validate draft without status: %v", err)
		}
	})

	t.Run("rejects unknown position", func(t *testing.T) {
		p := validDraft()
		p.Position = "libero"
		if err := p.ValidateDraft(); err == nil {
			t.Fatalf("expected error for unknown position")
		}
	})

	t.Run("rejects jersey number out of range", func(t *testing.T) {
		for _, number := range []int{0, -3, 100} {
			p := validDraft()
			p.JerseyNumber = number
			if err := p.ValidateDraft(); err == nil {
				t.Fatalf("expected error for jersey number %d", number)
			}
		}
	})

	t.Run("rejects blank names", func(t *testing.T) {
		p := validDraft()
		p.FirstName = "   "
		if err := p.ValidateDraft(); err == nil {
			t.Fatalf("expected error for blank first name")
		}

		p = validDraft()
		p.LastName = ""
		if err := p.ValidateDraft(); err == nil {
			t.Fatalf("expected error for blank last name")
		}
	})
}

func TestValidate_RequiresIdentity(t *testing.T) {
	p := validDraft()
	if err := p.Validate(); err == nil {
		t.Fatalf("expected error for missing id")
	}

	p.ID = "pl-1"
	p.TeamID = ""
	if err := p.Validate(); err == nil {
		t.Fatalf("expected error for missing team id")
	}
}

func TestFullName(t *testing.T) {
	p := Player{FirstName: "Pablo", LastName: "Sánchez"}
	if got := p.FullName(); got != "Pablo Sánchez" {
		t.Fatalf("unexpected full name: got=%q", got)
	}

	p = Player{FirstName: "Ronaldinho"}
	if got := p.FullName(); got != "Ronaldinho" {
		t.Fatalf("unexpected single-name rendering: got=%q", got)
	}
}
