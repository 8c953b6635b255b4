package state

import (
	"testing"

	"github.com/riskibarqy/clubdesk/internal/domain/player"
)

func TestReduce_LoadLifecycle(t *testing.T) {
	s := Reduce(State{}, LoadStarted{})
	if !s.Loading || s.LoadErr != "" {
		t.Fatalf("unexpected state after load start: %+v", s)
	}

	players := []player.Player{
		{ID: "pl-1", FirstName: "Fernando", LastName: "Torres"},
		{ID: "pl-2", FirstName: "Pablo", LastName: "Sánchez"},
	}
	s = Reduce(s, LoadSucceeded{Players: players})
	if s.Loading {
		t.Fatalf("expected loading cleared")
	}
	if len(s.Players) != 2 || s.Players[0].ID != "pl-1" {
		t.Fatalf("unexpected players: %+v", s.Players)
	}

	// The reducer must have copied the slice.
	players[0].ID = "mutated"
	if s.Players[0].ID != "pl-1" {
		t.Fatalf("reducer shares backing array with caller input")
	}
}

func TestReduce_LoadFailedKeepsError(t *testing.T) {
	s := Reduce(State{Loading: true}, LoadFailed{Err: "roster service status=503"})
	if s.Loading {
		t.Fatalf("expected loading cleared")
	}
	if s.LoadErr != "roster service status=503" {
		t.Fatalf("unexpected load error: %q", s.LoadErr)
	}
}

func TestReduce_SubmitSucceededAppends(t *testing.T) {
	initial := State{
		Players:    []player.Player{{ID: "pl-1", FirstName: "Fernando", LastName: "Torres"}},
		FormOpen:   true,
		Form:       PlayerForm{FirstName: "New", LastName: "Player"},
		Submitting: true,
	}

	s := Reduce(initial, SubmitSucceeded{Created: player.Player{ID: "pl-2", FirstName: "New", LastName: "Player"}})

	if s.Submitting || s.FormOpen {
		t.Fatalf("expected form dismissed after successful submit: %+v", s)
	}
	if s.Form != (PlayerForm{}) {
		t.Fatalf("expected cleared form, got %+v", s.Form)
	}
	if len(s.Players) != 2 || s.Players[1].ID != "pl-2" {
		t.Fatalf("expected created player appended, got %+v", s.Players)
	}
	if len(initial.Players) != 1 {
		t.Fatalf("reducer mutated prior state")
	}
}

func TestReduce_SubmitFailedKeepsFormOpen(t *testing.T) {
	form := PlayerForm{FirstName: "New", LastName: "Player", JerseyNumber: "5"}
	s := Reduce(State{FormOpen: true, Form: form, Submitting: true}, SubmitFailed{Err: "jersey taken"})

	if s.Submitting {
		t.Fatalf("expected submitting cleared")
	}
	if !s.FormOpen || s.Form != form {
		t.Fatalf("expected form kept open with values, got %+v", s)
	}
	if s.SubmitErr != "jersey taken" {
		t.Fatalf("unexpected submit error: %q", s.SubmitErr)
	}
}

func TestReduce_FormToggleClearsDraft(t *testing.T) {
	s := Reduce(State{}, FormToggled{})
	if !s.FormOpen {
		t.Fatalf("expected form open")
	}

	s = Reduce(s, FieldChanged{Field: FieldFirstName, Value: "New"})
	s = Reduce(s, FieldChanged{Field: FieldJerseyNumber, Value: "5"})
	s = Reduce(s, FieldChanged{Field: FieldDateOfBirth, Value: "2000-01-01"})
	if s.Form.FirstName != "New" || s.Form.JerseyNumber != "5" {
		t.Fatalf("unexpected form: %+v", s.Form)
	}
	if s.Form.DateOfBirth != "2000-01-01" {
		t.Fatalf("unexpected date of birth: %q", s.Form.DateOfBirth)
	}

	s = Reduce(s, FormToggled{})
	if s.FormOpen || s.Form != (PlayerForm{}) {
		t.Fatalf("expected dismissed form to clear draft, got %+v", s)
	}
}

func TestStore_DispatchNotifiesSubscribers(t *testing.T) {
	store := NewStore(State{})

	var renders []State
	unsubscribe := store.Subscribe(func(s State) {
		renders = append(renders, s)
	})

	store.Dispatch(LoadStarted{})
	store.Dispatch(LoadSucceeded{Players: []player.Player{{ID: "pl-1"}}})

	if len(renders) != 2 {
		t.Fatalf("expected two renders, got %d", len(renders))
	}
	if !renders[0].Loading {
		t.Fatalf("first render should be the loading snapshot")
	}
	if len(renders[1].Players) != 1 {
		t.Fatalf("second render should carry loaded players")
	}

	unsubscribe()
	store.Dispatch(LoadStarted{})
	if len(renders) != 2 {
		t.Fatalf("expected no renders after unsubscribe, got %d", len(renders))
	}
}
