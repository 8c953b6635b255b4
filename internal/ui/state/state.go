// Package state holds the roster screen state machine. State is an
// immutable snapshot, actions describe events, and Reduce folds an
// action into the next snapshot without touching the previous one.
package state

import "github.com/riskibarqy/clubdesk/internal/domain/player"

// PlayerForm mirrors the add-player inputs as entered, before any
// parsing or validation.
type PlayerForm struct {
	FirstName    string
	LastName     string
	Email        string
	Position     string
	JerseyNumber string
	DateOfBirth  string
	Nationality  string
}

type State struct {
	Players    []player.Player
	Loading    bool
	LoadErr    string
	FormOpen   bool
	Form       PlayerForm
	Submitting bool
	SubmitErr  string
}

// Action is a state transition event. Implementations are value types
// so a dispatched action can never be mutated after the fact.
type Action interface {
	isAction()
}

type LoadStarted struct{}

type LoadSucceeded struct {
	Players []player.Player
}

type LoadFailed struct {
	Err string
}

type FormToggled struct{}

type FieldChanged struct {
	Field string
	Value string
}

type SubmitStarted struct{}

type SubmitSucceeded struct {
	Created player.Player
}

type SubmitFailed struct {
	Err string
}

func (LoadStarted) isAction()     {}
func (LoadSucceeded) isAction()   {}
func (LoadFailed) isAction()      {}
func (FormToggled) isAction()     {}
func (FieldChanged) isAction()    {}
func (SubmitStarted) isAction()   {}
func (SubmitSucceeded) isAction() {}
func (SubmitFailed) isAction()    {}

// Form field names accepted by FieldChanged.
const (
	FieldFirstName    = "firstName"
	FieldLastName     = "lastName"
	FieldEmail        = "email"
	FieldPosition     = "position"
	FieldJerseyNumber = "jerseyNumber"
	FieldDateOfBirth  = "dateOfBirth"
	FieldNationality  = "nationality"
)

// Reduce returns the state after applying one action. It never mutates
// its input: player slices are copied before growing.
func Reduce(s State, action Action) State {
	switch a := action.(type) {
	case LoadStarted:
		s.Loading = true
		s.LoadErr = ""
	case LoadSucceeded:
		s.Loading = false
		s.Players = append([]player.Player(nil), a.Players...)
	case LoadFailed:
		s.Loading = false
		s.LoadErr = a.Err
	case FormToggled:
		s.FormOpen = !s.FormOpen
		if !s.FormOpen {
			s.Form = PlayerForm{}
			s.SubmitErr = ""
		}
	case FieldChanged:
		s.Form = setFormField(s.Form, a.Field, a.Value)
	case SubmitStarted:
		s.Submitting = true
		s.SubmitErr = ""
	case SubmitSucceeded:
		s.Submitting = false
		s.FormOpen = false
		s.Form = PlayerForm{}
		players := make([]player.Player, 0, len(s.Players)+1)
		players = append(players, s.Players...)
		players = append(players, a.Created)
		s.Players = players
	case SubmitFailed:
		// The form stays open with its values so a failed submit can be
		// corrected and retried.
		s.Submitting = false
		s.SubmitErr = a.Err
	}
	return s
}

func setFormField(form PlayerForm, field, value string) PlayerForm {
	switch field {
	case FieldFirstName:
		form.FirstName = value
	case FieldLastName:
		form.LastName = value
	case FieldEmail:
		form.Email = value
	case FieldPosition:
		form.Position = value
	case FieldJerseyNumber:
		form.JerseyNumber = value
	case FieldDateOfBirth:
		form.DateOfBirth = value
	case FieldNationality:
		form.Nationality = value
	}
	return form
}
