package postgres

import (
	"database/sql"
	"time"
)

type playerTableModel struct {
	ID           int64        `db:"id"`
	PublicID     string       `db:"public_id"`
	TeamID       string       `db:"team_public_id"`
	FirstName    string       `db:"first_name"`
	LastName     string       `db:"last_name"`
	Email        string       `db:"email"`
	Position     string       `db:"position"`
	JerseyNumber int          `db:"jersey_number"`
	Status       string       `db:"status"`
	DateOfBirth  sql.NullTime `db:"date_of_birth"`
	Nationality  string       `db:"nationality"`
	CreatedAt    time.Time    `db:"created_at"`
	DeletedAt    *time.Time   `db:"deleted_at"`
}

type playerInsertModel struct {
	PublicID     string       `db:"public_id"`
	TeamID       string       `db:"team_public_id"`
	FirstName    string       `db:"first_name"`
	LastName     string       `db:"last_name"`
	Email        string       `db:"email"`
	Position     string       `db:"position"`
	JerseyNumber int          `db:"jersey_number"`
	Status       string       `db:"status"`
	DateOfBirth  sql.NullTime `db:"date_of_birth"`
	Nationality  string       `db:"nationality"`
	CreatedAt    time.Time    `db:"created_at"`
}
