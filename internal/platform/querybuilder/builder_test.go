package querybuilder

import (
	"reflect"
	"testing"
)

func TestSelectBuilder_ToSQL(t *testing.T) {
	t.Run("builds filtered ordered select", func(t *testing.T) {
		query, args, err := Select("id", "first_name", "last_name").
			From("players").
			Where(Eq("team_id", "club-atletico"), IsNull("deleted_at")).
			OrderBy("id").
			ToSQL()
		if err != nil {
			t.Fatalf("build select: %v", err)
		}

		want := "SELECT id, first_name, last_name FROM players WHERE team_id = $1 AND deleted_at IS NULL ORDER BY id"
		if query != want {
			t.Fatalf("unexpected query:\n got=%s\nwant=%s", query, want)
		}
		if !reflect.DeepEqual(args, []any{"club-atletico"}) {
			t.Fatalf("unexpected args: %v", args)
		}
	})

	t.Run("empty in collapses to false", func(t *testing.T) {
		query, args, err := Select("id").
			From("players").
			Where(In("id", nil)).
			ToSQL()
		if err != nil {
			t.Fatalf("build select: %v", err)
		}
		if query != "SELECT id FROM players WHERE 1=0" {
			t.Fatalf("unexpected query: %s", query)
		}
		if len(args) != 0 {
			t.Fatalf("unexpected args: %v", args)
		}
	})

	t.Run("requires table", func(t *testing.T) {
		if _, _, err := Select("id").ToSQL(); err == nil {
			t.Fatalf("expected error for missing table")
		}
	})
}

func TestInsertBuilder_ToSQL(t *testing.T) {
	query, args, err := InsertInto("players").
		Columns("id", "team_id", "jersey_number").
		Values("pl-1", "club-atletico", 9).
		Values("pl-2", "club-atletico", 10).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert: %v", err)
	}

	want := "INSERT INTO players (id, team_id, jersey_number) VALUES ($1, $2, $3), ($4, $5, $6) ON CONFLICT (id) DO NOTHING"
	if query != want {
		t.Fatalf("unexpected query:\n got=%s\nwant=%s", query, want)
	}
	if len(args) != 6 {
		t.Fatalf("unexpected arg count: %d", len(args))
	}
}

func TestInsertModel(t *testing.T) {
	row := struct {
		ID       string `db:"id"`
		TeamID   string `db:"team_id"`
		Internal string
		Skipped  string `db:"-"`
	}{ID: "pl-1", TeamID: "club-atletico", Internal: "x", Skipped: "y"}

	query, args, err := InsertModel("players", row, "")
	if err != nil {
		t.Fatalf("insert model: %v", err)
	}
	if query != "INSERT INTO players (id, team_id) VALUES ($1, $2)" {
		t.Fatalf("unexpected query: %s", query)
	}
	if !reflect.DeepEqual(args, []any{"pl-1", "club-atletico"}) {
		t.Fatalf("unexpected args: %v", args)
	}
}
