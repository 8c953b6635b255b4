package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/riskibarqy/clubdesk/internal/domain/user"
	"github.com/riskibarqy/clubdesk/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/clubdesk/internal/platform/id"
	"github.com/riskibarqy/clubdesk/internal/platform/logging"
	"github.com/riskibarqy/clubdesk/internal/usecase"
)

type staticVerifier struct {
	principal user.Principal
}

func (v staticVerifier) VerifyAccessToken(_ context.Context, token string) (user.Principal, error) {
	if token != "valid-token" {
		return user.Principal{}, fmt.Errorf("%w: unknown token", usecase.ErrUnauthorized)
	}
	return v.principal, nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())

	roster := usecase.NewRosterService(teamRepo, playerRepo, id.NewRandomGenerator())
	dashboard := usecase.NewDashboardService(teamRepo, playerRepo)
	importer := usecase.NewRosterImportService(roster, logging.NewNop())

	handler := NewHandler(roster, dashboard, importer, logging.NewNop())
	verifier := staticVerifier{principal: user.Principal{
		UserID: "user-1",
		TeamID: memory.TeamIDAtletico,
		Email:  "coach@clubdesk.example",
	}}

	return NewRouter(handler, verifier, logging.NewNop(), []string{"*"}, "job-secret")
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	return body
}

func TestListTeamPlayers(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/teams/"+memory.TeamIDAtletico+"/players", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	body := decodeEnvelope(t, rec)
	items, _ := body["data"].([]any)
	if len(items) != 4 {
		t.Fatalf("unexpected player count: got=%d want=4", len(items))
	}
	first, _ := items[0].(map[string]any)
	if got, _ := first["fullName"].(string); got != "Fernando Torres" {
		t.Fatalf("unexpected first player: %v", first["fullName"])
	}
}

func TestListTeamPlayers_UnknownTeam(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/teams/club-ghost/players", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestCreateTeamPlayer(t *testing.T) {
	router := newTestRouter(t)

	payload := `{"firstName":"New","lastName":"Player","position":"defender","jerseyNumber":5}`
	req := httptest.NewRequest(http.MethodPost, "/v1/teams/"+memory.TeamIDAtletico+"/players", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	body := decodeEnvelope(t, rec)
	data, _ := body["data"].(map[string]any)
	if got, _ := data["fullName"].(string); got != "New Player" {
		t.Fatalf("unexpected full name: %v", data["fullName"])
	}
	if got, _ := data["status"].(string); got != "active" {
		t.Fatalf("expected default active status, got %v", data["status"])
	}
	createdID, _ := data["id"].(string)
	if !strings.HasPrefix(createdID, "pl-") {
		t.Fatalf("unexpected id: %v", data["id"])
	}

	// The created player must be visible on a subsequent list.
	listReq := httptest.NewRequest(http.MethodGet, "/v1/teams/"+memory.TeamIDAtletico+"/players", nil)
	listRec := httptest.NewRecorder()
	router.ServeHTTP(listRec, listReq)

	listBody := decodeEnvelope(t, listRec)
	items, _ := listBody["data"].([]any)
	if len(items) != 5 {
		t.Fatalf("expected created player in list, got %d items", len(items))
	}
	last, _ := items[len(items)-1].(map[string]any)
	if got, _ := last["id"].(string); got != createdID {
		t.Fatalf("expected new player appended last, got %v", last["id"])
	}
}

func TestCreateTeamPlayer_RejectsUnknownFields(t *testing.T) {
	router := newTestRouter(t)

	payload := `{"firstName":"New","lastName":"Player","position":"defender","jerseyNumber":5,"salary":100}`
	req := httptest.NewRequest(http.MethodPost, "/v1/teams/"+memory.TeamIDAtletico+"/players", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestCreateTeamPlayer_RejectsInvalidJersey(t *testing.T) {
	router := newTestRouter(t)

	payload := `{"firstName":"New","lastName":"Player","position":"defender","jerseyNumber":120}`
	req := httptest.NewRequest(http.MethodPost, "/v1/teams/"+memory.TeamIDAtletico+"/players", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestMyRosterRoutes_RequireAuth(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/roster/me/players", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 without token, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/v1/roster/me/players", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200 with token, got %d: %s", rec.Code, rec.Body.String())
	}
	body := decodeEnvelope(t, rec)
	items, _ := body["data"].([]any)
	if len(items) != 4 {
		t.Fatalf("unexpected roster size: %d", len(items))
	}
}

func TestAddPlayerToMyRoster_ScopedToPrincipalTeam(t *testing.T) {
	router := newTestRouter(t)

	payload := `{"firstName":"Diego","lastName":"Paz","position":"midfielder","jerseyNumber":14}`
	req := httptest.NewRequest(http.MethodPost, "/v1/roster/me/players", strings.NewReader(payload))
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}
	body := decodeEnvelope(t, rec)
	data, _ := body["data"].(map[string]any)
	if got, _ := data["teamId"].(string); got != memory.TeamIDAtletico {
		t.Fatalf("expected player scoped to principal team, got %v", data["teamId"])
	}
}

func TestGetDashboardCards(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/cards", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	body := decodeEnvelope(t, rec)
	items, _ := body["data"].([]any)
	if len(items) != 3 {
		t.Fatalf("expected three dashboard cards, got %d", len(items))
	}
	first, _ := items[0].(map[string]any)
	if got, _ := first["title"].(string); got != "Squad" {
		t.Fatalf("unexpected first card title: %v", first["title"])
	}
}

func TestRunRosterImportJob_RequiresToken(t *testing.T) {
	router := newTestRouter(t)

	payload := `{"teamId":"` + memory.TeamIDAtletico + `","players":[{"firstName":"Diego","lastName":"Paz","position":"midfielder","jerseyNumber":14}]}`

	req := httptest.NewRequest(http.MethodPost, "/v1/internal/jobs/roster-import", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 without job token, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/v1/internal/jobs/roster-import", strings.NewReader(payload))
	req.Header.Set("X-Internal-Job-Token", "job-secret")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200 with job token, got %d: %s", rec.Code, rec.Body.String())
	}

	body := decodeEnvelope(t, rec)
	data, _ := body["data"].(map[string]any)
	if got, _ := data["created"].(float64); got != 1 {
		t.Fatalf("expected one created row, got %v", data["created"])
	}
}
