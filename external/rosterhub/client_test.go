package rosterhub

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/riskibarqy/clubdesk/internal/domain/player"
	"github.com/riskibarqy/clubdesk/internal/platform/logging"
	"github.com/riskibarqy/clubdesk/internal/platform/resilience"
	"github.com/riskibarqy/clubdesk/internal/usecase"
)

func newTestClient(srv *httptest.Server, maxRetries int) *Client {
	return NewClient(ClientConfig{
		HTTPClient:     srv.Client(),
		BaseURL:        srv.URL,
		Token:          "hub-token",
		MaxRetries:     maxRetries,
		Logger:         logging.NewNop(),
		CircuitBreaker: resilience.CircuitBreakerConfig{Enabled: false},
	})
}

func TestClientListPlayers(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/teams/club-atletico/players" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer hub-token" {
			t.Errorf("unexpected Authorization header: %s", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"apiVersion": "2.0",
			"data": [
				{"id":"pl-1","teamId":"club-atletico","firstName":"Fernando","lastName":"Torres","position":"forward","jerseyNumber":9,"status":"active","createdAt":"2026-07-01T09:00:00Z"},
				{"id":"pl-2","teamId":"club-atletico","firstName":"Pablo","lastName":"Sánchez","position":"midfielder","jerseyNumber":8,"status":"active","createdAt":"2026-07-01T09:00:00Z"}
			]
		}`))
	}))
	defer srv.Close()

	client := newTestClient(srv, 0)

	players, err := client.ListPlayers(context.Background(), "club-atletico")
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	if len(players) != 2 {
		t.Fatalf("unexpected player count: %d", len(players))
	}
	if players[0].FullName() != "Fernando Torres" || players[1].FullName() != "Pablo Sánchez" {
		t.Fatalf("unexpected order: %s, %s", players[0].FullName(), players[1].FullName())
	}
	if players[0].Position != player.PositionForward {
		t.Fatalf("unexpected position: %s", players[0].Position)
	}
}

func TestClientListPlayers_CollapsesConcurrentCalls(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		<-release
		_, _ = w.Write([]byte(`{"apiVersion":"2.0","data":[]}`))
	}))
	defer srv.Close()

	client := newTestClient(srv, 0)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = client.ListPlayers(context.Background(), "club-atletico")
		}()
	}

	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	if calls.Load() != 1 {
		t.Fatalf("expected concurrent lists to collapse into one request, got %d", calls.Load())
	}
}

func TestClientCreatePlayer(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method: %s", r.Method)
		}

		var req map[string]any
		if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		if req["firstName"] != "New" || req["lastName"] != "Player" {
			t.Errorf("unexpected payload: %v", req)
		}

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{
			"apiVersion": "2.0",
			"data": {"id":"pl-new","teamId":"club-atletico","firstName":"New","lastName":"Player","position":"defender","jerseyNumber":5,"status":"active","createdAt":"2026-08-20T10:00:00Z"}
		}`))
	}))
	defer srv.Close()

	client := newTestClient(srv, 0)

	created, err := client.CreatePlayer(context.Background(), "club-atletico", usecase.CreatePlayerInput{
		FirstName:    "New",
		LastName:     "Player",
		Position:     player.PositionDefender,
		JerseyNumber: 5,
	})
	if err != nil {
		t.Fatalf("create player: %v", err)
	}
	if created.ID != "pl-new" {
		t.Fatalf("unexpected id: %s", created.ID)
	}
	if created.FullName() != "New Player" {
		t.Fatalf("unexpected full name: %s", created.FullName())
	}
}

func TestClientCreatePlayer_ValidationErrorNotRetried(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"apiVersion":"2.0","error":{"code":400,"message":"jersey number must be between 1 and 99","status":"INVALID_ARGUMENT"}}`))
	}))
	defer srv.Close()

	client := newTestClient(srv, 3)

	_, err := client.CreatePlayer(context.Background(), "club-atletico", usecase.CreatePlayerInput{
		FirstName:    "Bad",
		LastName:     "Jersey",
		Position:     player.PositionDefender,
		JerseyNumber: 120,
	})
	if !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if calls.Load() != 1 {
		t.Fatalf("expected rejected create to not retry, got %d calls", calls.Load())
	}
}

func TestClientCreatePlayer_ServerErrorNotResent(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"apiVersion":"2.0","data":{"id":"pl-new","teamId":"club-atletico","firstName":"New","lastName":"Player","position":"defender","jerseyNumber":5,"status":"active"}}`))
	}))
	defer srv.Close()

	client := newTestClient(srv, 2)

	_, err := client.CreatePlayer(context.Background(), "club-atletico", usecase.CreatePlayerInput{
		FirstName:    "New",
		LastName:     "Player",
		Position:     player.PositionDefender,
		JerseyNumber: 5,
	})
	if err == nil {
		t.Fatalf("expected error after server failure")
	}
	if calls.Load() != 1 {
		t.Fatalf("a create that reached the server must not be resent, got %d calls", calls.Load())
	}
}

func TestClientCreatePlayer_TransportFailureRetried(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			hj, ok := w.(http.Hijacker)
			if !ok {
				t.Errorf("response writer does not support hijacking")
				return
			}
			conn, _, err := hj.Hijack()
			if err != nil {
				t.Errorf("hijack: %v", err)
				return
			}
			_ = conn.Close()
			return
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"apiVersion":"2.0","data":{"id":"pl-new","teamId":"club-atletico","firstName":"New","lastName":"Player","position":"defender","jerseyNumber":5,"status":"active"}}`))
	}))
	defer srv.Close()

	client := newTestClient(srv, 1)

	created, err := client.CreatePlayer(context.Background(), "club-atletico", usecase.CreatePlayerInput{
		FirstName:    "New",
		LastName:     "Player",
		Position:     player.PositionDefender,
		JerseyNumber: 5,
	})
	if err != nil {
		t.Fatalf("create player: %v", err)
	}
	if created.ID != "pl-new" {
		t.Fatalf("unexpected id: %s", created.ID)
	}
	if calls.Load() != 2 {
		t.Fatalf("expected a retry after the dropped connection, got %d calls", calls.Load())
	}
}

func TestClientListPlayers_RetriesTransientStatus(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"apiVersion":"2.0","data":[]}`))
	}))
	defer srv.Close()

	client := newTestClient(srv, 1)

	players, err := client.ListPlayers(context.Background(), "club-atletico")
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	if len(players) != 0 {
		t.Fatalf("unexpected players: %+v", players)
	}
	if calls.Load() != 2 {
		t.Fatalf("expected one retry, got %d calls", calls.Load())
	}
}

func TestClientListPlayers_NotFound(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"apiVersion":"2.0","error":{"code":404,"message":"team not found","status":"NOT_FOUND"}}`))
	}))
	defer srv.Close()

	client := newTestClient(srv, 0)

	if _, err := client.ListPlayers(context.Background(), "club-ghost"); !errors.Is(err, usecase.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
